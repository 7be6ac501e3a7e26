package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Project.Repository != "OWASP-BLT/BLT-Design-Contest" {
		t.Errorf("repository = %q", cfg.Project.Repository)
	}
	if cfg.GitHub.APIBaseURL != "https://api.github.com" {
		t.Errorf("api base = %q", cfg.GitHub.APIBaseURL)
	}
	if cfg.Showcase.OutputPath != "index.html" {
		t.Errorf("output = %q", cfg.Showcase.OutputPath)
	}
	if cfg.Showcase.WinnerLabel != "winner" {
		t.Errorf("winner label = %q", cfg.Showcase.WinnerLabel)
	}
	if cfg.Showcase.PageSize != 100 {
		t.Errorf("page size = %d", cfg.Showcase.PageSize)
	}
}

func TestLoad_ActionsEnvironment(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("GITHUB_REPOSITORY", "acme/designs")
	viper.Set("GITHUB_TOKEN", "ghp_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Project.Repository != "acme/designs" {
		t.Errorf("repository = %q, want env value", cfg.Project.Repository)
	}
	if cfg.GitHub.Token != "ghp_test" {
		t.Errorf("token = %q, want env value", cfg.GitHub.Token)
	}
}

func TestLoad_ConfigWinsOverEnv(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("project.repository", "configured/repo")
	viper.Set("GITHUB_REPOSITORY", "env/repo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Project.Repository != "configured/repo" {
		t.Errorf("repository = %q, want config value", cfg.Project.Repository)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad repository", func(c *Config) { c.Project.Repository = "no-slash" }, "invalid repository"},
		{"missing owner", func(c *Config) { c.Project.Repository = "/repo" }, "invalid repository"},
		{"page size too big", func(c *Config) { c.Showcase.PageSize = 500 }, "page_size"},
		{"page size zero", func(c *Config) { c.Showcase.PageSize = -1 }, "page_size"},
		{"bad deadline", func(c *Config) { c.Showcase.Deadline = "next week" }, "invalid deadline"},
		{"good deadline", func(c *Config) { c.Showcase.Deadline = "2026-06-01T00:00:00Z" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestUseAppAuth(t *testing.T) {
	tests := []struct {
		name   string
		github GitHubConfig
		want   bool
	}{
		{"token wins", GitHubConfig{Token: "t", AppID: 1, InstallationID: 2, PrivateKeyFile: "k.pem"}, false},
		{"full app creds with file", GitHubConfig{AppID: 1, InstallationID: 2, PrivateKeyFile: "k.pem"}, true},
		{"full app creds with secret", GitHubConfig{AppID: 1, InstallationID: 2, PrivateKeySecret: "projects/p/secrets/s"}, true},
		{"missing key source", GitHubConfig{AppID: 1, InstallationID: 2}, false},
		{"missing installation", GitHubConfig{AppID: 1, PrivateKeyFile: "k.pem"}, false},
		{"nothing", GitHubConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{GitHub: tt.github}
			if got := cfg.UseAppAuth(); got != tt.want {
				t.Errorf("UseAppAuth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateForBuild(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	// Unauthenticated builds are allowed.
	if err := cfg.ValidateForBuild(); err != nil {
		t.Errorf("unauthenticated build rejected: %v", err)
	}

	// Half-configured App credentials are not.
	cfg.GitHub.AppID = 123
	if err := cfg.ValidateForBuild(); err == nil {
		t.Error("expected error for incomplete App credentials")
	} else if !strings.Contains(err.Error(), "incomplete GitHub App credentials") {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.GitHub.InstallationID = 456
	cfg.GitHub.PrivateKeyFile = "key.pem"
	if err := cfg.ValidateForBuild(); err != nil {
		t.Errorf("complete App credentials rejected: %v", err)
	}
}

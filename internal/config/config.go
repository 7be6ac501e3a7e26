package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the full showcase builder configuration
type Config struct {
	Project  ProjectConfig  `mapstructure:"project"`
	GitHub   GitHubConfig   `mapstructure:"github"`
	Showcase ShowcaseConfig `mapstructure:"showcase"`
}

// ProjectConfig contains project-level settings
type ProjectConfig struct {
	Name       string `mapstructure:"name"`
	Repository string `mapstructure:"repository"` // owner/repo
}

// GitHubConfig contains GitHub API authentication settings.
// Token auth (GITHUB_TOKEN) and GitHub App auth are mutually exclusive;
// the token wins when both are set.
type GitHubConfig struct {
	Token            string `mapstructure:"token"`
	APIBaseURL       string `mapstructure:"api_base_url"`
	AppID            int64  `mapstructure:"app_id"`
	InstallationID   int64  `mapstructure:"installation_id"`
	PrivateKeyFile   string `mapstructure:"private_key_file"`
	PrivateKeySecret string `mapstructure:"private_key_secret"` // GCP Secret Manager path
}

// ShowcaseConfig contains page generation settings
type ShowcaseConfig struct {
	OutputPath   string `mapstructure:"output_path"`
	WinnerLabel  string `mapstructure:"winner_label"`
	ContestsFile string `mapstructure:"contests_file"`
	PageSize     int    `mapstructure:"page_size"`
	Deadline     string `mapstructure:"deadline"` // default contest deadline, RFC3339
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := &Config{}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// GitHub Actions injects these directly; they take precedence over
	// nothing but fill the gaps the config file leaves.
	if cfg.Project.Repository == "" {
		cfg.Project.Repository = viper.GetString("GITHUB_REPOSITORY")
	}
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = viper.GetString("GITHUB_TOKEN")
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Project.Repository == "" {
		cfg.Project.Repository = "OWASP-BLT/BLT-Design-Contest"
	}

	if cfg.Project.Name == "" {
		cfg.Project.Name = "BLT Design Contest"
	}

	if cfg.GitHub.APIBaseURL == "" {
		cfg.GitHub.APIBaseURL = "https://api.github.com"
	}

	if cfg.Showcase.OutputPath == "" {
		cfg.Showcase.OutputPath = "index.html"
	}

	if cfg.Showcase.WinnerLabel == "" {
		cfg.Showcase.WinnerLabel = "winner"
	}

	if cfg.Showcase.PageSize == 0 {
		cfg.Showcase.PageSize = 100
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Project.Repository == "" {
		return fmt.Errorf("repository is required")
	}

	if parts := strings.Split(c.Project.Repository, "/"); len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid repository %q (must be owner/repo)", c.Project.Repository)
	}

	if c.Showcase.PageSize < 1 || c.Showcase.PageSize > 100 {
		return fmt.Errorf("page_size must be between 1 and 100, got %d", c.Showcase.PageSize)
	}

	if c.Showcase.Deadline != "" {
		if _, err := time.Parse(time.RFC3339, c.Showcase.Deadline); err != nil {
			return fmt.Errorf("invalid deadline: %w", err)
		}
	}

	return nil
}

// UseAppAuth reports whether GitHub App credentials should be used.
// A plain token always wins; App auth requires the full credential set.
func (c *Config) UseAppAuth() bool {
	if c.GitHub.Token != "" {
		return false
	}
	return c.GitHub.AppID != 0 && c.GitHub.InstallationID != 0 &&
		(c.GitHub.PrivateKeyFile != "" || c.GitHub.PrivateKeySecret != "")
}

// ValidateForBuild performs additional validation required before a build run
func (c *Config) ValidateForBuild() error {
	if err := c.Validate(); err != nil {
		return err
	}

	// An unauthenticated build is allowed (60 req/hr), but a half-configured
	// App credential set is a misconfiguration worth failing on.
	if c.GitHub.Token == "" && !c.UseAppAuth() {
		if c.GitHub.AppID != 0 || c.GitHub.InstallationID != 0 ||
			c.GitHub.PrivateKeyFile != "" || c.GitHub.PrivateKeySecret != "" {
			return fmt.Errorf("incomplete GitHub App credentials: app_id, installation_id and a private key source are all required")
		}
	}

	return nil
}

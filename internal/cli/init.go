package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize showcase configuration",
	Long: `Initialize showcase configuration for the current project.

This creates a .showcase.yaml file with sensible defaults that you can customize.

Example:
  showcase init
  showcase init --repo OWASP-BLT/BLT-Design-Contest`,
	RunE: initProject,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("name", "", "Project name")
	initCmd.Flags().String("repo", "", "GitHub repository (owner/repo)")
	initCmd.Flags().String("output", "index.html", "Output HTML file path")
	initCmd.Flags().Int64("app-id", 0, "GitHub App ID")
	initCmd.Flags().Int64("installation-id", 0, "GitHub App Installation ID")
	initCmd.Flags().Bool("force", false, "Overwrite existing config")
}

type projectConfig struct {
	Project struct {
		Name       string `yaml:"name"`
		Repository string `yaml:"repository"`
	} `yaml:"project"`
	GitHub struct {
		AppID            int64  `yaml:"app_id,omitempty"`
		InstallationID   int64  `yaml:"installation_id,omitempty"`
		PrivateKeySecret string `yaml:"private_key_secret,omitempty"`
	} `yaml:"github"`
	Showcase struct {
		OutputPath   string `yaml:"output_path"`
		WinnerLabel  string `yaml:"winner_label"`
		ContestsFile string `yaml:"contests_file,omitempty"`
	} `yaml:"showcase"`
}

func initProject(cmd *cobra.Command, args []string) error {
	configPath := filepath.Join(".", ".showcase.yaml")

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	cfg := projectConfig{}

	cfg.Project.Name, _ = cmd.Flags().GetString("name")
	cfg.Project.Repository, _ = cmd.Flags().GetString("repo")
	cfg.Showcase.OutputPath, _ = cmd.Flags().GetString("output")
	cfg.GitHub.AppID, _ = cmd.Flags().GetInt64("app-id")
	cfg.GitHub.InstallationID, _ = cmd.Flags().GetInt64("installation-id")

	if cfg.Project.Name == "" {
		cwd, _ := os.Getwd()
		cfg.Project.Name = filepath.Base(cwd)
	}
	if cfg.Project.Repository == "" {
		cfg.Project.Repository = "OWASP-BLT/BLT-Design-Contest"
	}
	if cfg.GitHub.AppID != 0 {
		cfg.GitHub.PrivateKeySecret = fmt.Sprintf("projects/YOUR_PROJECT/secrets/%s-github-key", cfg.Project.Name)
	}
	cfg.Showcase.WinnerLabel = "winner"

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := `# Showcase Configuration
# Set GITHUB_TOKEN in the environment for authenticated API access,
# or configure GitHub App credentials below.

`

	if err := os.WriteFile(configPath, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  1. Check the repository name")
	fmt.Println("  2. Export GITHUB_TOKEN (or set GitHub App credentials)")
	fmt.Println("  3. Run 'showcase build' to generate the page")

	return nil
}

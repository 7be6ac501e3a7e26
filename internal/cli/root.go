package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/owasp-blt/design-showcase/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Showcase - Static showcase generator for the BLT design contests",
	Long: `Showcase builds the BLT Design Contest page from GitHub issues.

It fetches open submission issues for each contest, reads their reaction
counts and latest comments, and renders a single self-contained HTML page
with one tab per contest.

Example:
  showcase build --repo OWASP-BLT/BLT-Design-Contest --output index.html`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Set version for --version flag
	rootCmd.Version = version.Short()
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .showcase.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	// Local development convenience; CI sets real environment variables.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error getting working directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(cwd)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".showcase")
	}

	viper.SetEnvPrefix("SHOWCASE")
	viper.AutomaticEnv()

	// GitHub Actions injects these without the prefix.
	_ = viper.BindEnv("GITHUB_TOKEN")
	_ = viper.BindEnv("GITHUB_REPOSITORY")

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

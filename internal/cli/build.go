package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/owasp-blt/design-showcase/internal/cloud/gcp"
	"github.com/owasp-blt/design-showcase/internal/config"
	"github.com/owasp-blt/design-showcase/internal/contest"
	"github.com/owasp-blt/design-showcase/internal/github"
	"github.com/owasp-blt/design-showcase/internal/showcase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the showcase page",
	Long: `Build the showcase page from the contest repository's GitHub issues.

Each contest collects submissions by label, with a title-prefix fallback
for issues filed without one. Reaction counts and the latest comment are
fetched per submission. Winner-labelled issues are pinned first.

Authentication is optional but recommended: unauthenticated requests are
limited to 60 per hour. Set GITHUB_TOKEN, or configure GitHub App
credentials in .showcase.yaml.

Example:
  showcase build
  showcase build --repo OWASP-BLT/BLT-Design-Contest --output public/index.html`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().String("repo", "", "GitHub repository (owner/repo)")
	buildCmd.Flags().String("output", "", "Output HTML file path")
	buildCmd.Flags().String("token", "", "GitHub API token")
	buildCmd.Flags().String("contests", "", "Contests YAML file (defaults to the built-in contest set)")
	buildCmd.Flags().String("winner-label", "", "Label marking winning submissions")

	_ = viper.BindPFlag("project.repository", buildCmd.Flags().Lookup("repo"))
	_ = viper.BindPFlag("showcase.output_path", buildCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("github.token", buildCmd.Flags().Lookup("token"))
	_ = viper.BindPFlag("showcase.contests_file", buildCmd.Flags().Lookup("contests"))
	_ = viper.BindPFlag("showcase.winner_label", buildCmd.Flags().Lookup("winner-label"))
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "Interrupted, stopping build...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateForBuild(); err != nil {
		return err
	}

	contests, err := contest.Load(cfg.Showcase.ContestsFile)
	if err != nil {
		return err
	}
	if cfg.Showcase.Deadline != "" {
		for i := range contests {
			if contests[i].Deadline == "" {
				contests[i].Deadline = cfg.Showcase.Deadline
			}
		}
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	tokens, err := tokenSource(ctx, cfg, logger)
	if err != nil {
		return err
	}

	client := github.NewClient(
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithTokenSource(tokens),
		github.WithPageSize(cfg.Showcase.PageSize),
		github.WithLogger(logger),
	)

	builder := showcase.NewBuilder(client, cfg.Project.Repository,
		showcase.WithBuildLogger(logger),
		showcase.WithWinnerLabel(cfg.Showcase.WinnerLabel),
	)

	if err := builder.BuildToFile(ctx, contests, cfg.Showcase.OutputPath); err != nil {
		return err
	}

	fmt.Printf("Showcase written to %s\n", cfg.Showcase.OutputPath)
	return nil
}

// tokenSource builds the API authentication source from the config:
// a plain token, GitHub App credentials, or nil for unauthenticated.
func tokenSource(ctx context.Context, cfg *config.Config, logger *log.Logger) (github.TokenSource, error) {
	if cfg.GitHub.Token != "" {
		return github.StaticTokenSource(cfg.GitHub.Token), nil
	}

	if !cfg.UseAppAuth() {
		logger.Println("Warning: no GitHub credentials configured, API requests are rate limited to 60/hour")
		return nil, nil
	}

	key, err := appPrivateKey(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return github.NewAppTokenSource(
		strconv.FormatInt(cfg.GitHub.AppID, 10),
		cfg.GitHub.InstallationID,
		key,
		github.WithAppBaseURL(cfg.GitHub.APIBaseURL),
	)
}

// appPrivateKey loads the App private key from a local file or from
// GCP Secret Manager, whichever is configured. The file wins.
func appPrivateKey(ctx context.Context, cfg *config.Config) ([]byte, error) {
	if cfg.GitHub.PrivateKeyFile != "" {
		key, err := os.ReadFile(cfg.GitHub.PrivateKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read private key file: %w", err)
		}
		return key, nil
	}

	secrets, err := gcp.NewSecretManagerClient(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = secrets.Close() }()

	key, err := secrets.FetchSecret(ctx, cfg.GitHub.PrivateKeySecret)
	if err != nil {
		return nil, err
	}
	return []byte(key), nil
}

package showcase

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/owasp-blt/design-showcase/internal/contest"
	"github.com/owasp-blt/design-showcase/internal/github"
)

// IssueSource is the slice of the GitHub API the build pipeline needs.
// *github.Client satisfies it.
type IssueSource interface {
	ListIssues(ctx context.Context, repo string, opts github.ListIssuesOptions) ([]github.Issue, error)
	ReactionTotals(ctx context.Context, repo string, number int) (github.ReactionTotals, error)
	LastComment(ctx context.Context, repo string, number int) (*github.Comment, error)
}

// Builder fetches contest submissions and writes the showcase page.
type Builder struct {
	source      IssueSource
	repo        string
	winnerLabel string
	logger      *log.Logger
	nowFunc     func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBuildLogger sets the logger for build progress output.
func WithBuildLogger(logger *log.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithWinnerLabel sets the label that marks winning submissions.
func WithWinnerLabel(label string) BuilderOption {
	return func(b *Builder) {
		if label != "" {
			b.winnerLabel = label
		}
	}
}

// WithBuildNowFunc sets a custom time function for testing.
func WithBuildNowFunc(fn func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.nowFunc = fn
	}
}

// NewBuilder creates a Builder for the given repository.
func NewBuilder(source IssueSource, repo string, opts ...BuilderOption) *Builder {
	b := &Builder{
		source:      source,
		repo:        repo,
		winnerLabel: "winner",
		logger:      log.Default(),
		nowFunc:     time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// logInfo logs build progress under the run's ID.
func (b *Builder) logInfo(runID, format string, args ...interface{}) {
	b.logger.Printf("[build %s] %s", runID, fmt.Sprintf(format, args...))
}

// logWarning logs a non-fatal build problem under the run's ID.
func (b *Builder) logWarning(runID, format string, args ...interface{}) {
	b.logger.Printf("[build %s] Warning: %s", runID, fmt.Sprintf(format, args...))
}

// Build fetches submissions for every contest, renders the page, and
// returns the HTML. API errors mid-fetch degrade the page rather than
// failing the build; only a completely failed issue listing is fatal.
func (b *Builder) Build(ctx context.Context, contests []contest.Contest) (string, error) {
	runID := uuid.New().String()[:8]
	b.logInfo(runID, "building showcase for %s (%d contests)", b.repo, len(contests))

	// One unlabelled listing serves every contest's title-prefix pickup,
	// so older submissions filed without a label still appear.
	allOpen, err := b.source.ListIssues(ctx, b.repo, github.ListIssuesOptions{})
	if err != nil {
		if len(allOpen) == 0 {
			return "", fmt.Errorf("failed to list open issues for %s: %w", b.repo, err)
		}
		b.logWarning(runID, "partial open-issue listing (%d issues): %v", len(allOpen), err)
	}

	sections := make([]Section, 0, len(contests))
	for _, c := range contests {
		section, err := b.buildSection(ctx, runID, c, allOpen)
		if err != nil {
			return "", err
		}
		sections = append(sections, section)
	}

	page := NewPage(b.repo, sections, b.nowFunc())
	html, err := Render(page)
	if err != nil {
		return "", err
	}

	b.logInfo(runID, "rendered %d submissions across %d contests", page.TotalAll, len(sections))
	return html, nil
}

// BuildToFile runs Build and writes the page to path.
func (b *Builder) BuildToFile(ctx context.Context, contests []contest.Contest, path string) error {
	html, err := b.Build(ctx, contests)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write showcase page: %w", err)
	}

	b.logger.Printf("wrote %s (%d bytes)", path, len(html))
	return nil
}

// buildSection collects a contest's submissions and builds its panel.
func (b *Builder) buildSection(ctx context.Context, runID string, c contest.Contest, allOpen []github.Issue) (Section, error) {
	labelled, err := b.source.ListIssues(ctx, b.repo, github.ListIssuesOptions{Label: c.Label})
	if err != nil {
		if len(labelled) == 0 {
			return Section{}, fmt.Errorf("failed to list %q issues for %s: %w", c.Label, b.repo, err)
		}
		b.logWarning(runID, "partial %q listing (%d issues): %v", c.Label, len(labelled), err)
	}

	issues := dedupeIssues(labelled, pickupByPrefix(allOpen, c.TitlePrefix))
	b.logInfo(runID, "contest %s: %d submissions", c.ID, len(issues))

	cards := make([]Card, 0, len(issues))
	winners := 0
	for _, issue := range issues {
		totals, err := b.source.ReactionTotals(ctx, b.repo, issue.Number)
		if err != nil {
			b.logWarning(runID, "reactions for #%d: %v", issue.Number, err)
		}

		var lastComment *github.Comment
		if issue.Comments > 0 {
			lastComment, err = b.source.LastComment(ctx, b.repo, issue.Number)
			if err != nil {
				b.logWarning(runID, "comments for #%d: %v", issue.Number, err)
			}
		}

		winner := issue.HasLabel(b.winnerLabel)
		if winner {
			winners++
		}

		cards = append(cards, BuildCard(issue, totals, lastComment, winner, c.TitlePrefix))
	}

	// Winners lead the grid; the stable sort keeps API order otherwise.
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Winner && !cards[j].Winner
	})

	return Section{
		Contest:     c,
		SubmitURL:   c.SubmitURL(b.repo),
		Cards:       cards,
		Total:       len(cards),
		WinnerCount: winners,
	}, nil
}

// pickupByPrefix returns the issues whose title carries the contest's
// prefix, catching submissions filed without the contest label.
func pickupByPrefix(issues []github.Issue, prefix string) []github.Issue {
	if prefix == "" {
		return nil
	}
	var picked []github.Issue
	for _, issue := range issues {
		if strings.HasPrefix(issue.Title, prefix) {
			picked = append(picked, issue)
		}
	}
	return picked
}

// dedupeIssues merges issue lists, keeping the first occurrence of each
// issue number.
func dedupeIssues(lists ...[]github.Issue) []github.Issue {
	seen := make(map[int]bool)
	var merged []github.Issue
	for _, list := range lists {
		for _, issue := range list {
			if seen[issue.Number] {
				continue
			}
			seen[issue.Number] = true
			merged = append(merged, issue)
		}
	}
	return merged
}

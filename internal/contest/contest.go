// Package contest defines the design contests that drive the showcase tabs.
package contest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Contest is one design contest. Each entry drives one tab on the
// showcase page and one GitHub issue label to collect submissions under.
type Contest struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Label           string `yaml:"label"`
	TitlePrefix     string `yaml:"title_prefix"`
	Template        string `yaml:"template"`
	Description     string `yaml:"description"`
	Prize           string `yaml:"prize"`
	Deadline        string `yaml:"deadline"` // RFC3339
	DeadlineDisplay string `yaml:"deadline_display"`
	Icon            string `yaml:"icon"`
}

// Defaults returns the built-in contest set used when no contests file
// is configured.
func Defaults() []Contest {
	return []Contest{
		{
			ID:              "blt-redesign",
			Name:            "BLT App Redesign",
			Label:           "design-submission",
			TitlePrefix:     "[Design]",
			Template:        "design-submission.yml",
			Description:     "Redesign the OWASP BLT application interface.",
			Prize:           "$25",
			Deadline:        "2026-06-01T00:00:00Z",
			DeadlineDisplay: "June 1, 2026",
			Icon:            "fa-solid fa-palette",
		},
		{
			ID:              "blt-logo",
			Name:            "BLT Logo Contest",
			Label:           "logo-submission",
			TitlePrefix:     "[Logo]",
			Template:        "logo-submission.yml",
			Description:     "Design a new logo for OWASP BLT and all its repositories.",
			Prize:           "$25",
			Deadline:        "2026-06-01T00:00:00Z",
			DeadlineDisplay: "June 1, 2026",
			Icon:            "fa-solid fa-brush",
		},
		{
			ID:              "blt-homepage",
			Name:            "BLT Homepage Design",
			Label:           "homepage-submission",
			TitlePrefix:     "[Homepage]",
			Template:        "homepage-submission.yml",
			Description:     "Design the new homepage for the OWASP BLT website.",
			Prize:           "$25",
			Deadline:        "2026-06-01T00:00:00Z",
			DeadlineDisplay: "June 1, 2026",
			Icon:            "fa-solid fa-house",
		},
	}
}

// contestsFile is the YAML document shape of a contests file.
type contestsFile struct {
	Contests []Contest `yaml:"contests"`
}

// LoadFile reads contest definitions from a YAML file. The file replaces
// the built-in defaults entirely.
func LoadFile(path string) ([]Contest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contests file: %w", err)
	}

	var doc contestsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse contests file: %w", err)
	}

	if len(doc.Contests) == 0 {
		return nil, fmt.Errorf("contests file %s defines no contests", path)
	}

	if err := Validate(doc.Contests); err != nil {
		return nil, err
	}

	return doc.Contests, nil
}

// Load returns the contest set: the YAML file at path when given,
// otherwise the built-in defaults.
func Load(path string) ([]Contest, error) {
	if path == "" {
		return Defaults(), nil
	}
	return LoadFile(path)
}

// Validate checks a contest set for the fields the build pipeline relies on.
func Validate(contests []Contest) error {
	seen := make(map[string]bool, len(contests))
	for i, c := range contests {
		if c.ID == "" {
			return fmt.Errorf("contest %d: id is required", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate contest id %q", c.ID)
		}
		seen[c.ID] = true

		if c.Label == "" {
			return fmt.Errorf("contest %q: label is required", c.ID)
		}
		if c.TitlePrefix == "" {
			return fmt.Errorf("contest %q: title_prefix is required", c.ID)
		}
		if c.Deadline != "" {
			if _, err := time.Parse(time.RFC3339, c.Deadline); err != nil {
				return fmt.Errorf("contest %q: invalid deadline: %w", c.ID, err)
			}
		}
	}
	return nil
}

// EarliestDeadline returns the earliest deadline across the contests,
// used for the page countdown timer. Contests without a deadline are
// skipped; the fallback is returned when none have one.
func EarliestDeadline(contests []Contest, fallback string) string {
	earliest := ""
	for _, c := range contests {
		if c.Deadline == "" {
			continue
		}
		if earliest == "" || c.Deadline < earliest {
			earliest = c.Deadline
		}
	}
	if earliest == "" {
		return fallback
	}
	return earliest
}

// SubmitURL returns the new-issue URL for a contest's issue form template.
func (c Contest) SubmitURL(repo string) string {
	if c.Template == "" {
		return fmt.Sprintf("https://github.com/%s/issues/new", repo)
	}
	return fmt.Sprintf("https://github.com/%s/issues/new?template=%s", repo, c.Template)
}

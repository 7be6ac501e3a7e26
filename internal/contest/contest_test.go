package contest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	contests := Defaults()

	if len(contests) != 3 {
		t.Fatalf("expected 3 built-in contests, got %d", len(contests))
	}
	if err := Validate(contests); err != nil {
		t.Errorf("built-in contests invalid: %v", err)
	}

	ids := map[string]bool{}
	for _, c := range contests {
		ids[c.ID] = true
	}
	for _, want := range []string{"blt-redesign", "blt-logo", "blt-homepage"} {
		if !ids[want] {
			t.Errorf("missing built-in contest %q", want)
		}
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	contests, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(contests) != 3 {
		t.Errorf("expected defaults, got %d contests", len(contests))
	}
}

func TestLoadFile(t *testing.T) {
	doc := `contests:
  - id: icons
    name: Icon Contest
    label: icon-submission
    title_prefix: "[Icons]"
    template: icon-submission.yml
    prize: $25
    deadline: 2026-09-01T00:00:00Z
    deadline_display: September 1, 2026
    icon: fa-solid fa-icons
`
	path := filepath.Join(t.TempDir(), "contests.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	contests, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(contests) != 1 {
		t.Fatalf("expected 1 contest, got %d", len(contests))
	}
	if contests[0].ID != "icons" || contests[0].Label != "icon-submission" {
		t.Errorf("unexpected contest: %+v", contests[0])
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty set", "contests: []", "defines no contests"},
		{"missing id", "contests:\n  - label: x\n    title_prefix: y", "id is required"},
		{"missing label", "contests:\n  - id: a\n    title_prefix: y", "label is required"},
		{"missing prefix", "contests:\n  - id: a\n    label: x", "title_prefix is required"},
		{"duplicate id", "contests:\n  - id: a\n    label: x\n    title_prefix: y\n  - id: a\n    label: z\n    title_prefix: w", "duplicate contest id"},
		{"bad deadline", "contests:\n  - id: a\n    label: x\n    title_prefix: y\n    deadline: tomorrow", "invalid deadline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "contests.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestEarliestDeadline(t *testing.T) {
	contests := []Contest{
		{ID: "a", Deadline: "2026-09-01T00:00:00Z"},
		{ID: "b", Deadline: "2026-06-01T00:00:00Z"},
		{ID: "c"},
	}

	if got := EarliestDeadline(contests, "fallback"); got != "2026-06-01T00:00:00Z" {
		t.Errorf("EarliestDeadline = %q", got)
	}
	if got := EarliestDeadline([]Contest{{ID: "c"}}, "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestSubmitURL(t *testing.T) {
	c := Contest{Template: "logo-submission.yml"}
	want := "https://github.com/o/r/issues/new?template=logo-submission.yml"
	if got := c.SubmitURL("o/r"); got != want {
		t.Errorf("SubmitURL = %q, want %q", got, want)
	}

	plain := Contest{}
	if got := plain.SubmitURL("o/r"); got != "https://github.com/o/r/issues/new" {
		t.Errorf("SubmitURL without template = %q", got)
	}
}

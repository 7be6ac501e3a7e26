package showcase

import (
	"strings"
	"testing"
	"time"

	"github.com/owasp-blt/design-showcase/internal/contest"
	"github.com/owasp-blt/design-showcase/internal/github"
)

func testSections() []Section {
	contests := contest.Defaults()
	sections := make([]Section, 0, len(contests))
	for _, c := range contests {
		sections = append(sections, Section{
			Contest:   c,
			SubmitURL: c.SubmitURL("OWASP-BLT/BLT-Design-Contest"),
		})
	}
	return sections
}

func TestNewPage(t *testing.T) {
	sections := testSections()
	sections[0].Total = 4
	sections[1].Total = 1

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	page := NewPage("OWASP-BLT/BLT-Design-Contest", sections, now)

	if page.TotalAll != 5 {
		t.Errorf("TotalAll = %d, want 5", page.TotalAll)
	}
	if page.LastUpdated != "14 Mar 2026 09:30 UTC" {
		t.Errorf("LastUpdated = %q", page.LastUpdated)
	}
	if page.Year != 2026 {
		t.Errorf("Year = %d", page.Year)
	}
	if page.EarliestDeadline != "2026-06-01T00:00:00Z" {
		t.Errorf("EarliestDeadline = %q", page.EarliestDeadline)
	}
	if page.FirstSubmitURL != sections[0].SubmitURL {
		t.Errorf("FirstSubmitURL = %q", page.FirstSubmitURL)
	}
}

func TestRender(t *testing.T) {
	sections := testSections()
	issue := submissionIssue()
	sections[0].Cards = []Card{BuildCard(issue, github.ReactionTotals{"+1": 2}, nil, false, "[Design]")}
	sections[0].Total = 1

	page := NewPage("OWASP-BLT/BLT-Design-Contest", sections, time.Now())

	html, err := Render(page)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		`id="tab-blt-redesign"`,
		`id="contest-blt-logo"`,
		`id="cards-grid-blt-homepage"`,
		"Dark mode dashboard",
		`src="https://example.com/shot.png"`,
		"No submissions yet",
		"data-thumbs-btn",
		"new Date('2026-06-01T00:00:00Z')",
		"https://api.github.com/repos/",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestRender_EscapesIssueContent(t *testing.T) {
	sections := testSections()
	issue := submissionIssue()
	issue.Title = `[Design] <script>alert("x")</script>`
	sections[0].Cards = []Card{BuildCard(issue, nil, nil, false, "[Design]")}
	sections[0].Total = 1

	html, err := Render(NewPage("OWASP-BLT/BLT-Design-Contest", sections, time.Now()))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if strings.Contains(html, `<script>alert("x")</script>`) {
		t.Error("issue title rendered unescaped")
	}
}

func TestRender_WinnerBanner(t *testing.T) {
	sections := testSections()
	sections[0].Cards = []Card{BuildCard(submissionIssue(), nil, nil, true, "[Design]")}
	sections[0].Total = 1
	sections[0].WinnerCount = 1

	html, err := Render(NewPage("OWASP-BLT/BLT-Design-Contest", sections, time.Now()))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{
		"Winner Selected!",
		`data-winner="true"`,
		"ring-amber-400",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

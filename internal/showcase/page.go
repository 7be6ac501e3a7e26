package showcase

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/owasp-blt/design-showcase/internal/contest"
)

// lastUpdatedFormat renders timestamps like "24 Aug 2026 15:04 UTC".
const lastUpdatedFormat = "02 Jan 2006 15:04 UTC"

// Section is one contest panel: the contest metadata plus its rendered
// submissions, winners first.
type Section struct {
	Contest     contest.Contest
	SubmitURL   string
	Cards       []Card
	Total       int
	WinnerCount int
}

// Page is the full document view model.
type Page struct {
	Repo             string
	Sections         []Section
	TotalAll         int
	FirstSubmitURL   string
	EarliestDeadline string
	LastUpdated      string
	Year             int
}

var pageTemplates = template.Must(template.New("showcase").Funcs(template.FuncMap{
	"plural": plural,
}).Parse(cardTemplate + sectionTemplate + pageTemplate))

// NewPage assembles the page view model from per-contest sections.
func NewPage(repo string, sections []Section, now time.Time) Page {
	total := 0
	for _, s := range sections {
		total += s.Total
	}

	firstSubmit := fmt.Sprintf("https://github.com/%s/issues/new/choose", repo)
	deadline := ""
	if len(sections) > 0 {
		firstSubmit = sections[0].SubmitURL
		contests := make([]contest.Contest, 0, len(sections))
		for _, s := range sections {
			contests = append(contests, s.Contest)
		}
		deadline = contest.EarliestDeadline(contests, "")
	}

	return Page{
		Repo:             repo,
		Sections:         sections,
		TotalAll:         total,
		FirstSubmitURL:   firstSubmit,
		EarliestDeadline: deadline,
		LastUpdated:      now.UTC().Format(lastUpdatedFormat),
		Year:             now.UTC().Year(),
	}
}

// Render produces the complete HTML document.
func Render(page Page) (string, error) {
	var buf strings.Builder
	if err := pageTemplates.ExecuteTemplate(&buf, "page", page); err != nil {
		return "", fmt.Errorf("failed to render showcase page: %w", err)
	}
	return buf.String(), nil
}

package github

// User is the author of an issue or comment.
type User struct {
	Login     string `json:"login"`
	HTMLURL   string `json:"html_url"`
	AvatarURL string `json:"avatar_url"`
}

// Label is a label attached to an issue.
type Label struct {
	Name string `json:"name"`
}

// Issue is a GitHub issue as returned by the REST API. Read-only input;
// only the fields the showcase consumes are mapped.
type Issue struct {
	Number    int     `json:"number"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	HTMLURL   string  `json:"html_url"`
	CreatedAt string  `json:"created_at"`
	Comments  int     `json:"comments"`
	User      User    `json:"user"`
	Labels    []Label `json:"labels"`
}

// HasLabel reports whether the issue carries the named label.
func (i Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// Comment is an issue comment.
type Comment struct {
	Body      string `json:"body"`
	HTMLURL   string `json:"html_url"`
	CreatedAt string `json:"created_at"`
	User      User   `json:"user"`
}

// reaction is one reaction record from the reactions endpoint.
type reaction struct {
	Content string `json:"content"`
}

// ReactionContents lists the reaction contents the showcase renders,
// in display order.
var ReactionContents = []string{"+1", "-1", "laugh", "hooray", "confused", "heart", "rocket", "eyes"}

// ReactionEmoji maps a reaction content to its emoji.
var ReactionEmoji = map[string]string{
	"+1":       "\U0001F44D",
	"-1":       "\U0001F44E",
	"laugh":    "\U0001F604",
	"hooray":   "\U0001F389",
	"confused": "\U0001F615",
	"heart":    "❤️",
	"rocket":   "\U0001F680",
	"eyes":     "\U0001F440",
}

// ReactionTotals holds per-content reaction counts for one issue.
type ReactionTotals map[string]int

// Thumbs returns the +1 count.
func (r ReactionTotals) Thumbs() int {
	return r["+1"]
}

// Total returns the sum over all known reaction contents.
func (r ReactionTotals) Total() int {
	total := 0
	for _, content := range ReactionContents {
		total += r[content]
	}
	return total
}

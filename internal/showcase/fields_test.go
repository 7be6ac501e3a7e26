package showcase

import (
	"strings"
	"testing"
)

func TestParseBody(t *testing.T) {
	body := "### Design Category\n\nLogo / Brand Identity\n\n### Description\n\nA fresh new logo.\n\n### Design/Prototype Link\n\nhttps://figma.com/file/abc"

	fields := ParseBody(body)

	tests := []struct {
		key  string
		want string
	}{
		{"design_category", "Logo / Brand Identity"},
		{"description", "A fresh new logo."},
		{"design_prototype_link", "https://figma.com/file/abc"},
	}

	for _, tt := range tests {
		if got := fields[tt.key]; got != tt.want {
			t.Errorf("fields[%q] = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParseBody_Empty(t *testing.T) {
	fields := ParseBody("")
	if len(fields) != 0 {
		t.Errorf("expected no fields, got %v", fields)
	}
}

func TestParseBody_HeadingAtStart(t *testing.T) {
	// A heading on the very first line must still be recognized.
	fields := ParseBody("### Description\n\nStarts immediately.")
	if got := fields["description"]; got != "Starts immediately." {
		t.Errorf("description = %q", got)
	}
}

func TestParseBody_DuplicateHeadings(t *testing.T) {
	fields := ParseBody("### Description\nfirst\n### Description\nsecond")
	if got := fields["description"]; got != "second" {
		t.Errorf("expected last value to win, got %q", got)
	}
}

func TestParseBody_MultilineValue(t *testing.T) {
	fields := ParseBody("### Description\nline one\nline two\n\n### Category\nOther")
	if got := fields["description"]; got != "line one\nline two" {
		t.Errorf("description = %q", got)
	}
}

func TestPreviewURL(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		body   string
		want   string
	}{
		{
			name:   "direct URL in field",
			fields: Fields{"preview_image_url": "https://example.com/shot.png"},
			want:   "https://example.com/shot.png",
		},
		{
			name:   "markdown image in field",
			fields: Fields{"preview_image_url": "![screenshot](https://example.com/img.png)"},
			want:   "https://example.com/img.png",
		},
		{
			name:   "html img in field",
			fields: Fields{"preview_image": `<img width="400" src="https://example.com/a.jpg" alt="x">`},
			want:   "https://example.com/a.jpg",
		},
		{
			name:   "legacy preview_url key",
			fields: Fields{"preview_url": "https://example.com/p.webp"},
			want:   "https://example.com/p.webp",
		},
		{
			name:   "markdown image in body fallback",
			fields: Fields{},
			body:   "some text\n![alt](https://example.com/body.png)\nmore",
			want:   "https://example.com/body.png",
		},
		{
			name:   "html img in body fallback",
			fields: Fields{},
			body:   `uploaded: <IMG src="https://example.com/upper.png">`,
			want:   "https://example.com/upper.png",
		},
		{
			name:   "bare image URL in body",
			fields: Fields{},
			body:   "see https://example.com/final.jpeg for details",
			want:   "https://example.com/final.jpeg",
		},
		{
			name:   "non-image bare URL ignored",
			fields: Fields{},
			body:   "see https://example.com/page.html",
			want:   "",
		},
		{
			name:   "field wins over body",
			fields: Fields{"preview_image_url": "https://example.com/field.png"},
			body:   "![x](https://example.com/body.png)",
			want:   "https://example.com/field.png",
		},
		{
			name:   "non-URL field value falls through",
			fields: Fields{"preview_image_url": "_No response_"},
			body:   "![x](https://example.com/body.png)",
			want:   "https://example.com/body.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreviewURL(tt.fields, tt.body); got != tt.want {
				t.Errorf("PreviewURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDesignURL(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{"primary key", Fields{"design_prototype_link": "https://figma.com/x"}, "https://figma.com/x"},
		{"legacy design_url", Fields{"design_url": "http://example.com"}, "http://example.com"},
		{"legacy prototype_link", Fields{"prototype_link": "https://proto.example"}, "https://proto.example"},
		{"non-http rejected", Fields{"design_prototype_link": "figma.com/x"}, ""},
		{"missing", Fields{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DesignURL(tt.fields); got != tt.want {
				t.Errorf("DesignURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{"design_category", Fields{"design_category": "Icon Set"}, "Icon Set"},
		{"legacy category", Fields{"category": "Mobile App"}, "Mobile App"},
		{"default", Fields{}, "Other"},
		{"design_category wins", Fields{"design_category": "Icon Set", "category": "Mobile App"}, "Icon Set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Category(tt.fields); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{
			name:   "plain text",
			fields: Fields{"description": "A clean redesign."},
			want:   "A clean redesign.",
		},
		{
			name:   "fenced code block unwrapped",
			fields: Fields{"description": "```\nwrapped text\n```"},
			want:   "wrapped text",
		},
		{
			name:   "checkbox lines removed",
			fields: Fields{"description": "Real text\n- [x] I agree to the terms\n- [ ] Other box"},
			want:   "Real text",
		},
		{
			name:   "missing",
			fields: Fields{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Description(tt.fields); got != tt.want {
				t.Errorf("Description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescription_Truncated(t *testing.T) {
	long := strings.Repeat("a", 250)
	got := Description(Fields{"description": long})

	if want := strings.Repeat("a", 197) + "…"; got != want {
		t.Errorf("truncated length = %d, want 198 runes ending in ellipsis", len([]rune(got)))
	}
}

func TestCommentSnippet(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plain", "Nice work!", "Nice work!"},
		{"image stripped", "Look ![shot](https://x.com/a.png) here", "Look  here"},
		{"link reduced to text", "See [the doc](https://x.com/doc) please", "See the doc please"},
		{"whitespace trimmed", "  hello  ", "hello"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommentSnippet(tt.body); got != tt.want {
				t.Errorf("CommentSnippet(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestCommentSnippet_Truncated(t *testing.T) {
	long := strings.Repeat("b", 130)
	got := CommentSnippet(long)

	if want := strings.Repeat("b", 117) + "…"; got != want {
		t.Errorf("truncated snippet = %q", got)
	}
}

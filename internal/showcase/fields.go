// Package showcase turns contest submission issues into the static
// showcase page: issue-body field extraction, card and page rendering,
// and the build pipeline that ties them to the GitHub API.
package showcase

import (
	"regexp"
	"strings"
)

// Issue forms render as markdown with ### headings above each answer.
var (
	sectionRe       = regexp.MustCompile(`\n###\s+`)
	markdownImageRe = regexp.MustCompile(`!\[.*?\]\((https?://[^)]+)\)`)
	htmlImageRe     = regexp.MustCompile(`(?i)<img\s[^>]*src="(https?://[^"]+)"`)
	bareImageURLRe  = regexp.MustCompile(`(?i)(https?://\S+\.(?:png|jpg|jpeg|gif|webp|svg))`)

	fencedBlockRe  = regexp.MustCompile("(?ms)^```[^\n]*\n(.*?)^```\\s*$")
	loneFenceRe    = regexp.MustCompile("(?m)^```\\w*\\s*$")
	checkboxLineRe = regexp.MustCompile(`(?m)^[-*]\s+\[[ x]\].*$`)

	commentImageRe = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	commentLinkRe  = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

const (
	maxDescriptionLength = 200
	maxCommentLength     = 120
)

// Fields is the key/value mapping extracted from an issue-form body.
// Keys are normalized headings; last write wins on duplicates.
type Fields map[string]string

// ParseBody extracts structured fields from a GitHub issue-form body by
// splitting on markdown heading boundaries. Headings are normalized to
// lower-case with slashes and spaces collapsed to underscores.
func ParseBody(body string) Fields {
	fields := make(Fields)
	if body == "" {
		return fields
	}

	sections := sectionRe.Split("\n"+body, -1)
	for _, section := range sections {
		lines := strings.Split(strings.TrimSpace(section), "\n")
		if len(lines) == 0 || lines[0] == "" {
			continue
		}
		heading := strings.TrimSpace(lines[0])
		value := strings.TrimSpace(strings.Join(lines[1:], "\n"))

		key := strings.ToLower(heading)
		key = strings.ReplaceAll(key, "/", " ")
		key = strings.ReplaceAll(key, " ", "_")
		key = strings.Trim(key, "_")
		fields[key] = value
	}
	return fields
}

// PreviewURL finds the preview image URL from parsed fields or the raw
// body. Known field keys are tried first (including legacy keys), each
// accepting a direct URL, markdown image syntax, or an HTML img tag;
// then the body is scanned for the same patterns and finally for a bare
// URL with an image extension.
func PreviewURL(fields Fields, body string) string {
	for _, key := range []string{"preview_image_url", "preview_url", "preview_image"} {
		val := strings.TrimSpace(fields[key])
		if val == "" {
			continue
		}
		if strings.HasPrefix(val, "http") {
			return val
		}
		if m := markdownImageRe.FindStringSubmatch(val); m != nil {
			return m[1]
		}
		if m := htmlImageRe.FindStringSubmatch(val); m != nil {
			return m[1]
		}
	}

	if m := markdownImageRe.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	if m := htmlImageRe.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	if m := bareImageURLRe.FindStringSubmatch(body); m != nil {
		return m[1]
	}

	return ""
}

// DesignURL returns the external design/prototype link, or empty.
func DesignURL(fields Fields) string {
	for _, key := range []string{"design_prototype_link", "design_url", "prototype_link"} {
		val := strings.TrimSpace(fields[key])
		if val != "" && strings.HasPrefix(val, "http") {
			return val
		}
	}
	return ""
}

// Category returns the submission category, defaulting to "Other".
func Category(fields Fields) string {
	if val, ok := fields["design_category"]; ok {
		return strings.TrimSpace(val)
	}
	if val, ok := fields["category"]; ok {
		return strings.TrimSpace(val)
	}
	return "Other"
}

// Description returns the free-text description with markdown code
// fences and checkbox noise stripped, truncated to 200 runes.
// HTML escaping is the renderer's job.
func Description(fields Fields) string {
	desc := strings.TrimSpace(fields["description"])
	desc = fencedBlockRe.ReplaceAllString(desc, "$1")
	desc = loneFenceRe.ReplaceAllString(desc, "")
	desc = checkboxLineRe.ReplaceAllString(desc, "")
	desc = strings.TrimSpace(desc)
	return truncate(desc, maxDescriptionLength)
}

// CommentSnippet reduces a comment body to plain text suitable for the
// card footer: markdown images removed, links reduced to their text,
// truncated to 120 runes.
func CommentSnippet(body string) string {
	s := strings.TrimSpace(body)
	s = commentImageRe.ReplaceAllString(s, "")
	s = commentLinkRe.ReplaceAllString(s, "$1")
	s = strings.TrimSpace(s)
	return truncate(s, maxCommentLength)
}

// truncate shortens s to at most max runes, replacing the tail with an
// ellipsis when it does.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "…"
}

package showcase

import (
	"fmt"
	"strings"

	"github.com/owasp-blt/design-showcase/internal/github"
)

// categoryClasses maps a submission category to its badge color classes.
// Unknown categories fall back to gray.
var categoryClasses = map[string]string{
	"UI / Website Redesign":    "bg-blue-100 text-blue-700 dark:bg-blue-900 dark:text-blue-200",
	"Logo / Brand Identity":    "bg-purple-100 text-purple-700 dark:bg-purple-900 dark:text-purple-200",
	"Banner / Marketing":       "bg-yellow-100 text-yellow-700 dark:bg-yellow-900 dark:text-yellow-200",
	"Icon Set":                 "bg-green-100 text-green-700 dark:bg-green-900 dark:text-green-200",
	"Mobile App":               "bg-indigo-100 text-indigo-700 dark:bg-indigo-900 dark:text-indigo-200",
	"T-Shirt / Apparel Design": "bg-pink-100 text-pink-700 dark:bg-pink-900 dark:text-pink-200",
}

const defaultCategoryClass = "bg-gray-100 text-gray-700 dark:bg-gray-700 dark:text-gray-200"

// ReactionPill is one rendered reaction counter. The thumbs-up pill is
// a button wired to the client script; the rest are static.
type ReactionPill struct {
	Emoji  string
	Count  int
	Thumbs bool
}

// CardComment is the last-comment snippet shown on a card.
type CardComment struct {
	Login      string
	URL        string
	Avatar     string
	Body       string
	CountLabel string // e.g. "3 comments · ", empty when the issue has none
}

// Card is the view model for a single submission, including the sort
// keys the client script reads from data attributes.
type Card struct {
	Number         int
	Title          string
	IssueURL       string
	Created        string
	AuthorLogin    string
	AuthorURL      string
	AuthorAvatar   string
	PreviewURL     string
	DesignURL      string
	Category       string
	CategoryClass  string
	Description    string
	Thumbs         int
	TotalReactions int
	Winner         bool
	Pills          []ReactionPill
	Comment        *CardComment
}

// BuildCard derives the card view model for a single submission issue.
func BuildCard(issue github.Issue, totals github.ReactionTotals, lastComment *github.Comment, winner bool, titlePrefix string) Card {
	title := issue.Title
	if title == "" {
		title = "Untitled"
	}
	title = strings.TrimSpace(strings.ReplaceAll(title, titlePrefix+" ", ""))

	created := issue.CreatedAt
	if len(created) > 10 {
		created = created[:10]
	}

	fields := ParseBody(issue.Body)

	card := Card{
		Number:         issue.Number,
		Title:          title,
		IssueURL:       issue.HTMLURL,
		Created:        created,
		AuthorLogin:    issue.User.Login,
		AuthorURL:      issue.User.HTMLURL,
		AuthorAvatar:   issue.User.AvatarURL,
		PreviewURL:     PreviewURL(fields, issue.Body),
		DesignURL:      DesignURL(fields),
		Category:       Category(fields),
		Description:    Description(fields),
		Thumbs:         totals.Thumbs(),
		TotalReactions: totals.Total(),
		Winner:         winner,
	}

	if card.AuthorLogin == "" {
		card.AuthorLogin = "unknown"
	}
	if card.AuthorURL == "" {
		card.AuthorURL = "#"
	}
	if card.IssueURL == "" {
		card.IssueURL = "#"
	}

	card.CategoryClass = categoryClasses[card.Category]
	if card.CategoryClass == "" {
		card.CategoryClass = defaultCategoryClass
	}

	if card.TotalReactions > 0 {
		for _, content := range github.ReactionContents {
			count := totals[content]
			if count == 0 {
				continue
			}
			card.Pills = append(card.Pills, ReactionPill{
				Emoji:  github.ReactionEmoji[content],
				Count:  count,
				Thumbs: content == "+1",
			})
		}
	}

	if lastComment != nil {
		if body := CommentSnippet(lastComment.Body); body != "" {
			login := lastComment.User.Login
			if login == "" {
				login = "unknown"
			}
			countLabel := ""
			if issue.Comments > 0 {
				countLabel = fmt.Sprintf("%d comment%s · ", issue.Comments, plural(issue.Comments))
			}
			card.Comment = &CardComment{
				Login:      login,
				URL:        lastComment.User.HTMLURL,
				Avatar:     lastComment.User.AvatarURL,
				Body:       body,
				CountLabel: countLabel,
			}
		}
	}

	return card
}

// plural returns "s" for counts other than one.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

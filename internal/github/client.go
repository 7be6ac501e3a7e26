// Package github provides a minimal GitHub REST API client for the
// showcase build pipeline: issue listing, reaction tallies, comments,
// and App authentication.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const apiVersion = "2022-11-28"

// Client is a GitHub REST API client. All fetches are synchronous and
// best-effort: pagination stops on the first HTTP error and returns
// whatever was already accumulated.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	pageSize   int
	logger     *log.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithBaseURL sets a custom base URL for the GitHub API (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTokenSource sets the authentication token source.
func WithTokenSource(ts TokenSource) ClientOption {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithPageSize sets the per_page value used for pagination (1..100).
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 && n <= 100 {
			c.pageSize = n
		}
	}
}

// WithLogger sets the logger used for pagination warnings.
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Client with the given options.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://api.github.com",
		pageSize:   100,
		logger:     log.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListIssuesOptions narrows an issue listing.
type ListIssuesOptions struct {
	// Label filters to issues carrying the label. Empty means all issues.
	Label string
}

// ListIssues returns the open issues of a repository, paginating until a
// short page. A mid-pagination HTTP error is logged and ends the loop;
// the issues fetched so far are returned along with the error.
func (c *Client) ListIssues(ctx context.Context, repo string, opts ListIssuesOptions) ([]Issue, error) {
	query := url.Values{"state": {"open"}}
	if opts.Label != "" {
		query.Set("labels", opts.Label)
	}

	var issues []Issue
	err := c.paginate(ctx, fmt.Sprintf("/repos/%s/issues", repo), query, func(page []byte) (int, error) {
		var batch []Issue
		if err := json.Unmarshal(page, &batch); err != nil {
			return 0, fmt.Errorf("failed to parse issues page: %w", err)
		}
		issues = append(issues, batch...)
		return len(batch), nil
	})
	return issues, err
}

// ReactionTotals returns per-content reaction counts for an issue.
// Unknown reaction contents are ignored.
func (c *Client) ReactionTotals(ctx context.Context, repo string, number int) (ReactionTotals, error) {
	totals := make(ReactionTotals)
	err := c.paginate(ctx, fmt.Sprintf("/repos/%s/issues/%d/reactions", repo, number), nil, func(page []byte) (int, error) {
		var batch []reaction
		if err := json.Unmarshal(page, &batch); err != nil {
			return 0, fmt.Errorf("failed to parse reactions page: %w", err)
		}
		for _, r := range batch {
			if _, known := ReactionEmoji[r.Content]; known {
				totals[r.Content]++
			}
		}
		return len(batch), nil
	})
	return totals, err
}

// LastComment returns the most recent comment on an issue, or nil when
// the issue has none.
func (c *Client) LastComment(ctx context.Context, repo string, number int) (*Comment, error) {
	var comments []Comment
	err := c.paginate(ctx, fmt.Sprintf("/repos/%s/issues/%d/comments", repo, number), nil, func(page []byte) (int, error) {
		var batch []Comment
		if err := json.Unmarshal(page, &batch); err != nil {
			return 0, fmt.Errorf("failed to parse comments page: %w", err)
		}
		comments = append(comments, batch...)
		return len(batch), nil
	})
	if len(comments) == 0 {
		return nil, err
	}
	return &comments[len(comments)-1], err
}

// paginate fetches pages until collect reports a page shorter than the
// page size. The first HTTP error is logged and returned; results
// accumulated by collect up to that point remain valid.
func (c *Client) paginate(ctx context.Context, path string, query url.Values, collect func(page []byte) (int, error)) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("per_page", fmt.Sprintf("%d", c.pageSize))

	for page := 1; ; page++ {
		query.Set("page", fmt.Sprintf("%d", page))

		body, err := c.get(ctx, path+"?"+query.Encode())
		if err != nil {
			c.logger.Printf("Warning: GitHub API error for %s page %d: %v", path, page, err)
			return err
		}

		n, err := collect(body)
		if err != nil {
			c.logger.Printf("Warning: %v", err)
			return err
		}

		if n < c.pageSize {
			return nil
		}
	}
}

// get performs a single authenticated GET and returns the response body.
func (c *Client) get(ctx context.Context, pathAndQuery string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathAndQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to obtain token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// apiError represents an error response from the GitHub API.
type apiError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

// parseAPIError parses a GitHub API error response.
func parseAPIError(statusCode int, body []byte) error {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return fmt.Errorf("API error (status %d): %s", statusCode, string(body))
	}

	switch statusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("unauthorized: %s (check token validity)", apiErr.Message)
	case http.StatusForbidden:
		return fmt.Errorf("forbidden: %s (possibly rate limited; set GITHUB_TOKEN)", apiErr.Message)
	case http.StatusNotFound:
		return fmt.Errorf("not found: %s (check repository name)", apiErr.Message)
	default:
		return fmt.Errorf("API error (status %d): %s", statusCode, apiErr.Message)
	}
}

package github

import "context"

// TokenSource supplies bearer tokens for API requests. Implementations
// may refresh tokens under the hood; callers treat every request
// independently.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// staticTokenSource wraps a fixed token (typically GITHUB_TOKEN).
type staticTokenSource string

// StaticTokenSource returns a TokenSource that always yields token.
func StaticTokenSource(token string) TokenSource {
	return staticTokenSource(token)
}

func (s staticTokenSource) Token(context.Context) (string, error) {
	return string(s), nil
}

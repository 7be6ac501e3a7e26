package github

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// maxJWTDuration is the longest App JWT lifetime GitHub accepts.
const maxJWTDuration = 10 * time.Minute

// tokenRefreshBuffer is how long before expiry an installation token is
// considered stale. Installation tokens live for one hour.
const tokenRefreshBuffer = 5 * time.Minute

// installationToken is the response of the access_tokens endpoint.
type installationToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AppTokenSource authenticates as a GitHub App installation: it mints a
// short-lived RS256 JWT from the App's private key, exchanges it for an
// installation access token, and caches the result until it nears expiry.
type AppTokenSource struct {
	appID          string
	installationID int64
	privateKey     *rsa.PrivateKey

	httpClient *http.Client
	baseURL    string
	nowFunc    func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// AppTokenOption configures an AppTokenSource.
type AppTokenOption func(*AppTokenSource)

// WithAppHTTPClient sets a custom HTTP client for the token exchange.
func WithAppHTTPClient(client *http.Client) AppTokenOption {
	return func(a *AppTokenSource) {
		a.httpClient = client
	}
}

// WithAppBaseURL sets a custom base URL for the GitHub API (useful for testing).
func WithAppBaseURL(url string) AppTokenOption {
	return func(a *AppTokenSource) {
		a.baseURL = url
	}
}

// WithNowFunc sets a custom time function for testing.
func WithNowFunc(fn func() time.Time) AppTokenOption {
	return func(a *AppTokenSource) {
		a.nowFunc = fn
	}
}

// NewAppTokenSource creates an AppTokenSource from App credentials.
// The private key must be PEM-encoded RSA (PKCS#1 or PKCS#8).
func NewAppTokenSource(appID string, installationID int64, privateKeyPEM []byte, opts ...AppTokenOption) (*AppTokenSource, error) {
	if appID == "" {
		return nil, fmt.Errorf("app ID cannot be empty")
	}
	if installationID <= 0 {
		return nil, fmt.Errorf("installation ID must be positive")
	}

	key, err := parsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	a := &AppTokenSource{
		appID:          appID,
		installationID: installationID,
		privateKey:     key,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		baseURL:        "https://api.github.com",
		nowFunc:        time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Token returns a valid installation token, refreshing if necessary.
func (a *AppTokenSource) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && a.expiresAt.After(a.nowFunc().Add(tokenRefreshBuffer)) {
		return a.token, nil
	}

	signed, err := a.mintJWT(maxJWTDuration)
	if err != nil {
		return "", fmt.Errorf("failed to mint App JWT: %w", err)
	}

	tok, err := a.exchange(ctx, signed)
	if err != nil {
		return "", fmt.Errorf("failed to exchange App JWT: %w", err)
	}

	a.token = tok.Token
	a.expiresAt = tok.ExpiresAt

	return a.token, nil
}

// ExpiresAt returns the expiration time of the cached token.
// Returns zero time if no token has been fetched.
func (a *AppTokenSource) ExpiresAt() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.expiresAt
}

// mintJWT signs an RS256 App JWT valid for the given duration.
// GitHub rejects JWTs with a lifetime over ten minutes.
func (a *AppTokenSource) mintJWT(duration time.Duration) (string, error) {
	if duration <= 0 || duration > maxJWTDuration {
		return "", fmt.Errorf("JWT duration %v out of range (0, %v]", duration, maxJWTDuration)
	}

	now := a.nowFunc()
	claims := jwt.RegisteredClaims{
		Issuer:    a.appID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(a.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// exchange trades an App JWT for an installation access token.
func (a *AppTokenSource) exchange(ctx context.Context, appJWT string) (*installationToken, error) {
	url := fmt.Sprintf("%s/app/installations/%d/access_tokens", a.baseURL, a.installationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+appJWT)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	var token installationToken
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}

	return &token, nil
}

// parsePrivateKey parses a PEM-encoded RSA private key.
func parsePrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block")
	}

	if block.Type == "RSA PRIVATE KEY" {
		return x509.ParsePKCS1PrivateKey(block.Bytes)
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA")
	}

	return rsaKey, nil
}

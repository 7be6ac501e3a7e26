package github

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testPrivateKeyPEM(t *testing.T) []byte {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}

func TestNewAppTokenSource_Validation(t *testing.T) {
	keyPEM := testPrivateKeyPEM(t)

	tests := []struct {
		name           string
		appID          string
		installationID int64
		key            []byte
	}{
		{"empty app ID", "", 123, keyPEM},
		{"zero installation ID", "456", 0, keyPEM},
		{"negative installation ID", "456", -1, keyPEM},
		{"garbage key", "456", 123, []byte("not a pem")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAppTokenSource(tt.appID, tt.installationID, tt.key); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewAppTokenSource_PKCS8Key(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("failed to marshal key: %v", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	if _, err := NewAppTokenSource("456", 123, keyPEM); err != nil {
		t.Errorf("PKCS#8 key rejected: %v", err)
	}
}

func TestAppTokenSource_Token(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	var exchanges int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/app/installations/123/access_tokens" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || len(auth) < 20 {
			t.Errorf("expected a signed JWT in auth header, got %q", auth)
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(installationToken{
			Token:     "ghs_installation_token",
			ExpiresAt: expiresAt,
		})
	}))
	defer server.Close()

	source, err := NewAppTokenSource("456", 123, testPrivateKeyPEM(t),
		WithAppBaseURL(server.URL),
	)
	if err != nil {
		t.Fatalf("failed to create token source: %v", err)
	}

	token, err := source.Token(context.Background())
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if token != "ghs_installation_token" {
		t.Errorf("token = %q", token)
	}
	if got := source.ExpiresAt(); !got.Equal(expiresAt) {
		t.Errorf("ExpiresAt = %v, want %v", got, expiresAt)
	}

	// Second call is served from cache.
	if _, err := source.Token(context.Background()); err != nil {
		t.Fatalf("cached Token failed: %v", err)
	}
	if exchanges != 1 {
		t.Errorf("expected 1 exchange, got %d", exchanges)
	}
}

func TestAppTokenSource_RefreshNearExpiry(t *testing.T) {
	var exchanges int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(installationToken{
			Token:     "ghs_token",
			ExpiresAt: time.Now().Add(time.Hour),
		})
	}))
	defer server.Close()

	now := time.Now()
	source, err := NewAppTokenSource("456", 123, testPrivateKeyPEM(t),
		WithAppBaseURL(server.URL),
		WithNowFunc(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("failed to create token source: %v", err)
	}

	if _, err := source.Token(context.Background()); err != nil {
		t.Fatalf("Token failed: %v", err)
	}

	// Inside the refresh buffer the cached token is stale.
	now = now.Add(56 * time.Minute)
	if _, err := source.Token(context.Background()); err != nil {
		t.Fatalf("refresh Token failed: %v", err)
	}
	if exchanges != 2 {
		t.Errorf("expected a refresh exchange, got %d total", exchanges)
	}
}

func TestAppTokenSource_ExchangeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "A JSON web token could not be decoded"}`))
	}))
	defer server.Close()

	source, err := NewAppTokenSource("456", 123, testPrivateKeyPEM(t),
		WithAppBaseURL(server.URL),
	)
	if err != nil {
		t.Fatalf("failed to create token source: %v", err)
	}

	if _, err := source.Token(context.Background()); err == nil {
		t.Fatal("expected exchange error")
	}
}

func TestMintJWT_DurationLimit(t *testing.T) {
	source, err := NewAppTokenSource("456", 123, testPrivateKeyPEM(t))
	if err != nil {
		t.Fatalf("failed to create token source: %v", err)
	}

	if _, err := source.mintJWT(15 * time.Minute); err == nil {
		t.Error("expected error for JWT over ten minutes")
	}
	if _, err := source.mintJWT(0); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := source.mintJWT(maxJWTDuration); err != nil {
		t.Errorf("max duration rejected: %v", err)
	}
}

// Package gcp fetches build credentials from GCP Secret Manager, for
// pipelines that keep the GitHub App private key out of CI variables.
package gcp

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// SecretFetcher defines the interface for fetching secrets.
type SecretFetcher interface {
	FetchSecret(ctx context.Context, secretPath string) (string, error)
	Close() error
}

// SecretManagerClient wraps the GCP Secret Manager client.
type SecretManagerClient struct {
	client    *secretmanager.Client
	projectID string
}

// NewSecretManagerClient creates a new Secret Manager client. The project
// ID is taken from the environment; it is only needed when secret paths
// are bare names rather than full resource paths.
func NewSecretManagerClient(ctx context.Context, opts ...option.ClientOption) (*SecretManagerClient, error) {
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret manager client: %w", err)
	}

	return &SecretManagerClient{
		client:    client,
		projectID: projectIDFromEnv(),
	}, nil
}

// projectIDFromEnv returns the GCP project ID from the usual environment
// variables, or empty when none is set.
func projectIDFromEnv() string {
	for _, key := range []string{"GOOGLE_CLOUD_PROJECT", "GCP_PROJECT", "GCLOUD_PROJECT"} {
		if projectID := os.Getenv(key); projectID != "" {
			return projectID
		}
	}
	return ""
}

// FetchSecret retrieves a secret value. secretPath can be:
//   - projects/PROJECT/secrets/NAME/versions/VERSION
//   - projects/PROJECT/secrets/NAME (defaults to latest)
//   - NAME (requires a project ID in the environment)
func (c *SecretManagerClient) FetchSecret(ctx context.Context, secretPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	name, err := c.normalizeSecretPath(secretPath)
	if err != nil {
		return "", err
	}

	result, err := c.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to access secret version: %w", err)
	}

	return string(result.Payload.Data), nil
}

// normalizeSecretPath expands short secret references to full resource paths.
func (c *SecretManagerClient) normalizeSecretPath(secretPath string) (string, error) {
	if strings.HasPrefix(secretPath, "projects/") {
		if strings.Contains(secretPath, "/versions/") {
			return secretPath, nil
		}
		if strings.Contains(secretPath, "/secrets/") {
			return secretPath + "/versions/latest", nil
		}
		return "", fmt.Errorf("malformed secret path %q", secretPath)
	}

	if c.projectID == "" {
		return "", fmt.Errorf("secret %q is a bare name but no GCP project ID is set (set GOOGLE_CLOUD_PROJECT or use a full projects/... path)", secretPath)
	}

	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", c.projectID, path.Base(secretPath)), nil
}

// Close closes the Secret Manager client.
func (c *SecretManagerClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

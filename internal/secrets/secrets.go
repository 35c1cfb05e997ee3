// Package secrets resolves API credentials from the environment or from
// Google Secret Manager.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"log"
	"os"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
)

var (
	ErrNoProject        = errors.New("secret not in environment and no project configured")
	ErrChecksumMismatch = errors.New("secret payload checksum mismatch")
)

// versionAccessor is the part of the Secret Manager client we use.
type versionAccessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
	Close() error
}

// Store looks secrets up by name. An environment variable of the same name
// wins over Secret Manager, which keeps local runs free of cloud access.
type Store struct {
	projectID string
	newClient func(ctx context.Context) (versionAccessor, error)
}

// NewStore returns a store reading from projectID's Secret Manager.
func NewStore(projectID string) *Store {
	return &Store{
		projectID: projectID,
		newClient: func(ctx context.Context) (versionAccessor, error) {
			return secretmanager.NewClient(ctx)
		},
	}
}

// GetSecret returns the latest version of secretName.
func (s *Store) GetSecret(ctx context.Context, secretName string) (string, error) {
	if val := os.Getenv(secretName); val != "" {
		log.Printf("INFO: using environment variable for secret %s", secretName)
		return val, nil
	}
	if s.projectID == "" {
		return "", fmt.Errorf("%w: %s", ErrNoProject, secretName)
	}

	client, err := s.newClient(ctx)
	if err != nil {
		return "", fmt.Errorf("create secretmanager client: %w", err)
	}
	defer client.Close()

	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", s.projectID, secretName),
	}
	result, err := client.AccessSecretVersion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("access secret %s: %w", secretName, err)
	}

	data := result.GetPayload().GetData()
	crc32c := crc32.MakeTable(crc32.Castagnoli)
	checksum := int64(crc32.Checksum(data, crc32c))
	if sum := result.GetPayload().DataCrc32C; sum != nil && *sum != checksum {
		return "", fmt.Errorf("%w: %s", ErrChecksumMismatch, secretName)
	}

	return string(data), nil
}

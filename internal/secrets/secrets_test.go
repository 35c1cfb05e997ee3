package secrets

import (
	"context"
	"errors"
	"hash/crc32"
	"testing"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccessor struct {
	resp    *secretmanagerpb.AccessSecretVersionResponse
	err     error
	gotName string
	closed  bool
}

func (f *fakeAccessor) AccessSecretVersion(_ context.Context, req *secretmanagerpb.AccessSecretVersionRequest, _ ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error) {
	f.gotName = req.GetName()
	return f.resp, f.err
}

func (f *fakeAccessor) Close() error {
	f.closed = true
	return nil
}

func storeWith(projectID string, acc *fakeAccessor) *Store {
	return &Store{
		projectID: projectID,
		newClient: func(context.Context) (versionAccessor, error) { return acc, nil },
	}
}

func payload(data string, sum int64) *secretmanagerpb.AccessSecretVersionResponse {
	return &secretmanagerpb.AccessSecretVersionResponse{
		Payload: &secretmanagerpb.SecretPayload{Data: []byte(data), DataCrc32C: &sum},
	}
}

func TestGetSecret_EnvVar(t *testing.T) {
	t.Setenv("FITLIFE_TEST_SECRET", "local_value")
	acc := &fakeAccessor{err: errors.New("must not be called")}

	val, err := storeWith("proj", acc).GetSecret(context.Background(), "FITLIFE_TEST_SECRET")

	require.NoError(t, err)
	assert.Equal(t, "local_value", val)
	assert.Empty(t, acc.gotName)
}

func TestGetSecret_NoProject(t *testing.T) {
	_, err := NewStore("").GetSecret(context.Background(), "FITLIFE_MISSING_SECRET")
	assert.ErrorIs(t, err, ErrNoProject)
}

func TestGetSecret_SecretManager(t *testing.T) {
	sum := int64(crc32.Checksum([]byte("api-key"), crc32.MakeTable(crc32.Castagnoli)))
	acc := &fakeAccessor{resp: payload("api-key", sum)}

	val, err := storeWith("fitlife-prod", acc).GetSecret(context.Background(), "FITLIFE_RAPIDAPI_KEY")

	require.NoError(t, err)
	assert.Equal(t, "api-key", val)
	assert.Equal(t, "projects/fitlife-prod/secrets/FITLIFE_RAPIDAPI_KEY/versions/latest", acc.gotName)
	assert.True(t, acc.closed)
}

func TestGetSecret_ChecksumMismatch(t *testing.T) {
	acc := &fakeAccessor{resp: payload("api-key", 12345)}

	_, err := storeWith("fitlife-prod", acc).GetSecret(context.Background(), "FITLIFE_RAPIDAPI_KEY")
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestGetSecret_AccessError(t *testing.T) {
	acc := &fakeAccessor{err: errors.New("permission denied")}

	_, err := storeWith("fitlife-prod", acc).GetSecret(context.Background(), "FITLIFE_RAPIDAPI_KEY")
	assert.ErrorContains(t, err, "permission denied")
}

package secrets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/mocks"
	"loungeadvisor-service/pkg/errs"
)

func TestEnvStore(t *testing.T) {
	t.Setenv("AMADEUS_CREDENTIALS_CLIENT_ID", "env-id")
	t.Setenv("AMADEUS_CREDENTIALS_CLIENT_SECRET", "env-secret")

	creds, err := NewEnvStore().GetSecret(context.Background(), "amadeus/credentials")
	require.NoError(t, err)
	assert.Equal(t, "env-id", creds.ClientID)
	assert.Equal(t, "env-secret", creds.ClientSecret)
}

func TestEnvStoreMissing(t *testing.T) {
	t.Setenv("PARTIAL_CLIENT_ID", "only-the-id")

	_, err := NewEnvStore().GetSecret(context.Background(), "partial")
	require.Error(t, err)
	assert.Equal(t, errs.KindSecretNotFound, errs.KindOf(err))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"amadeus/credentials": {"client_id": "file-id", "client_secret": "file-secret"}}`,
	), 0o600))

	store := NewFileStore(path)

	creds, err := store.GetSecret(context.Background(), "amadeus/credentials")
	require.NoError(t, err)
	assert.Equal(t, "file-id", creds.ClientID)

	_, err = store.GetSecret(context.Background(), "other/credentials")
	assert.Equal(t, errs.KindSecretNotFound, errs.KindOf(err))
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := store.GetSecret(context.Background(), "amadeus/credentials")
	assert.Equal(t, errs.KindSecretNotFound, errs.KindOf(err))
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewFileStore(path).GetSecret(context.Background(), "amadeus/credentials")
	assert.Equal(t, errs.KindAccessDenied, errs.KindOf(err))
}

func TestChainStoreFallsThroughOnNotFound(t *testing.T) {
	first := new(mocks.MockSecretStore)
	first.On("GetSecret", mock.Anything, "amadeus/credentials").
		Return(nil, errs.SecretNotFound("amadeus/credentials"))
	second := new(mocks.MockSecretStore)
	second.On("GetSecret", mock.Anything, "amadeus/credentials").
		Return(&entity.Credentials{ClientID: "id", ClientSecret: "secret"}, nil)

	creds, err := NewChainStore(first, second).GetSecret(context.Background(), "amadeus/credentials")
	require.NoError(t, err)
	assert.Equal(t, "id", creds.ClientID)
}

func TestChainStoreStopsOnAccessDenied(t *testing.T) {
	first := new(mocks.MockSecretStore)
	first.On("GetSecret", mock.Anything, "amadeus/credentials").
		Return(nil, errs.AccessDenied("amadeus/credentials", nil))
	second := new(mocks.MockSecretStore)

	_, err := NewChainStore(first, second).GetSecret(context.Background(), "amadeus/credentials")
	require.Error(t, err)
	assert.Equal(t, errs.KindAccessDenied, errs.KindOf(err))
	second.AssertNotCalled(t, "GetSecret", mock.Anything, mock.Anything)
}

func TestChainStoreExhausted(t *testing.T) {
	first := new(mocks.MockSecretStore)
	first.On("GetSecret", mock.Anything, "missing").
		Return(nil, errs.SecretNotFound("missing"))

	_, err := NewChainStore(first).GetSecret(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, errs.KindSecretNotFound, errs.KindOf(err))
}

func TestEnvPrefix(t *testing.T) {
	assert.Equal(t, "AMADEUS_CREDENTIALS", envPrefix("amadeus/credentials"))
	assert.Equal(t, "PROD_AMADEUS_V2", envPrefix("prod.amadeus-v2"))
}

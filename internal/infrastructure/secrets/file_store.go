package secrets

import (
	"context"
	"encoding/json"
	"os"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/pkg/errs"
)

// FileStore resolves secrets from a JSON file mapping secret names to
// credential objects:
//
//	{"amadeus/credentials": {"client_id": "...", "client_secret": "..."}}
type FileStore struct {
	path string
}

var _ repository.SecretStore = (*FileStore)(nil)

// NewFileStore creates a new file-backed secret store
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// GetSecret reads and resolves credentials from the secrets file
func (s *FileStore) GetSecret(ctx context.Context, name string) (*entity.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.SecretNotFound(name)
		}
		return nil, errs.AccessDenied(name, err)
	}

	var secrets map[string]entity.Credentials
	if err := json.Unmarshal(data, &secrets); err != nil {
		return nil, errs.AccessDenied(name, err)
	}

	creds, ok := secrets[name]
	if !ok || creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, errs.SecretNotFound(name)
	}

	return &creds, nil
}

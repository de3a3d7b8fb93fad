package secrets

import (
	"context"
	"errors"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/pkg/errs"
)

// ChainStore tries each underlying store in order. A SecretNotFound moves on
// to the next store; any other failure stops the chain so a broken store is
// not silently skipped.
type ChainStore struct {
	stores []repository.SecretStore
}

var _ repository.SecretStore = (*ChainStore)(nil)

// NewChainStore creates a chain over the given stores
func NewChainStore(stores ...repository.SecretStore) *ChainStore {
	if len(stores) == 0 {
		panic("secret store chain cannot be empty")
	}
	return &ChainStore{stores: stores}
}

// GetSecret resolves the secret from the first store that has it
func (s *ChainStore) GetSecret(ctx context.Context, name string) (*entity.Credentials, error) {
	var lastErr error
	for _, store := range s.stores {
		creds, err := store.GetSecret(ctx, name)
		if err == nil {
			return creds, nil
		}
		var appErr *errs.Error
		if errors.As(err, &appErr) && appErr.Kind == errs.KindSecretNotFound {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, lastErr
}

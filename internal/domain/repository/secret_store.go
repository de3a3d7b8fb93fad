package repository

import (
	"context"

	"loungeadvisor-service/internal/domain/entity"
)

// SecretStore defines the interface for fetching provider credentials,
// keyed by a logical secret name. Fails with errs.SecretNotFound or
// errs.AccessDenied.
type SecretStore interface {
	GetSecret(ctx context.Context, name string) (*entity.Credentials, error)
}

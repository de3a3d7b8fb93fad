package secrets

import (
	"context"
	"os"
	"strings"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/pkg/errs"
)

// EnvStore resolves secrets from environment variables. A secret name like
// "amadeus/credentials" maps to AMADEUS_CREDENTIALS_CLIENT_ID and
// AMADEUS_CREDENTIALS_CLIENT_SECRET.
type EnvStore struct{}

var _ repository.SecretStore = (*EnvStore)(nil)

// NewEnvStore creates a new environment-backed secret store
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// GetSecret resolves credentials from the environment
func (s *EnvStore) GetSecret(ctx context.Context, name string) (*entity.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := envPrefix(name)
	clientID := os.Getenv(prefix + "_CLIENT_ID")
	clientSecret := os.Getenv(prefix + "_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, errs.SecretNotFound(name)
	}

	return &entity.Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}, nil
}

func envPrefix(name string) string {
	upper := strings.ToUpper(name)
	var b strings.Builder
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

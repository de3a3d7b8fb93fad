// One-shot token mint against the flight data provider, for verifying
// credentials before deploying.
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"loungeadvisor-service/internal/infrastructure/config"
	"loungeadvisor-service/internal/infrastructure/oauth"
	"loungeadvisor-service/internal/infrastructure/secrets"
	"loungeadvisor-service/pkg/logger"
)

func main() {
	log := logger.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	secretStore := secrets.NewChainStore(secrets.NewEnvStore(), secrets.NewFileStore(cfg.SecretsFile))

	tokenCache := oauth.NewCredentialCache(
		oauth.CredentialCacheConfig{
			SecretName:    cfg.AmadeusSecretName,
			TokenURL:      cfg.AmadeusBaseURL + "/v1/security/oauth2/token",
			CredentialTTL: cfg.CredentialTTL,
			TokenTTL:      cfg.TokenTTL,
		},
		secretStore,
		&http.Client{Timeout: cfg.ProviderTimeout},
		nil,
		log,
		nil,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	token, err := tokenCache.GetToken(ctx)
	if err != nil {
		log.Fatal("Failed to mint token", "error", err)
	}

	fmt.Printf("\nBearer Token: %s\nExpires At:   %s\n\n", token.Value, token.ExpiresAt.Format(time.RFC3339))
}

package oauth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/pkg/errs"
	"loungeadvisor-service/pkg/logger"
	"loungeadvisor-service/pkg/metrics"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Clock abstracts wall-clock reads for testability
type Clock func() time.Time

// CredentialCacheConfig holds the configuration for the credential cache
type CredentialCacheConfig struct {
	// SecretName is the logical name of the provider credentials
	SecretName string
	// TokenURL is the provider's OAuth2 client-credentials endpoint
	TokenURL string
	// CredentialTTL bounds how long fetched credentials are reused
	CredentialTTL time.Duration
	// TokenTTL bounds how long a token is served; must stay below the
	// provider's advertised lifetime
	TokenTTL time.Duration
}

// CredentialCache owns the provider's static credentials and the derived
// bearer token. It is the only state that survives across requests in a
// warm process. Safe for concurrent use; a single mutex serializes refresh
// so concurrent readers share one in-flight token request.
type CredentialCache struct {
	config      CredentialCacheConfig
	secretStore repository.SecretStore
	httpClient  *http.Client
	clock       Clock
	logger      logger.Logger
	metrics     *metrics.Metrics

	mu             sync.Mutex
	creds          *entity.Credentials
	credsFetchedAt time.Time
	token          entity.Token
}

// NewCredentialCache creates a new credential cache
func NewCredentialCache(
	config CredentialCacheConfig,
	secretStore repository.SecretStore,
	httpClient *http.Client,
	clock Clock,
	logger logger.Logger,
	m *metrics.Metrics,
) *CredentialCache {
	if secretStore == nil {
		panic("secret store cannot be nil")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if clock == nil {
		clock = time.Now
	}
	if config.CredentialTTL <= 0 {
		config.CredentialTTL = time.Hour
	}
	if config.TokenTTL <= 0 {
		config.TokenTTL = 1500 * time.Second
	}

	return &CredentialCache{
		config:      config,
		secretStore: secretStore,
		httpClient:  httpClient,
		clock:       clock,
		logger:      logger,
		metrics:     m,
	}
}

// GetToken returns a valid bearer token, refreshing when the cached one is
// past its capped lifetime
func (c *CredentialCache) GetToken(ctx context.Context) (entity.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	if c.token.Valid(now) {
		return c.token, nil
	}

	creds, err := c.cachedCredentials(ctx, now)
	if err != nil {
		return entity.Token{}, errs.Auth("failed to fetch provider credentials", err)
	}

	cfg := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     c.config.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := cfg.Token(tokenCtx)
	if err != nil {
		return entity.Token{}, errs.Auth("token endpoint request failed", err)
	}

	c.token = entity.Token{
		Value:     tok.AccessToken,
		ExpiresAt: now.Add(c.config.TokenTTL),
	}
	c.metrics.IncTokenRefreshes()
	c.logger.Info("Provider token refreshed", "expiresAt", c.token.ExpiresAt)

	return c.token, nil
}

// Invalidate drops the cached token so the next GetToken forces a refresh.
// Called when a downstream request is rejected with 401. The cache never
// retries on its own.
func (c *CredentialCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = entity.Token{}
	c.logger.Warn("Provider token invalidated")
}

// cachedCredentials returns the stored credentials, re-fetching from the
// secret store after CredentialTTL or on first use. Caller holds c.mu.
func (c *CredentialCache) cachedCredentials(ctx context.Context, now time.Time) (*entity.Credentials, error) {
	if c.creds != nil && now.Sub(c.credsFetchedAt) < c.config.CredentialTTL {
		return c.creds, nil
	}

	creds, err := c.secretStore.GetSecret(ctx, c.config.SecretName)
	if err != nil {
		return nil, err
	}

	c.creds = creds
	c.credsFetchedAt = now
	return creds, nil
}

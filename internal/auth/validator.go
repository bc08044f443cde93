// Package auth validates bearer tokens against the external identity
// provider. Token issuance and refresh belong to that provider; this
// package only answers "who is this token".
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/learnhubhq/docsearch/internal/domain"
	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// DefaultCacheTTL is how long a validated token is trusted before the
// identity provider is asked again.
const DefaultCacheTTL = 5 * time.Minute

// Identity describes an authenticated session.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// Validator checks a bearer token and resolves it to an identity.
type Validator interface {
	ValidateToken(ctx context.Context, token string) (*Identity, error)
}

// HTTPValidator validates tokens by calling the identity provider's
// user-info endpoint with the token itself. Valid tokens are cached with a
// TTL so repeated keystroke-driven requests don't hammer the provider.
type HTTPValidator struct {
	endpoint string
	client   *http.Client
	cache    *cache.Cache
	log      zerolog.Logger
}

// NewHTTPValidator creates a validator for the given user-info endpoint. A
// ttl <= 0 uses DefaultCacheTTL.
func NewHTTPValidator(endpoint string, ttl time.Duration, log zerolog.Logger) *HTTPValidator {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &HTTPValidator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		cache:    cache.New(ttl, 2*ttl),
		log:      log,
	}
}

// ValidateToken resolves a bearer token to an identity. Any failure to
// verify, including provider unavailability, is an authentication error:
// an unverifiable caller is an unauthenticated caller.
func (v *HTTPValidator) ValidateToken(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	if cached, ok := v.cache.Get(token); ok {
		identity := cached.(Identity)
		return &identity, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeAuthentication,
			domain.ErrInvalidToken.Message, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		v.log.Warn().Err(err).Msg("identity provider unreachable")
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeAuthentication,
			domain.ErrInvalidToken.Message, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrInvalidToken
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeAuthentication,
			domain.ErrInvalidToken.Message, err)
	}
	if identity.UserID == "" {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeAuthentication,
			domain.ErrInvalidToken.Message, fmt.Errorf("provider response missing user id"))
	}

	v.cache.Set(token, identity, cache.DefaultExpiration)
	return &identity, nil
}

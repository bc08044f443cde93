package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"id": "user-1", "email": "dev@learnhub.io"})
	}))
	defer srv.Close()

	v := NewHTTPValidator(srv.URL, time.Minute, zerolog.Nop())

	identity, err := v.ValidateToken(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "dev@learnhub.io", identity.Email)
}

func TestValidateToken_EmptyToken(t *testing.T) {
	v := NewHTTPValidator("http://127.0.0.1:1", time.Minute, zerolog.Nop())

	_, err := v.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestValidateToken_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	v := NewHTTPValidator(srv.URL, time.Minute, zerolog.Nop())

	_, err := v.ValidateToken(context.Background(), "bad-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestValidateToken_ProviderUnreachable(t *testing.T) {
	// A port nothing listens on: an unverifiable token is rejected, not
	// passed through.
	v := NewHTTPValidator("http://127.0.0.1:1", time.Minute, zerolog.Nop())

	_, err := v.ValidateToken(context.Background(), "some-token")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeAuthentication, domainErr.Code)
}

func TestValidateToken_MissingUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"email": "dev@learnhub.io"})
	}))
	defer srv.Close()

	v := NewHTTPValidator(srv.URL, time.Minute, zerolog.Nop())

	_, err := v.ValidateToken(context.Background(), "odd-token")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeAuthentication, domainErr.Code)
}

func TestValidateToken_CachesValidTokens(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(map[string]string{"id": "user-1", "email": "dev@learnhub.io"})
	}))
	defer srv.Close()

	v := NewHTTPValidator(srv.URL, time.Minute, zerolog.Nop())

	for range 3 {
		identity, err := v.ValidateToken(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "user-1", identity.UserID)
	}
	assert.Equal(t, int64(1), calls.Load())
}

func TestValidateToken_InvalidTokensNotCached(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	v := NewHTTPValidator(srv.URL, time.Minute, zerolog.Nop())

	for range 2 {
		_, err := v.ValidateToken(context.Background(), "bad-token")
		assert.Error(t, err)
	}
	assert.Equal(t, int64(2), calls.Load())
}

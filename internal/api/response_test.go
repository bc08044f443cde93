package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDomainErrorToHTTP(t *testing.T) {
	assert.Equal(t, http.StatusOK, DomainErrorToHTTP(nil))
	assert.Equal(t, http.StatusBadRequest, DomainErrorToHTTP(domain.ErrQueryRequired))
	assert.Equal(t, http.StatusUnauthorized, DomainErrorToHTTP(domain.ErrInvalidToken))
	assert.Equal(t, http.StatusPaymentRequired, DomainErrorToHTTP(domain.ErrQuotaExhausted))
	assert.Equal(t, http.StatusTooManyRequests, DomainErrorToHTTP(domain.ErrRateLimited))
	assert.Equal(t, http.StatusInternalServerError, DomainErrorToHTTP(domain.ErrUpstreamFailure))
	assert.Equal(t, http.StatusInternalServerError,
		DomainErrorToHTTP(domain.NewDomainError(domain.ErrCodeInternalError, "boom")))
	assert.Equal(t, http.StatusInternalServerError, DomainErrorToHTTP(errors.New("plain error")))
}

func TestDomainErrorToHTTP_Wrapped(t *testing.T) {
	wrapped := domain.NewDomainErrorWithCause(domain.ErrCodeRateLimited,
		"too many requests", errors.New("upstream said 429"))
	assert.Equal(t, http.StatusTooManyRequests, DomainErrorToHTTP(wrapped))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, domain.ErrRateLimited.Message, ErrorMessage(domain.ErrRateLimited))
	assert.Equal(t, "internal server error", ErrorMessage(errors.New("pq: connection refused")))
}

func TestError_BodyShape(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, "Query is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "Query is required"}`, rec.Body.String())
}

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, domain.ErrQuotaExhausted)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ErrQuotaExhausted.Message)
}

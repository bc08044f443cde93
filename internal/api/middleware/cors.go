package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns the permissive CORS policy for the search endpoints: the
// dialog is embedded on arbitrary documentation pages, so every origin is
// allowed and OPTIONS preflights short-circuit with an empty 200.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Authorization", "Content-Type", HeaderRequestID},
		OptionsSuccessStatus: http.StatusOK,
	}).Handler
}

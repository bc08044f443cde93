package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhubhq/docsearch/internal/api"
	"github.com/learnhubhq/docsearch/internal/api/handlers"
	"github.com/learnhubhq/docsearch/internal/api/middleware"
	"github.com/learnhubhq/docsearch/internal/auth"
	"github.com/rs/zerolog"
)

type RouterConfig struct {
	Validator     auth.Validator
	SearchHandler *handlers.SearchHandler
	ChatHandler   *handlers.ChatHandler
	Logger        zerolog.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.CORS())
	r.Use(middleware.AccessLog(cfg.Logger))
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(cfg.Validator))

		r.Post("/ai-search", cfg.SearchHandler.Search)
		r.Post("/doc-chat", cfg.ChatHandler.Chat)
	})

	return r
}

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ssudhiravinesh/blindsight/internal/scan"
)

// requestTimeout bounds a single request end to end; a scan may cascade
// through several fetches plus a model call
const requestTimeout = 90 * time.Second

// RouterOption configures the router
type RouterOption func(*Handler)

// WithMaxBodySize caps request body reads
func WithMaxBodySize(size int64) RouterOption {
	return func(h *Handler) {
		if size > 0 {
			h.maxBodySize = size
		}
	}
}

// NewRouter creates a chi router with all endpoints and middleware.
// store may be nil when history is disabled.
func NewRouter(controller *scan.Controller, store HistoryStore, opts ...RouterOption) http.Handler {
	h := &Handler{
		controller:  controller,
		store:       store,
		maxBodySize: defaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Heartbeat("/ping"))

	// CORS for the extension client
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.handleHealth)

		r.Post("/evaluate", h.handleEvaluate)
		r.Post("/scan", h.handleScan)
		r.Post("/warn", h.handleWarn)

		r.Route("/tabs/{tabID}", func(r chi.Router) {
			r.Get("/status", h.handleStatus)
			r.Delete("/", h.handleDropTab)

			r.Route("/warning", func(r chi.Router) {
				r.Get("/", h.handleWarningState)
				r.Post("/tick", h.handleTick)
				r.Post("/phrase", h.handlePhrase)
				r.Post("/proceed", h.handleProceed)
				r.Post("/abort", h.handleAbort)
				r.Post("/dismiss", h.handleDismiss)
			})
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.handleHistoryList)
			r.Delete("/", h.handleHistoryClear)
		})
	})

	return r
}

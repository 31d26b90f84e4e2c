package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"flag-quiz-service/internal/app"
)

// RouterConfig holds the transport-level settings.
type RouterConfig struct {
	// ShareBaseURL is the score page that share links point to; empty means
	// only raw tokens are returned.
	ShareBaseURL string
	// AllowedOrigins enables CORS for browser clients; empty disables it.
	AllowedOrigins []string
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
}

// NewRouter wires the REST API and the game websocket.
func NewRouter(service *app.GameService, logger *zap.Logger, cfg RouterConfig) http.Handler {
	api := NewAPIHandler(service, logger, cfg.ShareBaseURL)
	ws := NewWSHandler(service, logger, cfg.ShareBaseURL)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}
	r.Get("/ws", ws.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/countries", api.ListCountries)
		r.Get("/countries/{code}", api.GetCountry)
		r.Get("/question", api.PreviewQuestion)
		r.Post("/share", api.EncodeShare)
		r.Get("/share", api.DecodeShare)

		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Get("/settings", api.GetSettings)
			r.Put("/settings", api.PutSettings)
			r.Get("/score", api.GetScore)
			r.Delete("/score", api.ResetScore)
			r.Get("/name", api.GetName)
			r.Put("/name", api.PutName)
		})
	})
	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}

// Package api exposes the service over HTTP for collaborator layers.
//
// Routes:
//   - POST /places/{place}/register: register a place, maybe start backfill
//   - POST /messages: ingest one message
//   - GET  /people/{person}/cloud.png: render the person's word cloud
//   - GET  /places/{place}/emojis: emoji-usage leaderboard
//
// Every request gets a UUID request ID and a scoped logger; errors carry
// structured codes that map onto HTTP status codes.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/lexicloud/pkg/errors"
	"github.com/matzehuels/lexicloud/pkg/service"
)

// Server serves the lexicloud HTTP API.
type Server struct {
	svc    *service.Service
	logger *log.Logger
	router chi.Router
}

// NewServer builds the API around svc. A nil logger uses the default.
func NewServer(svc *service.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{svc: svc, logger: logger}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Post("/places/{place}/register", s.handleRegister)
	r.Post("/messages", s.handleIngest)
	r.Get("/people/{person}/cloud.png", s.handleCloud)
	r.Get("/places/{place}/emojis", s.handleEmojis)
	return r
}

type ctxKey int

const loggerKey ctxKey = 0

// requestLogger tags each request with a UUID and attaches a scoped
// logger to the context.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		logger := s.logger.With("request_id", id, "method", r.Method, "path", r.URL.Path)
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerKey, logger)))
		logger.Debug("request served", "took", time.Since(start).Round(time.Millisecond))
	})
}

func loggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// statusFor maps structured error codes onto HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidScope, errors.ErrCodeInvalidColor, errors.ErrCodeInvalidEmoji:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePlaceNotFound, errors.ErrCodePersonNotFound:
		return http.StatusNotFound
	case errors.ErrCodeNetwork, errors.ErrCodeTimeout:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

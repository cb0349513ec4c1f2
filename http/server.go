package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jwielgosz/schemify"
	"github.com/jwielgosz/schemify/jsonld"
)

// Server is the operator-facing HTTP API. It owns request validation,
// routing, status mapping, and JSON-LD serialization of scrape results;
// the extraction core stays behind the Scraper interface.
type Server struct {
	scraper    schemify.Scraper
	logger     zerolog.Logger
	staticDir  string
	httpServer *http.Server
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithStaticDir serves the given directory at the server root.
func WithStaticDir(dir string) ServerOption {
	return func(s *Server) {
		s.staticDir = dir
	}
}

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server around a Scraper.
func NewServer(scraper schemify.Scraper, opts ...ServerOption) *Server {
	s := &Server{
		scraper: scraper,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router for the server. Exposed separately so
// tests can drive handlers through httptest.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/api/schema", s.handleSchema)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if s.staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.staticDir)))
	}

	return r
}

// Start begins serving on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second, // FAQ scrapes can take over a minute
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// schemaResponse is the wire format of a successful scrape.
type schemaResponse struct {
	Type   schemify.SchemaType     `json:"type"`
	JSONLD string                  `json:"jsonLd"`
	Data   *schemify.ExtractedData `json:"data"`
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		s.respondError(w, schemify.Errorf(schemify.EINVALID, "url query parameter is required"))
		return
	}
	if u, err := url.Parse(rawURL); err != nil || !u.IsAbs() {
		s.respondError(w, schemify.Errorf(schemify.EINVALID, "url must be absolute: %q", rawURL))
		return
	}

	typ, err := schemify.ParseSchemaType(r.URL.Query().Get("type"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	data, err := s.scraper.Scrape(r.Context(), rawURL, typ)
	if err != nil {
		s.respondError(w, err)
		return
	}

	fragment, err := jsonld.Render(data, typ)
	if err != nil {
		s.respondError(w, err)
		return
	}

	etag := fmt.Sprintf(`"%x"`, xxhash.Sum64String(fragment))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)

	s.respondJSON(w, http.StatusOK, schemaResponse{Type: typ, JSONLD: fragment, Data: data})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("encoding response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	s.respondJSON(w, statusFromError(err), map[string]string{
		"error": schemify.ErrorMessage(err),
		"code":  schemify.ErrorCode(err),
	})
}

// statusFromError maps application error codes to HTTP status codes.
func statusFromError(err error) int {
	switch schemify.ErrorCode(err) {
	case schemify.EINVALID:
		return http.StatusBadRequest
	case schemify.ENOTFOUND:
		return http.StatusNotFound
	case schemify.EFETCH:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// requestID tags each request with a UUID, echoed in X-Request-ID.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(
			s.logger.With().Str("request_id", id).Logger().WithContext(r.Context()),
		))
	})
}

// logRequests logs one line per request with status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zerolog.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(begin)).
			Msg("request")
	})
}

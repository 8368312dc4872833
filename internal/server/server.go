package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/probelab/beliefnet/pkg/cache"
	"github.com/probelab/beliefnet/pkg/errors"
	"github.com/probelab/beliefnet/pkg/observability"
	"github.com/probelab/beliefnet/pkg/store"
)

// Server is the HTTP service fronting the network store and the
// inference engine.
type Server struct {
	cfg    Config
	log    *log.Logger
	store  store.Store
	cache  cache.Cache
	router chi.Router
}

// Open builds a server from configuration: it connects the configured
// store and cache backends, registers observability hooks, and mounts
// the routes. Close must be called to release backend connections.
func Open(ctx context.Context, cfg Config) (*Server, error) {
	logger := newLogger(os.Stderr, parseLevel(cfg.LogLevel))

	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	c, err := openCache(ctx, cfg.Cache)
	if err != nil {
		_ = st.Close(ctx)
		return nil, err
	}

	observability.SetQueryHooks(queryFanout{metricsHooks{}, observability.NewLogQueryHooks(logger)})
	observability.SetStoreHooks(storeFanout{metricsHooks{}, observability.NewLogStoreHooks(logger)})
	observability.SetCacheHooks(metricsHooks{})

	return New(cfg, logger, st, c), nil
}

// New assembles a server from explicit collaborators.
// Used directly by tests; production wiring goes through [Open].
func New(cfg Config, logger *log.Logger, st store.Store, c cache.Cache) *Server {
	s := &Server{
		cfg:   cfg,
		log:   logger,
		store: st,
		cache: c,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Close releases the store and cache backends.
func (s *Server) Close(ctx context.Context) error {
	cerr := s.cache.Close()
	serr := s.store.Close(ctx)
	if serr != nil {
		return serr
	}
	return cerr
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully with a short drain timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/networks", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Route("/{name}", func(r chi.Router) {
			r.Put("/", s.handlePut)
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Get("/graph.dot", s.handleDot)
			r.Post("/query", s.handleQuery)
		})
	})

	return r
}

// openStore selects the store backend from configuration.
func openStore(ctx context.Context, cfg StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return store.NewMemStore(), nil
	case "mongo":
		return store.NewMongoStore(ctx, cfg.URI, cfg.Database)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", cfg.Backend)
	}
}

// openCache selects the cache backend from configuration.
func openCache(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "", "none":
		return cache.NewNullCache(), nil
	case "file":
		return cache.NewFileCache(cfg.Dir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Addr, cfg.Pass, cfg.DB)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", cfg.Backend)
	}
}

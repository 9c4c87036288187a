package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fintrack/internal/ledger"
	"fintrack/internal/log"
	"fintrack/internal/metrics"
	"fintrack/internal/middleware/ratelimit"
	"fintrack/internal/middleware/security"
	"fintrack/internal/middleware/trace"
	"fintrack/internal/summary"
)

// Options tune the API. Zero values fall back to the dashboard defaults.
type Options struct {
	RecentLimit   int
	TopCategories int
	RateLimitRPM  int
	Logger        *log.Logger
}

type Server struct {
	http.Server

	store    ledger.Store
	engine   *summary.Engine
	logger   *log.Logger
	limiter  *ratelimit.Limiter
	tracer   *trace.Middleware
	metrics  *metrics.Metrics
	clientIP *security.ClientIP
	started  time.Time

	recentLimit   int
	topCategories int
}

// NewServer wires the routes for store and engine. engine must have been
// created for store alone.
func NewServer(addr string, store ledger.Store, engine *summary.Engine, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = 5
	}
	if opts.TopCategories <= 0 {
		opts.TopCategories = 5
	}

	s := &Server{
		store:         store,
		engine:        engine,
		logger:        opts.Logger.WithComponent(log.ComponentHTTP),
		clientIP:      security.NewClientIP(),
		started:       time.Now(),
		recentLimit:   opts.RecentLimit,
		topCategories: opts.TopCategories,
	}
	s.limiter = ratelimit.NewLimiter(ratelimit.Config{
		RequestsPerMinute: opts.RateLimitRPM,
		Logger:            opts.Logger,
	})
	s.tracer = trace.NewMiddleware(opts.Logger, s.clientIP.Extract)
	s.metrics = s.newMetrics()

	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.tracer.Middleware)
	r.Use(s.metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(security.Headers(security.DefaultHeadersConfig()))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NotFoundError("not found").Write(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(http.StatusMethodNotAllowed, "method not allowed").Write(w)
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	limited := s.limiter.Middleware(s.clientIP.Extract, s.onRateLimit)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", s.handleListTransactions)
			r.Get("/recent", s.handleRecentTransactions)
			r.With(limited).Post("/", s.handleCreateTransaction)

			r.Get("/{id}", s.handleGetTransaction)
			r.With(limited).Put("/{id}", s.handleUpdateTransaction)
			r.With(limited).Delete("/{id}", s.handleDeleteTransaction)
		})

		r.Route("/summary", func(r chi.Router) {
			r.Get("/", s.handleSummary)
			r.Get("/categories", s.handleCategoryBreakdown)
		})
	})

	return r
}

// newMetrics exposes the store, the engine caches and the rate limiter
// alongside the request metrics.
func (s *Server) newMetrics() *metrics.Metrics {
	m := metrics.New()
	m.GaugeFunc("transactions", "Transactions currently held by the store.", func() float64 {
		return float64(len(s.store.List()))
	})
	m.GaugeFunc("store_version", "Version of the latest store snapshot.", func() float64 {
		return float64(s.store.Snapshot().Version)
	})
	m.CounterFunc("rate_limited_total", "Mutating requests rejected by the rate limiter.", func() float64 {
		return float64(s.limiter.GetMetrics().Rejected)
	})
	m.Register(metrics.NewCacheCollector(s.engine.Stats))
	return m
}

func (s *Server) onRateLimit(w http.ResponseWriter, r *http.Request) {
	retry := s.limiter.RetryAfter(s.clientIP.Extract(r))
	TooManyRequestsError(strconv.Itoa(int(retry.Round(time.Second) / time.Second))).Write(w)
}

// Shutdown stops the rate limiter and gracefully shuts the HTTP server down.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.Server.Shutdown(ctx)
}

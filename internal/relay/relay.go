package relay

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/beacon/pkg/clientip"
	"github.com/dmitrymomot/beacon/pkg/httpserver"
	"github.com/dmitrymomot/beacon/pkg/logger"
	"github.com/dmitrymomot/beacon/pkg/pageview"
	"github.com/dmitrymomot/beacon/pkg/ratelimiter"
	"github.com/dmitrymomot/beacon/pkg/requestid"
)

// Tracker sends one pageview built from env. *pageview.Tracker implements it.
type Tracker interface {
	TrackFrom(ctx context.Context, env pageview.Environment) *pageview.Delivery
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the logger for request-level diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(rl *Relay) {
		if l != nil {
			rl.log = l
		}
	}
}

// WithLimiter enables per-client rate limiting of the beacon routes.
// Store failures let requests through so tracking never blocks a page.
func WithLimiter(l ratelimiter.RateLimiter) Option {
	return func(rl *Relay) { rl.limiter = l }
}

// WithReadinessChecks adds dependencies reported by GET /readyz.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(rl *Relay) { rl.checks = append(rl.checks, checks...) }
}

// Relay accepts beacon hits over HTTP and forwards them as pageviews.
type Relay struct {
	cfg      Config
	tracker  Tracker
	log      *slog.Logger
	limiter  ratelimiter.RateLimiter
	resolver *clientip.Resolver
	checks   []httpserver.Check

	inflight sync.WaitGroup
}

// New validates cfg and creates a Relay sending through tracker.
func New(cfg Config, tracker Tracker, opts ...Option) (*Relay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tracker == nil {
		return nil, fmt.Errorf("%w: tracker is required", ErrInvalidConfig)
	}

	headers := cfg.TrustedHeaders
	if !cfg.TrustProxy {
		headers = nil
	}

	rl := &Relay{
		cfg:      cfg,
		tracker:  tracker,
		log:      slog.New(slog.DiscardHandler),
		resolver: clientip.New(clientip.WithHeaders(headers...)),
	}
	for _, opt := range opts {
		opt(rl)
	}
	rl.log = rl.log.With(logger.Component("relay"))
	return rl, nil
}

// Handler returns the relay's routes.
//
//	GET  /p.gif    pixel hit, snapshot from query and headers
//	POST /collect  JSON snapshot, answered with 202
//	GET  /healthz  liveness
//	GET  /readyz   readiness of configured dependencies
func (rl *Relay) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware())
	r.Use(rl.resolver.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(rl.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(rl.log, rl.checks...))

	r.Group(func(r chi.Router) {
		if rl.limiter != nil {
			r.Use(ratelimiter.Middleware(rl.limiter, clientip.KeyFunc,
				ratelimiter.WithFailOpen(),
				ratelimiter.WithStoreErrorHook(func(r *http.Request, err error) {
					rl.log.WarnContext(r.Context(), "rate limiter unavailable", logger.Error(err))
				}),
			))
		}

		r.Get("/p.gif", rl.handlePixel)

		r.With(cors(rl.cfg.AllowedOrigins)).Options("/collect", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		r.With(cors(rl.cfg.AllowedOrigins), middleware.RequestSize(rl.cfg.MaxBodyBytes)).
			Post("/collect", rl.handleCollect)
	})

	return r
}

// Drain waits for deliveries started by handled requests. Register it with
// httpserver.WithDrainHook so pageviews accepted before shutdown still go out.
func (rl *Relay) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		rl.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrDrainTimeout, ctx.Err())
	}
}

func (rl *Relay) track(ctx context.Context, env pageview.Environment) {
	d := rl.tracker.TrackFrom(ctx, env)
	if d == nil {
		return
	}
	rl.inflight.Add(1)
	go func() {
		defer rl.inflight.Done()
		<-d.Done()
	}()
}

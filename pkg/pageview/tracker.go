package pageview

import (
	"context"

	"github.com/dmitrymomot/beacon/pkg/useragent"
)

// Tracker wires a Collector to a Dispatcher.
type Tracker struct {
	collector  *Collector
	dispatcher *Dispatcher
}

// TrackerOption configures a Tracker.
type TrackerOption func(*trackerOptions)

type trackerOptions struct {
	collect  []CollectorOption
	dispatch []DispatchOption
}

// WithCollectorOptions forwards options to the Collector.
// They are applied after the ones derived from Config.
func WithCollectorOptions(opts ...CollectorOption) TrackerOption {
	return func(o *trackerOptions) {
		o.collect = append(o.collect, opts...)
	}
}

// WithDispatchOptions forwards options to the Dispatcher.
func WithDispatchOptions(opts ...DispatchOption) TrackerOption {
	return func(o *trackerOptions) {
		o.dispatch = append(o.dispatch, opts...)
	}
}

// NewTracker validates cfg and builds the pipeline reading from env.
// Construction does not send anything; call Track for the initial pageview.
func NewTracker(cfg Config, env Environment, opts ...TrackerOption) (*Tracker, error) {
	o := &trackerOptions{}
	for _, opt := range opts {
		opt(o)
	}

	dispatcher, err := NewDispatcher(cfg, o.dispatch...)
	if err != nil {
		return nil, err
	}

	collect := []CollectorOption{WithFallback(cfg.fallback())}
	switch {
	case cfg.DisableClassification:
		collect = append(collect, WithoutClassification())
	case cfg.EdgeChromium:
		collect = append(collect, WithClassifier(useragent.New(useragent.WithEdgeChromium())))
	}
	collect = append(collect, o.collect...)

	return &Tracker{
		collector:  NewCollector(env, collect...),
		dispatcher: dispatcher,
	}, nil
}

// Collect builds an Event from the tracker's environment without sending it.
func (t *Tracker) Collect(ctx context.Context) Event {
	return t.collector.Collect(ctx)
}

// Send dispatches e. See Dispatcher.Send.
func (t *Tracker) Send(ctx context.Context, e Event) *Delivery {
	return t.dispatcher.Send(ctx, e)
}

// Track collects and sends one pageview.
func (t *Tracker) Track(ctx context.Context) *Delivery {
	return t.Send(ctx, t.Collect(ctx))
}

// TrackFrom collects from env instead of the tracker's environment and sends it.
func (t *Tracker) TrackFrom(ctx context.Context, env Environment) *Delivery {
	return t.Send(ctx, t.collector.CollectFrom(ctx, env))
}

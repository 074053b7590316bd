package pageview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultUserAgent identifies outbound requests unless WithUserAgent overrides it.
const DefaultUserAgent = "beacon-pageview/1.0"

// Dispatcher posts events to the ingestion endpoint, one request per event,
// without retries. Zero value is not usable; use NewDispatcher.
type Dispatcher struct {
	// client is reused across sends for connection pooling
	client    *http.Client
	url       string
	userAgent string
	onError   ErrorHook
}

// DispatchOption configures a Dispatcher.
type DispatchOption func(*Dispatcher)

// WithHTTPClient sets a custom HTTP client.
// Useful for custom transports, proxies, or testing.
func WithHTTPClient(client *http.Client) DispatchOption {
	return func(d *Dispatcher) {
		if client != nil {
			d.client = client
		}
	}
}

// WithErrorHook registers a callback for failed deliveries.
func WithErrorHook(hook ErrorHook) DispatchOption {
	return func(d *Dispatcher) {
		d.onError = hook
	}
}

// WithUserAgent sets the User-Agent header of outbound requests.
// An empty value sends no User-Agent override.
func WithUserAgent(ua string) DispatchOption {
	return func(d *Dispatcher) {
		d.userAgent = ua
	}
}

// NewDispatcher validates cfg and prepares the request URL.
// It fails with an ErrInvalidConfig wrap before any network activity.
func NewDispatcher(cfg Config, opts ...DispatchOption) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	target, err := cfg.RequestURL()
	if err != nil {
		return nil, err
	}

	d := &Dispatcher{
		client: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		url:       target,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Send starts posting e and returns immediately.
//
// The request is detached from ctx cancellation; ctx values still reach the
// transport and the ErrorHook. Failures are never returned: they go to the
// ErrorHook and are recorded on the returned Delivery.
func (d *Dispatcher) Send(ctx context.Context, e Event) *Delivery {
	dl := newDelivery()
	ctx = context.WithoutCancel(ctx)

	go func() {
		start := time.Now()
		status, err := d.post(ctx, e)
		if err != nil {
			d.report(ctx, e, err)
		}
		dl.complete(status, time.Since(start), err)
	}()

	return dl
}

// post makes the single HTTP attempt and returns the response status.
func (d *Dispatcher) post(ctx context.Context, e Event) (int, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// 64KB limit keeps a misbehaving endpoint from exhausting memory
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024*64))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if len(body) > 0 {
			snippet := strings.ReplaceAll(string(body), "\n", " ")
			if len(snippet) > 200 {
				snippet = snippet[:200] + "..."
			}
			msg += ": " + snippet
		}
		return resp.StatusCode, fmt.Errorf("%w: %s", ErrUnexpectedStatus, msg)
	}
	return resp.StatusCode, nil
}

func (d *Dispatcher) report(ctx context.Context, e Event, err error) {
	if d.onError == nil {
		return
	}
	defer func() { _ = recover() }()
	d.onError(ctx, e, err)
}

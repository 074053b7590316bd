package pageview

import (
	"time"
)

// Delivery tracks one in-flight send. Ignoring it is the normal
// fire-and-forget usage; callers that care about the outcome can wait on it.
type Delivery struct {
	err        error
	statusCode int
	duration   time.Duration
	done       chan struct{}
}

func newDelivery() *Delivery {
	return &Delivery{done: make(chan struct{})}
}

// complete must be called exactly once by the sending goroutine.
func (d *Delivery) complete(statusCode int, duration time.Duration, err error) {
	d.statusCode = statusCode
	d.duration = duration
	d.err = err
	close(d.done)
}

// Done is closed once the request finished, successfully or not.
func (d *Delivery) Done() <-chan struct{} {
	return d.done
}

// Wait blocks until the request finished and returns its error.
func (d *Delivery) Wait() error {
	<-d.done
	return d.err
}

// WaitWithTimeout is Wait bounded by timeout. It returns ErrWaitTimeout if
// the request is still in flight; the request itself is not aborted.
func (d *Delivery) WaitWithTimeout(timeout time.Duration) error {
	select {
	case <-d.done:
		return d.err
	case <-time.After(timeout):
		return ErrWaitTimeout
	}
}

// Err returns the delivery error without blocking.
// It is nil while the request is in flight and after a 2xx response.
func (d *Delivery) Err() error {
	select {
	case <-d.done:
		return d.err
	default:
		return nil
	}
}

// IsComplete reports whether the request finished.
func (d *Delivery) IsComplete() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// StatusCode returns the HTTP status of a finished request, or 0.
func (d *Delivery) StatusCode() int {
	select {
	case <-d.done:
		return d.statusCode
	default:
		return 0
	}
}

// Duration returns how long a finished request took, or 0.
func (d *Delivery) Duration() time.Duration {
	select {
	case <-d.done:
		return d.duration
	default:
		return 0
	}
}

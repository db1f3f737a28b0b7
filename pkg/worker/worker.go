package worker

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// ErrClosed reports a submit to a tracer that has been closed.
var ErrClosed = errors.New("tracer closed")

const defaultQueueDepth = 16

// Tracer executes trace requests on its own goroutine, in arrival order.
//
// Thread safety: Submit and Close may be called concurrently. There is no
// cancellation primitive; a response nobody wants anymore is received and
// discarded by the caller via its id.
type Tracer struct {
	requests   chan Request
	responses  chan Response
	done       chan struct{}
	queueDepth int
	log        hclog.Logger
	running    atomic.Bool
	wg         sync.WaitGroup
}

// TracerOption configures a Tracer before it starts.
type TracerOption func(*Tracer)

// WithLogger routes the tracer's diagnostics to log.
func WithLogger(log hclog.Logger) TracerOption {
	return func(t *Tracer) {
		if log != nil {
			t.log = log
		}
	}
}

// WithQueueDepth sets how many requests and responses may sit in flight
// before Submit blocks.
func WithQueueDepth(n int) TracerOption {
	return func(t *Tracer) {
		if n > 0 {
			t.queueDepth = n
		}
	}
}

// NewTracer starts the worker goroutine. Close releases it.
func NewTracer(opts ...TracerOption) *Tracer {
	t := &Tracer{
		queueDepth: defaultQueueDepth,
		log:        hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.requests = make(chan Request, t.queueDepth)
	t.responses = make(chan Response, t.queueDepth)
	t.done = make(chan struct{})
	t.running.Store(true)

	t.wg.Add(1)
	go t.loop()
	return t
}

// Submit queues one request. It blocks while the queue is full and fails
// with ErrClosed once the tracer has been closed.
func (t *Tracer) Submit(req Request) error {
	if !t.running.Load() {
		return ErrClosed
	}
	select {
	case t.requests <- req:
		return nil
	case <-t.done:
		return ErrClosed
	}
}

// Responses delivers one response per executed request. The channel closes
// after Close, once the worker goroutine has stopped.
func (t *Tracer) Responses() <-chan Response {
	return t.responses
}

// Close stops the tracer and waits for the worker goroutine to exit.
// Requests still queued are dropped: a closed tracer's caller has gone
// away, and late responses would be discarded regardless. Close is safe to
// call multiple times.
func (t *Tracer) Close() {
	if !t.running.CompareAndSwap(true, false) {
		return
	}
	close(t.done)
	t.wg.Wait()
}

// loop executes requests until Close. The responses channel closes on the
// way out so consumers ranging over it terminate.
func (t *Tracer) loop() {
	defer t.wg.Done()
	defer close(t.responses)

	for {
		select {
		case <-t.done:
			return
		case req := <-t.requests:
			resp := req.run()
			if resp.Error != "" {
				t.log.Debug("trace failed", "id", req.ID, "error", resp.Error)
			} else {
				t.log.Trace("trace complete", "id", req.ID, "paths", len(resp.Paths))
			}
			select {
			case t.responses <- resp:
			case <-t.done:
				return
			}
		}
	}
}

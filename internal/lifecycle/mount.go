// Package lifecycle ties asynchronous results to the view that asked for
// them. A Mount stands for one mounted view; every fetch it starts takes a
// Ticket, and a result is applied only while its ticket is the latest one
// and the mount has not been disposed.
package lifecycle

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Mount is the disposal token shared by all fetches of one view instance.
type Mount struct {
	id string

	mu       sync.Mutex
	gen      uint64
	disposed bool
	gone     chan struct{}
}

// NewMount returns a live mount with a fresh ID.
func NewMount() *Mount {
	return &Mount{
		id:   uuid.NewString(),
		gone: make(chan struct{}),
	}
}

// ID identifies the mount in log lines.
func (m *Mount) ID() string {
	return m.id
}

// Begin starts a new fetch generation. Tickets from earlier generations stop
// being current, so the last triggered fetch wins.
func (m *Mount) Begin() Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	return Ticket{mount: m, gen: m.gen}
}

// Dispose marks the view as unmounted. It is idempotent.
func (m *Mount) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disposed {
		return
	}
	m.disposed = true
	close(m.gone)
}

// Disposed reports whether Dispose has been called.
func (m *Mount) Disposed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disposed
}

// Done is closed once the mount is disposed.
func (m *Mount) Done() <-chan struct{} {
	return m.gone
}

// DisposeWith disposes the mount when ctx is done, right away if it already
// is. The returned stop function detaches it again.
func (m *Mount) DisposeWith(ctx context.Context) (stop func() bool) {
	if ctx.Err() != nil {
		m.Dispose()
		return func() bool { return false }
	}
	return context.AfterFunc(ctx, m.Dispose)
}

// Ticket is one fetch generation of a Mount.
type Ticket struct {
	mount *Mount
	gen   uint64
}

// Current reports whether a result for this ticket may still be applied.
func (t Ticket) Current() bool {
	if t.mount == nil {
		return false
	}
	t.mount.mu.Lock()
	defer t.mount.mu.Unlock()
	return t.currentLocked()
}

func (t Ticket) currentLocked() bool {
	return !t.mount.disposed && t.gen == t.mount.gen
}

// Apply runs fn only if the ticket is current, holding the mount lock so the
// check and the state change cannot interleave with Dispose or Begin.
func (t Ticket) Apply(fn func()) bool {
	if t.mount == nil {
		return false
	}
	t.mount.mu.Lock()
	defer t.mount.mu.Unlock()
	if !t.currentLocked() {
		return false
	}
	fn()
	return true
}

// Track runs fetch under a new ticket of m and hands the outcome to apply,
// unless the ticket was superseded or m was disposed while fetch ran.
// It reports whether apply was called.
func Track[T any](ctx context.Context, m *Mount, fetch func(context.Context) (T, error), apply func(T, error)) bool {
	ticket := m.Begin()
	value, err := fetch(ctx)
	return ticket.Apply(func() { apply(value, err) })
}

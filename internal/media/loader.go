package media

import (
	"context"
	"errors"
	"log"
	"sync"

	"alcyxob/fitlife/internal/domain"
	"alcyxob/fitlife/internal/lifecycle"
)

// ErrDisposed is returned by Wait once the loader has been disposed.
var ErrDisposed = errors.New("animation loader disposed")

// AnimationLoader loads the animation for one card. It moves from loading
// to ready, to ready-with-fallback when the primary locator fails, or to
// failed when the default locator fails as well. A result arriving after
// Dispose, or after Load was called again for another name, is dropped.
type AnimationLoader struct {
	resolver *Resolver
	fetcher  Fetcher
	mount    *lifecycle.Mount

	mu    sync.Mutex
	asset domain.AnimationAsset
	done  chan struct{} // closed when the current generation is terminal
}

// NewAnimationLoader returns a loader in the loading state.
func NewAnimationLoader(resolver *Resolver, fetcher Fetcher) *AnimationLoader {
	return &AnimationLoader{
		resolver: resolver,
		fetcher:  fetcher,
		mount:    lifecycle.NewMount(),
		asset:    domain.AnimationAsset{State: domain.LoadStateLoading},
		done:     make(chan struct{}),
	}
}

// Load starts retrieving the animation for name in the background. Calling
// it again supersedes any retrieval still in flight.
func (l *AnimationLoader) Load(ctx context.Context, name string) {
	ticket := l.mount.Begin()
	done := make(chan struct{})
	locator := l.resolver.ResolveAnimation(name)

	l.mu.Lock()
	l.asset = domain.AnimationAsset{Locator: locator, State: domain.LoadStateLoading}
	l.done = done
	l.mu.Unlock()

	go l.run(ctx, ticket, done, locator)
}

// Dispose drops whatever is still in flight. The state is frozen from here on.
func (l *AnimationLoader) Dispose() {
	l.mount.Dispose()
}

// State returns a snapshot of the current asset.
func (l *AnimationLoader) State() domain.AnimationAsset {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.asset
}

// Wait blocks until the current retrieval reaches a terminal state. It
// returns ErrDisposed if the loader is disposed first and ctx.Err() if ctx
// ends first.
func (l *AnimationLoader) Wait(ctx context.Context) (domain.AnimationAsset, error) {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	select {
	case <-done:
		return l.State(), nil
	case <-l.mount.Done():
		return l.State(), ErrDisposed
	case <-ctx.Done():
		return l.State(), ctx.Err()
	}
}

func (l *AnimationLoader) run(ctx context.Context, ticket lifecycle.Ticket, done chan struct{}, primary string) {
	payload, err := l.fetcher.Fetch(ctx, primary)
	if err == nil {
		l.finish(ticket, done, domain.AnimationAsset{Locator: primary, Payload: payload, State: domain.LoadStateReady})
		return
	}
	log.Printf("WARN: animation %s failed, falling back to default: %v", primary, err)

	fallback := l.resolver.DefaultAnimation()
	payload, err = l.fetcher.Fetch(ctx, fallback)
	if err == nil {
		l.finish(ticket, done, domain.AnimationAsset{Locator: fallback, Payload: payload, State: domain.LoadStateFallback})
		return
	}
	log.Printf("WARN: default animation %s failed: %v", fallback, err)
	l.finish(ticket, done, domain.AnimationAsset{Locator: fallback, State: domain.LoadStateFailed})
}

func (l *AnimationLoader) finish(ticket lifecycle.Ticket, done chan struct{}, asset domain.AnimationAsset) {
	ticket.Apply(func() {
		l.mu.Lock()
		l.asset = asset
		l.mu.Unlock()
		close(done)
	})
}

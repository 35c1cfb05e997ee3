package media

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/fitlife/internal/domain"
)

const (
	chestLocator   = "https://a.example/chest.json"
	defaultLocator = "https://a.example/default.json"
)

func testResolver() *Resolver {
	return NewResolver(map[string]string{
		"chest":   chestLocator,
		"default": defaultLocator,
	}, nil)
}

// stubFetcher answers from a fixed table; a locator listed in gates blocks
// until its channel is closed.
type stubFetcher struct {
	mu       sync.Mutex
	payloads map[string]string
	gates    map[string]chan struct{}
	calls    []string
}

func (s *stubFetcher) Fetch(ctx context.Context, locator string) (json.RawMessage, error) {
	s.mu.Lock()
	s.calls = append(s.calls, locator)
	gate := s.gates[locator]
	payload, ok := s.payloads[locator]
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if !ok {
		return nil, ErrMediaFetchFailure
	}
	return json.RawMessage(payload), nil
}

func (s *stubFetcher) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func waitTerminal(t *testing.T, l *AnimationLoader) domain.AnimationAsset {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	asset, err := l.Wait(ctx)
	require.NoError(t, err)
	return asset
}

func TestAnimationLoader_Ready(t *testing.T) {
	f := &stubFetcher{payloads: map[string]string{chestLocator: `{"nm":"chest"}`}}
	l := NewAnimationLoader(testResolver(), f)
	assert.Equal(t, domain.LoadStateLoading, l.State().State)

	l.Load(context.Background(), "Chest")
	asset := waitTerminal(t, l)

	assert.Equal(t, domain.LoadStateReady, asset.State)
	assert.Equal(t, chestLocator, asset.Locator)
	assert.JSONEq(t, `{"nm":"chest"}`, string(asset.Payload))
	assert.Equal(t, []string{chestLocator}, f.Calls())
}

func TestAnimationLoader_FallsBackToDefault(t *testing.T) {
	f := &stubFetcher{payloads: map[string]string{defaultLocator: `{"nm":"default"}`}}
	l := NewAnimationLoader(testResolver(), f)

	l.Load(context.Background(), "chest")
	asset := waitTerminal(t, l)

	assert.Equal(t, domain.LoadStateFallback, asset.State)
	assert.Equal(t, defaultLocator, asset.Locator)
	assert.JSONEq(t, `{"nm":"default"}`, string(asset.Payload))
	assert.Equal(t, []string{chestLocator, defaultLocator}, f.Calls())
}

func TestAnimationLoader_BothFailStopsLoading(t *testing.T) {
	f := &stubFetcher{payloads: map[string]string{}}
	l := NewAnimationLoader(testResolver(), f)

	l.Load(context.Background(), "chest")
	asset := waitTerminal(t, l)

	assert.Equal(t, domain.LoadStateFailed, asset.State)
	assert.Nil(t, asset.Payload)
	assert.True(t, asset.State.Terminal())
}

func TestAnimationLoader_ResultAfterDisposeIsDropped(t *testing.T) {
	gate := make(chan struct{})
	f := &stubFetcher{
		payloads: map[string]string{chestLocator: `{"nm":"chest"}`},
		gates:    map[string]chan struct{}{chestLocator: gate},
	}
	l := NewAnimationLoader(testResolver(), f)

	l.Load(context.Background(), "chest")
	l.Dispose()
	close(gate) // retrieval resolves after unmount

	_, err := l.Wait(context.Background())
	assert.ErrorIs(t, err, ErrDisposed)

	// Give the background retrieval time to finish; it must not touch state.
	assert.Never(t, func() bool {
		return l.State().State != domain.LoadStateLoading
	}, 100*time.Millisecond, 10*time.Millisecond)
	assert.Nil(t, l.State().Payload)
}

func TestAnimationLoader_ReloadSupersedesPending(t *testing.T) {
	slow := make(chan struct{})
	f := &stubFetcher{
		payloads: map[string]string{
			chestLocator:   `{"nm":"chest"}`,
			defaultLocator: `{"nm":"default"}`,
		},
		gates: map[string]chan struct{}{chestLocator: slow},
	}
	l := NewAnimationLoader(testResolver(), f)

	l.Load(context.Background(), "chest")
	l.Load(context.Background(), "rowing machine") // name changed before the first finished

	asset := waitTerminal(t, l)
	assert.Equal(t, domain.LoadStateReady, asset.State)
	assert.Equal(t, defaultLocator, asset.Locator)

	close(slow)
	assert.Never(t, func() bool {
		return l.State().Locator != defaultLocator
	}, 100*time.Millisecond, 10*time.Millisecond)
}

func TestAnimationLoader_WaitHonoursContext(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	f := &stubFetcher{
		payloads: map[string]string{chestLocator: `{}`},
		gates:    map[string]chan struct{}{chestLocator: gate},
	}
	l := NewAnimationLoader(testResolver(), f)
	l.Load(context.Background(), "chest")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	asset, err := l.Wait(ctx)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, domain.LoadStateLoading, asset.State)
}

package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicket_LastTriggeredWins(t *testing.T) {
	m := NewMount()

	first := m.Begin()
	second := m.Begin()

	assert.False(t, first.Current())
	assert.True(t, second.Current())

	applied := first.Apply(func() { t.Fatal("stale ticket applied") })
	assert.False(t, applied)

	var got string
	assert.True(t, second.Apply(func() { got = "second" }))
	assert.Equal(t, "second", got)
}

func TestMount_DisposeBlocksApply(t *testing.T) {
	m := NewMount()
	ticket := m.Begin()

	m.Dispose()
	m.Dispose() // idempotent

	assert.True(t, m.Disposed())
	assert.False(t, ticket.Current())
	assert.False(t, ticket.Apply(func() { t.Fatal("applied after dispose") }))

	select {
	case <-m.Done():
	default:
		t.Fatal("Done not closed after Dispose")
	}
}

func TestMount_DisposeWithContext(t *testing.T) {
	m := NewMount()
	ctx, cancel := context.WithCancel(context.Background())
	stop := m.DisposeWith(ctx)
	defer stop()

	cancel()

	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("mount not disposed after context cancellation")
	}
}

func TestZeroTicketIsNeverCurrent(t *testing.T) {
	var ticket Ticket
	assert.False(t, ticket.Current())
	assert.False(t, ticket.Apply(func() {}))
}

func TestTrack(t *testing.T) {
	t.Run("applies result", func(t *testing.T) {
		m := NewMount()
		var got int
		var gotErr error
		ok := Track(context.Background(), m,
			func(context.Context) (int, error) { return 42, nil },
			func(v int, err error) { got, gotErr = v, err })

		require.True(t, ok)
		assert.Equal(t, 42, got)
		assert.NoError(t, gotErr)
	})

	t.Run("applies error", func(t *testing.T) {
		m := NewMount()
		boom := errors.New("boom")
		var gotErr error
		ok := Track(context.Background(), m,
			func(context.Context) (int, error) { return 0, boom },
			func(_ int, err error) { gotErr = err })

		require.True(t, ok)
		assert.ErrorIs(t, gotErr, boom)
	})

	t.Run("discards result after dispose", func(t *testing.T) {
		m := NewMount()
		ok := Track(context.Background(), m,
			func(context.Context) (int, error) {
				m.Dispose() // view unmounted mid-flight
				return 1, nil
			},
			func(int, error) { t.Fatal("applied after dispose") })

		assert.False(t, ok)
	})

	t.Run("older fetch finishing late is ignored", func(t *testing.T) {
		m := NewMount()
		release := make(chan struct{})
		started := make(chan struct{})
		results := make(chan bool, 1)
		var applied []string

		go func() {
			results <- Track(context.Background(), m,
				func(context.Context) (string, error) {
					close(started)
					<-release
					return "old", nil
				},
				func(v string, _ error) { applied = append(applied, v) })
		}()

		<-started
		ok := Track(context.Background(), m,
			func(context.Context) (string, error) { return "new", nil },
			func(v string, _ error) { applied = append(applied, v) })
		require.True(t, ok)

		close(release)
		assert.False(t, <-results)
		assert.Equal(t, []string{"new"}, applied)
	})
}

package statemachine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/pkg/statemachine"
)

type state string
type event string

const (
	editing   state = "editing"
	submitted state = "submitted"
	archived  state = "archived"

	submit  event = "submit"
	archive event = "archive"
)

func TestMachine(t *testing.T) {
	t.Parallel()

	t.Run("basic transition", func(t *testing.T) {
		t.Parallel()
		m := statemachine.MustNew(editing,
			statemachine.WithTransition(editing, submitted, submit),
		)
		ctx := context.Background()

		assert.Equal(t, editing, m.Current())
		assert.True(t, m.CanFire(ctx, submit, nil))
		require.NoError(t, m.Fire(ctx, submit, nil))
		assert.True(t, m.Is(submitted))

		m.Reset()
		assert.Equal(t, editing, m.Current())
	})

	t.Run("guard rejects transition", func(t *testing.T) {
		t.Parallel()
		isValid := func(_ context.Context, _ state, _ event, data any) bool {
			ok, _ := data.(bool)
			return ok
		}
		m := statemachine.MustNew(editing,
			statemachine.WithTransition(editing, submitted, submit,
				statemachine.WithGuard[state, event](isValid),
			),
		)
		ctx := context.Background()

		assert.False(t, m.CanFire(ctx, submit, false))
		err := m.Fire(ctx, submit, false)
		assert.True(t, statemachine.IsTransitionRejectedError(err))
		assert.Equal(t, editing, m.Current())

		require.NoError(t, m.Fire(ctx, submit, true))
		assert.Equal(t, submitted, m.Current())
	})

	t.Run("first passing transition wins", func(t *testing.T) {
		t.Parallel()
		never := func(context.Context, state, event, any) bool { return false }
		m := statemachine.MustNew(editing,
			statemachine.WithTransition(editing, archived, submit,
				statemachine.WithGuard[state, event](never),
			),
			statemachine.WithTransition(editing, submitted, submit),
		)

		require.NoError(t, m.Fire(context.Background(), submit, nil))
		assert.Equal(t, submitted, m.Current())
	})

	t.Run("actions run before state change", func(t *testing.T) {
		t.Parallel()
		var seen []state
		record := func(_ context.Context, from, to state, _ event, _ any) error {
			seen = append(seen, from, to)
			return nil
		}
		m := statemachine.MustNew(editing,
			statemachine.WithTransition(editing, submitted, submit,
				statemachine.WithAction[state, event](record),
			),
		)

		require.NoError(t, m.Fire(context.Background(), submit, nil))
		assert.Equal(t, []state{editing, submitted}, seen)
	})

	t.Run("action error aborts transition", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		fail := func(context.Context, state, state, event, any) error { return boom }
		m := statemachine.MustNew(editing,
			statemachine.WithTransition(editing, submitted, submit,
				statemachine.WithAction[state, event](fail),
			),
		)

		err := m.Fire(context.Background(), submit, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "action failed")
		assert.Equal(t, editing, m.Current())
	})

	t.Run("terminal state has no transitions", func(t *testing.T) {
		t.Parallel()
		m := statemachine.MustNew(editing,
			statemachine.WithTransition(editing, submitted, submit),
		)
		ctx := context.Background()
		require.NoError(t, m.Fire(ctx, submit, nil))

		err := m.Fire(ctx, submit, nil)
		assert.True(t, statemachine.IsNoTransitionAvailableError(err))
		assert.False(t, m.CanFire(ctx, archive, nil))
	})
}

func TestMachine_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	_, err := statemachine.New[state, event]("")
	assert.ErrorIs(t, err, statemachine.ErrEmptyInitialState)

	_, err = statemachine.New(editing,
		statemachine.WithTransition[state, event](editing, "", submit),
	)
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

	m := statemachine.MustNew[state, event](editing)
	assert.ErrorIs(t, m.Fire(context.Background(), "", nil), statemachine.ErrInvalidEvent)
	assert.False(t, m.CanFire(context.Background(), "", nil))

	assert.Panics(t, func() { statemachine.MustNew[state, event]("") })
}

func TestMachine_ConcurrentFire(t *testing.T) {
	t.Parallel()
	m := statemachine.MustNew(editing,
		statemachine.WithTransition(editing, submitted, submit),
	)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Fire(context.Background(), submit, nil) == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, submitted, m.Current())
}

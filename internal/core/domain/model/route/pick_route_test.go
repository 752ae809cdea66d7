package route_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/route"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPickRoute(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()
	now := time.Now()

	t.Run("valid", func(t *testing.T) {
		r, err := route.NewPickRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			route.FIFO, []kernel.UUID{a, b}, 12.5, time.Minute, now)

		require.NoError(t, err)
		assert.Equal(t, 2, r.BinCount())
		assert.Equal(t, []kernel.UUID{a, b}, r.Sequence())
		assert.Equal(t, route.FIFO, r.Strategy())
	})

	t.Run("empty sequence", func(t *testing.T) {
		_, err := route.NewPickRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			route.Optimal, nil, 0, 0, now)
		require.ErrorIs(t, err, route.ErrRouteInputEmpty)
	})

	t.Run("duplicate bin", func(t *testing.T) {
		_, err := route.NewPickRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			route.Optimal, []kernel.UUID{a, b, a}, 0, 0, now)
		require.ErrorIs(t, err, route.ErrRouteInputInconsistent)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := route.NewPickRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			route.Strategy("s-shape"), []kernel.UUID{a}, 0, 0, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPickRoute_SequenceIsCopied(t *testing.T) {
	seq := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	r, err := route.NewPickRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		route.Optimal, seq, 1, time.Second, time.Now())
	require.NoError(t, err)

	seq[0] = kernel.NewUUID()
	got := r.Sequence()
	got[1] = kernel.NewUUID()

	assert.NotEqual(t, seq[0], r.Sequence()[0])
	assert.NotEqual(t, got[1], r.Sequence()[1])
}

func TestPickRoute_Replace(t *testing.T) {
	orderID := kernel.NewUUID()
	first, err := route.NewPickRoute(kernel.NewUUID(), orderID, kernel.NewUUID(),
		route.Optimal, []kernel.UUID{kernel.NewUUID()}, 1, time.Second, time.Now())
	require.NoError(t, err)

	bins := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	second, err := route.NewPickRoute(kernel.NewUUID(), orderID, first.LayoutID(),
		route.LIFO, bins, 3, 2*time.Second, time.Now())
	require.NoError(t, err)

	require.NoError(t, first.Replace(second))
	assert.NotEqual(t, second.ID(), first.ID())
	assert.Equal(t, route.LIFO, first.Strategy())
	assert.Equal(t, bins, first.Sequence())

	other, err := route.NewPickRoute(kernel.NewUUID(), kernel.NewUUID(), first.LayoutID(),
		route.LIFO, bins, 3, 2*time.Second, time.Now())
	require.NoError(t, err)
	require.ErrorIs(t, first.Replace(other), route.ErrRouteInputInconsistent)
}

func TestParseStrategy(t *testing.T) {
	s, err := route.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, route.Optimal, s)

	s, err = route.ParseStrategy(" FEFO ")
	require.NoError(t, err)
	assert.Equal(t, route.FEFO, s)

	_, err = route.ParseStrategy("largest-gap")
	require.Error(t, err)
}

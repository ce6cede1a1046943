//go:build unit

package booking_test

import (
	"testing"

	"bookmarket/internal/domain/booking"
	"bookmarket/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T) *booking.Booking {
	t.Helper()
	date, err := schedule.ParseDate("2026-05-01")
	require.NoError(t, err)

	b, err := booking.NewBooking(uuid.New(), uuid.New(), uuid.New(), uuid.New(), date, 600, 630)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("starts awaiting confirmation and blocks its slot", func(t *testing.T) {
		b := newPending(t)
		assert.Equal(t, booking.StatusAwaitingConfirmation, b.Status())
		assert.True(t, b.Blocks())
		assert.Equal(t, schedule.BusyInterval{Start: 600, End: 630}, b.Interval())
	})

	t.Run("rejects inverted and empty intervals", func(t *testing.T) {
		date, err := schedule.ParseDate("2026-05-01")
		require.NoError(t, err)

		_, err = booking.NewBooking(uuid.New(), uuid.New(), uuid.New(), uuid.New(), date, 630, 600)
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)

		_, err = booking.NewBooking(uuid.New(), uuid.New(), uuid.New(), uuid.New(), date, 600, 600)
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})
}

func TestBookingTransitions(t *testing.T) {
	t.Run("confirm then complete", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.Blocks())

		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.False(t, b.Blocks())
	})

	t.Run("reject releases the slot", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Reject())
		assert.Equal(t, booking.StatusRejected, b.Status())
		assert.False(t, b.Blocks())
	})

	t.Run("cancel works on pending and confirmed bookings", func(t *testing.T) {
		pending := newPending(t)
		require.NoError(t, pending.Cancel())
		assert.Equal(t, booking.StatusCancelled, pending.Status())

		confirmed := newPending(t)
		require.NoError(t, confirmed.Confirm())
		require.NoError(t, confirmed.Cancel())
		assert.Equal(t, booking.StatusCancelled, confirmed.Status())
	})

	t.Run("finalized bookings cannot be cancelled again", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyFinalized)
	})

	t.Run("decisions require a pending booking", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Confirm())
		assert.ErrorIs(t, b.Confirm(), booking.ErrNotAwaitingReview)
		assert.ErrorIs(t, b.Reject(), booking.ErrNotAwaitingReview)
	})

	t.Run("complete requires a confirmed booking", func(t *testing.T) {
		b := newPending(t)
		assert.ErrorIs(t, b.Complete(), booking.ErrInvalidTransition)
	})
}

func TestStatusBlocksSlot(t *testing.T) {
	blocking := []booking.Status{booking.StatusAwaitingConfirmation, booking.StatusConfirmed}
	released := []booking.Status{booking.StatusCancelled, booking.StatusRejected, booking.StatusCompleted}

	for _, s := range blocking {
		assert.True(t, s.BlocksSlot(), s)
	}
	for _, s := range released {
		assert.False(t, s.BlocksSlot(), s)
	}
}

package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestOrder(t *testing.T) ServiceOrder {
	t.Helper()
	o, err := NewServiceOrder("so-1", NewServiceOrderInput{
		ServiceRequestID: "sr-1",
		WinningOfferID:   "of-1",
		SupplierID:       "sup-1",
		SupplierName:     "Acme",
		Title:            "Backend engineer",
		Role:             "Developer",
		Domain:           "Go",
		SpecialistID:     "spec-a",
		SpecialistName:   "Alice",
		StartDate:        day(2025, time.January, 1),
		EndDate:          day(2025, time.January, 31),
		ManDays:          20,
		DailyRate:        decimal.NewFromInt(500),
	}, day(2024, time.December, 20))
	require.NoError(t, err)
	return o
}

func TestNewServiceOrder(t *testing.T) {
	t.Run("snapshots original terms", func(t *testing.T) {
		o := newTestOrder(t)
		assert.Equal(t, ServiceOrderStatusActive, o.Status)
		assert.Equal(t, o.CurrentEndDate, o.OriginalEndDate)
		assert.Equal(t, 20, o.OriginalManDays)
		assert.Equal(t, 20, o.CurrentManDays)
		assert.Equal(t, "spec-a", o.OriginalSpecialistID)
		assert.True(t, o.CurrentContractValue.Equal(decimal.NewFromInt(10000)))
		assert.True(t, o.OriginalContractValue.Equal(o.CurrentContractValue))
		assert.Nil(t, o.ActualEndDate)
	})

	t.Run("rejects start after end", func(t *testing.T) {
		_, err := NewServiceOrder("so-1", NewServiceOrderInput{
			Title:        "x",
			SpecialistID: "s",
			StartDate:    day(2025, time.February, 1),
			EndDate:      day(2025, time.January, 1),
			ManDays:      1,
			DailyRate:    decimal.NewFromInt(1),
		}, time.Now())
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("rejects zero man days", func(t *testing.T) {
		_, err := NewServiceOrder("so-1", NewServiceOrderInput{
			Title:        "x",
			SpecialistID: "s",
			StartDate:    day(2025, time.January, 1),
			EndDate:      day(2025, time.February, 1),
			DailyRate:    decimal.NewFromInt(1),
		}, time.Now())
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestServiceOrder_ConsumedManDays(t *testing.T) {
	o := newTestOrder(t)

	cases := []struct {
		name  string
		today time.Time
		want  int
	}{
		{name: "before start", today: day(2024, time.December, 31), want: 0},
		{name: "on start", today: day(2025, time.January, 1), want: 0},
		{name: "midway", today: day(2025, time.January, 16), want: 10},
		{name: "rounds down", today: day(2025, time.January, 3), want: 1},
		{name: "on end", today: day(2025, time.January, 31), want: 20},
		{name: "after end", today: day(2025, time.March, 1), want: 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, o.ConsumedManDays(tc.today))
			assert.Equal(t, o.CurrentManDays, o.ConsumedManDays(tc.today)+o.RemainingManDays(tc.today))
		})
	}

	t.Run("monotonic over the whole period", func(t *testing.T) {
		prev := 0
		for d := day(2024, time.December, 25); d.Before(day(2025, time.February, 10)); d = d.AddDate(0, 0, 1) {
			got := o.ConsumedManDays(d)
			require.GreaterOrEqual(t, got, prev, "day %s", d)
			prev = got
		}
	})

	t.Run("missing dates", func(t *testing.T) {
		empty := ServiceOrder{CurrentManDays: 5}
		assert.Equal(t, 0, empty.ConsumedManDays(day(2025, time.January, 10)))
		assert.Equal(t, 5, empty.RemainingManDays(day(2025, time.January, 10)))
	})
}

func TestServiceOrder_Complete(t *testing.T) {
	now := time.Date(2025, time.January, 20, 15, 4, 5, 0, time.UTC)

	t.Run("from active", func(t *testing.T) {
		o := newTestOrder(t)
		done, err := o.Complete(now)
		require.NoError(t, err)
		assert.Equal(t, ServiceOrderStatusCompleted, done.Status)
		require.NotNil(t, done.ActualEndDate)
		assert.Equal(t, day(2025, time.January, 20), *done.ActualEndDate)
		assert.Equal(t, ServiceOrderStatusActive, o.Status)
	})

	t.Run("from pending extension", func(t *testing.T) {
		o := newTestOrder(t)
		o.Status = ServiceOrderStatusPendingExtension
		_, err := o.Complete(now)
		assert.True(t, errors.Is(err, ErrInvalidState))
	})
}

func TestServiceOrder_CancelSuspendResume(t *testing.T) {
	now := day(2025, time.January, 10)
	o := newTestOrder(t)

	suspended, err := o.Suspend(now)
	require.NoError(t, err)
	assert.Equal(t, ServiceOrderStatusSuspended, suspended.Status)

	resumed, err := suspended.Resume(now)
	require.NoError(t, err)
	assert.Equal(t, ServiceOrderStatusActive, resumed.Status)

	cancelled, err := suspended.Cancel(now)
	require.NoError(t, err)
	assert.Equal(t, ServiceOrderStatusCancelled, cancelled.Status)
	assert.True(t, cancelled.Status.IsTerminal())

	_, err = cancelled.Cancel(now)
	assert.True(t, errors.Is(err, ErrInvalidState))

	_, err = o.Resume(now)
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestServiceOrder_RequestGuards(t *testing.T) {
	o := newTestOrder(t)
	assert.True(t, o.CanRequestExtension())
	assert.True(t, o.CanRequestSubstitution())

	o.Status = ServiceOrderStatusPendingSubstitution
	assert.False(t, o.CanRequestExtension())
	assert.True(t, o.CanRequestSubstitution())

	o.Status = ServiceOrderStatusCompleted
	assert.False(t, o.CanRequestExtension())
	assert.False(t, o.CanRequestSubstitution())
}

func TestServiceOrder_HasBeenExtended(t *testing.T) {
	o := newTestOrder(t)
	assert.False(t, o.HasBeenExtended())

	o.CurrentManDays += 5
	assert.False(t, o.HasBeenExtended(), "man-days alone do not count as an extension")

	o.CurrentEndDate = o.OriginalEndDate.AddDate(0, 0, 7)
	assert.True(t, o.HasBeenExtended())
}

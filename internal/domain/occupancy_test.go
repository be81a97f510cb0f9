package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(date time.Time, slot string, status OrderStatus) *RepairOrder {
	return &RepairOrder{
		ID:              uuid.New(),
		AppointmentDate: date,
		AppointmentTime: slot,
		Status:          status,
	}
}

func TestAggregateDay_ExcludesCancelled(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	// 5 orders, one cancelled in an already occupied slot
	orders := []*RepairOrder{
		makeOrder(date, "09:00-10:00", StatusPending),
		makeOrder(date, "09:00-10:00", StatusConfirmed),
		makeOrder(date, "09:00-10:00", StatusCancelled),
		makeOrder(date, "11:00-12:00", StatusCompleted),
		makeOrder(date, "11:00-12:00", StatusDelayed),
	}

	day, skipped := AggregateDay(orders, date)

	require.Empty(t, skipped)
	assert.Equal(t, 4, day.Total)
	assert.Equal(t, 2, day.BySlot["09:00-10:00"])
	assert.Equal(t, 2, day.BySlot["11:00-12:00"])
	assert.Equal(t, TierNormal, DayTier(day.Total))
}

func TestAggregateDay_TotalEqualsSlotSum(t *testing.T) {
	date := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	orders := []*RepairOrder{
		makeOrder(date, "09:00-10:00", StatusPending),
		makeOrder(date, "10:00-11:00", StatusPending),
		makeOrder(date, "10:00-11:00", StatusInProgress),
		makeOrder(date.AddDate(0, 0, 1), "10:00-11:00", StatusPending), // other day
	}

	day, _ := AggregateDay(orders, date)

	sum := 0
	for _, n := range day.BySlot {
		sum += n
	}
	assert.Equal(t, day.Total, sum)
	assert.Equal(t, 3, day.Total)
}

func TestAggregateDay_EmptyDay(t *testing.T) {
	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	day, skipped := AggregateDay(nil, date)

	require.NotNil(t, day)
	assert.Equal(t, 0, day.Total)
	assert.Empty(t, day.BySlot)
	assert.Empty(t, skipped)
}

func TestAggregateMonth_GroupsByDate(t *testing.T) {
	d10 := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	d11 := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	july := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	orders := []*RepairOrder{
		makeOrder(d10, "09:00-10:00", StatusPending),
		makeOrder(d10, "09:00-10:00", StatusConfirmed),
		makeOrder(d11, "13:00-14:00", StatusPending),
		makeOrder(july, "09:00-10:00", StatusPending), // outside the month
		makeOrder(d11, "13:00-14:00", StatusCancelled),
	}

	days, skipped := AggregateMonth(orders, 2024, time.June)

	require.Empty(t, skipped)
	require.Len(t, days, 2)
	assert.Equal(t, 2, days["2024-06-10"].Total)
	assert.Equal(t, 1, days["2024-06-11"].Total)

	// days with zero orders are simply absent
	_, ok := days["2024-06-12"]
	assert.False(t, ok)
}

func TestAggregateMonth_SkipsMalformedSlotLabels(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	bad := makeOrder(date, "", StatusPending)
	orders := []*RepairOrder{
		makeOrder(date, "09:00-10:00", StatusPending),
		bad,
		makeOrder(date, "garbage", StatusConfirmed),
	}

	days, skipped := AggregateMonth(orders, 2024, time.June)

	assert.Equal(t, 1, days["2024-06-10"].Total)
	require.Len(t, skipped, 2)
	assert.Equal(t, bad.ID, skipped[0].ID)
}

func TestAggregateMonth_Idempotent(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	orders := []*RepairOrder{
		makeOrder(date, "09:00-10:00", StatusPending),
		makeOrder(date, "11:00-12:00", StatusConfirmed),
	}

	first, _ := AggregateMonth(orders, 2024, time.June)
	second, _ := AggregateMonth(orders, 2024, time.June)

	assert.Equal(t, first, second)
}

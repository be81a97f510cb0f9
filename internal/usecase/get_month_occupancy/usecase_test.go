package get_month_occupancy

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretworks/repairshop-service/internal/domain"
)

type stubRepo struct {
	orders []*domain.RepairOrder
	err    error
}

func (s *stubRepo) GetWithFilter(_ context.Context, _ domain.OrderFilter) ([]*domain.RepairOrder, error) {
	return s.orders, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func makeOrder(date time.Time, slot string, status domain.OrderStatus) *domain.RepairOrder {
	return &domain.RepairOrder{
		ID:              uuid.New(),
		AppointmentDate: date,
		AppointmentTime: slot,
		Status:          status,
	}
}

func TestExecute_MonthlyOccupancy(t *testing.T) {
	d10 := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	d11 := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	orders := []*domain.RepairOrder{
		makeOrder(d10, "10:00-11:00", domain.StatusPending),
		makeOrder(d10, "10:00-11:00", domain.StatusConfirmed),
		makeOrder(d10, "13:00-14:00", domain.StatusInProgress),
		makeOrder(d10, "14:00-15:00", domain.StatusCompleted),
		makeOrder(d10, "15:00-16:00", domain.StatusDelayed),
		makeOrder(d10, "16:00-17:00", domain.StatusPending),
		makeOrder(d10, "17:00-18:00", domain.StatusPending),
		makeOrder(d10, "13:00-14:00", domain.StatusCancelled), // freed slot
		makeOrder(d11, "10:00-11:00", domain.StatusPending),
	}

	uc := NewUseCase(&stubRepo{orders: orders}, domain.AdminCatalog, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.June})

	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	busy := resp.Days["2024-06-10"]
	require.NotNil(t, busy)
	assert.Equal(t, 7, busy.Total)
	assert.Equal(t, domain.TierBusy, busy.Tier)
	assert.Equal(t, "繁忙", busy.TierLabel)

	quiet := resp.Days["2024-06-11"]
	require.NotNil(t, quiet)
	assert.Equal(t, 1, quiet.Total)
	assert.Equal(t, domain.TierIdle, quiet.Tier)
}

func TestExecute_SlotDetailFollowsAdminCatalog(t *testing.T) {
	d10 := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	orders := []*domain.RepairOrder{
		makeOrder(d10, "10:00-11:00", domain.StatusPending),
		// off-catalog: lunch-hour booking from the public form's wider range
		makeOrder(d10, "12:00-13:00", domain.StatusPending),
	}

	uc := NewUseCase(&stubRepo{orders: orders}, domain.AdminCatalog, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.June})

	require.NoError(t, err)
	day := resp.Days["2024-06-10"]
	require.NotNil(t, day)

	// 7 admin catalog slots plus the off-catalog label appended
	require.Len(t, day.Slots, 8)
	assert.Equal(t, "10:00-11:00", day.Slots[0].Slot)
	assert.Equal(t, 1, day.Slots[0].Count)
	assert.Equal(t, "12:00-13:00", day.Slots[7].Slot)
	assert.Equal(t, 1, day.Slots[7].Count)

	// the off-catalog booking still counts towards the day total
	assert.Equal(t, 2, day.Total)
}

func TestExecute_WeekendBookingsStillCounted(t *testing.T) {
	saturday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	orders := []*domain.RepairOrder{
		makeOrder(saturday, "10:00-11:00", domain.StatusPending),
	}

	uc := NewUseCase(&stubRepo{orders: orders}, domain.AdminCatalog, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.June})

	require.NoError(t, err)
	require.NotNil(t, resp.Days["2024-06-15"])
	assert.Equal(t, 1, resp.Days["2024-06-15"].Total)
}

func TestExecute_InvalidMonth(t *testing.T) {
	uc := NewUseCase(&stubRepo{}, domain.AdminCatalog, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 13})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

package order

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretworks/repairshop-service/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func orderRows(orders ...*domain.RepairOrder) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "customer_name", "customer_email", "customer_phone",
		"guitar_brand", "guitar_model", "problem_description",
		"appointment_date", "appointment_time", "status",
		"technician", "admin_notes", "image_key", "created_at", "updated_at",
	})
	for _, o := range orders {
		rows.AddRow(
			o.ID, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
			o.GuitarBrand, o.GuitarModel, o.ProblemDesc,
			o.AppointmentDate, o.AppointmentTime, o.Status,
			o.Technician, o.AdminNotes, o.ImageKey, o.CreatedAt, o.UpdatedAt,
		)
	}
	return rows
}

func TestRepository_GetWithFilter_ExcludesCancelledByDefault(t *testing.T) {
	repo, mock := newMockRepo(t)
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	stored := &domain.RepairOrder{
		ID:              uuid.New(),
		CustomerName:    "李明",
		CustomerEmail:   "liming@example.com",
		CustomerPhone:   "13800138000",
		ProblemDesc:     "fret buzz on the high E string",
		AppointmentDate: date,
		AppointmentTime: "09:00-10:00",
		Status:          domain.StatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	mock.ExpectQuery(`SELECT .+ FROM repair_orders WHERE appointment_date >= \$1 AND appointment_date <= \$2 AND status <> \$3`).
		WithArgs(date, date, string(domain.StatusCancelled)).
		WillReturnRows(orderRows(stored))

	orders, err := repo.GetWithFilter(context.Background(), domain.OrderFilter{
		StartDate: &date,
		EndDate:   &date,
	})

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, stored.ID, orders[0].ID)
	assert.Equal(t, "09:00-10:00", orders[0].AppointmentTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_ExactStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	status := domain.StatusCompleted

	mock.ExpectQuery(`SELECT .+ FROM repair_orders WHERE status = \$1`).
		WithArgs(string(status)).
		WillReturnRows(orderRows())

	orders, err := repo.GetWithFilter(context.Background(), domain.OrderFilter{Status: &status})

	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM repair_orders WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(orderRows())

	_, err := repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE repair_orders SET status = $1, updated_at = NOW() WHERE id = $2`)).
		WithArgs(string(domain.StatusConfirmed), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, domain.StatusConfirmed, nil)

	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM repair_orders WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/fretworks/repairshop-service/internal/domain"
	"github.com/fretworks/repairshop-service/pkg/dbmetrics"
	"github.com/fretworks/repairshop-service/pkg/psqlbuilder"
)

var orderColumns = []string{
	"id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"guitar_brand",
	"guitar_model",
	"problem_description",
	"appointment_date",
	"appointment_time",
	"status",
	"technician",
	"admin_notes",
	"image_key",
	"created_at",
	"updated_at",
}

// Repository repository for repair orders
type Repository struct {
	db DBExecutor
}

// NewRepository creates a repair order repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new repair order. If the context carries an active
// transaction it is used, otherwise the query runs standalone.
func (r *Repository) Create(ctx context.Context, o *domain.RepairOrder) (*domain.RepairOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("repair_orders").
		Columns(
			"id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"guitar_brand",
			"guitar_model",
			"problem_description",
			"appointment_date",
			"appointment_time",
			"status",
			"technician",
			"admin_notes",
			"image_key",
		).
		Values(
			o.ID,
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.GuitarBrand,
			o.GuitarModel,
			o.ProblemDesc,
			o.AppointmentDate,
			o.AppointmentTime,
			o.Status,
			o.Technician,
			o.AdminNotes,
			o.ImageKey,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return o, nil
}

// GetByID fetches a repair order by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RepairOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("repair_orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	o, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	return o, nil
}

// GetWithFilter fetches repair orders matching the filter.
//
// Supported filters:
//   - appointment-date period (StartDate, EndDate), both optional
//   - exact status (Status)
//   - IncludeCancelled - when false and no exact status is set, cancelled
//     orders are excluded, which is what the availability aggregation needs
//
// For a single-date query inside a transaction the rows are locked with
// FOR UPDATE so a concurrent create cannot double-book the slot unseen.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.OrderFilter) ([]*domain.RepairOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("repair_orders")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("appointment_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, appointment_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// UpdateStatus updates an order's status and, when provided, the admin notes
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, adminNotes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("repair_orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if adminNotes != nil {
		updateBuilder = updateBuilder.Set("admin_notes", *adminNotes)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Delete physically removes a repair order. The service layer only allows
// this for cancelled orders; prefer cancelling to keep history.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("repair_orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.RepairOrder, error) {
	var o domain.RepairOrder
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.GuitarBrand,
		&o.GuitarModel,
		&o.ProblemDesc,
		&o.AppointmentDate,
		&o.AppointmentTime,
		&o.Status,
		&o.Technician,
		&o.AdminNotes,
		&o.ImageKey,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time
	return &o, nil
}

func scanOrders(rows *sql.Rows) ([]*domain.RepairOrder, error) {
	orders := make([]*domain.RepairOrder, 0)

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanOrders - scan row: %v", ErrScanRow, err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOrders - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

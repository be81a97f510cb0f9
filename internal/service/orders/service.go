package orders

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fretworks/repairshop-service/internal/domain"
	orderRepo "github.com/fretworks/repairshop-service/internal/infra/storage/order"
	"github.com/fretworks/repairshop-service/internal/service/orders/models"
)

// Service service for managing repair orders
type Service struct {
	orderRepo   OrderRepository
	mediaClient MediaStoreClient
	logger      Logger
}

// NewService creates a repair order service
func NewService(orderRepo OrderRepository, mediaClient MediaStoreClient, logger Logger) *Service {
	return &Service{
		orderRepo:   orderRepo,
		mediaClient: mediaClient,
		logger:      logger,
	}
}

// GetByID fetches a repair order and resolves its image reference
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.OrderResponse, error) {
	s.logger.Info("GetByID: fetching order id=%s", id)

	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByID: order id=%s not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByID: repository error for order id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainOrder(o)
	if o.ImageKey != nil {
		resp.ImageURL = s.mediaClient.ResolveImageURL(ctx, *o.ImageKey)
	}

	return resp, nil
}

// List fetches repair orders with the admin dashboard filters
func (s *Service) List(ctx context.Context, req *models.ListOrdersRequest) (*models.OrderListResponse, error) {
	s.logger.Info("List: fetching orders, includeCancelled=%v", req.IncludeCancelled)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	orders, err := s.orderRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d orders", len(orders))
	return models.FromDomainOrderList(orders), nil
}

// Cancel cancels a repair order, freeing its appointment slot
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Cancel: cancelling order id=%s", id)

	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		s.logger.Error("Cancel: repository error for order id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !o.CanBeCancelled() {
		s.logger.Warn("Cancel: order id=%s cannot be cancelled, status=%s", id, o.Status)
		return ErrCannotCancel
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, domain.StatusCancelled, nil); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		s.logger.Error("Cancel: repository error for order id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled order id=%s", id)
	return nil
}

// Delete physically removes a cancelled order
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting order id=%s", id)

	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		s.logger.Error("Delete: repository error for order id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !o.CanBeDeleted() {
		s.logger.Warn("Delete: order id=%s is not cancelled, status=%s", id, o.Status)
		return ErrCannotDelete
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		s.logger.Error("Delete: repository error for order id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted order id=%s", id)
	return nil
}

// Stats computes the status distribution across all orders,
// cancelled included
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	orders, err := s.orderRepo.GetWithFilter(ctx, domain.OrderFilter{IncludeCancelled: true})
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	d := domain.DistributionOf(orders)
	return &models.StatsResponse{
		Pending:   d.Pending,
		Active:    d.Active,
		Completed: d.Completed,
		Total:     d.Total,
	}, nil
}

// csvHeader column order matches the dashboard export
var csvHeader = []string{
	"id", "customer_name", "customer_email", "customer_phone",
	"guitar_brand", "guitar_model", "problem_description",
	"appointment_date", "appointment_time", "status", "admin_notes",
}

// ExportCSV renders the filtered order list as CSV for the dashboard
// export button
func (s *Service) ExportCSV(ctx context.Context, req *models.ListOrdersRequest) ([]byte, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	orders, err := s.orderRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - write header: %v", ErrInternal, err)
	}
	for _, o := range orders {
		record := []string{
			o.ID.String(),
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			deref(o.GuitarBrand),
			deref(o.GuitarModel),
			o.ProblemDesc,
			o.AppointmentDate.Format(domain.DateFormat),
			o.AppointmentTime,
			string(o.Status),
			deref(o.AdminNotes),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: ExportCSV - write record: %v", ErrInternal, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d orders", len(orders))
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

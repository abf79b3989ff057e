package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает запись компании по ID
func (s *Service) GetByID(ctx context.Context, companyID int64, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for company=%d", id, companyID)

	appt, err := s.load(ctx, "GetByID", companyID, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи компании с фильтрацией.
// По умолчанию отменённые записи не возвращаются.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for company=%d", req.CompanyID)

	if req.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("List: endDate %s before startDate %s", req.EndDate, req.StartDate)
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for company=%d", len(appointments), req.CompanyID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись и освобождает слот
func (s *Service) Cancel(ctx context.Context, companyID int64, id string, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s for company=%d", id, companyID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellationReason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var result *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.load(txCtx, "Cancel", companyID, id)
		if err != nil {
			return err
		}

		if !appt.CanBeCancelled() {
			s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, appt.Status)
			return ErrCannotCancel
		}

		if err := s.appointmentRepo.Cancel(txCtx, id, req.CancellationReason); err != nil {
			return s.repoError("Cancel", id, err)
		}

		result, err = s.load(txCtx, "Cancel", companyID, id)
		return err
	})

	s.metrics.RecordSchedulingOutcome("cancel", outcome(err))
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: appointment id=%s cancelled, slot released", id)
	return models.FromDomainAppointment(result), nil
}

// UpdateStatus переводит запись в новый статус.
// Переход в cancelled выполняется как отмена без причины.
func (s *Service) UpdateStatus(ctx context.Context, companyID int64, id string, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s for company=%d", id, req.Status, companyID)

	next, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	var result *domain.Appointment
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.load(txCtx, "UpdateStatus", companyID, id)
		if err != nil {
			return err
		}

		if !appt.CanTransitionTo(next) {
			s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for id=%s", appt.Status, next, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, next)
		}

		if next == domain.StatusCancelled {
			err = s.appointmentRepo.Cancel(txCtx, id, nil)
		} else {
			err = s.appointmentRepo.UpdateStatus(txCtx, id, next)
		}
		if err != nil {
			return s.repoError("UpdateStatus", id, err)
		}

		result, err = s.load(txCtx, "UpdateStatus", companyID, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, next)
	return models.FromDomainAppointment(result), nil
}

// load получает запись и проверяет принадлежность компании
func (s *Service) load(ctx context.Context, op string, companyID int64, id string) (*domain.Appointment, error) {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("%s: invalid appointment id=%q", op, id)
		return nil, fmt.Errorf("%w: appointmentId must be a UUID", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repoError(op, id, err)
	}

	// Запись другой компании неотличима от отсутствующей
	if appt.CompanyID != companyID {
		s.logger.Warn("%s: appointment id=%s belongs to company=%d, requested by company=%d", op, id, appt.CompanyID, companyID)
		return nil, ErrAppointmentNotFound
	}

	return appt, nil
}

func (s *Service) repoError(op, id string, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%s not found", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	return metrics.OutcomeError
}

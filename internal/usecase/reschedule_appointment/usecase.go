package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
)

const operation = "reschedule"

// UseCase use case для переноса записи на другой слот
type UseCase struct {
	appointmentRepo AppointmentRepository
	schedules       ScheduleProvider
	txManager       TransactionManager
	calendar        Calendar
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	schedules ScheduleProvider,
	txManager TransactionManager,
	calendar Calendar,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		schedules:       schedules,
		txManager:       txManager,
		calendar:        calendar,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи.
// Сама запись не считается конфликтом для нового слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	uc.logger.Info("RescheduleAppointment: company=%d, id=%s, date=%s, time=%s",
		req.CompanyID, req.AppointmentID, req.Date, req.StartTime)

	defer func() {
		uc.metrics.RecordSchedulingOutcome(operation, outcome(err))
	}()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	today := uc.calendar.Today()

	var result *domain.Appointment

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Текущая запись
		current, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}

		// 2.2. Запись другой компании не раскрывается
		if current.CompanyID != req.CompanyID {
			uc.logger.Warn("RescheduleAppointment: appointment id=%s belongs to company=%d, not %d",
				req.AppointmentID, current.CompanyID, req.CompanyID)
			return ErrAppointmentNotFound
		}

		if !current.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%s has status %s", current.ID, current.Status)
			return fmt.Errorf("%w: status %s", ErrCannotReschedule, current.Status)
		}

		resourceID := req.ResourceID
		if resourceID == nil {
			resourceID = current.ResourceID
		}

		// 2.3. Настройки компании и валидация даты
		config, err := uc.schedules.GetConfig(txCtx, req.CompanyID)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %w", ErrInternal, err)
		}

		if err := validateDate(req.Date, today, config.MaxAdvanceDays); err != nil {
			uc.logger.Warn("RescheduleAppointment: date validation failed: %v", err)
			return err
		}

		// 2.4. Слот должен существовать в рабочем времени нового дня
		week, err := uc.schedules.GetWeeklySchedule(txCtx, req.CompanyID)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %w", ErrInternal, err)
		}

		resolver, err := scheduling.NewAvailabilityResolver(config.SlotIntervalMinutes)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}

		day, err := resolver.Day(req.Date, week, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to resolve slots: %w", ErrInternal, err)
		}

		if !day.IsOpen {
			uc.logger.Warn("RescheduleAppointment: company=%d is closed on %s", req.CompanyID, req.Date)
			return ErrCompanyClosed
		}

		if !day.Contains(req.StartTime) {
			uc.logger.Warn("RescheduleAppointment: time %s is not a slot on %s", req.StartTime, req.Date)
			return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
		}

		// 2.5. Конфликт с другими активными записями
		existing, err := uc.appointmentRepo.ListActiveByDate(txCtx, req.CompanyID, req.Date)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		candidate := scheduling.Candidate{
			Date:       req.Date,
			StartTime:  req.StartTime,
			ResourceID: resourceID,
			ExcludeID:  current.ID,
		}
		if scheduling.NewConflictDetector(config.ResourceScoped).HasConflict(candidate, existing) {
			uc.logger.Warn("RescheduleAppointment: slot %s %s is already taken", req.Date, req.StartTime)
			return ErrSlotNotAvailable
		}

		// 2.6. Перенос
		if err := uc.appointmentRepo.Reschedule(txCtx, current.ID, req.Date, req.StartTime, resourceID); err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrSlotTaken):
				return ErrSlotNotAvailable
			case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to reschedule id=%s: %v", current.ID, err)
			return fmt.Errorf("%w: failed to reschedule: %w", ErrInternal, err)
		}

		updated := *current
		updated.Date = req.Date
		updated.StartTime = req.StartTime
		updated.ResourceID = resourceID
		result = &updated
		return nil
	})
	if err != nil {
		if !isKnown(err) {
			uc.logger.Error("RescheduleAppointment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%s moved to %s %s", result.ID, result.Date, result.StartTime)
	return FromDomain(result), nil
}

func isKnown(err error) bool {
	for _, target := range []error{
		ErrInvalidInput, ErrAppointmentNotFound, ErrCannotReschedule, ErrPastDate,
		ErrDateTooFarInFuture, ErrCompanyClosed, ErrInvalidTimeSlot, ErrSlotNotAvailable, ErrInternal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

const operation = "create"

// UseCase use case для создания записи на слот
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

// Execute выполняет use case создания записи.
// Проверка слота и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	uc.logger.Info("CreateAppointment: company=%d, date=%s, time=%s, resource=%s",
		req.CompanyID, req.Date, req.StartTime, ptr.Deref(req.ResourceID, "-"))

	defer func() {
		uc.metrics.RecordSchedulingOutcome(operation, outcome(err))
	}()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. "Сегодня" фиксируется до начала транзакции, повторы видят ту же дату
	today := uc.calendar.Today()

	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Настройки компании
		config, err := uc.schedules.GetConfig(txCtx, req.CompanyID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %w", ErrInternal, err)
		}

		// 3.2. Валидация даты
		if err := validateDate(req.Date, today, config.MaxAdvanceDays); err != nil {
			uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
			return err
		}

		// 3.3. Слоты дня по рабочему времени
		week, err := uc.schedules.GetWeeklySchedule(txCtx, req.CompanyID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %w", ErrInternal, err)
		}

		resolver, err := scheduling.NewAvailabilityResolver(config.SlotIntervalMinutes)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}

		day, err := resolver.Day(req.Date, week, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to resolve slots: %v", err)
			return fmt.Errorf("%w: failed to resolve slots: %w", ErrInternal, err)
		}

		if !day.IsOpen {
			uc.logger.Warn("CreateAppointment: company=%d is closed on %s", req.CompanyID, req.Date)
			return ErrCompanyClosed
		}

		// 3.4. Время должно совпадать с границей слота
		if !day.Contains(req.StartTime) {
			uc.logger.Warn("CreateAppointment: time %s is not a slot on %s", req.StartTime, req.Date)
			return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
		}

		// 3.5. Проверка конфликта с активными записями (строки блокируются FOR UPDATE)
		existing, err := uc.appointmentRepo.ListActiveByDate(txCtx, req.CompanyID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		candidate := scheduling.Candidate{
			Date:       req.Date,
			StartTime:  req.StartTime,
			ResourceID: req.ResourceID,
		}
		if scheduling.NewConflictDetector(config.ResourceScoped).HasConflict(candidate, existing) {
			uc.logger.Warn("CreateAppointment: slot %s %s is already taken", req.Date, req.StartTime)
			return ErrSlotNotAvailable
		}

		// 3.6. Создание записи
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CompanyID:    req.CompanyID,
			Date:         req.Date,
			StartTime:    req.StartTime,
			ResourceID:   req.ResourceID,
			Status:       domain.StatusConfirmed,
			CustomerName: strings.TrimSpace(req.CustomerName),
			Notes:        req.Notes,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s %s taken concurrently", req.Date, req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if !isKnown(err) {
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s", result.ID)
	return FromDomain(result), nil
}

func isKnown(err error) bool {
	for _, target := range []error{
		ErrInvalidInput, ErrPastDate, ErrDateTooFarInFuture, ErrCompanyClosed,
		ErrInvalidTimeSlot, ErrSlotNotAvailable, ErrInternal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

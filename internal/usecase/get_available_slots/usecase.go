package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	schedules       ScheduleProvider
	calendar        Calendar
	holidays        HolidayClassifier
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	schedules ScheduleProvider,
	calendar Calendar,
	holidays HolidayClassifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		schedules:       schedules,
		calendar:        calendar,
		holidays:        holidays,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: company=%d, date=%s, resource=%s",
		req.CompanyID, req.Date, ptr.Deref(req.ResourceID, "-"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. "Сегодня" читается один раз на запрос
	today := uc.calendar.Today()

	// 3. Настройки бронирования компании
	config, err := uc.schedules.GetConfig(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get config for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 4. Валидация даты
	if err := validateDate(req.Date, today, config.MaxAdvanceDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Недельный шаблон рабочего времени
	week, err := uc.schedules.GetWeeklySchedule(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working hours for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 6. Активные записи на дату
	appointments, err := uc.appointmentRepo.ListActiveByDate(ctx, req.CompanyID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Занятые слоты по тем же правилам, что и проверка конфликтов
	detector := scheduling.NewConflictDetector(config.ResourceScoped)
	booked := detector.BookedTimes(req.Date, req.ResourceID, appointments)

	// 8. Слоты дня
	resolver, err := scheduling.NewAvailabilityResolver(config.SlotIntervalMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid interval %d for company=%d", config.SlotIntervalMinutes, req.CompanyID)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	day, err := resolver.Day(req.Date, week, booked)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve slots: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
	}

	response := &Response{
		Date:            req.Date,
		CompanyID:       req.CompanyID,
		ResourceID:      req.ResourceID,
		IsOpen:          day.IsOpen,
		IntervalMinutes: config.SlotIntervalMinutes,
		AvailableSlots:  day.Available(),
		Slots:           day.Slots,
	}

	// 9. Праздник носит информационный характер
	if name, ok := uc.holidays.HolidayName(req.Date); ok {
		response.Holiday = &name
	}

	if !day.IsOpen {
		uc.logger.Info("GetAvailableSlots: company=%d is closed on %s", req.CompanyID, req.Date)
	}

	uc.metrics.RecordSlotsServed(len(response.AvailableSlots))
	uc.logger.Info("GetAvailableSlots: %d of %d slots available for company=%d, date=%s",
		len(response.AvailableSlots), len(response.Slots), req.CompanyID, req.Date)

	return response, nil
}

package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	appointmentRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/catalog"
	"github.com/ytopal/Barbershop-BookingService/internal/integrations/mailservice"
	"github.com/ytopal/Barbershop-BookingService/internal/slots"
	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// UseCase use case для создания записи на услугу
type UseCase struct {
	serviceRepo      ServiceRepository
	ruleRepo         RuleRepository
	exceptionRepo    ExceptionRepository
	appointmentsRepo AppointmentRepository
	mailClient       MailServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	ruleRepo RuleRepository,
	exceptionRepo ExceptionRepository,
	appointmentsRepo AppointmentRepository,
	mailClient MailServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		ruleRepo:         ruleRepo,
		exceptionRepo:    exceptionRepo,
		appointmentsRepo: appointmentsRepo,
		mailClient:       mailClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// доступность слота пересчитывается по свежим данным внутри транзакции,
// а эксклюзивное ограничение БД на пересечение интервалов служит последним рубежом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%d, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Проверяем, что услуга доступна для записи
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 6. Вычисляем занимаемый интервал: конец = начало + длительность услуги,
	// буфер учитывается только шагом сетки слотов
	startAt, err := req.StartTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve start time: %v", ErrInternal, err)
	}
	endAt := startAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем активные еженедельные правила
		rules, err := uc.ruleRepo.List(txCtx, true)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get rules: %v", err)
			return fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
		}

		// 7.2. Получаем исключения на дату записи
		exceptions, err := uc.exceptionRepo.ListByDateRange(txCtx, domain.ExceptionsFilter{
			From: req.Date,
			To:   req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get exceptions: %v", err)
			return fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
		}

		// 7.3. Получаем все активные записи на эту дату с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentsRepo.GetByFilter(txCtx, domain.AppointmentsFilter{
			From: req.Date,
			To:   req.Date.AddDate(0, 0, 1),
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.4. Пересчитываем доступные слоты по свежим данным
		available, err := slots.ComputeDaySlots(req.Date, service, rules, exceptions, appointments, now)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to compute slots: %v", err)
			return fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
		}

		if !slots.ContainsSlot(available, startAt) {
			uc.logger.Warn("CreateAppointment: slot %s %s is not available",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotNotAvailable
		}

		// 7.5. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			ConfirmationCode: uuid.New(),
			ServiceID:        req.ServiceID,
			StartDateTime:    startAt,
			EndDateTime:      endAt,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerPhone:    req.CustomerPhone,
			Notes:            req.Notes,
			Status:           domain.StatusConfirmed,
			// Денормализация данных услуги
			ServiceName:     service.Name,
			ServicePrice:    service.PriceEUR,
			DurationMinutes: service.DurationMinutes,
		}

		// 7.6. Сохраняем запись
		created, err := uc.appointmentsRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot taken by concurrent request: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, code=%s",
		result.ID, result.ConfirmationCode)

	// 8. Отправляем письмо-подтверждение (best effort, запись уже создана)
	_ = uc.mailClient.SendBookingEmailWithGracefulDegradation(ctx, mailservice.BookingEmailRequest{
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		ServiceDuration: result.DurationMinutes,
		AppointmentDate: result.StartDateTime.Format(domain.DateFormat),
		AppointmentTime: result.StartDateTime.Format(domain.TimeFormat),
		Notes:           result.Notes,
		Type:            mailservice.EmailConfirmation,
	})

	// Конвертируем в response
	return &Response{
		ID:               result.ID,
		ConfirmationCode: result.ConfirmationCode,
		ServiceID:        result.ServiceID,
		Date:             req.Date,
		StartTime:        types.NewTimeString(result.StartDateTime),
		DurationMinutes:  result.DurationMinutes,
		Status:           string(result.Status),
		ServiceName:      result.ServiceName,
		ServicePrice:     result.ServicePrice,
		CustomerName:     result.CustomerName,
		CustomerEmail:    result.CustomerEmail,
		CustomerPhone:    result.CustomerPhone,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

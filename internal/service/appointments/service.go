package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	appointmentRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/appointment"
	"github.com/ytopal/Barbershop-BookingService/internal/integrations/mailservice"
	"github.com/ytopal/Barbershop-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	mailClient      MailServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	mailClient MailServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		mailClient:      mailClient,
		logger:          logger,
	}
}

// GetByConfirmationCode получает запись по публичному коду подтверждения
// Используется страницей подтверждения: клиент не знает внутренний ID записи
func (s *Service) GetByConfirmationCode(ctx context.Context, code uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByConfirmationCode: fetching appointment code=%s", code)

	appointment, err := s.appointmentRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByConfirmationCode: appointment code=%s not found", code)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByConfirmationCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByConfirmationCode - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByConfirmationCode: successfully fetched appointment id=%d", appointment.ID)
	return models.FromDomainAppointment(appointment), nil
}

// GetDayAppointments получает записи за день для администратора
// По умолчанию включает только активные записи; IncludeCancelled добавляет отменённые
func (s *Service) GetDayAppointments(ctx context.Context, req *models.GetDayAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetDayAppointments: fetching appointments for date=%s, includeCancelled=%t",
		req.Date.Format(domain.DateFormat), req.IncludeCancelled)

	if req.Date.IsZero() {
		s.logger.Warn("GetDayAppointments: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	items, err := s.appointmentRepo.GetByFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetDayAppointments: repository error for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDayAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayAppointments: successfully fetched %d appointments for date=%s",
		len(items), req.Date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(items), nil
}

// Cancel отменяет запись
// Отменённая запись освобождает интервал для новых записей;
// клиенту отправляется письмо об отмене (best effort)
func (s *Service) Cancel(ctx context.Context, appointmentID int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", appointmentID)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)

	// Уведомляем клиента об отмене (запись уже отменена, ошибка письма не критична)
	_ = s.mailClient.SendBookingEmailWithGracefulDegradation(ctx, mailservice.BookingEmailRequest{
		CustomerName:    appointment.CustomerName,
		CustomerEmail:   appointment.CustomerEmail,
		ServiceName:     appointment.ServiceName,
		ServicePrice:    appointment.ServicePrice,
		ServiceDuration: appointment.DurationMinutes,
		AppointmentDate: appointment.StartDateTime.Format(domain.DateFormat),
		AppointmentTime: appointment.StartDateTime.Format(domain.TimeFormat),
		Notes:           appointment.Notes,
		Type:            mailservice.EmailCancellation,
	})

	return nil
}

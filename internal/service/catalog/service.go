package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	catalogRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/catalog"
	"github.com/ytopal/Barbershop-BookingService/internal/service/catalog/models"
)

// Service сервис для управления каталогом услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List получает список услуг
// activeOnly=true для публичной витрины, false для администратора
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services, activeOnly=%t", activeOnly)

	items, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(items))
	return models.FromDomainServiceList(items), nil
}

// Create создает новую услугу
// Новая услуга активна и попадает в конец витрины
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q", req.Name)

	if err := validateServiceFields(req.Name, req.DurationMinutes, req.BufferAfterMinutes, req.PriceEUR); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Новая услуга встаёт в конец списка
	count, err := s.serviceRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error("Create: failed to count services: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	service := &domain.Service{
		Name:               strings.TrimSpace(req.Name),
		Description:        req.Description,
		DurationMinutes:    req.DurationMinutes,
		BufferAfterMinutes: req.BufferAfterMinutes,
		PriceEUR:           req.PriceEUR,
		IsActive:           true,
		SortOrder:          count,
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: failed to create service: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Update обновляет услугу целиком
// Деактивация услуги убирает её из витрины и из расчёта слотов,
// но уже созданные записи остаются в силе
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
	}

	if err := validateServiceFields(req.Name, req.DurationMinutes, req.BufferAfterMinutes, req.PriceEUR); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	service.Name = strings.TrimSpace(req.Name)
	service.Description = req.Description
	service.DurationMinutes = req.DurationMinutes
	service.BufferAfterMinutes = req.BufferAfterMinutes
	service.PriceEUR = req.PriceEUR
	service.IsActive = req.IsActive
	service.SortOrder = req.SortOrder

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: failed to update service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(service), nil
}

// validateServiceFields проверяет общие поля услуги
func validateServiceFields(name string, durationMinutes, bufferMinutes int, price float64) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(trimmed) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}

	if durationMinutes < domain.MinServiceDurationMinutes || durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if bufferMinutes < 0 || bufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferAfterMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}

	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return nil
}

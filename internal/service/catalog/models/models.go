package models

import (
	"time"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name               string  `json:"name"`
	Description        *string `json:"description,omitempty"`
	DurationMinutes    int     `json:"durationMinutes"`
	BufferAfterMinutes int     `json:"bufferAfterMinutes"`
	PriceEUR           float64 `json:"priceEur"`
}

// UpdateServiceRequest запрос на обновление услуги
type UpdateServiceRequest struct {
	Name               string  `json:"name"`
	Description        *string `json:"description,omitempty"`
	DurationMinutes    int     `json:"durationMinutes"`
	BufferAfterMinutes int     `json:"bufferAfterMinutes"`
	PriceEUR           float64 `json:"priceEur"`
	IsActive           bool    `json:"isActive"`
	SortOrder          int     `json:"sortOrder"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        *string   `json:"description,omitempty"`
	DurationMinutes    int       `json:"durationMinutes"`
	BufferAfterMinutes int       `json:"bufferAfterMinutes"`
	PriceEUR           float64   `json:"priceEur"`
	IsActive           bool      `json:"isActive"`
	SortOrder          int       `json:"sortOrder"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		DurationMinutes:    s.DurationMinutes,
		BufferAfterMinutes: s.BufferAfterMinutes,
		PriceEUR:           s.PriceEUR,
		IsActive:           s.IsActive,
		SortOrder:          s.SortOrder,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(items []*domain.Service) *ServiceListResponse {
	result := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(items)),
	}

	for _, s := range items {
		if resp := FromDomainService(s); resp != nil {
			result.Services = append(result.Services, *resp)
		}
	}

	return result
}

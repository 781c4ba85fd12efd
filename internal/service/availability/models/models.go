package models

import (
	"time"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
)

// Request модели

// CreateRuleRequest запрос на создание еженедельного правила
type CreateRuleRequest struct {
	Weekday   int    `json:"weekday"`   // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// CreateExceptionRequest запрос на создание исключения по дате
type CreateExceptionRequest struct {
	Date      string  `json:"date"` // "2025-10-15"
	Type      string  `json:"type"` // blocked | extra
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// ListExceptionsRequest запрос на получение исключений за период
type ListExceptionsRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID        int64     `json:"id"`
	Weekday   int       `json:"weekday"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// ExceptionResponse ответ с данными исключения
type ExceptionResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExceptionListResponse ответ со списком исключений
type ExceptionListResponse struct {
	Exceptions []ExceptionResponse `json:"exceptions"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.WeeklyRule) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ID:        r.ID,
		Weekday:   r.Weekday,
		StartTime: r.StartTime.String(),
		EndTime:   r.EndTime.String(),
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(items []domain.WeeklyRule) *RuleListResponse {
	result := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(items)),
	}

	for i := range items {
		if resp := FromDomainRule(&items[i]); resp != nil {
			result.Rules = append(result.Rules, *resp)
		}
	}

	return result
}

// FromDomainException конвертирует domain модель в DTO
func FromDomainException(e *domain.DateException) *ExceptionResponse {
	if e == nil {
		return nil
	}

	resp := &ExceptionResponse{
		ID:        e.ID,
		Date:      e.Date.Format(domain.DateFormat),
		Type:      string(e.Type),
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}

	if e.StartTime != nil {
		start := e.StartTime.String()
		resp.StartTime = &start
	}
	if e.EndTime != nil {
		end := e.EndTime.String()
		resp.EndTime = &end
	}

	return resp
}

// FromDomainExceptionList конвертирует список domain моделей в DTO
func FromDomainExceptionList(items []domain.DateException) *ExceptionListResponse {
	result := &ExceptionListResponse{
		Exceptions: make([]ExceptionResponse, 0, len(items)),
	}

	for i := range items {
		if resp := FromDomainException(&items[i]); resp != nil {
			result.Exceptions = append(result.Exceptions, *resp)
		}
	}

	return result
}

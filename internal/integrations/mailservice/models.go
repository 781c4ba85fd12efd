package mailservice

// EmailType тип письма
type EmailType string

const (
	EmailConfirmation EmailType = "confirmation"
	EmailCancellation EmailType = "cancellation"
)

// BookingEmailRequest полные денормализованные данные записи для письма
// Формат повторяет контракт функции отправки писем
type BookingEmailRequest struct {
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	ServiceName     string    `json:"serviceName"`
	ServicePrice    float64   `json:"servicePrice"`
	ServiceDuration int       `json:"serviceDuration"`
	AppointmentDate string    `json:"appointmentDate"` // "2025-10-15"
	AppointmentTime string    `json:"appointmentTime"` // "10:00"
	Notes           *string   `json:"notes,omitempty"`
	Type            EmailType `json:"type"`
}

// ErrorResponse модель ошибки от сервиса отправки писем
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

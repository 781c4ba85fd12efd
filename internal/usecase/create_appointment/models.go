package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID     int64            // ID услуги
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone *string          // Телефон клиента (опционально)
	Notes         *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID               int64            // ID созданной записи
	ConfirmationCode uuid.UUID        // Публичный код подтверждения
	ServiceID        int64            // ID услуги
	Date             time.Time        // Дата записи
	StartTime        types.TimeString // Время начала
	DurationMinutes  int              // Длительность услуги в минутах
	Status           string           // Статус записи

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги

	CustomerName  string  // Имя клиента
	CustomerEmail string  // Email клиента
	CustomerPhone *string // Телефон клиента
	Notes         *string // Пожелания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

package reschedule_booking

import "time"

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID     int64     // ID бронирования
	CustomerPhone string    // Телефон клиента для подтверждения владения записью
	NewStartAt    time.Time // Новое начало услуги (локальное время без зоны)
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID         int64
	DesignerID string
	StartAt    time.Time
	EndAt      time.Time
	ServiceIDs []string

	CustomerName  string
	CustomerPhone string
	TotalPrice    int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Policy дефолты политики слотов (из конфигурации сервиса)
type Policy struct {
	IntervalMinutes int
	BufferMinutes   int
	MinLeadHours    int
	MaxLeadDays     int
}

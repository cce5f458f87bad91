package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	DesignerID string    // ID дизайнера
	StartAt    time.Time // Начало услуги (локальное время без зоны)
	ServiceIDs []string  // Выбранные услуги из каталога

	CustomerName  string
	CustomerPhone string

	AgreedTerms   bool // Согласие с условиями (обязательно)
	AgreedPrivacy bool // Согласие с политикой персональных данных (обязательно)
	ReminderOptIn bool // Согласие на напоминания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	DesignerID string
	StartAt    time.Time
	EndAt      time.Time
	ServiceIDs []string

	CustomerName  string
	CustomerPhone string
	ReminderOptIn bool

	// Денормализованная сумма по каталогу на момент подтверждения
	TotalPrice int64

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

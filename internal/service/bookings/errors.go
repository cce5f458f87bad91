package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// либо телефон не совпадает (наличие чужой записи не раскрывается)
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDesignerNotFound возвращается, когда дизайнер не найден
	ErrDesignerNotFound = errors.New("designer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

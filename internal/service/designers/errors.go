package designers

import "errors"

var (
	// ErrDesignerNotFound возвращается, когда дизайнер не найден
	ErrDesignerNotFound = errors.New("designer not found")

	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("block not found")

	// ErrInvalidSchedule возвращается при некорректной конфигурации расписания
	ErrInvalidSchedule = errors.New("invalid schedule configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

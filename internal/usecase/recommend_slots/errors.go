package recommend_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга из запроса не найдена в каталоге
	ErrServiceNotFound = errors.New("recommend_slots: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("recommend_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("recommend_slots: internal error")
)

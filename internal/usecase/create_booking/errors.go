package create_booking

import "errors"

var (
	// ErrDesignerNotFound возвращается, когда дизайнер не найден
	ErrDesignerNotFound = errors.New("create_booking: designer not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotNotFound возвращается, когда запрошенное время не является
	// валидным кандидатным окном (нерабочий день, мимо сетки, не влезает в день)
	ErrSlotNotFound = errors.New("create_booking: requested slot does not exist")

	// ErrSlotInPast возвращается, когда слот в прошлом либо нарушает минимальный лид-тайм
	ErrSlotInPast = errors.New("create_booking: slot is in the past or too soon")

	// ErrSlotTooFar возвращается, когда слот дальше максимального горизонта бронирования
	ErrSlotTooFar = errors.New("create_booking: slot is too far in the future")

	// ErrSlotConflict возвращается, когда слот пересекается с бронированием,
	// блокировкой или перерывом
	ErrSlotConflict = errors.New("create_booking: slot conflicts with existing schedule")

	// ErrDailyLimitReached возвращается, когда дневной лимит дизайнера не позволяет запись
	ErrDailyLimitReached = errors.New("create_booking: designer daily limit reached")

	// ErrConsentRequired возвращается без согласия с условиями и политикой персональных данных
	ErrConsentRequired = errors.New("create_booking: terms and privacy consent required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

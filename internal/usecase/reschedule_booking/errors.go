package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// либо телефон не совпадает (наличие чужой записи не раскрывается)
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrDesignerNotFound возвращается, когда дизайнер бронирования не найден
	ErrDesignerNotFound = errors.New("reschedule_booking: designer not found")

	// ErrSlotNotFound возвращается, когда новое время не является валидным кандидатным окном
	ErrSlotNotFound = errors.New("reschedule_booking: requested slot does not exist")

	// ErrSlotInPast возвращается, когда новое время в прошлом либо нарушает минимальный лид-тайм
	ErrSlotInPast = errors.New("reschedule_booking: slot is in the past or too soon")

	// ErrSlotTooFar возвращается, когда новое время дальше максимального горизонта
	ErrSlotTooFar = errors.New("reschedule_booking: slot is too far in the future")

	// ErrSlotConflict возвращается, когда новое время пересекается с другой записью,
	// блокировкой или перерывом (сама переносимая запись не учитывается)
	ErrSlotConflict = errors.New("reschedule_booking: slot conflicts with existing schedule")

	// ErrDailyLimitReached возвращается, когда дневной лимит дизайнера на новом дне исчерпан
	ErrDailyLimitReached = errors.New("reschedule_booking: daily limit reached")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)

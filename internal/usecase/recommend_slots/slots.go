package recommend_slots

import (
	"sort"
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

// interval полуоткрытый временной интервал [start, end)
type interval struct {
	start time.Time
	end   time.Time
}

// buildSlots перечисляет кандидатные окна на день и помечает каждое
// доступным либо недоступным с причиной
//
// Чистая функция: все входные данные (включая "сейчас") передаются явно,
// результат полностью детерминирован
//
// Порядок проверок дня (фиксированный приоритет):
// праздник > специальные часы > недельное расписание
func buildSlots(
	designer *domain.Designer,
	date time.Time,
	totalDurationMinutes int,
	opts slotOptions,
	bookings []*domain.Booking,
	blocks []*domain.Block,
	now time.Time,
) []domain.Slot {
	slots := make([]domain.Slot, 0)

	// Разрешение рабочего окна дня (праздник > спец-часы > недельное
	// расписание) общее для всех путей и живёт в internal/domain;
	// закрытый день для рекомендаций = пустой список слотов
	window, err := domain.ResolveWorkWindow(designer, date)
	if err != nil {
		return slots
	}
	workStart, workEnd := window.Start, window.End

	conflicts := buildConflictSet(designer, date, bookings, blocks, opts.bufferMinutes)
	breaks := buildBreakSet(designer, date)

	latestStart := timeutil.AddMinutes(workEnd, -(totalDurationMinutes + opts.bufferMinutes))
	minAllowedStart := timeutil.AddMinutes(now, opts.minLeadHours*60)
	maxAllowedStart := timeutil.AddMinutes(now, opts.maxLeadDays*24*60)

	for cursor := workStart; !cursor.After(latestStart); cursor = timeutil.AddMinutes(cursor, opts.intervalMinutes) {
		slotStart := cursor
		slotEnd := timeutil.AddMinutes(slotStart, totalDurationMinutes)
		slotEndBuffered := timeutil.AddMinutes(slotEnd, opts.bufferMinutes)

		// Слот, чья услуга заканчивается не позже "сейчас", отдаётся как
		// недоступный с причиной past - клиенту он показывается затемнённым
		if !slotEnd.After(now) {
			slots = append(slots, domain.Slot{
				StartAt:   slotStart,
				EndAt:     slotEnd,
				Available: false,
				Reason:    domain.SlotReasonPast,
			})
			continue
		}

		// Слоты вне лид-тайма не возвращаются вовсе - в отличие от past,
		// они не кандидаты и не должны отображаться
		if slotStart.Before(minAllowedStart) || slotStart.After(maxAllowedStart) {
			continue
		}

		// Граница цикла уже не пускает сюда, но защищаемся от off-by-one
		if slotEndBuffered.After(workEnd) {
			continue
		}

		hasConflict := overlapsAny(conflicts, slotStart, slotEndBuffered) ||
			overlapsAny(breaks, slotStart, slotEndBuffered)

		slot := domain.Slot{
			StartAt:   slotStart,
			EndAt:     slotEnd,
			Available: !hasConflict,
		}
		if hasConflict {
			slot.Reason = domain.SlotReasonConflict
		}
		slots = append(slots, slot)
	}

	return slots
}

// buildConflictSet собирает интервалы занятости на день:
// - бронирования с концом, продлённым на буфер (уборка/подготовка после услуги)
// - ручные блокировки без буфера (это не услуга, уборки после них нет)
// - разовые блокировки из конфигурации дизайнера (default blocks), тоже без буфера
//
// Вход может содержать записи других дней - фильтруем по дню здесь,
// не полагаясь на вызывающего. Сортировка только для детерминизма:
// каждый слот проверяется против всего набора
func buildConflictSet(
	designer *domain.Designer,
	date time.Time,
	bookings []*domain.Booking,
	blocks []*domain.Block,
	bufferMinutes int,
) []interval {
	conflicts := make([]interval, 0, len(bookings)+len(blocks))

	for _, b := range bookings {
		if b.DesignerID != designer.ID || !timeutil.SameDay(b.StartAt, date) {
			continue
		}
		conflicts = append(conflicts, interval{
			start: b.StartAt,
			end:   b.BufferedEnd(bufferMinutes),
		})
	}

	for _, bl := range blocks {
		if bl.DesignerID != designer.ID || !timeutil.SameDay(bl.StartAt, date) {
			continue
		}
		conflicts = append(conflicts, interval{start: bl.StartAt, end: bl.EndAt})
	}

	for _, db := range designer.DefaultBlocksOn(date) {
		start, err := db.Start.On(date)
		if err != nil {
			continue
		}
		end, err := db.End.On(date)
		if err != nil {
			continue
		}
		conflicts = append(conflicts, interval{start: start, end: end})
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].start.Before(conflicts[j].start)
	})

	return conflicts
}

// buildBreakSet собирает интервалы перерывов на день:
// фиксированные ежедневные перерывы плюс повторяющиеся перерывы,
// чей день недели совпадает с запрошенной датой
func buildBreakSet(designer *domain.Designer, date time.Time) []interval {
	breaks := make([]interval, 0, len(designer.Breaks))

	for _, br := range designer.Breaks {
		start, err := br.Start.On(date)
		if err != nil {
			continue
		}
		end, err := br.End.On(date)
		if err != nil {
			continue
		}
		breaks = append(breaks, interval{start: start, end: end})
	}

	for _, rb := range designer.RecurringBreaks {
		if rb.Weekday != date.Weekday() {
			continue
		}
		start, err := rb.Start.On(date)
		if err != nil {
			continue
		}
		end, err := rb.End.On(date)
		if err != nil {
			continue
		}
		breaks = append(breaks, interval{start: start, end: end})
	}

	return breaks
}

// overlapsAny проверяет пересечение окна [start, end) хотя бы с одним интервалом
// Все проверки конфликтов идут через единый предикат domain.Overlaps
func overlapsAny(intervals []interval, start, end time.Time) bool {
	for _, iv := range intervals {
		if domain.Overlaps(start, end, iv.start, iv.end) {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	"github.com/minari-lab/salon-booking-service/pkg/types"
)

// WorkHours недельное рабочее расписание
type WorkHours struct {
	Weekdays []int            `json:"weekday"` // 0-6 (вс-сб)
	Start    types.TimeString `json:"start"`
	End      types.TimeString `json:"end"`
}

// Break фиксированный ежедневный перерыв
type Break struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// RecurringBreak еженедельный перерыв по дню недели
type RecurringBreak struct {
	Weekday int              `json:"weekday"`
	Start   types.TimeString `json:"start"`
	End     types.TimeString `json:"end"`
}

// DefaultBlock разовая блокировка на конкретную дату из конфигурации дизайнера
type DefaultBlock struct {
	Date   string           `json:"date"` // YYYY-MM-DD
	Start  types.TimeString `json:"start"`
	End    types.TimeString `json:"end"`
	Reason string           `json:"reason,omitempty"`
}

// SpecialHours переопределение рабочих часов на конкретную дату
type SpecialHours struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// DesignerResponse дизайнер в ответе сервиса
type DesignerResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Specialties     []string                `json:"specialties"`
	WorkHours       WorkHours               `json:"workHours"`
	Holidays        []string                `json:"holidays"`
	Breaks          []Break                 `json:"breaks"`
	RecurringBreaks []RecurringBreak        `json:"recurringBreaks"`
	DefaultBlocks   []DefaultBlock          `json:"defaultBlocks"`
	SpecialHours    map[string]SpecialHours `json:"specialHours"`

	DailyMaxAppointments *int `json:"dailyMaxAppointments,omitempty"`
	DailyMaxMinutes      *int `json:"dailyMaxMinutes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DesignerListResponse список дизайнеров
type DesignerListResponse struct {
	Designers []*DesignerResponse `json:"designers"`
}

// UpdateDesignerRequest запрос на полную замену конфигурации дизайнера
type UpdateDesignerRequest struct {
	Name            string                  `json:"name"`
	Specialties     []string                `json:"specialties"`
	WorkHours       WorkHours               `json:"workHours"`
	Holidays        []string                `json:"holidays"`
	Breaks          []Break                 `json:"breaks"`
	RecurringBreaks []RecurringBreak        `json:"recurringBreaks"`
	DefaultBlocks   []DefaultBlock          `json:"defaultBlocks"`
	SpecialHours    map[string]SpecialHours `json:"specialHours"`

	DailyMaxAppointments *int `json:"dailyMaxAppointments,omitempty"`
	DailyMaxMinutes      *int `json:"dailyMaxMinutes,omitempty"`
}

// CreateBlockRequest запрос на создание ручной блокировки
type CreateBlockRequest struct {
	DesignerID string    `json:"designerId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Reason     *string   `json:"reason,omitempty"`
}

// BlockResponse созданная блокировка
type BlockResponse struct {
	ID         int64     `json:"id"`
	DesignerID string    `json:"designerId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ServiceItemResponse услуга каталога
type ServiceItemResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int64  `json:"price"`
}

// ServiceItemListResponse список услуг каталога
type ServiceItemListResponse struct {
	Services []*ServiceItemResponse `json:"services"`
}

// FromDomainDesigner конвертирует domain дизайнера в response
func FromDomainDesigner(d *domain.Designer) *DesignerResponse {
	resp := &DesignerResponse{
		ID:          d.ID,
		Name:        d.Name,
		Specialties: d.Specialties,
		WorkHours: WorkHours{
			Weekdays: weekdaysToInts(d.WorkHours.Weekdays),
			Start:    d.WorkHours.Start,
			End:      d.WorkHours.End,
		},
		Holidays:             d.Holidays,
		Breaks:               make([]Break, len(d.Breaks)),
		RecurringBreaks:      make([]RecurringBreak, len(d.RecurringBreaks)),
		DefaultBlocks:        make([]DefaultBlock, len(d.DefaultBlocks)),
		SpecialHours:         make(map[string]SpecialHours, len(d.SpecialHours)),
		DailyMaxAppointments: d.DailyMaxAppointments,
		DailyMaxMinutes:      d.DailyMaxMinutes,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}

	for i, br := range d.Breaks {
		resp.Breaks[i] = Break{Start: br.Start, End: br.End}
	}
	for i, rb := range d.RecurringBreaks {
		resp.RecurringBreaks[i] = RecurringBreak{Weekday: int(rb.Weekday), Start: rb.Start, End: rb.End}
	}
	for i, db := range d.DefaultBlocks {
		resp.DefaultBlocks[i] = DefaultBlock{Date: db.Date, Start: db.Start, End: db.End, Reason: db.Reason}
	}
	for date, sh := range d.SpecialHours {
		resp.SpecialHours[date] = SpecialHours{Start: sh.Start, End: sh.End}
	}

	return resp
}

// FromDomainDesignerList конвертирует список domain дизайнеров в response
func FromDomainDesignerList(designers []*domain.Designer) *DesignerListResponse {
	result := make([]*DesignerResponse, len(designers))
	for i, d := range designers {
		result[i] = FromDomainDesigner(d)
	}
	return &DesignerListResponse{Designers: result}
}

// ToDomainDesigner собирает domain дизайнера из запроса на обновление
func (r *UpdateDesignerRequest) ToDomainDesigner(id string) *domain.Designer {
	d := &domain.Designer{
		ID:          id,
		Name:        r.Name,
		Specialties: r.Specialties,
		WorkHours: domain.WorkHours{
			Weekdays: intsToWeekdays(r.WorkHours.Weekdays),
			Start:    r.WorkHours.Start,
			End:      r.WorkHours.End,
		},
		Holidays:             r.Holidays,
		Breaks:               make([]domain.Break, len(r.Breaks)),
		RecurringBreaks:      make([]domain.RecurringBreak, len(r.RecurringBreaks)),
		DefaultBlocks:        make([]domain.DefaultBlock, len(r.DefaultBlocks)),
		SpecialHours:         make(map[string]domain.SpecialHours, len(r.SpecialHours)),
		DailyMaxAppointments: r.DailyMaxAppointments,
		DailyMaxMinutes:      r.DailyMaxMinutes,
	}

	for i, br := range r.Breaks {
		d.Breaks[i] = domain.Break{Start: br.Start, End: br.End}
	}
	for i, rb := range r.RecurringBreaks {
		d.RecurringBreaks[i] = domain.RecurringBreak{Weekday: time.Weekday(rb.Weekday), Start: rb.Start, End: rb.End}
	}
	for i, db := range r.DefaultBlocks {
		d.DefaultBlocks[i] = domain.DefaultBlock{Date: db.Date, Start: db.Start, End: db.End, Reason: db.Reason}
	}
	for date, sh := range r.SpecialHours {
		d.SpecialHours[date] = domain.SpecialHours{Start: sh.Start, End: sh.End}
	}

	return d
}

// ToDomainBlock собирает domain блокировку из запроса на создание
func (r *CreateBlockRequest) ToDomainBlock() *domain.Block {
	return &domain.Block{
		DesignerID: r.DesignerID,
		StartAt:    r.StartAt,
		EndAt:      r.EndAt,
		Reason:     r.Reason,
	}
}

// FromDomainBlock конвертирует domain блокировку в response
func FromDomainBlock(b *domain.Block) *BlockResponse {
	return &BlockResponse{
		ID:         b.ID,
		DesignerID: b.DesignerID,
		StartAt:    b.StartAt,
		EndAt:      b.EndAt,
		Reason:     b.Reason,
		CreatedAt:  b.CreatedAt,
	}
}

// FromDomainServiceItemList конвертирует список услуг каталога в response
func FromDomainServiceItemList(items []*domain.ServiceItem) *ServiceItemListResponse {
	result := make([]*ServiceItemResponse, len(items))
	for i, item := range items {
		result[i] = &ServiceItemResponse{
			ID:              item.ID,
			Name:            item.Name,
			Category:        item.Category,
			DurationMinutes: item.DurationMinutes,
			Price:           item.Price,
		}
	}
	return &ServiceItemListResponse{Services: result}
}

func weekdaysToInts(weekdays []time.Weekday) []int {
	result := make([]int, len(weekdays))
	for i, wd := range weekdays {
		result[i] = int(wd)
	}
	return result
}

func intsToWeekdays(ints []int) []time.Weekday {
	result := make([]time.Weekday, len(ints))
	for i, v := range ints {
		result[i] = time.Weekday(v)
	}
	return result
}

package models

import (
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
)

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID            int64     `json:"id"`
	DesignerID    string    `json:"designerId"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	ServiceIDs    []string  `json:"serviceIds"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	ReminderOptIn bool      `json:"reminderOptIn"`
	TotalPrice    int64     `json:"totalPrice"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// BlockResponse ручная блокировка в ответе сервиса
type BlockResponse struct {
	ID         int64     `json:"id"`
	DesignerID string    `json:"designerId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Reason     *string   `json:"reason,omitempty"`
}

// DesignerDayResponse расписание дизайнера на день (админский обзор)
type DesignerDayResponse struct {
	DesignerID string             `json:"designerId"`
	Date       string             `json:"date"` // YYYY-MM-DD
	IsHoliday  bool               `json:"isHoliday"`
	IsWorkday  bool               `json:"isWorkday"`
	WorkStart  string             `json:"workStart,omitempty"` // HH:MM
	WorkEnd    string             `json:"workEnd,omitempty"`   // HH:MM
	Bookings   []*BookingResponse `json:"bookings"`
	Blocks     []*BlockResponse   `json:"blocks"`
}

// DaySummary сводка одного дня месяца
type DaySummary struct {
	Date         string `json:"date"` // YYYY-MM-DD
	IsHoliday    bool   `json:"isHoliday"`
	IsWorkday    bool   `json:"isWorkday"`
	BookingCount int    `json:"bookingCount"`
	BlockCount   int    `json:"blockCount"`
	BookedMin    int    `json:"bookedMinutes"`
}

// DesignerMonthResponse помесячная сводка расписания дизайнера
type DesignerMonthResponse struct {
	DesignerID string        `json:"designerId"`
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Days       []*DaySummary `json:"days"`
}

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		DesignerID:    b.DesignerID,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
		ServiceIDs:    b.ServiceIDs,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		ReminderOptIn: b.ReminderOptIn,
		TotalPrice:    b.TotalPrice,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result}
}

// FromDomainBlock конвертирует domain блокировку в response
func FromDomainBlock(b *domain.Block) *BlockResponse {
	return &BlockResponse{
		ID:         b.ID,
		DesignerID: b.DesignerID,
		StartAt:    b.StartAt,
		EndAt:      b.EndAt,
		Reason:     b.Reason,
	}
}

// FromDomainBlockList конвертирует список domain блокировок в response
func FromDomainBlockList(blocks []*domain.Block) []*BlockResponse {
	result := make([]*BlockResponse, len(blocks))
	for i, b := range blocks {
		result[i] = FromDomainBlock(b)
	}
	return result
}

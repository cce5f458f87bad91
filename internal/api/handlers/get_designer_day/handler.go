package get_designer_day

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	"github.com/minari-lab/salon-booking-service/internal/domain"
	"github.com/minari-lab/salon-booking-service/internal/service/bookings"
	"github.com/minari-lab/salon-booking-service/internal/service/bookings/models"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDesignerNotFound = "дизайнер не найден"
)

// BookingItem бронирование в расписании дня
type BookingItem struct {
	ID            int64    `json:"id"`
	StartAt       string   `json:"startAt"`
	EndAt         string   `json:"endAt"`
	ServiceIDs    []string `json:"serviceIds"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	TotalPrice    int64    `json:"totalPrice"`
}

// BlockItem блокировка в расписании дня
type BlockItem struct {
	ID      int64   `json:"id"`
	StartAt string  `json:"startAt"`
	EndAt   string  `json:"endAt"`
	Reason  *string `json:"reason,omitempty"`
}

// DesignerDayResponse HTTP response model
type DesignerDayResponse struct {
	DesignerID string         `json:"designerId"`
	Date       string         `json:"date"`
	IsHoliday  bool           `json:"isHoliday"`
	IsWorkday  bool           `json:"isWorkday"`
	WorkStart  string         `json:"workStart,omitempty"`
	WorkEnd    string         `json:"workEnd,omitempty"`
	Bookings   []*BookingItem `json:"bookings"`
	Blocks     []*BlockItem   `json:"blocks"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/designers/{id}/day?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	designerID := mux.Vars(r)["id"]

	date, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("date"), time.Local)
	if err != nil {
		h.logger.Warn("GET /admin/designers/{id}/day - Invalid date %q: %v", r.URL.Query().Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDesignerDay(r.Context(), designerID, date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrDesignerNotFound):
			h.logger.Warn("GET /admin/designers/{id}/day - Designer not found: designer=%s", designerID)
			handlers.RespondNotFound(w, msgDesignerNotFound)

		default:
			h.logger.Error("GET /admin/designers/{id}/day - Failed to get day: designer=%s, error=%v", designerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.DesignerDayResponse) *DesignerDayResponse {
	result := &DesignerDayResponse{
		DesignerID: resp.DesignerID,
		Date:       resp.Date,
		IsHoliday:  resp.IsHoliday,
		IsWorkday:  resp.IsWorkday,
		WorkStart:  resp.WorkStart,
		WorkEnd:    resp.WorkEnd,
		Bookings:   make([]*BookingItem, len(resp.Bookings)),
		Blocks:     make([]*BlockItem, len(resp.Blocks)),
	}

	for i, b := range resp.Bookings {
		result.Bookings[i] = &BookingItem{
			ID:            b.ID,
			StartAt:       timeutil.FormatLocalISO(b.StartAt),
			EndAt:         timeutil.FormatLocalISO(b.EndAt),
			ServiceIDs:    b.ServiceIDs,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
			TotalPrice:    b.TotalPrice,
		}
	}
	for i, bl := range resp.Blocks {
		result.Blocks[i] = &BlockItem{
			ID:      bl.ID,
			StartAt: timeutil.FormatLocalISO(bl.StartAt),
			EndAt:   timeutil.FormatLocalISO(bl.EndAt),
			Reason:  bl.Reason,
		}
	}

	return result
}

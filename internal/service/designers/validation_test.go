package designers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/minari-lab/salon-booking-service/internal/service/designers/models"
	"github.com/minari-lab/salon-booking-service/pkg/ptr"
)

func validUpdateRequest() *models.UpdateDesignerRequest {
	return &models.UpdateDesignerRequest{
		Name: "Anna",
		WorkHours: models.WorkHours{
			Weekdays: []int{1, 2, 3, 4, 5},
			Start:    "10:00",
			End:      "20:00",
		},
		Holidays: []string{"2026-09-15"},
		Breaks: []models.Break{
			{Start: "13:00", End: "14:00"},
		},
		RecurringBreaks: []models.RecurringBreak{
			{Weekday: 1, Start: "17:00", End: "17:30"},
		},
		SpecialHours: map[string]models.SpecialHours{
			"2026-09-20": {Start: "12:00", End: "16:00"},
		},
	}
}

func TestValidateUpdateRequest(t *testing.T) {
	assert.NoError(t, validateUpdateRequest(validUpdateRequest()))
}

func TestValidateUpdateRequest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *models.UpdateDesignerRequest)
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(req *models.UpdateDesignerRequest) { req.Name = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no working weekdays",
			mutate:  func(req *models.UpdateDesignerRequest) { req.WorkHours.Weekdays = nil },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "weekday out of range",
			mutate:  func(req *models.UpdateDesignerRequest) { req.WorkHours.Weekdays = []int{7} },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "work start after end",
			mutate:  func(req *models.UpdateDesignerRequest) { req.WorkHours.Start = "21:00" },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "malformed holiday date",
			mutate:  func(req *models.UpdateDesignerRequest) { req.Holidays = []string{"15.09.2026"} },
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "break with equal start and end",
			mutate: func(req *models.UpdateDesignerRequest) {
				req.Breaks = []models.Break{{Start: "13:00", End: "13:00"}}
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "recurring break weekday out of range",
			mutate: func(req *models.UpdateDesignerRequest) {
				req.RecurringBreaks = []models.RecurringBreak{{Weekday: -1, Start: "10:00", End: "11:00"}}
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "special hours with malformed time",
			mutate: func(req *models.UpdateDesignerRequest) {
				req.SpecialHours = map[string]models.SpecialHours{"2026-09-20": {Start: "noon", End: "16:00"}}
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "zero daily max appointments",
			mutate:  func(req *models.UpdateDesignerRequest) { req.DailyMaxAppointments = ptr.Ptr(0) },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "negative daily max minutes",
			mutate:  func(req *models.UpdateDesignerRequest) { req.DailyMaxMinutes = ptr.Ptr(-30) },
			wantErr: ErrInvalidSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateRequest()
			tt.mutate(req)

			err := validateUpdateRequest(req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCreateBlockRequest(t *testing.T) {
	start := time.Date(2026, 9, 7, 14, 0, 0, 0, time.Local)

	valid := &models.CreateBlockRequest{
		DesignerID: "dsg-anna",
		StartAt:    start,
		EndAt:      start.Add(time.Hour),
		Reason:     ptr.Ptr("equipment maintenance"),
	}
	assert.NoError(t, validateCreateBlockRequest(valid))

	missingDesigner := *valid
	missingDesigner.DesignerID = ""
	assert.ErrorIs(t, validateCreateBlockRequest(&missingDesigner), ErrInvalidInput)

	inverted := *valid
	inverted.EndAt = start.Add(-time.Hour)
	assert.ErrorIs(t, validateCreateBlockRequest(&inverted), ErrInvalidInput)

	longReason := *valid
	longReason.Reason = ptr.Ptr(strings.Repeat("x", 600))
	assert.ErrorIs(t, validateCreateBlockRequest(&longReason), ErrInvalidInput)
}

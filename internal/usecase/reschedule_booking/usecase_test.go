package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	bookingRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/booking"
	designerRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/designer"
)

// 2026-09-07 - понедельник
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)

func at(hour, min int) time.Time {
	return time.Date(testDate.Year(), testDate.Month(), testDate.Day(), hour, min, 0, 0, testDate.Location())
}

type fakeDesignerRepo struct {
	designers map[string]*domain.Designer
}

func (f *fakeDesignerRepo) GetByID(_ context.Context, id string) (*domain.Designer, error) {
	d, ok := f.designers[id]
	if !ok {
		return nil, designerRepo.ErrDesignerNotFound
	}
	return d, nil
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	updated  map[int64][2]time.Time
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByDesignerAndDate(_ context.Context, designerID string, _ time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if b.DesignerID == designerID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateTimes(_ context.Context, id int64, startAt, endAt time.Time) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if f.updated == nil {
		f.updated = make(map[int64][2]time.Time)
	}
	f.updated[id] = [2]time.Time{startAt, endAt}
	b.StartAt, b.EndAt = startAt, endAt
	return nil
}

type fakeBlockRepo struct {
	blocks []*domain.Block
}

func (f *fakeBlockRepo) GetByDesignerAndDate(_ context.Context, _ string, _ time.Time) ([]*domain.Block, error) {
	return f.blocks, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	blocks   *fakeBlockRepo
	designer *domain.Designer
}

func newFixture(now time.Time) *fixture {
	designer := &domain.Designer{
		ID:   "dsg-anna",
		Name: "Anna",
		WorkHours: domain.WorkHours{
			Weekdays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
			Start:    "10:00",
			End:      "20:00",
		},
	}
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID:            1,
			DesignerID:    designer.ID,
			StartAt:       at(14, 0),
			EndAt:         at(15, 0),
			ServiceIDs:    []string{"svc-basic"},
			CustomerName:  "Kim Minji",
			CustomerPhone: "010-1234-5678",
			TotalPrice:    30000,
		},
	}}
	blocks := &fakeBlockRepo{}
	uc := NewUseCase(
		&fakeDesignerRepo{designers: map[string]*domain.Designer{designer.ID: designer}},
		bookings,
		blocks,
		fakeTxManager{},
		Policy{
			IntervalMinutes: domain.DefaultIntervalMinutes,
			BufferMinutes:   domain.DefaultBufferMinutes,
			MinLeadHours:    domain.DefaultMinLeadHours,
			MaxLeadDays:     domain.DefaultMaxLeadDays,
		},
		noopLogger{},
	).WithTimeProvider(&fixedTimeProvider{now: now})

	return &fixture{uc: uc, bookings: bookings, blocks: blocks, designer: designer}
}

// "Сейчас" за три дня до тестовой даты
func testNow() time.Time {
	return testDate.AddDate(0, 0, -3).Add(9 * time.Hour)
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(testNow())

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		CustomerPhone: "010-1234-5678",
		NewStartAt:    at(16, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, at(16, 0), resp.StartAt)
	// Длительность часа сохраняется
	assert.Equal(t, at(17, 0), resp.EndAt)
	require.Contains(t, f.bookings.updated, int64(1))
	assert.Equal(t, at(16, 0), f.bookings.updated[1][0])
}

func TestExecute_SameTimeSucceeds(t *testing.T) {
	f := newFixture(testNow())

	// Перенос на собственное текущее время: запись не конфликтует сама с собой
	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		CustomerPhone: "010-1234-5678",
		NewStartAt:    at(14, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, at(14, 0), resp.StartAt)
}

func TestExecute_PhoneMismatch(t *testing.T) {
	f := newFixture(testNow())

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		CustomerPhone: "010-0000-0000",
		NewStartAt:    at(16, 0),
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, f.bookings.updated)
}

func TestExecute_UnknownBooking(t *testing.T) {
	f := newFixture(testNow())

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     42,
		CustomerPhone: "010-1234-5678",
		NewStartAt:    at(16, 0),
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ConflictWithAnotherBooking(t *testing.T) {
	f := newFixture(testNow())
	f.bookings.bookings[2] = &domain.Booking{
		ID:            2,
		DesignerID:    f.designer.ID,
		StartAt:       at(16, 0),
		EndAt:         at(17, 0),
		CustomerPhone: "010-9999-9999",
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		CustomerPhone: "010-1234-5678",
		NewStartAt:    at(16, 30),
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ConflictWithBlock(t *testing.T) {
	f := newFixture(testNow())
	f.blocks.blocks = []*domain.Block{
		{ID: 1, DesignerID: f.designer.ID, StartAt: at(16, 0), EndAt: at(17, 0)},
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		CustomerPhone: "010-1234-5678",
		NewStartAt:    at(16, 0),
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_DailyLimitOnTargetDay(t *testing.T) {
	f := newFixture(testNow())
	max := 1
	f.designer.DailyMaxAppointments = &max

	// Вторник уже занят другой записью, лимит дня исчерпан
	f.bookings.bookings[2] = &domain.Booking{
		ID:            2,
		DesignerID:    f.designer.ID,
		StartAt:       at(10, 0).AddDate(0, 0, 1),
		EndAt:         at(11, 0).AddDate(0, 0, 1),
		CustomerPhone: "010-9999-9999",
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		CustomerPhone: "010-1234-5678",
		NewStartAt:    at(16, 0).AddDate(0, 0, 1),
	})

	assert.ErrorIs(t, err, ErrDailyLimitReached)
	assert.Empty(t, f.bookings.updated)
}

func TestExecute_SameDayMoveIgnoresOwnLimit(t *testing.T) {
	f := newFixture(testNow())
	max := 1
	f.designer.DailyMaxAppointments = &max

	// Перенос внутри своего дня: сама запись в лимит не засчитывается
	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		CustomerPhone: "010-1234-5678",
		NewStartAt:    at(16, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, at(16, 0), resp.StartAt)
	require.Contains(t, f.bookings.updated, int64(1))
}

func TestExecute_LeadTimeViolation(t *testing.T) {
	// "Сейчас" 15:00 того же дня: перенос на 16:00 нарушает двухчасовой лид-тайм
	f := newFixture(at(15, 0))

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		CustomerPhone: "010-1234-5678",
		NewStartAt:    at(16, 0),
	})

	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestExecute_OffGridNewStart(t *testing.T) {
	f := newFixture(testNow())

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		CustomerPhone: "010-1234-5678",
		NewStartAt:    at(16, 5),
	})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

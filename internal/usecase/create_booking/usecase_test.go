package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	designerRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/designer"
	serviceRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/serviceitem"
	"github.com/minari-lab/salon-booking-service/pkg/ptr"
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
	bookings []*domain.Booking
	nextID   int64
	created  []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = append(f.created, &created)
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetByDesignerAndDate(_ context.Context, _ string, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeBlockRepo struct {
	blocks []*domain.Block
}

func (f *fakeBlockRepo) GetByDesignerAndDate(_ context.Context, _ string, _ time.Time) ([]*domain.Block, error) {
	return f.blocks, nil
}

type fakeServiceRepo struct {
	services map[string]*domain.ServiceItem
}

func (f *fakeServiceRepo) GetByIDs(_ context.Context, ids []string) ([]*domain.ServiceItem, error) {
	result := make([]*domain.ServiceItem, 0, len(ids))
	for _, id := range ids {
		s, ok := f.services[id]
		if !ok {
			return nil, serviceRepo.ErrServiceNotFound
		}
		result = append(result, s)
	}
	return result, nil
}

// fakeTxManager прогоняет callback без настоящей транзакции
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
	bookings := &fakeBookingRepo{}
	blocks := &fakeBlockRepo{}
	uc := NewUseCase(
		&fakeDesignerRepo{designers: map[string]*domain.Designer{designer.ID: designer}},
		bookings,
		blocks,
		&fakeServiceRepo{services: map[string]*domain.ServiceItem{
			"svc-basic": {ID: "svc-basic", Name: "Basic care", DurationMinutes: 60, Price: 30000},
			"svc-art":   {ID: "svc-art", Name: "Nail art", DurationMinutes: 30, Price: 45000},
		}},
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

func validRequest() *Request {
	return &Request{
		DesignerID:    "dsg-anna",
		StartAt:       at(14, 0),
		ServiceIDs:    []string{"svc-basic", "svc-art"},
		CustomerName:  "Kim Minji",
		CustomerPhone: "010-1234-5678",
		AgreedTerms:   true,
		AgreedPrivacy: true,
		ReminderOptIn: true,
	}
}

// "Сейчас" за три дня до тестовой даты, лид-тайм не мешает
func testNow() time.Time {
	return testDate.AddDate(0, 0, -3).Add(9 * time.Hour)
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(testNow())

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, at(14, 0), resp.StartAt)
	// 60 + 30 минут услуг
	assert.Equal(t, at(15, 30), resp.EndAt)
	assert.Equal(t, int64(75000), resp.TotalPrice)
	require.Len(t, f.bookings.created, 1)
	assert.True(t, f.bookings.created[0].AgreedTerms)
}

func TestExecute_ConsentRequired(t *testing.T) {
	f := newFixture(testNow())

	req := validRequest()
	req.AgreedPrivacy = false

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrConsentRequired)
}

func TestExecute_InvalidPhone(t *testing.T) {
	f := newFixture(testNow())

	req := validRequest()
	req.CustomerPhone = "12-34"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnknownDesigner(t *testing.T) {
	f := newFixture(testNow())

	req := validRequest()
	req.DesignerID = "dsg-ghost"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDesignerNotFound)
}

func TestExecute_UnknownService(t *testing.T) {
	f := newFixture(testNow())

	req := validRequest()
	req.ServiceIDs = []string{"svc-missing"}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_OffGridStart(t *testing.T) {
	f := newFixture(testNow())

	req := validRequest()
	req.StartAt = at(14, 7)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_HolidayRejected(t *testing.T) {
	f := newFixture(testNow())
	f.designer.Holidays = []string{testDate.Format(domain.DateFormat)}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_DoesNotFitWorkingDay(t *testing.T) {
	f := newFixture(testNow())

	// 90 минут услуг + 10 буфера не помещаются до 20:00
	req := validRequest()
	req.StartAt = at(19, 0)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_PastAndLeadTime(t *testing.T) {
	// "Сейчас" в день записи, 13:00: запись на 14:00 нарушает двухчасовой лид-тайм
	f := newFixture(at(13, 0))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotInPast)

	// А запись за пределами 30 дней - слишком далеко
	f = newFixture(testNow())
	req := validRequest()
	// Тот же понедельник через пять недель, за горизонтом в 30 дней
	req.StartAt = at(14, 0).AddDate(0, 0, 35)
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTooFar)
}

func TestExecute_ConflictWithExistingBooking(t *testing.T) {
	f := newFixture(testNow())
	f.bookings.bookings = []*domain.Booking{
		{ID: 99, DesignerID: "dsg-anna", StartAt: at(14, 0), EndAt: at(15, 0)},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ConflictWithBufferedTail(t *testing.T) {
	f := newFixture(testNow())
	// Бронирование кончается в 14:00, но буфер тянется до 14:10
	f.bookings.bookings = []*domain.Booking{
		{ID: 99, DesignerID: "dsg-anna", StartAt: at(13, 0), EndAt: at(14, 0)},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Следующий слот сетки после буфера уже свободен
	req := validRequest()
	req.StartAt = at(14, 15)
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ConflictWithBlock(t *testing.T) {
	f := newFixture(testNow())
	f.blocks.blocks = []*domain.Block{
		{ID: 1, DesignerID: "dsg-anna", StartAt: at(15, 0), EndAt: at(16, 0)},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ConflictWithRecurringBreak(t *testing.T) {
	f := newFixture(testNow())
	f.designer.RecurringBreaks = []domain.RecurringBreak{
		{Weekday: time.Monday, Start: "14:00", End: "15:00"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_DailyLimitReached(t *testing.T) {
	f := newFixture(testNow())
	f.designer.DailyMaxAppointments = ptr.Ptr(1)
	f.bookings.bookings = []*domain.Booking{
		{ID: 99, DesignerID: "dsg-anna", StartAt: at(10, 0), EndAt: at(11, 0)},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestExecute_SpecialHoursAllowSunday(t *testing.T) {
	f := newFixture(testNow())
	sunday := testDate.AddDate(0, 0, -1)
	f.designer.SpecialHours = map[string]domain.SpecialHours{
		sunday.Format(domain.DateFormat): {Start: "12:00", End: "18:00"},
	}

	req := validRequest()
	req.StartAt = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 13, 0, 0, 0, sunday.Location())

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.StartAt, resp.StartAt)
}

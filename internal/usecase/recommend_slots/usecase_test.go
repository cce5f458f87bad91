package recommend_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	designerRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/designer"
	serviceRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/serviceitem"
)

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
	services []*domain.ServiceItem
}

func (f *fakeServiceRepo) GetByIDs(_ context.Context, ids []string) ([]*domain.ServiceItem, error) {
	byID := make(map[string]*domain.ServiceItem)
	for _, s := range f.services {
		byID[s.ID] = s
	}
	result := make([]*domain.ServiceItem, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			// фейк возвращает сентинел хранилища, как и настоящий репозиторий
			return nil, serviceRepo.ErrServiceNotFound
		}
		result = append(result, s)
	}
	return result, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testPolicy() Policy {
	return Policy{
		IntervalMinutes: domain.DefaultIntervalMinutes,
		BufferMinutes:   domain.DefaultBufferMinutes,
		MinLeadHours:    domain.DefaultMinLeadHours,
		MaxLeadDays:     domain.DefaultMaxLeadDays,
	}
}

func newTestUseCase(designers *fakeDesignerRepo, services *fakeServiceRepo, now time.Time) *UseCase {
	return NewUseCase(
		designers,
		&fakeBookingRepo{},
		&fakeBlockRepo{},
		services,
		testPolicy(),
		noopLogger{},
	).WithTimeProvider(&fixedTimeProvider{now: now})
}

func TestUseCase_Execute_ResolvesDurationFromCatalog(t *testing.T) {
	designer := testDesigner()
	designer.WorkHours.End = "12:00"
	uc := newTestUseCase(
		&fakeDesignerRepo{designers: map[string]*domain.Designer{designer.ID: designer}},
		&fakeServiceRepo{services: []*domain.ServiceItem{
			{ID: "svc-basic", Name: "Basic care", DurationMinutes: 40, Price: 30000},
			{ID: "svc-art", Name: "Nail art", DurationMinutes: 20, Price: 45000},
		}},
		farNow(testDate),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		DesignerID: designer.ID,
		Date:       testDate,
		ServiceIDs: []string{"svc-basic", "svc-art"},
	})

	require.NoError(t, err)
	assert.Equal(t, 60, resp.TotalDurationMinutes)
	// Те же четыре слота, что и при явной длительности 60
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, at(testDate, 10, 0), resp.Slots[0].StartAt)
}

func TestUseCase_Execute_UnknownDesignerReturnsEmptyDay(t *testing.T) {
	uc := newTestUseCase(
		&fakeDesignerRepo{designers: map[string]*domain.Designer{}},
		&fakeServiceRepo{},
		farNow(testDate),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		DesignerID:           "dsg-ghost",
		Date:                 testDate,
		TotalDurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, "dsg-ghost", resp.DesignerID)
}

func TestUseCase_Execute_UnknownServiceFails(t *testing.T) {
	designer := testDesigner()
	uc := newTestUseCase(
		&fakeDesignerRepo{designers: map[string]*domain.Designer{designer.ID: designer}},
		&fakeServiceRepo{},
		farNow(testDate),
	)

	_, err := uc.Execute(context.Background(), &Request{
		DesignerID: designer.ID,
		Date:       testDate,
		ServiceIDs: []string{"svc-missing"},
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeDesignerRepo{}, &fakeServiceRepo{}, farNow(testDate))

	cases := []struct {
		name string
		req  *Request
	}{
		{"empty designer", &Request{Date: testDate, TotalDurationMinutes: 60}},
		{"zero date", &Request{DesignerID: "dsg-anna", TotalDurationMinutes: 60}},
		{"no duration and no services", &Request{DesignerID: "dsg-anna", Date: testDate}},
		{"duration too long", &Request{DesignerID: "dsg-anna", Date: testDate, TotalDurationMinutes: 600}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_RequestOverridesPolicy(t *testing.T) {
	designer := testDesigner()
	designer.WorkHours.End = "12:00"
	uc := newTestUseCase(
		&fakeDesignerRepo{designers: map[string]*domain.Designer{designer.ID: designer}},
		&fakeServiceRepo{},
		farNow(testDate),
	)

	interval := 30
	buffer := 0
	resp, err := uc.Execute(context.Background(), &Request{
		DesignerID:           designer.ID,
		Date:                 testDate,
		TotalDurationMinutes: 60,
		IntervalMinutes:      &interval,
		BufferMinutes:        &buffer,
	})

	require.NoError(t, err)
	// Без буфера последний старт 11:00, шаг 30: слоты 10:00, 10:30, 11:00
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, at(testDate, 11, 0), resp.Slots[2].StartAt)
}

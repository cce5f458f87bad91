package designer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	"github.com/minari-lab/salon-booking-service/pkg/dbmetrics"
	"github.com/minari-lab/salon-booking-service/pkg/psqlbuilder"
)

var designerColumns = []string{
	"id",
	"name",
	"specialties",
	"work_hours",
	"holidays",
	"breaks",
	"recurring_breaks",
	"default_blocks",
	"special_hours",
	"daily_max_appointments",
	"daily_max_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурацией дизайнеров
//
// Структурированные под-записи (рабочие часы, перерывы, оверрайды) хранятся
// в JSONB-колонках, но на границе репозитория всегда десериализуются в
// типизированные доменные структуры и валидируются - дальше по стеку
// нетипизированный JSON не ходит
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория дизайнеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает дизайнера
func (r *Repository) Create(ctx context.Context, d *domain.Designer) (*domain.Designer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	fields, err := marshalScheduleFields(d)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("designers").
		Columns(
			"id",
			"name",
			"specialties",
			"work_hours",
			"holidays",
			"breaks",
			"recurring_breaks",
			"default_blocks",
			"special_hours",
			"daily_max_appointments",
			"daily_max_minutes",
		).
		Values(
			d.ID,
			d.Name,
			fields.specialties,
			fields.workHours,
			fields.holidays,
			fields.breaks,
			fields.recurringBreaks,
			fields.defaultBlocks,
			fields.specialHours,
			d.DailyMaxAppointments,
			d.DailyMaxMinutes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByID получает дизайнера по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Designer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(designerColumns...).
		From("designers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	d, err := scanDesigner(row)
	if err == sql.ErrNoRows {
		return nil, ErrDesignerNotFound
	}
	if err != nil {
		return nil, err
	}

	return d, nil
}

// List получает всех дизайнеров, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Designer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(designerColumns...).
		From("designers").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	designers := make([]*domain.Designer, 0)
	for rows.Next() {
		d, err := scanDesigner(rows)
		if err != nil {
			return nil, err
		}
		designers = append(designers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return designers, nil
}

// Update полностью обновляет конфигурацию расписания дизайнера
func (r *Repository) Update(ctx context.Context, d *domain.Designer) (*domain.Designer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	fields, err := marshalScheduleFields(d)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("designers").
		Set("name", d.Name).
		Set("specialties", fields.specialties).
		Set("work_hours", fields.workHours).
		Set("holidays", fields.holidays).
		Set("breaks", fields.breaks).
		Set("recurring_breaks", fields.recurringBreaks).
		Set("default_blocks", fields.defaultBlocks).
		Set("special_hours", fields.specialHours).
		Set("daily_max_appointments", d.DailyMaxAppointments).
		Set("daily_max_minutes", d.DailyMaxMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": d.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrDesignerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// scheduleFields сериализованные JSONB-поля расписания
type scheduleFields struct {
	specialties     []byte
	workHours       []byte
	holidays        []byte
	breaks          []byte
	recurringBreaks []byte
	defaultBlocks   []byte
	specialHours    []byte
}

func marshalScheduleFields(d *domain.Designer) (*scheduleFields, error) {
	var f scheduleFields
	var err error

	marshal := func(name string, v interface{}) []byte {
		if err != nil {
			return nil
		}
		var b []byte
		b, err = json.Marshal(v)
		if err != nil {
			err = fmt.Errorf("%w: failed to marshal %s: %v", ErrInvalidSchedule, name, err)
		}
		return b
	}

	f.specialties = marshal("specialties", emptyIfNilStrings(d.Specialties))
	f.workHours = marshal("work_hours", d.WorkHours)
	f.holidays = marshal("holidays", emptyIfNilStrings(d.Holidays))
	f.breaks = marshal("breaks", emptyIfNilBreaks(d.Breaks))
	f.recurringBreaks = marshal("recurring_breaks", emptyIfNilRecurring(d.RecurringBreaks))
	f.defaultBlocks = marshal("default_blocks", emptyIfNilDefaultBlocks(d.DefaultBlocks))
	f.specialHours = marshal("special_hours", emptyIfNilSpecialHours(d.SpecialHours))

	if err != nil {
		return nil, err
	}
	return &f, nil
}

func emptyIfNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyIfNilBreaks(s []domain.Break) []domain.Break {
	if s == nil {
		return []domain.Break{}
	}
	return s
}

func emptyIfNilRecurring(s []domain.RecurringBreak) []domain.RecurringBreak {
	if s == nil {
		return []domain.RecurringBreak{}
	}
	return s
}

func emptyIfNilDefaultBlocks(s []domain.DefaultBlock) []domain.DefaultBlock {
	if s == nil {
		return []domain.DefaultBlock{}
	}
	return s
}

func emptyIfNilSpecialHours(m map[string]domain.SpecialHours) map[string]domain.SpecialHours {
	if m == nil {
		return map[string]domain.SpecialHours{}
	}
	return m
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDesigner(row rowScanner) (*domain.Designer, error) {
	var d domain.Designer
	var specialties, workHours, holidays, breaks, recurringBreaks, defaultBlocks, specialHours []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.Name,
		&specialties,
		&workHours,
		&holidays,
		&breaks,
		&recurringBreaks,
		&defaultBlocks,
		&specialHours,
		&d.DailyMaxAppointments,
		&d.DailyMaxMinutes,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanDesigner - scan row: %v", ErrScanRow, err)
	}

	if err := unmarshalField(specialties, &d.Specialties, "specialties"); err != nil {
		return nil, err
	}
	if err := unmarshalField(workHours, &d.WorkHours, "work_hours"); err != nil {
		return nil, err
	}
	if err := unmarshalField(holidays, &d.Holidays, "holidays"); err != nil {
		return nil, err
	}
	if err := unmarshalField(breaks, &d.Breaks, "breaks"); err != nil {
		return nil, err
	}
	if err := unmarshalField(recurringBreaks, &d.RecurringBreaks, "recurring_breaks"); err != nil {
		return nil, err
	}
	if err := unmarshalField(defaultBlocks, &d.DefaultBlocks, "default_blocks"); err != nil {
		return nil, err
	}
	if err := unmarshalField(specialHours, &d.SpecialHours, "special_hours"); err != nil {
		return nil, err
	}

	if err := validateSchedule(&d); err != nil {
		return nil, err
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

func unmarshalField(data []byte, dst interface{}, name string) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: failed to unmarshal %s: %v", ErrInvalidSchedule, name, err)
	}
	return nil
}

// validateSchedule проверяет корректность времён в расписании после десериализации
// Битая конфигурация не должна попадать в движок подбора слотов
func validateSchedule(d *domain.Designer) error {
	if err := d.WorkHours.Start.Validate(); err != nil {
		return fmt.Errorf("%w: work_hours.start: %v", ErrInvalidSchedule, err)
	}
	if err := d.WorkHours.End.Validate(); err != nil {
		return fmt.Errorf("%w: work_hours.end: %v", ErrInvalidSchedule, err)
	}

	for _, h := range d.Holidays {
		if _, err := time.Parse(domain.DateFormat, h); err != nil {
			return fmt.Errorf("%w: holiday %q: %v", ErrInvalidSchedule, h, err)
		}
	}

	for _, br := range d.Breaks {
		if err := br.Start.Validate(); err != nil {
			return fmt.Errorf("%w: break start: %v", ErrInvalidSchedule, err)
		}
		if err := br.End.Validate(); err != nil {
			return fmt.Errorf("%w: break end: %v", ErrInvalidSchedule, err)
		}
	}

	for _, rb := range d.RecurringBreaks {
		if err := rb.Start.Validate(); err != nil {
			return fmt.Errorf("%w: recurring break start: %v", ErrInvalidSchedule, err)
		}
		if err := rb.End.Validate(); err != nil {
			return fmt.Errorf("%w: recurring break end: %v", ErrInvalidSchedule, err)
		}
	}

	for _, db := range d.DefaultBlocks {
		if _, err := time.Parse(domain.DateFormat, db.Date); err != nil {
			return fmt.Errorf("%w: default block date %q: %v", ErrInvalidSchedule, db.Date, err)
		}
		if err := db.Start.Validate(); err != nil {
			return fmt.Errorf("%w: default block start: %v", ErrInvalidSchedule, err)
		}
		if err := db.End.Validate(); err != nil {
			return fmt.Errorf("%w: default block end: %v", ErrInvalidSchedule, err)
		}
	}

	for date, sh := range d.SpecialHours {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: special hours date %q: %v", ErrInvalidSchedule, date, err)
		}
		if err := sh.Start.Validate(); err != nil {
			return fmt.Errorf("%w: special hours start: %v", ErrInvalidSchedule, err)
		}
		if err := sh.End.Validate(); err != nil {
			return fmt.Errorf("%w: special hours end: %v", ErrInvalidSchedule, err)
		}
	}

	return nil
}

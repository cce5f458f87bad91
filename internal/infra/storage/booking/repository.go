package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	"github.com/minari-lab/salon-booking-service/pkg/dbmetrics"
	"github.com/minari-lab/salon-booking-service/pkg/psqlbuilder"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

var bookingColumns = []string{
	"id",
	"designer_id",
	"start_at",
	"end_at",
	"service_ids",
	"customer_name",
	"customer_phone",
	"agreed_terms",
	"agreed_privacy",
	"reminder_opt_in",
	"total_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её -
// guard подтверждения всегда вызывает Create внутри сериализуемой транзакции,
// чтобы запись была атомарна с повторной проверкой доступности слота
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"designer_id",
			"start_at",
			"end_at",
			"service_ids",
			"customer_name",
			"customer_phone",
			"agreed_terms",
			"agreed_privacy",
			"reminder_opt_in",
			"total_price",
		).
		Values(
			b.DesignerID,
			b.StartAt,
			b.EndAt,
			pq.Array(b.ServiceIDs),
			b.CustomerName,
			b.CustomerPhone,
			b.AgreedTerms,
			b.AgreedPrivacy,
			b.ReminderOptIn,
			b.TotalPrice,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByDesignerAndDate получает все бронирования дизайнера на календарный день,
// отсортированные по времени начала
//
// Если вызов происходит внутри транзакции, строки блокируются (FOR UPDATE) -
// это основа защиты от двойного бронирования: два конкурентных подтверждения
// на один день сериализуются на этой выборке
func (r *Repository) GetByDesignerAndDate(ctx context.Context, designerID string, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := timeutil.DateOnly(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"designer_id": designerID}).
		Where(squirrel.GtOrEq{"start_at": dayStart}).
		Where(squirrel.Lt{"start_at": dayEnd}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDesignerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDesignerAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByDesignerAndRange получает бронирования дизайнера за период [from, to)
// Используется для месячного обзора календаря
func (r *Repository) GetByDesignerAndRange(ctx context.Context, designerID string, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"designer_id": designerID}).
		Where(squirrel.GtOrEq{"start_at": from}).
		Where(squirrel.Lt{"start_at": to}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDesignerAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDesignerAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByCustomerPhone получает все бронирования клиента по номеру телефона,
// отсортированные от новых к старым
func (r *Repository) GetByCustomerPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_phone": phone}).
		OrderBy("start_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateTimes изменяет время начала и конца бронирования (перенос)
// Идентичность бронирования сохраняется, меняются только start_at/end_at
func (r *Repository) UpdateTimes(ctx context.Context, id int64, startAt, endAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_at", startAt).
		Set("end_at", endAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование (отмена клиентом)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var serviceIDs pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.DesignerID,
		&b.StartAt,
		&b.EndAt,
		&serviceIDs,
		&b.CustomerName,
		&b.CustomerPhone,
		&b.AgreedTerms,
		&b.AgreedPrivacy,
		&b.ReminderOptIn,
		&b.TotalPrice,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.ServiceIDs = []string(serviceIDs)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

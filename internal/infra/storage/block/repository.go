package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	"github.com/minari-lab/salon-booking-service/pkg/dbmetrics"
	"github.com/minari-lab/salon-booking-service/pkg/psqlbuilder"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

var blockColumns = []string{
	"id",
	"designer_id",
	"start_at",
	"end_at",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с ручными блокировками времени
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, b *domain.Block) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocks").
		Columns(
			"designer_id",
			"start_at",
			"end_at",
			"reason",
		).
		Values(
			b.DesignerID,
			b.StartAt,
			b.EndAt,
			b.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByDesignerAndDate получает блокировки дизайнера на календарный день
func (r *Repository) GetByDesignerAndDate(ctx context.Context, designerID string, date time.Time) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := timeutil.DateOnly(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		Where(squirrel.Eq{"designer_id": designerID}).
		Where(squirrel.GtOrEq{"start_at": dayStart}).
		Where(squirrel.Lt{"start_at": dayEnd}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDesignerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDesignerAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// GetByDesignerAndRange получает блокировки дизайнера за период [from, to)
func (r *Repository) GetByDesignerAndRange(ctx context.Context, designerID string, from, to time.Time) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
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

	return scanBlocks(rows)
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocks").
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
		return ErrBlockNotFound
	}

	return nil
}

// scanBlocks сканирует результаты запроса в слайс блокировок
func scanBlocks(rows *sql.Rows) ([]*domain.Block, error) {
	blocks := make([]*domain.Block, 0)

	for rows.Next() {
		var b domain.Block
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.DesignerID,
			&b.StartAt,
			&b.EndAt,
			&b.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

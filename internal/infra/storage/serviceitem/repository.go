package serviceitem

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	"github.com/minari-lab/salon-booking-service/pkg/dbmetrics"
	"github.com/minari-lab/salon-booking-service/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"category",
	"duration_minutes",
	"price",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все услуги каталога
func (r *Repository) List(ctx context.Context) ([]*domain.ServiceItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("category ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// GetByIDs получает услуги по списку идентификаторов
// Если хотя бы одна услуга не найдена, возвращает ErrServiceNotFound
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]*domain.ServiceItem, error) {
	if len(ids) == 0 {
		return []*domain.ServiceItem{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Expr("id = ANY(?)", pq.Array(ids))).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services, err := scanServices(rows)
	if err != nil {
		return nil, err
	}

	// Каждый запрошенный ID должен существовать в каталоге
	found := make(map[string]bool, len(services))
	for _, svc := range services {
		found[svc.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, id)
		}
	}

	return services, nil
}

func scanServices(rows *sql.Rows) ([]*domain.ServiceItem, error) {
	services := make([]*domain.ServiceItem, 0)

	for rows.Next() {
		var s domain.ServiceItem
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Category,
			&s.DurationMinutes,
			&s.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

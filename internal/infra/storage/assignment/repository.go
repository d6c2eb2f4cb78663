package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	"github.com/m04kA/SMC-AdsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdsService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const pqUniqueViolation = "23505"

// Repository репозиторий строк занятости слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятости
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// OccupantsForSlotDate возвращает объявления, занимающие слот на дату,
// вместе с категорией и клиентом — этого достаточно и для проверки
// вместимости, и для проверки категорийного конфликта.
// Внутри транзакции строки блокируются (FOR UPDATE OF sa), чтобы
// параллельное одобрение в тот же слот/дату дождалось коммита.
func (r *Repository) OccupantsForSlotDate(ctx context.Context, slotID int64, date time.Time) ([]domain.SlotOccupant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("sa.advert_id", "a.category", "a.client_name").
		From("slot_assignments sa").
		Join("adverts a ON a.id = sa.advert_id").
		Where(squirrel.Eq{"sa.slot_id": slotID}).
		Where(squirrel.Eq{"sa.assign_date": domain.DateOnly(date)}).
		OrderBy("sa.advert_id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF sa")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: OccupantsForSlotDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OccupantsForSlotDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	occupants := make([]domain.SlotOccupant, 0, domain.SlotCapacity)
	for rows.Next() {
		var occ domain.SlotOccupant
		if err := rows.Scan(&occ.AdvertID, &occ.Category, &occ.ClientName); err != nil {
			return nil, fmt.Errorf("%w: OccupantsForSlotDate - scan row: %v", ErrScanRow, err)
		}
		occupants = append(occupants, occ)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: OccupantsForSlotDate - rows error: %v", ErrScanRow, err)
	}

	return occupants, nil
}

// BulkInsert вставляет по одной строке занятости на каждую дату.
// Нарушение уникального индекса (slot_id, assign_date, advert_id)
// возвращается как ErrDuplicateAssignment — это страховка от гонки
// двух одновременных одобрений.
func (r *Repository) BulkInsert(ctx context.Context, advertID, slotID int64, dates []time.Time) error {
	return r.bulkInsert(ctx, advertID, slotID, dates, false)
}

// BulkInsertIdempotent вставляет строки занятости с ON CONFLICT DO NOTHING.
// Используется при продлении: повтор запроса после частичного сбоя
// не создает дубликатов и не возвращает ошибку.
func (r *Repository) BulkInsertIdempotent(ctx context.Context, advertID, slotID int64, dates []time.Time) error {
	return r.bulkInsert(ctx, advertID, slotID, dates, true)
}

func (r *Repository) bulkInsert(ctx context.Context, advertID, slotID int64, dates []time.Time, idempotent bool) error {
	if len(dates) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("slot_assignments").
		Columns("advert_id", "slot_id", "assign_date")

	for _, date := range dates {
		insertBuilder = insertBuilder.Values(advertID, slotID, domain.DateOnly(date))
	}

	if idempotent {
		insertBuilder = insertBuilder.Suffix("ON CONFLICT (slot_id, assign_date, advert_id) DO NOTHING")
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: bulkInsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return ErrDuplicateAssignment
		}
		return fmt.Errorf("%w: bulkInsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByAdvert удаляет все строки занятости объявления.
// Используется при физическом удалении объявления.
func (r *Repository) DeleteByAdvert(ctx context.Context, advertID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_assignments").
		Where(squirrel.Eq{"advert_id": advertID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByAdvert - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByAdvert - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByAdvert - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// DeleteBefore удаляет строки занятости с датой строго раньше cutoff.
// Вызывается чистящим проходом lifecycle sweep.
func (r *Repository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_assignments").
		Where(squirrel.Lt{"assign_date": domain.DateOnly(cutoff)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

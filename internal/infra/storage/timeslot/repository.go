package timeslot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	"github.com/m04kA/SMC-AdsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdsService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AdsService/pkg/types"
)

// Repository репозиторий временных слотов.
// Набор слотов — статический справочник, засеваемый один раз при старте.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все слоты, упорядоченные по времени суток
func (r *Repository) List(ctx context.Context) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "start_time", "label", "created_at").
		From("time_slots").
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		var createdAt sql.NullTime

		if err := rows.Scan(&slot.ID, &slot.StartTime, &slot.Label, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan slot: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "start_time", "label", "created_at").
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.TimeSlot
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.StartTime, &slot.Label, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time

	return &slot, nil
}

// Seed идемпотентно засевает почасовые слоты 06:00–20:00.
// Повторный запуск ничего не меняет (ON CONFLICT DO NOTHING по start_time).
func (r *Repository) Seed(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("time_slots").
		Columns("start_time", "label")

	for hour := domain.SeedSlotFirstHour; hour <= domain.SeedSlotLastHour; hour++ {
		startTime := types.TimeString(fmt.Sprintf("%02d:00", hour))
		insertBuilder = insertBuilder.Values(startTime, slotLabel(hour))
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (start_time) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Seed - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// slotLabel формирует отображаемую подпись слота вида "09:00 AM"
func slotLabel(hour int) string {
	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:00 %s", display, suffix)
}

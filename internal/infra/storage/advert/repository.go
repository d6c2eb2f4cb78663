package advert

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	"github.com/m04kA/SMC-AdsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdsService/pkg/psqlbuilder"
)

// advertColumns полный набор колонок таблицы adverts в порядке сканирования
var advertColumns = []string{
	"id",
	"client_name",
	"category",
	"caption",
	"media_ref",
	"amount_paid",
	"payment_method",
	"days_paid",
	"payment_date",
	"start_date",
	"end_date",
	"slot_id",
	"remaining_days",
	"status",
	"created_by",
	"approved_by",
	"approved_at",
	"decline_reason",
	"decline_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с объявлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое объявление в статусе pending.
// Слот, end_date и remaining_days на этом этапе всегда NULL —
// они заполняются только при одобрении.
func (r *Repository) Create(ctx context.Context, advert *domain.Advert) (*domain.Advert, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("adverts").
		Columns(
			"client_name",
			"category",
			"caption",
			"media_ref",
			"amount_paid",
			"payment_method",
			"days_paid",
			"payment_date",
			"start_date",
			"status",
			"created_by",
		).
		Values(
			advert.ClientName,
			advert.Category,
			advert.Caption,
			advert.MediaRef,
			advert.AmountPaid,
			advert.PaymentMethod,
			advert.DaysPaid,
			advert.PaymentDate,
			advert.StartDate,
			advert.Status,
			advert.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&advert.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	advert.CreatedAt = createdAt.Time
	advert.UpdatedAt = updatedAt.Time

	return advert, nil
}

// GetByID получает объявление по ID.
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы два
// параллельных одобрения одного объявления не прошли одновременно.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Advert, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(advertColumns...).
		From("adverts").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	advert, err := scanAdvert(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAdvertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan advert: %v", ErrScanRow, err)
	}

	return advert, nil
}

// List получает список объявлений с гибкой фильтрацией.
// Все фильтры опциональны и собираются параметризованным builder'ом.
func (r *Repository) List(ctx context.Context, filter domain.AdvertFilter) ([]*domain.Advert, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(advertColumns...).
		From("adverts").
		OrderBy("start_date DESC, id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.ClientName != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_name": *filter.ClientName})
	}
	if filter.CreatedBy != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"created_by": *filter.CreatedBy})
	}
	if filter.SlotID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_id": *filter.SlotID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAdverts(rows)
}

// ListActive получает все активные объявления для lifecycle sweep,
// упорядоченные по ID для детерминированного прохода
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Advert, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(advertColumns...).
		From("adverts").
		Where(squirrel.Eq{"status": domain.StatusActive}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAdverts(rows)
}

// Activate переводит объявление в active при одобрении:
// назначает слот, одобрившего администратора и производные поля расписания.
// Все поля меняются одним UPDATE — частичная активация невозможна.
// approvedAt передается вызывающим, чтобы сохраненное время совпадало
// с временем в ответе.
func (r *Repository) Activate(ctx context.Context, id, slotID, approvedBy int64, approvedAt time.Time, endDate time.Time, remainingDays int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("adverts").
		Set("status", domain.StatusActive).
		Set("slot_id", slotID).
		Set("approved_by", approvedBy).
		Set("approved_at", approvedAt).
		Set("end_date", endDate).
		Set("remaining_days", remainingDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Activate - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Activate")
}

// ApplyExtension применяет продление: новые days_paid, end_date,
// remaining_days, amount_paid и статус. Статус задает вызывающий:
// продление оживляет истекшее объявление, только если новое окно
// еще не исчерпано.
func (r *Repository) ApplyExtension(ctx context.Context, id int64, daysPaid int, endDate time.Time, remainingDays int, amountPaid float64, status domain.AdvertStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("adverts").
		Set("days_paid", daysPaid).
		Set("end_date", endDate).
		Set("remaining_days", remainingDays).
		Set("amount_paid", amountPaid).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ApplyExtension - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "ApplyExtension")
}

// UpdateLifecycle записывает пересчитанный remaining_days и статус.
// Счетчик и статус меняются одним UPDATE: объявление никогда не
// наблюдается с remaining_days=0 и статусом active.
func (r *Repository) UpdateLifecycle(ctx context.Context, id int64, remainingDays int, status domain.AdvertStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("adverts").
		Set("remaining_days", remainingDays).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateLifecycle - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateLifecycle")
}

// Decline отклоняет объявление с указанием причины
func (r *Repository) Decline(ctx context.Context, id int64, reason string, notes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("adverts").
		Set("status", domain.StatusCancelled).
		Set("decline_reason", reason).
		Set("decline_notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Decline - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Decline")
}

// Delete удаляет объявление физически.
// Строки slot_assignments удаляются каскадом на уровне БД.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("adverts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

// execExpectingRow выполняет запрос и возвращает ErrAdvertNotFound,
// если ни одна строка не была затронута
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAdvertNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAdvert сканирует одну строку в domain модель
func scanAdvert(row rowScanner) (*domain.Advert, error) {
	var advert domain.Advert
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&advert.ID,
		&advert.ClientName,
		&advert.Category,
		&advert.Caption,
		&advert.MediaRef,
		&advert.AmountPaid,
		&advert.PaymentMethod,
		&advert.DaysPaid,
		&advert.PaymentDate,
		&advert.StartDate,
		&advert.EndDate,
		&advert.SlotID,
		&advert.RemainingDays,
		&advert.Status,
		&advert.CreatedBy,
		&advert.ApprovedBy,
		&advert.ApprovedAt,
		&advert.DeclineReason,
		&advert.DeclineNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	advert.CreatedAt = createdAt.Time
	advert.UpdatedAt = updatedAt.Time

	return &advert, nil
}

// scanAdverts сканирует результаты запроса в слайс объявлений
func scanAdverts(rows *sql.Rows) ([]*domain.Advert, error) {
	adverts := make([]*domain.Advert, 0)

	for rows.Next() {
		advert, err := scanAdvert(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAdverts - scan row: %v", ErrScanRow, err)
		}
		adverts = append(adverts, advert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAdverts - rows error: %v", ErrScanRow, err)
	}

	return adverts, nil
}

package extend_advert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	advertRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/advert"
)

// UseCase use case продления объявления.
// Окно продления — ровно AdditionalDays календарных дат сразу после
// текущего end_date (только непрерывное продление). Доступность
// перепроверяется только для новых дат; продление оживляет истекшее
// объявление (expired → active), если новое окно еще не исчерпано.
type UseCase struct {
	advertRepo     AdvertRepository
	assignmentRepo AssignmentRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	advertRepo AdvertRepository,
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		advertRepo:     advertRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case продления объявления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExtendAdvert: advert=%d, additionalDays=%d, extraAmount=%.2f",
		req.AdvertID, req.AdditionalDays, req.ExtraAmountPaid)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExtendAdvert: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *Response

	// 2. Проверка и запись — в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем объявление с блокировкой строки
		advert, err := uc.advertRepo.GetByID(txCtx, req.AdvertID)
		if err != nil {
			if errors.Is(err, advertRepo.ErrAdvertNotFound) {
				uc.logger.Warn("ExtendAdvert: advert id=%d not found", req.AdvertID)
				return ErrAdvertNotFound
			}
			uc.logger.Error("ExtendAdvert: failed to get advert id=%d: %v", req.AdvertID, err)
			return fmt.Errorf("%w: failed to get advert: %v", ErrInternal, err)
		}

		// 2.2. Продлить можно только объявление, которое было одобрено
		// хотя бы раз (назначен слот и end_date)
		if !advert.WasApproved() || advert.EndDate == nil {
			uc.logger.Warn("ExtendAdvert: advert id=%d was never approved, status=%s",
				advert.ID, advert.Status)
			return ErrNotApproved
		}

		slotID := *advert.SlotID

		// 2.3. Окно продления: даты сразу после текущего end_date,
		// без зазоров и без повторной проверки уже занятых исторических дат
		newDates := extensionWindow(*advert.EndDate, req.AdditionalDays)

		// 2.4. Проверяем доступность только новых дат, исключая
		// собственные строки объявления
		for _, date := range newDates {
			occupants, err := uc.assignmentRepo.OccupantsForSlotDate(txCtx, slotID, date)
			if err != nil {
				uc.logger.Error("ExtendAdvert: failed to get occupants for slot=%d date=%s: %v",
					slotID, date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to get slot occupants: %v", ErrInternal, err)
			}

			if conflict := evaluateDate(occupants, advert.Category, date, &advert.ID); conflict != nil {
				uc.logger.Warn("ExtendAdvert: conflict for advert=%d slot=%d: %s",
					advert.ID, slotID, conflict.Detail())
				return &ConflictError{Conflict: *conflict}
			}
		}

		// 2.5. Пересчитываем производные поля
		newDaysPaid := advert.DaysPaid + req.AdditionalDays
		newEndDate := domain.EndDateFor(advert.StartDate, newDaysPaid)
		newRemainingDays := domain.RemainingDays(newEndDate, now)
		newAmountPaid := advert.AmountPaid + req.ExtraAmountPaid

		// Окно могло целиком уйти в прошлое: тогда объявление остается
		// истекшим, оживление происходит только при remaining > 0
		newStatus := domain.StatusActive
		if newRemainingDays == 0 {
			newStatus = domain.StatusExpired
		}

		if err := uc.advertRepo.ApplyExtension(txCtx, advert.ID, newDaysPaid, newEndDate, newRemainingDays, newAmountPaid, newStatus); err != nil {
			uc.logger.Error("ExtendAdvert: failed to apply extension for advert id=%d: %v", advert.ID, err)
			return fmt.Errorf("%w: failed to apply extension: %v", ErrInternal, err)
		}

		// 2.6. Вставляем строки занятости идемпотентно: повтор после
		// частичного сбоя не создает дубликатов и не падает
		if err := uc.assignmentRepo.BulkInsertIdempotent(txCtx, advert.ID, slotID, newDates); err != nil {
			uc.logger.Error("ExtendAdvert: failed to insert assignments for advert id=%d: %v", advert.ID, err)
			return fmt.Errorf("%w: failed to insert assignments: %v", ErrInternal, err)
		}

		if advert.IsExpired() && newStatus == domain.StatusActive {
			uc.logger.Info("ExtendAdvert: advert id=%d revived from expired", advert.ID)
		}

		result = &Response{
			ID:               advert.ID,
			Status:           string(newStatus),
			NewEndDate:       newEndDate,
			NewDaysPaid:      newDaysPaid,
			NewRemainingDays: newRemainingDays,
			AmountPaid:       newAmountPaid,
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ExtendAdvert: advert id=%d extended to %s, remaining=%d",
		result.ID, result.NewEndDate.Format(domain.DateFormat), result.NewRemainingDays)

	return result, nil
}

// extensionWindow возвращает additionalDays дат, непосредственно
// следующих за текущим end_date
func extensionWindow(currentEnd time.Time, additionalDays int) []time.Time {
	firstNewDate := domain.DateOnly(currentEnd).AddDate(0, 0, 1)
	return domain.CoveredDates(firstNewDate, additionalDays)
}

// evaluateDate проверяет одну дату окна продления.
// Та же двухступенчатая проверка, что и при одобрении: вместимость,
// затем категория, не больше одного конфликта на дату.
func evaluateDate(
	occupants []domain.SlotOccupant,
	category domain.Category,
	date time.Time,
	excludeAdvertID *int64,
) *domain.Conflict {
	relevant := make([]domain.SlotOccupant, 0, len(occupants))
	for _, occ := range occupants {
		if excludeAdvertID != nil && occ.AdvertID == *excludeAdvertID {
			continue
		}
		relevant = append(relevant, occ)
	}

	if len(relevant) >= domain.SlotCapacity {
		return &domain.Conflict{
			Date: domain.DateOnly(date),
			Kind: domain.ConflictCapacity,
		}
	}

	for _, occ := range relevant {
		if occ.Category == category {
			return &domain.Conflict{
				Date:              domain.DateOnly(date),
				Kind:              domain.ConflictCategory,
				ConflictingClient: occ.ClientName,
			}
		}
	}

	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AdvertID <= 0 {
		return fmt.Errorf("%w: advertID must be positive", ErrInvalidInput)
	}
	if req.AdditionalDays <= 0 {
		return fmt.Errorf("%w: additionalDays must be positive", ErrInvalidInput)
	}
	if req.ExtraAmountPaid < 0 {
		return fmt.Errorf("%w: extraAmountPaid must not be negative", ErrInvalidInput)
	}
	return nil
}

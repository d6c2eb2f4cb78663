package approve_advert

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	advertRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/advert"
	assignmentRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/assignment"
	timeslotRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-AdsService/internal/integrations/billingservice"
	"github.com/m04kA/SMC-AdsService/internal/integrations/notifyservice"
)

// UseCase use case одобрения объявления (pending → active).
// Выполняет авторитетную проверку доступности и резервирование
// в одной сериализуемой транзакции: гонку двух одновременных
// одобрений в один слот/дату останавливает либо повторная проверка,
// либо уникальный индекс (slot, date, advert) на вставке.
type UseCase struct {
	advertRepo     AdvertRepository
	slotRepo       SlotRepository
	assignmentRepo AssignmentRepository
	billingClient  BillingServiceClient
	notifyClient   NotifyServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	advertRepo AdvertRepository,
	slotRepo SlotRepository,
	assignmentRepo AssignmentRepository,
	billingClient BillingServiceClient,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		advertRepo:     advertRepo,
		slotRepo:       slotRepo,
		assignmentRepo: assignmentRepo,
		billingClient:  billingClient,
		notifyClient:   notifyClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case одобрения объявления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveAdvert: advert=%d, slot=%d, approver=%d",
		req.AdvertID, req.SlotID, req.ApproverID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApproveAdvert: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *Response
	var notification *notifyservice.Notification

	// 2. Все операции с БД и счетом — в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем объявление с блокировкой строки
		advert, err := uc.advertRepo.GetByID(txCtx, req.AdvertID)
		if err != nil {
			if errors.Is(err, advertRepo.ErrAdvertNotFound) {
				uc.logger.Warn("ApproveAdvert: advert id=%d not found", req.AdvertID)
				return ErrAdvertNotFound
			}
			uc.logger.Error("ApproveAdvert: failed to get advert id=%d: %v", req.AdvertID, err)
			return fmt.Errorf("%w: failed to get advert: %v", ErrInternal, err)
		}

		// 2.2. Одобрить можно только pending объявление
		if !advert.IsPending() {
			uc.logger.Warn("ApproveAdvert: advert id=%d is not pending, status=%s",
				advert.ID, advert.Status)
			return ErrNotPending
		}

		// 2.3. Проверяем существование слота
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
				uc.logger.Warn("ApproveAdvert: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("ApproveAdvert: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 2.4. Авторитетная проверка доступности: день за днем,
		// остановка на первой конфликтной дате
		dates := domain.CoveredDates(advert.StartDate, advert.DaysPaid)
		for _, date := range dates {
			occupants, err := uc.assignmentRepo.OccupantsForSlotDate(txCtx, slot.ID, date)
			if err != nil {
				uc.logger.Error("ApproveAdvert: failed to get occupants for slot=%d date=%s: %v",
					slot.ID, date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to get slot occupants: %v", ErrInternal, err)
			}

			if conflict := evaluateDate(occupants, advert.Category, date, nil); conflict != nil {
				uc.logger.Warn("ApproveAdvert: conflict for advert=%d slot=%d: %s",
					advert.ID, slot.ID, conflict.Detail())
				return &ConflictError{Conflict: *conflict}
			}
		}

		// 2.5. Активируем объявление: слот, производные поля расписания
		endDate := domain.EndDateFor(advert.StartDate, advert.DaysPaid)
		remainingDays := advert.DaysPaid

		if err := uc.advertRepo.Activate(txCtx, advert.ID, slot.ID, req.ApproverID, now, endDate, remainingDays); err != nil {
			uc.logger.Error("ApproveAdvert: failed to activate advert id=%d: %v", advert.ID, err)
			return fmt.Errorf("%w: failed to activate advert: %v", ErrInternal, err)
		}

		// 2.6. Материализуем строки занятости — по одной на каждую дату окна.
		// Дубликат здесь означает проигранную гонку одобрений.
		if err := uc.assignmentRepo.BulkInsert(txCtx, advert.ID, slot.ID, dates); err != nil {
			if errors.Is(err, assignmentRepo.ErrDuplicateAssignment) {
				uc.logger.Warn("ApproveAdvert: concurrent reservation detected for advert=%d slot=%d",
					advert.ID, slot.ID)
				return &ConflictError{Conflict: domain.Conflict{
					Date: domain.DateOnly(advert.StartDate),
					Kind: domain.ConflictCapacity,
				}}
			}
			uc.logger.Error("ApproveAdvert: failed to insert assignments for advert=%d: %v", advert.ID, err)
			return fmt.Errorf("%w: failed to insert assignments: %v", ErrInternal, err)
		}

		// 2.7. Счет на комиссию создается до коммита: сбой биллинга
		// откатывает резервирование целиком
		commission := advert.AmountPaid * domain.CommissionRate
		invoiceID, err := uc.billingClient.CreateInvoice(txCtx, &billingservice.CreateInvoiceRequest{
			AdvertID:         advert.ID,
			ClientName:       advert.ClientName,
			Amount:           advert.AmountPaid,
			CommissionAmount: commission,
			SalesRepID:       advert.CreatedBy,
			ApproverID:       req.ApproverID,
		})
		if err != nil {
			uc.logger.Error("ApproveAdvert: failed to create invoice for advert=%d: %v", advert.ID, err)
			return fmt.Errorf("%w: failed to create invoice: %v", ErrInternal, err)
		}

		result = &Response{
			ID:            advert.ID,
			ClientName:    advert.ClientName,
			Category:      advert.Category,
			Status:        string(domain.StatusActive),
			SlotID:        slot.ID,
			StartDate:     domain.DateOnly(advert.StartDate),
			EndDate:       endDate,
			DaysPaid:      advert.DaysPaid,
			RemainingDays: remainingDays,
			AmountPaid:    advert.AmountPaid,
			ApprovedBy:    req.ApproverID,
			ApprovedAt:    now,
			InvoiceID:     invoiceID,
		}

		notification = &notifyservice.Notification{
			UserID:   advert.CreatedBy,
			Title:    "Advert approved",
			Message:  fmt.Sprintf("Advert %q was approved and scheduled into slot %s", advert.Caption, slot.Label),
			Severity: notifyservice.SeverityInfo,
			AdvertID: &advert.ID,
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. Уведомление — после коммита, fire-and-forget:
	// сбой доставки не откатывает резервирование
	uc.notifyClient.NotifyBestEffort(ctx, notification)

	uc.logger.Info("ApproveAdvert: advert id=%d approved into slot=%d, invoice=%d",
		result.ID, result.SlotID, result.InvoiceID)

	return result, nil
}

package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	advertRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/advert"
	timeslotRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/timeslot"
)

// UseCase use case проверки доступности слота для объявления.
// Проверка совещательная: ничего не блокирует, авторитетная проверка
// повторяется внутри транзакции одобрения.
type UseCase struct {
	advertRepo     AdvertRepository
	slotRepo       SlotRepository
	assignmentRepo AssignmentRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	advertRepo AdvertRepository,
	slotRepo SlotRepository,
	assignmentRepo AssignmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		advertRepo:     advertRepo,
		slotRepo:       slotRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// Execute проверяет каждый день окна [startDate, startDate+daysPaid-1]
// независимо и собирает все конфликты в порядке дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: advert=%d, slot=%d", req.AdvertID, req.SlotID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	advert, err := uc.advertRepo.GetByID(ctx, req.AdvertID)
	if err != nil {
		if errors.Is(err, advertRepo.ErrAdvertNotFound) {
			uc.logger.Warn("CheckAvailability: advert id=%d not found", req.AdvertID)
			return nil, ErrAdvertNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get advert id=%d: %v", req.AdvertID, err)
		return nil, fmt.Errorf("%w: failed to get advert: %v", ErrInternal, err)
	}

	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CheckAvailability: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	dates := domain.CoveredDates(advert.StartDate, advert.DaysPaid)
	conflicts := make([]domain.Conflict, 0)

	// Собственные строки объявления не считаются конфликтом —
	// актуально при повторной проверке уже одобренного объявления
	excludeID := &advert.ID

	for _, date := range dates {
		occupants, err := uc.assignmentRepo.OccupantsForSlotDate(ctx, slot.ID, date)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get occupants for slot=%d date=%s: %v",
				slot.ID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get slot occupants: %v", ErrInternal, err)
		}

		if conflict := evaluateDate(occupants, advert.Category, date, excludeID); conflict != nil {
			conflicts = append(conflicts, *conflict)
		}
	}

	uc.logger.Info("CheckAvailability: advert=%d, slot=%d, days=%d, conflicts=%d",
		req.AdvertID, req.SlotID, len(dates), len(conflicts))

	return &Response{
		Available: len(conflicts) == 0,
		SlotID:    slot.ID,
		StartDate: domain.DateOnly(advert.StartDate),
		DayCount:  advert.DaysPaid,
		Conflicts: conflicts,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AdvertID <= 0 {
		return fmt.Errorf("%w: advertID must be positive", ErrInvalidInput)
	}
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	return nil
}

package create_advert

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// UseCase use case подачи объявления.
// Объявление создается в статусе pending без слота — слот, end_date и
// remaining_days назначаются только при одобрении администратором.
type UseCase struct {
	advertRepo   AdvertRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(advertRepo AdvertRepository, logger Logger) *UseCase {
	return &UseCase{
		advertRepo:   advertRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подачи объявления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAdvert: client=%q, category=%s, days=%d, start=%s, rep=%d",
		req.ClientName, req.Category, req.DaysPaid, req.StartDate.Format(domain.DateFormat), req.CreatedBy)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAdvert: validation failed: %v", err)
		return nil, err
	}

	advert := &domain.Advert{
		ClientName:    req.ClientName,
		Category:      req.Category,
		Caption:       req.Caption,
		MediaRef:      req.MediaRef,
		AmountPaid:    req.AmountPaid,
		PaymentMethod: req.PaymentMethod,
		DaysPaid:      req.DaysPaid,
		PaymentDate:   req.PaymentDate,
		StartDate:     domain.DateOnly(req.StartDate),
		Status:        domain.StatusPending,
		CreatedBy:     req.CreatedBy,
	}

	created, err := uc.advertRepo.Create(ctx, advert)
	if err != nil {
		uc.logger.Error("CreateAdvert: failed to create advert for client=%q: %v", req.ClientName, err)
		return nil, fmt.Errorf("%w: failed to create advert: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAdvert: advert id=%d created", created.ID)

	return &Response{
		ID:         created.ID,
		ClientName: created.ClientName,
		Category:   created.Category,
		Caption:    created.Caption,
		Status:     string(created.Status),
		AmountPaid: created.AmountPaid,
		DaysPaid:   created.DaysPaid,
		StartDate:  created.StartDate,
		CreatedBy:  created.CreatedBy,
		CreatedAt:  created.CreatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.ClientName == "" || len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxClientNameLength)
	}

	if !req.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}

	if req.Caption == "" || len(req.Caption) > domain.MaxCaptionLength {
		return fmt.Errorf("%w: caption is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxCaptionLength)
	}

	if req.AmountPaid < 0 {
		return fmt.Errorf("%w: amountPaid must not be negative", ErrInvalidInput)
	}

	if req.PaymentMethod == "" {
		return fmt.Errorf("%w: paymentMethod is required", ErrInvalidInput)
	}

	if req.DaysPaid < domain.MinDaysPaid || req.DaysPaid > domain.MaxDaysPaid {
		return fmt.Errorf("%w: daysPaid must be between %d and %d",
			ErrInvalidInput, domain.MinDaysPaid, domain.MaxDaysPaid)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if domain.DateOnly(req.StartDate).Before(domain.DateOnly(now)) {
		return fmt.Errorf("%w: startDate must not be in the past", ErrInvalidInput)
	}

	if req.CreatedBy <= 0 {
		return fmt.Errorf("%w: createdBy must be positive", ErrInvalidInput)
	}

	return nil
}

package adverts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	advertRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/advert"
	"github.com/m04kA/SMC-AdsService/internal/integrations/notifyservice"
	"github.com/m04kA/SMC-AdsService/internal/service/adverts/models"
)

// Service сервис для работы с объявлениями: чтение, отклонение, удаление.
// Мутации, затрагивающие занятость слотов (одобрение, продление),
// живут в отдельных use case'ах с транзакционной проверкой доступности.
type Service struct {
	advertRepo     AdvertRepository
	assignmentRepo AssignmentRepository
	notifyClient   NotifyServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(
	advertRepo AdvertRepository,
	assignmentRepo AssignmentRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		advertRepo:     advertRepo,
		assignmentRepo: assignmentRepo,
		notifyClient:   notifyClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// GetByID получает объявление по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AdvertResponse, error) {
	s.logger.Info("GetByID: fetching advert id=%d", id)

	advert, err := s.advertRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, advertRepo.ErrAdvertNotFound) {
			s.logger.Warn("GetByID: advert id=%d not found", id)
			return nil, ErrAdvertNotFound
		}
		s.logger.Error("GetByID: repository error for advert id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAdvert(advert), nil
}

// List получает список объявлений с гибкой фильтрацией по статусу,
// категории, клиенту, менеджеру и слоту
func (s *Service) List(ctx context.Context, req *models.ListAdvertsRequest) (*models.AdvertListResponse, error) {
	s.logger.Info("List: fetching adverts, status=%v, category=%v", req.Status, req.Category)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	adverts, err := s.advertRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d adverts", len(adverts))
	return models.FromDomainAdvertList(adverts), nil
}

// Decline отклоняет pending объявление (pending → cancelled).
// Причина обязательна и не короче domain.MinDeclineReasonLen символов;
// менеджеру уходит уведомление с причиной (fire-and-forget).
// Строки занятости не затрагиваются — у pending объявления их нет.
func (s *Service) Decline(ctx context.Context, advertID int64, req *models.DeclineAdvertRequest) error {
	s.logger.Info("Decline: declining advert id=%d by user=%d", advertID, req.UserID)

	if err := validateDeclineReason(req.Reason, req.Notes); err != nil {
		s.logger.Warn("Decline: validation failed for advert id=%d: %v", advertID, err)
		return err
	}

	advert, err := s.advertRepo.GetByID(ctx, advertID)
	if err != nil {
		if errors.Is(err, advertRepo.ErrAdvertNotFound) {
			s.logger.Warn("Decline: advert id=%d not found", advertID)
			return ErrAdvertNotFound
		}
		s.logger.Error("Decline: repository error for advert id=%d: %v", advertID, err)
		return fmt.Errorf("%w: Decline - repository error: %v", ErrInternal, err)
	}

	if !advert.CanBeDeclined() {
		s.logger.Warn("Decline: advert id=%d cannot be declined, status=%s", advertID, advert.Status)
		return ErrCannotDecline
	}

	if err := s.advertRepo.Decline(ctx, advertID, req.Reason, req.Notes); err != nil {
		if errors.Is(err, advertRepo.ErrAdvertNotFound) {
			return ErrAdvertNotFound
		}
		s.logger.Error("Decline: repository error for advert id=%d: %v", advertID, err)
		return fmt.Errorf("%w: Decline - repository error: %v", ErrInternal, err)
	}

	s.notifyClient.NotifyBestEffort(ctx, &notifyservice.Notification{
		UserID:   advert.CreatedBy,
		Title:    "Advert declined",
		Message:  fmt.Sprintf("Advert %q was declined: %s", advert.Caption, req.Reason),
		Severity: notifyservice.SeverityWarning,
		AdvertID: &advert.ID,
	})

	s.logger.Info("Decline: advert id=%d declined", advertID)
	return nil
}

// Delete физически удаляет объявление.
// Менеджер может удалить только своё pending объявление, администратор —
// любое. Для активных объявлений строки занятости удаляются в той же
// транзакции, что и само объявление.
func (s *Service) Delete(ctx context.Context, advertID int64, req *models.DeleteAdvertRequest) error {
	s.logger.Info("Delete: deleting advert id=%d by user=%d (admin=%v)", advertID, req.UserID, req.IsAdmin)

	advert, err := s.advertRepo.GetByID(ctx, advertID)
	if err != nil {
		if errors.Is(err, advertRepo.ErrAdvertNotFound) {
			s.logger.Warn("Delete: advert id=%d not found", advertID)
			return ErrAdvertNotFound
		}
		s.logger.Error("Delete: repository error for advert id=%d: %v", advertID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !advert.CanBeDeletedBy(req.UserID, req.IsAdmin) {
		s.logger.Warn("Delete: access denied for user=%d to advert id=%d (status=%s)",
			req.UserID, advertID, advert.Status)
		return ErrAccessDenied
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		deleted, err := s.assignmentRepo.DeleteByAdvert(txCtx, advertID)
		if err != nil {
			return fmt.Errorf("%w: Delete - failed to delete assignments: %v", ErrInternal, err)
		}
		if deleted > 0 {
			s.logger.Info("Delete: removed %d assignment rows for advert id=%d", deleted, advertID)
		}

		if err := s.advertRepo.Delete(txCtx, advertID); err != nil {
			if errors.Is(err, advertRepo.ErrAdvertNotFound) {
				return ErrAdvertNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Delete: failed to delete advert id=%d: %v", advertID, err)
		return err
	}

	s.logger.Info("Delete: advert id=%d deleted", advertID)
	return nil
}

// validateDeclineReason проверяет обязательность и длину причины отклонения
func validateDeclineReason(reason string, notes *string) error {
	trimmed := strings.TrimSpace(reason)

	if trimmed == "" {
		return fmt.Errorf("%w: decline reason is required", ErrInvalidInput)
	}

	if len(trimmed) < domain.MinDeclineReasonLen {
		return fmt.Errorf("%w: decline reason must be at least %d characters",
			ErrInvalidInput, domain.MinDeclineReasonLen)
	}

	if len(trimmed) > domain.MaxDeclineReasonLen {
		return fmt.Errorf("%w: decline reason must be at most %d characters",
			ErrInvalidInput, domain.MaxDeclineReasonLen)
	}

	if notes != nil && len(*notes) > domain.MaxDeclineNotesLen {
		return fmt.Errorf("%w: decline notes must be at most %d characters",
			ErrInvalidInput, domain.MaxDeclineNotesLen)
	}

	return nil
}

package lifecycle_sweep

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// UseCase ежедневный пересчет жизненного цикла объявлений.
// Запускается по таймеру вскоре после полуночи и вручную через
// POST /adverts/manual-update. Прохода без скрытого состояния:
// весь результат — функция от (БД, текущая дата).
//
// Проход идемпотентен: обновление каждого объявления независимо и
// защищено сравнением значений (no-op, если счетчик уже верен),
// поэтому повтор после сбоя на середине безопасен.
type UseCase struct {
	advertRepo     AdvertRepository
	assignmentRepo AssignmentRepository
	retentionDays  int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// retentionDays ограничивается допустимым коридором из domain.
func NewUseCase(
	advertRepo AdvertRepository,
	assignmentRepo AssignmentRepository,
	retentionDays int,
	logger Logger,
) *UseCase {
	if retentionDays < domain.MinRetentionDays {
		retentionDays = domain.MinRetentionDays
	}
	if retentionDays > domain.MaxRetentionDays {
		retentionDays = domain.MaxRetentionDays
	}

	return &UseCase{
		advertRepo:     advertRepo,
		assignmentRepo: assignmentRepo,
		retentionDays:  retentionDays,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет один проход: пересчет remaining_days всех активных
// объявлений плюс чистка устаревших строк занятости.
// Ошибки отдельных объявлений логируются и не прерывают проход.
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	now := uc.timeProvider.Now()
	today := domain.DateOnly(now)

	uc.logger.Info("LifecycleSweep: starting, today=%s", today.Format(domain.DateFormat))

	adverts, err := uc.advertRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("LifecycleSweep: failed to list active adverts: %v", err)
		return nil, fmt.Errorf("%w: failed to list active adverts: %v", ErrInternal, err)
	}

	result := &Result{Checked: len(adverts)}

	// Последовательный проход без параллелизма: объем данных этого
	// не требует, а независимые обновления проще изолировать
	for _, advert := range adverts {
		if advert.EndDate == nil {
			// Активное объявление без end_date нарушает инвариант:
			// фиксируем и пропускаем, одна плохая строка не валит проход
			uc.logger.Error("LifecycleSweep: active advert id=%d has no end_date, skipping", advert.ID)
			result.Failed++
			continue
		}

		remaining := domain.RemainingDays(*advert.EndDate, now)

		status := domain.StatusActive
		if remaining == 0 {
			// Счетчик и статус меняются одним UPDATE: объявление не
			// должно наблюдаться с remaining_days=0 и статусом active
			status = domain.StatusExpired
		}

		// Ни значение, ни статус не изменились — ничего не пишем.
		// Сравнение только по счетчику пропускало бы активную строку
		// с remaining_days=0, которую нужно перевести в expired.
		if advert.RemainingDays != nil && *advert.RemainingDays == remaining && status == advert.Status {
			continue
		}

		if err := uc.advertRepo.UpdateLifecycle(ctx, advert.ID, remaining, status); err != nil {
			uc.logger.Error("LifecycleSweep: failed to update advert id=%d: %v", advert.ID, err)
			result.Failed++
			continue
		}

		result.Updated++
		if status == domain.StatusExpired {
			uc.logger.Info("LifecycleSweep: advert id=%d expired (end_date=%s)",
				advert.ID, advert.EndDate.Format(domain.DateFormat))
			result.Expired++
		}
	}

	// Чистка устаревших строк занятости. Горизонт не поднимается выше
	// сегодняшней даты: строки на сегодня и будущее не трогаем никогда.
	cutoff := today.AddDate(0, 0, -uc.retentionDays)
	pruned, err := uc.assignmentRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		// Чистка вспомогательная — сбой не отменяет результат пересчета
		uc.logger.Error("LifecycleSweep: failed to prune assignments before %s: %v",
			cutoff.Format(domain.DateFormat), err)
	} else {
		result.Pruned = pruned
	}

	uc.logger.Info("LifecycleSweep: done, checked=%d, updated=%d, expired=%d, failed=%d, pruned=%d",
		result.Checked, result.Updated, result.Expired, result.Failed, result.Pruned)

	return result, nil
}

package approve_advert

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// evaluateDate проверяет одну дату окна внутри транзакции одобрения.
// Та же двухступенчатая проверка, что и в совещательном check_availability:
// сначала вместимость, затем категория — не больше одного конфликта на дату.
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
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	if req.ApproverID <= 0 {
		return fmt.Errorf("%w: approverID must be positive", ErrInvalidInput)
	}
	return nil
}

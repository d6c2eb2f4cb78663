package check_availability

import (
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// evaluateDate проверяет одну дату окна по двум условиям.
// Вместимость проверяется первой: если слот уже полон, категорийная
// проверка для этой даты пропускается — на дату сообщается не больше
// одного конфликта.
//
// excludeAdvertID исключает строки самого объявления — используется
// при проверке продления/обновления, чтобы объявление не конфликтовало
// само с собой.
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

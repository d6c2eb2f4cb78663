package decline_advert

import (
	"github.com/m04kA/SMC-AdsService/internal/service/adverts/models"
)

// DeclineAdvertRequest HTTP request model
type DeclineAdvertRequest struct {
	Reason string  `json:"reason"`
	Notes  *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *DeclineAdvertRequest) ToServiceRequest(userID int64) *models.DeclineAdvertRequest {
	return &models.DeclineAdvertRequest{
		UserID: userID,
		Reason: r.Reason,
		Notes:  r.Notes,
	}
}

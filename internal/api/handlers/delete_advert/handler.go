package delete_advert

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdsService/internal/api/handlers"
	"github.com/m04kA/SMC-AdsService/internal/api/middleware"
	"github.com/m04kA/SMC-AdsService/internal/service/adverts"
	"github.com/m04kA/SMC-AdsService/internal/service/adverts/models"
)

const (
	msgInvalidAdvertID = "некорректный ID объявления"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNotFound        = "объявление не найдено"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service AdvertService
	logger  Logger
}

func NewHandler(service AdvertService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/adverts/{advertId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	advertID, err := strconv.ParseInt(vars["advertId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /adverts/{id} - Invalid advert ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdvertID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /adverts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Delete(r.Context(), advertID, &models.DeleteAdvertRequest{
		UserID:  userID,
		IsAdmin: middleware.IsAdmin(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, adverts.ErrAdvertNotFound):
			h.logger.Warn("DELETE /adverts/{id} - Advert not found: advert_id=%d", advertID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, adverts.ErrAccessDenied):
			h.logger.Warn("DELETE /adverts/{id} - Access denied: advert_id=%d, user_id=%d", advertID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /adverts/{id} - Failed to delete: advert_id=%d, error=%v", advertID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /adverts/{id} - Advert deleted: advert_id=%d, user_id=%d", advertID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

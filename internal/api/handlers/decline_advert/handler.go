package decline_advert

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdsService/internal/api/handlers"
	"github.com/m04kA/SMC-AdsService/internal/api/middleware"
	"github.com/m04kA/SMC-AdsService/internal/service/adverts"
)

const (
	msgInvalidAdvertID    = "некорректный ID объявления"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "объявление не найдено"
	msgCannotDecline      = "объявление не может быть отклонено"
	msgInvalidReason      = "некорректная причина отклонения"
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

// Handle POST /api/v1/adverts/{advertId}/decline
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	advertID, err := strconv.ParseInt(vars["advertId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /adverts/{id}/decline - Invalid advert ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdvertID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /adverts/{id}/decline - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DeclineAdvertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /adverts/{id}/decline - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Decline(r.Context(), advertID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, adverts.ErrAdvertNotFound):
			h.logger.Warn("POST /adverts/{id}/decline - Advert not found: advert_id=%d", advertID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, adverts.ErrCannotDecline):
			h.logger.Warn("POST /adverts/{id}/decline - Cannot decline: advert_id=%d", advertID)
			handlers.RespondBadRequest(w, msgCannotDecline)

		case errors.Is(err, adverts.ErrInvalidInput):
			h.logger.Warn("POST /adverts/{id}/decline - Invalid reason: advert_id=%d, error=%v", advertID, err)
			handlers.RespondBadRequest(w, msgInvalidReason)

		default:
			h.logger.Error("POST /adverts/{id}/decline - Failed to decline: advert_id=%d, error=%v", advertID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /adverts/{id}/decline - Advert declined: advert_id=%d, user_id=%d", advertID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

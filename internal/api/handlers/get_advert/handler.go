package get_advert

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdsService/internal/api/handlers"
	"github.com/m04kA/SMC-AdsService/internal/service/adverts"
)

const (
	msgInvalidAdvertID = "некорректный ID объявления"
	msgNotFound        = "объявление не найдено"
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

// Handle GET /api/v1/adverts/{advertId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	advertID, err := strconv.ParseInt(vars["advertId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /adverts/{id} - Invalid advert ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdvertID)
		return
	}

	advert, err := h.service.GetByID(r.Context(), advertID)
	if err != nil {
		switch {
		case errors.Is(err, adverts.ErrAdvertNotFound):
			h.logger.Warn("GET /adverts/{id} - Advert not found: advert_id=%d", advertID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /adverts/{id} - Failed to get advert: advert_id=%d, error=%v", advertID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /adverts/{id} - Advert retrieved: advert_id=%d", advertID)
	handlers.RespondJSON(w, http.StatusOK, advert)
}

package list_adverts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdsService/internal/api/handlers"
	"github.com/m04kA/SMC-AdsService/internal/service/adverts"
)

const (
	msgInvalidQuery = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/adverts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /adverts - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, adverts.ErrInvalidInput):
			h.logger.Warn("GET /adverts - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /adverts - Failed to list adverts: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /adverts - Returned %d adverts", len(result.Adverts))
	handlers.RespondJSON(w, http.StatusOK, result)
}

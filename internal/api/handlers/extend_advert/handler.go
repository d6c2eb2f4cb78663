package extend_advert

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdsService/internal/api/handlers"
	extendAdvert "github.com/m04kA/SMC-AdsService/internal/usecase/extend_advert"
)

const (
	msgInvalidAdvertID    = "некорректный ID объявления"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAdvertNotFound     = "объявление не найдено"
	msgNotApproved        = "объявление ни разу не было одобрено"
	msgSlotNotAvailable   = "слот недоступен на даты продления"
)

type Handler struct {
	useCase ExtendAdvertUseCase
	logger  Logger
}

func NewHandler(useCase ExtendAdvertUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/adverts/{advertId}/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	advertID, err := strconv.ParseInt(vars["advertId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /adverts/{id}/extend - Invalid advert ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdvertID)
		return
	}

	var req ExtendAdvertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /adverts/{id}/extend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &extendAdvert.Request{
		AdvertID:        advertID,
		AdditionalDays:  req.AdditionalDays,
		ExtraAmountPaid: req.ExtraAmountPaid,
	})
	if err != nil {
		switch {
		case errors.Is(err, extendAdvert.ErrSlotConflict):
			h.logger.Warn("POST /adverts/{id}/extend - Slot conflict: advert_id=%d, error=%v", advertID, err)
			var conflictErr *extendAdvert.ConflictError
			if errors.As(err, &conflictErr) {
				handlers.RespondJSON(w, http.StatusConflict, FromConflict(msgSlotNotAvailable, conflictErr.Conflict))
			} else {
				handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)
			}

		case errors.Is(err, extendAdvert.ErrAdvertNotFound):
			h.logger.Warn("POST /adverts/{id}/extend - Advert not found: advert_id=%d", advertID)
			handlers.RespondNotFound(w, msgAdvertNotFound)

		case errors.Is(err, extendAdvert.ErrNotApproved):
			h.logger.Warn("POST /adverts/{id}/extend - Advert never approved: advert_id=%d", advertID)
			handlers.RespondBadRequest(w, msgNotApproved)

		case errors.Is(err, extendAdvert.ErrInvalidInput):
			h.logger.Warn("POST /adverts/{id}/extend - Invalid input: advert_id=%d, error=%v", advertID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /adverts/{id}/extend - Failed to extend: advert_id=%d, error=%v", advertID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /adverts/{id}/extend - Advert extended: advert_id=%d, days=%d, new_end_date=%s",
		advertID, req.AdditionalDays, result.NewEndDate.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

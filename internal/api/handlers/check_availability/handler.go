package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AdsService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-AdsService/internal/usecase/check_availability"
)

const (
	msgInvalidSlotID   = "некорректный параметр slotId"
	msgInvalidAdvertID = "некорректный параметр advertId"
	msgAdvertNotFound  = "объявление не найдено"
	msgSlotNotFound    = "временной слот не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/check-availability?slotId=&advertId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(r.URL.Query().Get("slotId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/check-availability - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	advertID, err := strconv.ParseInt(r.URL.Query().Get("advertId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/check-availability - Invalid advert ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdvertID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		AdvertID: advertID,
		SlotID:   slotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrAdvertNotFound):
			h.logger.Warn("GET /slots/check-availability - Advert not found: advert_id=%d", advertID)
			handlers.RespondNotFound(w, msgAdvertNotFound)

		case errors.Is(err, checkAvailability.ErrSlotNotFound):
			h.logger.Warn("GET /slots/check-availability - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /slots/check-availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /slots/check-availability - Failed: slot_id=%d, advert_id=%d, error=%v",
				slotID, advertID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/check-availability - Checked: slot_id=%d, advert_id=%d, available=%v, conflicts=%d",
		slotID, advertID, result.Available, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

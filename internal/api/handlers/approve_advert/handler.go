package approve_advert

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdsService/internal/api/handlers"
	"github.com/m04kA/SMC-AdsService/internal/api/middleware"
	approveAdvert "github.com/m04kA/SMC-AdsService/internal/usecase/approve_advert"
)

const (
	msgInvalidAdvertID    = "некорректный ID объявления"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgAdvertNotFound     = "объявление не найдено"
	msgSlotNotFound       = "временной слот не найден"
	msgNotPending         = "объявление не ожидает одобрения"
	msgSlotNotAvailable   = "слот недоступен на выбранные даты"
)

type Handler struct {
	useCase ApproveAdvertUseCase
	logger  Logger
}

func NewHandler(useCase ApproveAdvertUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/adverts/{advertId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	advertID, err := strconv.ParseInt(vars["advertId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /adverts/{id}/approve - Invalid advert ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdvertID)
		return
	}

	approverID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /adverts/{id}/approve - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ApproveAdvertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /adverts/{id}/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveAdvert.Request{
		AdvertID:   advertID,
		SlotID:     req.SlotID,
		ApproverID: approverID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveAdvert.ErrSlotConflict):
			h.logger.Warn("POST /adverts/{id}/approve - Slot conflict: advert_id=%d, slot_id=%d, error=%v",
				advertID, req.SlotID, err)
			// Достаем детали конфликта (дата, тип, клиент), если они есть
			var conflictErr *approveAdvert.ConflictError
			if errors.As(err, &conflictErr) {
				handlers.RespondJSON(w, http.StatusConflict, FromConflict(msgSlotNotAvailable, conflictErr.Conflict))
			} else {
				handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)
			}

		case errors.Is(err, approveAdvert.ErrAdvertNotFound):
			h.logger.Warn("POST /adverts/{id}/approve - Advert not found: advert_id=%d", advertID)
			handlers.RespondNotFound(w, msgAdvertNotFound)

		case errors.Is(err, approveAdvert.ErrSlotNotFound):
			h.logger.Warn("POST /adverts/{id}/approve - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, approveAdvert.ErrNotPending):
			h.logger.Warn("POST /adverts/{id}/approve - Advert not pending: advert_id=%d", advertID)
			handlers.RespondBadRequest(w, msgNotPending)

		case errors.Is(err, approveAdvert.ErrInvalidInput):
			h.logger.Warn("POST /adverts/{id}/approve - Invalid input: advert_id=%d, error=%v", advertID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /adverts/{id}/approve - Failed to approve: advert_id=%d, slot_id=%d, error=%v",
				advertID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /adverts/{id}/approve - Advert approved: advert_id=%d, slot_id=%d, approver_id=%d, invoice_id=%d",
		advertID, req.SlotID, approverID, result.InvoiceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

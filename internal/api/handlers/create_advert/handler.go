package create_advert

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdsService/internal/api/handlers"
	"github.com/m04kA/SMC-AdsService/internal/api/middleware"
	createAdvert "github.com/m04kA/SMC-AdsService/internal/usecase/create_advert"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase CreateAdvertUseCase
	logger  Logger
}

func NewHandler(useCase CreateAdvertUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/adverts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /adverts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAdvertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /adverts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /adverts - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAdvert.ErrInvalidInput):
			h.logger.Warn("POST /adverts - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /adverts - Failed to create advert: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /adverts - Advert created: advert_id=%d, client=%s, created_by=%d",
		result.ID, result.ClientName, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

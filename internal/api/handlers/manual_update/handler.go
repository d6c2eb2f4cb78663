package manual_update

import (
	"net/http"

	"github.com/m04kA/SMC-AdsService/internal/api/handlers"
	"github.com/m04kA/SMC-AdsService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	useCase LifecycleSweepUseCase
	logger  Logger
}

func NewHandler(useCase LifecycleSweepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/adverts/manual-update
//
// Запускает тот же пересчёт остатков, что и ежедневный планировщик.
// Используется администратором, если плановый запуск был пропущен.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /adverts/manual-update - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /adverts/manual-update - Sweep failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /adverts/manual-update - Sweep completed: user_id=%d, checked=%d, updated=%d, expired=%d, failed=%d, pruned=%d",
		userID, result.Checked, result.Updated, result.Expired, result.Failed, result.Pruned)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResult(result))
}

package manual_update

import (
	lifecycleSweep "github.com/m04kA/SMC-AdsService/internal/usecase/lifecycle_sweep"
)

// SweepResultResponse HTTP ответ с итогами пересчёта
type SweepResultResponse struct {
	Checked int   `json:"checked"`
	Updated int   `json:"updated"`
	Expired int   `json:"expired"`
	Failed  int   `json:"failed"`
	Pruned  int64 `json:"pruned"`
}

// FromUseCaseResult конвертирует результат use case в HTTP response
func FromUseCaseResult(result *lifecycleSweep.Result) *SweepResultResponse {
	return &SweepResultResponse{
		Checked: result.Checked,
		Updated: result.Updated,
		Expired: result.Expired,
		Failed:  result.Failed,
		Pruned:  result.Pruned,
	}
}

package notifyservice

// Severity уровень важности уведомления
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Notification модель уведомления для NotifyService
type Notification struct {
	UserID   int64    `json:"user_id"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	AdvertID *int64   `json:"advert_id,omitempty"`
}

// ErrorResponse модель ошибки от NotifyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

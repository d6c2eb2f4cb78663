package billingservice

// CreateInvoiceRequest запрос на создание счета в BillingService
type CreateInvoiceRequest struct {
	AdvertID         int64   `json:"advert_id"`
	ClientName       string  `json:"client_name"`
	Amount           float64 `json:"amount"`
	CommissionAmount float64 `json:"commission_amount"`
	SalesRepID       int64   `json:"sales_rep_id"`
	ApproverID       int64   `json:"approver_id"`
}

// Invoice модель счета из BillingService
type Invoice struct {
	ID               int64   `json:"id"`
	AdvertID         int64   `json:"advert_id"`
	Amount           float64 `json:"amount"`
	CommissionAmount float64 `json:"commission_amount"`
	Status           string  `json:"status"`
}

// ErrorResponse модель ошибки от BillingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

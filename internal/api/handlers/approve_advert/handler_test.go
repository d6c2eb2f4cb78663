package approve_advert

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdsService/internal/api/middleware"
	"github.com/m04kA/SMC-AdsService/internal/domain"
	approveAdvert "github.com/m04kA/SMC-AdsService/internal/usecase/approve_advert"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type mockUseCase struct {
	resp    *approveAdvert.Response
	err     error
	lastReq *approveAdvert.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *approveAdvert.Request) (*approveAdvert.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func doRequest(t *testing.T, uc *mockUseCase, advertID string, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/adverts/"+advertID+"/approve",
		bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", "99")
	req.Header.Set("X-User-Role", "admin")
	req = mux.SetURLVars(req, map[string]string{"advertId": advertID})

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{resp: &approveAdvert.Response{
		ID:            42,
		ClientName:    "Acme Corp",
		Category:      domain.CategoryFinance,
		Status:        "active",
		SlotID:        7,
		StartDate:     time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, time.October, 12, 0, 0, 0, 0, time.UTC),
		DaysPaid:      3,
		RemainingDays: 3,
		ApprovedBy:    99,
		ApprovedAt:    time.Date(2025, time.October, 9, 12, 0, 0, 0, time.UTC),
		InvoiceID:     555,
	}}

	rec := doRequest(t, uc, "42", `{"slotId": 7}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(42), uc.lastReq.AdvertID)
	assert.Equal(t, int64(7), uc.lastReq.SlotID)
	assert.Equal(t, int64(99), uc.lastReq.ApproverID)

	var resp ApprovedAdvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-10-12", resp.EndDate)
	assert.Equal(t, int64(555), resp.InvoiceID)
}

// Конфликт уходит как 409 с датой, типом и именем конкурирующего клиента
func TestHandle_ConflictMapsTo409WithDetails(t *testing.T) {
	uc := &mockUseCase{err: &approveAdvert.ConflictError{Conflict: domain.Conflict{
		Date:              time.Date(2025, time.October, 11, 0, 0, 0, 0, time.UTC),
		Kind:              domain.ConflictCategory,
		ConflictingClient: "Rival Bank",
	}}}

	rec := doRequest(t, uc, "42", `{"slotId": 7}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-10-11", resp.Date)
	assert.Equal(t, "category", resp.Kind)
	assert.Equal(t, "Rival Bank", resp.ConflictingClient)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"advert not found", approveAdvert.ErrAdvertNotFound, http.StatusNotFound},
		{"slot not found", approveAdvert.ErrSlotNotFound, http.StatusNotFound},
		{"not pending", approveAdvert.ErrNotPending, http.StatusBadRequest},
		{"invalid input", approveAdvert.ErrInvalidInput, http.StatusBadRequest},
		{"internal", approveAdvert.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &mockUseCase{err: tt.err}, "42", `{"slotId": 7}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidAdvertID(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, "abc", `{"slotId": 7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, "42", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	h := NewHandler(&mockUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/adverts/42/approve",
		bytes.NewBufferString(`{"slotId": 7}`))
	req = mux.SetURLVars(req, map[string]string{"advertId": "42"})

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package create_advert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type mockAdvertRepo struct {
	created *domain.Advert
}

func (m *mockAdvertRepo) Create(ctx context.Context, advert *domain.Advert) (*domain.Advert, error) {
	created := *advert
	created.ID = 42
	created.CreatedAt = time.Now()
	m.created = &created
	return &created, nil
}

func testDate(d int) time.Time {
	return time.Date(2025, time.October, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		ClientName:    "Acme Corp",
		Category:      domain.CategoryFinance,
		Caption:       "Grand opening",
		AmountPaid:    1000,
		PaymentMethod: "invoice",
		DaysPaid:      3,
		PaymentDate:   testDate(1),
		StartDate:     testDate(10),
		CreatedBy:     5,
	}
}

func newTestUseCase(repo *mockAdvertRepo) *UseCase {
	uc := NewUseCase(repo, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testDate(5)}
	return uc
}

func TestExecute_CreatesPendingAdvert(t *testing.T) {
	repo := &mockAdvertRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Слот и производные поля расписания не назначаются до одобрения
	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.SlotID)
	assert.Nil(t, repo.created.EndDate)
	assert.Nil(t, repo.created.RemainingDays)
}

func TestExecute_StartDateTodayAllowed(t *testing.T) {
	req := validRequest()
	req.StartDate = testDate(5)
	uc := newTestUseCase(&mockAdvertRepo{})

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty client name", func(r *Request) { r.ClientName = "" }},
		{"unknown category", func(r *Request) { r.Category = "weapons" }},
		{"empty caption", func(r *Request) { r.Caption = "" }},
		{"negative amount", func(r *Request) { r.AmountPaid = -1 }},
		{"empty payment method", func(r *Request) { r.PaymentMethod = "" }},
		{"zero days paid", func(r *Request) { r.DaysPaid = 0 }},
		{"too many days paid", func(r *Request) { r.DaysPaid = domain.MaxDaysPaid + 1 }},
		{"zero start date", func(r *Request) { r.StartDate = time.Time{} }},
		{"start date in the past", func(r *Request) { r.StartDate = testDate(4) }},
		{"zero created by", func(r *Request) { r.CreatedBy = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockAdvertRepo{}
			uc := newTestUseCase(repo)
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.created)
		})
	}
}

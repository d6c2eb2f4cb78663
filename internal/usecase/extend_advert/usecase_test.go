package extend_advert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	advertRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/advert"
	"github.com/m04kA/SMC-AdsService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type mockAdvertRepo struct {
	advert        *domain.Advert
	getErr        error
	extensionArgs *extensionCall
}

type extensionCall struct {
	id            int64
	daysPaid      int
	endDate       time.Time
	remainingDays int
	amountPaid    float64
	status        domain.AdvertStatus
}

func (m *mockAdvertRepo) GetByID(ctx context.Context, id int64) (*domain.Advert, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.advert, nil
}

func (m *mockAdvertRepo) ApplyExtension(ctx context.Context, id int64, daysPaid int, endDate time.Time, remainingDays int, amountPaid float64, status domain.AdvertStatus) error {
	m.extensionArgs = &extensionCall{id, daysPaid, endDate, remainingDays, amountPaid, status}
	return nil
}

type mockAssignmentRepo struct {
	occupants     map[string][]domain.SlotOccupant
	insertedDates []time.Time
}

func (m *mockAssignmentRepo) OccupantsForSlotDate(ctx context.Context, slotID int64, date time.Time) ([]domain.SlotOccupant, error) {
	return m.occupants[date.Format(domain.DateFormat)], nil
}

func (m *mockAssignmentRepo) BulkInsertIdempotent(ctx context.Context, advertID, slotID int64, dates []time.Time) error {
	m.insertedDates = dates
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testDate(d int) time.Time {
	return time.Date(2025, time.October, d, 0, 0, 0, 0, time.UTC)
}

// Одобренное объявление: 2025-10-10 .. 2025-10-12, слот 7
func approvedAdvert() *domain.Advert {
	endDate := testDate(12)
	return &domain.Advert{
		ID:            42,
		ClientName:    "Acme Corp",
		Category:      domain.CategoryFinance,
		AmountPaid:    1000,
		DaysPaid:      3,
		StartDate:     testDate(10),
		EndDate:       &endDate,
		SlotID:        ptr.Ptr(int64(7)),
		RemainingDays: ptr.Ptr(2),
		Status:        domain.StatusActive,
	}
}

type fixture struct {
	uc          *UseCase
	adverts     *mockAdvertRepo
	assignments *mockAssignmentRepo
}

func newFixture(advert *domain.Advert, occupants map[string][]domain.SlotOccupant) *fixture {
	f := &fixture{
		adverts:     &mockAdvertRepo{advert: advert},
		assignments: &mockAssignmentRepo{occupants: occupants},
	}
	f.uc = NewUseCase(f.adverts, f.assignments, passthroughTxManager{}, noopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: testDate(11)}
	return f
}

func TestExecute_ExtendsActiveAdvert(t *testing.T) {
	f := newFixture(approvedAdvert(), nil)

	resp, err := f.uc.Execute(context.Background(), &Request{AdvertID: 42, AdditionalDays: 2, ExtraAmountPaid: 300})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, 5, resp.NewDaysPaid)
	assert.Equal(t, testDate(14), resp.NewEndDate)
	// Сегодня 11-е, новый конец 14-е
	assert.Equal(t, 3, resp.NewRemainingDays)
	assert.InDelta(t, 1300.0, resp.AmountPaid, 0.001)

	require.NotNil(t, f.adverts.extensionArgs)
	assert.Equal(t, 5, f.adverts.extensionArgs.daysPaid)
	assert.Equal(t, testDate(14), f.adverts.extensionArgs.endDate)
}

// Окно продления — ровно новые даты сразу после текущего end_date
func TestExecute_WindowIsContiguous(t *testing.T) {
	f := newFixture(approvedAdvert(), nil)

	_, err := f.uc.Execute(context.Background(), &Request{AdvertID: 42, AdditionalDays: 2})

	require.NoError(t, err)
	require.Len(t, f.assignments.insertedDates, 2)
	assert.Equal(t, testDate(13), f.assignments.insertedDates[0])
	assert.Equal(t, testDate(14), f.assignments.insertedDates[1])
}

// Продление оживляет истекшее объявление
func TestExecute_RevivesExpiredAdvert(t *testing.T) {
	advert := approvedAdvert()
	advert.Status = domain.StatusExpired
	advert.RemainingDays = ptr.Ptr(0)
	f := newFixture(advert, nil)
	// Сегодня уже после старого end_date
	f.uc.timeProvider = &fixedTimeProvider{now: testDate(13)}

	resp, err := f.uc.Execute(context.Background(), &Request{AdvertID: 42, AdditionalDays: 3})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, testDate(15), resp.NewEndDate)
	assert.Equal(t, 2, resp.NewRemainingDays)

	require.NotNil(t, f.adverts.extensionArgs)
	assert.Equal(t, domain.StatusActive, f.adverts.extensionArgs.status)
}

// Окно продления целиком в прошлом: объявление остается истекшим,
// статус active с remaining_days=0 не записывается
func TestExecute_PastWindowKeepsAdvertExpired(t *testing.T) {
	advert := approvedAdvert()
	advert.StartDate = time.Date(2025, time.September, 29, 0, 0, 0, 0, time.UTC)
	endDate := testDate(1)
	advert.EndDate = &endDate
	advert.Status = domain.StatusExpired
	advert.RemainingDays = ptr.Ptr(0)
	f := newFixture(advert, nil)
	// Сегодня 13-е, продление на 5 дней покрывает только 10-02..10-06
	f.uc.timeProvider = &fixedTimeProvider{now: testDate(13)}

	resp, err := f.uc.Execute(context.Background(), &Request{AdvertID: 42, AdditionalDays: 5, ExtraAmountPaid: 500})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusExpired), resp.Status)
	assert.Equal(t, testDate(6), resp.NewEndDate)
	assert.Equal(t, 0, resp.NewRemainingDays)

	require.NotNil(t, f.adverts.extensionArgs)
	assert.Equal(t, domain.StatusExpired, f.adverts.extensionArgs.status)
	assert.Equal(t, 0, f.adverts.extensionArgs.remainingDays)
}

func TestExecute_ConflictInExtensionWindow(t *testing.T) {
	f := newFixture(approvedAdvert(), map[string][]domain.SlotOccupant{
		"2025-10-13": {{AdvertID: 3, Category: domain.CategoryFinance, ClientName: "Rival Bank"}},
	})

	_, err := f.uc.Execute(context.Background(), &Request{AdvertID: 42, AdditionalDays: 2})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, domain.ConflictCategory, conflictErr.Conflict.Kind)
	assert.Equal(t, testDate(13), conflictErr.Conflict.Date)

	assert.Nil(t, f.adverts.extensionArgs)
}

// Исторические даты окна не перепроверяются: занятость на старых
// датах не мешает продлению
func TestExecute_HistoricalDatesNotRechecked(t *testing.T) {
	f := newFixture(approvedAdvert(), map[string][]domain.SlotOccupant{
		"2025-10-10": {
			{AdvertID: 1, Category: domain.CategoryRetail, ClientName: "Shop A"},
			{AdvertID: 2, Category: domain.CategoryHealth, ClientName: "Clinic B"},
		},
	})

	_, err := f.uc.Execute(context.Background(), &Request{AdvertID: 42, AdditionalDays: 1})

	assert.NoError(t, err)
}

// Собственные строки объявления в окне не считаются конфликтом
func TestExecute_OwnRowsExcluded(t *testing.T) {
	f := newFixture(approvedAdvert(), map[string][]domain.SlotOccupant{
		"2025-10-13": {{AdvertID: 42, Category: domain.CategoryFinance, ClientName: "Acme Corp"}},
	})

	_, err := f.uc.Execute(context.Background(), &Request{AdvertID: 42, AdditionalDays: 1})

	assert.NoError(t, err)
}

func TestExecute_NeverApproved(t *testing.T) {
	advert := approvedAdvert()
	advert.SlotID = nil
	advert.EndDate = nil
	advert.Status = domain.StatusPending
	f := newFixture(advert, nil)

	_, err := f.uc.Execute(context.Background(), &Request{AdvertID: 42, AdditionalDays: 2})

	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestExecute_AdvertNotFound(t *testing.T) {
	f := newFixture(nil, nil)
	f.adverts.getErr = advertRepo.ErrAdvertNotFound

	_, err := f.uc.Execute(context.Background(), &Request{AdvertID: 99, AdditionalDays: 2})

	assert.ErrorIs(t, err, ErrAdvertNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(approvedAdvert(), nil)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero advert id", &Request{AdvertID: 0, AdditionalDays: 2}},
		{"zero additional days", &Request{AdvertID: 42, AdditionalDays: 0}},
		{"negative additional days", &Request{AdvertID: 42, AdditionalDays: -1}},
		{"negative extra amount", &Request{AdvertID: 42, AdditionalDays: 2, ExtraAmountPaid: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

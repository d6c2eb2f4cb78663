package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	advertRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/advert"
	timeslotRepo "github.com/m04kA/SMC-AdsService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-AdsService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type mockAdvertRepo struct {
	advert *domain.Advert
	err    error
}

func (m *mockAdvertRepo) GetByID(ctx context.Context, id int64) (*domain.Advert, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.advert, nil
}

type mockSlotRepo struct {
	slot *domain.TimeSlot
	err  error
}

func (m *mockSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.slot, nil
}

type mockAssignmentRepo struct {
	// occupants по дате ("2006-01-02")
	occupants map[string][]domain.SlotOccupant
	err       error
}

func (m *mockAssignmentRepo) OccupantsForSlotDate(ctx context.Context, slotID int64, date time.Time) ([]domain.SlotOccupant, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.occupants[date.Format(domain.DateFormat)], nil
}

func testDate(d int) time.Time {
	return time.Date(2025, time.October, d, 0, 0, 0, 0, time.UTC)
}

func testAdvert() *domain.Advert {
	return &domain.Advert{
		ID:         42,
		ClientName: "Acme Corp",
		Category:   domain.CategoryFinance,
		StartDate:  testDate(10),
		DaysPaid:   3,
		Status:     domain.StatusPending,
	}
}

func testSlot() *domain.TimeSlot {
	start, _ := types.NewTimeStringFromString("09:00")
	return &domain.TimeSlot{ID: 7, StartTime: start, Label: "09:00 AM"}
}

func newTestUseCase(assignments *mockAssignmentRepo) *UseCase {
	return NewUseCase(
		&mockAdvertRepo{advert: testAdvert()},
		&mockSlotRepo{slot: testSlot()},
		assignments,
		noopLogger{},
	)
}

func TestExecute_FreeSlot(t *testing.T) {
	uc := newTestUseCase(&mockAssignmentRepo{occupants: map[string][]domain.SlotOccupant{}})

	resp, err := uc.Execute(context.Background(), &Request{AdvertID: 42, SlotID: 7})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, int64(7), resp.SlotID)
	assert.Equal(t, 3, resp.DayCount)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_CapacityConflict(t *testing.T) {
	uc := newTestUseCase(&mockAssignmentRepo{occupants: map[string][]domain.SlotOccupant{
		"2025-10-11": {
			{AdvertID: 1, Category: domain.CategoryRetail, ClientName: "Shop A"},
			{AdvertID: 2, Category: domain.CategoryHealth, ClientName: "Clinic B"},
		},
	}})

	resp, err := uc.Execute(context.Background(), &Request{AdvertID: 42, SlotID: 7})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, domain.ConflictCapacity, resp.Conflicts[0].Kind)
	assert.Equal(t, testDate(11), resp.Conflicts[0].Date)
	assert.Empty(t, resp.Conflicts[0].ConflictingClient)
}

func TestExecute_CategoryConflict(t *testing.T) {
	uc := newTestUseCase(&mockAssignmentRepo{occupants: map[string][]domain.SlotOccupant{
		"2025-10-10": {
			{AdvertID: 3, Category: domain.CategoryFinance, ClientName: "Rival Bank"},
		},
	}})

	resp, err := uc.Execute(context.Background(), &Request{AdvertID: 42, SlotID: 7})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, domain.ConflictCategory, resp.Conflicts[0].Kind)
	assert.Equal(t, "Rival Bank", resp.Conflicts[0].ConflictingClient)
}

// Если слот полон и среди занявших есть та же категория, на дату
// сообщается один конфликт вместимости, не категорийный
func TestExecute_CapacityTakesPrecedenceOverCategory(t *testing.T) {
	uc := newTestUseCase(&mockAssignmentRepo{occupants: map[string][]domain.SlotOccupant{
		"2025-10-10": {
			{AdvertID: 3, Category: domain.CategoryFinance, ClientName: "Rival Bank"},
			{AdvertID: 4, Category: domain.CategoryRetail, ClientName: "Shop A"},
		},
	}})

	resp, err := uc.Execute(context.Background(), &Request{AdvertID: 42, SlotID: 7})

	require.NoError(t, err)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, domain.ConflictCapacity, resp.Conflicts[0].Kind)
}

// Разные категории при свободном месте не конфликтуют
func TestExecute_DifferentCategorySharesSlot(t *testing.T) {
	uc := newTestUseCase(&mockAssignmentRepo{occupants: map[string][]domain.SlotOccupant{
		"2025-10-10": {{AdvertID: 3, Category: domain.CategoryRetail, ClientName: "Shop A"}},
		"2025-10-11": {{AdvertID: 3, Category: domain.CategoryRetail, ClientName: "Shop A"}},
		"2025-10-12": {{AdvertID: 3, Category: domain.CategoryRetail, ClientName: "Shop A"}},
	}})

	resp, err := uc.Execute(context.Background(), &Request{AdvertID: 42, SlotID: 7})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

// Собственные строки объявления не считаются конфликтом
func TestExecute_OwnRowsExcluded(t *testing.T) {
	uc := newTestUseCase(&mockAssignmentRepo{occupants: map[string][]domain.SlotOccupant{
		"2025-10-10": {{AdvertID: 42, Category: domain.CategoryFinance, ClientName: "Acme Corp"}},
		"2025-10-11": {{AdvertID: 42, Category: domain.CategoryFinance, ClientName: "Acme Corp"}},
	}})

	resp, err := uc.Execute(context.Background(), &Request{AdvertID: 42, SlotID: 7})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

// Конфликты собираются по всем датам окна в порядке дат
func TestExecute_CollectsAllConflicts(t *testing.T) {
	uc := newTestUseCase(&mockAssignmentRepo{occupants: map[string][]domain.SlotOccupant{
		"2025-10-10": {
			{AdvertID: 1, Category: domain.CategoryRetail, ClientName: "Shop A"},
			{AdvertID: 2, Category: domain.CategoryHealth, ClientName: "Clinic B"},
		},
		"2025-10-12": {
			{AdvertID: 3, Category: domain.CategoryFinance, ClientName: "Rival Bank"},
		},
	}})

	resp, err := uc.Execute(context.Background(), &Request{AdvertID: 42, SlotID: 7})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 2)
	assert.Equal(t, domain.ConflictCapacity, resp.Conflicts[0].Kind)
	assert.Equal(t, testDate(10), resp.Conflicts[0].Date)
	assert.Equal(t, domain.ConflictCategory, resp.Conflicts[1].Kind)
	assert.Equal(t, testDate(12), resp.Conflicts[1].Date)
}

func TestExecute_AdvertNotFound(t *testing.T) {
	uc := NewUseCase(
		&mockAdvertRepo{err: advertRepo.ErrAdvertNotFound},
		&mockSlotRepo{slot: testSlot()},
		&mockAssignmentRepo{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{AdvertID: 99, SlotID: 7})

	assert.ErrorIs(t, err, ErrAdvertNotFound)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(
		&mockAdvertRepo{advert: testAdvert()},
		&mockSlotRepo{err: timeslotRepo.ErrSlotNotFound},
		&mockAssignmentRepo{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{AdvertID: 42, SlotID: 99})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockAssignmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{AdvertID: 0, SlotID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AdvertID: 42, SlotID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

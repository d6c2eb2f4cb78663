package lifecycle_sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	"github.com/m04kA/SMC-AdsService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type mockAdvertRepo struct {
	adverts   []*domain.Advert
	listErr   error
	updateErr map[int64]error
	updates   []lifecycleUpdate
}

type lifecycleUpdate struct {
	id            int64
	remainingDays int
	status        domain.AdvertStatus
}

func (m *mockAdvertRepo) ListActive(ctx context.Context) ([]*domain.Advert, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.adverts, nil
}

func (m *mockAdvertRepo) UpdateLifecycle(ctx context.Context, id int64, remainingDays int, status domain.AdvertStatus) error {
	if err, ok := m.updateErr[id]; ok {
		return err
	}
	m.updates = append(m.updates, lifecycleUpdate{id, remainingDays, status})
	return nil
}

type mockAssignmentRepo struct {
	pruned    int64
	pruneErr  error
	cutoffArg time.Time
}

func (m *mockAssignmentRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.cutoffArg = cutoff
	if m.pruneErr != nil {
		return 0, m.pruneErr
	}
	return m.pruned, nil
}

func testDate(d int) time.Time {
	return time.Date(2025, time.October, d, 0, 0, 0, 0, time.UTC)
}

func activeAdvert(id int64, endDay int, remaining *int) *domain.Advert {
	endDate := testDate(endDay)
	return &domain.Advert{
		ID:            id,
		ClientName:    "Client",
		Category:      domain.CategoryRetail,
		EndDate:       &endDate,
		RemainingDays: remaining,
		Status:        domain.StatusActive,
	}
}

func newTestUseCase(adverts *mockAdvertRepo, assignments *mockAssignmentRepo, retention int) *UseCase {
	uc := NewUseCase(adverts, assignments, retention, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testDate(15)}
	return uc
}

func TestExecute_RecomputesRemainingDays(t *testing.T) {
	adverts := &mockAdvertRepo{adverts: []*domain.Advert{
		activeAdvert(1, 20, ptr.Ptr(7)), // должно стать 5
		activeAdvert(2, 16, ptr.Ptr(1)), // уже верно, no-op
	}}
	assignments := &mockAssignmentRepo{pruned: 4}
	uc := newTestUseCase(adverts, assignments, 60)

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Checked)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Expired)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, int64(4), result.Pruned)

	require.Len(t, adverts.updates, 1)
	assert.Equal(t, int64(1), adverts.updates[0].id)
	assert.Equal(t, 5, adverts.updates[0].remainingDays)
	assert.Equal(t, domain.StatusActive, adverts.updates[0].status)
}

// Исчерпание срока: remaining_days=0 и статус expired одним обновлением
func TestExecute_ExpiresFinishedAdverts(t *testing.T) {
	adverts := &mockAdvertRepo{adverts: []*domain.Advert{
		activeAdvert(1, 14, ptr.Ptr(1)), // end_date вчера
		activeAdvert(2, 15, ptr.Ptr(1)), // end_date сегодня
	}}
	uc := newTestUseCase(adverts, &mockAssignmentRepo{}, 60)

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 2, result.Expired)

	for _, upd := range adverts.updates {
		assert.Equal(t, 0, upd.remainingDays)
		assert.Equal(t, domain.StatusExpired, upd.status)
	}
}

// Активная строка с уже верным remaining_days=0 все равно переводится
// в expired: сравнение одного счетчика не должно блокировать запись
func TestExecute_RepairsActiveAdvertWithZeroRemaining(t *testing.T) {
	adverts := &mockAdvertRepo{adverts: []*domain.Advert{
		activeAdvert(1, 10, ptr.Ptr(0)), // end_date в прошлом, счетчик уже 0
	}}
	uc := newTestUseCase(adverts, &mockAssignmentRepo{}, 60)

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Expired)

	require.Len(t, adverts.updates, 1)
	assert.Equal(t, int64(1), adverts.updates[0].id)
	assert.Equal(t, 0, adverts.updates[0].remainingDays)
	assert.Equal(t, domain.StatusExpired, adverts.updates[0].status)
}

// Повторный проход в тот же день ничего не меняет
func TestExecute_SecondRunIsNoop(t *testing.T) {
	adverts := &mockAdvertRepo{adverts: []*domain.Advert{
		activeAdvert(1, 20, ptr.Ptr(5)),
	}}
	uc := newTestUseCase(adverts, &mockAssignmentRepo{}, 60)

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Updated)
	assert.Empty(t, adverts.updates)
}

// Ошибка одного объявления не прерывает проход
func TestExecute_IsolatesPerAdvertFailures(t *testing.T) {
	adverts := &mockAdvertRepo{
		adverts: []*domain.Advert{
			activeAdvert(1, 20, ptr.Ptr(7)),
			activeAdvert(2, 21, ptr.Ptr(7)),
			activeAdvert(3, 22, ptr.Ptr(7)),
		},
		updateErr: map[int64]error{2: errors.New("deadlock")},
	}
	uc := newTestUseCase(adverts, &mockAssignmentRepo{}, 60)

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, result.Checked)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 1, result.Failed)
}

// Активное объявление без end_date фиксируется как сбой и пропускается
func TestExecute_SkipsAdvertWithoutEndDate(t *testing.T) {
	broken := &domain.Advert{ID: 1, Status: domain.StatusActive}
	adverts := &mockAdvertRepo{adverts: []*domain.Advert{broken}}
	uc := newTestUseCase(adverts, &mockAssignmentRepo{}, 60)

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, adverts.updates)
}

func TestExecute_PruneCutoff(t *testing.T) {
	assignments := &mockAssignmentRepo{}
	uc := newTestUseCase(&mockAdvertRepo{}, assignments, 60)

	_, err := uc.Execute(context.Background())

	require.NoError(t, err)
	// Сегодня 2025-10-15, retention 60 → cutoff 2025-08-16
	assert.Equal(t, time.Date(2025, time.August, 16, 0, 0, 0, 0, time.UTC), assignments.cutoffArg)
}

// Сбой чистки не отменяет результат пересчета
func TestExecute_PruneFailureDoesNotFailSweep(t *testing.T) {
	adverts := &mockAdvertRepo{adverts: []*domain.Advert{
		activeAdvert(1, 20, ptr.Ptr(7)),
	}}
	assignments := &mockAssignmentRepo{pruneErr: errors.New("timeout")}
	uc := newTestUseCase(adverts, assignments, 60)

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, int64(0), result.Pruned)
}

func TestExecute_ListFailure(t *testing.T) {
	adverts := &mockAdvertRepo{listErr: errors.New("connection refused")}
	uc := newTestUseCase(adverts, &mockAssignmentRepo{}, 60)

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

// Горизонт хранения ограничивается допустимым коридором
func TestNewUseCase_ClampsRetention(t *testing.T) {
	uc := NewUseCase(&mockAdvertRepo{}, &mockAssignmentRepo{}, 5, noopLogger{})
	assert.Equal(t, domain.MinRetentionDays, uc.retentionDays)

	uc = NewUseCase(&mockAdvertRepo{}, &mockAssignmentRepo{}, 500, noopLogger{})
	assert.Equal(t, domain.MaxRetentionDays, uc.retentionDays)
}

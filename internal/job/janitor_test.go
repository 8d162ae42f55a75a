package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/entity"
)

type fakeStore struct {
	stuck    []*entity.Contract
	listErr  error
	failErr  map[uuid.UUID]error
	failed   []uuid.UUID
	cutoffAt time.Time
}

func (f *fakeStore) ListStuck(_ context.Context, cutoff time.Time) ([]*entity.Contract, error) {
	f.cutoffAt = cutoff
	return f.stuck, f.listErr
}

func (f *fakeStore) MarkFailed(_ context.Context, id uuid.UUID, kind, message string) error {
	if err := f.failErr[id]; err != nil {
		return err
	}
	if kind != staleKind {
		return errors.New("unexpected kind " + kind)
	}
	f.failed = append(f.failed, id)
	return nil
}

func stuckContract(status constants.ContractStatus) *entity.Contract {
	return &entity.Contract{ID: uuid.New(), Status: status}
}

func TestSweepFailsStaleContracts(t *testing.T) {
	store := &fakeStore{stuck: []*entity.Contract{
		stuckContract(constants.StatusExtracting),
		stuckContract(constants.StatusSummarizing),
	}}
	j, err := NewJanitor(store, "@every 5m", 30*time.Minute, nil)
	require.NoError(t, err)

	n, err := j.Sweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Len(t, store.failed, 2)

	// cutoff is staleAfter in the past
	require.WithinDuration(t, time.Now().Add(-30*time.Minute), store.cutoffAt, time.Second)
}

func TestSweepNothingStuck(t *testing.T) {
	store := &fakeStore{}
	j, err := NewJanitor(store, "@every 5m", time.Hour, nil)
	require.NoError(t, err)

	n, err := j.Sweep(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSweepContinuesPastMarkFailure(t *testing.T) {
	bad := stuckContract(constants.StatusExtracting)
	good := stuckContract(constants.StatusSummarizing)
	store := &fakeStore{
		stuck:   []*entity.Contract{bad, good},
		failErr: map[uuid.UUID]error{bad.ID: errors.New("row gone")},
	}
	j, err := NewJanitor(store, "@every 5m", time.Hour, nil)
	require.NoError(t, err)

	n, err := j.Sweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []uuid.UUID{good.ID}, store.failed)
}

func TestSweepListError(t *testing.T) {
	store := &fakeStore{listErr: errors.New("db down")}
	j, err := NewJanitor(store, "@every 5m", time.Hour, nil)
	require.NoError(t, err)

	_, err = j.Sweep(context.Background())
	require.Error(t, err)
}

func TestNewJanitorRejectsBadSchedule(t *testing.T) {
	_, err := NewJanitor(&fakeStore{}, "not a schedule", time.Hour, nil)
	require.Error(t, err)
}

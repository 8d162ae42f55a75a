package async

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/pipeline"
	"github.com/ebolowa/contract-insight/internal/summarize"
)

// queueStore backs the summarize stage with just enough state for queued
// generations: extracted contracts with text already persisted.
type queueStore struct {
	mu        sync.Mutex
	contracts map[uuid.UUID]*entity.Contract
	texts     map[uuid.UUID]string
}

func newQueueStore() *queueStore {
	return &queueStore{
		contracts: make(map[uuid.UUID]*entity.Contract),
		texts:     make(map[uuid.UUID]string),
	}
}

func (s *queueStore) addExtracted(text string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.contracts[id] = &entity.Contract{ID: id, Status: constants.StatusExtracted}
	s.texts[id] = text
	return id
}

func (s *queueStore) status(id uuid.UUID) constants.ContractStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contracts[id].Status
}

func (s *queueStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contracts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *queueStore) GetText(_ context.Context, id uuid.UUID) (string, constants.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.texts[id], constants.LangEnglish, nil
}

func (s *queueStore) SetStatus(_ context.Context, id uuid.UUID, status constants.ContractStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts[id].Status = status
	return nil
}

func (s *queueStore) SaveExtraction(context.Context, uuid.UUID, entity.ExtractedText, bool) error {
	return nil
}

func (s *queueStore) MarkFailed(_ context.Context, id uuid.UUID, kind, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.contracts[id]
	c.Status = constants.StatusFailed
	c.ErrorKind = kind
	c.ErrorMessage = message
	return nil
}

func (s *queueStore) MarkCompleted(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts[id].Status = constants.StatusCompleted
	return nil
}

type queueSummaries struct {
	mu   sync.Mutex
	rows int
}

func (s *queueSummaries) Create(_ context.Context, contractID uuid.UUID, tier constants.Tier, draft entity.SummaryDraft) (*entity.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows++
	return &entity.Summary{
		ID:         uuid.New(),
		ContractID: contractID,
		Tier:       tier,
		Content:    draft.Content,
		WordCount:  draft.WordCount,
		ModelName:  draft.ModelName,
		CreatedAt:  time.Now(),
	}, nil
}

type slowModel struct {
	delay time.Duration
}

func (m *slowModel) Generate(ctx context.Context, _ string) (string, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return strings.TrimSpace(strings.Repeat("The employee shall receive a salary each month. ", 15)), nil
}

func (m *slowModel) ModelName() string { return "stub-model" }

func newQueueRig(delay time.Duration, opts ...Option) (*SummaryQueue, *queueStore, *queueSummaries) {
	store := newQueueStore()
	sums := &queueSummaries{}
	gen := summarize.NewGenerator(&slowModel{delay: delay}, summarize.Config{}, nil)
	stage := pipeline.NewSummarizeStage(store, sums, gen, pipeline.SummarizeConfig{}, nil)
	proc := pipeline.NewProcessor(nil, nil, stage, store)
	return NewSummaryQueue(proc, nil, opts...), store, sums
}

const queueText = "The employment agreement sets a monthly salary, describes the position, " +
	"and regulates termination with one month of notice. Benefits include health coverage."

func TestEnqueueAndResult(t *testing.T) {
	q, store, sums := newQueueRig(0, WithWorkers(2))
	defer q.Shutdown(context.Background())
	id := store.addExtracted(queueText)

	ticket, err := q.Enqueue(context.Background(), Job{ContractID: id, Tier: constants.TierBrief})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, ticket.ID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sum, err := ticket.Result(ctx)
	require.NoError(t, err)
	require.Equal(t, id, sum.ContractID)
	require.Equal(t, constants.StatusCompleted, store.status(id))
	require.Equal(t, 1, sums.rows)
}

func TestEnqueueMissingContractSurfacesError(t *testing.T) {
	q, _, _ := newQueueRig(0)
	defer q.Shutdown(context.Background())

	ticket, err := q.Enqueue(context.Background(), Job{ContractID: uuid.New(), Tier: constants.TierBrief})
	require.NoError(t, err, "enqueue accepts the job; validation happens in the worker")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = ticket.Result(ctx)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestResultRespectsCallerContext(t *testing.T) {
	q, store, _ := newQueueRig(500*time.Millisecond, WithWorkers(1))
	defer q.Shutdown(context.Background())
	id := store.addExtracted(queueText)

	ticket, err := q.Enqueue(context.Background(), Job{ContractID: id, Tier: constants.TierBrief})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = ticket.Result(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// the job itself still finishes
	<-ticket.Done()
	sum, err := ticket.Result(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sum)
}

func TestShutdownDrainsQueuedJobs(t *testing.T) {
	q, store, sums := newQueueRig(0, WithWorkers(1))
	var tickets []*Ticket
	for i := 0; i < 5; i++ {
		id := store.addExtracted(queueText)
		ticket, err := q.Enqueue(context.Background(), Job{ContractID: id, Tier: constants.TierBrief})
		require.NoError(t, err)
		tickets = append(tickets, ticket)
	}

	q.Shutdown(context.Background())

	for _, ticket := range tickets {
		select {
		case <-ticket.Done():
		default:
			t.Fatal("shutdown returned before draining the queue")
		}
	}
	require.Equal(t, 5, sums.rows)
}

func TestEnqueueBackpressureDoesNotStallOthers(t *testing.T) {
	// one slow worker and a single-slot channel force concurrent enqueues into
	// the blocking backpressure path; every send must still land and Shutdown
	// must drain them all without a send on the closed channel
	q, store, sums := newQueueRig(20*time.Millisecond, WithWorkers(1), WithQueueSize(1))

	const jobs = 8
	tickets := make(chan *Ticket, jobs)
	errs := make(chan error, jobs)
	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := store.addExtracted(queueText)
			ticket, err := q.Enqueue(context.Background(), Job{ContractID: id, Tier: constants.TierBrief})
			if err != nil {
				errs <- err
				return
			}
			tickets <- ticket
		}()
	}
	wg.Wait()
	close(tickets)
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	n := 0
	for ticket := range tickets {
		select {
		case <-ticket.Done():
		default:
			t.Fatal("shutdown returned with an undrained ticket")
		}
		n++
	}
	require.Equal(t, jobs, n)
	require.Equal(t, jobs, sums.rows)
}

func TestEnqueueAfterShutdownFails(t *testing.T) {
	q, store, _ := newQueueRig(0)
	q.Shutdown(context.Background())

	id := store.addExtracted(queueText)
	_, err := q.Enqueue(context.Background(), Job{ContractID: id, Tier: constants.TierBrief})
	require.Error(t, err)
}

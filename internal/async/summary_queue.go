package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/ebolowa/contract-insight/internal/pipeline"
)

type queued struct {
	job    Job
	ticket *Ticket
}

// SummaryQueue fans queued generations out to a fixed worker pool. Workers
// call the processor, which still enforces the per-contract lock, so two
// queued jobs for the same contract cannot interleave.
type SummaryQueue struct {
	proc    *pipeline.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan queued
	wg   sync.WaitGroup
	once sync.Once

	mu      sync.Mutex
	closed  bool
	senders sync.WaitGroup
}

type Option func(*SummaryQueue)

func WithWorkers(n int) Option {
	return func(q *SummaryQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *SummaryQueue) {
		if n > 0 {
			q.ch = make(chan queued, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(q *SummaryQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewSummaryQueue(proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *SummaryQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &SummaryQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan queued, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *SummaryQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("summary worker started", "worker_id", workerID)

				for item := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					sum, err := q.proc.GenerateSummary(ctx, item.job.ContractID, item.job.Tier)
					cancel()

					item.ticket.complete(sum, err)
					if err != nil {
						q.logger.Error("queued generation failed",
							"worker_id", workerID, "contract_id", item.job.ContractID, "tier", item.job.Tier, "error", err)
					} else {
						q.logger.Info("queued generation done",
							"worker_id", workerID, "contract_id", item.job.ContractID, "tier", item.job.Tier,
							"wait_ms", time.Since(item.job.SubmittedAt).Milliseconds())
					}
				}

				q.logger.Info("summary worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

var errShutdown = errors.New("queue is shutting down")

func (q *SummaryQueue) Enqueue(_ context.Context, job Job) (*Ticket, error) {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	ticket := newTicket(job)

	// the lock only guards the closed check; a backpressured send must not
	// hold it, or a full queue would stall every other Enqueue and Shutdown
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "contract_id", job.ContractID)
		return nil, errShutdown
	}
	q.senders.Add(1)
	q.mu.Unlock()
	defer q.senders.Done()

	select {
	case q.ch <- queued{job: job, ticket: ticket}:
		q.logger.Info("queued summary generation", "ticket_id", ticket.ID, "contract_id", job.ContractID, "tier", job.Tier)
	default:
		q.logger.Warn("queue full, applying backpressure", "contract_id", job.ContractID)
		q.ch <- queued{job: job, ticket: ticket}
	}
	return ticket, nil
}

func (q *SummaryQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	// in-flight sends must land before the channel closes; workers keep
	// draining, so blocked senders finish
	q.senders.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

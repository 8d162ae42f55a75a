// Package async runs summary generation off the request path. Callers get a
// Ticket back immediately instead of holding a connection for the full model
// round-trip.
package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/entity"
)

// Job is one queued summary generation.
type Job struct {
	ContractID  uuid.UUID
	Tier        constants.Tier
	SubmittedAt time.Time
}

// Ticket is the future handle for a queued job. Done is closed when the job
// finishes; Summary and Err are valid only after that.
type Ticket struct {
	ID   uuid.UUID
	Job  Job
	done chan struct{}

	summary *entity.Summary
	err     error
}

func newTicket(job Job) *Ticket {
	return &Ticket{ID: uuid.New(), Job: job, done: make(chan struct{})}
}

// Done returns a channel closed on completion.
func (t *Ticket) Done() <-chan struct{} { return t.done }

// Result returns the outcome. It blocks until the job completes or ctx ends.
func (t *Ticket) Result(ctx context.Context) (*entity.Summary, error) {
	select {
	case <-t.done:
		return t.summary, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (t *Ticket) complete(sum *entity.Summary, err error) {
	t.summary = sum
	t.err = err
	close(t.done)
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) (*Ticket, error)
	Shutdown(ctx context.Context)
}

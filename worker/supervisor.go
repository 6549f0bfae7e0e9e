package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/taigrr/colorhash"
	"golang.org/x/sync/semaphore"
)

// DefaultPollInterval is the pause between two polling passes over a batch.
const DefaultPollInterval = time.Millisecond

// Config controls how a Supervisor starts and joins workers.
type Config struct {
	// MaxWorkers caps the number of concurrently running workers.
	// Zero or a negative value means unbounded.
	MaxWorkers int
	// PollInterval is the pause between polling passes. Zero uses DefaultPollInterval.
	PollInterval time.Duration
	// Verbose logs every worker start and completion.
	Verbose bool
}

// Supervisor spawns jobs as independent workers and polls them to completion.
// A Supervisor may be reused for several batches, one after another or concurrently.
type Supervisor struct {
	slots   *semaphore.Weighted
	pause   time.Duration
	verbose bool
}

// New returns a Supervisor configured by cfg.
func New(cfg Config) *Supervisor {
	s := &Supervisor{
		pause:   cfg.PollInterval,
		verbose: cfg.Verbose,
	}
	if s.pause <= 0 {
		s.pause = DefaultPollInterval
	}
	if cfg.MaxWorkers > 0 {
		s.slots = semaphore.NewWeighted(int64(cfg.MaxWorkers))
	}
	return s
}

// Handle refers to one spawned worker.
type Handle struct {
	ID   uuid.UUID
	Name string
	// Bucket is a short stable tag derived from the job name, used in logs.
	Bucket int

	done chan Result
}

func (h *Handle) String() string {
	return fmt.Sprintf("%03d %s", h.Bucket, h.Name)
}

// bucketOf spreads job names over 1000 tags the same way for every run.
func bucketOf(name string) int {
	return int(colorhash.HashString(name) % 1000)
}

// Spawn starts job on its own goroutine. When MaxWorkers is set, Spawn waits
// for a free slot. It fails with ErrSpawn if ctx is done before the worker starts.
func (s *Supervisor) Spawn(ctx context.Context, job Job) (*Handle, error) {
	if s.slots != nil {
		if err := s.slots.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSpawn, job.Name(), err)
		}
	} else if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSpawn, job.Name(), err)
	}

	h := &Handle{
		ID:     uuid.New(),
		Name:   job.Name(),
		Bucket: bucketOf(job.Name()),
		done:   make(chan Result, 1),
	}
	if s.verbose {
		log.Printf("worker %s started", h)
	}

	go func() {
		if s.slots != nil {
			defer s.slots.Release(1)
		}
		r := runIsolated(job)
		r.Handle = h.ID
		r.Job = h.Name
		h.done <- r
	}()
	return h, nil
}

// runIsolated runs job and converts a panic into an abnormal termination.
func runIsolated(job Job) (r Result) {
	defer func() {
		if p := recover(); p != nil {
			r = Result{
				Outcome: AbnormalTermination,
				Err:     fmt.Errorf("%w: %v", ErrAbnormalTermination, p),
			}
		}
	}()
	r = job.Run()
	if r.Outcome != Success && r.Outcome != NoMatchOrNormalFailure {
		// Jobs only signal two values; anything else is treated as a crash.
		r.Outcome = AbnormalTermination
	}
	return r
}

// Start spawns every job and returns the resulting batch. Jobs that cannot be
// spawned are logged and left out of the batch.
func (s *Supervisor) Start(ctx context.Context, jobs []Job) *Batch {
	b := &Batch{
		handles:  make([]*Handle, 0, len(jobs)),
		reported: make(map[uuid.UUID]struct{}, len(jobs)),
	}
	for _, job := range jobs {
		h, err := s.Spawn(ctx, job)
		if err != nil {
			log.Printf("Process creation failed: %v", err)
			b.dropped++
			continue
		}
		b.handles = append(b.handles, h)
	}
	return b
}

// Wait polls b until every handle has been reported and returns the tally.
// onComplete, if non-nil, is called once per result in completion order.
func (s *Supervisor) Wait(b *Batch, onComplete func(Result)) Tally {
	t := Tally{Spawned: b.Len(), Dropped: b.dropped}
	for b.Pending() > 0 {
		for _, r := range b.Poll() {
			if s.verbose {
				log.Printf("worker %03d %s finished: %s", bucketOf(r.Job), r.Job, r.Outcome)
			}
			t.add(r)
			if onComplete != nil {
				onComplete(r)
			}
		}
		if b.Pending() == 0 {
			break
		}
		time.Sleep(s.pause)
	}
	return t
}

// Run starts jobs and waits for all of them.
func (s *Supervisor) Run(ctx context.Context, jobs []Job, onComplete func(Result)) Tally {
	return s.Wait(s.Start(ctx, jobs), onComplete)
}

package worker

import (
	"fmt"

	"github.com/google/uuid"
)

// Outcome classifies how a job ended.
type Outcome int

const (
	// Success means the job ran to completion and signaled its intended result.
	Success Outcome = iota
	// NoMatchOrNormalFailure means the job ran to completion but failed or found nothing.
	NoMatchOrNormalFailure
	// AbnormalTermination means the job crashed before reporting.
	AbnormalTermination
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case NoMatchOrNormalFailure:
		return "no-match-or-failure"
	case AbnormalTermination:
		return "abnormal-termination"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the only value a job passes back to its supervisor.
type Result struct {
	// Handle and Job are filled in by the supervisor.
	Handle uuid.UUID
	Job    string

	Outcome Outcome
	// Note is a user-facing notification printed when the job is reported.
	Note string
	Err  error
}

// Failed reports whether the result counts towards a batch's failures.
func (r Result) Failed() bool {
	return r.Outcome != Success
}

// Job is one unit of work run by a single worker.
type Job interface {
	Name() string
	Run() Result
}

type funcJob struct {
	name string
	fn   func() Result
}

func (j funcJob) Name() string { return j.name }
func (j funcJob) Run() Result  { return j.fn() }

// NewJob adapts a function into a Job.
func NewJob(name string, fn func() Result) Job {
	return funcJob{name: name, fn: fn}
}

// Succeeded builds a successful result with an optional notification.
func Succeeded(note string) Result {
	return Result{Outcome: Success, Note: note}
}

// Failure builds a normal-failure result. err may be nil for a plain no-match.
func Failure(err error) Result {
	return Result{Outcome: NoMatchOrNormalFailure, Err: err}
}

package worker

import "github.com/google/uuid"

// Batch is the set of handles spawned together for one invocation.
// It is owned by the goroutine that started it and is not safe for concurrent use.
type Batch struct {
	handles  []*Handle
	reported map[uuid.UUID]struct{}
	dropped  int
}

// Len returns the number of workers in the batch. Dropped jobs are not counted.
func (b *Batch) Len() int {
	return len(b.handles)
}

// Dropped returns the number of jobs that could not be spawned.
func (b *Batch) Dropped() int {
	return b.dropped
}

// Pending returns the number of workers not yet reported.
func (b *Batch) Pending() int {
	return len(b.handles) - len(b.reported)
}

// Poll returns the results of workers that finished since the previous call.
// It never blocks and never reports a handle twice.
func (b *Batch) Poll() []Result {
	var done []Result
	for _, h := range b.handles {
		if _, ok := b.reported[h.ID]; ok {
			continue
		}
		select {
		case r := <-h.done:
			b.reported[h.ID] = struct{}{}
			done = append(done, r)
		default:
		}
	}
	return done
}

// Tally aggregates the outcomes of a drained batch.
type Tally struct {
	Spawned   int
	Dropped   int
	Succeeded int
	Failed    int
	Abnormal  int
}

func (t *Tally) add(r Result) {
	switch r.Outcome {
	case Success:
		t.Succeeded++
	case NoMatchOrNormalFailure:
		t.Failed++
	default:
		t.Abnormal++
	}
}

// Failures counts normal failures and abnormal terminations together.
func (t Tally) Failures() int {
	return t.Failed + t.Abnormal
}

// FoundAny reports whether at least one worker succeeded.
func (t Tally) FoundAny() bool {
	return t.Succeeded > 0
}

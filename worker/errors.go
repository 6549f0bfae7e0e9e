package worker

import "errors"

// Sentinel errors for package worker.
var (
	// ErrSpawn is returned when a worker could not be started. The caller
	// drops the job from its batch.
	ErrSpawn = errors.New("worker could not be spawned")

	// ErrAbnormalTermination wraps the value recovered from a panicking job.
	ErrAbnormalTermination = errors.New("worker terminated abnormally")
)

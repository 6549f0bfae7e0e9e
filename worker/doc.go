// Package worker runs batches of independent jobs and joins them without
// blocking on any single one.
//
// A Supervisor spawns every job of a batch on its own goroutine. Jobs share no
// mutable state with the caller or with each other: the only thing a job hands
// back is its Result. The supervisor then polls the batch, pausing briefly
// between passes, until every handle has been reported exactly once.
//
// Outcomes are three-valued:
//   - Success: the job completed and produced its intended result
//   - NoMatchOrNormalFailure: the job completed but failed, or found nothing
//   - AbnormalTermination: the job panicked; always counted as a failure
//
// There is no timeout and no cancellation. The context passed to Spawn only
// decides whether a new worker may start; a running job always runs to its end.
package worker

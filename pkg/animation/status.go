package animation

import "fmt"

// Status represents the lifecycle state of one animation run.
//
//	Created ──start──► Running ──┬──► Completed
//	                             └──► Cancelled
//
// Completed and Cancelled are terminal. Completion fires the run's
// completion callbacks exactly once; cancellation never fires them.
type Status int

const (
	// StatusCreated means the run has been selected but not started.
	StatusCreated Status = iota
	// StatusRunning means the run is registered with the ticker.
	StatusRunning
	// StatusCompleted means the run reached its final keyframe.
	StatusCompleted
	// StatusCancelled means the run was stopped before completing.
	StatusCancelled
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

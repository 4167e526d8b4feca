package jobs

import "strconv"

// Selections is a caller-owned mapping from job id to the worker id picked
// in that job's dropdown. It is plain state, not ambient: the dashboard
// that renders the dropdowns owns one and passes it in, which keeps this
// package pure and testable.
//
// A stored zero means "the dropdown was set back to none" and blocks
// assignment; it is distinct from nil/absent AssignedTo on the wire.
type Selections map[int64]int64

// AssignmentRequest is the payload of the assignment mutation.
type AssignmentRequest struct {
	JobID    int64 `json:"jobId"`
	WorkerID int64 `json:"workerId"`
}

// Select records the dropdown value for a job. WorkerNone and unparsable
// values store zero.
func (s Selections) Select(jobID int64, value string) {
	if value == WorkerNone {
		s[jobID] = 0
		return
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 0 {
		id = 0
	}
	s[jobID] = id
}

// Assignment builds the mutation payload for a job. It fails with
// ErrNoWorkerSelected when no non-zero worker was picked for that job.
func (s Selections) Assignment(jobID int64) (AssignmentRequest, error) {
	workerID := s[jobID]
	if workerID == 0 {
		return AssignmentRequest{}, ErrNoWorkerSelected
	}
	return AssignmentRequest{JobID: jobID, WorkerID: workerID}, nil
}

// Clear empties the whole mapping. Callers invoke it after an acknowledged
// assignment: every pending selection is dropped, not just the assigned
// job's.
func (s Selections) Clear() {
	for k := range s {
		delete(s, k)
	}
}

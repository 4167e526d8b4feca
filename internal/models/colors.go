package models

// StatusColorDefault is returned for any value outside the known lookup
// space. Presentation falls back to it instead of failing.
const StatusColorDefault = "slate"

// StatusColor maps a status-like string to a semantic color tag. Job
// statuses, worker statuses, and priorities share one lookup space on
// purpose: several call sites pass whichever they have and expect a
// single table. Unknown values get the default tag.
func StatusColor(value string) string {
	switch value {
	case string(JobPending):
		return "orange"
	case string(JobAssigned):
		return "blue"
	case string(JobInProgress):
		return "yellow"
	case string(JobCompleted):
		return "green"
	case string(JobCancelled):
		return "red"
	case string(WorkerAvailable):
		return "green"
	case string(WorkerWorking):
		return "red"
	case string(WorkerOffline):
		return "slate"
	case string(PriorityNormal):
		return "blue"
	case string(PriorityHigh):
		return "orange"
	case string(PriorityUrgent):
		return "red"
	default:
		return StatusColorDefault
	}
}

package models

// Denormalization helpers for display-ready shapes. All functions here are
// pure: they never mutate their inputs and return fresh slices.

// JobDetails is a job with its assigned worker and creator attached.
// Worker is nil when the job is unassigned.
type JobDetails struct {
	Job
	Worker  *Worker `json:"worker"`
	Creator *User   `json:"creator"`
}

// WorkerDetails is a worker with its owning user attached.
type WorkerDetails struct {
	Worker
	User *User `json:"user"`
}

// UserByID returns the user with the given id, or nil when absent.
func UserByID(users []User, id int64) *User {
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u
		}
	}
	return nil
}

// WorkerByID returns the worker with the given id, or nil when absent.
func WorkerByID(workers []Worker, id int64) *Worker {
	for i := range workers {
		if workers[i].ID == id {
			w := workers[i]
			return &w
		}
	}
	return nil
}

// JobByID returns the job with the given id, or nil when absent.
func JobByID(jobs []Job, id int64) *Job {
	for i := range jobs {
		if jobs[i].ID == id {
			j := jobs[i]
			return &j
		}
	}
	return nil
}

// JobsByStatus filters jobs by status. No match yields an empty slice.
func JobsByStatus(jobs []Job, status JobStatus) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Status == status {
			out = append(out, j)
		}
	}
	return out
}

// WorkersByStatus filters workers by status. No match yields an empty slice.
func WorkersByStatus(workers []Worker, status WorkerStatus) []Worker {
	out := make([]Worker, 0, len(workers))
	for _, w := range workers {
		if w.Status == status {
			out = append(out, w)
		}
	}
	return out
}

// JobsWithWorkerDetails attaches the assigned worker (nil when unassigned)
// and the creator to every job.
func JobsWithWorkerDetails(jobs []Job, workers []Worker, users []User) []JobDetails {
	out := make([]JobDetails, 0, len(jobs))
	for _, j := range jobs {
		d := JobDetails{Job: j, Creator: UserByID(users, j.CreatedBy)}
		if j.AssignedTo != nil {
			d.Worker = WorkerByID(workers, *j.AssignedTo)
		}
		out = append(out, d)
	}
	return out
}

// WorkersWithUserDetails attaches the owning user to every worker.
func WorkersWithUserDetails(workers []Worker, users []User) []WorkerDetails {
	out := make([]WorkerDetails, 0, len(workers))
	for _, w := range workers {
		out = append(out, WorkerDetails{Worker: w, User: UserByID(users, w.UserID)})
	}
	return out
}

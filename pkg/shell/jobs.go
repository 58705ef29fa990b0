package shell

import (
	"sync"

	"github.com/google/uuid"
)

type JobState int

const (
	JobRunning JobState = iota
	JobDone
)

func (s JobState) String() string {
	switch s {
	case JobRunning:
		return "Running"
	case JobDone:
		return "Done"
	}

	return "Unknown"
}

// Job records one background child.
type Job struct {
	ID       string
	Number   int
	PID      int
	Argv     []string
	State    JobState
	ExitCode int
}

// Jobs is the registry of background children. Reaper goroutines mark
// entries done while the interpreter loop reads them, hence the lock.
type Jobs struct {
	mu   sync.Mutex
	next int
	jobs []*Job
}

func NewJobs() *Jobs {
	return &Jobs{next: 1}
}

func (j *Jobs) Add(pid int, argv []string) *Job {
	j.mu.Lock()
	defer j.mu.Unlock()

	job := &Job{
		ID:     uuid.New().String(),
		Number: j.next,
		PID:    pid,
		Argv:   append([]string(nil), argv...),
		State:  JobRunning,
	}

	j.next++
	j.jobs = append(j.jobs, job)
	return job
}

func (j *Jobs) Finish(id string, exitCode int) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, job := range j.jobs {
		if job.ID == id {
			job.State = JobDone
			job.ExitCode = exitCode
			return
		}
	}
}

// Snapshot returns a copy of every record, oldest first.
func (j *Jobs) Snapshot() []Job {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Job, 0, len(j.jobs))
	for _, job := range j.jobs {
		out = append(out, *job)
	}

	return out
}

package scheduler

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"sync"
	"time"
)

// Task is the callback invoked when a job fires.
type Task func(ctx context.Context)

// Job describes a pending one-shot job.
type Job struct {
	Name string
	At   time.Time
}

type job struct {
	name  string
	at    time.Time
	task  Task
	timer *time.Timer
}

// Scheduler runs named one-shot jobs at absolute instants. Job names are
// unique while the job is pending; cancellation works by exact name or by
// pattern over all pending names. The registry is in-memory only, callers
// re-register jobs from storage after a restart.
type Scheduler struct {
	mu      sync.Mutex
	jobs    map[string]*job
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make(map[string]*job),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Schedule registers task to run once at the given instant. Instants in the
// past fire immediately. Registering a name that is still pending is an error.
func (s *Scheduler) Schedule(name string, at time.Time, task Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return fmt.Errorf("scheduler is stopped")
	}
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %q is already scheduled", name)
	}

	j := &job{name: name, at: at, task: task}
	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}
	j.timer = time.AfterFunc(delay, func() { s.fire(name) })
	s.jobs[name] = j

	return nil
}

// fire runs the job's task if it is still registered. A job cancelled between
// its timer expiring and this call is a no-op.
func (s *Scheduler) fire(name string) {
	s.mu.Lock()
	j, ok := s.jobs[name]
	if ok {
		delete(s.jobs, name)
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	log.Printf("Running job %s (scheduled for %s)", j.name, j.at.Format(time.RFC3339))
	j.task(s.ctx)
}

// Cancel removes the named job. Returns false if no such job is pending.
func (s *Scheduler) Cancel(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[name]
	if !ok {
		return false
	}
	j.timer.Stop()
	delete(s.jobs, name)
	return true
}

// CancelMatching removes every pending job whose name matches the pattern and
// returns how many were cancelled.
func (s *Scheduler) CancelMatching(pattern *regexp.Regexp) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancelled := 0
	for name, j := range s.jobs {
		if pattern.MatchString(name) {
			j.timer.Stop()
			delete(s.jobs, name)
			cancelled++
		}
	}
	return cancelled
}

// Has reports whether a job with the given name is pending.
func (s *Scheduler) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[name]
	return ok
}

// Jobs returns the pending jobs, soonest first.
func (s *Scheduler) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, Job{Name: j.name, At: j.at})
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].At.Before(jobs[k].At) })
	return jobs
}

// Stop cancels every pending job and the context passed to running tasks.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	for name, j := range s.jobs {
		j.timer.Stop()
		delete(s.jobs, name)
	}
	s.stopped = true
	s.mu.Unlock()

	s.cancel()
	log.Println("Scheduler stopped")
}

package scheduler

import (
	"context"
	"regexp"
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduleFiresOnce(t *testing.T) {
	s := New()
	defer s.Stop()

	fired := make(chan struct{}, 1)
	err := s.Schedule("job1", time.Now().Add(20*time.Millisecond), func(ctx context.Context) {
		fired <- struct{}{}
	})
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("job did not fire")
	}

	if s.Has("job1") {
		t.Error("fired job should no longer be pending")
	}
}

func TestScheduleRejectsDuplicateName(t *testing.T) {
	s := New()
	defer s.Stop()

	at := time.Now().Add(time.Hour)
	if err := s.Schedule("dup", at, func(ctx context.Context) {}); err != nil {
		t.Fatalf("first Schedule error: %v", err)
	}
	if err := s.Schedule("dup", at, func(ctx context.Context) {}); err == nil {
		t.Fatal("expected error on duplicate name")
	}
}

func TestPastInstantFiresImmediately(t *testing.T) {
	s := New()
	defer s.Stop()

	fired := make(chan struct{}, 1)
	if err := s.Schedule("past", time.Now().Add(-time.Minute), func(ctx context.Context) {
		fired <- struct{}{}
	}); err != nil {
		t.Fatalf("Schedule error: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("past job did not fire immediately")
	}
}

func TestCancelPreventsFiring(t *testing.T) {
	s := New()
	defer s.Stop()

	var fired atomic.Bool
	if err := s.Schedule("c1", time.Now().Add(30*time.Millisecond), func(ctx context.Context) {
		fired.Store(true)
	}); err != nil {
		t.Fatalf("Schedule error: %v", err)
	}

	if !s.Cancel("c1") {
		t.Fatal("Cancel returned false for pending job")
	}
	if s.Cancel("c1") {
		t.Error("second Cancel should return false")
	}

	time.Sleep(80 * time.Millisecond)
	if fired.Load() {
		t.Error("cancelled job fired")
	}
}

func TestCancelMatching(t *testing.T) {
	s := New()
	defer s.Stop()

	at := time.Now().Add(time.Hour)
	noop := func(ctx context.Context) {}
	names := []string{
		"todo_user_job_aaaa1111",
		"remind_user_job_aaaa1111",
		"todo_user_job_bbbb2222",
	}
	for _, name := range names {
		if err := s.Schedule(name, at, noop); err != nil {
			t.Fatalf("Schedule %s: %v", name, err)
		}
	}

	n := s.CancelMatching(regexp.MustCompile(`.*aaaa1111`))
	if n != 2 {
		t.Fatalf("CancelMatching = %d, want 2", n)
	}
	if s.Has("todo_user_job_aaaa1111") || s.Has("remind_user_job_aaaa1111") {
		t.Error("matching jobs still pending")
	}
	if !s.Has("todo_user_job_bbbb2222") {
		t.Error("non-matching job was cancelled")
	}

	if n := s.CancelMatching(regexp.MustCompile(`.*cccc3333`)); n != 0 {
		t.Errorf("CancelMatching on no matches = %d, want 0", n)
	}
}

func TestJobsOrderedByInstant(t *testing.T) {
	s := New()
	defer s.Stop()

	now := time.Now()
	noop := func(ctx context.Context) {}
	s.Schedule("later", now.Add(2*time.Hour), noop)
	s.Schedule("sooner", now.Add(time.Hour), noop)

	jobs := s.Jobs()
	if len(jobs) != 2 {
		t.Fatalf("len(Jobs()) = %d, want 2", len(jobs))
	}
	if jobs[0].Name != "sooner" || jobs[1].Name != "later" {
		t.Errorf("unexpected order: %s, %s", jobs[0].Name, jobs[1].Name)
	}
}

func TestStopRejectsNewJobs(t *testing.T) {
	s := New()
	s.Schedule("j", time.Now().Add(time.Hour), func(ctx context.Context) {})
	s.Stop()

	if len(s.Jobs()) != 0 {
		t.Error("Stop should clear pending jobs")
	}
	if err := s.Schedule("k", time.Now().Add(time.Hour), func(ctx context.Context) {}); err == nil {
		t.Error("Schedule after Stop should fail")
	}
}

package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// JobFunc is the body of a scheduled job.
type JobFunc func(ctx context.Context) error

type job struct {
	name     string
	schedule string
	run      JobFunc
	entryID  cron.EntryID
}

// Scheduler runs named maintenance jobs on cron schedules.
type Scheduler struct {
	cron    *cron.Cron
	jobs    map[string]*job
	mu      sync.RWMutex
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

// NewScheduler creates a new scheduler
func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		jobs:    make(map[string]*job),
		ctx:     ctx,
		cancel:  cancel,
		timeout: 30 * time.Minute,
	}
}

// AddJob registers fn under name. The schedule accepts 5 or 6 field cron
// expressions and the @hourly/@daily/@weekly/@monthly shortcuts.
func (s *Scheduler) AddJob(name, schedule string, fn JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}

	j := &job{name: name, schedule: schedule, run: fn}
	entryID, err := s.cron.AddFunc(normalizeSchedule(schedule), func() {
		if err := s.execute(j); err != nil {
			log.Printf("Job %s failed: %v", name, err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression '%s': %w", schedule, err)
	}

	j.entryID = entryID
	s.jobs[name] = j
	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.cron.Start()
	s.running = true
	log.Printf("Scheduler started with %d jobs", len(s.jobs))
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.running = false
	log.Println("Scheduler stopped")
}

// Trigger runs a registered job immediately, outside its schedule.
func (s *Scheduler) Trigger(ctx context.Context, name string) error {
	s.mu.RLock()
	j, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("job %q not found", name)
	}
	return j.run(ctx)
}

// NextRun returns the next scheduled run of a job, if any.
func (s *Scheduler) NextRun(name string) *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if j, ok := s.jobs[name]; ok {
		entry := s.cron.Entry(j.entryID)
		if !entry.Next.IsZero() {
			return &entry.Next
		}
	}
	return nil
}

// Jobs returns the registered job names, sorted.
func (s *Scheduler) Jobs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRunning returns whether the scheduler is running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *Scheduler) execute(j *job) error {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := j.run(ctx)
	log.Printf("Job %s finished in %s", j.name, time.Since(start))
	return err
}

func normalizeSchedule(schedule string) string {
	schedule = strings.TrimSpace(schedule)

	switch schedule {
	case "@hourly":
		return "0 0 * * * *"
	case "@daily", "@midnight":
		return "0 0 0 * * *"
	case "@weekly":
		return "0 0 0 * * 0"
	case "@monthly":
		return "0 0 0 1 * *"
	}

	// 5-field expressions get a leading seconds field.
	if len(strings.Fields(schedule)) == 5 {
		return "0 " + schedule
	}
	return schedule
}

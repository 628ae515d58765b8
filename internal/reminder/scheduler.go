// Package reminder implements the time-window reminder scan. A background
// loop polls today's task bucket and fires a desktop notification for each
// pending task whose scheduled time is 4 to 5 minutes away. Each task is
// reminded at most once; the delivered state is persisted through the
// storage Reminded flag, so it survives restarts.
package reminder

import (
	"fmt"
	"sync"
	"time"

	"daybook/internal/logger"
	"daybook/internal/notify"
	"daybook/internal/storage"
)

const (
	// The firing window: scheduled time more than windowMin and at most
	// windowMax in the future. A task whose window is skipped entirely by
	// tick timing never fires; there is no catch-up.
	windowMin = 4 * time.Minute
	windowMax = 5 * time.Minute

	// DefaultInterval is half the window width, so at least one tick always
	// lands inside a task's one-minute firing window even with jitter.
	DefaultInterval = 30 * time.Second
)

// Config tunes the scheduler. The zero value gives a silent scheduler with
// the default scan interval.
type Config struct {
	Interval time.Duration      // scan period; DefaultInterval when <= 0
	Sound    bool               // play the platform alert sound when firing
	OnFire   func(storage.Task) // optional hook, called after each delivery
}

// Scheduler owns the periodic reminder scan.
type Scheduler struct {
	store    *storage.Storage
	notifier notify.Notifier
	cfg      Config

	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a scheduler over the given store and notifier.
func New(store *storage.Storage, notifier notify.Notifier, cfg Config) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &Scheduler{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the scan loop. Calling Start twice is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true
	go s.loop()
}

// Stop terminates the loop and waits for it to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopCh)
	s.mu.Unlock()
	<-s.doneCh
}

func (s *Scheduler) loop() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CheckAt(s.store.Now())
		case <-s.stopCh:
			return
		}
	}
}

// CheckAt runs one scan as of the given instant and returns the tasks whose
// reminders fired. Only today's bucket is considered; tasks on any other day
// never fire, and a window missed while the process was not running is not
// backfilled.
func (s *Scheduler) CheckAt(now time.Time) []storage.Task {
	today := now.Format(storage.DayKey)

	var fired []storage.Task
	for _, task := range s.store.TasksFor(today) {
		if task.Done || task.Reminded || task.Time == "" {
			continue
		}

		scheduled, err := scheduledInstant(today, task.Time, now.Location())
		if err != nil {
			logger.Warn("unparseable task time", "day", today, "id", task.ID, "time", task.Time)
			continue
		}

		diff := scheduled.Sub(now)
		if diff <= windowMin || diff > windowMax {
			continue
		}

		s.deliver(task)
		if err := s.store.MarkReminded(today, task.ID); err != nil {
			// The task stays pending; the next tick inside the window will
			// fire it again rather than lose the reminder.
			logger.Error("persist reminded flag", "id", task.ID, "error", err)
			continue
		}
		fired = append(fired, task)
		if s.cfg.OnFire != nil {
			s.cfg.OnFire(task)
		}
	}
	return fired
}

// deliver pushes the notification, falling back from sound to silent.
// Delivery is fire-and-forget: a failed notification is logged and the task
// is still marked reminded.
func (s *Scheduler) deliver(task storage.Task) {
	body := fmt.Sprintf("%s (%s) - %s", task.Title, task.Time, task.Category)

	var err error
	if s.cfg.Sound {
		if err = s.notifier.SendWithSound("Task Reminder", body); err != nil {
			err = s.notifier.Send("Task Reminder", body)
		}
	} else {
		err = s.notifier.Send("Task Reminder", body)
	}
	if err != nil {
		logger.Warn("notification delivery failed", "title", task.Title, "error", err)
	}
}

func scheduledInstant(day, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.Parse(storage.DayKey, day)
	if err != nil {
		return time.Time{}, err
	}
	c, err := time.Parse(storage.ClockLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, loc), nil
}

// Package storage owns the persistent state of the app: the day-keyed task
// store and the category registry, both kept as plain JSON files in the data
// directory. The whole store is held in memory and rewritten atomically on
// every mutation; there is no partial or deferred persistence.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"daybook/internal/fsutil"
	"daybook/internal/logger"
)

// Sentinel errors. Callers match with errors.Is.
var (
	// ErrValidation marks a rejected add: a required field is missing or the
	// time is not a valid HH:MM clock value. Nothing is persisted.
	ErrValidation = errors.New("invalid task")

	// ErrTaskNotFound marks an operation against an ID that is not in the
	// given day's bucket. In normal operation this indicates a stale caller.
	ErrTaskNotFound = errors.New("task not found")
)

const (
	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600

	tasksFile      = "tasks.json"
	categoriesFile = "categories.json"

	maxTitleLen    = 200
	maxCategoryLen = 60
)

// Storage is the owned state object for all daybook data. All operations are
// safe for concurrent use; the reminder scheduler and the UI share one
// instance.
type Storage struct {
	dataDir string

	mu   sync.Mutex
	days *DayStore
	cats *CategoryStore
	now  func() time.Time // injectable clock for deterministic tests
}

// New creates a Storage rooted at dataDir, loading existing state or seeding
// defaults (empty day store, the default category set) on first run.
func New(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Storage{dataDir: dataDir, now: time.Now}

	days := &DayStore{Days: map[string][]Task{}}
	if err := s.loadJSONWithRecovery(tasksFile, days); err != nil {
		return nil, err
	}
	if days.Days == nil {
		days.Days = map[string][]Task{}
	}
	s.days = days

	cats := &CategoryStore{}
	fresh := !fileExists(s.path(categoriesFile))
	if err := s.loadJSONWithRecovery(categoriesFile, cats); err != nil {
		return nil, err
	}
	if fresh && len(cats.Categories) == 0 {
		cats.Categories = DefaultCategories()
		if err := s.writeJSONAtomic(categoriesFile, cats); err != nil {
			return nil, err
		}
	}
	if cats.Categories == nil {
		cats.Categories = []string{}
	}
	s.cats = cats

	return s, nil
}

// SetNowFunc overrides the clock used for Today. Passing nil resets it to
// time.Now.
func (s *Storage) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the storage clock.
func (s *Storage) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now()
}

// Today returns the current local calendar day in YYYY-MM-DD form. It is the
// fallback when no day has been picked in the UI, and the only day the
// reminder scheduler ever scans.
func (s *Storage) Today() string {
	return s.Now().Format(DayKey)
}

// DataDir returns the path to the data directory.
func (s *Storage) DataDir() string {
	return s.dataDir
}

// ============================================================================
// Day-keyed tasks
// ============================================================================

// TasksFor returns a copy of the task list for day, materializing an empty
// bucket if the day has never been accessed. The new bucket is persisted on
// the next mutation, not immediately.
func (s *Storage) TasksFor(day string) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.days.Days[day]; !ok {
		s.days.Days[day] = []Task{}
	}
	return append([]Task(nil), s.days.Days[day]...)
}

// ListDays returns all day keys that hold at least one task, sorted.
func (s *Storage) ListDays() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	days := make([]string, 0, len(s.days.Days))
	for day, tasks := range s.days.Days {
		if len(tasks) > 0 {
			days = append(days, day)
		}
	}
	sort.Strings(days)
	return days
}

// AddTask validates and appends a new pending task to day's bucket, then
// persists the store. Title, time, and category are all required; time must
// be a valid HH:MM clock value.
func (s *Storage) AddTask(day, title, clock, category string) (*Task, error) {
	title = strings.TrimSpace(title)
	clock = strings.TrimSpace(clock)
	category = strings.TrimSpace(category)

	switch {
	case title == "":
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	case clock == "":
		return nil, fmt.Errorf("%w: time is required", ErrValidation)
	case category == "":
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	case len(title) > maxTitleLen:
		return nil, fmt.Errorf("%w: title too long (max %d)", ErrValidation, maxTitleLen)
	case len(category) > maxCategoryLen:
		return nil, fmt.Errorf("%w: category too long (max %d)", ErrValidation, maxCategoryLen)
	}
	if _, err := time.Parse(ClockLayout, clock); err != nil {
		return nil, fmt.Errorf("%w: time %q is not HH:MM", ErrValidation, clock)
	}

	task := Task{
		ID:       uuid.New().String(),
		Title:    title,
		Time:     clock,
		Category: category,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.days.Days[day] = append(s.days.Days[day], task)
	if err := s.writeJSONAtomic(tasksFile, s.days); err != nil {
		// Roll the in-memory append back so memory and disk stay in step.
		bucket := s.days.Days[day]
		s.days.Days[day] = bucket[:len(bucket)-1]
		return nil, err
	}
	return &task, nil
}

// SetTaskDone sets the completion flag on the task with the given ID in day's
// bucket and persists the store.
func (s *Storage) SetTaskDone(day, id string, done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(day, id)
	if i < 0 {
		return fmt.Errorf("%w: %s on %s", ErrTaskNotFound, id, day)
	}
	prev := s.days.Days[day][i].Done
	s.days.Days[day][i].Done = done
	if err := s.writeJSONAtomic(tasksFile, s.days); err != nil {
		s.days.Days[day][i].Done = prev
		return err
	}
	return nil
}

// DeleteTask removes the task with the given ID from day's bucket, shifting
// later tasks up one position, and persists the store.
func (s *Storage) DeleteTask(day, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(day, id)
	if i < 0 {
		return fmt.Errorf("%w: %s on %s", ErrTaskNotFound, id, day)
	}
	bucket := s.days.Days[day]
	removed := bucket[i]
	s.days.Days[day] = append(bucket[:i], bucket[i+1:]...)
	if err := s.writeJSONAtomic(tasksFile, s.days); err != nil {
		rest := s.days.Days[day]
		restored := make([]Task, 0, len(rest)+1)
		restored = append(restored, rest[:i]...)
		restored = append(restored, removed)
		restored = append(restored, rest[i:]...)
		s.days.Days[day] = restored
		return err
	}
	return nil
}

// ClearDay empties day's bucket in place. The day key is retained.
func (s *Storage) ClearDay(day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.days.Days[day]
	s.days.Days[day] = []Task{}
	if err := s.writeJSONAtomic(tasksFile, s.days); err != nil {
		s.days.Days[day] = prev
		return err
	}
	return nil
}

// MarkReminded records that a reminder has been delivered for the task. The
// flag is monotonic: marking an already-reminded task is a no-op.
func (s *Storage) MarkReminded(day, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(day, id)
	if i < 0 {
		return fmt.Errorf("%w: %s on %s", ErrTaskNotFound, id, day)
	}
	if s.days.Days[day][i].Reminded {
		return nil
	}
	s.days.Days[day][i].Reminded = true
	if err := s.writeJSONAtomic(tasksFile, s.days); err != nil {
		s.days.Days[day][i].Reminded = false
		return err
	}
	return nil
}

// indexOf returns the position of id in day's bucket, or -1. Caller holds mu.
func (s *Storage) indexOf(day, id string) int {
	for i, t := range s.days.Days[day] {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// ============================================================================
// Category registry
// ============================================================================

// Categories returns the registry labels in insertion order.
func (s *Storage) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cats.Categories...)
}

// AddCategory appends a label to the registry and persists it. Empty input
// (after trimming) and exact duplicates are silently ignored.
func (s *Storage) AddCategory(label string) error {
	label = strings.TrimSpace(label)
	if label == "" || len(label) > maxCategoryLen {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cats.Categories {
		if c == label {
			return nil
		}
	}
	s.cats.Categories = append(s.cats.Categories, label)
	if err := s.writeJSONAtomic(categoriesFile, s.cats); err != nil {
		s.cats.Categories = s.cats.Categories[:len(s.cats.Categories)-1]
		return err
	}
	return nil
}

// DeleteCategory removes a label from the registry. Tasks already tagged with
// it are left untouched; there is no referential integrity between the two.
func (s *Storage) DeleteCategory(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.cats.Categories {
		if c == label {
			prev := s.cats.Categories
			next := make([]string, 0, len(prev)-1)
			next = append(next, prev[:i]...)
			next = append(next, prev[i+1:]...)
			s.cats.Categories = next
			if err := s.writeJSONAtomic(categoriesFile, s.cats); err != nil {
				s.cats.Categories = prev
				return err
			}
			return nil
		}
	}
	return nil
}

// ============================================================================
// Persistence plumbing
// ============================================================================

func (s *Storage) path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func (s *Storage) writeJSONAtomic(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", filename, err)
	}
	path := s.path(filename)

	// Keep a best-effort backup of the previous snapshot before overwriting.
	fsutil.BestEffortBackup(path, dataFilePerm)

	if err := fsutil.WriteFileAtomic(path, data, dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func (s *Storage) loadJSONWithRecovery(filename string, v any) error {
	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.writeJSONAtomic(filename, v)
		}
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.recoverCorrupt(filename, v, fmt.Errorf("%s is empty", filename))
	}
	if err := json.Unmarshal(data, v); err != nil {
		return s.recoverCorrupt(filename, v, fmt.Errorf("parse %s: %w", filename, err))
	}
	return nil
}

// recoverCorrupt tries the .bak sibling, then falls back to resetting the
// file, preserving the broken original under a .corrupt suffix. Recovery is
// logged rather than treated as fatal so a damaged file never blocks startup.
func (s *Storage) recoverCorrupt(filename string, v any, cause error) error {
	path := s.path(filename)
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))

	if bak, err := os.ReadFile(path + ".bak"); err == nil && len(bytes.TrimSpace(bak)) > 0 {
		if json.Unmarshal(bak, v) == nil {
			_ = os.Rename(path, corruptPath)
			logger.Warn("recovered data file from backup", "file", filename, "cause", cause)
			return s.writeJSONAtomic(filename, v)
		}
	}

	_ = os.Rename(path, corruptPath)
	logger.Warn("reset corrupt data file", "file", filename, "cause", cause, "preserved", corruptPath)
	return s.writeJSONAtomic(filename, v)
}

package storage

// DayKey is the calendar-date layout used for bucket keys, e.g. "2026-08-31".
const DayKey = "2006-01-02"

// ClockLayout is the wall-clock layout for task times, e.g. "14:30".
const ClockLayout = "15:04"

// Task is a single todo item owned by one day bucket. Identity is the opaque
// ID assigned at creation; a task never moves between days.
type Task struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Time     string `json:"time"`     // HH:MM, local wall clock on the owning day
	Category string `json:"category"` // free label, usually from the registry
	Done     bool   `json:"done"`
	Reminded bool   `json:"reminded"` // one-way: set when a reminder fires, never cleared
}

// DayStore maps calendar days (YYYY-MM-DD) to their ordered task lists.
// Order within a day is insertion order and is significant for display.
type DayStore struct {
	Days map[string][]Task `json:"days"`
}

// CategoryStore holds the ordered set of user-defined category labels.
type CategoryStore struct {
	Categories []string `json:"categories"`
}

// DefaultCategories seeds the registry on first run.
func DefaultCategories() []string {
	return []string{"Work", "Home", "Personal"}
}

// Stats summarizes completion for one day's task list.
type Stats struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Percent int `json:"percent"` // 0-100, rounded half away from zero
}

// Package ui provides terminal user interface components for the daybook app.
// This file defines message types for async I/O operations using the Bubble Tea
// command pattern. All storage operations should return these messages to keep
// the event loop non-blocking.
package ui

import (
	"daybook/internal/storage"
)

// =============================================================================
// Task Messages
// =============================================================================

// tasksLoadedMsg is sent when a day's task list is loaded from storage.
type tasksLoadedMsg struct {
	day   string
	tasks []storage.Task
}

// taskAddedMsg is sent when a new task is created.
type taskAddedMsg struct {
	day  string
	task *storage.Task
	err  error
}

// taskToggledMsg is sent when a task's done flag is flipped.
type taskToggledMsg struct {
	day  string
	id   string
	done bool
	err  error
}

// taskDeletedMsg is sent when a task is removed.
type taskDeletedMsg struct {
	day string
	id  string
	err error
}

// dayClearedMsg is sent when a day's task list is emptied.
type dayClearedMsg struct {
	day string
	err error
}

// =============================================================================
// Category Messages
// =============================================================================

// categoriesLoadedMsg is sent when the category registry is loaded.
type categoriesLoadedMsg struct {
	categories []string
}

// categoryAddedMsg is sent when a label is added to the registry.
type categoryAddedMsg struct {
	label string
	err   error
}

// categoryDeletedMsg is sent when a label is removed from the registry.
type categoryDeletedMsg struct {
	label string
	err   error
}

// =============================================================================
// Reminder Messages
// =============================================================================

// ReminderFiredMsg is pushed into the program from the reminder scheduler when
// a task's reminder fires. It is exported so main can deliver it via
// program.Send from the scheduler's OnFire hook.
type ReminderFiredMsg struct {
	Task storage.Task
}

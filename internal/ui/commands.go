// Package ui provides terminal user interface components for the daybook app.
// This file contains tea.Cmd factories that wrap storage operations. These
// commands run I/O operations asynchronously to keep the Bubble Tea event
// loop responsive. Each command returns a corresponding message type defined
// in messages.go.
package ui

import (
	"daybook/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// Task Commands
// =============================================================================

// loadTasksCmd returns a command that loads one day's task list from storage.
func loadTasksCmd(store *storage.Storage, day string) tea.Cmd {
	return func() tea.Msg {
		return tasksLoadedMsg{day: day, tasks: store.TasksFor(day)}
	}
}

// addTaskCmd returns a command that creates a new task in day's bucket.
func addTaskCmd(store *storage.Storage, day, title, clock, category string) tea.Cmd {
	return func() tea.Msg {
		task, err := store.AddTask(day, title, clock, category)
		return taskAddedMsg{day: day, task: task, err: err}
	}
}

// toggleTaskCmd returns a command that sets a task's done flag.
func toggleTaskCmd(store *storage.Storage, day, id string, done bool) tea.Cmd {
	return func() tea.Msg {
		err := store.SetTaskDone(day, id, done)
		return taskToggledMsg{day: day, id: id, done: done, err: err}
	}
}

// deleteTaskCmd returns a command that removes a task from day's bucket.
func deleteTaskCmd(store *storage.Storage, day, id string) tea.Cmd {
	return func() tea.Msg {
		err := store.DeleteTask(day, id)
		return taskDeletedMsg{day: day, id: id, err: err}
	}
}

// clearDayCmd returns a command that empties day's task list.
func clearDayCmd(store *storage.Storage, day string) tea.Cmd {
	return func() tea.Msg {
		err := store.ClearDay(day)
		return dayClearedMsg{day: day, err: err}
	}
}

// =============================================================================
// Category Commands
// =============================================================================

// loadCategoriesCmd returns a command that loads the category registry.
func loadCategoriesCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		return categoriesLoadedMsg{categories: store.Categories()}
	}
}

// addCategoryCmd returns a command that appends a label to the registry.
func addCategoryCmd(store *storage.Storage, label string) tea.Cmd {
	return func() tea.Msg {
		err := store.AddCategory(label)
		return categoryAddedMsg{label: label, err: err}
	}
}

// deleteCategoryCmd returns a command that removes a label from the registry.
func deleteCategoryCmd(store *storage.Storage, label string) tea.Cmd {
	return func() tea.Msg {
		err := store.DeleteCategory(label)
		return categoryDeletedMsg{label: label, err: err}
	}
}

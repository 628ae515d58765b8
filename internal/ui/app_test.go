package ui

import (
	"strings"
	"testing"
	"time"

	"daybook/internal/config"
	"daybook/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

func createTestApp(t *testing.T) (*App, *storage.Storage) {
	t.Helper()
	store := createTestStorage(t)
	store.SetNowFunc(func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	})
	app := NewApp(store, createTestStyles(), &AppConfig{
		Keys:                  &config.KeysConfig{},
		ConfirmDeletions:      true,
		ShowOnboarding:        false,
		NarrowLayoutThreshold: 80,
	})
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app, store
}

func TestAppView_TitleBar(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t)

	output := app.View()
	if !strings.Contains(output, "daybook") {
		t.Errorf("view missing app name:\n%s", output)
	}
	if !strings.Contains(output, "today") {
		t.Errorf("title bar should mark the current day:\n%s", output)
	}
}

func TestApp_StartsOnToday(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t)

	if app.taskPane.Day() != "2026-08-31" {
		t.Errorf("initial day = %q, want 2026-08-31", app.taskPane.Day())
	}
}

func TestApp_PaneSwitching(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t)

	if app.activePane != PaneTasks {
		t.Fatalf("initial pane = %v, want tasks", app.activePane)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	if app.activePane != PaneCategories {
		t.Errorf("pane after tab = %v, want categories", app.activePane)
	}
	if app.taskPane.IsFocused() || !app.categoriesPane.IsFocused() {
		t.Error("focus should follow the active pane")
	}

	app.Update(keyMsg('1'))
	if app.activePane != PaneTasks {
		t.Errorf("pane after 1 = %v, want tasks", app.activePane)
	}

	app.Update(keyMsg('2'))
	if app.activePane != PaneCategories {
		t.Errorf("pane after 2 = %v, want categories", app.activePane)
	}
}

func TestApp_DayNavigation(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t)

	app.Update(keyMsg('l'))
	if app.taskPane.Day() != "2026-09-01" {
		t.Errorf("day after next = %q, want 2026-09-01", app.taskPane.Day())
	}

	app.Update(keyMsg('h'))
	app.Update(keyMsg('h'))
	if app.taskPane.Day() != "2026-08-30" {
		t.Errorf("day after two prevs = %q, want 2026-08-30", app.taskPane.Day())
	}

	app.Update(keyMsg('t'))
	if app.taskPane.Day() != "2026-08-31" {
		t.Errorf("day after today key = %q, want 2026-08-31", app.taskPane.Day())
	}
}

func TestApp_HelpOverlay(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t)

	app.Update(keyMsg('?'))
	if !app.showHelp {
		t.Fatal("? should open help")
	}
	if !strings.Contains(app.View(), "Keyboard Shortcuts") {
		t.Error("help overlay missing title")
	}

	app.Update(escMsg())
	if app.showHelp {
		t.Error("esc should close help")
	}
}

func TestApp_DeleteConfirmation(t *testing.T) {
	setupTest(t)
	app, store := createTestApp(t)

	day := store.Today()
	store.AddTask(day, "Doomed task", "09:00", "Work")
	app.taskPane.setTasks(store.TasksFor(day))

	app.Update(keyMsg('x'))
	if app.confirm == nil {
		t.Fatal("delete should prompt for confirmation")
	}
	if !strings.Contains(app.View(), "Delete task?") {
		t.Error("confirm overlay missing title")
	}

	// Decline
	app.Update(keyMsg('n'))
	if app.confirm != nil {
		t.Error("n should dismiss the confirmation")
	}
	if got := len(store.TasksFor(day)); got != 1 {
		t.Errorf("declined delete removed the task, have %d", got)
	}

	// Accept
	app.Update(keyMsg('x'))
	_, cmd := app.Update(keyMsg('y'))
	if cmd == nil {
		t.Fatal("accepting should produce the delete command")
	}
	cmd()
	if got := len(store.TasksFor(day)); got != 0 {
		t.Errorf("tasks after confirmed delete = %d, want 0", got)
	}
}

func TestApp_ClearDayConfirmation(t *testing.T) {
	setupTest(t)
	app, store := createTestApp(t)

	day := store.Today()
	store.AddTask(day, "One", "09:00", "Work")
	store.AddTask(day, "Two", "10:00", "Home")
	app.taskPane.setTasks(store.TasksFor(day))

	app.Update(keyMsg('C'))
	if app.confirm == nil {
		t.Fatal("clear day should prompt for confirmation")
	}
	_, cmd := app.Update(enterMsg())
	if cmd == nil {
		t.Fatal("accepting should produce the clear command")
	}
	cmd()
	if got := len(store.TasksFor(day)); got != 0 {
		t.Errorf("tasks after clear = %d, want 0", got)
	}
}

func TestApp_ClearEmptyDayIsNoop(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t)

	app.Update(keyMsg('C'))
	if app.confirm != nil {
		t.Error("clearing an empty day should not prompt")
	}
	if app.status == "" {
		t.Error("expected a status message")
	}
}

func TestApp_ReminderFired(t *testing.T) {
	setupTest(t)
	app, store := createTestApp(t)

	day := store.Today()
	task, _ := store.AddTask(day, "Standup", "14:30", "Work")

	_, cmd := app.Update(ReminderFiredMsg{Task: *task})
	if cmd == nil {
		t.Fatal("reminder should trigger a task reload")
	}
	if !strings.Contains(app.status, "Standup") {
		t.Errorf("status = %q, want task title", app.status)
	}
}

func TestApp_NarrowLayout(t *testing.T) {
	setupTest(t)
	app, _ := createTestApp(t)

	app.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	if app.layoutMode != LayoutNarrow {
		t.Fatalf("layout = %v, want narrow", app.layoutMode)
	}

	output := app.View()
	if !strings.Contains(output, "[Tasks]") {
		t.Errorf("narrow layout missing tab bar:\n%s", output)
	}
}

func TestApp_QuitShowsSummary(t *testing.T) {
	setupTest(t)
	app, store := createTestApp(t)

	day := store.Today()
	task, _ := store.AddTask(day, "Done thing", "09:00", "Work")
	store.SetTaskDone(day, task.ID, true)
	app.taskPane.setTasks(store.TasksFor(day))

	_, cmd := app.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if !app.quitting {
		t.Fatal("q should set quitting")
	}
	if !strings.Contains(app.View(), "1/1") {
		t.Errorf("goodbye missing progress:\n%s", app.View())
	}
}

func TestApp_WelcomeOnFirstRun(t *testing.T) {
	setupTest(t)
	store := createTestStorage(t)
	app := NewApp(store, createTestStyles(), &AppConfig{
		Keys:             &config.KeysConfig{},
		ConfirmDeletions: true,
		ShowOnboarding:   true,
	})
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if !app.showWelcome {
		t.Fatal("first run should show the welcome screen")
	}
	if !strings.Contains(app.View(), "Welcome to daybook") {
		t.Error("welcome screen missing greeting")
	}

	app.Update(keyMsg('a'))
	if app.showWelcome {
		t.Error("any key should dismiss welcome")
	}
}

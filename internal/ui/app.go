// Package ui provides terminal user interface components for the daybook app.
// This file contains the main App model which coordinates all panes and
// routes messages using the Bubble Tea architecture.
package ui

import (
	"fmt"
	"strings"
	"time"

	"daybook/internal/config"
	"daybook/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PaneID identifies each pane in the application.
type PaneID int

const (
	PaneTasks PaneID = iota
	PaneCategories
)

// LayoutMode determines how panes are arranged based on terminal width.
type LayoutMode int

const (
	// LayoutWide shows both panes side-by-side.
	LayoutWide LayoutMode = iota
	// LayoutNarrow shows only the focused pane with a tab bar.
	LayoutNarrow
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys                  *config.KeysConfig
	ConfirmDeletions      bool
	ShowOnboarding        bool
	NarrowLayoutThreshold int
}

// App is the main application model that coordinates all panes.
type App struct {
	storage        *storage.Storage
	styles         *Styles
	config         *AppConfig
	taskPane       *TaskPane
	categoriesPane *CategoriesPane
	helpOverlay    *HelpOverlay
	confirm        *confirmState
	activePane     PaneID
	layoutMode     LayoutMode
	showHelp       bool
	showWelcome    bool
	width          int
	height         int
	status         string
	statusErr      bool
	statusUntil    time.Time
	quitting       bool

	// Key bindings
	keys     GlobalKeyMap
	helpKeys HelpKeyMap

	// Pane positions for mouse click detection (x coordinates)
	tasksPaneStart      int
	tasksPaneEnd        int
	categoriesPaneStart int
	categoriesPaneEnd   int
	contentTop          int // Y coordinate where content starts
}

type confirmState struct {
	title string
	body  string
	cmd   tea.Cmd
}

// NewApp creates a new application. Data loading is deferred to Init()
// to keep the constructor non-blocking.
func NewApp(store *storage.Storage, styles *Styles, cfg *AppConfig) *App {
	// Use default config if nil
	if cfg == nil {
		cfg = &AppConfig{
			Keys:                  &config.KeysConfig{},
			ConfirmDeletions:      true,
			ShowOnboarding:        true,
			NarrowLayoutThreshold: 80,
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}

	// Create panes with config-aware key bindings
	taskPane := NewTaskPaneWithKeys(store, styles, store.Today(), cfg.Keys)
	categoriesPane := NewCategoriesPaneWithKeys(store, styles, cfg.Keys)
	helpOverlay := NewHelpOverlay(styles)

	// Determine if we should show welcome screen
	showWelcome := cfg.ShowOnboarding && isFirstRun(store)

	app := &App{
		storage:        store,
		styles:         styles,
		config:         cfg,
		taskPane:       taskPane,
		categoriesPane: categoriesPane,
		helpOverlay:    helpOverlay,
		activePane:     PaneTasks,
		showHelp:       false,
		showWelcome:    showWelcome,
		keys:           NewGlobalKeyMap(cfg.Keys),
		helpKeys:       DefaultHelpKeyMap(),
	}

	// Set initial focus
	taskPane.SetFocused(true)
	categoriesPane.SetFocused(false)

	return app
}

// isFirstRun checks if this appears to be the first time running the app.
// We detect this by checking whether any day bucket exists yet.
func isFirstRun(store *storage.Storage) bool {
	return len(store.ListDays()) == 0
}

// tickMsg is sent periodically for time updates.
type tickMsg time.Time

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the app and loads all data asynchronously.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		a.taskPane.LoadTasksCmd(),
		a.categoriesPane.LoadCategoriesCmd(),
	)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Route async messages to their panes first (before key handling).
	// This ensures storage operation results are processed regardless
	// of which pane is active.
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		cmd := a.taskPane.Update(msg)
		return a, cmd

	case taskAddedMsg:
		if msg.err != nil {
			a.SetStatus("Add task: "+msg.err.Error(), true)
		} else if msg.task != nil {
			a.SetStatus(fmt.Sprintf("Added %q at %s", msg.task.Title, msg.task.Time), false)
		}
		cmd := a.taskPane.Update(msg)
		return a, cmd

	case taskToggledMsg:
		if msg.err != nil {
			a.SetStatus("Toggle task: "+msg.err.Error(), true)
		}
		cmd := a.taskPane.Update(msg)
		return a, cmd

	case taskDeletedMsg:
		if msg.err != nil {
			a.SetStatus("Delete task: "+msg.err.Error(), true)
		}
		cmd := a.taskPane.Update(msg)
		return a, cmd

	case dayClearedMsg:
		if msg.err != nil {
			a.SetStatus("Clear day: "+msg.err.Error(), true)
		} else {
			a.SetStatus("Cleared "+msg.day, false)
		}
		cmd := a.taskPane.Update(msg)
		return a, cmd

	case categoriesLoadedMsg:
		cmd := a.categoriesPane.Update(msg)
		return a, cmd

	case categoryAddedMsg:
		if msg.err != nil {
			a.SetStatus("Add category: "+msg.err.Error(), true)
		}
		cmd := a.categoriesPane.Update(msg)
		return a, cmd

	case categoryDeletedMsg:
		if msg.err != nil {
			a.SetStatus("Delete category: "+msg.err.Error(), true)
		}
		cmd := a.categoriesPane.Update(msg)
		return a, cmd

	case ReminderFiredMsg:
		a.SetStatus(fmt.Sprintf("🔔 %s at %s", msg.Task.Title, msg.Task.Time), false)
		// Reload so the bell marker shows up
		return a, a.taskPane.LoadTasksCmd()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.showWelcome {
			a.showWelcome = false
			return a, nil
		}

		if a.confirm != nil {
			switch msg.String() {
			case "y", "Y", "enter":
				cmd := a.confirm.cmd
				a.confirm = nil
				return a, cmd
			case "n", "N", "esc":
				a.confirm = nil
				a.SetStatus("Canceled", false)
				return a, nil
			default:
				return a, nil
			}
		}

		// Help overlay takes priority
		if a.showHelp {
			if key.Matches(msg, a.helpKeys.Close) {
				a.showHelp = false
				return a, nil
			}
			return a, nil
		}

		// Check if any pane is in input mode
		inInputMode := a.taskPane.IsAdding() || a.categoriesPane.IsAdding()

		if !inInputMode {
			// Confirm destructive actions if enabled.
			if a.config.ConfirmDeletions {
				switch a.activePane {
				case PaneTasks:
					if key.Matches(msg, a.taskPane.keys.Delete) {
						if len(a.taskPane.tasks) == 0 || a.taskPane.cursor < 0 || a.taskPane.cursor >= len(a.taskPane.tasks) {
							a.SetStatus("No task selected", true)
							return a, nil
						}
						task := a.taskPane.tasks[a.taskPane.cursor]
						a.confirm = &confirmState{
							title: "Delete task?",
							body:  truncateText(task.Title, 60),
							cmd:   deleteTaskCmd(a.storage, a.taskPane.day, task.ID),
						}
						return a, nil
					}
				case PaneCategories:
					if key.Matches(msg, a.categoriesPane.keys.Delete) {
						label := a.categoriesPane.Selected()
						if label == "" {
							a.SetStatus("No category selected", true)
							return a, nil
						}
						a.confirm = &confirmState{
							title: "Delete category?",
							body:  truncateText(label, 60),
							cmd:   deleteCategoryCmd(a.storage, label),
						}
						return a, nil
					}
				}
			}

			// Global keys only when not in input mode
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.quitting = true
				return a, tea.Quit

			case key.Matches(msg, a.keys.Help):
				a.showHelp = true
				return a, nil

			case key.Matches(msg, a.keys.NextPane):
				a.switchPane()
				return a, nil

			case key.Matches(msg, a.keys.Pane1):
				a.setActivePane(PaneTasks)
				return a, nil

			case key.Matches(msg, a.keys.Pane2):
				a.setActivePane(PaneCategories)
				return a, nil

			case key.Matches(msg, a.keys.PrevDay):
				return a, a.shiftDay(-1)

			case key.Matches(msg, a.keys.NextDay):
				return a, a.shiftDay(1)

			case key.Matches(msg, a.keys.Today):
				return a, a.gotoDay(a.storage.Today())

			case key.Matches(msg, a.keys.ClearDay):
				if _, total := a.taskPane.Stats(); total == 0 {
					a.SetStatus("Nothing to clear", false)
					return a, nil
				}
				if a.config.ConfirmDeletions {
					a.confirm = &confirmState{
						title: "Clear day?",
						body:  fmt.Sprintf("Remove all tasks for %s", a.taskPane.day),
						cmd:   clearDayCmd(a.storage, a.taskPane.day),
					}
					return a, nil
				}
				return a, clearDayCmd(a.storage, a.taskPane.day)
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.MouseMsg:
		if a.showWelcome {
			if msg.Action == tea.MouseActionPress {
				a.showWelcome = false
			}
			return a, nil
		}

		if a.confirm != nil {
			if msg.Action == tea.MouseActionPress {
				a.confirm = nil
				a.SetStatus("Canceled", false)
			}
			return a, nil
		}

		// Any click closes help
		if a.showHelp {
			if msg.Action == tea.MouseActionPress {
				a.showHelp = false
			}
			return a, nil
		}

		// Handle mouse events
		switch msg.Action {
		case tea.MouseActionPress:
			// In narrow mode, check for tab bar clicks
			if a.layoutMode == LayoutNarrow && msg.Y == a.contentTop-1 {
				// Tab bar click - two tabs, split at midpoint
				if msg.X < a.width/2 {
					a.setActivePane(PaneTasks)
				} else {
					a.setActivePane(PaneCategories)
				}
				return a, nil
			}

			// Determine which pane was clicked (in wide mode)
			clickedPane := a.paneAtPosition(msg.X)
			if clickedPane >= 0 && clickedPane != a.activePane {
				a.setActivePane(clickedPane)
			}

			// Forward click to active pane with adjusted coordinates
			if msg.Y >= a.contentTop {
				localMsg := msg
				localMsg.Y = msg.Y - a.contentTop
				if a.layoutMode == LayoutWide && a.activePane == PaneCategories {
					localMsg.X = msg.X - a.categoriesPaneStart
				}

				switch a.activePane {
				case PaneTasks:
					cmd := a.taskPane.Update(localMsg)
					return a, cmd
				case PaneCategories:
					cmd := a.categoriesPane.Update(localMsg)
					return a, cmd
				}
			}

		case tea.MouseActionMotion:
			// Ignore motion events for now
		}

		// Handle scroll wheel
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			// Forward scroll to active pane
			localMsg := msg
			localMsg.Y = msg.Y - a.contentTop

			switch a.activePane {
			case PaneTasks:
				cmd := a.taskPane.Update(localMsg)
				return a, cmd
			case PaneCategories:
				cmd := a.categoriesPane.Update(localMsg)
				return a, cmd
			}
		}

		return a, nil

	case tickMsg:
		if a.status != "" && !a.statusUntil.IsZero() && time.Now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		return a, tickCmd()
	}

	// Forward to active pane (only if help is not shown)
	if !a.showHelp {
		switch a.activePane {
		case PaneTasks:
			cmd := a.taskPane.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		case PaneCategories:
			cmd := a.categoriesPane.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

// shiftDay moves the task pane by delta days and reloads.
func (a *App) shiftDay(delta int) tea.Cmd {
	t, err := time.Parse(storage.DayKey, a.taskPane.day)
	if err != nil {
		// Corrupt day key; snap back to today
		return a.gotoDay(a.storage.Today())
	}
	return a.gotoDay(t.AddDate(0, 0, delta).Format(storage.DayKey))
}

// gotoDay switches the task pane to the given day and reloads.
func (a *App) gotoDay(day string) tea.Cmd {
	a.taskPane.SetDay(day)
	return a.taskPane.LoadTasksCmd()
}

// switchPane cycles through panes.
func (a *App) switchPane() {
	if a.activePane == PaneTasks {
		a.setActivePane(PaneCategories)
	} else {
		a.setActivePane(PaneTasks)
	}
}

// setActivePane sets the active pane and updates focus states.
func (a *App) setActivePane(pane PaneID) {
	a.activePane = pane

	a.taskPane.SetFocused(pane == PaneTasks)
	a.categoriesPane.SetFocused(pane == PaneCategories)
}

// paneAtPosition returns which pane is at the given X coordinate.
// Returns -1 if no pane is at that position.
func (a *App) paneAtPosition(x int) PaneID {
	if a.layoutMode == LayoutNarrow {
		// In narrow mode, return the active pane
		return a.activePane
	}

	if x >= a.tasksPaneStart && x < a.tasksPaneEnd {
		return PaneTasks
	}
	if x >= a.categoriesPaneStart && x < a.categoriesPaneEnd {
		return PaneCategories
	}
	return -1
}

// updateLayout recalculates pane sizes based on terminal dimensions.
func (a *App) updateLayout() {
	// Leave room for title bar (2) and help bar (1)
	contentHeight := a.height - 4
	if contentHeight < 10 {
		contentHeight = 10
	}

	// Content starts after title bar (1 line title + 1 line space)
	a.contentTop = 1

	// Update help overlay size
	a.helpOverlay.SetSize(a.width, a.height)

	totalWidth := a.width - 4

	// Determine layout mode based on configured threshold
	threshold := a.config.NarrowLayoutThreshold
	if threshold <= 0 {
		threshold = 80 // Default threshold
	}

	if a.width < threshold {
		// Narrow mode: single focused pane with tab bar
		a.layoutMode = LayoutNarrow

		// In narrow mode, leave room for tab bar (1 line)
		narrowHeight := contentHeight - 1
		if narrowHeight < 8 {
			narrowHeight = 8
		}

		// Give full width to both panes (only focused one will be shown)
		paneWidth := totalWidth
		if paneWidth < 20 {
			paneWidth = 20
		}

		a.taskPane.SetSize(paneWidth, narrowHeight)
		a.categoriesPane.SetSize(paneWidth, narrowHeight)

		// In narrow mode, both panes occupy the same space
		a.tasksPaneStart = 0
		a.tasksPaneEnd = a.width
		a.categoriesPaneStart = 0
		a.categoriesPaneEnd = a.width
		// Content starts after tab bar in narrow mode
		a.contentTop = 2
	} else {
		// Wide mode: two panes side-by-side, tasks get the lion's share
		a.layoutMode = LayoutWide

		tasksWidth := (totalWidth * 62) / 100
		if tasksWidth > 70 {
			tasksWidth = 70
		}
		categoriesWidth := totalWidth - tasksWidth - 1
		if categoriesWidth > 40 {
			categoriesWidth = 40
		}

		a.taskPane.SetSize(tasksWidth, contentHeight)
		a.categoriesPane.SetSize(categoriesWidth, contentHeight)

		// Calculate pane positions (with 1 space gap between panes)
		a.tasksPaneStart = 0
		a.tasksPaneEnd = tasksWidth
		a.categoriesPaneStart = tasksWidth + 1
		a.categoriesPaneEnd = a.categoriesPaneStart + categoriesWidth
	}
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.showWelcome {
		return a.renderWelcome()
	}

	if a.confirm != nil {
		return a.renderConfirm()
	}

	// Show help overlay if active
	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	// Title bar
	titleBar := a.renderTitleBar()
	b.WriteString(titleBar)
	b.WriteString("\n")

	// Main content - switch based on layout mode
	switch a.layoutMode {
	case LayoutNarrow:
		b.WriteString(a.renderNarrowContent())
	default:
		b.WriteString(a.renderWideContent())
	}
	b.WriteString("\n")

	// Help bar
	helpBar := a.renderHelpBar()
	b.WriteString(helpBar)

	return b.String()
}

func (a *App) renderWelcome() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorPrimary).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to daybook"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("Tab switches panes. ←/→ move between days.\n"))
	b.WriteString(bodyStyle.Render("Add your first task with 'a'.\n"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press any key to continue"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderConfirm() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.confirm.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.confirm.body))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] confirm    [n/esc] cancel"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderWideContent renders both panes side by side.
func (a *App) renderWideContent() string {
	tasksView := a.taskPane.View()
	categoriesView := a.categoriesPane.View()

	return lipgloss.JoinHorizontal(lipgloss.Top, tasksView, " ", categoriesView)
}

// renderNarrowContent renders the focused pane with a tab bar.
func (a *App) renderNarrowContent() string {
	var b strings.Builder

	// Tab bar at top
	b.WriteString(a.renderPaneTabs())
	b.WriteString("\n")

	// Only render the active pane
	switch a.activePane {
	case PaneTasks:
		b.WriteString(a.taskPane.View())
	case PaneCategories:
		b.WriteString(a.categoriesPane.View())
	}

	return b.String()
}

// renderPaneTabs renders a tab bar showing available panes.
func (a *App) renderPaneTabs() string {
	tabs := []struct {
		id    PaneID
		label string
	}{
		{PaneTasks, "Tasks"},
		{PaneCategories, "Categories"},
	}

	activeTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorPrimary).
		Bold(true)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var parts []string
	for _, tab := range tabs {
		label := tab.label
		if tab.id == a.activePane {
			label = activeTabStyle.Render("[" + label + "]")
		} else {
			label = inactiveTabStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}

	// Center the tabs
	tabBar := strings.Join(parts, "  ")
	padding := (a.width - lipgloss.Width(tabBar)) / 2
	if padding > 0 {
		tabBar = strings.Repeat(" ", padding) + tabBar
	}

	return tabBar
}

// renderGoodbye shows a nice exit message with the day's progress.
func (a *App) renderGoodbye() string {
	tasksDone, tasksTotal := a.taskPane.Stats()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you later!\n")
	b.WriteString("\n")

	if tasksTotal > 0 {
		pct := (tasksDone * 100) / tasksTotal
		b.WriteString(fmt.Sprintf("  Progress for %s: %d/%d (%d%%)\n", a.taskPane.day, tasksDone, tasksTotal, pct))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTitleBar creates the top title bar with the day, stats, and clock.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" daybook ")

	// Day being viewed, with a marker when it's today
	dayLabel := a.taskPane.day
	if t, err := time.Parse(storage.DayKey, a.taskPane.day); err == nil {
		dayLabel = t.Format("Mon Jan 2")
	}
	if a.taskPane.day == a.storage.Today() {
		dayLabel += " · today"
	}
	day := a.styles.DateStyle.Render(dayLabel)

	// Stats summary
	tasksDone, tasksTotal := a.taskPane.Stats()
	var stats string
	if tasksTotal > 0 {
		stats = a.styles.StatLabelStyle.Render(fmt.Sprintf("Tasks: %d/%d", tasksDone, tasksTotal))
	}

	// Current time
	clock := a.styles.DateStyle.Render(time.Now().Format("15:04"))

	// Calculate spacing
	titleWidth := lipgloss.Width(title)
	dayWidth := lipgloss.Width(day)
	statsWidth := lipgloss.Width(stats)
	clockWidth := lipgloss.Width(clock)

	usedWidth := titleWidth + dayWidth + statsWidth + clockWidth
	spacerWidth := a.width - usedWidth - 6
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	var parts []string
	parts = append(parts, title)
	parts = append(parts, "  "+day)

	if stats != "" {
		parts = append(parts, "  "+stats)
	}

	parts = append(parts, strings.Repeat(" ", spacerWidth))
	parts = append(parts, clock)

	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	// Input mode help
	if a.taskPane.IsAdding() {
		return a.styles.RenderHelp(
			"enter", "next/save",
			"esc", "cancel",
		)
	}

	if a.categoriesPane.IsAdding() {
		return a.styles.RenderHelp(
			"enter", "save",
			"esc", "cancel",
		)
	}

	// Normal mode help based on active pane
	switch a.activePane {
	case PaneTasks:
		return a.styles.RenderHelp(
			"a", "add",
			"d", "done",
			"x", "del",
			"←/→", "day",
			"tab", "pane",
			"?", "help",
		)
	case PaneCategories:
		return a.styles.RenderHelp(
			"a", "add",
			"x", "del",
			"j/k", "nav",
			"tab", "pane",
			"?", "help",
		)
	}

	return ""
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// truncateText shortens text to maxLen runes with an ellipsis.
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// NewProgram builds the Bubble Tea program without starting it, so callers
// can hand the program to background goroutines (the reminder scheduler
// pushes ReminderFiredMsg via program.Send) before running it.
func NewProgram(store *storage.Storage, styles *Styles, cfg *AppConfig) *tea.Program {
	app := NewApp(store, styles, cfg)
	return tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Enable mouse support
	)
}

// Run starts the Bubble Tea program with the given storage backend, styles, and config.
func Run(store *storage.Storage, styles *Styles, cfg *AppConfig) error {
	p := NewProgram(store, styles, cfg)
	_, err := p.Run()
	return err
}

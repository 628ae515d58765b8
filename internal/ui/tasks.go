// Package ui provides terminal user interface components for the daybook app.
package ui

import (
	"fmt"
	"strings"

	"daybook/internal/config"
	"daybook/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Add-flow steps. A task needs a title, a wall-clock time, and a category,
// collected one input at a time.
const (
	addStepTitle = iota
	addStepTime
	addStepCategory
)

// TaskPane handles one day's task list display and interactions.
type TaskPane struct {
	day     string
	tasks   []storage.Task
	cursor  int
	focused bool
	width   int
	height  int

	adding   bool
	addStep  int
	input    textinput.Model
	newTitle string
	newTime  string

	storage *storage.Storage
	styles  *Styles

	// Key bindings
	keys      TaskKeyMap
	inputKeys InputKeyMap
}

// NewTaskPane creates a new task pane showing the given day.
func NewTaskPane(store *storage.Storage, styles *Styles, day string) *TaskPane {
	return NewTaskPaneWithKeys(store, styles, day, &config.KeysConfig{})
}

// NewTaskPaneWithKeys creates a new task pane with custom key bindings.
func NewTaskPaneWithKeys(store *storage.Storage, styles *Styles, day string, keyCfg *config.KeysConfig) *TaskPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 100
	ti.Width = 40

	return &TaskPane{
		day:       day,
		tasks:     []storage.Task{},
		cursor:    0,
		focused:   true,
		input:     ti,
		storage:   store,
		styles:    styles,
		keys:      NewTaskKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// Day returns the day the pane is currently showing.
func (p *TaskPane) Day() string {
	return p.day
}

// SetDay switches the pane to a different day. The caller is responsible for
// issuing LoadTasksCmd to refresh the list.
func (p *TaskPane) SetDay(day string) {
	if day == p.day {
		return
	}
	p.day = day
	p.cursor = 0
	if p.adding {
		p.resetAddMode()
	}
}

// LoadTasksCmd returns a command that loads the pane's day asynchronously.
func (p *TaskPane) LoadTasksCmd() tea.Cmd {
	return loadTasksCmd(p.storage, p.day)
}

// setTasks replaces the task list and adjusts cursor bounds.
func (p *TaskPane) setTasks(tasks []storage.Task) {
	p.tasks = tasks
	if p.cursor >= len(p.tasks) {
		p.cursor = max(0, len(p.tasks)-1)
	}
}

// SetSize sets the pane dimensions.
func (p *TaskPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-4)
}

// SetFocused sets whether this pane is focused.
func (p *TaskPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *TaskPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether we're in add mode.
func (p *TaskPane) IsAdding() bool {
	return p.adding
}

// resetAddMode clears the multi-step add state.
func (p *TaskPane) resetAddMode() {
	p.adding = false
	p.addStep = addStepTitle
	p.newTitle = ""
	p.newTime = ""
	p.input.Reset()
	p.input.Placeholder = "What needs doing?"
	p.input.CharLimit = 100
}

// defaultCategory returns the suggested category for an empty input.
func (p *TaskPane) defaultCategory() string {
	if cats := p.storage.Categories(); len(cats) > 0 {
		return cats[0]
	}
	return "General"
}

// Update handles messages for the task pane.
func (p *TaskPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	// Handle async messages first
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		if msg.day == p.day {
			p.setTasks(msg.tasks)
		}
		return nil

	case taskAddedMsg:
		if msg.err == nil {
			// Reload to get updated list with new task
			return p.LoadTasksCmd()
		}
		return nil

	case taskToggledMsg, taskDeletedMsg, dayClearedMsg:
		// Reload to refresh task state
		return p.LoadTasksCmd()
	}

	// If we're adding a task, handle input
	if p.adding {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				return p.advanceAddStep()

			case key.Matches(msg, p.inputKeys.Cancel):
				p.resetAddMode()
				return nil
			}
		}

		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	// Normal mode
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(p.tasks) > 0 {
				p.cursor = min(p.cursor+1, len(p.tasks)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(p.tasks) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if len(p.tasks) > 0 {
				p.cursor = len(p.tasks) - 1
			}

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.addStep = addStepTitle
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Toggle):
			// Flip done asynchronously
			if len(p.tasks) > 0 && p.cursor < len(p.tasks) {
				task := p.tasks[p.cursor]
				return toggleTaskCmd(p.storage, p.day, task.ID, !task.Done)
			}

		case key.Matches(msg, p.keys.Delete):
			// Delete task asynchronously
			if len(p.tasks) > 0 && p.cursor < len(p.tasks) {
				task := p.tasks[p.cursor]
				return deleteTaskCmd(p.storage, p.day, task.ID)
			}
		}
	}

	return nil
}

// advanceAddStep moves the multi-step add flow forward on confirm.
func (p *TaskPane) advanceAddStep() tea.Cmd {
	value := strings.TrimSpace(p.input.Value())

	switch p.addStep {
	case addStepTitle:
		if value == "" {
			// Empty title cancels the whole flow
			p.resetAddMode()
			return nil
		}
		p.newTitle = value
		p.addStep = addStepTime
		p.input.Reset()
		p.input.Placeholder = "Time (HH:MM, e.g. 14:30)"
		p.input.CharLimit = 5
		return nil

	case addStepTime:
		if value == "" {
			// Time is required; stay on this step
			return nil
		}
		p.newTime = value
		p.addStep = addStepCategory
		p.input.Reset()
		p.input.Placeholder = fmt.Sprintf("Category (default: %s)", p.defaultCategory())
		p.input.CharLimit = 60
		return nil

	default: // addStepCategory
		category := value
		if category == "" {
			category = p.defaultCategory()
		}
		title, clock := p.newTitle, p.newTime
		p.resetAddMode()
		return addTaskCmd(p.storage, p.day, title, clock, category)
	}
}

// handleMouse processes mouse events for the task pane.
func (p *TaskPane) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if len(p.tasks) == 0 {
		return nil
	}

	// Content starts after title (1) + separator (1) = row 2
	const headerRows = 2

	// Mirror the view windowing logic so clicks map to the visible slice.
	maxTasks := p.height - 6 // Account for title, separator, input, progress
	if maxTasks < 3 {
		maxTasks = 5
	}
	startIdx := 0
	if p.cursor >= maxTasks {
		startIdx = p.cursor - maxTasks + 1
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.cursor = max(p.cursor-1, 0)
		return nil

	case tea.MouseButtonWheelDown:
		p.cursor = min(p.cursor+1, len(p.tasks)-1)
		return nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}

		// Calculate which task was clicked
		taskRow := msg.Y - headerRows
		if taskRow < 0 || taskRow >= maxTasks {
			return nil
		}

		taskIdx := startIdx + taskRow
		if taskIdx < 0 || taskIdx >= len(p.tasks) {
			return nil
		}

		// Move cursor to clicked task
		p.cursor = taskIdx

		// Check if click was on the checkbox area (first few chars)
		if msg.X < 5 {
			task := p.tasks[taskIdx]
			return toggleTaskCmd(p.storage, p.day, task.ID, !task.Done)
		}
	}

	return nil
}

// View renders the task pane.
func (p *TaskPane) View() string {
	var b strings.Builder

	// Title
	title := p.styles.PaneTitleStyle.Render("📋 TASKS")
	b.WriteString(title)
	b.WriteString("\n")

	// Separator
	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorMuted).Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	// Tasks list
	if len(p.tasks) == 0 && !p.adding {
		b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorTextMuted).Italic(true).Render("  No tasks for this day. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		// Calculate how many tasks we can show
		maxTasks := p.height - 6 // Account for title, separator, input, progress
		if maxTasks < 3 {
			maxTasks = 5
		}

		// Show tasks
		startIdx := 0
		if p.cursor >= maxTasks {
			startIdx = p.cursor - maxTasks + 1
		}

		for i, task := range p.tasks {
			if i < startIdx || i >= startIdx+maxTasks {
				continue
			}
			b.WriteString(p.renderTaskLine(i, task))
			b.WriteString("\n")
		}

		// Progress footer
		b.WriteString("\n")
		b.WriteString("  " + p.renderProgress())
		b.WriteString("\n")
	}

	// Input field when adding
	if p.adding {
		b.WriteString("\n")
		prompt := p.styles.InputPromptStyle.Render(p.addPrompt())
		b.WriteString(prompt + p.input.View())
		b.WriteString("\n")
	}

	// Apply pane style
	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// addPrompt labels the input with the current add step.
func (p *TaskPane) addPrompt() string {
	switch p.addStep {
	case addStepTime:
		return "🕐 "
	case addStepCategory:
		return "🏷  "
	default:
		return "+ "
	}
}

// renderTaskLine builds a single task row: checkbox, time, title, category,
// with a bell for tasks whose reminder already fired.
func (p *TaskPane) renderTaskLine(i int, task storage.Task) string {
	var checkbox string
	if task.Done {
		checkbox = p.styles.TaskCheckboxDone
	} else {
		checkbox = p.styles.TaskCheckboxPending
	}

	category := "(" + task.Category + ")"
	categoryWidth := runewidth.StringWidth(category)

	bell := ""
	bellWidth := 0
	if task.Reminded {
		bell = p.styles.ReminderBell
		bellWidth = 3 // emoji (2 cells) + space
	}

	// Layout: [space][checkbox][space][time][space][title][pad][category][space][bell]
	// Fixed parts: 1 + 3 + 1 + 5 + 1 = 11
	fixedWidth := 11 + categoryWidth + 1 + bellWidth
	availableTitleWidth := p.width - 4 - fixedWidth // 4 for pane padding/borders
	if availableTitleWidth < 5 {
		availableTitleWidth = 5
	}

	title := runewidth.Truncate(task.Title, availableTitleWidth, "..")
	titleWidth := runewidth.StringWidth(title)
	padding := availableTitleWidth - titleWidth
	if padding < 1 {
		padding = 1
	}

	if i == p.cursor && p.focused && !p.adding {
		// Selected: highlight entire line
		line := fmt.Sprintf("%s %s %s%s%s", checkbox, task.Time, title, strings.Repeat(" ", padding), category)
		if bell != "" {
			line += " " + bell
		}
		return p.styles.TaskSelectedStyle.Render(" " + line + " ")
	}

	var styledTitle string
	if task.Done {
		styledTitle = p.styles.TaskDoneStyle.Render(title)
	} else {
		styledTitle = p.styles.TaskPendingStyle.Render(title)
	}
	clock := p.styles.TaskTimeStyle.Render(task.Time)
	cat := p.styles.TaskCategoryStyle.Render(category)

	line := fmt.Sprintf(" %s %s %s%s%s", checkbox, clock, styledTitle, strings.Repeat(" ", padding), cat)
	if bell != "" {
		line += " " + bell
	}
	return line
}

// renderProgress renders the completion bar and counts for the day.
func (p *TaskPane) renderProgress() string {
	stats := storage.ComputeStats(p.tasks)
	if stats.Total == 0 {
		return p.styles.StatLabelStyle.Render("0/0 complete")
	}

	barWidth := min(20, max(8, p.width-24))
	filled := barWidth * stats.Percent / 100
	if filled > barWidth {
		filled = barWidth
	}
	bar := p.styles.ProgressFilledStyle.Render(strings.Repeat("█", filled)) +
		p.styles.ProgressEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	label := p.styles.StatLabelStyle.Render(fmt.Sprintf("%d/%d complete (%d%%)", stats.Done, stats.Total, stats.Percent))
	return bar + "  " + label
}

// Stats returns done and total counts for the pane's day.
func (p *TaskPane) Stats() (done, total int) {
	stats := storage.ComputeStats(p.tasks)
	return stats.Done, stats.Total
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

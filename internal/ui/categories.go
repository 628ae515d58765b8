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

// CategoriesPane handles the category registry display and interactions.
type CategoriesPane struct {
	categories []string
	cursor     int
	focused    bool
	width      int
	height     int

	adding bool
	input  textinput.Model

	storage *storage.Storage
	styles  *Styles

	keys      CategoryKeyMap
	inputKeys InputKeyMap
}

// NewCategoriesPane creates a new categories pane.
func NewCategoriesPane(store *storage.Storage, styles *Styles) *CategoriesPane {
	return NewCategoriesPaneWithKeys(store, styles, &config.KeysConfig{})
}

// NewCategoriesPaneWithKeys creates a new categories pane with custom key bindings.
func NewCategoriesPaneWithKeys(store *storage.Storage, styles *Styles, keyCfg *config.KeysConfig) *CategoriesPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "New category name"
	ti.CharLimit = 60
	ti.Width = 30

	return &CategoriesPane{
		categories: []string{},
		cursor:     0,
		focused:    false,
		input:      ti,
		storage:    store,
		styles:     styles,
		keys:       NewCategoryKeyMap(keyCfg),
		inputKeys:  NewInputKeyMap(keyCfg),
	}
}

// LoadCategoriesCmd returns a command that loads the registry asynchronously.
func (p *CategoriesPane) LoadCategoriesCmd() tea.Cmd {
	return loadCategoriesCmd(p.storage)
}

// setCategories replaces the label list and adjusts cursor bounds.
func (p *CategoriesPane) setCategories(categories []string) {
	p.categories = categories
	if p.cursor >= len(p.categories) {
		p.cursor = max(0, len(p.categories)-1)
	}
}

// SetSize sets the pane dimensions.
func (p *CategoriesPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-4)
}

// SetFocused sets whether this pane is focused.
func (p *CategoriesPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *CategoriesPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether we're in add mode.
func (p *CategoriesPane) IsAdding() bool {
	return p.adding
}

// Selected returns the label under the cursor, or "" when the list is empty.
func (p *CategoriesPane) Selected() string {
	if len(p.categories) == 0 || p.cursor >= len(p.categories) {
		return ""
	}
	return p.categories[p.cursor]
}

// Update handles messages for the categories pane.
func (p *CategoriesPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		p.setCategories(msg.categories)
		return nil

	case categoryAddedMsg, categoryDeletedMsg:
		return p.LoadCategoriesCmd()
	}

	if p.adding {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				label := strings.TrimSpace(p.input.Value())
				p.adding = false
				p.input.Reset()
				if label == "" {
					return nil
				}
				return addCategoryCmd(p.storage, label)

			case key.Matches(msg, p.inputKeys.Cancel):
				p.adding = false
				p.input.Reset()
				return nil
			}
		}

		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(p.categories) > 0 {
				p.cursor = min(p.cursor+1, len(p.categories)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(p.categories) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if len(p.categories) > 0 {
				p.cursor = len(p.categories) - 1
			}

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Delete):
			if label := p.Selected(); label != "" {
				return deleteCategoryCmd(p.storage, label)
			}
		}
	}

	return nil
}

// handleMouse processes mouse events for the categories pane.
func (p *CategoriesPane) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if len(p.categories) == 0 {
		return nil
	}

	// Content starts after title (1) + separator (1) = row 2
	const headerRows = 2

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.cursor = max(p.cursor-1, 0)

	case tea.MouseButtonWheelDown:
		p.cursor = min(p.cursor+1, len(p.categories)-1)

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		idx := msg.Y - headerRows
		if idx >= 0 && idx < len(p.categories) {
			p.cursor = idx
		}
	}

	return nil
}

// View renders the categories pane.
func (p *CategoriesPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("🏷  CATEGORIES")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorMuted).Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	if len(p.categories) == 0 && !p.adding {
		b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorTextMuted).Italic(true).Render("  No categories. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		for i, label := range p.categories {
			b.WriteString(p.renderCategoryLine(i, label))
			b.WriteString("\n")
		}
	}

	if p.adding {
		b.WriteString("\n")
		prompt := p.styles.InputPromptStyle.Render("+ ")
		b.WriteString(prompt + p.input.View())
		b.WriteString("\n")
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// renderCategoryLine builds a single registry row.
func (p *CategoriesPane) renderCategoryLine(i int, label string) string {
	maxWidth := p.width - 8
	if maxWidth < 5 {
		maxWidth = 20
	}
	display := runewidth.Truncate(label, maxWidth, "..")

	if i == p.cursor && p.focused && !p.adding {
		return p.styles.CategorySelectedStyle.Render(fmt.Sprintf(" • %s ", display))
	}
	return p.styles.CategoryItemStyle.Render(fmt.Sprintf("  • %s", display))
}

// Count returns the number of registered categories.
func (p *CategoriesPane) Count() int {
	return len(p.categories)
}

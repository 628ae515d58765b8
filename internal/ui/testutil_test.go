package ui

import (
	"testing"

	"daybook/internal/config"
	"daybook/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest prepares the test environment for deterministic rendering.
// It disables colors to ensure consistent output across environments.
func setupTest(t *testing.T) {
	t.Helper()
	// Use ASCII profile to disable all color codes in output
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStorage creates a Storage instance with a temporary directory.
func createTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	return store
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// keyMsg builds a rune key press message.
func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// enterMsg builds an enter key press message.
func enterMsg() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// escMsg builds an escape key press message.
func escMsg() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

// typeString feeds each rune of s into the pane's input via Update.
func typeString(t *testing.T, update func(tea.Msg) tea.Cmd, s string) {
	t.Helper()
	for _, r := range s {
		update(keyMsg(r))
	}
}

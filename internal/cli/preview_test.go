package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/atomgrid/pkg/layout"
)

func testTrapListModel(t *testing.T) TrapListModel {
	t.Helper()
	doc := layout.NewDocument(layout.NewSquareLattice(5, 5, 5))
	return newTrapListModel(doc, map[int]string{0: "q0", 12: "q1"})
}

func TestTrapListNavigation(t *testing.T) {
	m := testTrapListModel(t)

	// Down moves the cursor
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(TrapListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}

	// Up moves it back; never below zero
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(TrapListModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(TrapListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestTrapListCursorStaysInRange(t *testing.T) {
	m := testTrapListModel(t)

	for i := 0; i < 100; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(TrapListModel)
	}
	if m.Cursor != len(m.Doc.Traps)-1 {
		t.Errorf("cursor = %d, want %d", m.Cursor, len(m.Doc.Traps)-1)
	}
}

func TestTrapListQuits(t *testing.T) {
	m := testTrapListModel(t)

	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
	}
	for _, key := range keys {
		if _, cmd := m.Update(key); cmd == nil {
			t.Errorf("key %q should quit", key.String())
		}
	}
}

func TestTrapListView(t *testing.T) {
	m := testTrapListModel(t)
	view := m.View()

	if !strings.Contains(view, m.Doc.Slug) {
		t.Error("view should contain the layout slug")
	}
	if !strings.Contains(view, "q0") {
		t.Error("view should show the occupied trap's qubit ID")
	}
	if !strings.Contains(view, "[1/25]") {
		t.Error("view should show the cursor position")
	}
}

func TestTrapListWindowResize(t *testing.T) {
	m := testTrapListModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	m = next.(TrapListModel)
	if m.Height != 5 {
		t.Errorf("height = %d, want clamped minimum 5", m.Height)
	}
}

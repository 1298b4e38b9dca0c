package pick

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testFiles() []string {
	return []string{"/in/a.xlsx", "/in/b.xls", "/in/c.xlsx", "/in/d.xlsx", "/in/e.xlsx"}
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

func key(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPickerStartsFullySelected(t *testing.T) {
	m := initialModel(testFiles(), 15)
	if got := m.countSelected(); got != 5 {
		t.Errorf("countSelected() = %d, want 5", got)
	}
}

func TestPickerToggle(t *testing.T) {
	m := initialModel(testFiles(), 15)

	m = press(t, m, key(tea.KeySpace))
	if m.selected[0] {
		t.Error("first file should be unselected after toggle")
	}
	if got := m.countSelected(); got != 4 {
		t.Errorf("countSelected() = %d, want 4", got)
	}

	m = press(t, m, key(tea.KeyDown), key(tea.KeySpace), key(tea.KeySpace))
	if !m.selected[1] {
		t.Error("second file should be selected after a double toggle")
	}
}

func TestPickerToggleAll(t *testing.T) {
	m := initialModel(testFiles(), 15)

	m = press(t, m, runeKey('a'))
	if got := m.countSelected(); got != 0 {
		t.Errorf("countSelected() after clearing = %d, want 0", got)
	}

	m = press(t, m, runeKey('a'))
	if got := m.countSelected(); got != 5 {
		t.Errorf("countSelected() after reselecting = %d, want 5", got)
	}

	// A partial selection selects everything first.
	m = press(t, m, key(tea.KeySpace), runeKey('a'))
	if got := m.countSelected(); got != 5 {
		t.Errorf("countSelected() from partial = %d, want 5", got)
	}
}

func TestPickerPaging(t *testing.T) {
	m := initialModel(testFiles(), 2)

	// Walking off the bottom of a page advances to the next one.
	m = press(t, m, key(tea.KeyDown), key(tea.KeyDown))
	if m.page != 1 || m.cursor != 0 {
		t.Fatalf("page/cursor = %d/%d, want 1/0", m.page, m.cursor)
	}
	if got := m.currentIndex(); got != 2 {
		t.Errorf("currentIndex() = %d, want 2", got)
	}

	// The last page holds a single file; down is a no-op there.
	m = press(t, m, key(tea.KeyRight))
	if m.page != 2 {
		t.Fatalf("page = %d, want 2", m.page)
	}
	m = press(t, m, key(tea.KeyDown))
	if m.page != 2 || m.cursor != 0 {
		t.Errorf("page/cursor = %d/%d, want 2/0", m.page, m.cursor)
	}

	// Walking up from the top of a page returns to the bottom of the
	// previous one.
	m = press(t, m, key(tea.KeyUp))
	if m.page != 1 || m.cursor != 1 {
		t.Errorf("page/cursor = %d/%d, want 1/1", m.page, m.cursor)
	}
	if got := m.currentIndex(); got != 3 {
		t.Errorf("currentIndex() = %d, want 3", got)
	}
}

func TestPickerConfirm(t *testing.T) {
	m := initialModel(testFiles(), 15)

	next, cmd := m.Update(key(tea.KeyEnter))
	m = next.(model)

	if !m.confirmed {
		t.Error("enter should confirm the selection")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestPickerQuitWithoutConfirm(t *testing.T) {
	m := initialModel(testFiles(), 15)

	next, cmd := m.Update(runeKey('q'))
	m = next.(model)

	if m.confirmed {
		t.Error("q should not confirm the selection")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestPickerView(t *testing.T) {
	m := initialModel(testFiles(), 2)
	m = press(t, m, key(tea.KeySpace))

	view := m.View()

	for _, want := range []string{
		"Select workbooks to transform",
		"Selected: 4/5",
		"Page 1/3",
		"[ ] a.xlsx",
		"[x] b.xls",
		"enter: run",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	// Files on later pages stay off screen.
	if strings.Contains(view, "c.xlsx") {
		t.Errorf("view should not list files beyond the current page:\n%s", view)
	}
}

func TestRunPickTUIEmptyList(t *testing.T) {
	files, err := RunPickTUI(nil, 10)
	if err != nil {
		t.Fatalf("RunPickTUI() error = %v", err)
	}
	if files != nil {
		t.Errorf("RunPickTUI() = %v, want nil", files)
	}
}

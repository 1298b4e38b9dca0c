package pick

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// model is the interactive workbook picker. Every discovered file starts
// selected; the user prunes the list and confirms with enter.
type model struct {
	files    []string
	selected map[int]bool

	cursor  int
	page    int
	perPage int

	confirmed bool

	width  int
	height int

	titleStyle   lipgloss.Style
	cursorStyle  lipgloss.Style
	normalStyle  lipgloss.Style
	checkedStyle lipgloss.Style
	helpStyle    lipgloss.Style
	statusStyle  lipgloss.Style
}

func initialModel(files []string, perPage int) model {
	selected := make(map[int]bool, len(files))
	for i := range files {
		selected[i] = true
	}

	return model{
		files:    files,
		selected: selected,
		perPage:  perPage,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		cursorStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		checkedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.page > 0 {
				m.page--
				m.cursor = m.perPage - 1
			}

		case "down", "j":
			if m.cursor < m.maxCursor() {
				m.cursor++
			} else if m.hasNextPage() {
				m.page++
				m.cursor = 0
			}

		case "left", "h":
			if m.page > 0 {
				m.page--
				m.cursor = 0
			}

		case "right", "l":
			if m.hasNextPage() {
				m.page++
				m.cursor = 0
			}

		case " ":
			idx := m.currentIndex()
			if idx < len(m.files) {
				m.selected[idx] = !m.selected[idx]
			}

		case "a":
			// Toggle all: if anything is unselected, select everything,
			// otherwise clear.
			all := true
			for i := range m.files {
				if !m.selected[i] {
					all = false
					break
				}
			}
			for i := range m.files {
				m.selected[i] = !all
			}

		case "enter":
			m.confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) currentIndex() int {
	return m.page*m.perPage + m.cursor
}

func (m model) maxCursor() int {
	onPage := len(m.files) - m.page*m.perPage
	if onPage > m.perPage {
		return m.perPage - 1
	}
	return onPage - 1
}

func (m model) hasNextPage() bool {
	return (m.page+1)*m.perPage < len(m.files)
}

func (m model) countSelected() int {
	n := 0
	for i := range m.files {
		if m.selected[i] {
			n++
		}
	}
	return n
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Select workbooks to transform"))
	b.WriteString("\n\n")

	status := fmt.Sprintf("Selected: %d/%d", m.countSelected(), len(m.files))
	b.WriteString(m.statusStyle.Render(status))
	b.WriteString("\n")

	totalPages := int(math.Ceil(float64(len(m.files)) / float64(m.perPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	b.WriteString(m.helpStyle.Render(fmt.Sprintf("Page %d/%d", m.page+1, totalPages)))
	b.WriteString("\n\n")

	start := m.page * m.perPage
	end := start + m.perPage
	if end > len(m.files) {
		end = len(m.files)
	}

	for i := start; i < end; i++ {
		mark := "[ ]"
		style := m.normalStyle
		if m.selected[i] {
			mark = "[x]"
			style = m.checkedStyle
		}
		if i-start == m.cursor {
			style = m.cursorStyle
		}
		line := fmt.Sprintf("%s %s", mark, filepath.Base(m.files[i]))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "↑↓: navigate | ←→: page | space: toggle | a: toggle all | enter: run | q: quit"
	b.WriteString(m.helpStyle.Render(help))

	return b.String()
}

// RunPickTUI shows the picker over the discovered workbooks and returns the
// subset the user confirmed with enter. An aborted session returns no files
// and no error.
func RunPickTUI(files []string, perPage int) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if perPage <= 0 {
		perPage = 15
	}

	p := tea.NewProgram(initialModel(files, perPage), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running TUI: %v", err)
	}

	final := finalModel.(model)
	if !final.confirmed {
		return nil, nil
	}

	var chosen []string
	for i, f := range final.files {
		if final.selected[i] {
			chosen = append(chosen, f)
		}
	}
	return chosen, nil
}

package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxFragment bounds the SVG preview shown for the selected member.
const maxFragment = 600

var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	detailStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// inspectModel is the bubbletea model behind `inspect -i`.
type inspectModel struct {
	Name   string
	Rows   []memberRow
	Cursor int
	Offset int
	Height int
	Width  int
	Detail bool
}

func newInspectModel(name string, rows []memberRow) inspectModel {
	return inspectModel{Name: name, Rows: rows, Height: 15, Width: 80, Detail: true}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m = m.move(-1)
		case "down", "j":
			m = m.move(1)
		case "pgup":
			m = m.move(-m.Height)
		case "pgdown":
			m = m.move(m.Height)
		case "home", "g":
			m = m.move(-len(m.Rows))
		case "end", "G":
			m = m.move(len(m.Rows))
		case "enter", " ":
			m.Detail = !m.Detail
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = max(msg.Height-14, 5)
		m = m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the rows, and scrolls the
// window to keep it visible.
func (m inspectModel) move(delta int) inspectModel {
	if len(m.Rows) == 0 {
		return m
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Rows)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ toggle preview  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("no geometries"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))
	b.WriteString(memberTable(m.Rows[m.Offset:end], m.Cursor).Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	if m.Detail {
		r := m.Rows[m.Cursor]
		fragment := r.Fragment
		if runes := []rune(fragment); len(runes) > maxFragment {
			fragment = string(runes[:maxFragment]) + "…"
		}
		body := StyleNumber.Render(r.Kind) + StyleDim.Render("  view box ") + StyleValue.Render(formatBounds(r.Bounds)) +
			"\n\n" + StyleValue.Render(fragment)
		b.WriteString("\n")
		b.WriteString(detailStyle.Width(max(m.Width-4, 20)).Render(body))
	}
	return b.String()
}

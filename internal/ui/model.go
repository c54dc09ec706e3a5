package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/daysplit/internal/calendar"
	"github.com/faizmokh/daysplit/internal/journal"
)

// chromeLines is the number of rows taken by the header and footer.
const chromeLines = 4

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model owns Bubble Tea state for paging through split journals.
type Model struct {
	ctx    context.Context
	reader *journal.Reader

	days     []calendar.Date
	index    int
	day      journal.Day
	viewport viewport.Model
	width    int

	loading    bool
	statusLine string
	errorLine  string
}

type daysLoadedMsg struct {
	days []calendar.Date
	err  error
}

type dayLoadedMsg struct {
	day journal.Day
	err error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, reader *journal.Reader) Model {
	return Model{
		ctx:        ctx,
		reader:     reader,
		viewport:   viewport.New(80, 20),
		width:      80,
		loading:    true,
		statusLine: "Loading journals...",
	}
}

// Init lists the available days.
func (m Model) Init() tea.Cmd {
	return m.loadDaysCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeLines, 1)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case daysLoadedMsg:
		return m.handleDaysLoaded(msg)
	case dayLoadedMsg:
		return m.handleDayLoaded(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "right", "l", "n":
		return m.gotoIndex(m.index + 1)
	case "left", "h", "p":
		return m.gotoIndex(m.index - 1)
	case "g", "home":
		return m.gotoIndex(0)
	case "G", "end":
		return m.gotoIndex(len(m.days) - 1)
	case "r":
		m.loading = true
		m.statusLine = "Reloading..."
		m.errorLine = ""
		return m, m.loadDaysCmd()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) gotoIndex(index int) (tea.Model, tea.Cmd) {
	if len(m.days) == 0 || m.loading {
		return m, nil
	}
	if index < 0 || index >= len(m.days) {
		m.statusLine = "No more journals in that direction."
		return m, nil
	}

	m.index = index
	m.loading = true
	m.statusLine = fmt.Sprintf("Loading %s...", m.days[index])
	m.errorLine = ""
	return m, m.loadDayCmd(m.days[index])
}

func (m Model) handleDaysLoaded(msg daysLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to list journals: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.days = msg.days
	if len(m.days) == 0 {
		m.statusLine = "No journals yet. Run daysplit split <export-file> first."
		m.viewport.SetContent("")
		return m, nil
	}

	// Keep the selection on the same date across reloads when it still exists.
	index := len(m.days) - 1
	for i, d := range m.days {
		if d == m.day.Date {
			index = i
			break
		}
	}
	m.index = index
	m.loading = true
	return m, m.loadDayCmd(m.days[index])
}

func (m Model) handleDayLoaded(msg dayLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		if errors.Is(msg.err, journal.ErrDayNotFound) {
			m.errorLine = "That journal was removed; press r to reload."
		} else {
			m.errorLine = fmt.Sprintf("Failed to load journal: %v", msg.err)
		}
		m.statusLine = ""
		return m, nil
	}

	m.day = msg.day
	m.viewport.SetContent(msg.day.Content)
	m.viewport.GotoTop()
	m.statusLine = fmt.Sprintf("Day %d of %d", m.index+1, len(m.days))
	m.errorLine = ""
	return m, nil
}

func (m Model) loadDaysCmd() tea.Cmd {
	ctx := m.ctx
	reader := m.reader
	return func() tea.Msg {
		days, err := reader.Days(ctx)
		return daysLoadedMsg{days: days, err: err}
	}
}

func (m Model) loadDayCmd(date calendar.Date) tea.Cmd {
	ctx := m.ctx
	reader := m.reader
	return func() tea.Msg {
		day, err := reader.Day(ctx, date)
		return dayLoadedMsg{day: day, err: err}
	}
}

// View renders the current day with navigation hints.
func (m Model) View() string {
	var b strings.Builder

	title := "daysplit"
	if !m.day.Date.IsZero() {
		title = fmt.Sprintf("daysplit · %s", m.day.Date)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')
	b.WriteString(borderStyle.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteByte('\n')
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')

	if m.errorLine != "" {
		b.WriteString(errorStyle.Render(m.errorLine))
	} else {
		b.WriteString(mutedStyle.Render(m.statusLine + "  ·  h/l day  g/G first/last  j/k scroll  r reload  q quit"))
	}
	return b.String()
}

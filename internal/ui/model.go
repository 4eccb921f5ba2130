package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/syllabus/internal/schedule"
)

// LoadFunc reads the schedule the viewer displays.
type LoadFunc func(ctx context.Context) ([]schedule.Week, error)

// Model owns Bubble Tea state for the schedule viewer.
type Model struct {
	ctx   context.Context
	load  LoadFunc
	title string

	weeks    []schedule.Week
	selected int
	loaded   bool

	loading    bool
	statusLine string
	errorLine  string

	keys   keyMap
	styles styles
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Current key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "previous week")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "next week")),
		Current: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "current week")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Current, k.Reload, k.Quit}
}

type styles struct {
	title    lipgloss.Style
	current  lipgloss.Style
	selected lipgloss.Style
	detail   lipgloss.Style
	err      lipgloss.Style
	help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		current:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		selected: lipgloss.NewStyle().Reverse(true),
		detail:   lipgloss.NewStyle().Faint(true),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		help:     lipgloss.NewStyle().Faint(true),
	}
}

type weeksLoadedMsg struct {
	weeks []schedule.Week
	err   error
}

// NewModel seeds a Bubble Tea model that shows the schedule returned by load.
func NewModel(ctx context.Context, title string, load LoadFunc) Model {
	return Model{
		ctx:        ctx,
		load:       load,
		title:      title,
		loading:    true,
		statusLine: "Loading schedule...",
		keys:       defaultKeyMap(),
		styles:     defaultStyles(),
	}
}

// Init loads the schedule.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update wires TUI state transitions from user input and async loads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case weeksLoadedMsg:
		return m.handleLoaded(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.weeks)-1 {
			m.selected++
			m.statusLine = fmt.Sprintf("Week %d of %d", m.selected+1, len(m.weeks))
			m.errorLine = ""
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.statusLine = fmt.Sprintf("Week %d of %d", m.selected+1, len(m.weeks))
			m.errorLine = ""
		}
	case key.Matches(msg, m.keys.Current):
		if idx := currentIndex(m.weeks); idx >= 0 {
			m.selected = idx
			m.statusLine = "Jumped to the current week."
		} else {
			m.statusLine = "No week contains today."
		}
		m.errorLine = ""
	case key.Matches(msg, m.keys.Reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.statusLine = "Reloading..."
		m.errorLine = ""
		return m, m.loadCmd()
	}
	return m, nil
}

func (m Model) handleLoaded(msg weeksLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = msg.err.Error()
		m.statusLine = ""
		return m, nil
	}

	m.weeks = msg.weeks
	m.errorLine = ""
	if !m.loaded {
		m.selected = 0
		if idx := currentIndex(m.weeks); idx >= 0 {
			m.selected = idx
		}
		m.loaded = true
	}
	if m.selected >= len(m.weeks) {
		m.selected = max(len(m.weeks)-1, 0)
	}

	m.statusLine = fmt.Sprintf("Loaded %d week%s.", len(m.weeks), plural(len(m.weeks)))
	return m, nil
}

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	ctx := m.ctx
	return func() tea.Msg {
		if load == nil {
			return weeksLoadedMsg{err: fmt.Errorf("no schedule loader configured")}
		}
		weeks, err := load(ctx)
		return weeksLoadedMsg{weeks: weeks, err: err}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(m.title))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", lipgloss.Width(m.title)))
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.weeks) == 0:
		b.WriteString("Loading...\n")
	case len(m.weeks) == 0:
		b.WriteString("(no weeks)\n")
	default:
		for i, week := range m.weeks {
			m.writeWeek(&b, i, week)
		}
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.err.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.helpLine()))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) writeWeek(b *strings.Builder, i int, week schedule.Week) {
	cursor := " "
	if i == m.selected {
		cursor = ">"
	}
	marker := " "
	if week.CurrentWeek {
		marker = "*"
	}

	line := fmt.Sprintf("%s %s Week %-4s %10s  %s", cursor, marker, strings.TrimSpace(week.Label), week.Date, strings.TrimSpace(week.Topic))
	switch {
	case i == m.selected:
		line = m.styles.selected.Render(line)
	case week.CurrentWeek:
		line = m.styles.current.Render(line)
	}
	b.WriteString(line)
	b.WriteByte('\n')

	if i == m.selected {
		if project := strings.TrimSpace(week.Project); project != "" {
			b.WriteString(m.styles.detail.Render("      Project: " + project))
			b.WriteByte('\n')
		}
	}
}

func (m Model) helpLine() string {
	parts := make([]string, 0, len(m.keys.bindings()))
	for _, binding := range m.keys.bindings() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func currentIndex(weeks []schedule.Week) int {
	for i, week := range weeks {
		if week.CurrentWeek {
			return i
		}
	}
	return -1
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

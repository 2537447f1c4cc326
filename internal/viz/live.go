package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
	"github.com/BanaanKiamanesh/Shilling/internal/rk"
	"github.com/BanaanKiamanesh/Shilling/internal/tableau"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps one integration at the frame rate and renders the
// trajectory so far.
type Model struct {
	tb      *tableau.Tableau
	stepper *rk.Stepper
	problem string

	state   ode.State
	initial ode.State
	t, dt   float64
	history []float64
	running bool
	failed  error
}

func NewModel(tb *tableau.Tableau, f ode.Func, problem string, y0 ode.State, dt float64) Model {
	return Model{
		tb:      tb,
		stepper: rk.NewStepper(tb, f),
		problem: problem,
		state:   y0.Clone(),
		initial: y0.Clone(),
		dt:      dt,
		history: make([]float64, 0, historyCapacity),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initial.Clone()
			m.t = 0
			m.history = m.history[:0]
			m.failed = nil
			m.running = true
		}
	case TickMsg:
		if m.running && m.failed == nil {
			m.step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	next, err := m.stepper.Step(m.t, m.dt, m.state)
	if err != nil || !next.IsValid() {
		if err == nil {
			err = ode.ErrUnstable
		}
		m.failed = err
		m.running = false
		return
	}
	m.state = next
	m.t += m.dt
	if len(m.history) == historyCapacity {
		copy(m.history, m.history[1:])
		m.history = m.history[:historyCapacity-1]
	}
	m.history = append(m.history, m.state[0])
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s / %s", m.problem, m.tb.Name)))
	sb.WriteString("\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
		)
		sb.WriteString(graphStyle.Render(graph))
		sb.WriteString("\n")
	}

	rows := []struct{ label, value string }{
		{"order", fmt.Sprintf("%d", m.tb.Order)},
		{"stages", fmt.Sprintf("%d", m.tb.Stages)},
		{"storage", m.tb.Storage.String()},
		{"t", fmt.Sprintf("%.3f", m.t)},
		{"y0", fmt.Sprintf("%.6f", m.state[0])},
	}
	for _, r := range rows {
		sb.WriteString(labelStyle.Render(r.label))
		sb.WriteString(valueStyle.Render(r.value))
		sb.WriteString("\n")
	}
	if m.failed != nil {
		sb.WriteString(valueStyle.Render(fmt.Sprintf("stopped: %v", m.failed)))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	return sb.String()
}

// RunLive drives the live view until the user quits.
func RunLive(tb *tableau.Tableau, f ode.Func, problem string, y0 ode.State, dt float64) error {
	p := tea.NewProgram(NewModel(tb, f, problem, y0, dt))
	_, err := p.Run()
	return err
}

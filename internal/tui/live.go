// Package tui renders a live curvature dashboard in the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/tensorwerk/geodyn/internal/engine"
)

const historyCapacity = 120

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	matrixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 2)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model steps the engine once per frame and renders the current metric,
// the Ricci-scalar history, and singularity alerts.
type Model struct {
	eng      *engine.Engine
	src      engine.Source
	maxTicks int

	last    *engine.TickRecord
	history []float64
	alerts  int
	ticks   int
	paused  bool
	done    bool
	err     error

	width  int
	height int
}

func NewModel(eng *engine.Engine, src engine.Source, maxTicks int) Model {
	return Model{
		eng:      eng,
		src:      src,
		maxTicks: maxTicks,
		history:  make([]float64, 0, historyCapacity),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd { return frameTick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.done || m.err != nil {
			return m, nil
		}
		if m.paused {
			return m, frameTick()
		}

		obs, ok := m.src.Next()
		if !ok || (m.maxTicks > 0 && m.ticks >= m.maxTicks) {
			m.done = true
			return m, nil
		}

		rec, err := m.eng.Tick(obs)
		if err != nil {
			m.err = err
			return m, nil
		}

		m.last = rec
		m.ticks++
		m.alerts += len(rec.Singularities)
		m.history = append(m.history, rec.RicciScalar)
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}

		return m, frameTick()
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("geodyn live curvature"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(alertStyle.Render("tick failed: " + m.err.Error()))
		b.WriteString(helpStyle.Render("\nq: quit"))
		return b.String()
	}

	if m.last == nil {
		b.WriteString(valueStyle.Render("waiting for first tick..."))
		return b.String()
	}

	b.WriteString(labelStyle.Render("tick") + valueStyle.Render(fmt.Sprintf("%d", m.last.Tick)) + "\n")
	b.WriteString(labelStyle.Render("ricci scalar") + valueStyle.Render(fmt.Sprintf("%+.6e", m.last.RicciScalar)) + "\n")
	b.WriteString(labelStyle.Render("alerts") + valueStyle.Render(fmt.Sprintf("%d", m.alerts)) + "\n\n")

	var matrix strings.Builder
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			matrix.WriteString(fmt.Sprintf("%+12.4e ", m.last.Metric[i][j]))
		}
		matrix.WriteString("\n")
	}
	b.WriteString(matrixStyle.Render(matrix.String()))
	b.WriteString("\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(8),
			asciigraph.Width(min(m.width-10, historyCapacity)),
			asciigraph.Caption("ricci scalar"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	if len(m.last.Singularities) > 0 {
		b.WriteString(alertStyle.Render(fmt.Sprintf("SINGULARITY r_s=%.4g", m.last.Singularities[0].Radius)))
		b.WriteString("\n")
	}

	status := "running"
	if m.paused {
		status = "paused"
	}
	if m.done {
		status = "done"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s] space: pause  q: quit", status)))

	return b.String()
}

// Run blocks until the dashboard exits.
func Run(eng *engine.Engine, src engine.Source, maxTicks int) error {
	_, err := tea.NewProgram(NewModel(eng, src, maxTicks)).Run()
	return err
}

// Package tui is a live terminal view of a running simulation: the same
// integrator stepped at a frame rate, with body positions projected onto the
// x/y plane of a braille canvas. It records nothing and sits entirely
// outside the batch run path.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/orbit-lab/newtonian/internal/body"
	"github.com/orbit-lab/newtonian/internal/dynamics"
	"github.com/orbit-lab/newtonian/internal/metrics"
)

const (
	canvasCols = 72
	canvasRows = 20
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// Model steps and renders the simulation. One integration step per frame.
type Model struct {
	bodies  []body.Body
	initial []body.Body
	dt, g   float64
	fps     int
	step    int
	running bool
	canvas  *canvas
}

func NewModel(bodies []body.Body, dt, g float64, fps int) Model {
	return Model{
		bodies:  body.Clone(bodies),
		initial: body.Clone(bodies),
		dt:      dt,
		g:       g,
		fps:     fps,
		running: true,
		canvas:  newCanvas(canvasCols, canvasRows),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
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
			m.bodies = body.Clone(m.initial)
			m.step = 0
		}
	case tickMsg:
		if m.running {
			dynamics.Step(m.bodies, m.dt, m.g)
			m.step++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.drawBodies()

	var stats strings.Builder
	status := "running"
	if !m.running {
		status = pausedStyle.Render("paused")
	}
	fmt.Fprintf(&stats, "%s%s\n", labelStyle.Render("status"), status)
	fmt.Fprintf(&stats, "%s%s\n", labelStyle.Render("step"), valueStyle.Render(fmt.Sprintf("%d", m.step)))
	fmt.Fprintf(&stats, "%s%s\n", labelStyle.Render("sim time"), valueStyle.Render(fmt.Sprintf("%.3fs", float64(m.step)*m.dt)))
	fmt.Fprintf(&stats, "%s%s\n", labelStyle.Render("bodies"), valueStyle.Render(fmt.Sprintf("%d", len(m.bodies))))
	fmt.Fprintf(&stats, "%s%s\n", labelStyle.Render("energy"), valueStyle.Render(fmt.Sprintf("%.6e", metrics.TotalEnergy(m.bodies, m.g))))

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("newtonian live"),
		canvasStyle.Render(m.canvas.String()),
		stats.String(),
		helpStyle.Render("space pause · r reset · q quit"),
	)
}

// drawBodies projects x/y positions onto the canvas, auto-scaled each frame
// to the current extent so escaping bodies stay in view.
func (m Model) drawBodies() {
	m.canvas.clear()

	extent := 1e-9
	for _, b := range m.bodies {
		if !b.Position.IsFinite() {
			continue
		}
		if v := abs(b.Position.X); v > extent {
			extent = v
		}
		if v := abs(b.Position.Y); v > extent {
			extent = v
		}
	}

	w := canvasCols * 2
	h := canvasRows * 4
	for _, b := range m.bodies {
		if !b.Position.IsFinite() {
			continue
		}
		x := int((b.Position.X/extent + 1) / 2 * float64(w-1))
		y := int((1 - b.Position.Y/extent) / 2 * float64(h-1))
		m.canvas.plot(x, y)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Run starts the live view and blocks until the user quits.
func Run(bodies []body.Body, dt, g float64, fps int) error {
	p := tea.NewProgram(NewModel(bodies, dt, g, fps))
	_, err := p.Run()
	return err
}

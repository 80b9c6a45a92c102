// Package ui provides the terminal sky chart using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/skychart/internal/astro"
	"github.com/litescript/skychart/internal/surface"
	"github.com/litescript/skychart/internal/version"
)

const (
	// Header takes two lines, footer two
	chromeHeight = 4

	// Manual adjustment steps
	rotationStepDeg = 2.0
	refDecStepDeg   = 2.0
	opacityStep     = 0.1

	// Sidereal refresh cadence
	siderealTick = time.Second
)

// TickMsg triggers sidereal rotation updates.
type TickMsg time.Time

// Model is the root Bubble Tea model. All view mutations flow through the
// surface binding, which owns the re-render policy.
type Model struct {
	binding *surface.Binding
	grid    *surface.CellGrid

	width  int
	height int
	ready  bool

	sidereal bool
	lonDeg   float64
}

// New creates the chart model around an existing binding and its grid.
func New(binding *surface.Binding, grid *surface.CellGrid, sidereal bool, lonDeg float64) Model {
	return Model{
		binding:  binding,
		grid:     grid,
		sidereal: sidereal,
		lonDeg:   lonDeg,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			m.sidereal = false
			m.binding.SetRotation(m.binding.ViewState().Rotation - astro.DegToRad(rotationStepDeg))
		case "right", "l":
			m.sidereal = false
			m.binding.SetRotation(m.binding.ViewState().Rotation + astro.DegToRad(rotationStepDeg))

		case "up", "k":
			m.adjustRefDec(refDecStepDeg)
		case "down", "j":
			m.adjustRefDec(-refDecStepDeg)

		case "+", "=":
			m.adjustOpacity(opacityStep)
		case "-", "_":
			m.adjustOpacity(-opacityStep)

		case "v":
			m.binding.SetVisible(!m.binding.ViewState().Visible)

		case "t":
			m.sidereal = !m.sidereal
			if m.sidereal {
				m.binding.SetRotation(astro.RotationAt(time.Now(), m.lonDeg))
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		chartHeight := msg.Height - chromeHeight
		if chartHeight < 0 {
			chartHeight = 0
		}
		m.grid.Resize(msg.Width, chartHeight)
		m.binding.Resize(msg.Width, chartHeight)

	case TickMsg:
		if m.sidereal {
			m.binding.SetRotation(astro.RotationAt(time.Now(), m.lonDeg))
		} else {
			// Pick up frames skipped by the redraw limiter
			m.binding.Redraw()
		}
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.grid.String())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	view := m.binding.ViewState()

	title := titleStyle.Render("Sky Chart")
	ver := dimStyle.Render("v" + version.Version)

	mode := "manual"
	if m.sidereal {
		mode = "sidereal"
	}
	params := dimStyle.Render(fmt.Sprintf("rot:%.1f° dec:%.1f° opacity:%.0f%% [%s]",
		astro.WrapAngle180(astro.RadToDeg(view.Rotation)),
		astro.RadToDeg(view.RefDec),
		view.Opacity*100,
		mode,
	))

	state := ""
	if !view.Visible {
		state = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27")).Render(" [hidden]")
	}

	return fmt.Sprintf("%s %s | %s%s\n", title, ver, params, state)
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	return "\n" + dimStyle.Render("  ←/→: rotate | ↑/↓: declination | +/-: opacity | v: visibility | t: sidereal | q: quit")
}

func (m *Model) adjustRefDec(stepDeg float64) {
	dec := astro.RadToDeg(m.binding.ViewState().RefDec) + stepDeg
	m.binding.SetRefDec(astro.DegToRad(astro.ClampDec(dec)))
}

func (m *Model) adjustOpacity(step float64) {
	o := m.binding.ViewState().Opacity + step
	if o < 0 {
		o = 0
	} else if o > 1 {
		o = 1
	}
	m.binding.SetOpacity(o)
}

func tickCmd() tea.Cmd {
	return tea.Tick(siderealTick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

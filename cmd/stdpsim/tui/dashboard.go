/*
=================================================================================
LIVE TERMINAL DASHBOARD
=================================================================================

A small bubbletea program that drives a stepdriver.Driver one step per
frame and renders a weight histogram alongside the current step count,
using github.com/charmbracelet/bubbletea and
github.com/charmbracelet/lipgloss for a terminal UI over a running
simulation.

Nothing in the core engine (delayline, neuron, synapse, stepdriver) imports
this package; it is strictly a consumer of their exported surface.
=================================================================================
*/
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SynapticNetworks/stdp-core/stepdriver"
	"github.com/SynapticNetworks/stdp-core/synapse"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return func() tea.Msg { return tickMsg{} }
}

type model struct {
	driver *stepdriver.Driver
	update stepdriver.NeuronUpdateFunc
	store  *synapse.Store
	steps  int
	done   bool
	err    error
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		if m.done {
			return m, nil
		}
		if err := m.driver.Step(m.update); err != nil {
			m.err = err
			m.done = true
			return m, tea.Quit
		}
		if int(m.driver.CurrentStep()) >= m.steps {
			m.done = true
			return m, tea.Quit
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headerStyle.Render("stdpsim live dashboard"))
	fmt.Fprintf(&b, "%s\n\n", dimStyle.Render(fmt.Sprintf("step %d / %d", m.driver.CurrentStep(), m.steps)))

	b.WriteString(dimStyle.Render("weight histogram (synapse index order)") + "\n")
	b.WriteString(weightHistogram(m.store) + "\n\n")
	b.WriteString(dimStyle.Render("press q to quit") + "\n")

	return b.String()
}

// weightHistogram renders each synapse's weight as a proportional bar
// scaled against that synapse's own Wex ceiling.
func weightHistogram(store *synapse.Store) string {
	var b strings.Builder
	const width = 40

	for i := range store.W {
		wex := store.Params[i].Wex
		frac := 0.0
		if wex > 0 {
			frac = store.W[i] / wex
		}
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		filled := int(frac * width)
		bar := strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
		fmt.Fprintf(&b, "%3d %s %.3e\n", i, barStyle.Render(bar), store.W[i])
	}
	return b.String()
}

// Run drives driver for the given number of steps, rendering a live
// dashboard until completion or the user quits.
func Run(driver *stepdriver.Driver, update stepdriver.NeuronUpdateFunc, store *synapse.Store, steps int) error {
	m := model{driver: driver, update: update, store: store, steps: steps}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

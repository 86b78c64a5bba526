// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/monadic/minihabit/pkg/wizard"
)

// WizardModel is the bubbletea model for the habit wizard. All step logic is
// delegated to pkg/wizard; the model only owns widgets and the warning line.
type WizardModel struct {
	state wizard.State

	// Widgets
	input    textinput.Model
	cursor   int // Selected option on choice steps
	viewport viewport.Model
	width    int
	height   int

	warning  string
	showHelp bool

	// Result
	finished bool
	quit     bool

	logger *SessionLogger
}

// Wizard styles
var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				MarginBottom(1)

	wizardProgressStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	wizardProgressBarFull = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82"))

	wizardProgressBarEmpty = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	wizardQuestionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardExampleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Foreground(lipgloss.Color("252")).
				Padding(0, 1)

	wizardSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true)

	wizardLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	wizardHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	wizardWarningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))
)

// NewWizardModel creates a wizard positioned at the state's step.
func NewWizardModel(state wizard.State, logger *SessionLogger) WizardModel {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 60

	m := WizardModel{
		state:    state.Normalize(),
		input:    ti,
		viewport: viewport.New(76, 16),
		width:    80,
		height:   24,
		logger:   logger,
	}
	m.enterStep()
	return m
}

// State returns the wizard state as it is now.
func (m WizardModel) State() wizard.State {
	return m.state
}

// Finished reports whether the user completed the wizard rather than quitting.
func (m WizardModel) Finished() bool {
	return m.finished
}

// Init initializes the model
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	screen := wizard.Render(m.state)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit

		case "enter":
			return m.submit(screen)

		case "tab":
			if screen.Example != nil {
				m = m.apply(wizard.Toggle(screen.Example.Flag))
			}
			return m, nil

		case "f1":
			m.showHelp = true
			return m, nil
		}

		// Keys that would otherwise be typed into the text input
		if screen.Input != wizard.InputText {
			switch msg.String() {
			case "q":
				m.quit = true
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "up", "k":
				if screen.Input == wizard.InputChoice {
					if m.cursor > 0 {
						m.cursor--
					}
					return m, nil
				}
			case "down", "j":
				if screen.Input == wizard.InputChoice {
					if m.cursor < len(screen.Options)-1 {
						m.cursor++
					}
					return m, nil
				}
			case "r":
				if screen.CanRestart {
					m = m.apply(wizard.RestartAction())
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 10
		if m.viewport.Height < 5 {
			m.viewport.Height = 5
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch screen.Input {
	case wizard.InputText:
		m.input, cmd = m.input.Update(msg)
	case wizard.InputNone:
		if screen.Step == wizard.StepSummary {
			m.viewport, cmd = m.viewport.Update(msg)
		}
	}
	return m, cmd
}

// submit proceeds from the current step.
func (m WizardModel) submit(screen wizard.Screen) (tea.Model, tea.Cmd) {
	var raw string
	switch screen.Input {
	case wizard.InputText:
		raw = m.input.Value()
	case wizard.InputChoice:
		if m.cursor < len(screen.Options) {
			raw = screen.Options[m.cursor].Value
		}
	case wizard.InputNone:
		if screen.Step == wizard.StepClosing {
			m.finished = true
			return m, tea.Quit
		}
	}
	return m.apply(wizard.Submit(screen.Step, raw)), nil
}

// apply runs a through the wizard and updates the widgets for the result.
func (m WizardModel) apply(a wizard.Action) WizardModel {
	next, err := wizard.Transition(m.state, a)
	m.logger.Transition(m.state, a, next, err)

	if vf, ok := wizard.AsValidationFailure(err); ok {
		// Keep the typed text so the user can correct it.
		m.state = next
		m.warning = vf.Message
		return m
	}

	stepChanged := next.Step != m.state.Step
	m.state = next
	if a.Kind == wizard.ActionToggleExample {
		return m
	}
	m.warning = ""
	if stepChanged {
		m.enterStep()
	}
	return m
}

// enterStep resets the widgets for the current step, prefilling committed answers.
func (m *WizardModel) enterStep() {
	screen := wizard.Render(m.state)

	m.input.Reset()
	m.input.Blur()
	m.cursor = 0

	switch screen.Input {
	case wizard.InputText:
		m.input.Placeholder = screen.Placeholder
		m.input.SetValue(screen.Value)
		m.input.CursorEnd()
		m.input.Focus()
	case wizard.InputChoice:
		for i, o := range screen.Options {
			if o.Value == screen.Value {
				m.cursor = i
			}
		}
	case wizard.InputNone:
		if screen.Step == wizard.StepSummary {
			m.viewport.SetContent(renderSummary(screen))
			m.viewport.GotoTop()
		}
	}
}

// View renders the UI
func (m WizardModel) View() string {
	if m.quit {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	screen := wizard.Render(m.state)
	var b strings.Builder

	b.WriteString(m.renderHeader(screen))
	b.WriteString("\n")

	b.WriteString(wizardQuestionStyle.Render(screen.Title))
	b.WriteString("\n")
	for _, line := range screen.Body {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch screen.Input {
	case wizard.InputText:
		b.WriteString(wizardLabelStyle.Render(screen.Label))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case wizard.InputChoice:
		b.WriteString(wizardLabelStyle.Render(screen.Label))
		b.WriteString("\n")
		b.WriteString(m.renderOptions(screen))
	case wizard.InputNone:
		if screen.Step == wizard.StepSummary {
			b.WriteString(m.viewport.View())
			b.WriteString("\n")
		}
	}

	if screen.Example != nil && screen.Example.Visible {
		b.WriteString("\n")
		b.WriteString(wizardExampleStyle.Render("Examples:\n" + bulletList(screen.Example.Lines)))
		b.WriteString("\n")
	}

	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(wizardWarningStyle.Render("! " + m.warning))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp(screen))
	return b.String()
}

// renderHeader renders the title and progress bar
func (m WizardModel) renderHeader(screen wizard.Screen) string {
	progress := float64(screen.Step) / float64(screen.Total)
	barWidth := 20
	filled := int(progress * float64(barWidth))
	empty := barWidth - filled

	progressBar := wizardProgressBarFull.Render(strings.Repeat("█", filled)) +
		wizardProgressBarEmpty.Render(strings.Repeat("░", empty))

	stepInfo := fmt.Sprintf("Step %d of %d", screen.Step, screen.Total)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		wizardTitleStyle.Render("MINIMAL HABIT MAKER"),
		"  ",
		progressBar,
		"  ",
		wizardProgressStyle.Render(stepInfo),
	)
}

func (m WizardModel) renderOptions(screen wizard.Screen) string {
	var b strings.Builder
	for i, o := range screen.Options {
		if i == m.cursor {
			b.WriteString(wizardSelectedStyle.Render("(•) " + o.Label))
		} else {
			b.WriteString("( ) " + o.Label)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderHelp renders context-sensitive help
func (m WizardModel) renderHelp(screen wizard.Screen) string {
	var parts []string
	switch screen.Input {
	case wizard.InputText:
		parts = append(parts, "enter next")
	case wizard.InputChoice:
		parts = append(parts, "↑↓ choose", "enter next")
	case wizard.InputNone:
		if screen.Step == wizard.StepClosing {
			parts = append(parts, "enter finish")
		} else {
			parts = append(parts, "↑↓ scroll", "enter next")
		}
	}
	if screen.Example != nil {
		if screen.Example.Visible {
			parts = append(parts, "tab hide example")
		} else {
			parts = append(parts, "tab show example")
		}
	}
	if screen.CanRestart {
		parts = append(parts, "r start over")
	}
	parts = append(parts, "f1 help", "esc quit")
	return wizardHelpStyle.Render(strings.Join(parts, "  "))
}

// renderHelpOverlay renders a full-screen help overlay
func (m WizardModel) renderHelpOverlay() string {
	var b strings.Builder

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("82")).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(key, desc string) {
		b.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-5s", key)), descStyle.Render(desc)))
	}

	b.WriteString(wizardTitleStyle.Render("MINIMAL HABIT MAKER - KEYBOARD SHORTCUTS"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("GLOBAL"))
	b.WriteString("\n")
	row("enter", "Confirm the answer and go to the next step")
	row("tab", "Show or hide examples (where available)")
	row("f1", "Toggle this help overlay")
	row("esc", "Quit the wizard")

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("CHOICES AND SUMMARY"))
	b.WriteString("\n")
	row("↑/k", "Move up")
	row("↓/j", "Move down")
	row("?", "Toggle this help overlay")
	row("r", "Start over, keeping your answers")
	row("q", "Quit the wizard")

	b.WriteString("\n")
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true)
	b.WriteString(footerStyle.Render("Press any key to close this help"))

	return b.String()
}

// renderSummary renders the answers shown on the summary step.
func renderSummary(screen wizard.Screen) string {
	var b strings.Builder
	for _, it := range screen.Summary {
		b.WriteString(wizardLabelStyle.Render(it.Label))
		b.WriteString("\n")
		b.WriteString("  " + it.Value)
		b.WriteString("\n")
	}
	return b.String()
}

func bulletList(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "- " + l
	}
	return strings.Join(out, "\n")
}

// RunWizard starts the wizard as a full-screen TUI and returns the final model.
func RunWizard(state wizard.State, logger *SessionLogger) (WizardModel, error) {
	p := tea.NewProgram(NewWizardModel(state, logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return WizardModel{}, err
	}
	m, ok := final.(WizardModel)
	if !ok {
		return WizardModel{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m, nil
}

// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/monadic/minihabit/pkg/wizard"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyF1    = tea.KeyMsg{Type: tea.KeyF1}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msgs to m one by one, the way the program loop would.
func press(m WizardModel, msgs ...tea.Msg) WizardModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(WizardModel)
	}
	return m
}

// testModelAt creates a model at step with some answers already committed.
func testModelAt(step wizard.Step) WizardModel {
	s := wizard.NewState()
	s.Answers[wizard.FieldHabit] = "Run daily"
	s.Answers[wizard.FieldStartSmall] = "Put on running shoes"
	s.Step = step
	return NewWizardModel(s, nil)
}

func TestWizardStep1View(t *testing.T) {
	m := NewWizardModel(wizard.NewState(), nil)
	view := m.View()

	if !strings.Contains(view, "What habit do you want to build?") {
		t.Error("expected view to contain the step 1 question")
	}
	if !strings.Contains(view, "Step 1 of 10") {
		t.Error("expected view to contain progress info")
	}
}

func TestWizardBlankHabitShowsWarning(t *testing.T) {
	m := NewWizardModel(wizard.NewState(), nil)
	m = press(m, runes("   "), keyEnter)

	if m.State().Step != wizard.StepHabit {
		t.Fatalf("expected to stay on step 1, got %s", m.State().Step)
	}
	if !strings.Contains(m.View(), "Describe the habit you want to build") {
		t.Error("expected warning in view")
	}
	if m.input.Value() != "   " {
		t.Errorf("expected typed text to be kept, got %q", m.input.Value())
	}
}

func TestWizardHabitAdvances(t *testing.T) {
	m := NewWizardModel(wizard.NewState(), nil)
	m = press(m, runes("  Run daily  "), keyEnter)

	if m.State().Step != wizard.StepStartSmall {
		t.Fatalf("expected step 2, got %s", m.State().Step)
	}
	if got := m.State().Answers[wizard.FieldHabit]; got != "Run daily" {
		t.Errorf("expected trimmed habit, got %q", got)
	}
	if m.warning != "" {
		t.Errorf("expected warning to be cleared, got %q", m.warning)
	}
	if m.input.Value() != "" {
		t.Errorf("expected empty input on step 2, got %q", m.input.Value())
	}
}

func TestWizardWarningClearsAfterSuccess(t *testing.T) {
	m := NewWizardModel(wizard.NewState(), nil)
	m = press(m, keyEnter)
	if m.warning == "" {
		t.Fatal("expected a warning for empty input")
	}
	m = press(m, runes("Read"), keyEnter)
	if m.warning != "" {
		t.Errorf("expected no warning, got %q", m.warning)
	}
}

func TestWizardExampleToggle(t *testing.T) {
	m := testModelAt(wizard.StepStartSmall)
	if strings.Contains(m.View(), "Examples:") {
		t.Fatal("example should start hidden")
	}

	m = press(m, keyTab)
	if !strings.Contains(m.View(), "just put on your running clothes") {
		t.Error("expected example lines after tab")
	}
	if m.State().Step != wizard.StepStartSmall {
		t.Errorf("toggling changed the step to %s", m.State().Step)
	}

	m = press(m, keyTab)
	if strings.Contains(m.View(), "Examples:") {
		t.Error("expected example hidden after second tab")
	}
}

func TestWizardToggleKeepsDraft(t *testing.T) {
	m := testModelAt(wizard.StepPrep)
	m = press(m, runes("shoes"), keyTab)

	if m.input.Value() != "shoes" {
		t.Errorf("expected draft to survive toggle, got %q", m.input.Value())
	}
}

func TestWizardTooBigLoopsBack(t *testing.T) {
	m := testModelAt(wizard.StepConfirmSize)
	if !strings.Contains(m.View(), "Put on running shoes") {
		t.Error("expected current first step in view")
	}

	m = press(m, keyDown, keyEnter)

	if m.State().Step != wizard.StepStartSmall {
		t.Fatalf("expected loop back to step 2, got %s", m.State().Step)
	}
	if m.input.Value() != "Put on running shoes" {
		t.Errorf("expected previous answer prefilled, got %q", m.input.Value())
	}
}

func TestWizardSmallEnoughContinues(t *testing.T) {
	m := testModelAt(wizard.StepConfirmSize)
	m = press(m, keyEnter)

	if m.State().Step != wizard.StepAnchor {
		t.Fatalf("expected step 4, got %s", m.State().Step)
	}
	if !strings.Contains(m.View(), `"Run daily"`) {
		t.Error("expected habit in the anchor question")
	}
}

func TestWizardChoiceCursorBounds(t *testing.T) {
	m := testModelAt(wizard.StepTime)
	m = press(m, keyDown, keyDown, keyDown)
	if m.cursor != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", m.cursor)
	}
	m = press(m, runes("k"), runes("k"))
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped at 0, got %d", m.cursor)
	}
}

func TestWizardFullFlowAndRestart(t *testing.T) {
	m := NewWizardModel(wizard.NewState(), nil)
	m = press(m,
		runes("Run daily"), keyEnter,
		runes("Put on shoes"), keyEnter,
		keyEnter,
		runes("after breakfast"), keyEnter,
		keyDown, keyEnter,
		keyEnter,
		keyEnter,
		runes("a sticker"), keyEnter,
	)
	if m.State().Step != wizard.StepSummary {
		t.Fatalf("expected summary, got %s", m.State().Step)
	}

	view := m.View()
	for _, want := range []string{"Run daily", "Put on shoes", "after breakfast", "It is not fixed", "(none)", "a sticker"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected summary to contain %q", want)
		}
	}

	m = press(m, keyEnter)
	if m.State().Step != wizard.StepClosing {
		t.Fatalf("expected closing step, got %s", m.State().Step)
	}

	before := m.State().Answers
	m = press(m, runes("r"))
	if m.State().Step != wizard.StepHabit {
		t.Fatalf("expected restart to step 1, got %s", m.State().Step)
	}
	if m.input.Value() != "Run daily" {
		t.Errorf("expected habit prefilled after restart, got %q", m.input.Value())
	}
	for k, v := range before {
		if m.State().Answers[k] != v {
			t.Errorf("answer %s changed on restart: %q -> %q", k, v, m.State().Answers[k])
		}
	}
}

func TestWizardRestartFromSummary(t *testing.T) {
	m := testModelAt(wizard.StepSummary)
	m = press(m, runes("r"))
	if m.State().Step != wizard.StepHabit {
		t.Errorf("expected step 1, got %s", m.State().Step)
	}
}

func TestWizardRestartIgnoredOnTextStep(t *testing.T) {
	m := testModelAt(wizard.StepPrep)
	m = press(m, runes("r"))
	if m.State().Step != wizard.StepPrep {
		t.Errorf("expected to stay on prep, got %s", m.State().Step)
	}
	if m.input.Value() != "r" {
		t.Errorf("expected r to be typed, got %q", m.input.Value())
	}
}

func TestWizardOutOfRangeStartsAtStep1(t *testing.T) {
	m := testModelAt(wizard.Step(99))
	if !strings.Contains(m.View(), "What habit do you want to build?") {
		t.Error("expected step 1 content for an invalid step")
	}
}

func TestWizardHelpOverlay(t *testing.T) {
	m := testModelAt(wizard.StepHabit)
	m = press(m, keyF1)
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Fatal("expected help overlay")
	}
	m = press(m, runes("x"))
	if strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("expected any key to close the help overlay")
	}
	if m.input.Value() != "Run daily" {
		t.Errorf("closing help should not type into the input, got %q", m.input.Value())
	}
}

func TestWizardWindowResize(t *testing.T) {
	m := testModelAt(wizard.StepSummary)
	m = press(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.viewport.Width != 116 || m.viewport.Height != 30 {
		t.Errorf("unexpected viewport size %dx%d", m.viewport.Width, m.viewport.Height)
	}
}

// --- teatest: drive the model through a real program loop ---

func TestWizardProgramFinish(t *testing.T) {
	m := testModelAt(wizard.StepClosing)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	tm.Send(keyEnter)

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second)).(WizardModel)
	if !fm.Finished() {
		t.Error("expected enter on the closing step to finish the wizard")
	}
}

func TestWizardProgramTypingAndQuit(t *testing.T) {
	m := NewWizardModel(wizard.NewState(), nil)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	tm.Type("Stretch")
	tm.Send(keyEnter)
	tm.Send(keyEsc)

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second)).(WizardModel)
	if fm.Finished() {
		t.Error("esc should quit without finishing")
	}
	if fm.State().Step != wizard.StepStartSmall {
		t.Errorf("expected step 2, got %s", fm.State().Step)
	}
	if got := fm.State().Answers[wizard.FieldHabit]; got != "Stretch" {
		t.Errorf("expected habit 'Stretch', got %q", got)
	}
}

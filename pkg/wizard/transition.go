// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package wizard

import (
	"fmt"
	"slices"
	"strings"
)

// ActionKind enumerates the user actions the wizard understands.
type ActionKind int

const (
	ActionSubmit        ActionKind = iota // Proceed from the current step
	ActionToggleExample                   // Open or close an example panel
	ActionRestart                         // Go back to the first step
)

func (k ActionKind) String() string {
	switch k {
	case ActionSubmit:
		return "submit"
	case ActionToggleExample:
		return "toggle-example"
	case ActionRestart:
		return "restart"
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action is one user interaction.
type Action struct {
	Kind    ActionKind
	Step    Step    // Step the submission was made on (ActionSubmit)
	Input   string  // Raw input (ActionSubmit)
	Example Example // Panel to toggle (ActionToggleExample)
}

// Submit builds an ActionSubmit for step with the raw input.
func Submit(step Step, input string) Action {
	return Action{Kind: ActionSubmit, Step: step, Input: input}
}

// Toggle builds an ActionToggleExample for e.
func Toggle(e Example) Action {
	return Action{Kind: ActionToggleExample, Example: e}
}

// RestartAction builds an ActionRestart.
func RestartAction() Action {
	return Action{Kind: ActionRestart}
}

// Transition applies a to s and returns the resulting state. The only error it
// returns is a *ValidationFailure, in which case the returned state equals s
// (with an invalid step normalised).
func Transition(s State, a Action) (State, error) {
	s = s.Normalize()
	switch a.Kind {
	case ActionSubmit:
		return SubmitStep(s, a.Step, a.Input)
	case ActionToggleExample:
		return ToggleExample(s, a.Example), nil
	case ActionRestart:
		return Restart(s), nil
	}
	return s.clone(), nil
}

// SubmitStep validates raw for step and, on success, commits the trimmed value
// and advances. A step that does not match the current one is a stale
// submission and leaves the state unchanged.
func SubmitStep(s State, step Step, raw string) (State, error) {
	out := s.Normalize().clone()
	if step != out.Step {
		return out, nil
	}

	def := steps[step]
	value := strings.TrimSpace(raw)

	switch def.input {
	case InputText:
		if def.required && value == "" {
			return out, &ValidationFailure{Step: step, Field: def.field, Message: def.warning}
		}
		out.Answers[def.field] = value
		out.Step = def.next

	case InputChoice:
		if value == "" {
			value = def.options[0].Value
		}
		if !slices.ContainsFunc(def.options, func(o Option) bool { return o.Value == value }) {
			return out, &ValidationFailure{Step: step, Field: def.field, Message: def.warning}
		}
		out.Answers[def.field] = value
		out.Step = def.next
		if step == StepConfirmSize && value == ChoiceTooBig {
			out.Step = StepStartSmall
		}

	case InputNone:
		if def.next.Valid() {
			out.Step = def.next
		}
	}
	return out, nil
}

// ToggleExample flips the example flag e. The step never changes.
func ToggleExample(s State, e Example) State {
	out := s.clone()
	out.Examples[e] = !out.Examples[e]
	return out
}

// Restart moves back to the first step, keeping every answer so the user can
// revise them instead of retyping.
func Restart(s State) State {
	out := s.clone()
	out.Step = StepHabit
	return out
}

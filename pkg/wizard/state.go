// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

// Package wizard implements the step-transition logic and session state of the
// minimal habit wizard. Everything in this package is pure: operations take a
// State value and return a new one, so any frontend (TUI, line prompts, tests)
// can drive the same flow without a UI host.
package wizard

import (
	"fmt"
	"maps"
)

// Step identifies one screen of the wizard.
type Step int

// Wizard steps, in order.
const (
	StepHabit       Step = iota + 1 // What habit to build
	StepStartSmall                  // Smallest first step
	StepConfirmSize                 // Is the first step small enough?
	StepAnchor                      // Existing habit to chain after
	StepTime                        // Is the time of day fixed?
	StepPlace                       // Can the place be fixed?
	StepPrep                        // Preparation to start within 20 seconds
	StepReward                      // Reward after doing it
	StepSummary                     // Review of all answers
	StepClosing                     // Closing message with restart
)

// TotalSteps is the number of steps in the flow.
const TotalSteps = int(StepClosing)

// Valid reports whether s is a member of the step enumeration.
func (s Step) Valid() bool {
	return s >= StepHabit && s <= StepClosing
}

func (s Step) String() string {
	switch s {
	case StepHabit:
		return "habit"
	case StepStartSmall:
		return "start-small"
	case StepConfirmSize:
		return "confirm-size"
	case StepAnchor:
		return "anchor"
	case StepTime:
		return "time"
	case StepPlace:
		return "place"
	case StepPrep:
		return "prep"
	case StepReward:
		return "reward"
	case StepSummary:
		return "summary"
	case StepClosing:
		return "closing"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Field names an answer. The values double as keys in exported plans and logs.
type Field string

const (
	FieldHabit       Field = "habit"
	FieldStartSmall  Field = "start_small"
	FieldConfirmSize Field = "confirm_size"
	FieldAnchorHabit Field = "anchor_habit"
	FieldTimeFixed   Field = "time_fixed"
	FieldPlaceFixed  Field = "place_fixed"
	FieldPrep        Field = "prep"
	FieldReward      Field = "reward"
)

// Fields lists every answer field in step order.
var Fields = []Field{
	FieldHabit,
	FieldStartSmall,
	FieldConfirmSize,
	FieldAnchorHabit,
	FieldTimeFixed,
	FieldPlaceFixed,
	FieldPrep,
	FieldReward,
}

// Example names a toggleable example panel.
type Example string

const (
	ExampleStartSmall Example = "show_example_2"
	ExampleAnchor     Example = "show_example_4"
	ExamplePrep       Example = "show_example_7"
)

// Choice values for the radio steps.
const (
	ChoiceSmallEnough = "small_enough"
	ChoiceTooBig      = "too_big"

	ChoiceTimeFixed    = "fixed"
	ChoiceTimeNotFixed = "not_fixed"

	ChoicePlaceFixed = "can_fix"
	ChoicePlaceHard  = "hard_to_fix"
)

// State is the whole session: the step pointer, the committed answers and the
// example panel flags. The zero value is usable and behaves like NewState().
type State struct {
	Step     Step
	Answers  map[Field]string
	Examples map[Example]bool
}

// NewState returns a fresh session positioned at the first step.
func NewState() State {
	return State{
		Step:     StepHabit,
		Answers:  make(map[Field]string),
		Examples: make(map[Example]bool),
	}
}

// Answer returns the committed value of f and whether it was ever committed.
func (s State) Answer(f Field) (string, bool) {
	v, ok := s.Answers[f]
	return v, ok
}

// ExampleVisible reports whether the example panel e is open.
func (s State) ExampleVisible(e Example) bool {
	return s.Examples[e]
}

// Normalize returns s with an invalid step reset to StepHabit.
func (s State) Normalize() State {
	if !s.Step.Valid() {
		s.Step = StepHabit
	}
	return s
}

// clone copies the maps so the returned state shares nothing with s.
func (s State) clone() State {
	out := State{
		Step:     s.Step,
		Answers:  make(map[Field]string, len(s.Answers)),
		Examples: make(map[Example]bool, len(s.Examples)),
	}
	maps.Copy(out.Answers, s.Answers)
	maps.Copy(out.Examples, s.Examples)
	return out
}

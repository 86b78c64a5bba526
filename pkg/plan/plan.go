// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

// Package plan turns the committed answers of a wizard session into a habit
// plan that can be printed or exported.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/monadic/minihabit/pkg/wizard"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Plan is a snapshot of a finished (or partially finished) session.
type Plan struct {
	Session       string    `yaml:"session,omitempty"`
	Created       time.Time `yaml:"created"`
	Habit         string    `yaml:"habit"`
	StartSmall    string    `yaml:"start_small"`
	SizeConfirmed bool      `yaml:"size_confirmed"`
	AnchorHabit   string    `yaml:"anchor_habit,omitempty"`
	TimeFixed     *bool     `yaml:"time_fixed,omitempty"`
	PlaceFixed    *bool     `yaml:"place_fixed,omitempty"`
	Prep          string    `yaml:"prep,omitempty"`
	Reward        string    `yaml:"reward,omitempty"`
}

// FromState builds a Plan from the committed answers in s. Unanswered choice
// questions stay nil so they can be told apart from a "no".
func FromState(s wizard.State, session string, created time.Time) Plan {
	p := Plan{
		Session:     session,
		Created:     created.UTC(),
		Habit:       s.Answers[wizard.FieldHabit],
		StartSmall:  s.Answers[wizard.FieldStartSmall],
		AnchorHabit: s.Answers[wizard.FieldAnchorHabit],
		Prep:        s.Answers[wizard.FieldPrep],
		Reward:      s.Answers[wizard.FieldReward],
	}
	p.SizeConfirmed = s.Answers[wizard.FieldConfirmSize] == wizard.ChoiceSmallEnough
	p.TimeFixed = choice(s, wizard.FieldTimeFixed, wizard.ChoiceTimeFixed)
	p.PlaceFixed = choice(s, wizard.FieldPlaceFixed, wizard.ChoicePlaceFixed)
	return p
}

func choice(s wizard.State, f wizard.Field, yes string) *bool {
	v, ok := s.Answers[f]
	if !ok || v == "" {
		return nil
	}
	b := v == yes
	return &b
}

// Complete reports whether the required answers are present.
func (p Plan) Complete() bool {
	return p.Habit != "" && p.StartSmall != ""
}

// Text renders the plan as plain text for printing after the wizard exits.
func (p Plan) Text() string {
	var b strings.Builder
	b.WriteString("Your minimal habit plan\n")
	b.WriteString(strings.Repeat("-", 23) + "\n")

	row := func(f wizard.Field, v string) {
		label := titleCaser.String(strings.ReplaceAll(string(f), "_", " "))
		b.WriteString(fmt.Sprintf("%-14s %s\n", label+":", v))
	}
	row(wizard.FieldHabit, orDefault(p.Habit, "(not entered)"))
	row(wizard.FieldStartSmall, orDefault(p.StartSmall, "(not entered)"))
	row(wizard.FieldAnchorHabit, orDefault(p.AnchorHabit, "(none)"))
	row(wizard.FieldTimeFixed, yesNo(p.TimeFixed))
	row(wizard.FieldPlaceFixed, yesNo(p.PlaceFixed))
	row(wizard.FieldPrep, orDefault(p.Prep, "(none)"))
	row(wizard.FieldReward, orDefault(p.Reward, "(none)"))
	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return "(not answered)"
	case *b:
		return "yes"
	default:
		return "no"
	}
}

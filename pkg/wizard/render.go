// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package wizard

import "fmt"

// Screen is a frontend-neutral description of what to show for a state.
type Screen struct {
	Step        Step
	Total       int
	Title       string
	Body        []string
	Input       InputKind
	Field       Field
	Label       string
	Placeholder string
	Value       string // Committed answer, used to prefill the input
	Options     []Option
	Example     *ExamplePanel
	Summary     []SummaryItem
	CanRestart  bool
}

// ExamplePanel is the optional example box of a step.
type ExamplePanel struct {
	Flag    Example
	Visible bool
	Lines   []string
}

// SummaryItem is one labelled answer on the summary screen.
type SummaryItem struct {
	Label string
	Field Field
	Value string
}

// Render describes the screen for s. An invalid step renders as the first step.
// Render never modifies s.
func Render(s State) Screen {
	s = s.Normalize()
	def := steps[s.Step]

	sc := Screen{
		Step:        s.Step,
		Total:       TotalSteps,
		Title:       def.title,
		Body:        append([]string(nil), def.body...),
		Input:       def.input,
		Field:       def.field,
		Label:       def.label,
		Placeholder: def.placeholder,
		Options:     append([]Option(nil), def.options...),
		CanRestart:  s.Step == StepSummary || s.Step == StepClosing,
	}
	if def.field != "" {
		sc.Value = s.Answers[def.field]
	}
	if def.example != "" {
		sc.Example = &ExamplePanel{
			Flag:    def.example,
			Visible: s.Examples[def.example],
			Lines:   append([]string(nil), def.exampleLines...),
		}
	}

	switch s.Step {
	case StepConfirmSize:
		current := s.Answers[FieldStartSmall]
		if current == "" {
			current = notEnteredText
		}
		sc.Body = append(sc.Body,
			"The first step you have in mind:",
			"  "+current,
			"Could you start from here, or could it be even smaller?")

	case StepAnchor:
		if habit := s.Answers[FieldHabit]; habit != "" {
			sc.Title = fmt.Sprintf("Is there something you already do that %q could follow?", habit)
		} else {
			sc.Title = "Is there something you already do that this habit could follow?"
		}

	case StepSummary:
		sc.Summary = summarize(s)
	}
	return sc
}

func summarize(s State) []SummaryItem {
	items := make([]SummaryItem, 0, len(summaryRows))
	for _, row := range summaryRows {
		v, ok := s.Answers[row.field]
		switch {
		case row.field == FieldTimeFixed || row.field == FieldPlaceFixed:
			if !ok || v == "" {
				v = notAnsweredText
			} else {
				v = OptionLabel(row.field, v)
			}
		case row.field == FieldHabit || row.field == FieldStartSmall:
			if v == "" {
				v = notEnteredText
			}
		default:
			if v == "" {
				v = noneText
			}
		}
		items = append(items, SummaryItem{Label: row.label, Field: row.field, Value: v})
	}
	return items
}

// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package wizard

// InputKind describes the widget a step asks for.
type InputKind int

const (
	InputNone   InputKind = iota // Read-only screen
	InputText                    // Single line of text
	InputChoice                  // One of a fixed set of options
)

// Option is one entry of a choice step.
type Option struct {
	Value string
	Label string
}

// stepDef is the static description of a step.
type stepDef struct {
	title        string
	body         []string
	field        Field
	input        InputKind
	required     bool
	label        string
	placeholder  string
	options      []Option
	example      Example
	exampleLines []string
	warning      string
	next         Step
}

const choiceWarning = "Pick one of the options."

var steps = map[Step]stepDef{
	StepHabit: {
		title:       "What habit do you want to build?",
		field:       FieldHabit,
		input:       InputText,
		required:    true,
		label:       "Habit",
		placeholder: "e.g. I want to make strength training a habit",
		warning:     "Describe the habit you want to build in a few words.",
		next:        StepStartSmall,
	},
	StepStartSmall: {
		title: "Starting small is the trick. Where could you start?",
		body: []string{
			"It is fine if it feels almost pointless. Smaller is better.",
		},
		field:       FieldStartSmall,
		input:       InputText,
		required:    true,
		label:       "Where could you start?",
		placeholder: "e.g. one push-up, open the book for 5 minutes",
		example:     ExampleStartSmall,
		exampleLines: []string{
			"Running: just put on your running clothes",
			"Running: step outside and walk three steps",
		},
		warning: "Make it smaller: write one tiny first step you could do today.",
		next:    StepConfirmSize,
	},
	StepConfirmSize: {
		title: "Could you start from here?",
		field: FieldConfirmSize,
		input: InputChoice,
		label: "Pick the one closest to how you feel",
		options: []Option{
			{Value: ChoiceSmallEnough, Label: "I could start with this"},
			{Value: ChoiceTooBig, Label: "I want to make it smaller"},
		},
		warning: choiceWarning,
		next:    StepAnchor,
	},
	StepAnchor: {
		body: []string{
			"Deciding to do it right after something you already do makes it easier to get going.",
		},
		field:       FieldAnchorHabit,
		input:       InputText,
		label:       "Existing habit",
		placeholder: "e.g. after brushing my teeth, after watering the plants",
		example:     ExampleAnchor,
		exampleLines: []string{
			"After brushing my teeth",
			"After watering the plants outside",
		},
		next: StepTime,
	},
	StepTime: {
		title: "Is the time you would do it more or less fixed?",
		field: FieldTimeFixed,
		input: InputChoice,
		label: "Pick the one closest to how you feel",
		options: []Option{
			{Value: ChoiceTimeFixed, Label: "It is fixed"},
			{Value: ChoiceTimeNotFixed, Label: "It is not fixed"},
		},
		warning: choiceWarning,
		next:    StepPlace,
	},
	StepPlace: {
		title: "Could you always do it in the same place?",
		field: FieldPlaceFixed,
		input: InputChoice,
		label: "Pick the one closest to how you feel",
		options: []Option{
			{Value: ChoicePlaceFixed, Label: "I think so"},
			{Value: ChoicePlaceHard, Label: "That seems hard"},
		},
		warning: choiceWarning,
		next:    StepPrep,
	},
	StepPrep: {
		title: "What could you prepare so you can start within 20 seconds?",
		body: []string{
			"Lower the hurdle before starting as far as you can.",
		},
		field:       FieldPrep,
		input:       InputText,
		label:       "Preparation",
		placeholder: "e.g. lay out clothes the night before, leave the tools on the desk",
		example:     ExamplePrep,
		exampleLines: []string{
			"Lay out your clothes the night before",
			"Leave the tools on your desk",
		},
		next: StepReward,
	},
	StepReward: {
		title: "Decide on a reward for when you actually do it",
		body: []string{
			"Something small that costs nothing is fine.",
		},
		field:       FieldReward,
		input:       InputText,
		label:       "Reward",
		placeholder: "e.g. tick the calendar, listen to a favourite song for a minute",
		next:        StepSummary,
	},
	StepSummary: {
		title: "Let's look back at your answers",
		next:  StepClosing,
	},
	StepClosing: {
		title: "One last word",
		body: []string{
			"Skipping a day and then picking it up again still counts as keeping it going.",
			"Don't blame yourself. Build the habit at a pace that feels easy.",
		},
	},
}

// Summary placeholders for missing answers.
const (
	noneText        = "(none)"
	notAnsweredText = "(not answered)"
	notEnteredText  = "(not entered yet)"
)

// summaryRows lists the summary lines in display order.
var summaryRows = []struct {
	label string
	field Field
}{
	{"Habit", FieldHabit},
	{"First step", FieldStartSmall},
	{"Anchor habit", FieldAnchorHabit},
	{"Time", FieldTimeFixed},
	{"Place", FieldPlaceFixed},
	{"Preparation", FieldPrep},
	{"Reward", FieldReward},
}

// OptionsFor returns the options of the choice step that records f.
func OptionsFor(f Field) []Option {
	for _, def := range steps {
		if def.field == f && def.input == InputChoice {
			return def.options
		}
	}
	return nil
}

// OptionLabel returns the display label of value for field f, or value itself
// when it is not a known option.
func OptionLabel(f Field, value string) string {
	for _, o := range OptionsFor(f) {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

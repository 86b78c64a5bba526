// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/monadic/minihabit/pkg/wizard"
)

// Replies for the read-only steps.
const (
	replyContinue = "continue"
	replyRestart  = "restart"
	replyFinish   = "finish"
)

// prompter asks the questions of one screen. huhPrompter is the real one;
// tests script the answers.
type prompter interface {
	// AskExample asks whether the example panel should be visible.
	AskExample(ctx context.Context, screen wizard.Screen) (bool, error)
	// Ask collects the answer for screen. draft prefills text input and warning
	// is the message from the previous rejected attempt.
	Ask(ctx context.Context, screen wizard.Screen, draft, warning string) (string, error)
}

// driveWizard runs the wizard loop with p until the user finishes on the
// closing step. It returns the last state even when p fails.
func driveWizard(ctx context.Context, s wizard.State, p prompter, logger *SessionLogger) (wizard.State, error) {
	s = s.Normalize()
	apply := func(a wizard.Action) error {
		next, err := wizard.Transition(s, a)
		logger.Transition(s, a, next, err)
		s = next
		return err
	}

	var draft, warning string
	exampleAsked := false
	for {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		screen := wizard.Render(s)

		if screen.Example != nil && !exampleAsked {
			exampleAsked = true
			show, err := p.AskExample(ctx, screen)
			if err != nil {
				return s, err
			}
			if show != screen.Example.Visible {
				_ = apply(wizard.Toggle(screen.Example.Flag))
				screen = wizard.Render(s)
			}
		}

		if draft == "" && warning == "" {
			draft = screen.Value
		}
		reply, err := p.Ask(ctx, screen, draft, warning)
		if err != nil {
			return s, err
		}

		switch {
		case reply == replyRestart && screen.CanRestart:
			_ = apply(wizard.RestartAction())
		case reply == replyFinish && screen.Step == wizard.StepClosing:
			return s, nil
		default:
			if err := apply(wizard.Submit(screen.Step, reply)); err != nil {
				vf, ok := wizard.AsValidationFailure(err)
				if !ok {
					return s, err
				}
				draft, warning = reply, vf.Message
				continue
			}
		}

		if s.Step != screen.Step {
			exampleAsked = false
		}
		draft, warning = "", ""
	}
}

// huhPrompter asks each screen with a huh form.
type huhPrompter struct {
	accessible bool
	output     io.Writer
}

func (h huhPrompter) run(ctx context.Context, fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(h.accessible)
	if h.output != nil {
		form = form.WithOutput(h.output)
	}
	return form.RunWithContext(ctx)
}

func (h huhPrompter) AskExample(ctx context.Context, screen wizard.Screen) (bool, error) {
	show := screen.Example.Visible
	err := h.run(ctx,
		huh.NewConfirm().
			Title(screen.Title).
			Description("Would you like to see some examples first?").
			Affirmative("Show examples").
			Negative("No thanks").
			Value(&show),
	)
	return show, err
}

func (h huhPrompter) Ask(ctx context.Context, screen wizard.Screen, draft, warning string) (string, error) {
	desc := describeScreen(screen, warning)

	switch screen.Input {
	case wizard.InputText:
		value := draft
		err := h.run(ctx,
			huh.NewInput().
				Title(screen.Title).
				Description(desc).
				Placeholder(screen.Placeholder).
				Value(&value),
		)
		return value, err

	case wizard.InputChoice:
		value := draft
		if value == "" && len(screen.Options) > 0 {
			value = screen.Options[0].Value
		}
		opts := make([]huh.Option[string], 0, len(screen.Options))
		for _, o := range screen.Options {
			opts = append(opts, huh.NewOption(o.Label, o.Value))
		}
		err := h.run(ctx,
			huh.NewSelect[string]().
				Title(screen.Title).
				Description(desc).
				Options(opts...).
				Value(&value),
		)
		return value, err
	}

	value := replyContinue
	opts := []huh.Option[string]{huh.NewOption("Continue", replyContinue)}
	if screen.Step == wizard.StepClosing {
		value = replyFinish
		opts = []huh.Option[string]{huh.NewOption("Finish", replyFinish)}
	}
	if screen.CanRestart {
		opts = append(opts, huh.NewOption("Start over (answers are kept)", replyRestart))
	}
	err := h.run(ctx,
		huh.NewSelect[string]().
			Title(screen.Title).
			Description(desc).
			Options(opts...).
			Value(&value),
	)
	return value, err
}

// describeScreen builds the description text shown under a question.
func describeScreen(screen wizard.Screen, warning string) string {
	var lines []string
	lines = append(lines, screen.Body...)

	for _, it := range screen.Summary {
		lines = append(lines, fmt.Sprintf("%s: %s", it.Label, it.Value))
	}

	if screen.Example != nil && screen.Example.Visible {
		lines = append(lines, "Examples:")
		for _, l := range screen.Example.Lines {
			lines = append(lines, "  - "+l)
		}
	}
	if warning != "" {
		lines = append(lines, "! "+warning)
	}
	return strings.Join(lines, "\n")
}

// RunAccessible runs the wizard as a sequence of huh prompts.
func RunAccessible(ctx context.Context, state wizard.State, accessible bool, output io.Writer, logger *SessionLogger) (wizard.State, error) {
	return driveWizard(ctx, state, huhPrompter{accessible: accessible, output: output}, logger)
}

// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/monadic/minihabit/internal/clierr"
	"github.com/monadic/minihabit/pkg/plan"
	"github.com/monadic/minihabit/pkg/wizard"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
)

// errCancelled is returned when the user quits the TUI before finishing.
var errCancelled = fmt.Errorf("wizard quit before the end: %w", context.Canceled)

// newSessionID returns a sortable id for this run.
func newSessionID(now time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}

// stdoutIsTerminal reports whether the full-screen TUI can be used.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runner holds what a wizard run needs from the outside world.
type runner struct {
	opts   Options
	fs     afero.Fs
	out    io.Writer
	now    func() time.Time
	tty    bool
	tui    func(wizard.State, *SessionLogger) (WizardModel, error)
	prompt func(context.Context, wizard.State, bool, io.Writer, *SessionLogger) (wizard.State, error)
}

func newRunner(opts Options, out io.Writer) runner {
	return runner{
		opts:   opts,
		fs:     afero.NewOsFs(),
		out:    out,
		now:    time.Now,
		tty:    stdoutIsTerminal(),
		tui:    RunWizard,
		prompt: RunAccessible,
	}
}

// run executes one wizard session, prints the plan and exports it if asked.
func (r runner) run(ctx context.Context) error {
	started := r.now()
	session := newSessionID(started)

	var logger *SessionLogger
	if !r.opts.NoLog {
		l, err := NewSessionLogger(r.opts.LogDir, session)
		if err != nil {
			return clierr.WrapWithHint(err, "use --no-log or point --log-dir at a writable directory")
		}
		logger = l
	}

	final, err := r.runFrontend(ctx, logger)
	logPath := logger.Close(final)
	if err != nil {
		return err
	}

	p := plan.FromState(final, session, started)
	fmt.Fprintln(r.out)
	fmt.Fprint(r.out, p.Text())

	if r.opts.Output != "" {
		if err := plan.Export(r.fs, r.opts.Output, p); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "\nPlan saved to %s\n", r.opts.Output)
	}
	if logPath != "" {
		fmt.Fprintf(r.out, "Session log: %s\n", logPath)
	}
	return nil
}

// runFrontend picks the TUI or the prompt frontend and runs it.
func (r runner) runFrontend(ctx context.Context, logger *SessionLogger) (wizard.State, error) {
	state := wizard.NewState()

	if r.opts.Accessible || !r.tty {
		logger.Event("frontend prompts (accessible=%t, tty=%t)", r.opts.Accessible, r.tty)
		return r.prompt(ctx, state, r.opts.Accessible || !r.tty, r.out, logger)
	}

	logger.Event("frontend tui")
	m, err := r.tui(state, logger)
	if err != nil {
		return state, err
	}
	if !m.Finished() {
		return m.State(), errCancelled
	}
	return m.State(), nil
}

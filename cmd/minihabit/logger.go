// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/monadic/minihabit/pkg/wizard"
	"github.com/rs/zerolog"
)

// SessionLogger logs the transitions of one wizard session to a file.
// A nil *SessionLogger is valid and discards everything.
type SessionLogger struct {
	file      *os.File
	log       zerolog.Logger
	startTime time.Time
	session   string
}

// NewSessionLogger creates <dir>/wizard-<timestamp>.log and writes the start event.
func NewSessionLogger(dir, session string) (*SessionLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02-150405")
	logPath := filepath.Join(dir, fmt.Sprintf("wizard-%s.log", timestamp))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	l := &SessionLogger{
		file:      file,
		log:       zerolog.New(file).With().Timestamp().Str("session", session).Logger(),
		startTime: time.Now(),
		session:   session,
	}
	l.log.Info().Str("version", BuildTag).Msg("session started")
	return l, nil
}

// Transition records one applied action.
func (l *SessionLogger) Transition(from wizard.State, a wizard.Action, to wizard.State, err error) {
	if l == nil || l.file == nil {
		return
	}
	ev := l.log.Info()
	if err != nil {
		ev = l.log.Warn().Str("warning", err.Error())
	}
	ev = ev.Str("action", a.Kind.String()).
		Stringer("from", from.Step).
		Stringer("to", to.Step)
	if a.Kind == wizard.ActionToggleExample {
		ev = ev.Str("example", string(a.Example)).Bool("visible", to.ExampleVisible(a.Example))
	}
	ev.Msg("transition")
}

// Event writes a free-form message.
func (l *SessionLogger) Event(format string, args ...interface{}) {
	if l == nil || l.file == nil {
		return
	}
	l.log.Info().Msgf(format, args...)
}

// Close writes the end event, closes the file and returns its path.
func (l *SessionLogger) Close(final wizard.State) string {
	if l == nil || l.file == nil {
		return ""
	}

	answered := 0
	for _, f := range wizard.Fields {
		if v, ok := final.Answer(f); ok && v != "" {
			answered++
		}
	}
	l.log.Info().
		Stringer("step", final.Step).
		Int("answered", answered).
		Dur("duration", time.Since(l.startTime).Round(time.Millisecond)).
		Msg("session ended")

	path := l.file.Name()
	l.file.Close()
	l.file = nil
	return path
}

// Package prompt asks the user questions. Provider is implemented by an
// interactive terminal prompter, a line reader for piped input, and a
// scripted one for tests.
package prompt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jeffrom/tagenv/config"
)

// ErrAborted is returned when input ends or is interrupted before a
// question is answered.
var ErrAborted = errors.New("prompt: aborted")

var errNoOptions = errors.New("prompt: nothing to select")

type Provider interface {
	// Confirm asks a yes/no question. An empty answer picks def.
	Confirm(question string, def bool) (bool, error)
	// Input asks for free text. An empty answer picks def.
	Input(question, def string) (string, error)
	// Select asks for one of options, by number or by value.
	Select(question string, options []string) (string, error)
}

// New returns an interactive Terminal when tio is attached to a terminal,
// and a Lines reader otherwise.
func New(tio config.TerminalIO) Provider {
	if term, ok := newTerminal(tio); ok {
		return term
	}
	return NewLines(tio)
}

func parseConfirm(s string, def bool) (answer bool, valid bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

func parseInput(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

func parseSelect(s string, options []string) (string, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}
	for _, opt := range options {
		if s == opt {
			return opt, true
		}
	}
	return "", false
}

package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeffrom/tagenv/config"
)

func newTestLines(input string) (*Lines, *bytes.Buffer) {
	ob := &bytes.Buffer{}
	tio := config.TerminalIO{Stdin: strings.NewReader(input), Stdout: ob, Stderr: &bytes.Buffer{}}
	return NewLines(tio), ob
}

func TestLinesConfirm(t *testing.T) {
	tcs := []struct {
		name   string
		input  string
		def    bool
		expect bool
	}{
		{name: "yes", input: "y\n", expect: true},
		{name: "YES", input: "YES\n", expect: true},
		{name: "no", input: "n\n", def: true, expect: false},
		{name: "default-true", input: "\n", def: true, expect: true},
		{name: "default-false", input: "\n", expect: false},
		{name: "retry", input: "maybe\nyes\n", expect: true},
		{name: "no-newline", input: "y", expect: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			term, _ := newTestLines(tc.input)
			ok, err := term.Confirm("Continue?", tc.def)
			require.NoError(t, err)
			require.Equal(t, tc.expect, ok)
		})
	}
}

func TestLinesConfirmPrompt(t *testing.T) {
	term, ob := newTestLines("maybe\nn\n")
	_, err := term.Confirm("Delete config?", false)
	require.NoError(t, err)
	require.Equal(t, "Delete config? [y/N]: Please answer y or n.\nDelete config? [y/N]: ", ob.String())
}

func TestLinesEOF(t *testing.T) {
	term, _ := newTestLines("")
	_, err := term.Confirm("Continue?", true)
	require.True(t, errors.Is(err, ErrAborted))

	term, _ = newTestLines("")
	_, err = term.Input("Name", "x")
	require.True(t, errors.Is(err, ErrAborted))
}

func TestLinesInput(t *testing.T) {
	term, ob := newTestLines("\n  Development  \n")
	s, err := term.Input("Display name", "D")
	require.NoError(t, err)
	require.Equal(t, "D", s)
	require.Equal(t, "Display name (D): ", ob.String())

	s, err = term.Input("Description", "")
	require.NoError(t, err)
	require.Equal(t, "Development", s)
}

func TestLinesSelect(t *testing.T) {
	opts := []string{"prod", "staging", "dev"}

	term, ob := newTestLines("0\nqa\n3\n")
	s, err := term.Select("Environment:", opts)
	require.NoError(t, err)
	require.Equal(t, "dev", s)
	require.Contains(t, ob.String(), "  1) prod\n  2) staging\n  3) dev\n")
	require.Equal(t, 2, strings.Count(ob.String(), "Please choose a number between 1 and 3."))

	term, _ = newTestLines("staging\n")
	s, err = term.Select("Environment:", opts)
	require.NoError(t, err)
	require.Equal(t, "staging", s)

	term, _ = newTestLines("1\n")
	_, err = term.Select("Environment:", nil)
	require.Error(t, err)
}

func TestScripted(t *testing.T) {
	s := NewScripted("y", "", "2", "n")
	ok, err := s.Confirm("a?", false)
	require.NoError(t, err)
	require.True(t, ok)

	name, err := s.Input("b", "Dev")
	require.NoError(t, err)
	require.Equal(t, "Dev", name)

	opt, err := s.Select("c", []string{"x", "y"})
	require.NoError(t, err)
	require.Equal(t, "y", opt)

	ok, err = s.Confirm("d?", true)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.Confirm("e?", true)
	require.ErrorIs(t, err, ErrAborted)
	require.Equal(t, []string{"a?", "b", "c", "d?", "e?"}, s.Asked)
}

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jeffrom/tagenv/config"
)

// Lines reads answers one line at a time, re-asking on invalid answers.
// It serves piped or redirected input, where no terminal is available.
type Lines struct {
	r *bufio.Reader
	w io.Writer
}

func NewLines(tio config.TerminalIO) *Lines {
	return &Lines{r: bufio.NewReader(tio.Stdin), w: tio.Stdout}
}

func (l *Lines) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(l.w, "%s [%s]: ", question, hint)
		line, err := l.readLine()
		if err != nil {
			return false, err
		}
		if ok, valid := parseConfirm(line, def); valid {
			return ok, nil
		}
		fmt.Fprintln(l.w, "Please answer y or n.")
	}
}

func (l *Lines) Input(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(l.w, "%s (%s): ", question, def)
	} else {
		fmt.Fprintf(l.w, "%s: ", question)
	}
	line, err := l.readLine()
	if err != nil {
		return "", err
	}
	return parseInput(line, def), nil
}

func (l *Lines) Select(question string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errNoOptions
	}
	fmt.Fprintln(l.w, question)
	for i, opt := range options {
		fmt.Fprintf(l.w, "  %d) %s\n", i+1, opt)
	}
	for {
		fmt.Fprintf(l.w, "Choose [1-%d]: ", len(options))
		line, err := l.readLine()
		if err != nil {
			return "", err
		}
		if opt, ok := parseSelect(line, options); ok {
			return opt, nil
		}
		fmt.Fprintf(l.w, "Please choose a number between 1 and %d.\n", len(options))
	}
}

func (l *Lines) readLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(l.w)
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

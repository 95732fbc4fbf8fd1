package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/jeffrom/tagenv/config"
)

// Terminal prompts interactively: arrow-key selection, y/n confirmation
// and line editing. Ctrl-C or a closed input aborts the question.
type Terminal struct {
	in  terminal.FileReader
	out terminal.FileWriter
	err io.Writer
}

func NewTerminal(in terminal.FileReader, out terminal.FileWriter, errw io.Writer) *Terminal {
	return &Terminal{in: in, out: out, err: errw}
}

func newTerminal(tio config.TerminalIO) (*Terminal, bool) {
	in, ok := tio.Stdin.(*os.File)
	if !ok || !isatty.IsTerminal(in.Fd()) || !tio.IsTerminal() {
		return nil, false
	}
	return NewTerminal(in, tio.Stdout.(*os.File), tio.Stderr), true
}

func (t *Terminal) Confirm(question string, def bool) (bool, error) {
	var ok bool
	err := t.ask(&survey.Confirm{Message: question, Default: def}, &ok)
	return ok, err
}

func (t *Terminal) Input(question, def string) (string, error) {
	var answer string
	if err := t.ask(&survey.Input{Message: question, Default: def}, &answer); err != nil {
		return "", err
	}
	return parseInput(answer, def), nil
}

func (t *Terminal) Select(question string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errNoOptions
	}
	var answer string
	if err := t.ask(&survey.Select{Message: question, Options: options}, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (t *Terminal) ask(p survey.Prompt, response interface{}) error {
	return askError(survey.AskOne(p, response, survey.WithStdio(t.in, t.out, t.err)))
}

func askError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrAborted, err)
	}
	return err
}

package prompt

import (
	"fmt"
)

// Scripted answers questions from a fixed list, in order, and records the
// questions asked. Answers are parsed like terminal input.
type Scripted struct {
	Answers []string
	Asked   []string
}

func NewScripted(answers ...string) *Scripted {
	return &Scripted{Answers: answers}
}

func (s *Scripted) next(question string) (string, error) {
	s.Asked = append(s.Asked, question)
	if len(s.Answers) == 0 {
		return "", fmt.Errorf("%w: no answer for %q", ErrAborted, question)
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a, nil
}

func (s *Scripted) Confirm(question string, def bool) (bool, error) {
	a, err := s.next(question)
	if err != nil {
		return false, err
	}
	ok, valid := parseConfirm(a, def)
	if !valid {
		return false, fmt.Errorf("prompt: invalid confirmation %q for %q", a, question)
	}
	return ok, nil
}

func (s *Scripted) Input(question, def string) (string, error) {
	a, err := s.next(question)
	if err != nil {
		return "", err
	}
	return parseInput(a, def), nil
}

func (s *Scripted) Select(question string, options []string) (string, error) {
	a, err := s.next(question)
	if err != nil {
		return "", err
	}
	opt, ok := parseSelect(a, options)
	if !ok {
		return "", fmt.Errorf("prompt: invalid choice %q for %q", a, question)
	}
	return opt, nil
}

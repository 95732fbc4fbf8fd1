package model

import (
	"errors"
	"fmt"
)

func (e *Environment) Validate() error {
	if e.Prefix == "" {
		return fmt.Errorf("environment %q: %w", e.Key, ErrEmptyPrefix)
	}
	return nil
}

var ErrEmptyPrefix = errors.New("prefix is empty")

// DisplayLabel returns the label, falling back to the key.
func (e *Environment) DisplayLabel() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Key
}

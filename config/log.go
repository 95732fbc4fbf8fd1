package config

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	l.SetLevel(logrus.InfoLevel)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Palette holds the colors used for terminal output.
type Palette struct {
	Label   *color.Color
	Key     *color.Color
	Tag     *color.Color
	Muted   *color.Color
	Success *color.Color
	Failure *color.Color
}

// Colors returns the output palette. Colors are disabled unless stdout is a
// terminal and neither --no-color nor NO_COLOR is set.
func (c Config) Colors() Palette {
	p := Palette{
		Label:   color.New(color.Bold),
		Key:     color.New(color.FgCyan),
		Tag:     color.New(color.FgGreen, color.Bold),
		Muted:   color.New(color.Faint),
		Success: color.New(color.FgGreen),
		Failure: color.New(color.FgRed),
	}
	enabled := !c.NoColor && os.Getenv("NO_COLOR") == "" && c.Term.IsTerminal()
	for _, col := range []*color.Color{p.Label, p.Key, p.Tag, p.Muted, p.Success, p.Failure} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return p
}

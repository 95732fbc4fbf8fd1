package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jeffrom/tagenv/tag"
)

// List prints every environment with its latest tag. An environment whose
// tags can't be listed is shown as having none.
func (r *Runner) List(ctx context.Context) error {
	var results []tag.Result
	for _, key := range r.reg.Keys() {
		res := r.resolver.Resolve(ctx, key, r.reg)
		r.cfg.Debugf("%s: %s", key, res)
		results = append(results, res)
	}
	return r.writeList(r.cfg.Term.Stdout, results)
}

func (r *Runner) writeList(w io.Writer, results []tag.Result) error {
	colors := r.cfg.Colors()
	bw := bufio.NewWriter(w)

	for i, res := range results {
		if i > 0 {
			bw.WriteString("\n")
		}
		env := res.Env
		bw.WriteString(fmt.Sprintf("%s %s\n", colors.Label.Sprint(env.DisplayLabel()), colors.Key.Sprintf("(%s)", env.Key)))
		if env.Description != "" {
			bw.WriteString(fmt.Sprintf("  %s\n", colors.Muted.Sprint(env.Description)))
		}

		if !res.Found() {
			bw.WriteString(fmt.Sprintf("  %s\n", colors.Muted.Sprint("no tags found")))
			continue
		}
		t := res.Tag
		meta := t.Author
		if t.RelativeAge != "" {
			meta += ", " + t.RelativeAge
		}
		bw.WriteString(fmt.Sprintf("  %s %s\n", colors.Tag.Sprint(t.Name), colors.Muted.Sprintf("(%s)", meta)))
		if subject := firstLine(t.Annotation); subject != "" {
			bw.WriteString(fmt.Sprintf("  %s\n", subject))
		}
	}
	return bw.Flush()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

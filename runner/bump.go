package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeffrom/tagenv/tag"
)

// Bump creates and pushes the next patch tag for the environment key. If
// key is empty or unknown the user picks one.
func (r *Runner) Bump(ctx context.Context, key string) error {
	colors := r.cfg.Colors()
	if _, ok := r.reg.Get(key); !ok {
		if key != "" {
			r.cfg.Printf("Unknown environment %q.", key)
		}
		selected, err := r.prompt.Select("Select an environment:", r.reg.Keys())
		if err != nil {
			return err
		}
		key = selected
	}

	plan, err := r.planner.Plan(ctx, key, r.reg)
	if err != nil {
		return err
	}
	current := "none"
	if plan.Current != nil {
		current = plan.Current.Name
	}
	r.cfg.Printf("%s %s", colors.Label.Sprint(plan.Env.DisplayLabel()), colors.Key.Sprintf("(%s)", plan.Env.Key))
	r.cfg.Printf("  current: %s", current)
	r.cfg.Printf("  next:    %s", colors.Tag.Sprint(plan.Next))

	msg, err := r.prompt.Input("Annotation message (empty for a lightweight tag)", "")
	if err != nil {
		return err
	}

	if err := r.planner.Execute(ctx, plan.Next, msg); err != nil {
		var stepErr *tag.StepError
		if errors.As(err, &stepErr) {
			switch stepErr.Step {
			case tag.StepPush:
				r.cfg.Errorf("%s", colors.Failure.Sprintf("Local tag %s was created but could not be pushed to %s.", plan.Next, r.cfg.Remote))
			case tag.StepFetch:
				r.cfg.Errorf("%s", colors.Failure.Sprintf("Tag %s was pushed to %s but fetching tags afterwards failed.", plan.Next, r.cfg.Remote))
			}
		}
		return fmt.Errorf("bump %s: %w", key, err)
	}
	suffix := ""
	if r.cfg.Dryrun {
		suffix = " (dryrun)"
	}
	r.cfg.Printf("%s", colors.Success.Sprintf("Created and pushed %s to %s.%s", plan.Next, r.cfg.Remote, suffix))
	return nil
}

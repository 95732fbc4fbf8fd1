package tag

import (
	"context"
	"fmt"
	"strings"

	"github.com/blang/semver/v4"

	"github.com/jeffrom/tagenv/config"
	"github.com/jeffrom/tagenv/model"
	"github.com/jeffrom/tagenv/registry"
	"github.com/jeffrom/tagenv/vcs"
)

// Plan describes the next tag for an environment.
type Plan struct {
	Env         *model.Environment
	Current     *model.Tag
	NextVersion semver.Version
	Next        string
}

// BaseVersion is the version bumped from, 0.0.0 when there are no tags.
func (p *Plan) BaseVersion() semver.Version {
	if p.Current == nil {
		return semver.Version{}
	}
	return p.Current.Version
}

// StepError reports which bump step failed. Steps before it have taken
// effect, e.g. a failed push leaves the created tag in place.
type StepError struct {
	Step string
	Tag  string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Tag, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

const (
	StepCreate = "create tag"
	StepPush   = "push tag"
	StepFetch  = "fetch tags after"
)

// Planner computes and carries out patch bumps.
type Planner struct {
	cfg      config.Config
	vcs      vcs.Interface
	resolver *Resolver
}

// NewPlanner returns a Planner creating and pushing tags through vcs.
func NewPlanner(cfg config.Config, vcs vcs.Interface) *Planner {
	return &Planner{
		cfg:      cfg,
		vcs:      vcs,
		resolver: NewResolver(cfg, vcs),
	}
}

// Plan computes the next patch tag for the environment named key. Unlike
// listing, a failed tag query is an error here: bumping from an unknown
// base could reuse a version.
func (p *Planner) Plan(ctx context.Context, key string, reg *registry.Registry) (*Plan, error) {
	res := p.resolver.Resolve(ctx, key, reg)
	switch res.Status {
	case StatusNotConfigured:
		return nil, fmt.Errorf("%w: %q", ErrNotConfigured, key)
	case StatusQueryFailed:
		return nil, fmt.Errorf("tag: list %s tags: %w", key, res.Err)
	}

	plan := &Plan{Env: res.Env, Current: res.Tag}
	plan.NextVersion = NextPatch(plan.BaseVersion())
	plan.Next = Name(res.Env.Prefix, plan.NextVersion)
	return plan, nil
}

// Execute creates the tag next at HEAD, pushes it to the configured remote
// and refetches all remote tags. The tag is annotated when annotation is
// not blank. It stops at the first failing step.
func (p *Planner) Execute(ctx context.Context, next, annotation string) error {
	opts := vcs.TagOpts{Message: strings.TrimSpace(annotation)}
	if err := p.vcs.CreateTag(ctx, "", next, opts); err != nil {
		return &StepError{Step: StepCreate, Tag: next, Err: err}
	}
	p.cfg.Debugf("created tag %s (annotated: %v)", next, opts.Message != "")

	if err := p.vcs.Push(ctx, p.cfg.Remote, next); err != nil {
		return &StepError{Step: StepPush, Tag: next, Err: err}
	}
	p.cfg.Debugf("pushed tag %s to %s", next, p.cfg.Remote)

	if err := p.vcs.Fetch(ctx, p.cfg.Remote, vcs.FetchOpts{Force: true}); err != nil {
		return &StepError{Step: StepFetch, Tag: next, Err: err}
	}
	return nil
}

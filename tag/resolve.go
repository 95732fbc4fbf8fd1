package tag

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jeffrom/tagenv/config"
	"github.com/jeffrom/tagenv/model"
	"github.com/jeffrom/tagenv/registry"
	"github.com/jeffrom/tagenv/vcs"
)

var ErrNotConfigured = errors.New("tag: environment not configured")

// Status says how a resolution ended.
type Status int

const (
	_ Status = iota
	StatusFound
	StatusNotFound
	StatusNotConfigured
	StatusQueryFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	case StatusNotConfigured:
		return "not configured"
	case StatusQueryFailed:
		return "query failed"
	default:
		return "<INVALID>"
	}
}

// Result is the outcome of resolving an environment's latest tag. Tag is
// set only for StatusFound, Err only for StatusQueryFailed.
type Result struct {
	Status Status
	Env    *model.Environment
	Tag    *model.Tag
	Err    error
}

func (r Result) Found() bool { return r.Status == StatusFound }

// Resolver finds the latest tag of an environment.
type Resolver struct {
	cfg config.Config
	vcs vcs.Interface
}

// NewResolver returns a Resolver querying tags through vcs.
func NewResolver(cfg config.Config, vcs vcs.Interface) *Resolver {
	return &Resolver{cfg: cfg, vcs: vcs}
}

// Resolve finds the highest versioned tag for the environment named key.
// Query failures are reported in the result, never returned.
func (r *Resolver) Resolve(ctx context.Context, key string, reg *registry.Registry) Result {
	env, ok := reg.Get(key)
	if !ok {
		return Result{Status: StatusNotConfigured}
	}

	glob := Glob(env.Prefix)
	tags, err := r.vcs.ReadTagDetails(ctx, glob)
	if err != nil {
		r.cfg.Debugf("list tags %s failed: %v", glob, err)
		return Result{Status: StatusQueryFailed, Env: env, Err: err}
	}

	latest := SelectLatest(tags, env.Prefix)
	if latest == nil {
		return Result{Status: StatusNotFound, Env: env}
	}
	return Result{Status: StatusFound, Env: env, Tag: latest}
}

// Latest returns the latest tag for key, or nil if it is not configured,
// has no tags, or the query failed.
func (r *Resolver) Latest(ctx context.Context, key string, reg *registry.Registry) *model.Tag {
	return r.Resolve(ctx, key, reg).Tag
}

// SelectLatest decodes tags under prefix and returns the one with the
// highest version, setting its Version. Tags that don't decode are skipped.
// Ties go to the tag listed first.
func SelectLatest(tags []*model.Tag, prefix string) *model.Tag {
	var decoded []*model.Tag
	for _, t := range tags {
		v, ok := Decode(t.Name, prefix)
		if !ok {
			continue
		}
		c := *t
		c.Version = v
		decoded = append(decoded, &c)
	}
	if len(decoded) == 0 {
		return nil
	}

	sort.SliceStable(decoded, func(i, j int) bool {
		return Compare(decoded[i].Version, decoded[j].Version) > 0
	})
	return decoded[0]
}

// String is the latest tag name, or the status when none was found.
func (r Result) String() string {
	if r.Status == StatusFound {
		return r.Tag.Name
	}
	if r.Status == StatusQueryFailed {
		return fmt.Sprintf("%s: %v", r.Status, r.Err)
	}
	return r.Status.String()
}

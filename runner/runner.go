// Package runner manages command-line execution
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeffrom/tagenv/config"
	"github.com/jeffrom/tagenv/prompt"
	"github.com/jeffrom/tagenv/registry"
	"github.com/jeffrom/tagenv/tag"
	"github.com/jeffrom/tagenv/vcs"
)

type Runner struct {
	cfg      config.Config
	vcs      vcs.Interface
	store    *registry.Store
	reg      *registry.Registry
	prompt   prompt.Provider
	resolver *tag.Resolver
	planner  *tag.Planner
}

// New loads the registry from store. A registry that can't be read or
// parsed is replaced by the defaults with a warning.
func New(cfg config.Config, vcs vcs.Interface, store *registry.Store, p prompt.Provider) *Runner {
	reg, err := store.Load()
	if err != nil {
		cfg.Warnf("invalid environment config, using defaults: %v", err)
	}
	return &Runner{
		cfg:      cfg,
		vcs:      vcs,
		store:    store,
		reg:      reg,
		prompt:   p,
		resolver: tag.NewResolver(cfg, vcs),
		planner:  tag.NewPlanner(cfg, vcs),
	}
}

func (r *Runner) Registry() *registry.Registry { return r.reg }

// Refresh force-fetches all tags from the remote.
func (r *Runner) Refresh(ctx context.Context) error {
	remote := r.cfg.Remote
	if u, err := r.vcs.ReadRemoteURL(ctx, remote); err == nil {
		r.cfg.Printf("Fetching tags from %s (%s)...", remote, u)
	} else {
		r.cfg.Printf("Fetching tags from %s...", remote)
	}
	if err := r.vcs.Fetch(ctx, remote, vcs.FetchOpts{Force: true}); err != nil {
		return fmt.Errorf("refresh tags from %s: %w", remote, err)
	}
	r.cfg.Printf("Tags refreshed.")
	return nil
}

// Reset removes the persisted registry after confirmation. Declining is
// not an error.
func (r *Runner) Reset(ctx context.Context) error {
	exists, err := r.store.Exists()
	if err != nil {
		return err
	}
	if !exists {
		r.cfg.Printf("No environment config at %s, nothing to reset.", r.store.Path)
		return nil
	}

	ok, err := r.prompt.Confirm(fmt.Sprintf("Delete environment config %s?", r.store.Path), false)
	if err != nil {
		return err
	}
	if !ok {
		r.cfg.Printf("Reset cancelled.")
		return nil
	}

	removed, err := r.store.Reset()
	if err != nil {
		return err
	}
	if removed {
		r.cfg.Printf("Removed %s. Default environments will be used.", r.store.Path)
	} else {
		r.cfg.Printf("No environment config at %s, nothing to reset.", r.store.Path)
	}
	return nil
}

// IsCancelled reports whether err is the user abandoning a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, prompt.ErrAborted)
}

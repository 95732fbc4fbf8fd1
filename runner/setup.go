package runner

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeffrom/tagenv/config"
	"github.com/jeffrom/tagenv/model"
	"github.com/jeffrom/tagenv/prompt"
	"github.com/jeffrom/tagenv/registry"
	"github.com/jeffrom/tagenv/tag"
	"github.com/jeffrom/tagenv/vcs"
)

// Setup discovers tag prefixes and asks which to configure as
// environments. The new registry replaces the persisted one only if at
// least one environment was accepted.
func (r *Runner) Setup(ctx context.Context) error {
	r.cfg.Printf("Fetching tags from %s...", r.cfg.Remote)
	if err := r.vcs.Fetch(ctx, r.cfg.Remote, vcs.FetchOpts{Force: true}); err != nil {
		r.cfg.Warnf("fetch failed, using local tags: %v", err)
	}

	tags, err := r.vcs.ReadTags(ctx, "")
	if err != nil {
		return fmt.Errorf("list tags: %w", err)
	}
	groups := tag.SortedGroups(tag.Detect(tags))
	if len(groups) == 0 {
		r.cfg.Printf("No version tags found, nothing to set up.")
		return nil
	}
	r.cfg.Printf("Found %d tag prefix(es).", len(groups))

	reg, err := BuildRegistry(r.cfg, groups, r.prompt)
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		r.cfg.Printf("No environments configured, keeping the existing config.")
		return nil
	}
	for _, o := range reg.Overlaps() {
		r.cfg.Warnf("overlapping prefixes: %s", o)
	}

	if err := r.store.Save(reg); err != nil {
		return err
	}
	r.reg = reg
	r.cfg.Printf("Saved %d environment(s) to %s.", reg.Len(), r.store.Path)
	return nil
}

// BuildRegistry walks groups in order, asking whether to configure each
// prefix, its display name and description, then a final confirmation.
// Accepted entries are keyed by the lowercased prefix.
func BuildRegistry(cfg config.Config, groups []*tag.PrefixGroup, p prompt.Provider) (*registry.Registry, error) {
	reg := registry.New()
	for _, g := range groups {
		cfg.Printf("")
		cfg.Printf("Prefix %q, e.g. %s", g.Prefix, strings.Join(g.Examples, ", "))

		ok, err := p.Confirm(fmt.Sprintf("Configure prefix %q?", g.Prefix), true)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		label, err := p.Input("Display name", DefaultLabel(g.Prefix))
		if err != nil {
			return nil, err
		}
		desc, err := p.Input("Description (optional)", "")
		if err != nil {
			return nil, err
		}

		env := &model.Environment{
			Key:         strings.ToLower(g.Prefix),
			Label:       label,
			Prefix:      g.Prefix,
			Description: desc,
		}
		cfg.Printf("  key: %s, name: %s, prefix: %s", env.Key, env.Label, env.Prefix)
		if env.Description != "" {
			cfg.Printf("  description: %s", env.Description)
		}
		ok, err = p.Confirm("Add this environment?", true)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		if prev, exists := reg.Get(env.Key); exists {
			cfg.Warnf("prefix %q replaces prefix %q under key %q", env.Prefix, prev.Prefix, env.Key)
		}
		reg.Add(env)
	}
	return reg, nil
}

// DefaultLabel capitalizes the first character of prefix.
func DefaultLabel(prefix string) string {
	r, size := utf8.DecodeRuneInString(prefix)
	if r == utf8.RuneError {
		return prefix
	}
	return cases.Upper(language.Und).String(string(r)) + prefix[size:]
}

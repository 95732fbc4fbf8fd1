// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	giturls "github.com/whilp/git-urls"

	"github.com/jeffrom/tagenv/config"
	"github.com/jeffrom/tagenv/model"
	"github.com/jeffrom/tagenv/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

func (g *Git) Fetch(ctx context.Context, upstream string, opts vcs.FetchOpts) error {
	if upstream == "" {
		upstream = config.DefaultRemote
	}
	args := []string{"fetch", upstream, "--tags"}
	if opts.Force {
		args = append(args, "--force")
	}
	// a forced fetch can overwrite local tags
	if opts.Force && g.cfg.Dryrun {
		g.cfg.Printf("+ git %s (dryrun)", ArgsString(args))
		return nil
	}
	_, err := g.call(ctx, args)
	return err
}

func (g *Git) Push(ctx context.Context, upstream, ref string) error {
	args := []string{"push"}
	if upstream == "" {
		upstream = config.DefaultRemote
	}
	args = append(args, upstream)
	if ref != "" {
		args = append(args, ref)
	}

	if g.cfg.Dryrun {
		g.cfg.Printf("+ git %s (dryrun)", ArgsString(args))
		return nil
	}
	_, err := g.call(ctx, args)
	return err
}

func (g *Git) CreateTag(ctx context.Context, commit, tag string, opts vcs.TagOpts) error {
	args := []string{"tag"}
	if opts.Message != "" {
		args = append(args, "-a", tag, "-m", opts.Message)
	} else {
		args = append(args, tag)
	}
	if commit != "" {
		args = append(args, commit)
	}

	if g.cfg.Dryrun {
		g.cfg.Printf("+ git %s (dryrun)", ArgsString(args))
		return nil
	}
	_, err := g.call(ctx, args)
	return err
}

func (g *Git) ReadTags(ctx context.Context, query string) ([]string, error) {
	args := []string{
		"tag",
	}
	if query != "" {
		args = append(args, "-l", query)
	}
	b, err := g.call(ctx, args)
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, line := range strings.Split(string(b), "\n") {
		if line == "" {
			continue
		}
		tags = append(tags, line)
	}
	return tags, nil
}

const (
	// fields are split by ASCII unit separators, which do not occur in
	// tagger names or dates; the annotation is the last field.
	tagFieldSep = "\x1f"
	// each record is NUL-terminated since annotations span lines.
	tagRecordSep = "\x00\n"
	tagFormat    = "%(refname:strip=2)%1f%(taggername)%1f%(taggerdate:relative)%1f%(contents)%00"
)

func (g *Git) ReadTagDetails(ctx context.Context, query string) ([]*model.Tag, error) {
	args := []string{"tag", "-l", "--format=" + tagFormat}
	if query != "" {
		args = append(args, query)
	}
	b, err := g.call(ctx, args)
	if err != nil {
		return nil, err
	}
	return parseTagDetails(b), nil
}

func parseTagDetails(b []byte) []*model.Tag {
	var tags []*model.Tag
	for _, rec := range strings.Split(string(b), tagRecordSep) {
		rec = strings.TrimPrefix(rec, "\n")
		if strings.TrimSpace(rec) == "" {
			continue
		}
		parts := strings.SplitN(rec, tagFieldSep, 4)
		for len(parts) < 4 {
			parts = append(parts, "")
		}

		tag := &model.Tag{
			Name:        strings.TrimSpace(parts[0]),
			Author:      strings.TrimSpace(parts[1]),
			RelativeAge: strings.TrimSpace(parts[2]),
			// the body keeps any further separators.
			Annotation: strings.TrimRight(parts[3], "\n"),
		}
		if tag.Author == "" {
			// lightweight tag: %(contents) is the commit message, not an
			// annotation.
			tag.Author = model.UnknownAuthor
			tag.Annotation = ""
		}
		tags = append(tags, tag)
	}
	return tags
}

func (g *Git) TopLevel(ctx context.Context) (string, error) {
	b, err := g.call(ctx, []string{"rev-parse", "--show-toplevel"})
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(b)), nil
}

// ReadRemoteURL returns upstream's URL with any password redacted.
func (g *Git) ReadRemoteURL(ctx context.Context, upstream string) (string, error) {
	b, err := g.call(ctx, []string{"remote", "get-url", upstream})
	if err != nil {
		return "", vcs.NotFoundError{Ref: upstream}
	}
	raw := string(bytes.TrimSpace(b))
	u, err := giturls.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("gitcli: invalid url for remote %s: %q", upstream, raw)
	}
	return u.Redacted(), nil
}

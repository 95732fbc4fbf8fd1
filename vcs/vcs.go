// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"

	"github.com/jeffrom/tagenv/model"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

type Interface interface {
	// Fetch fetches tags from upstream.
	Fetch(ctx context.Context, upstream string, opts FetchOpts) error
	// Push pushes ref to upstream.
	Push(ctx context.Context, upstream, ref string) error
	// CreateTag creates tag at commit, or HEAD if commit is empty. The tag
	// is annotated when opts.Message is set, lightweight otherwise.
	CreateTag(ctx context.Context, commit, tag string, opts TagOpts) error
	// ReadTags lists tag names matching query, or all tags if query is
	// empty, in the repository's listing order.
	ReadTags(ctx context.Context, query string) ([]string, error)
	// ReadTagDetails lists tags matching query along with tagger and
	// annotation metadata. Versions are left unset.
	ReadTagDetails(ctx context.Context, query string) ([]*model.Tag, error)
	TopLevel(ctx context.Context) (string, error)
	ReadRemoteURL(ctx context.Context, upstream string) (string, error)
}

type TagOpts struct {
	Message string
}

type FetchOpts struct {
	// Force overwrites local tags that diverged from the remote.
	Force bool
}

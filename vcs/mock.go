package vcs

import (
	"context"
	"fmt"
	"path"

	"github.com/jeffrom/tagenv/model"
)

// Mock is an in-memory repository. Errors set on it are returned by the
// corresponding operation.
type Mock struct {
	tags   []*model.Tag
	pushed []string
	calls  []string

	FetchErr  error
	PushErr   error
	CreateErr error
	ReadErr   error

	TopLevelDir string
	RemoteURL   string
}

func NewMock() *Mock {
	return &Mock{}
}

// SetTags replaces the repository's tags with lightweight tags of the
// given names, in listing order.
func (m *Mock) SetTags(tags ...string) *Mock {
	m.tags = nil
	for _, name := range tags {
		m.tags = append(m.tags, &model.Tag{Name: name})
	}
	return m
}

// AddTag appends a tag with metadata.
func (m *Mock) AddTag(tag *model.Tag) *Mock {
	t := *tag
	m.tags = append(m.tags, &t)
	return m
}

// Calls returns the mutating operations performed, in order.
func (m *Mock) Calls() []string { return m.calls }

// Pushed returns the refs pushed so far.
func (m *Mock) Pushed() []string { return m.pushed }

// HasTag reports whether a tag named name exists.
func (m *Mock) HasTag(name string) bool {
	for _, t := range m.tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

func (m *Mock) Fetch(ctx context.Context, upstream string, opts FetchOpts) error {
	m.calls = append(m.calls, fmt.Sprintf("fetch %s", upstream))
	return m.FetchErr
}

func (m *Mock) Push(ctx context.Context, upstream, ref string) error {
	m.calls = append(m.calls, fmt.Sprintf("push %s %s", upstream, ref))
	if m.PushErr != nil {
		return m.PushErr
	}
	m.pushed = append(m.pushed, ref)
	return nil
}

func (m *Mock) CreateTag(ctx context.Context, commit, tag string, opts TagOpts) error {
	m.calls = append(m.calls, fmt.Sprintf("tag %s", tag))
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.HasTag(tag) {
		return fmt.Errorf("vcs: tag %q already exists", tag)
	}
	t := &model.Tag{Name: tag, Author: model.UnknownAuthor}
	if opts.Message != "" {
		t.Author = "mock"
		t.RelativeAge = "now"
		t.Annotation = opts.Message
	}
	m.tags = append(m.tags, t)
	return nil
}

func (m *Mock) ReadTags(ctx context.Context, query string) ([]string, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	var tags []string
	for _, t := range m.tags {
		if globMatches(t.Name, query) {
			tags = append(tags, t.Name)
		}
	}
	return tags, nil
}

func (m *Mock) ReadTagDetails(ctx context.Context, query string) ([]*model.Tag, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	var tags []*model.Tag
	for _, t := range m.tags {
		if globMatches(t.Name, query) {
			c := *t
			if c.Author == "" {
				c.Author = model.UnknownAuthor
			}
			tags = append(tags, &c)
		}
	}
	return tags, nil
}

func (m *Mock) TopLevel(ctx context.Context) (string, error) {
	return m.TopLevelDir, nil
}

func (m *Mock) ReadRemoteURL(ctx context.Context, upstream string) (string, error) {
	if m.RemoteURL == "" {
		return "", NotFoundError{Ref: upstream}
	}
	return m.RemoteURL, nil
}

func globMatches(s string, glob string) bool {
	if glob == "" {
		return true
	}
	ok, err := path.Match(glob, s)
	return err == nil && ok
}

package tag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeffrom/tagenv/config"
	"github.com/jeffrom/tagenv/model"
	"github.com/jeffrom/tagenv/registry"
	"github.com/jeffrom/tagenv/vcs"
)

func TestPlan(t *testing.T) {
	tcs := []struct {
		name          string
		key           string
		tags          []string
		expectNext    string
		expectCurrent string
	}{
		{
			name:       "first-tag",
			key:        "dev",
			expectNext: "d0.0.1",
		},
		{
			name:       "first-tag-long-prefix",
			key:        "preprod",
			tags:       []string{"v1.0.0"},
			expectNext: "preprod0.0.1",
		},
		{
			name:          "patch",
			key:           "dev",
			tags:          []string{"d0.1.16", "d0.1.17", "v1.0.0"},
			expectNext:    "d0.1.18",
			expectCurrent: "d0.1.17",
		},
		{
			name:          "numeric-order",
			key:           "prod",
			tags:          []string{"v1.2.3", "v1.2.10", "v1.3.0"},
			expectNext:    "v1.3.1",
			expectCurrent: "v1.3.0",
		},
		{
			name:          "leading-zero-normalized",
			key:           "staging",
			tags:          []string{"s01.02.09"},
			expectNext:    "s1.2.10",
			expectCurrent: "s01.02.09",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			m := vcs.NewMock().SetTags(tc.tags...)
			p := NewPlanner(newTestConfig(nil), m)
			plan, err := p.Plan(context.Background(), tc.key, registry.Default())
			require.NoError(t, err)
			require.Equal(t, tc.key, plan.Env.Key)
			require.Equal(t, tc.expectNext, plan.Next)
			if tc.expectCurrent == "" {
				require.Nil(t, plan.Current)
				require.True(t, plan.BaseVersion().EQ(ver(0, 0, 0)))
				return
			}
			require.NotNil(t, plan.Current)
			require.Equal(t, tc.expectCurrent, plan.Current.Name)
		})
	}
}

func TestPlanErrors(t *testing.T) {
	ctx := context.Background()
	m := vcs.NewMock()
	p := NewPlanner(newTestConfig(nil), m)

	_, err := p.Plan(ctx, "qa", registry.Default())
	require.ErrorIs(t, err, ErrNotConfigured)

	m.ReadErr = errors.New("fatal: not a git repository")
	_, err = p.Plan(ctx, "dev", registry.Default())
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a git repository")
	require.Empty(t, m.Calls())
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	m := vcs.NewMock().SetTags("d0.1.17")
	p := NewPlanner(newTestConfig(&config.Config{Remote: "upstream"}), m)

	require.NoError(t, p.Execute(ctx, "d0.1.18", "  fix login\n"))
	require.Equal(t, []string{"tag d0.1.18", "push upstream d0.1.18", "fetch upstream"}, m.Calls())
	require.Equal(t, []string{"d0.1.18"}, m.Pushed())

	details, err := m.ReadTagDetails(ctx, "d0.1.18")
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, "fix login", details[0].Annotation)
}

func TestExecuteLightweight(t *testing.T) {
	ctx := context.Background()
	m := vcs.NewMock()
	p := NewPlanner(newTestConfig(nil), m)

	require.NoError(t, p.Execute(ctx, "v0.0.1", " \n\t"))
	details, err := m.ReadTagDetails(ctx, "v0.0.1")
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, model.UnknownAuthor, details[0].Author)
	require.Empty(t, details[0].Annotation)
}

func TestExecuteStopsAtFailure(t *testing.T) {
	pushErr := errors.New("exec: git [\"push\" \"origin\" \"d0.0.2\"] failed: fatal: could not read from remote repository")
	tcs := []struct {
		name        string
		setup       func(m *vcs.Mock)
		expectStep  string
		expectCalls []string
		expectTag   bool
	}{
		{
			name:        "create",
			setup:       func(m *vcs.Mock) { m.CreateErr = errors.New("fatal: tag 'd0.0.2' already exists") },
			expectStep:  StepCreate,
			expectCalls: []string{"tag d0.0.2"},
		},
		{
			name:        "push",
			setup:       func(m *vcs.Mock) { m.PushErr = pushErr },
			expectStep:  StepPush,
			expectCalls: []string{"tag d0.0.2", "push origin d0.0.2"},
			expectTag:   true,
		},
		{
			name:        "fetch",
			setup:       func(m *vcs.Mock) { m.FetchErr = errors.New("fatal: unable to access remote") },
			expectStep:  StepFetch,
			expectCalls: []string{"tag d0.0.2", "push origin d0.0.2", "fetch origin"},
			expectTag:   true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			m := vcs.NewMock()
			tc.setup(m)
			p := NewPlanner(newTestConfig(nil), m)

			err := p.Execute(context.Background(), "d0.0.2", "")
			require.Error(t, err)

			var stepErr *StepError
			require.ErrorAs(t, err, &stepErr)
			require.Equal(t, tc.expectStep, stepErr.Step)
			require.Equal(t, "d0.0.2", stepErr.Tag)
			require.Equal(t, tc.expectCalls, m.Calls())
			require.Equal(t, tc.expectTag, m.HasTag("d0.0.2"))
			if tc.name == "push" {
				require.ErrorIs(t, err, pushErr)
				require.Contains(t, err.Error(), "could not read from remote repository")
			}
		})
	}
}

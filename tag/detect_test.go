package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tcs := []struct {
		name   string
		tags   []string
		expect map[string][]string
	}{
		{
			name:   "empty",
			expect: map[string][]string{},
		},
		{
			name: "basic",
			tags: []string{"d0.1.16", "d0.1.17", "V1.0.0", "random"},
			expect: map[string][]string{
				"d": {"d0.1.16", "d0.1.17"},
				"V": {"V1.0.0"},
			},
		},
		{
			name: "case-distinct",
			tags: []string{"v1.0.0", "V1.0.0"},
			expect: map[string][]string{
				"v": {"v1.0.0"},
				"V": {"V1.0.0"},
			},
		},
		{
			name: "suffix-ignored",
			tags: []string{"v1.2.3-rc1", "v1.2.3+build.4", "v2.0.0.1"},
			expect: map[string][]string{
				"v": {"v1.2.3-rc1", "v1.2.3+build.4", "v2.0.0.1"},
			},
		},
		{
			name: "first-three-in-listing-order",
			tags: []string{"s0.0.9", "s0.0.10", "s0.0.2", "s0.0.1", "s0.0.3"},
			expect: map[string][]string{
				"s": {"s0.0.9", "s0.0.10", "s0.0.2"},
			},
		},
		{
			name: "excluded-shapes",
			tags: []string{"1.2.3", "v1.2", "release-1.2.3", "cool/v1.2.3", "v-1.2.3", "preprod0.0.1"},
			expect: map[string][]string{
				"preprod": {"preprod0.0.1"},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			groups := Detect(tc.tags)
			got := make(map[string][]string)
			for prefix, g := range groups {
				require.Equal(t, prefix, g.Prefix)
				got[prefix] = g.Examples
			}
			require.Equal(t, tc.expect, got)
		})
	}
}

func TestSortedGroups(t *testing.T) {
	groups := Detect([]string{"x0.0.1", "d0.1.16", "V1.0.0", "preprod1.0.0", "v1.0.0", "s1.0.0"})
	var prefixes []string
	for _, g := range SortedGroups(groups) {
		prefixes = append(prefixes, g.Prefix)
	}
	require.Equal(t, []string{"V", "d", "preprod", "s", "v", "x"}, prefixes)
}

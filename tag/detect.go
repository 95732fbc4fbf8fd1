package tag

import (
	"regexp"
	"sort"
)

// prefixRE matches prefix + version, ignoring anything after the patch.
var prefixRE = regexp.MustCompile(`^([A-Za-z]+)(\d+\.\d+\.\d+)`)

// MaxExamples is the number of example tags kept per prefix.
const MaxExamples = 3

// PrefixGroup is a discovered tag prefix with a few example tag names.
type PrefixGroup struct {
	Prefix   string
	Examples []string
}

// Detect groups tag names by their alphabetic prefix. Grouping is case
// sensitive. Each group keeps the first MaxExamples names in input order;
// names without a prefix+version shape are dropped.
func Detect(tags []string) map[string]*PrefixGroup {
	groups := make(map[string]*PrefixGroup)
	for _, name := range tags {
		m := prefixRE.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		prefix := m[1]
		g, ok := groups[prefix]
		if !ok {
			g = &PrefixGroup{Prefix: prefix}
			groups[prefix] = g
		}
		if len(g.Examples) < MaxExamples {
			g.Examples = append(g.Examples, name)
		}
	}
	return groups
}

// SortedGroups returns groups ordered by prefix, ascending.
func SortedGroups(groups map[string]*PrefixGroup) []*PrefixGroup {
	res := make([]*PrefixGroup, 0, len(groups))
	for _, g := range groups {
		res = append(res, g)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Prefix < res[j].Prefix
	})
	return res
}

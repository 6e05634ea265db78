package version

import "sort"

// Sort orders raw version strings in place under the flexible grammar.
func Sort(versions []string) {
	SortWithFlags(versions, 0)
}

// SortWithFlags orders raw version strings in place, classifying every entry
// under the same flag word. The sort is stable so equal versions (such as
// "1.0" and "1.0.0") keep their input order.
func SortWithFlags(versions []string, flags Flags) {
	sort.SliceStable(versions, func(i, j int) bool {
		return CompareWithFlags(versions[i], versions[j], flags, flags) < 0
	})
}

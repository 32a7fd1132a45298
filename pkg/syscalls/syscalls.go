// Package syscalls carries the per-architecture syscall number tables and
// the semantic group classification. The tables are plain data so new
// syscalls or kernel revisions are a table edit, not a code change.
package syscalls

import (
	"fmt"
	"sort"

	"sctrace/pkg/arch"
)

func numberTable(a arch.Arch) map[uint64]string {
	switch a {
	case arch.AMD64:
		return amd64Names
	case arch.ARM64:
		return arm64Names
	default:
		return nil
	}
}

var (
	amd64Numbers = reverse(amd64Names)
	arm64Numbers = reverse(arm64Names)
)

func reverse(names map[uint64]string) map[string]uint64 {
	m := make(map[string]uint64, len(names))
	for nr, name := range names {
		m[name] = nr
	}
	return m
}

// Name resolves a syscall number to its name, with a stable sys_N fallback
// for numbers outside the table.
func Name(nr uint64, a arch.Arch) string {
	if name, ok := numberTable(a)[nr]; ok {
		return name
	}
	return fmt.Sprintf("sys_%d", nr)
}

// Lookup resolves a syscall name to its number on the given architecture.
func Lookup(name string, a arch.Arch) (uint64, bool) {
	switch a {
	case arch.AMD64:
		nr, ok := amd64Numbers[name]
		return nr, ok
	case arch.ARM64:
		nr, ok := arm64Numbers[name]
		return nr, ok
	default:
		return 0, false
	}
}

// Known reports whether the number is in the architecture's table.
func Known(nr uint64, a arch.Arch) bool {
	_, ok := numberTable(a)[nr]
	return ok
}

// GroupsOf classifies a syscall number. The result is never empty: numbers
// without a precise classification (or outside the table entirely) fall
// into the catch-all group.
func GroupsOf(nr uint64, a arch.Arch) GroupSet {
	name, ok := numberTable(a)[nr]
	if !ok {
		return GroupSet(GroupOther)
	}
	if set, ok := classes[name]; ok && !set.Empty() {
		return set
	}
	return GroupSet(GroupOther)
}

// In returns the sorted syscall numbers on the given architecture whose
// classification intersects the set. It is the inverse of GroupsOf and the
// expansion step of filter compilation.
func In(set GroupSet, a arch.Arch) []uint64 {
	var out []uint64
	for nr := range numberTable(a) {
		if GroupsOf(nr, a)&set != 0 {
			out = append(out, nr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// All returns every syscall number known to the architecture, sorted.
func All(a arch.Arch) []uint64 {
	t := numberTable(a)
	out := make([]uint64, 0, len(t))
	for nr := range t {
		out = append(out, nr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

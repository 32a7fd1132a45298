package syscalls

import "strings"

// Group is one semantic syscall class, following the strace trace-class
// model (file, desc, network, ...).
type Group uint32

const (
	GroupDesc Group = 1 << iota
	GroupFile
	GroupIPC
	GroupNetwork
	GroupProcess
	GroupSignal
	GroupMemory
	GroupStat
	GroupLStat
	GroupFStat
	GroupStatLike
	GroupStatFs
	GroupStatFsLike
	GroupPure
	GroupCreds
	GroupClock
	// GroupOther is the catch-all for syscalls with no precise
	// classification; it keeps the classifier total.
	GroupOther
)

var groupNames = []struct {
	g    Group
	name string
}{
	{GroupDesc, "desc"},
	{GroupFile, "file"},
	{GroupIPC, "ipc"},
	{GroupNetwork, "network"},
	{GroupProcess, "process"},
	{GroupSignal, "signal"},
	{GroupMemory, "memory"},
	{GroupStat, "stat"},
	{GroupLStat, "lstat"},
	{GroupFStat, "fstat"},
	{GroupStatLike, "statlike"},
	{GroupStatFs, "statfs"},
	{GroupStatFsLike, "statfslike"},
	{GroupPure, "pure"},
	{GroupCreds, "creds"},
	{GroupClock, "clock"},
	{GroupOther, "other"},
}

// GroupSet is a bit-set over Group values.
type GroupSet uint32

func NewGroupSet(groups ...Group) GroupSet {
	var s GroupSet
	for _, g := range groups {
		s |= GroupSet(g)
	}
	return s
}

func (s GroupSet) Has(g Group) bool          { return s&GroupSet(g) != 0 }
func (s GroupSet) Empty() bool               { return s == 0 }
func (s GroupSet) Union(o GroupSet) GroupSet { return s | o }

func (s GroupSet) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, gn := range groupNames {
		if s.Has(gn.g) {
			parts = append(parts, gn.name)
		}
	}
	return strings.Join(parts, "|")
}

func (g Group) String() string {
	for _, gn := range groupNames {
		if gn.g == g {
			return gn.name
		}
	}
	return "unknown"
}

// ParseGroup resolves a group name as used in profiles and on the command
// line.
func ParseGroup(name string) (Group, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, gn := range groupNames {
		if gn.name == name {
			return gn.g, true
		}
	}
	return 0, false
}

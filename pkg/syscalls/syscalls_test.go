package syscalls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sctrace/pkg/arch"
)

var bothArches = []arch.Arch{arch.AMD64, arch.ARM64}

func TestNameAndLookupRoundTrip(t *testing.T) {
	cases := []struct {
		a    arch.Arch
		nr   uint64
		name string
	}{
		{arch.AMD64, 0, "read"},
		{arch.AMD64, 2, "open"},
		{arch.AMD64, 257, "openat"},
		{arch.AMD64, 41, "socket"},
		{arch.ARM64, 63, "read"},
		{arch.ARM64, 56, "openat"},
		{arch.ARM64, 198, "socket"},
		{arch.ARM64, 221, "execve"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, Name(tc.nr, tc.a), "%s/%d", tc.a, tc.nr)
		nr, ok := Lookup(tc.name, tc.a)
		require.True(t, ok, "%s/%s", tc.a, tc.name)
		assert.Equal(t, tc.nr, nr)
	}
}

func TestNameFallback(t *testing.T) {
	assert.Equal(t, "sys_9999", Name(9999, arch.AMD64))

	_, ok := Lookup("not_a_syscall", arch.AMD64)
	assert.False(t, ok)
}

func TestArchSpecificNumbers(t *testing.T) {
	// open exists on x86_64 only; arm64 starts at openat.
	_, ok := Lookup("open", arch.ARM64)
	assert.False(t, ok)

	assert.True(t, Known(2, arch.AMD64))
	assert.False(t, Known(9999, arch.AMD64))
}

func TestGroupsOfTotal(t *testing.T) {
	for _, a := range bothArches {
		for _, nr := range All(a) {
			set := GroupsOf(nr, a)
			assert.False(t, set.Empty(), "%s/%s has no groups", a, Name(nr, a))
		}
	}
}

func TestGroupsOfUnknownNumber(t *testing.T) {
	set := GroupsOf(999999, arch.AMD64)
	assert.True(t, set.Has(GroupOther))
}

func TestGroupsOfKnownClassifications(t *testing.T) {
	cases := []struct {
		name string
		want Group
	}{
		{"read", GroupDesc},
		{"openat", GroupDesc},
		{"openat", GroupFile},
		{"unlink", GroupFile},
		{"socket", GroupNetwork},
		{"connect", GroupNetwork},
		{"fork", GroupProcess},
		{"execve", GroupProcess},
		{"execve", GroupFile},
		{"kill", GroupSignal},
		{"mmap", GroupMemory},
		{"stat", GroupStat},
		{"lstat", GroupLStat},
		{"fstat", GroupFStat},
		{"statfs", GroupStatFs},
		{"getpid", GroupPure},
		{"setuid", GroupCreds},
		{"clock_gettime", GroupClock},
		{"msgget", GroupIPC},
	}
	for _, tc := range cases {
		nr, ok := Lookup(tc.name, arch.AMD64)
		require.True(t, ok, tc.name)
		assert.True(t, GroupsOf(nr, arch.AMD64).Has(tc.want),
			"%s should be in %s, got %s", tc.name, tc.want, GroupsOf(nr, arch.AMD64))
	}
}

func TestInInverseOfGroupsOf(t *testing.T) {
	for _, a := range bothArches {
		set := NewGroupSet(GroupNetwork)
		members := In(set, a)
		require.NotEmpty(t, members)

		seen := make(map[uint64]bool, len(members))
		for _, nr := range members {
			assert.True(t, GroupsOf(nr, a).Has(GroupNetwork), "%s/%s", a, Name(nr, a))
			seen[nr] = true
		}
		for _, nr := range All(a) {
			if GroupsOf(nr, a).Has(GroupNetwork) {
				assert.True(t, seen[nr], "In missed %s/%s", a, Name(nr, a))
			}
		}
	}
}

func TestInSorted(t *testing.T) {
	members := In(NewGroupSet(GroupFile), arch.AMD64)
	for i := 1; i < len(members); i++ {
		assert.Less(t, members[i-1], members[i])
	}
}

func TestGroupSetString(t *testing.T) {
	assert.Equal(t, "none", NewGroupSet().String())
	assert.Equal(t, "file", NewGroupSet(GroupFile).String())
	assert.Equal(t, "desc|file", NewGroupSet(GroupFile, GroupDesc).String())
}

func TestParseGroup(t *testing.T) {
	g, ok := ParseGroup("network")
	require.True(t, ok)
	assert.Equal(t, GroupNetwork, g)

	g, ok = ParseGroup(" File ")
	require.True(t, ok)
	assert.Equal(t, GroupFile, g)

	_, ok = ParseGroup("bogus")
	assert.False(t, ok)
}

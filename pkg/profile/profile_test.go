package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sctrace/pkg/arch"
	"sctrace/pkg/filter"
	"sctrace/pkg/syscalls"
)

const sampleProfile = `
name: network-watch
groups:
  - network
syscalls:
  - openat
  - "42"
match_action: trace
default_action: allow
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sampleProfile))
	require.NoError(t, err)

	assert.Equal(t, "network-watch", p.Name)
	assert.Equal(t, []string{"network"}, p.Groups)
	assert.Equal(t, []string{"openat", "42"}, p.Syscalls)
	assert.Equal(t, "trace", p.MatchAction)
	assert.Equal(t, "allow", p.DefaultAction)
}

func TestParseRejectsUnknownGroup(t *testing.T) {
	_, err := Parse([]byte("groups: [nonsense]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonsense")
}

func TestParseRejectsBadAction(t *testing.T) {
	_, err := Parse([]byte("match_action: explode"))
	require.Error(t, err)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("groups: [unterminated"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleProfile), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "network-watch", p.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestInterest(t *testing.T) {
	p, err := Parse([]byte(sampleProfile))
	require.NoError(t, err)

	interest, err := p.Interest(arch.AMD64)
	require.NoError(t, err)

	assert.True(t, interest.Groups.Has(syscalls.GroupNetwork))

	openat, ok := syscalls.Lookup("openat", arch.AMD64)
	require.True(t, ok)
	assert.ElementsMatch(t, []uint64{openat, 42}, interest.Syscalls)
}

func TestInterestPerArchNumbers(t *testing.T) {
	p := &Profile{Syscalls: []string{"openat"}}

	amd, err := p.Interest(arch.AMD64)
	require.NoError(t, err)
	arm, err := p.Interest(arch.ARM64)
	require.NoError(t, err)

	assert.Equal(t, []uint64{257}, amd.Syscalls)
	assert.Equal(t, []uint64{56}, arm.Syscalls)
}

func TestInterestUnknownSyscall(t *testing.T) {
	p := &Profile{Syscalls: []string{"no_such_call"}}
	_, err := p.Interest(arch.AMD64)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_call")
}

func TestActionsDefaults(t *testing.T) {
	p := &Profile{}
	match, def, err := p.Actions()
	require.NoError(t, err)
	assert.Equal(t, filter.ActionTrace, match)
	assert.Equal(t, filter.ActionAllow, def)
}

func TestParseAction(t *testing.T) {
	cases := []struct {
		in   string
		want filter.Action
	}{
		{"allow", filter.ActionAllow},
		{"log", filter.ActionLog},
		{"trace", filter.ActionTrace},
		{"trap", filter.ActionTrap},
		{"kill", filter.ActionKillProcess},
		{"kill_thread", filter.ActionKillThread},
		{" Trace ", filter.ActionTrace},
		{"errno:1", filter.ActionErrno(1)},
		{"errno:38", filter.ActionErrno(38)},
	}
	for _, tc := range cases {
		got, err := ParseAction(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "nuke", "errno:", "errno:x", "errno:70000"} {
		_, err := ParseAction(bad)
		assert.Error(t, err, bad)
	}
}

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"sctrace/pkg/arch"
	"sctrace/pkg/syscalls"
)

// emulate runs a compiled program over one seccomp_data input the way the
// kernel's classic-BPF interpreter would, covering just the opcodes the
// compiler emits.
func emulate(t *testing.T, instrs []unix.SockFilter, nr uint64, auditArch uint32) uint32 {
	t.Helper()

	var acc uint32
	for pc := 0; pc < len(instrs); pc++ {
		ins := instrs[pc]
		switch ins.Code {
		case opLoadAbs:
			switch ins.K {
			case offNR:
				acc = uint32(nr)
			case offArch:
				acc = auditArch
			default:
				t.Fatalf("pc %d: load from unexpected offset %d", pc, ins.K)
			}
		case opJeq:
			if acc == ins.K {
				pc += int(ins.Jt)
			} else {
				pc += int(ins.Jf)
			}
		case opJgt:
			if acc > ins.K {
				pc += int(ins.Jt)
			} else {
				pc += int(ins.Jf)
			}
		case opJa:
			pc += int(ins.K)
		case opRet:
			return ins.K
		default:
			t.Fatalf("pc %d: unexpected opcode 0x%x", pc, ins.Code)
		}
	}
	t.Fatal("program fell off the end without returning")
	return 0
}

func run(t *testing.T, p *Program, nr uint64) Action {
	t.Helper()
	audit, err := arch.AuditArch(p.Arch())
	require.NoError(t, err)
	return Action(emulate(t, p.Instructions(), nr, audit))
}

func TestCompileExplicitSyscalls(t *testing.T) {
	interest := Interest{Syscalls: []uint64{0, 1, 59}}
	p, err := Compile(arch.AMD64, interest, ActionTrace, ActionAllow)
	require.NoError(t, err)

	assert.Equal(t, []uint64{0, 1, 59}, p.Matched())
	for _, nr := range []uint64{0, 1, 59} {
		assert.Equal(t, ActionTrace, run(t, p, nr), "nr %d", nr)
	}
	for _, nr := range []uint64{2, 58, 60, 9999} {
		assert.Equal(t, ActionAllow, run(t, p, nr), "nr %d", nr)
	}
}

func TestCompileGroupExpansion(t *testing.T) {
	interest := Interest{Groups: syscalls.NewGroupSet(syscalls.GroupNetwork)}
	p, err := Compile(arch.AMD64, interest, ActionTrace, ActionAllow)
	require.NoError(t, err)

	members := syscalls.In(syscalls.NewGroupSet(syscalls.GroupNetwork), arch.AMD64)
	assert.Equal(t, members, p.Matched())

	for _, nr := range syscalls.All(arch.AMD64) {
		want := ActionAllow
		if syscalls.GroupsOf(nr, arch.AMD64).Has(syscalls.GroupNetwork) {
			want = ActionTrace
		}
		assert.Equal(t, want, run(t, p, nr), "%s", syscalls.Name(nr, arch.AMD64))
	}
}

func TestCompileGroupPlusExplicit(t *testing.T) {
	nr, ok := syscalls.Lookup("openat", arch.AMD64)
	require.True(t, ok)

	interest := Interest{
		Groups:   syscalls.NewGroupSet(syscalls.GroupNetwork),
		Syscalls: []uint64{nr},
	}
	p, err := Compile(arch.AMD64, interest, ActionTrace, ActionAllow)
	require.NoError(t, err)

	assert.Equal(t, ActionTrace, run(t, p, nr))
	assert.Contains(t, p.Matched(), nr)
}

func TestCompileForeignArchHitsDefault(t *testing.T) {
	p, err := Compile(arch.AMD64, Interest{Syscalls: []uint64{0}}, ActionTrace, ActionKillProcess)
	require.NoError(t, err)

	// Same number, wrong audit arch: never compared against the
	// numbering space, always the default action.
	got := emulate(t, p.Instructions(), 0, unix.AUDIT_ARCH_AARCH64)
	assert.Equal(t, ActionKillProcess, Action(got))
}

func TestCompileWholeTableUsesTree(t *testing.T) {
	all := syscalls.All(arch.AMD64)
	require.Greater(t, len(all), linearMax)

	p, err := Compile(arch.AMD64, Interest{Syscalls: all}, ActionTrace, ActionAllow)
	require.NoError(t, err)

	assert.LessOrEqual(t, p.Len(), unix.BPF_MAXINSNS)
	for _, nr := range all {
		assert.Equal(t, ActionTrace, run(t, p, nr), "%s", syscalls.Name(nr, arch.AMD64))
	}
	// Gaps in the table and numbers past the end stay on the default.
	for _, nr := range []uint64{184, 185, 335, 423, 500, 100000} {
		if !syscalls.Known(nr, arch.AMD64) {
			assert.Equal(t, ActionAllow, run(t, p, nr), "nr %d", nr)
		}
	}
}

func TestCompileArm64Numbering(t *testing.T) {
	nr, ok := syscalls.Lookup("openat", arch.ARM64)
	require.True(t, ok)

	p, err := Compile(arch.ARM64, Interest{Syscalls: []uint64{nr}}, ActionTrace, ActionAllow)
	require.NoError(t, err)

	got := emulate(t, p.Instructions(), nr, unix.AUDIT_ARCH_AARCH64)
	assert.Equal(t, ActionTrace, Action(got))

	got = emulate(t, p.Instructions(), nr, unix.AUDIT_ARCH_X86_64)
	assert.Equal(t, ActionAllow, Action(got))
}

func TestCompileEmptyInterest(t *testing.T) {
	_, err := Compile(arch.AMD64, Interest{}, ActionTrace, ActionAllow)
	assert.ErrorIs(t, err, ErrEmptyInterest)
}

func TestCompileOversizedNumber(t *testing.T) {
	// A number above 2^32 cannot be encoded in a BPF comparison; silently
	// truncating it would match an unrelated low syscall instead.
	_, err := Compile(arch.AMD64, Interest{Syscalls: []uint64{1<<32 + 1}}, ActionKillProcess, ActionAllow)
	require.Error(t, err)

	var rangeErr *NumberRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, uint64(1<<32+1), rangeErr.NR)
}

func TestCompileUnsupportedArch(t *testing.T) {
	_, err := Compile(arch.Arch("mips"), Interest{Syscalls: []uint64{0}}, ActionTrace, ActionAllow)
	require.Error(t, err)

	var archErr *arch.UnsupportedArchError
	assert.ErrorAs(t, err, &archErr)
}

func TestCompileDeterministic(t *testing.T) {
	interest := Interest{
		Groups:   syscalls.NewGroupSet(syscalls.GroupFile, syscalls.GroupDesc),
		Syscalls: []uint64{42, 1, 42},
	}
	a, err := Compile(arch.AMD64, interest, ActionTrace, ActionAllow)
	require.NoError(t, err)
	b, err := Compile(arch.AMD64, interest, ActionTrace, ActionAllow)
	require.NoError(t, err)

	assert.Equal(t, a.Instructions(), b.Instructions())
	assert.Equal(t, a.Matched(), b.Matched())
}

func TestCompileDeduplicates(t *testing.T) {
	p, err := Compile(arch.AMD64, Interest{Syscalls: []uint64{7, 7, 7}}, ActionTrace, ActionAllow)
	require.NoError(t, err)
	assert.Equal(t, []uint64{7}, p.Matched())
}

func TestActionErrno(t *testing.T) {
	a := ActionErrno(uint16(unix.EPERM))
	assert.Equal(t, "errno(1)", a.String())

	p, err := Compile(arch.AMD64, Interest{Syscalls: []uint64{41}}, a, ActionAllow)
	require.NoError(t, err)
	assert.Equal(t, a, run(t, p, 41))
}

func TestSockFprog(t *testing.T) {
	p, err := Compile(arch.AMD64, Interest{Syscalls: []uint64{0}}, ActionTrace, ActionAllow)
	require.NoError(t, err)

	prog := p.SockFprog()
	require.NotNil(t, prog.Filter)
	assert.Equal(t, uint16(p.Len()), prog.Len)
}

package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/sys/unix"
)

func amd64Snapshot() Regs {
	return Regs{
		Arch: AMD64,
		Amd64: &Amd64Regs{
			Orig_rax: 257,
			Rdi:      0xffffffffffffff9c, // AT_FDCWD sign-extended
			Rsi:      0x7f0000001000,
			Rdx:      0,
			R10:      0o644,
			R8:       5,
			R9:       6,
			Rax:      3,
		},
	}
}

func arm64Snapshot() Regs {
	var regs Arm64Regs
	regs.Regs[8] = 56
	regs.Regs[0] = 0xffffffffffffff9c
	regs.Regs[1] = 0x7f0000002000
	regs.Regs[2] = 0
	regs.Regs[3] = 0o644
	regs.Regs[4] = 5
	regs.Regs[5] = 6
	return Regs{Arch: ARM64, Arm64: &regs}
}

func TestSyscallEnterAmd64(t *testing.T) {
	raw, err := SyscallEnter(amd64Snapshot())
	require.NoError(t, err)

	assert.Equal(t, AMD64, raw.Arch)
	assert.Equal(t, uint64(257), raw.NR)
	assert.Equal(t, [MaxArgs]uint64{
		0xffffffffffffff9c, 0x7f0000001000, 0, 0o644, 5, 6,
	}, raw.Args)
	assert.False(t, raw.Exit)
	assert.Zero(t, raw.Ret)
}

func TestSyscallEnterArm64(t *testing.T) {
	raw, err := SyscallEnter(arm64Snapshot())
	require.NoError(t, err)

	assert.Equal(t, ARM64, raw.Arch)
	assert.Equal(t, uint64(56), raw.NR)
	assert.Equal(t, [MaxArgs]uint64{
		0xffffffffffffff9c, 0x7f0000002000, 0, 0o644, 5, 6,
	}, raw.Args)
}

func TestSyscallExitAmd64(t *testing.T) {
	raw, err := SyscallExit(amd64Snapshot())
	require.NoError(t, err)

	assert.True(t, raw.Exit)
	assert.Equal(t, uint64(3), raw.Ret)
	assert.Equal(t, uint64(257), raw.NR)
}

func TestSyscallExitArm64ReturnClobbersArg0(t *testing.T) {
	snap := arm64Snapshot()
	snap.Arm64.Regs[0] = ^uint64(1) // -2, ENOENT

	raw, err := SyscallExit(snap)
	require.NoError(t, err)

	assert.True(t, raw.Exit)
	assert.Equal(t, ^uint64(1), raw.Ret)
	// x0 serves as both arg0 and the return register, so arg0 at exit
	// reflects the return value.
	assert.Equal(t, raw.Ret, raw.Args[0])
}

func TestSyscallEnterUnsupported(t *testing.T) {
	_, err := SyscallEnter(Regs{Arch: Arch("riscv64")})
	require.Error(t, err)

	var archErr *UnsupportedArchError
	require.ErrorAs(t, err, &archErr)
	assert.Equal(t, Arch("riscv64"), archErr.Arch)
}

func TestSyscallEnterMissingSnapshot(t *testing.T) {
	_, err := SyscallEnter(Regs{Arch: AMD64})
	require.Error(t, err)
}

func TestAuditArch(t *testing.T) {
	got, err := AuditArch(AMD64)
	require.NoError(t, err)
	assert.Equal(t, uint32(unix.AUDIT_ARCH_X86_64), got)

	got, err = AuditArch(ARM64)
	require.NoError(t, err)
	assert.Equal(t, uint32(unix.AUDIT_ARCH_AARCH64), got)

	_, err = AuditArch(Arch("mips"))
	require.Error(t, err)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(AMD64))
	assert.True(t, Supported(ARM64))
	assert.False(t, Supported(Arch("s390x")))
}

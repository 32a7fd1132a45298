// Package arch maps raw ptrace register snapshots onto architecture-neutral
// syscall records. Register layouts for every supported architecture are
// compiled in unconditionally so a snapshot captured on one machine can be
// decoded on another (and so tests can build synthetic snapshots for foreign
// architectures).
package arch

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

type Arch string

const (
	AMD64 Arch = "amd64"
	ARM64 Arch = "arm64"
)

// MaxArgs is the number of syscall operand registers on all supported
// architectures.
const MaxArgs = 6

// Native returns the architecture of the running process.
func Native() Arch {
	switch runtime.GOARCH {
	case "amd64":
		return AMD64
	case "arm64":
		return ARM64
	default:
		return Arch(runtime.GOARCH)
	}
}

func Supported(a Arch) bool {
	_, ok := conventions[a]
	return ok
}

// Regs is a raw register snapshot tagged with the architecture it was
// captured on. Exactly one of the per-architecture fields is set.
type Regs struct {
	Arch  Arch
	Amd64 *Amd64Regs
	Arm64 *Arm64Regs
}

// RawSyscall is the architecture-agnostic record of one syscall stop:
// the syscall number plus up to six raw machine-word arguments, and the
// raw return value when captured at a syscall-exit stop.
type RawSyscall struct {
	Arch Arch
	NR   uint64
	Args [MaxArgs]uint64
	Ret  uint64
	Exit bool
}

type UnsupportedArchError struct {
	Arch Arch
}

func (e *UnsupportedArchError) Error() string {
	return fmt.Sprintf("unsupported architecture %q", e.Arch)
}

type convention struct {
	sysno func(Regs) uint64
	arg   func(Regs, int) uint64
	ret   func(Regs) uint64
	have  func(Regs) bool
	audit uint32
}

var conventions = map[Arch]*convention{
	AMD64: {
		sysno: amd64Sysno,
		arg:   amd64Arg,
		ret:   amd64Ret,
		have:  func(r Regs) bool { return r.Amd64 != nil },
		audit: unix.AUDIT_ARCH_X86_64,
	},
	ARM64: {
		sysno: arm64Sysno,
		arg:   arm64Arg,
		ret:   arm64Ret,
		have:  func(r Regs) bool { return r.Arm64 != nil },
		audit: unix.AUDIT_ARCH_AARCH64,
	},
}

// SyscallEnter projects a register snapshot captured at a syscall-enter stop
// onto a RawSyscall.
func SyscallEnter(r Regs) (RawSyscall, error) {
	c, ok := conventions[r.Arch]
	if !ok || !c.have(r) {
		return RawSyscall{}, &UnsupportedArchError{Arch: r.Arch}
	}
	raw := RawSyscall{Arch: r.Arch, NR: c.sysno(r)}
	for i := 0; i < MaxArgs; i++ {
		raw.Args[i] = c.arg(r, i)
	}
	return raw, nil
}

// SyscallExit projects a register snapshot captured at a syscall-exit stop
// onto a RawSyscall carrying the raw return value. Argument registers are
// re-read as they are at exit; on architectures where the return value
// register doubles as an argument register the original first argument is
// no longer visible here.
func SyscallExit(r Regs) (RawSyscall, error) {
	raw, err := SyscallEnter(r)
	if err != nil {
		return RawSyscall{}, err
	}
	raw.Ret = conventions[r.Arch].ret(r)
	raw.Exit = true
	return raw, nil
}

// AuditArch returns the AUDIT_ARCH_* value identifying the architecture to
// the kernel's seccomp machinery.
func AuditArch(a Arch) (uint32, error) {
	c, ok := conventions[a]
	if !ok {
		return 0, &UnsupportedArchError{Arch: a}
	}
	return c.audit, nil
}

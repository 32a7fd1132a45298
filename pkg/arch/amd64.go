package arch

// Amd64Regs is the x86_64 user_regs_struct layout. It is defined here
// rather than borrowed from x/sys/unix because the unix type only exists
// on x86 builds, and snapshots must be constructible on every
// architecture. Field-for-field identical to unix.PtraceRegsAmd64, so a
// live snapshot converts with a plain type conversion.
type Amd64Regs struct {
	R15      uint64
	R14      uint64
	R13      uint64
	R12      uint64
	Rbp      uint64
	Rbx      uint64
	R11      uint64
	R10      uint64
	R9       uint64
	R8       uint64
	Rax      uint64
	Rcx      uint64
	Rdx      uint64
	Rsi      uint64
	Rdi      uint64
	Orig_rax uint64
	Rip      uint64
	Cs       uint64
	Eflags   uint64
	Rsp      uint64
	Ss       uint64
	Fs_base  uint64
	Gs_base  uint64
	Ds       uint64
	Es       uint64
	Fs       uint64
	Gs       uint64
}

// x86_64 syscall convention: number in orig_rax, return value in rax,
// arguments in rdi, rsi, rdx, r10, r8, r9.

func amd64Sysno(r Regs) uint64 { return r.Amd64.Orig_rax }
func amd64Ret(r Regs) uint64   { return r.Amd64.Rax }

func amd64Arg(r Regs, i int) uint64 {
	switch i {
	case 0:
		return r.Amd64.Rdi
	case 1:
		return r.Amd64.Rsi
	case 2:
		return r.Amd64.Rdx
	case 3:
		return r.Amd64.R10
	case 4:
		return r.Amd64.R8
	case 5:
		return r.Amd64.R9
	}
	return 0
}

package arch

// Arm64Regs is the arm64 user_pt_regs layout, mirrored from
// unix.PtraceRegsArm64 for the same reason as Amd64Regs.
type Arm64Regs struct {
	Regs   [31]uint64
	Sp     uint64
	Pc     uint64
	Pstate uint64
}

// arm64 syscall convention: number in x8, return value in x0, arguments in
// x0..x5. The return value register is also the first argument register, so
// arg0 at an exit stop reflects the return value, not the original operand.

func arm64Sysno(r Regs) uint64 { return r.Arm64.Regs[8] }
func arm64Ret(r Regs) uint64   { return r.Arm64.Regs[0] }

func arm64Arg(r Regs, i int) uint64 {
	if i < 0 || i >= MaxArgs {
		return 0
	}
	return r.Arm64.Regs[i]
}

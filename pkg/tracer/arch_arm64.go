package tracer

import (
	"golang.org/x/sys/unix"

	"sctrace/pkg/arch"
)

func getRegs(pid int) (arch.Regs, error) {
	var regs unix.PtraceRegsArm64
	if err := unix.PtraceGetRegsArm64(pid, &regs); err != nil {
		return arch.Regs{}, err
	}
	r := arch.Arm64Regs(regs)
	return arch.Regs{Arch: arch.ARM64, Arm64: &r}, nil
}

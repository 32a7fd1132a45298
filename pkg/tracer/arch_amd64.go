package tracer

import (
	"golang.org/x/sys/unix"

	"sctrace/pkg/arch"
)

func getRegs(pid int) (arch.Regs, error) {
	var regs unix.PtraceRegsAmd64
	if err := unix.PtraceGetRegsAmd64(pid, &regs); err != nil {
		return arch.Regs{}, err
	}
	r := arch.Amd64Regs(regs)
	return arch.Regs{Arch: arch.AMD64, Amd64: &r}, nil
}

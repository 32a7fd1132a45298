package filter

import "golang.org/x/sys/unix"

// Classic-BPF opcodes used by the compiler, and the struct seccomp_data
// field offsets the kernel exposes to seccomp programs.
const (
	opLoadAbs = unix.BPF_LD | unix.BPF_W | unix.BPF_ABS
	opJeq     = unix.BPF_JMP | unix.BPF_JEQ | unix.BPF_K
	opJgt     = unix.BPF_JMP | unix.BPF_JGT | unix.BPF_K
	opJa      = unix.BPF_JMP | unix.BPF_JA
	opRet     = unix.BPF_RET | unix.BPF_K

	offNR   = 0
	offArch = 4
)

func bpfStmt(code uint16, k uint32) unix.SockFilter {
	return unix.SockFilter{Code: code, K: k}
}

func bpfLoad(off uint32) unix.SockFilter {
	return bpfStmt(opLoadAbs, off)
}

// bpfJeq compares the accumulator with k; jt/jf are relative forward
// offsets, 0 meaning fallthrough.
func bpfJeq(k uint32, jt, jf uint8) unix.SockFilter {
	return unix.SockFilter{Code: opJeq, Jt: jt, Jf: jf, K: k}
}

func bpfJgt(k uint32, jt, jf uint8) unix.SockFilter {
	return unix.SockFilter{Code: opJgt, Jt: jt, Jf: jf, K: k}
}

// bpfJump is an unconditional jump; its 32-bit offset covers hops too long
// for the 8-bit conditional fields.
func bpfJump(off uint32) unix.SockFilter {
	return bpfStmt(opJa, off)
}

func bpfRet(a Action) unix.SockFilter {
	return bpfStmt(opRet, uint32(a))
}

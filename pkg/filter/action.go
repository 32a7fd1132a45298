package filter

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Action is a seccomp filter terminal action.
type Action uint32

const (
	ActionAllow       = Action(unix.SECCOMP_RET_ALLOW)
	ActionLog         = Action(unix.SECCOMP_RET_LOG)
	ActionTrace       = Action(unix.SECCOMP_RET_TRACE)
	ActionTrap        = Action(unix.SECCOMP_RET_TRAP)
	ActionKillThread  = Action(unix.SECCOMP_RET_KILL_THREAD)
	ActionKillProcess = Action(unix.SECCOMP_RET_KILL_PROCESS)
)

// ActionErrno fails the syscall with the given errno without executing it.
func ActionErrno(errno uint16) Action {
	return Action(unix.SECCOMP_RET_ERRNO | (uint32(errno) & unix.SECCOMP_RET_DATA))
}

func (a Action) String() string {
	switch a & Action(unix.SECCOMP_RET_ACTION_FULL) {
	case Action(unix.SECCOMP_RET_ALLOW):
		return "allow"
	case Action(unix.SECCOMP_RET_LOG):
		return "log"
	case Action(unix.SECCOMP_RET_TRACE):
		return "trace"
	case Action(unix.SECCOMP_RET_TRAP):
		return "trap"
	case Action(unix.SECCOMP_RET_KILL_THREAD):
		return "kill_thread"
	case Action(unix.SECCOMP_RET_KILL_PROCESS):
		return "kill_process"
	case Action(unix.SECCOMP_RET_ERRNO):
		return fmt.Sprintf("errno(%d)", uint32(a)&unix.SECCOMP_RET_DATA)
	default:
		return fmt.Sprintf("action(0x%x)", uint32(a))
	}
}

// Package tracer runs a command under ptrace and reports every syscall
// stop as decoded enter/exit pairs. It follows forks, vforks and clones,
// keeps per-process cwd and fd-path bookkeeping, and feeds each stop to a
// Handler such as Printer.
package tracer

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"sctrace/pkg/arch"
	"sctrace/pkg/inspect"
	"sctrace/pkg/syscalls"
)

const traceOpts = unix.PTRACE_O_TRACESYSGOOD |
	unix.PTRACE_O_TRACEFORK |
	unix.PTRACE_O_TRACEVFORK |
	unix.PTRACE_O_TRACECLONE |
	unix.PTRACE_O_TRACEEXEC

// Handler receives decoded syscall stops. Enter and exit for one syscall
// arrive as separate calls; args passed to SyscallExit is the matching
// enter view, or nil when the enter stop was not observed.
type Handler interface {
	SyscallEnter(pid int, args *inspect.Args)
	SyscallExit(pid int, args *inspect.Args, res *inspect.Result)
}

type Config struct {
	Handler Handler
	// Match restricts reporting to these syscall numbers. nil reports all.
	Match map[uint64]bool
}

type Tracer struct {
	handler Handler
	match   map[uint64]bool
	procs   map[int]*ProcessState
}

type ProcessState struct {
	pid       int
	inSyscall bool
	cwd       string
	fds       *FDTable
	enter     *inspect.Args
	attached  bool
}

func New(cfg Config) *Tracer {
	return &Tracer{
		handler: cfg.Handler,
		match:   cfg.Match,
		procs:   make(map[int]*ProcessState),
	}
}

// Run starts the command under ptrace and traces it to completion,
// including every descendant it forks.
func (t *Tracer) Run(args []string) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Ptrace: true,
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "starting command")
	}

	pid := cmd.Process.Pid

	var ws unix.WaitStatus
	if _, err := unix.Wait4(pid, &ws, 0, nil); err != nil {
		return errors.Wrap(err, "initial wait")
	}

	if err := unix.PtraceSetOptions(pid, traceOpts); err != nil {
		return errors.Wrap(err, "ptrace setoptions")
	}

	cwd, _ := os.Getwd()
	t.procs[pid] = &ProcessState{
		pid:      pid,
		cwd:      cwd,
		fds:      NewFDTable(),
		attached: true,
	}

	return t.traceLoop(pid)
}

func (t *Tracer) traceLoop(initialPid int) error {
	if err := unix.PtraceSyscall(initialPid, 0); err != nil {
		return errors.Wrap(err, "resuming tracee")
	}

	for len(t.procs) > 0 {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-1, &ws, unix.WALL, nil)
		if err != nil {
			if err == unix.ECHILD {
				break
			}
			return errors.Wrap(err, "wait4")
		}

		if ws.Exited() || ws.Signaled() {
			delete(t.procs, pid)
			continue
		}

		proc, ok := t.procs[pid]
		if !ok {
			proc = t.adoptProcess(pid)
		}

		if !ws.Stopped() {
			continue
		}

		sig := ws.StopSignal()
		switch {
		case sig == unix.SIGTRAP|0x80:
			t.handleSyscallStop(proc)
			t.resume(pid, 0)
		case sig == unix.SIGTRAP:
			t.handlePtraceEvent(proc, ws)
			t.resume(pid, 0)
		case sig == unix.SIGSTOP && !proc.attached:
			proc.attached = true
			t.resume(pid, 0)
		default:
			t.resume(pid, int(sig))
		}
	}

	return nil
}

// resume continues the tracee to its next syscall stop. The tracee can
// die between stops; ESRCH here just means the exit notification is
// already queued.
func (t *Tracer) resume(pid int, sig int) {
	if err := unix.PtraceSyscall(pid, sig); err != nil && err != unix.ESRCH {
		log.WithError(err).WithField("pid", pid).Debug("ptrace resume failed")
	}
}

// adoptProcess registers a process we were not told about in advance,
// usually a child whose fork event raced its first stop.
func (t *Tracer) adoptProcess(pid int) *ProcessState {
	cwd, err := os.Readlink(fmt.Sprintf("/proc/%d/cwd", pid))
	if err != nil {
		cwd, _ = os.Getwd()
	}
	proc := &ProcessState{
		pid: pid,
		cwd: cwd,
		fds: NewFDTable(),
	}
	t.procs[pid] = proc

	if err := unix.PtraceSetOptions(pid, traceOpts); err != nil && err != unix.ESRCH {
		log.WithError(err).WithField("pid", pid).Debug("ptrace setoptions failed")
	}
	return proc
}

func (t *Tracer) handlePtraceEvent(proc *ProcessState, ws unix.WaitStatus) {
	switch ws.TrapCause() {
	case unix.PTRACE_EVENT_FORK, unix.PTRACE_EVENT_VFORK, unix.PTRACE_EVENT_CLONE:
		childPid, err := unix.PtraceGetEventMsg(proc.pid)
		if err != nil {
			return
		}
		t.procs[int(childPid)] = &ProcessState{
			pid: int(childPid),
			cwd: proc.cwd,
			fds: proc.fds.Clone(),
		}
	}
}

func (t *Tracer) handleSyscallStop(proc *ProcessState) {
	regs, err := getRegs(proc.pid)
	if err != nil {
		return
	}

	if !proc.inSyscall {
		proc.inSyscall = true
		t.handleEnter(proc, regs)
	} else {
		proc.inSyscall = false
		t.handleExit(proc, regs)
	}
}

func (t *Tracer) handleEnter(proc *ProcessState, regs arch.Regs) {
	raw, err := arch.SyscallEnter(regs)
	if err != nil {
		log.WithError(err).WithField("pid", proc.pid).Debug("mapping enter registers")
		return
	}

	args, err := inspect.DecodeEnter(raw, NewMemory(proc.pid))
	if err != nil {
		log.WithError(err).WithFields(logFields(proc.pid, raw)).Debug("decoding enter")
		args = &inspect.Args{
			Arch: raw.Arch,
			NR:   raw.NR,
			Name: syscalls.Name(raw.NR, raw.Arch),
			Raw:  raw.Args,
		}
	}
	proc.enter = args

	if t.handler != nil && t.reported(raw.NR) {
		t.handler.SyscallEnter(proc.pid, args)
	}
}

func (t *Tracer) handleExit(proc *ProcessState, regs arch.Regs) {
	raw, err := arch.SyscallExit(regs)
	if err != nil {
		log.WithError(err).WithField("pid", proc.pid).Debug("mapping exit registers")
		return
	}

	enter := proc.enter
	proc.enter = nil
	if enter != nil && enter.NR != raw.NR {
		// Enter/exit pairing broke, likely across an attach race.
		enter = nil
	}

	res, err := inspect.DecodeExit(raw, enter, NewMemory(proc.pid))
	if err != nil {
		log.WithError(err).WithFields(logFields(proc.pid, raw)).Debug("decoding exit")
		return
	}

	if enter != nil && !res.Failed() && !res.NoReturn {
		t.track(proc, enter, res)
	}

	if t.handler != nil && t.reported(raw.NR) {
		t.handler.SyscallExit(proc.pid, enter, res)
	}
}

func (t *Tracer) reported(nr uint64) bool {
	return t.match == nil || t.match[nr]
}

// track keeps the per-process cwd and fd-path view current from the
// syscalls that change them.
func (t *Tracer) track(proc *ProcessState, enter *inspect.Args, res *inspect.Result) {
	switch enter.Name {
	case "open", "creat":
		if v, ok := enter.Field("pathname"); ok {
			proc.fds.Set(int(res.Value), proc.fds.ResolveAt(unix.AT_FDCWD, v.Str, proc.cwd))
		}
	case "openat":
		dirfd, _ := enter.Field("dirfd")
		if v, ok := enter.Field("pathname"); ok {
			proc.fds.Set(int(res.Value), proc.fds.ResolveAt(int(dirfd.Int), v.Str, proc.cwd))
		}
	case "close":
		if v, ok := enter.Field("fd"); ok {
			proc.fds.Close(int(v.Int))
		}
	case "dup":
		if v, ok := enter.Field("oldfd"); ok {
			proc.fds.Dup(int(v.Int), int(res.Value))
		}
	case "dup2", "dup3":
		oldfd, ok1 := enter.Field("oldfd")
		newfd, ok2 := enter.Field("newfd")
		if ok1 && ok2 {
			proc.fds.Dup(int(oldfd.Int), int(newfd.Int))
		}
	case "chdir":
		if v, ok := enter.Field("path"); ok {
			proc.cwd = proc.fds.ResolveAt(unix.AT_FDCWD, v.Str, proc.cwd)
		}
	case "fchdir":
		if v, ok := enter.Field("fd"); ok {
			if dir, found := proc.fds.Get(int(v.Int)); found {
				proc.cwd = dir
			}
		}
	}
}

func logFields(pid int, raw arch.RawSyscall) logrus.Fields {
	return logrus.Fields{
		"pid":     pid,
		"syscall": syscalls.Name(raw.NR, raw.Arch),
	}
}

package inspect

// Decode rules. Each syscall maps to an ordered list of argument specs;
// an arg's kind says whether the raw word is a plain value, a pointer to a
// NUL-terminated string, a buffer with a separate length argument, or a
// pointer to a fixed-layout struct, and whether the pointee is written by
// the kernel (read back at exit) or by the caller (read at enter).
//
// A NULL pointer in any memory-backed position decodes to a nil address
// value rather than a read failure; several syscalls take optional
// pointers (prlimit64, nanosleep, execve argv on some runtimes).

type argKind int

const (
	argInt argKind = iota // signed 32-bit value
	argInt64
	argUint
	argFd
	argMode
	argAddr        // pointer kept as a raw address
	argPath        // NUL-terminated path, read at enter
	argString      // NUL-terminated string, read at enter
	argStringVec   // NUL-terminated pointer vector of strings, read at enter
	argBuffer      // caller-filled buffer, read at enter, length in lenArg
	argOutBuffer   // kernel-filled buffer, read back at exit, clamped to retval
	argOutString   // kernel-filled NUL string, read back at exit
	argStruct      // caller-filled struct, read at enter
	argOutStruct   // kernel-filled struct, read back at exit
	argSockaddr    // caller-filled sockaddr, socklen value in lenArg
	argOutSockaddr // kernel-filled sockaddr, value-result socklen pointer in lenArg
	argOutFdPair   // int[2] written by the kernel (pipe, socketpair)
)

type argSpec struct {
	name   string
	kind   argKind
	lenArg int    // index of the length argument where relevant
	layout string // struct layout key where relevant
}

type retKind int

const (
	retInt retKind = iota
	retFd
	retNoReturn // no syscall-exit stop exists (exit family)
	retExec     // success replaces the program image; only failure returns
)

type callSpec struct {
	args []argSpec
	ret  retKind
}

func vInt(n string) argSpec   { return argSpec{name: n, kind: argInt} }
func vI64(n string) argSpec   { return argSpec{name: n, kind: argInt64} }
func vUint(n string) argSpec  { return argSpec{name: n, kind: argUint} }
func vFd(n string) argSpec    { return argSpec{name: n, kind: argFd} }
func vMode(n string) argSpec  { return argSpec{name: n, kind: argMode} }
func vAddr(n string) argSpec  { return argSpec{name: n, kind: argAddr} }
func vPath(n string) argSpec  { return argSpec{name: n, kind: argPath} }
func vStr(n string) argSpec   { return argSpec{name: n, kind: argString} }
func vVec(n string) argSpec   { return argSpec{name: n, kind: argStringVec} }

func inBuf(n string, lenArg int) argSpec  { return argSpec{name: n, kind: argBuffer, lenArg: lenArg} }
func outBuf(n string, lenArg int) argSpec { return argSpec{name: n, kind: argOutBuffer, lenArg: lenArg} }
func outStr(n string) argSpec             { return argSpec{name: n, kind: argOutString} }
func inStruct(n, layout string) argSpec   { return argSpec{name: n, kind: argStruct, layout: layout} }
func outStruct(n, layout string) argSpec  { return argSpec{name: n, kind: argOutStruct, layout: layout} }
func inSock(n string, lenArg int) argSpec { return argSpec{name: n, kind: argSockaddr, lenArg: lenArg} }
func outSock(n string, lenArg int) argSpec {
	return argSpec{name: n, kind: argOutSockaddr, lenArg: lenArg}
}
func outFds(n string) argSpec { return argSpec{name: n, kind: argOutFdPair} }

func call(ret retKind, args ...argSpec) *callSpec { return &callSpec{args: args, ret: ret} }

var callSpecs = map[string]*callSpec{
	// descriptor I/O
	"read":            call(retInt, vFd("fd"), outBuf("buf", 2), vUint("count")),
	"write":           call(retInt, vFd("fd"), inBuf("buf", 2), vUint("count")),
	"pread64":         call(retInt, vFd("fd"), outBuf("buf", 2), vUint("count"), vI64("offset")),
	"pwrite64":        call(retInt, vFd("fd"), inBuf("buf", 2), vUint("count"), vI64("offset")),
	"readv":           call(retInt, vFd("fd"), vAddr("iov"), vInt("iovcnt")),
	"writev":          call(retInt, vFd("fd"), vAddr("iov"), vInt("iovcnt")),
	"lseek":           call(retInt, vFd("fd"), vI64("offset"), vInt("whence")),
	"close":           call(retInt, vFd("fd")),
	"dup":             call(retFd, vFd("oldfd")),
	"dup2":            call(retFd, vFd("oldfd"), vFd("newfd")),
	"dup3":            call(retFd, vFd("oldfd"), vFd("newfd"), vInt("flags")),
	"fcntl":           call(retInt, vFd("fd"), vInt("cmd"), vUint("arg")),
	"flock":           call(retInt, vFd("fd"), vInt("operation")),
	"fsync":           call(retInt, vFd("fd")),
	"fdatasync":       call(retInt, vFd("fd")),
	"ftruncate":       call(retInt, vFd("fd"), vI64("length")),
	"fallocate":       call(retInt, vFd("fd"), vInt("mode"), vI64("offset"), vI64("len")),
	"getdents64":      call(retInt, vFd("fd"), outBuf("dirp", 2), vUint("count")),
	"sendfile":        call(retInt, vFd("out_fd"), vFd("in_fd"), vAddr("offset"), vUint("count")),
	"ioctl":           call(retInt, vFd("fd"), vUint("request"), vAddr("arg")),
	"copy_file_range": call(retInt, vFd("fd_in"), vAddr("off_in"), vFd("fd_out"), vAddr("off_out"), vUint("len"), vUint("flags")),

	// pathname and fd factories
	"open":              call(retFd, vPath("pathname"), vInt("flags"), vMode("mode")),
	"openat":            call(retFd, vFd("dirfd"), vPath("pathname"), vInt("flags"), vMode("mode")),
	"openat2":           call(retFd, vFd("dirfd"), vPath("pathname"), vAddr("how"), vUint("size")),
	"creat":             call(retFd, vPath("pathname"), vMode("mode")),
	"pipe":              call(retInt, outFds("pipefd")),
	"pipe2":             call(retInt, outFds("pipefd"), vInt("flags")),
	"eventfd2":          call(retFd, vUint("initval"), vInt("flags")),
	"epoll_create1":     call(retFd, vInt("flags")),
	"memfd_create":      call(retFd, vStr("name"), vUint("flags")),
	"pidfd_open":        call(retFd, vInt("pid"), vUint("flags")),
	"inotify_init1":     call(retFd, vInt("flags")),
	"inotify_add_watch": call(retInt, vFd("fd"), vPath("pathname"), vUint("mask")),
	"timerfd_create":    call(retFd, vInt("clockid"), vInt("flags")),

	// file metadata
	"stat":       call(retInt, vPath("pathname"), outStruct("statbuf", "stat")),
	"lstat":      call(retInt, vPath("pathname"), outStruct("statbuf", "stat")),
	"fstat":      call(retInt, vFd("fd"), outStruct("statbuf", "stat")),
	"newfstatat": call(retInt, vFd("dirfd"), vPath("pathname"), outStruct("statbuf", "stat"), vInt("flags")),
	"statx":      call(retInt, vFd("dirfd"), vPath("pathname"), vInt("flags"), vUint("mask"), vAddr("statxbuf")),
	"statfs":     call(retInt, vPath("pathname"), vAddr("buf")),
	"fstatfs":    call(retInt, vFd("fd"), vAddr("buf")),
	"access":     call(retInt, vPath("pathname"), vInt("mode")),
	"faccessat":  call(retInt, vFd("dirfd"), vPath("pathname"), vInt("mode")),
	"faccessat2": call(retInt, vFd("dirfd"), vPath("pathname"), vInt("mode"), vInt("flags")),
	"readlink":   call(retInt, vPath("pathname"), outBuf("buf", 2), vUint("bufsiz")),
	"readlinkat": call(retInt, vFd("dirfd"), vPath("pathname"), outBuf("buf", 3), vUint("bufsiz")),
	"getxattr":   call(retInt, vPath("pathname"), vStr("name"), vAddr("value"), vUint("size")),
	"lgetxattr":  call(retInt, vPath("pathname"), vStr("name"), vAddr("value"), vUint("size")),
	"fgetxattr":  call(retInt, vFd("fd"), vStr("name"), vAddr("value"), vUint("size")),
	"setxattr":   call(retInt, vPath("pathname"), vStr("name"), inBuf("value", 3), vUint("size"), vInt("flags")),

	// file tree mutation
	"chdir":     call(retInt, vPath("path")),
	"fchdir":    call(retInt, vFd("fd")),
	"rename":    call(retInt, vPath("oldpath"), vPath("newpath")),
	"renameat":  call(retInt, vFd("olddirfd"), vPath("oldpath"), vFd("newdirfd"), vPath("newpath")),
	"renameat2": call(retInt, vFd("olddirfd"), vPath("oldpath"), vFd("newdirfd"), vPath("newpath"), vUint("flags")),
	"mkdir":     call(retInt, vPath("pathname"), vMode("mode")),
	"mkdirat":   call(retInt, vFd("dirfd"), vPath("pathname"), vMode("mode")),
	"rmdir":     call(retInt, vPath("pathname")),
	"link":      call(retInt, vPath("oldpath"), vPath("newpath")),
	"linkat":    call(retInt, vFd("olddirfd"), vPath("oldpath"), vFd("newdirfd"), vPath("newpath"), vInt("flags")),
	"unlink":    call(retInt, vPath("pathname")),
	"unlinkat":  call(retInt, vFd("dirfd"), vPath("pathname"), vInt("flags")),
	"symlink":   call(retInt, vStr("target"), vPath("linkpath")),
	"symlinkat": call(retInt, vStr("target"), vFd("newdirfd"), vPath("linkpath")),
	"truncate":  call(retInt, vPath("path"), vI64("length")),
	"chmod":     call(retInt, vPath("pathname"), vMode("mode")),
	"fchmod":    call(retInt, vFd("fd"), vMode("mode")),
	"fchmodat":  call(retInt, vFd("dirfd"), vPath("pathname"), vMode("mode")),
	"chown":     call(retInt, vPath("pathname"), vInt("owner"), vInt("group")),
	"lchown":    call(retInt, vPath("pathname"), vInt("owner"), vInt("group")),
	"fchown":    call(retInt, vFd("fd"), vInt("owner"), vInt("group")),
	"fchownat":  call(retInt, vFd("dirfd"), vPath("pathname"), vInt("owner"), vInt("group"), vInt("flags")),
	"mknod":     call(retInt, vPath("pathname"), vMode("mode"), vUint("dev")),
	"mknodat":   call(retInt, vFd("dirfd"), vPath("pathname"), vMode("mode"), vUint("dev")),
	"umask":     call(retInt, vMode("mask")),
	"getcwd":    call(retInt, outStr("buf"), vUint("size")),
	"chroot":    call(retInt, vPath("path")),
	"utimensat": call(retInt, vFd("dirfd"), vPath("pathname"), vAddr("times"), vInt("flags")),
	"mount":     call(retInt, vPath("source"), vPath("target"), vStr("filesystemtype"), vUint("mountflags"), vAddr("data")),
	"umount2":   call(retInt, vPath("target"), vInt("flags")),

	// memory
	"mmap":     call(retInt, vAddr("addr"), vUint("length"), vInt("prot"), vInt("flags"), vFd("fd"), vI64("offset")),
	"mprotect": call(retInt, vAddr("addr"), vUint("len"), vInt("prot")),
	"munmap":   call(retInt, vAddr("addr"), vUint("length")),
	"brk":      call(retInt, vAddr("addr")),
	"mremap":   call(retInt, vAddr("old_address"), vUint("old_size"), vUint("new_size"), vInt("flags"), vAddr("new_address")),
	"madvise":  call(retInt, vAddr("addr"), vUint("length"), vInt("advice")),
	"mlock":    call(retInt, vAddr("addr"), vUint("len")),
	"munlock":  call(retInt, vAddr("addr"), vUint("len")),
	"msync":    call(retInt, vAddr("addr"), vUint("length"), vInt("flags")),

	// network
	"socket":      call(retFd, vInt("domain"), vInt("type"), vInt("protocol")),
	"socketpair":  call(retInt, vInt("domain"), vInt("type"), vInt("protocol"), outFds("sv")),
	"connect":     call(retInt, vFd("sockfd"), inSock("addr", 2), vUint("addrlen")),
	"bind":        call(retInt, vFd("sockfd"), inSock("addr", 2), vUint("addrlen")),
	"listen":      call(retInt, vFd("sockfd"), vInt("backlog")),
	"accept":      call(retFd, vFd("sockfd"), outSock("addr", 2), vAddr("addrlen")),
	"accept4":     call(retFd, vFd("sockfd"), outSock("addr", 2), vAddr("addrlen"), vInt("flags")),
	"getsockname": call(retInt, vFd("sockfd"), outSock("addr", 2), vAddr("addrlen")),
	"getpeername": call(retInt, vFd("sockfd"), outSock("addr", 2), vAddr("addrlen")),
	"sendto":      call(retInt, vFd("sockfd"), inBuf("buf", 2), vUint("len"), vInt("flags"), inSock("dest_addr", 5), vUint("addrlen")),
	"recvfrom":    call(retInt, vFd("sockfd"), outBuf("buf", 2), vUint("len"), vInt("flags"), outSock("src_addr", 5), vAddr("addrlen")),
	"sendmsg":     call(retInt, vFd("sockfd"), vAddr("msg"), vInt("flags")),
	"recvmsg":     call(retInt, vFd("sockfd"), vAddr("msg"), vInt("flags")),
	"shutdown":    call(retInt, vFd("sockfd"), vInt("how")),
	"setsockopt":  call(retInt, vFd("sockfd"), vInt("level"), vInt("optname"), inBuf("optval", 4), vUint("optlen")),
	"getsockopt":  call(retInt, vFd("sockfd"), vInt("level"), vInt("optname"), vAddr("optval"), vAddr("optlen")),

	// process
	"clone":           call(retInt, vUint("flags"), vAddr("stack"), vAddr("parent_tid"), vAddr("child_tid"), vUint("tls")),
	"clone3":          call(retInt, vAddr("cl_args"), vUint("size")),
	"fork":            call(retInt),
	"vfork":           call(retInt),
	"execve":          call(retExec, vPath("pathname"), vVec("argv"), vVec("envp")),
	"execveat":        call(retExec, vFd("dirfd"), vPath("pathname"), vVec("argv"), vVec("envp"), vInt("flags")),
	"exit":            call(retNoReturn, vInt("status")),
	"exit_group":      call(retNoReturn, vInt("status")),
	"wait4":           call(retInt, vInt("pid"), vAddr("wstatus"), vInt("options"), vAddr("rusage")),
	"waitid":          call(retInt, vInt("idtype"), vInt("id"), vAddr("infop"), vInt("options")),
	"getpid":          call(retInt),
	"getppid":         call(retInt),
	"gettid":          call(retInt),
	"setsid":          call(retInt),
	"setpgid":         call(retInt, vInt("pid"), vInt("pgid")),
	"getpgid":         call(retInt, vInt("pid")),
	"prctl":           call(retInt, vInt("option"), vUint("arg2"), vUint("arg3"), vUint("arg4"), vUint("arg5")),
	"arch_prctl":      call(retInt, vInt("code"), vUint("addr")),
	"unshare":         call(retInt, vUint("flags")),
	"setns":           call(retInt, vFd("fd"), vInt("nstype")),
	"seccomp":         call(retInt, vUint("operation"), vUint("flags"), vAddr("args")),
	"set_tid_address": call(retInt, vAddr("tidptr")),
	"set_robust_list": call(retInt, vAddr("head"), vUint("len")),

	// credentials
	"getuid":    call(retInt),
	"geteuid":   call(retInt),
	"getgid":    call(retInt),
	"getegid":   call(retInt),
	"setuid":    call(retInt, vInt("uid")),
	"setgid":    call(retInt, vInt("gid")),
	"setreuid":  call(retInt, vInt("ruid"), vInt("euid")),
	"setregid":  call(retInt, vInt("rgid"), vInt("egid")),
	"setresuid": call(retInt, vInt("ruid"), vInt("euid"), vInt("suid")),
	"setresgid": call(retInt, vInt("rgid"), vInt("egid"), vInt("sgid")),
	"capget":    call(retInt, vAddr("hdrp"), vAddr("datap")),
	"capset":    call(retInt, vAddr("hdrp"), vAddr("datap")),

	// signals
	"kill":              call(retInt, vInt("pid"), vInt("sig")),
	"tkill":             call(retInt, vInt("tid"), vInt("sig")),
	"tgkill":            call(retInt, vInt("tgid"), vInt("tid"), vInt("sig")),
	"rt_sigaction":      call(retInt, vInt("signum"), vAddr("act"), vAddr("oldact"), vUint("sigsetsize")),
	"rt_sigprocmask":    call(retInt, vInt("how"), vAddr("set"), vAddr("oldset"), vUint("sigsetsize")),
	"rt_sigreturn":      call(retInt),
	"sigaltstack":       call(retInt, vAddr("ss"), vAddr("old_ss")),
	"pause":             call(retInt),
	"pidfd_send_signal": call(retInt, vFd("pidfd"), vInt("sig"), vAddr("info"), vUint("flags")),

	// polling
	"poll":        call(retInt, vAddr("fds"), vUint("nfds"), vInt("timeout")),
	"ppoll":       call(retInt, vAddr("fds"), vUint("nfds"), inStruct("tmo_p", "timespec"), vAddr("sigmask")),
	"select":      call(retInt, vInt("nfds"), vAddr("readfds"), vAddr("writefds"), vAddr("exceptfds"), inStruct("timeout", "timeval")),
	"pselect6":    call(retInt, vInt("nfds"), vAddr("readfds"), vAddr("writefds"), vAddr("exceptfds"), inStruct("timeout", "timespec"), vAddr("sigmask")),
	"epoll_ctl":   call(retInt, vFd("epfd"), vInt("op"), vFd("fd"), vAddr("event")),
	"epoll_wait":  call(retInt, vFd("epfd"), vAddr("events"), vInt("maxevents"), vInt("timeout")),
	"epoll_pwait": call(retInt, vFd("epfd"), vAddr("events"), vInt("maxevents"), vInt("timeout"), vAddr("sigmask")),

	// clocks
	"nanosleep":       call(retInt, inStruct("req", "timespec"), outStruct("rem", "timespec")),
	"clock_nanosleep": call(retInt, vInt("clockid"), vInt("flags"), inStruct("request", "timespec"), outStruct("remain", "timespec")),
	"clock_gettime":   call(retInt, vInt("clockid"), outStruct("tp", "timespec")),
	"clock_getres":    call(retInt, vInt("clockid"), outStruct("res", "timespec")),
	"clock_settime":   call(retInt, vInt("clockid"), inStruct("tp", "timespec")),
	"gettimeofday":    call(retInt, outStruct("tv", "timeval"), vAddr("tz")),
	"settimeofday":    call(retInt, inStruct("tv", "timeval"), vAddr("tz")),

	// limits and accounting
	"getrlimit": call(retInt, vInt("resource"), outStruct("rlim", "rlimit")),
	"setrlimit": call(retInt, vInt("resource"), inStruct("rlim", "rlimit")),
	"prlimit64": call(retInt, vInt("pid"), vInt("resource"), inStruct("new_limit", "rlimit"), outStruct("old_limit", "rlimit")),
	"getrusage": call(retInt, vInt("who"), vAddr("usage")),
	"sysinfo":   call(retInt, vAddr("info")),
	"times":     call(retInt, vAddr("buf")),
	"uname":     call(retInt, vAddr("buf")),

	// misc
	"getrandom":         call(retInt, outBuf("buf", 1), vUint("buflen"), vUint("flags")),
	"futex":             call(retInt, vAddr("uaddr"), vInt("futex_op"), vUint("val"), vAddr("timeout"), vAddr("uaddr2"), vUint("val3")),
	"sched_yield":       call(retInt),
	"sched_getaffinity": call(retInt, vInt("pid"), vUint("cpusetsize"), vAddr("mask")),
	"sched_setaffinity": call(retInt, vInt("pid"), vUint("cpusetsize"), vAddr("mask")),
	"getpriority":       call(retInt, vInt("which"), vInt("who")),
	"setpriority":       call(retInt, vInt("which"), vInt("who"), vInt("prio")),
	"sync":              call(retInt),
	"syncfs":            call(retInt, vFd("fd")),
	"process_vm_readv":  call(retInt, vInt("pid"), vAddr("local_iov"), vUint("liovcnt"), vAddr("remote_iov"), vUint("riovcnt"), vUint("flags")),
	"process_vm_writev": call(retInt, vInt("pid"), vAddr("local_iov"), vUint("liovcnt"), vAddr("remote_iov"), vUint("riovcnt"), vUint("flags")),
	"close_range":       call(retInt, vUint("first"), vUint("last"), vUint("flags")),
}

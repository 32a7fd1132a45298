package syscalls

// classes assigns strace-style trace classes to syscalls by name, so the
// assignment is shared across architectures. Names missing here (or mapped
// to an empty set) classify as GroupOther.
var classes = map[string]GroupSet{
	// plain descriptor I/O
	"read":            NewGroupSet(GroupDesc),
	"write":           NewGroupSet(GroupDesc),
	"readv":           NewGroupSet(GroupDesc),
	"writev":          NewGroupSet(GroupDesc),
	"pread64":         NewGroupSet(GroupDesc),
	"pwrite64":        NewGroupSet(GroupDesc),
	"preadv":          NewGroupSet(GroupDesc),
	"pwritev":         NewGroupSet(GroupDesc),
	"preadv2":         NewGroupSet(GroupDesc),
	"pwritev2":        NewGroupSet(GroupDesc),
	"lseek":           NewGroupSet(GroupDesc),
	"close":           NewGroupSet(GroupDesc),
	"close_range":     NewGroupSet(GroupDesc),
	"dup":             NewGroupSet(GroupDesc),
	"dup2":            NewGroupSet(GroupDesc),
	"dup3":            NewGroupSet(GroupDesc),
	"fcntl":           NewGroupSet(GroupDesc),
	"flock":           NewGroupSet(GroupDesc),
	"fsync":           NewGroupSet(GroupDesc),
	"fdatasync":       NewGroupSet(GroupDesc),
	"syncfs":          NewGroupSet(GroupDesc),
	"ftruncate":       NewGroupSet(GroupDesc),
	"fallocate":       NewGroupSet(GroupDesc),
	"fadvise64":       NewGroupSet(GroupDesc),
	"readahead":       NewGroupSet(GroupDesc),
	"ioctl":           NewGroupSet(GroupDesc),
	"getdents":        NewGroupSet(GroupDesc),
	"getdents64":      NewGroupSet(GroupDesc),
	"sendfile":        NewGroupSet(GroupDesc, GroupNetwork),
	"splice":          NewGroupSet(GroupDesc),
	"tee":             NewGroupSet(GroupDesc),
	"vmsplice":        NewGroupSet(GroupDesc),
	"sync_file_range": NewGroupSet(GroupDesc),
	"copy_file_range": NewGroupSet(GroupDesc),
	"fchdir":          NewGroupSet(GroupDesc),
	"fchmod":          NewGroupSet(GroupDesc),
	"fchown":          NewGroupSet(GroupDesc),
	"fgetxattr":       NewGroupSet(GroupDesc),
	"fsetxattr":       NewGroupSet(GroupDesc),
	"flistxattr":      NewGroupSet(GroupDesc),
	"fremovexattr":    NewGroupSet(GroupDesc),

	// descriptor factories and event fds
	"poll":              NewGroupSet(GroupDesc),
	"ppoll":             NewGroupSet(GroupDesc),
	"select":            NewGroupSet(GroupDesc),
	"pselect6":          NewGroupSet(GroupDesc),
	"epoll_create":      NewGroupSet(GroupDesc),
	"epoll_create1":     NewGroupSet(GroupDesc),
	"epoll_ctl":         NewGroupSet(GroupDesc),
	"epoll_wait":        NewGroupSet(GroupDesc),
	"epoll_pwait":       NewGroupSet(GroupDesc),
	"epoll_pwait2":      NewGroupSet(GroupDesc),
	"eventfd":           NewGroupSet(GroupDesc),
	"eventfd2":          NewGroupSet(GroupDesc),
	"signalfd":          NewGroupSet(GroupDesc, GroupSignal),
	"signalfd4":         NewGroupSet(GroupDesc, GroupSignal),
	"timerfd_create":    NewGroupSet(GroupDesc),
	"timerfd_settime":   NewGroupSet(GroupDesc),
	"timerfd_gettime":   NewGroupSet(GroupDesc),
	"inotify_init":      NewGroupSet(GroupDesc),
	"inotify_init1":     NewGroupSet(GroupDesc),
	"inotify_add_watch": NewGroupSet(GroupDesc, GroupFile),
	"inotify_rm_watch":  NewGroupSet(GroupDesc),
	"fanotify_init":     NewGroupSet(GroupDesc),
	"fanotify_mark":     NewGroupSet(GroupDesc, GroupFile),
	"pipe":              NewGroupSet(GroupDesc),
	"pipe2":             NewGroupSet(GroupDesc),
	"memfd_create":      NewGroupSet(GroupDesc),
	"memfd_secret":      NewGroupSet(GroupDesc),
	"userfaultfd":       NewGroupSet(GroupDesc),
	"perf_event_open":   NewGroupSet(GroupDesc),
	"bpf":               NewGroupSet(GroupDesc),
	"io_uring_setup":    NewGroupSet(GroupDesc),
	"io_uring_enter":    NewGroupSet(GroupDesc),
	"io_uring_register": NewGroupSet(GroupDesc),
	"pidfd_open":        NewGroupSet(GroupDesc),
	"pidfd_getfd":       NewGroupSet(GroupDesc),
	"pidfd_send_signal": NewGroupSet(GroupDesc, GroupSignal, GroupProcess),
	"ioprio_set":        NewGroupSet(GroupDesc),
	"ioprio_get":        NewGroupSet(GroupDesc),
	"cachestat":         NewGroupSet(GroupDesc),

	// pathname operations
	"open":              NewGroupSet(GroupDesc, GroupFile),
	"openat":            NewGroupSet(GroupDesc, GroupFile),
	"openat2":           NewGroupSet(GroupDesc, GroupFile),
	"creat":             NewGroupSet(GroupDesc, GroupFile),
	"name_to_handle_at": NewGroupSet(GroupDesc, GroupFile),
	"open_by_handle_at": NewGroupSet(GroupDesc),
	"open_tree":         NewGroupSet(GroupDesc, GroupFile),
	"access":            NewGroupSet(GroupFile),
	"faccessat":         NewGroupSet(GroupDesc, GroupFile),
	"faccessat2":        NewGroupSet(GroupDesc, GroupFile),
	"chdir":             NewGroupSet(GroupFile),
	"chmod":             NewGroupSet(GroupFile),
	"fchmodat":          NewGroupSet(GroupDesc, GroupFile),
	"fchmodat2":         NewGroupSet(GroupDesc, GroupFile),
	"chown":             NewGroupSet(GroupFile),
	"lchown":            NewGroupSet(GroupFile),
	"fchownat":          NewGroupSet(GroupDesc, GroupFile),
	"rename":            NewGroupSet(GroupFile),
	"renameat":          NewGroupSet(GroupDesc, GroupFile),
	"renameat2":         NewGroupSet(GroupDesc, GroupFile),
	"mkdir":             NewGroupSet(GroupFile),
	"mkdirat":           NewGroupSet(GroupDesc, GroupFile),
	"rmdir":             NewGroupSet(GroupFile),
	"link":              NewGroupSet(GroupFile),
	"linkat":            NewGroupSet(GroupDesc, GroupFile),
	"unlink":            NewGroupSet(GroupFile),
	"unlinkat":          NewGroupSet(GroupDesc, GroupFile),
	"symlink":           NewGroupSet(GroupFile),
	"symlinkat":         NewGroupSet(GroupDesc, GroupFile),
	"readlink":          NewGroupSet(GroupFile),
	"readlinkat":        NewGroupSet(GroupDesc, GroupFile),
	"truncate":          NewGroupSet(GroupFile),
	"mknod":             NewGroupSet(GroupFile),
	"mknodat":           NewGroupSet(GroupDesc, GroupFile),
	"utime":             NewGroupSet(GroupFile),
	"utimes":            NewGroupSet(GroupFile),
	"futimesat":         NewGroupSet(GroupDesc, GroupFile),
	"utimensat":         NewGroupSet(GroupDesc, GroupFile),
	"getcwd":            NewGroupSet(GroupFile),
	"chroot":            NewGroupSet(GroupFile),
	"pivot_root":        NewGroupSet(GroupFile),
	"mount":             NewGroupSet(GroupFile),
	"umount2":           NewGroupSet(GroupFile),
	"move_mount":        NewGroupSet(GroupDesc, GroupFile),
	"mount_setattr":     NewGroupSet(GroupDesc, GroupFile),
	"fsopen":            NewGroupSet(GroupDesc),
	"fsconfig":          NewGroupSet(GroupDesc, GroupFile),
	"fsmount":           NewGroupSet(GroupDesc),
	"fspick":            NewGroupSet(GroupDesc, GroupFile),
	"swapon":            NewGroupSet(GroupFile),
	"swapoff":           NewGroupSet(GroupFile),
	"acct":              NewGroupSet(GroupFile),
	"uselib":            NewGroupSet(GroupFile),
	"quotactl":          NewGroupSet(GroupFile),
	"quotactl_fd":       NewGroupSet(GroupDesc),
	"setxattr":          NewGroupSet(GroupFile),
	"lsetxattr":         NewGroupSet(GroupFile),
	"getxattr":          NewGroupSet(GroupFile),
	"lgetxattr":         NewGroupSet(GroupFile),
	"listxattr":         NewGroupSet(GroupFile),
	"llistxattr":        NewGroupSet(GroupFile),
	"removexattr":       NewGroupSet(GroupFile),
	"lremovexattr":      NewGroupSet(GroupFile),

	// stat family
	"stat":       NewGroupSet(GroupFile, GroupStat, GroupStatLike),
	"lstat":      NewGroupSet(GroupFile, GroupLStat, GroupStatLike),
	"fstat":      NewGroupSet(GroupDesc, GroupFStat, GroupStatLike),
	"newfstatat": NewGroupSet(GroupDesc, GroupFile, GroupFStat, GroupStatLike),
	"statx":      NewGroupSet(GroupDesc, GroupFile, GroupStatLike),
	"ustat":      NewGroupSet(GroupStatFsLike),
	"statfs":     NewGroupSet(GroupFile, GroupStatFs, GroupStatFsLike),
	"fstatfs":    NewGroupSet(GroupDesc, GroupStatFs, GroupStatFsLike),

	// memory management
	"mmap":             NewGroupSet(GroupDesc, GroupMemory),
	"munmap":           NewGroupSet(GroupMemory),
	"mprotect":         NewGroupSet(GroupMemory),
	"pkey_mprotect":    NewGroupSet(GroupMemory),
	"pkey_alloc":       NewGroupSet(GroupMemory),
	"pkey_free":        NewGroupSet(GroupMemory),
	"brk":              NewGroupSet(GroupMemory),
	"mremap":           NewGroupSet(GroupMemory),
	"msync":            NewGroupSet(GroupMemory),
	"mincore":          NewGroupSet(GroupMemory),
	"madvise":          NewGroupSet(GroupMemory),
	"process_madvise":  NewGroupSet(GroupDesc, GroupMemory),
	"process_mrelease": NewGroupSet(GroupDesc, GroupMemory),
	"mlock":            NewGroupSet(GroupMemory),
	"mlock2":           NewGroupSet(GroupMemory),
	"munlock":          NewGroupSet(GroupMemory),
	"mlockall":         NewGroupSet(GroupMemory),
	"munlockall":       NewGroupSet(GroupMemory),
	"remap_file_pages": NewGroupSet(GroupMemory),
	"mbind":            NewGroupSet(GroupMemory),
	"set_mempolicy":    NewGroupSet(GroupMemory),
	"get_mempolicy":    NewGroupSet(GroupMemory),
	"set_mempolicy_home_node": NewGroupSet(GroupMemory),
	"migrate_pages":    NewGroupSet(GroupMemory),
	"move_pages":       NewGroupSet(GroupMemory),
	"membarrier":       NewGroupSet(GroupMemory),
	"map_shadow_stack": NewGroupSet(GroupMemory),
	"shmat":            NewGroupSet(GroupIPC, GroupMemory),
	"shmdt":            NewGroupSet(GroupIPC, GroupMemory),
	"io_setup":         NewGroupSet(GroupMemory),
	"io_destroy":       NewGroupSet(GroupMemory),

	// network
	"socket":      NewGroupSet(GroupNetwork),
	"socketpair":  NewGroupSet(GroupNetwork),
	"connect":     NewGroupSet(GroupNetwork),
	"accept":      NewGroupSet(GroupNetwork),
	"accept4":     NewGroupSet(GroupNetwork),
	"bind":        NewGroupSet(GroupNetwork),
	"listen":      NewGroupSet(GroupNetwork),
	"sendto":      NewGroupSet(GroupNetwork),
	"recvfrom":    NewGroupSet(GroupNetwork),
	"sendmsg":     NewGroupSet(GroupNetwork),
	"recvmsg":     NewGroupSet(GroupNetwork),
	"sendmmsg":    NewGroupSet(GroupNetwork),
	"recvmmsg":    NewGroupSet(GroupNetwork),
	"shutdown":    NewGroupSet(GroupNetwork),
	"getsockname": NewGroupSet(GroupNetwork),
	"getpeername": NewGroupSet(GroupNetwork),
	"setsockopt":  NewGroupSet(GroupNetwork),
	"getsockopt":  NewGroupSet(GroupNetwork),

	// process lifecycle
	"clone":             NewGroupSet(GroupProcess),
	"clone3":            NewGroupSet(GroupProcess),
	"fork":              NewGroupSet(GroupProcess),
	"vfork":             NewGroupSet(GroupProcess),
	"execve":            NewGroupSet(GroupFile, GroupProcess),
	"execveat":          NewGroupSet(GroupDesc, GroupFile, GroupProcess),
	"exit":              NewGroupSet(GroupProcess),
	"exit_group":        NewGroupSet(GroupProcess),
	"wait4":             NewGroupSet(GroupProcess),
	"waitid":            NewGroupSet(GroupProcess),
	"unshare":           NewGroupSet(GroupProcess),
	"setns":             NewGroupSet(GroupDesc, GroupProcess),
	"kcmp":              NewGroupSet(GroupProcess),
	"ptrace":            NewGroupSet(GroupProcess),
	"prctl":             NewGroupSet(GroupProcess),
	"arch_prctl":        NewGroupSet(GroupProcess),
	"setpgid":           NewGroupSet(GroupProcess),
	"getpgid":           NewGroupSet(GroupProcess),
	"setsid":            NewGroupSet(GroupProcess),
	"getsid":            NewGroupSet(GroupProcess),
	"set_tid_address":   NewGroupSet(GroupProcess),
	"process_vm_readv":  NewGroupSet(GroupProcess),
	"process_vm_writev": NewGroupSet(GroupProcess),
	"reboot":            NewGroupSet(GroupProcess),
	"kexec_load":        NewGroupSet(GroupProcess),
	"kexec_file_load":   NewGroupSet(GroupDesc, GroupProcess),
	"personality":       NewGroupSet(GroupProcess),

	// signals
	"kill":              NewGroupSet(GroupSignal, GroupProcess),
	"tkill":             NewGroupSet(GroupSignal, GroupProcess),
	"tgkill":            NewGroupSet(GroupSignal, GroupProcess),
	"pause":             NewGroupSet(GroupSignal),
	"rt_sigaction":      NewGroupSet(GroupSignal),
	"rt_sigprocmask":    NewGroupSet(GroupSignal),
	"rt_sigpending":     NewGroupSet(GroupSignal),
	"rt_sigsuspend":     NewGroupSet(GroupSignal),
	"rt_sigreturn":      NewGroupSet(GroupSignal),
	"rt_sigtimedwait":   NewGroupSet(GroupSignal),
	"rt_sigqueueinfo":   NewGroupSet(GroupSignal, GroupProcess),
	"rt_tgsigqueueinfo": NewGroupSet(GroupSignal, GroupProcess),
	"sigaltstack":       NewGroupSet(GroupSignal),
	"restart_syscall":   NewGroupSet(GroupSignal),

	// SysV and POSIX IPC
	"shmget":          NewGroupSet(GroupIPC),
	"shmctl":          NewGroupSet(GroupIPC),
	"semget":          NewGroupSet(GroupIPC),
	"semop":           NewGroupSet(GroupIPC),
	"semtimedop":      NewGroupSet(GroupIPC),
	"semctl":          NewGroupSet(GroupIPC),
	"msgget":          NewGroupSet(GroupIPC),
	"msgsnd":          NewGroupSet(GroupIPC),
	"msgrcv":          NewGroupSet(GroupIPC),
	"msgctl":          NewGroupSet(GroupIPC),
	"mq_open":         NewGroupSet(GroupDesc, GroupIPC),
	"mq_unlink":       NewGroupSet(GroupIPC),
	"mq_timedsend":    NewGroupSet(GroupDesc, GroupIPC),
	"mq_timedreceive": NewGroupSet(GroupDesc, GroupIPC),
	"mq_notify":       NewGroupSet(GroupDesc, GroupIPC),
	"mq_getsetattr":   NewGroupSet(GroupDesc, GroupIPC),

	// pure value getters
	"getpid":   NewGroupSet(GroupPure),
	"getppid":  NewGroupSet(GroupPure),
	"gettid":   NewGroupSet(GroupPure),
	"getpgrp":  NewGroupSet(GroupPure),
	"getuid":   NewGroupSet(GroupPure, GroupCreds),
	"geteuid":  NewGroupSet(GroupPure, GroupCreds),
	"getgid":   NewGroupSet(GroupPure, GroupCreds),
	"getegid":  NewGroupSet(GroupPure, GroupCreds),

	// credentials
	"setuid":     NewGroupSet(GroupCreds),
	"setgid":     NewGroupSet(GroupCreds),
	"setreuid":   NewGroupSet(GroupCreds),
	"setregid":   NewGroupSet(GroupCreds),
	"setresuid":  NewGroupSet(GroupCreds),
	"getresuid":  NewGroupSet(GroupCreds),
	"setresgid":  NewGroupSet(GroupCreds),
	"getresgid":  NewGroupSet(GroupCreds),
	"setfsuid":   NewGroupSet(GroupCreds),
	"setfsgid":   NewGroupSet(GroupCreds),
	"getgroups":  NewGroupSet(GroupCreds),
	"setgroups":  NewGroupSet(GroupCreds),
	"capget":     NewGroupSet(GroupCreds),
	"capset":     NewGroupSet(GroupCreds),
	"add_key":    NewGroupSet(GroupCreds),
	"request_key": NewGroupSet(GroupCreds),
	"keyctl":     NewGroupSet(GroupCreds),

	// clocks and timers
	"time":              NewGroupSet(GroupClock),
	"gettimeofday":      NewGroupSet(GroupClock),
	"settimeofday":      NewGroupSet(GroupClock),
	"adjtimex":          NewGroupSet(GroupClock),
	"clock_adjtime":     NewGroupSet(GroupClock),
	"clock_gettime":     NewGroupSet(GroupClock),
	"clock_settime":     NewGroupSet(GroupClock),
	"clock_getres":      NewGroupSet(GroupClock),
	"clock_nanosleep":   NewGroupSet(GroupClock),
	"nanosleep":         NewGroupSet(GroupClock),
	"times":             NewGroupSet(GroupClock),
	"alarm":             NewGroupSet(GroupClock),
	"getitimer":         NewGroupSet(GroupClock),
	"setitimer":         NewGroupSet(GroupClock),
	"timer_create":      NewGroupSet(GroupClock),
	"timer_settime":     NewGroupSet(GroupClock),
	"timer_gettime":     NewGroupSet(GroupClock),
	"timer_getoverrun":  NewGroupSet(GroupClock),
	"timer_delete":      NewGroupSet(GroupClock),
}

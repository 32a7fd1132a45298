package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// Descriptors survive execve unless opened with O_CLOEXEC, which the
// table does not track, so an exec event must not drop the bookkeeping.
func TestExecKeepsFdTable(t *testing.T) {
	tr := New(Config{})
	proc := &ProcessState{pid: 1234, fds: NewFDTable()}
	proc.fds.Set(3, "/etc/hosts")
	tr.procs[proc.pid] = proc

	ws := unix.WaitStatus(uint32(unix.SIGTRAP)<<8 | 0x7f |
		uint32(unix.PTRACE_EVENT_EXEC)<<16)
	tr.handlePtraceEvent(proc, ws)

	p, ok := proc.fds.Get(3)
	require.True(t, ok)
	assert.Equal(t, "/etc/hosts", p)
}

package tracer

import (
	"golang.org/x/sys/unix"
)

const wordSize = 8

// Memory reads a stopped tracee's address space word by word. A read that
// crosses into an unmapped page returns the bytes up to the boundary with
// a nil error; a read whose first word is unreadable returns the ptrace
// error. It satisfies inspect.MemoryReader.
type Memory struct {
	pid int
}

func NewMemory(pid int) *Memory {
	return &Memory{pid: pid}
}

func (m *Memory) ReadMem(addr uint64, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	words := (len(buf) + wordSize - 1) / wordSize
	for i := 0; i < words; i++ {
		var word [wordSize]byte
		_, err := unix.PtracePeekData(m.pid, uintptr(addr)+uintptr(i*wordSize), word[:])
		if err != nil {
			if i == 0 {
				return 0, err
			}
			return i * wordSize, nil
		}

		start := i * wordSize
		end := start + wordSize
		if end > len(buf) {
			end = len(buf)
		}
		copy(buf[start:end], word[:end-start])
	}

	return len(buf), nil
}

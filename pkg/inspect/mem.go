package inspect

import (
	"encoding/binary"
	"errors"
	"io"
)

const ptrSize = 8

var errNilPointer = errors.New("nil pointer")

// readBytes reads exactly n bytes at addr. Short reads are failures here;
// callers that tolerate truncation clamp n before calling.
func readBytes(mem MemoryReader, addr uint64, n int) ([]byte, error) {
	if addr == 0 {
		return nil, errNilPointer
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	got, err := mem.ReadMem(addr, buf)
	if err != nil {
		return nil, err
	}
	if got < n {
		return nil, io.ErrUnexpectedEOF
	}
	return buf, nil
}

// readString reads a NUL-terminated string at addr in small chunks,
// stopping at max bytes. The second return reports truncation at the cap.
func readString(mem MemoryReader, addr uint64, max int) (string, bool, error) {
	if addr == 0 {
		return "", false, errNilPointer
	}
	const chunk = 64
	var out []byte
	for len(out) < max {
		want := chunk
		if rem := max - len(out); rem < want {
			want = rem
		}
		buf := make([]byte, want)
		got, err := mem.ReadMem(addr+uint64(len(out)), buf)
		if err != nil {
			return "", false, err
		}
		for i := 0; i < got; i++ {
			if buf[i] == 0 {
				return string(append(out, buf[:i]...)), false, nil
			}
		}
		out = append(out, buf[:got]...)
		if got < want {
			return "", false, io.ErrUnexpectedEOF
		}
	}
	return string(out), true, nil
}

// readStringVector reads a NUL-terminated array of string pointers
// (execve-style argv/envp), capped at maxVectorLen entries.
func readStringVector(mem MemoryReader, addr uint64, maxItems int) ([]string, bool, error) {
	if addr == 0 {
		return nil, false, errNilPointer
	}
	var out []string
	for i := 0; i < maxItems; i++ {
		pbuf, err := readBytes(mem, addr+uint64(i*ptrSize), ptrSize)
		if err != nil {
			return nil, false, err
		}
		p := binary.LittleEndian.Uint64(pbuf)
		if p == 0 {
			return out, false, nil
		}
		s, _, err := readString(mem, p, maxStringLen)
		if err != nil {
			return nil, false, err
		}
		out = append(out, s)
	}
	return out, true, nil
}

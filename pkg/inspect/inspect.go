// Package inspect turns raw syscall records into typed arguments and
// results. Pointer-bearing arguments are materialized by reading tracee
// memory through an explicit MemoryReader capability, so decoding is
// testable against synthetic memory with no live process. Per-syscall
// decode rules live in a table (rules.go); adding a syscall is a table
// entry.
package inspect

import (
	"fmt"

	"sctrace/pkg/arch"
)

// MemoryReader reads tracee memory while the tracee is stopped. It returns
// the number of bytes read; a read that crosses into unmapped memory may
// return a short count with a nil error. A read that fails at the first
// byte returns an error.
type MemoryReader interface {
	ReadMem(addr uint64, buf []byte) (int, error)
}

// Read-length caps. A corrupt or hostile tracee can present arbitrary
// pointer/length pairs; decoding never reads more than these bounds.
const (
	maxStringLen   = 4096
	maxBufferLen   = 256 << 10
	maxVectorLen   = 256
	maxSockaddrLen = 128
)

type ValueKind int

const (
	KindInt ValueKind = iota
	KindUint
	KindFd
	KindAddr
	KindString
	KindStrings
	KindBytes
	KindStruct
)

// Value is one decoded argument or out-parameter value.
type Value struct {
	Kind      ValueKind
	Int       int64
	Uint      uint64
	Addr      uint64
	Str       string
	Strs      []string
	Bytes     []byte
	Struct    *StructVal
	Truncated bool
}

type StructVal struct {
	Name   string
	Fields []StructField
}

type StructField struct {
	Name  string
	Value int64
}

func (s *StructVal) Field(name string) (int64, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

type Field struct {
	Name  string
	Value Value
}

// Args is the decoded view of a syscall-enter stop. When no decode rule
// exists for the syscall, Decoded is false and only the raw words are
// populated.
type Args struct {
	Arch    arch.Arch
	NR      uint64
	Name    string
	Decoded bool
	Raw     [arch.MaxArgs]uint64
	Fields  []Field
}

func (a *Args) Field(name string) (Value, bool) {
	for _, f := range a.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Result is the decoded view of a syscall-exit stop: either an error code,
// a success value plus any out-parameters written by the kernel, or the
// NoReturn terminal state for syscalls that do not return to the caller's
// context (the exec family on success, exit and exit_group always).
type Result struct {
	Arch     arch.Arch
	NR       uint64
	Name     string
	NoReturn bool
	Errno    int // positive errno value, 0 on success
	ErrName  string
	Value    int64
	Out      []Field
}

func (r *Result) Failed() bool { return r.Errno != 0 }

func (r *Result) OutField(name string) (Value, bool) {
	for _, f := range r.Out {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// MemoryReadError reports that a pointer argument could not be read from
// tracee memory. The whole-syscall decode is aborted; no partial value is
// produced.
type MemoryReadError struct {
	Syscall string
	Field   string
	Addr    uint64
	Err     error
}

func (e *MemoryReadError) Error() string {
	return fmt.Sprintf("%s: reading %s at 0x%x: %v", e.Syscall, e.Field, e.Addr, e.Err)
}

func (e *MemoryReadError) Unwrap() error { return e.Err }

// MalformedPayloadError reports that tracee memory was readable but its
// content violated the expected shape (bad embedded size, oversized
// vector, short struct).
type MalformedPayloadError struct {
	Syscall string
	Field   string
	Reason  string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("%s: malformed %s: %s", e.Syscall, e.Field, e.Reason)
}

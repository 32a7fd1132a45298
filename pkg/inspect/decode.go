package inspect

import (
	"encoding/binary"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"sctrace/pkg/arch"
	"sctrace/pkg/syscalls"
)

// Error returns from the kernel occupy the top 4095 values of the return
// register.
const maxErrno = 4095

// DecodeEnter decodes a raw record captured at a syscall-enter stop.
// Syscalls without a decode rule produce a generic record with the raw
// words preserved and Decoded unset; that is not an error. A failed
// tracee-memory read aborts the whole decode and surfaces a
// *MemoryReadError naming the field.
func DecodeEnter(raw arch.RawSyscall, mem MemoryReader) (*Args, error) {
	name := syscalls.Name(raw.NR, raw.Arch)
	args := &Args{
		Arch: raw.Arch,
		NR:   raw.NR,
		Name: name,
		Raw:  raw.Args,
	}
	spec, ok := callSpecs[name]
	if !ok {
		return args, nil
	}
	args.Decoded = true
	for i, as := range spec.args {
		v, err := decodeEnterArg(raw, i, as, mem)
		if err != nil {
			return nil, decodeErr(name, as.name, raw.Args[i], err)
		}
		args.Fields = append(args.Fields, Field{Name: as.name, Value: v})
	}
	return args, nil
}

func decodeEnterArg(raw arch.RawSyscall, i int, as argSpec, mem MemoryReader) (Value, error) {
	word := raw.Args[i]
	switch as.kind {
	case argInt:
		return Value{Kind: KindInt, Int: int64(int32(word))}, nil
	case argInt64:
		return Value{Kind: KindInt, Int: int64(word)}, nil
	case argUint, argMode:
		return Value{Kind: KindUint, Uint: word}, nil
	case argFd:
		return Value{Kind: KindFd, Int: int64(int32(word))}, nil
	case argAddr, argOutBuffer, argOutString, argOutStruct, argOutSockaddr, argOutFdPair:
		// Kernel-filled pointees are not readable yet; keep the address
		// for the exit-side read-back.
		return Value{Kind: KindAddr, Addr: word}, nil
	case argPath, argString:
		if word == 0 {
			return Value{Kind: KindAddr, Addr: 0}, nil
		}
		s, trunc, err := readString(mem, word, maxStringLen)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindString, Str: s, Truncated: trunc}, nil
	case argStringVec:
		if word == 0 {
			return Value{Kind: KindAddr, Addr: 0}, nil
		}
		strs, trunc, err := readStringVector(mem, word, maxVectorLen)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindStrings, Strs: strs, Truncated: trunc}, nil
	case argBuffer:
		if word == 0 {
			return Value{Kind: KindAddr, Addr: 0}, nil
		}
		n := int(raw.Args[as.lenArg])
		if n < 0 {
			return Value{}, &MalformedPayloadError{Reason: "negative buffer length"}
		}
		trunc := false
		if n > maxBufferLen {
			n, trunc = maxBufferLen, true
		}
		b, err := readBytes(mem, word, n)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBytes, Bytes: b, Truncated: trunc}, nil
	case argStruct:
		if word == 0 {
			return Value{Kind: KindAddr, Addr: 0}, nil
		}
		return readStructValue(mem, word, as.layout, raw.Arch)
	case argSockaddr:
		if word == 0 {
			return Value{Kind: KindAddr, Addr: 0}, nil
		}
		n := int(raw.Args[as.lenArg])
		if n < 0 {
			return Value{}, &MalformedPayloadError{Reason: "negative sockaddr length"}
		}
		if n > maxSockaddrLen {
			n = maxSockaddrLen
		}
		b, err := readBytes(mem, word, n)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindStruct, Struct: parseSockaddr(b), Bytes: b}, nil
	}
	return Value{Kind: KindUint, Uint: word}, nil
}

func readStructValue(mem MemoryReader, addr uint64, layout string, a arch.Arch) (Value, error) {
	l, ok := layouts[layout]
	if !ok {
		return Value{}, errors.Errorf("no layout %q", layout)
	}
	b, err := readBytes(mem, addr, l.size(a))
	if err != nil {
		return Value{}, err
	}
	fields, err := l.parse(b, a)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindStruct, Struct: &StructVal{Name: layout, Fields: fields}, Bytes: b}, nil
}

// DecodeExit decodes a raw record captured at a syscall-exit stop. The
// enter-side Args for the same stop pair, when available, supply the
// original pointer arguments for out-parameter read-back (on arm64 the
// first argument register is clobbered by the return value at exit).
func DecodeExit(raw arch.RawSyscall, enter *Args, mem MemoryReader) (*Result, error) {
	if !raw.Exit {
		return nil, errors.New("decode exit: record was captured at syscall entry")
	}
	if enter != nil && (enter.NR != raw.NR || enter.Arch != raw.Arch) {
		return nil, errors.Errorf("decode exit: enter record is %s/%d, exit is %s/%d",
			enter.Arch, enter.NR, raw.Arch, raw.NR)
	}

	name := syscalls.Name(raw.NR, raw.Arch)
	res := &Result{Arch: raw.Arch, NR: raw.NR, Name: name}
	spec := callSpecs[name]

	if spec != nil && spec.ret == retNoReturn {
		res.NoReturn = true
		return res, nil
	}

	r := int64(raw.Ret)
	if r < 0 && r >= -maxErrno {
		res.Errno = int(-r)
		res.ErrName = unix.ErrnoName(syscall.Errno(-r))
		return res, nil
	}

	if spec != nil && spec.ret == retExec {
		// A successful exec does not return; the stop observed here is
		// the first stop of the new program image.
		res.NoReturn = true
		return res, nil
	}

	res.Value = r
	if spec == nil {
		return res, nil
	}

	// Out-parameters are only defined on success; use entry-time
	// addresses when the caller kept them.
	addrs := raw.Args
	if enter != nil {
		addrs = enter.Raw
	}
	for i, as := range spec.args {
		v, ok, err := decodeExitArg(addrs, i, as, r, raw.Arch, mem)
		if err != nil {
			return nil, decodeErr(name, as.name, addrs[i], err)
		}
		if ok {
			res.Out = append(res.Out, Field{Name: as.name, Value: v})
		}
	}
	return res, nil
}

func decodeExitArg(addrs [arch.MaxArgs]uint64, i int, as argSpec, ret int64, a arch.Arch, mem MemoryReader) (Value, bool, error) {
	addr := addrs[i]
	switch as.kind {
	case argOutBuffer:
		if addr == 0 {
			return Value{}, false, nil
		}
		n := int(addrs[as.lenArg])
		if n < 0 {
			return Value{}, false, &MalformedPayloadError{Reason: "negative buffer length"}
		}
		trunc := false
		if n > maxBufferLen {
			n, trunc = maxBufferLen, true
		}
		if ret >= 0 && int64(n) > ret {
			n = int(ret)
		}
		b, err := readBytes(mem, addr, n)
		if err != nil {
			return Value{}, false, err
		}
		return Value{Kind: KindBytes, Bytes: b, Truncated: trunc}, true, nil
	case argOutString:
		if addr == 0 {
			return Value{}, false, nil
		}
		s, trunc, err := readString(mem, addr, maxStringLen)
		if err != nil {
			return Value{}, false, err
		}
		return Value{Kind: KindString, Str: s, Truncated: trunc}, true, nil
	case argOutStruct:
		if addr == 0 {
			return Value{}, false, nil
		}
		v, err := readStructValue(mem, addr, as.layout, a)
		if err != nil {
			return Value{}, false, err
		}
		return v, true, nil
	case argOutFdPair:
		if addr == 0 {
			return Value{}, false, nil
		}
		b, err := readBytes(mem, addr, 8)
		if err != nil {
			return Value{}, false, err
		}
		sv := &StructVal{Name: "int[2]", Fields: []StructField{
			{"0", int64(int32(binary.LittleEndian.Uint32(b)))},
			{"1", int64(int32(binary.LittleEndian.Uint32(b[4:])))},
		}}
		return Value{Kind: KindStruct, Struct: sv, Bytes: b}, true, nil
	case argOutSockaddr:
		lenPtr := addrs[as.lenArg]
		if addr == 0 || lenPtr == 0 {
			return Value{}, false, nil
		}
		lb, err := readBytes(mem, lenPtr, 4)
		if err != nil {
			return Value{}, false, err
		}
		n := int(binary.LittleEndian.Uint32(lb))
		if n > maxSockaddrLen {
			n = maxSockaddrLen
		}
		if n == 0 {
			return Value{Kind: KindBytes}, true, nil
		}
		b, err := readBytes(mem, addr, n)
		if err != nil {
			return Value{}, false, err
		}
		return Value{Kind: KindStruct, Struct: parseSockaddr(b), Bytes: b}, true, nil
	default:
		return Value{}, false, nil
	}
}

func decodeErr(syscallName, field string, addr uint64, err error) error {
	var mp *MalformedPayloadError
	if errors.As(err, &mp) {
		if mp.Syscall == "" {
			mp.Syscall, mp.Field = syscallName, field
		}
		return err
	}
	return &MemoryReadError{Syscall: syscallName, Field: field, Addr: addr, Err: err}
}

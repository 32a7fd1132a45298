package tracer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sctrace/pkg/arch"
	"sctrace/pkg/inspect"
)

func printOne(args *inspect.Args, res *inspect.Result, showPids bool) string {
	var buf strings.Builder
	p := NewPrinter(&buf)
	p.ShowPids = showPids
	p.SyscallExit(1234, args, res)
	return buf.String()
}

func TestPrinterSuccessLine(t *testing.T) {
	args := &inspect.Args{
		Arch:    arch.AMD64,
		NR:      257,
		Name:    "openat",
		Decoded: true,
		Fields: []inspect.Field{
			{Name: "dirfd", Value: inspect.Value{Kind: inspect.KindFd, Int: -100}},
			{Name: "pathname", Value: inspect.Value{Kind: inspect.KindString, Str: "/etc/hosts"}},
			{Name: "flags", Value: inspect.Value{Kind: inspect.KindInt, Int: 0}},
		},
	}
	res := &inspect.Result{Arch: arch.AMD64, NR: 257, Name: "openat", Value: 3}

	got := printOne(args, res, true)
	assert.Equal(t, `[1234] openat(dirfd=-100, pathname="/etc/hosts", flags=0) = 3`+"\n", got)
}

func TestPrinterErrnoLine(t *testing.T) {
	args := &inspect.Args{
		Name:    "close",
		Decoded: true,
		Fields: []inspect.Field{
			{Name: "fd", Value: inspect.Value{Kind: inspect.KindFd, Int: 99}},
		},
	}
	res := &inspect.Result{Name: "close", Errno: 9, ErrName: "EBADF"}

	got := printOne(args, res, false)
	assert.Equal(t, "close(fd=99) = -1 EBADF (errno 9)\n", got)
}

func TestPrinterNoReturn(t *testing.T) {
	args := &inspect.Args{
		Name:    "exit_group",
		Decoded: true,
		Fields: []inspect.Field{
			{Name: "status", Value: inspect.Value{Kind: inspect.KindInt, Int: 0}},
		},
	}
	res := &inspect.Result{Name: "exit_group", NoReturn: true}

	got := printOne(args, res, false)
	assert.Equal(t, "exit_group(status=0) = ?\n", got)
}

func TestPrinterUndecodedArgs(t *testing.T) {
	args := &inspect.Args{
		Name: "sys_9999",
		Raw:  [arch.MaxArgs]uint64{1, 2, 3, 4, 5, 6},
	}
	res := &inspect.Result{Name: "sys_9999", Value: 0}

	got := printOne(args, res, false)
	assert.Equal(t, "sys_9999(0x1, 0x2, 0x3, 0x4, 0x5, 0x6) = 0\n", got)
}

func TestPrinterMissingEnter(t *testing.T) {
	res := &inspect.Result{Name: "read", Value: 12}
	got := printOne(nil, res, false)
	assert.Equal(t, "read(?) = 12\n", got)
}

func TestPrinterOutParams(t *testing.T) {
	args := &inspect.Args{
		Name:    "read",
		Decoded: true,
		Fields: []inspect.Field{
			{Name: "fd", Value: inspect.Value{Kind: inspect.KindFd, Int: 3}},
			{Name: "buf", Value: inspect.Value{Kind: inspect.KindAddr, Addr: 0x1000}},
			{Name: "count", Value: inspect.Value{Kind: inspect.KindUint, Uint: 16}},
		},
	}
	res := &inspect.Result{
		Name:  "read",
		Value: 5,
		Out: []inspect.Field{
			{Name: "buf", Value: inspect.Value{Kind: inspect.KindBytes, Bytes: []byte("hello")}},
		},
	}

	got := printOne(args, res, false)
	assert.Equal(t, `read(fd=3, buf=0x1000, count=0x10) = 5 buf="hello"`+"\n", got)
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		v    inspect.Value
		want string
	}{
		{inspect.Value{Kind: inspect.KindInt, Int: -2}, "-2"},
		{inspect.Value{Kind: inspect.KindFd, Int: 7}, "7"},
		{inspect.Value{Kind: inspect.KindUint, Uint: 0o644}, "0x1a4"},
		{inspect.Value{Kind: inspect.KindAddr, Addr: 0}, "NULL"},
		{inspect.Value{Kind: inspect.KindAddr, Addr: 0xdead}, "0xdead"},
		{inspect.Value{Kind: inspect.KindString, Str: "hi"}, `"hi"`},
		{inspect.Value{Kind: inspect.KindString, Str: "hi", Truncated: true}, `"hi"...`},
		{inspect.Value{Kind: inspect.KindStrings, Strs: []string{"ls", "-l"}}, `["ls", "-l"]`},
		{inspect.Value{Kind: inspect.KindBytes, Bytes: []byte("ab")}, `"ab"`},
		{
			inspect.Value{Kind: inspect.KindStruct, Struct: &inspect.StructVal{
				Name:   "rlimit",
				Fields: []inspect.StructField{{Name: "rlim_cur", Value: 1024}, {Name: "rlim_max", Value: 4096}},
			}},
			"{rlim_cur=1024, rlim_max=4096}",
		},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatValue(tc.v))
	}
}

func TestFormatValueLongBytes(t *testing.T) {
	long := make([]byte, maxPrintBytes+8)
	for i := range long {
		long[i] = 'x'
	}
	got := formatValue(inspect.Value{Kind: inspect.KindBytes, Bytes: long})
	assert.True(t, strings.HasSuffix(got, `"...`), got)
}

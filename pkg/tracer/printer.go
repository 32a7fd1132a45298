package tracer

import (
	"fmt"
	"io"
	"strings"

	"sctrace/pkg/inspect"
)

// Printer formats completed syscalls one per line, strace style:
//
//	[1234] openat(dirfd=-100, pathname="/etc/hosts", flags=0, mode=0) = 3
//
// It prints on exit stops so the argument and result views land on one
// line. Syscalls that never return print with a "?" result.
type Printer struct {
	w        io.Writer
	ShowPids bool
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, ShowPids: true}
}

func (p *Printer) SyscallEnter(pid int, args *inspect.Args) {}

func (p *Printer) SyscallExit(pid int, args *inspect.Args, res *inspect.Result) {
	var b strings.Builder
	if p.ShowPids {
		fmt.Fprintf(&b, "[%d] ", pid)
	}
	b.WriteString(res.Name)
	b.WriteByte('(')
	p.writeArgs(&b, args)
	b.WriteString(") = ")
	p.writeResult(&b, res)
	b.WriteByte('\n')
	io.WriteString(p.w, b.String())
}

func (p *Printer) writeArgs(b *strings.Builder, args *inspect.Args) {
	if args == nil {
		b.WriteByte('?')
		return
	}
	if !args.Decoded {
		for i, raw := range args.Raw {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%#x", raw)
		}
		return
	}
	for i, f := range args.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s=%s", f.Name, formatValue(f.Value))
	}
}

func (p *Printer) writeResult(b *strings.Builder, res *inspect.Result) {
	switch {
	case res.NoReturn:
		b.WriteString("?")
	case res.Failed():
		fmt.Fprintf(b, "-1 %s (errno %d)", res.ErrName, res.Errno)
	default:
		fmt.Fprintf(b, "%d", res.Value)
		for _, f := range res.Out {
			fmt.Fprintf(b, " %s=%s", f.Name, formatValue(f.Value))
		}
	}
}

const maxPrintBytes = 32

func formatValue(v inspect.Value) string {
	switch v.Kind {
	case inspect.KindInt, inspect.KindFd:
		return fmt.Sprintf("%d", v.Int)
	case inspect.KindUint:
		return fmt.Sprintf("%#x", v.Uint)
	case inspect.KindAddr:
		if v.Addr == 0 {
			return "NULL"
		}
		return fmt.Sprintf("0x%x", v.Addr)
	case inspect.KindString:
		if v.Truncated {
			return fmt.Sprintf("%q...", v.Str)
		}
		return fmt.Sprintf("%q", v.Str)
	case inspect.KindStrings:
		quoted := make([]string, len(v.Strs))
		for i, s := range v.Strs {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		out := "[" + strings.Join(quoted, ", ") + "]"
		if v.Truncated {
			out += "..."
		}
		return out
	case inspect.KindBytes:
		data := v.Bytes
		ellipsis := v.Truncated
		if len(data) > maxPrintBytes {
			data = data[:maxPrintBytes]
			ellipsis = true
		}
		out := fmt.Sprintf("%q", data)
		if ellipsis {
			out += "..."
		}
		return out
	case inspect.KindStruct:
		if v.Struct == nil {
			return "{}"
		}
		parts := make([]string, len(v.Struct.Fields))
		for i, f := range v.Struct.Fields {
			parts[i] = fmt.Sprintf("%s=%d", f.Name, f.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "?"
	}
}

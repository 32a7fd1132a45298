// Package filter compiles syscall interest sets into seccomp-BPF programs.
// The compiler only builds and validates programs; installing them (and
// deciding when, relative to fork) belongs to the caller.
package filter

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sys/unix"

	"sctrace/pkg/arch"
	"sctrace/pkg/syscalls"
)

// Interest is the set of syscalls a filter should match: whole groups,
// explicit numbers, or both.
type Interest struct {
	Groups   syscalls.GroupSet
	Syscalls []uint64
}

func (i Interest) Empty() bool {
	return i.Groups.Empty() && len(i.Syscalls) == 0
}

// ErrEmptyInterest reports an interest set that expands to no syscalls; a
// filter compiled from it would be a silent no-op, which is a
// configuration error.
var ErrEmptyInterest = errors.New("filter: empty interest set")

// BudgetError reports a program that exceeds the kernel's instruction
// limit even with tree encoding.
type BudgetError struct {
	Instructions int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("filter: %d instructions exceeds the %d instruction budget",
		e.Instructions, unix.BPF_MAXINSNS)
}

// NumberRangeError reports a syscall number that does not fit the 32-bit
// comparison operand of a BPF instruction.
type NumberRangeError struct {
	NR uint64
}

func (e *NumberRangeError) Error() string {
	return fmt.Sprintf("filter: syscall number %d does not fit in 32 bits", e.NR)
}

// Sets up to this size compile as a plain comparison chain; larger sets
// use a binary-search tree so the instruction count stays logarithmic in
// depth and conditional jumps stay within their 8-bit reach.
const linearMax = 64

// Leaf size of the comparison tree.
const treeLeaf = 8

// Program is a compiled, immutable seccomp-BPF filter.
type Program struct {
	arch      arch.Arch
	onMatch   Action
	onDefault Action
	instrs    []unix.SockFilter
	matched   []uint64
}

func (p *Program) Arch() arch.Arch              { return p.arch }
func (p *Program) Actions() (match, def Action) { return p.onMatch, p.onDefault }
func (p *Program) Len() int                     { return len(p.instrs) }

// Matched returns the sorted syscall numbers the program maps to the
// match action.
func (p *Program) Matched() []uint64 {
	out := make([]uint64, len(p.matched))
	copy(out, p.matched)
	return out
}

func (p *Program) Instructions() []unix.SockFilter {
	out := make([]unix.SockFilter, len(p.instrs))
	copy(out, p.instrs)
	return out
}

// SockFprog returns the program in the form prctl/seccomp(2) expect. The
// returned struct points into a fresh copy of the instructions.
func (p *Program) SockFprog() *unix.SockFprog {
	instrs := p.Instructions()
	return &unix.SockFprog{
		Len:    uint16(len(instrs)),
		Filter: &instrs[0],
	}
}

// Compile expands the interest set into a sorted syscall-number set and
// emits a program that yields onMatch for members and onDefault for
// everything else. The program checks the audit architecture first;
// seccomp_data from a different architecture lands on onDefault rather
// than being compared against the wrong numbering space.
func Compile(a arch.Arch, interest Interest, onMatch, onDefault Action) (*Program, error) {
	if interest.Empty() {
		return nil, ErrEmptyInterest
	}
	audit, err := arch.AuditArch(a)
	if err != nil {
		return nil, err
	}

	nums := expand(interest, a)
	if len(nums) == 0 {
		return nil, ErrEmptyInterest
	}
	// nums is sorted, so only the last entry can overflow the K operand.
	if last := nums[len(nums)-1]; last > math.MaxUint32 {
		return nil, &NumberRangeError{NR: last}
	}

	instrs := []unix.SockFilter{
		bpfLoad(offArch),
		bpfJeq(audit, 1, 0),
		bpfRet(onDefault),
		bpfLoad(offNR),
	}
	if len(nums) <= linearMax {
		instrs = append(instrs, emitChain(nums, onMatch, onDefault)...)
	} else {
		instrs = append(instrs, emitTree(nums, onMatch, onDefault)...)
	}

	if len(instrs) > unix.BPF_MAXINSNS {
		return nil, &BudgetError{Instructions: len(instrs)}
	}
	return &Program{
		arch:      a,
		onMatch:   onMatch,
		onDefault: onDefault,
		instrs:    instrs,
		matched:   nums,
	}, nil
}

func expand(interest Interest, a arch.Arch) []uint64 {
	seen := make(map[uint64]bool)
	if !interest.Groups.Empty() {
		for _, nr := range syscalls.In(interest.Groups, a) {
			seen[nr] = true
		}
	}
	for _, nr := range interest.Syscalls {
		seen[nr] = true
	}
	nums := make([]uint64, 0, len(seen))
	for nr := range seen {
		nums = append(nums, nr)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	return nums
}

// emitChain emits one jeq+ret pair per number and a trailing default
// return. Every conditional jump spans at most one instruction, so the
// chain never outranges the 8-bit jump fields regardless of length.
func emitChain(nums []uint64, onMatch, onDefault Action) []unix.SockFilter {
	out := make([]unix.SockFilter, 0, 2*len(nums)+1)
	for _, nr := range nums {
		out = append(out, bpfJeq(uint32(nr), 0, 1), bpfRet(onMatch))
	}
	return append(out, bpfRet(onDefault))
}

// emitTree emits a binary search over the sorted numbers. Each internal
// node routes numbers greater than the pivot over the left subtree; both
// subtrees terminate every path themselves. When a left subtree is too
// big for the conditional's 8-bit offset the hop goes through an
// unconditional jump instead.
func emitTree(nums []uint64, onMatch, onDefault Action) []unix.SockFilter {
	if len(nums) <= treeLeaf {
		return emitChain(nums, onMatch, onDefault)
	}
	mid := len(nums) / 2
	pivot := uint32(nums[mid-1])
	left := emitTree(nums[:mid], onMatch, onDefault)
	right := emitTree(nums[mid:], onMatch, onDefault)

	out := make([]unix.SockFilter, 0, len(left)+len(right)+2)
	if len(left) <= 255 {
		out = append(out, bpfJgt(pivot, uint8(len(left)), 0))
	} else {
		out = append(out, bpfJgt(pivot, 0, 1), bpfJump(uint32(len(left))))
	}
	out = append(out, left...)
	return append(out, right...)
}

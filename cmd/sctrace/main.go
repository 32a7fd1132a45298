package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sctrace/pkg/arch"
	"sctrace/pkg/filter"
	"sctrace/pkg/profile"
	"sctrace/pkg/syscalls"
	"sctrace/pkg/tracer"
)

var (
	traceGroups   []string
	traceSyscalls []string
	profilePath   string
	hidePids      bool

	compileArch   string
	matchAction   string
	defaultAction string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sctrace [flags] -- command [args...]",
		Short: "Trace syscalls of a command and its children",
		Long: `sctrace runs a command under ptrace and prints every syscall it and its
descendants make, with arguments decoded from tracee memory.

Example:
  sctrace --group file --group network -- curl https://example.org`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTrace,
	}

	rootCmd.Flags().StringArrayVar(&traceGroups, "group", nil, "Trace class to report (file, network, process, ...); repeatable")
	rootCmd.Flags().StringArrayVar(&traceSyscalls, "syscall", nil, "Syscall name or number to report; repeatable")
	rootCmd.Flags().StringVar(&profilePath, "profile", "", "YAML trace profile")
	rootCmd.Flags().BoolVar(&hidePids, "no-pids", false, "Omit pid prefixes from output")

	compileCmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a seccomp-bpf program and print its instructions",
		Args:  cobra.NoArgs,
		RunE:  runCompile,
	}
	compileCmd.Flags().StringArrayVar(&traceGroups, "group", nil, "Trace class to match; repeatable")
	compileCmd.Flags().StringArrayVar(&traceSyscalls, "syscall", nil, "Syscall name or number to match; repeatable")
	compileCmd.Flags().StringVar(&profilePath, "profile", "", "YAML trace profile")
	compileCmd.Flags().StringVar(&compileArch, "arch", string(arch.Native()), "Target architecture (amd64 or arm64)")
	compileCmd.Flags().StringVar(&matchAction, "match-action", "", "Action for matched syscalls (allow, log, trace, trap, kill, errno:N)")
	compileCmd.Flags().StringVar(&defaultAction, "default-action", "", "Action for everything else")
	rootCmd.AddCommand(compileCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadProfile merges the --profile file with the --group/--syscall flags.
func loadProfile() (*profile.Profile, error) {
	p := &profile.Profile{}
	if profilePath != "" {
		loaded, err := profile.Load(profilePath)
		if err != nil {
			return nil, err
		}
		p = loaded
	}
	p.Groups = append(p.Groups, traceGroups...)
	p.Syscalls = append(p.Syscalls, traceSyscalls...)
	if matchAction != "" {
		p.MatchAction = matchAction
	}
	if defaultAction != "" {
		p.DefaultAction = defaultAction
	}
	for _, g := range p.Groups {
		if _, ok := syscalls.ParseGroup(g); !ok {
			return nil, fmt.Errorf("unknown group: %s", g)
		}
	}
	return p, nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	native := arch.Native()
	var match map[uint64]bool
	if len(p.Groups) > 0 || len(p.Syscalls) > 0 {
		interest, err := p.Interest(native)
		if err != nil {
			return err
		}
		match = make(map[uint64]bool)
		for _, nr := range syscalls.In(interest.Groups, native) {
			match[nr] = true
		}
		for _, nr := range interest.Syscalls {
			match[nr] = true
		}
	}

	printer := tracer.NewPrinter(os.Stdout)
	printer.ShowPids = !hidePids

	t := tracer.New(tracer.Config{
		Handler: printer,
		Match:   match,
	})
	return t.Run(args)
}

func runCompile(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	target := arch.Arch(compileArch)
	if !arch.Supported(target) {
		return fmt.Errorf("unsupported architecture: %s", compileArch)
	}

	interest, err := p.Interest(target)
	if err != nil {
		return err
	}
	onMatch, onDefault, err := p.Actions()
	if err != nil {
		return err
	}

	prog, err := filter.Compile(target, interest, onMatch, onDefault)
	if err != nil {
		return err
	}

	fmt.Printf("; arch=%s match=%s default=%s syscalls=%d instructions=%d\n",
		target, onMatch, onDefault, len(prog.Matched()), prog.Len())
	for i, ins := range prog.Instructions() {
		fmt.Printf("%4d: { code=0x%04x jt=%d jf=%d k=0x%08x }\n",
			i, ins.Code, ins.Jt, ins.Jf, ins.K)
	}
	return nil
}

// Package profile loads YAML trace profiles: a named interest set (trace
// classes plus explicit syscalls) and the pair of filter actions to
// compile it with.
package profile

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"sctrace/pkg/arch"
	"sctrace/pkg/filter"
	"sctrace/pkg/syscalls"
)

type Profile struct {
	Name          string   `yaml:"name"`
	Groups        []string `yaml:"groups"`
	Syscalls      []string `yaml:"syscalls"`
	MatchAction   string   `yaml:"match_action"`
	DefaultAction string   `yaml:"default_action"`
}

func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading profile")
	}
	return Parse(data)
}

func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "parsing profile")
	}
	for _, g := range p.Groups {
		if _, ok := syscalls.ParseGroup(g); !ok {
			return nil, errors.Errorf("profile: unknown group %q", g)
		}
	}
	if p.MatchAction != "" {
		if _, err := ParseAction(p.MatchAction); err != nil {
			return nil, err
		}
	}
	if p.DefaultAction != "" {
		if _, err := ParseAction(p.DefaultAction); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// Interest resolves the profile's groups and syscall names against the
// target architecture's tables. Syscall entries may be names or plain
// numbers; unknown names are errors, not silent drops.
func (p *Profile) Interest(a arch.Arch) (filter.Interest, error) {
	var interest filter.Interest
	for _, g := range p.Groups {
		grp, _ := syscalls.ParseGroup(g)
		interest.Groups = interest.Groups.Union(syscalls.NewGroupSet(grp))
	}
	for _, s := range p.Syscalls {
		s = strings.TrimSpace(s)
		if nr, err := strconv.ParseUint(s, 10, 64); err == nil {
			interest.Syscalls = append(interest.Syscalls, nr)
			continue
		}
		nr, ok := syscalls.Lookup(s, a)
		if !ok {
			return filter.Interest{}, errors.Errorf("profile: unknown syscall %q on %s", s, a)
		}
		interest.Syscalls = append(interest.Syscalls, nr)
	}
	return interest, nil
}

// Actions returns the profile's actions, defaulting to trace-on-match and
// allow-by-default, the usual tracer configuration.
func (p *Profile) Actions() (match, def filter.Action, err error) {
	match, def = filter.ActionTrace, filter.ActionAllow
	if p.MatchAction != "" {
		if match, err = ParseAction(p.MatchAction); err != nil {
			return 0, 0, err
		}
	}
	if p.DefaultAction != "" {
		if def, err = ParseAction(p.DefaultAction); err != nil {
			return 0, 0, err
		}
	}
	return match, def, nil
}

// ParseAction resolves an action name; "errno:N" fails matched syscalls
// with the given errno.
func ParseAction(name string) (filter.Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if rest, ok := strings.CutPrefix(name, "errno:"); ok {
		n, err := strconv.ParseUint(rest, 10, 16)
		if err != nil {
			return 0, errors.Errorf("profile: bad errno action %q", name)
		}
		return filter.ActionErrno(uint16(n)), nil
	}
	switch name {
	case "allow":
		return filter.ActionAllow, nil
	case "log":
		return filter.ActionLog, nil
	case "trace":
		return filter.ActionTrace, nil
	case "trap":
		return filter.ActionTrap, nil
	case "kill", "kill_process":
		return filter.ActionKillProcess, nil
	case "kill_thread":
		return filter.ActionKillThread, nil
	default:
		return 0, errors.Errorf("profile: unknown action %q", name)
	}
}

// Package probe holds the canonical runtime probes used by the snapshot builder.
package probe

import (
	"runtime/debug"
	"strings"
)

// Packages answers installation checks against a fixed set of package names.
// Names match case-insensitively with '-', '_' and '.' treated as equal, so
// "python-dateutil" and "python_dateutil" are the same package.
type Packages struct {
	installed map[string]struct{}
}

// NewPackages builds a probe over the given installed names.
func NewPackages(names ...string) *Packages {
	p := &Packages{installed: make(map[string]struct{}, len(names))}
	p.Add(names...)
	return p
}

// Add records more installed names. Not safe for use after the probe is shared.
func (p *Packages) Add(names ...string) {
	for _, n := range names {
		if c := Canonical(n); c != "" {
			p.installed[c] = struct{}{}
		}
	}
}

func (p *Packages) Installed(name string) bool {
	_, ok := p.installed[Canonical(name)]
	return ok
}

// Len returns the number of distinct installed names.
func (p *Packages) Len() int {
	return len(p.installed)
}

// Canonical folds a package name to its comparison form.
func Canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '.':
			return '_'
		}
		return r
	}, name)
}

// BuildModules lists the module paths linked into the running binary, plus
// their last path element, so Go dependencies can be declared either way.
func BuildModules() []string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	names := make([]string, 0, 2*len(info.Deps)+2)
	add := func(path string) {
		names = append(names, path)
		if i := strings.LastIndex(path, "/"); i >= 0 && i < len(path)-1 {
			names = append(names, path[i+1:])
		}
	}
	add(info.Main.Path)
	for _, dep := range info.Deps {
		add(dep.Path)
	}
	return names
}

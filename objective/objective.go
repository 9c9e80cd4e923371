// Package objective evaluates mission checks against a filesystem's read-only
// view. A check is a short expression such as
//
//	cwd==/home/student
//	dir_exists:/home/student/labs
//	file_exists:/tmp/out.txt
//	file_absent:/tmp/old.txt
//	file_contains:/tmp/out.txt:hello
package objective

import (
	"fmt"
	"strings"

	"github.com/brettbedarf/shellsim"
	"github.com/brettbedarf/shellsim/filesystem"
)

type CheckKind string

const (
	CwdEquals    CheckKind = "cwd=="
	DirExists    CheckKind = "dir_exists:"
	FileExists   CheckKind = "file_exists:"
	FileAbsent   CheckKind = "file_absent:"
	FileContains CheckKind = "file_contains:"
)

var kinds = []CheckKind{CwdEquals, DirExists, FileExists, FileAbsent, FileContains}

// Check is one parsed objective expression
type Check struct {
	Kind   CheckKind
	Path   string // canonical absolute path
	Substr string // FileContains only
}

// Parse parses a single check expression. Paths must be absolute.
func Parse(expr string) (Check, error) {
	expr = strings.TrimSpace(expr)
	for _, k := range kinds {
		rest, ok := strings.CutPrefix(expr, string(k))
		if !ok {
			continue
		}
		c := Check{Kind: k}
		p := rest
		if k == FileContains {
			var found bool
			p, c.Substr, found = strings.Cut(rest, ":")
			if !found {
				return Check{}, fmt.Errorf("objective %q: missing substring", expr)
			}
		}
		if !strings.HasPrefix(p, filesystem.Root) {
			return Check{}, fmt.Errorf("objective %q: path must be absolute", expr)
		}
		c.Path = filesystem.Normalize(filesystem.Root, p)
		return c, nil
	}
	return Check{}, fmt.Errorf("objective %q: unknown check", expr)
}

// ParseAll parses every expression, stopping at the first bad one
func ParseAll(exprs []string) ([]Check, error) {
	checks := make([]Check, 0, len(exprs))
	for _, e := range exprs {
		c, err := Parse(e)
		if err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, nil
}

// Holds reports whether the check is true for the current state of fs
func (c Check) Holds(fs shellsim.Inspector) bool {
	switch c.Kind {
	case CwdEquals:
		return fs.CurrentDirectory() == c.Path
	case DirExists:
		return fs.DirectoryExists(c.Path)
	case FileExists:
		return fs.FileExists(c.Path)
	case FileAbsent:
		return !fs.FileExists(c.Path)
	case FileContains:
		return fs.FileContentContains(c.Path, c.Substr)
	default:
		return false
	}
}

func (c Check) String() string {
	if c.Kind == FileContains {
		return string(c.Kind) + c.Path + ":" + c.Substr
	}
	return string(c.Kind) + c.Path
}

// Satisfied reports whether every check holds. An empty list is never satisfied
// so a session without objectives does not end on its own.
func Satisfied(fs shellsim.Inspector, checks []Check) bool {
	if len(checks) == 0 {
		return false
	}
	for _, c := range checks {
		if !c.Holds(fs) {
			return false
		}
	}
	return true
}

// Pending returns the checks that do not yet hold
func Pending(fs shellsim.Inspector, checks []Check) []Check {
	var out []Check
	for _, c := range checks {
		if !c.Holds(fs) {
			out = append(out, c)
		}
	}
	return out
}

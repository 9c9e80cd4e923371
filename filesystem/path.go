package filesystem

import "strings"

// Root is the canonical root path
const Root = "/"

// Normalize resolves input against cwd into a canonical absolute path.
//
// Absolute inputs ignore cwd. Empty and "." segments are dropped and ".." pops one
// segment; ".." at the root is discarded so the result never climbs above "/".
// The tree is never consulted; existence is the caller's concern.
func Normalize(cwd, input string) string {
	if !strings.HasPrefix(input, "/") {
		input = cwd + "/" + input
	}

	segs := make([]string, 0, strings.Count(input, "/"))
	for _, seg := range strings.Split(input, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, seg)
		}
	}
	if len(segs) == 0 {
		return Root
	}
	return "/" + strings.Join(segs, "/")
}

// Parent returns the parent of a canonical path; the parent of "/" is "/"
func Parent(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i <= 0 {
		return Root
	}
	return p[:i]
}

// Base returns the last segment of a canonical path, or "" for "/"
func Base(p string) string {
	return p[strings.LastIndexByte(p, '/')+1:]
}

// Join appends a single child name to a canonical directory path
func Join(dir, name string) string {
	if dir == Root {
		return Root + name
	}
	return dir + "/" + name
}

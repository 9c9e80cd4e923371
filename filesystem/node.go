package filesystem

import (
	"slices"
	"strings"
)

// Dir records the names of a directory's immediate children.
// Child names never contain "/".
type Dir struct {
	children map[string]struct{}
}

func newDir() *Dir {
	return &Dir{children: make(map[string]struct{})}
}

func (d *Dir) addChild(name string) {
	d.children[name] = struct{}{}
}

func (d *Dir) removeChild(name string) {
	delete(d.children, name)
}

// Names returns the child names in sorted order
func (d *Dir) Names() []string {
	names := make([]string, 0, len(d.children))
	for name := range d.children {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// File owns a single mutable text buffer
type File struct {
	content strings.Builder
}

func newFile(content string) *File {
	f := &File{}
	f.content.WriteString(content)
	return f
}

func (f *File) Content() string {
	return f.content.String()
}

func (f *File) set(content string) {
	f.content.Reset()
	f.content.WriteString(content)
}

func (f *File) append(content string) {
	f.content.WriteString(content)
}

// Package shellsim contains core domain types and interfaces for the simulated
// shell environment: an in-memory filesystem driven by a small command interpreter.
package shellsim

// FileSystem defines the primitive operations the command interpreter dispatches to.
// Every path argument is a raw, possibly relative string that implementations
// resolve against their current working directory before use.
//
// All returned errors are expected to be *Error values so callers can inspect
// the failure with [KindOf].
type FileSystem interface {
	// Pwd returns the current working directory
	Pwd() string

	// ListDirectory returns the sorted child names of a directory; "" means cwd
	ListDirectory(path string) ([]string, error)

	ChangeDirectory(path string) error
	MakeDirectory(path string) error

	// MakeDirectoryAll creates the directory and any missing ancestors (mkdir -p)
	MakeDirectoryAll(path string) error

	CreateOrTouchFile(path string) error
	ReadFile(path string) (string, error)
	DeleteFile(path string) error
	CopyFile(src, dst string) error
	MoveFile(src, dst string) error

	// WriteFile sets or, when append is true, appends content
	WriteFile(path, content string, append bool) error
}

// Inspector is the read-only view used by graders to assert on filesystem state
// without re-parsing shell output
type Inspector interface {
	CurrentDirectory() string
	FileExists(path string) bool
	FileContentContains(path, substr string) bool
	DirectoryExists(path string) bool
}

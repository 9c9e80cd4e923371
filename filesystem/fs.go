package filesystem

import (
	"strings"
	"sync"

	"github.com/brettbedarf/shellsim"
	"github.com/brettbedarf/shellsim/internal/util"
)

// FileSystem is an in-memory tree keyed by canonical path plus the session's
// current working directory.
//
// Directories and files live in separate maps so a path can never be both. mu
// guards both maps and cwd; every exported operation takes it exactly once so it
// is atomic with respect to other callers.
type FileSystem struct {
	mu    sync.RWMutex
	dirs  map[string]*Dir
	files map[string]*File
	cwd   string
}

var (
	_ shellsim.FileSystem = (*FileSystem)(nil)
	_ shellsim.Inspector  = (*FileSystem)(nil)
)

// NewFS creates a filesystem holding only the root directory with cwd at "/"
func NewFS() *FileSystem {
	return &FileSystem{
		dirs:  map[string]*Dir{Root: newDir()},
		files: make(map[string]*File),
		cwd:   Root,
	}
}

// resolve must be called with mu held (read or write)
func (fs *FileSystem) resolve(path string) string {
	return Normalize(fs.cwd, path)
}

func (fs *FileSystem) isDir(p string) bool {
	_, ok := fs.dirs[p]
	return ok
}

func (fs *FileSystem) isFile(p string) bool {
	_, ok := fs.files[p]
	return ok
}

// Pwd returns the current working directory
func (fs *FileSystem) Pwd() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.cwd
}

// ListDirectory returns the sorted names directly beneath path (cwd when empty)
func (fs *FileSystem) ListDirectory(path string) ([]string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	p := fs.cwd
	if path != "" {
		p = fs.resolve(path)
	}
	dir, ok := fs.dirs[p]
	if !ok {
		return nil, shellsim.NewError(shellsim.NoSuchDirectory, "ls", path)
	}
	return dir.Names(), nil
}

// ChangeDirectory moves cwd to path if it is a directory
func (fs *FileSystem) ChangeDirectory(path string) error {
	logger := util.GetLogger("FS.ChangeDirectory")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	p := fs.resolve(path)
	if !fs.isDir(p) {
		return shellsim.NewError(shellsim.NoSuchDirectory, "cd", path)
	}
	logger.Trace().Str("from", fs.cwd).Str("to", p).Msg("Changed directory")
	fs.cwd = p
	return nil
}

// MakeDirectory creates a single directory whose parent must already exist
func (fs *FileSystem) MakeDirectory(path string) error {
	logger := util.GetLogger("FS.MakeDirectory")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	p := fs.resolve(path)
	if fs.isDir(p) || fs.isFile(p) {
		return shellsim.NewError(shellsim.AlreadyExists, "mkdir", path)
	}
	if !fs.isDir(Parent(p)) {
		return shellsim.NewError(shellsim.NoSuchDirectory, "mkdir", path)
	}
	fs.addDirLocked(p)
	logger.Debug().Str("path", p).Msg("Created directory")
	return nil
}

// MakeDirectoryAll creates path and any missing ancestors.
// It is equivalent to `mkdir -p`: existing directories along the way, including
// the leaf, are not an error. A file anywhere on the path is.
func (fs *FileSystem) MakeDirectoryAll(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	p := fs.resolve(path)
	if _, err := fs.mkdirAllLocked(p); err != nil {
		err.Op, err.Path = "mkdir", path
		return err
	}
	return nil
}

// mkdirAllLocked validates the whole path before creating anything so a
// conflicting file leaves the tree untouched. Returns the number of directories made.
func (fs *FileSystem) mkdirAllLocked(p string) (int, *shellsim.Error) {
	logger := util.GetLogger("FS.mkdirAll")

	var missing []string
	for cur := p; cur != Root; cur = Parent(cur) {
		if fs.isFile(cur) {
			return 0, shellsim.NewError(shellsim.AlreadyExists, "", cur)
		}
		if !fs.isDir(cur) {
			missing = append(missing, cur)
		}
	}
	// missing is leaf-first; create root-first
	for i := len(missing) - 1; i >= 0; i-- {
		fs.addDirLocked(missing[i])
	}
	if len(missing) > 0 {
		logger.Debug().Str("path", p).Int("created", len(missing)).Msg("Created directories")
	}
	return len(missing), nil
}

// addDirLocked registers an empty directory under an existing parent
func (fs *FileSystem) addDirLocked(p string) {
	fs.dirs[p] = newDir()
	fs.dirs[Parent(p)].addChild(Base(p))
}

// CreateOrTouchFile creates an empty file; touching an existing node is a no-op
func (fs *FileSystem) CreateOrTouchFile(path string) error {
	logger := util.GetLogger("FS.CreateOrTouchFile")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	p := fs.resolve(path)
	if fs.isFile(p) || fs.isDir(p) {
		logger.Trace().Str("path", p).Msg("Touched existing node")
		return nil
	}
	if !fs.isDir(Parent(p)) {
		return shellsim.NewError(shellsim.NoSuchDirectory, "touch", path)
	}
	fs.putFileLocked(p, "")
	logger.Debug().Str("path", p).Msg("Created file")
	return nil
}

// putFileLocked sets the content of p, creating and registering the file if needed.
// The parent must exist and p must not be a directory.
func (fs *FileSystem) putFileLocked(p, content string) {
	if f, ok := fs.files[p]; ok {
		f.set(content)
		return
	}
	fs.files[p] = newFile(content)
	fs.dirs[Parent(p)].addChild(Base(p))
}

// ReadFile returns the content of an existing file verbatim
func (fs *FileSystem) ReadFile(path string) (string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	f, ok := fs.files[fs.resolve(path)]
	if !ok {
		return "", shellsim.NewError(shellsim.NoSuchFile, "cat", path)
	}
	return f.Content(), nil
}

// DeleteFile removes a file. Directories are never removed.
func (fs *FileSystem) DeleteFile(path string) error {
	logger := util.GetLogger("FS.DeleteFile")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	p := fs.resolve(path)
	if fs.isDir(p) {
		return shellsim.NewError(shellsim.IsADirectory, "rm", path)
	}
	if !fs.isFile(p) {
		return shellsim.NewError(shellsim.NoSuchFile, "rm", path)
	}
	fs.removeFileLocked(p)
	logger.Debug().Str("path", p).Msg("Removed file")
	return nil
}

func (fs *FileSystem) removeFileLocked(p string) {
	delete(fs.files, p)
	fs.dirs[Parent(p)].removeChild(Base(p))
}

// CopyFile writes src's content to dst, leaving src untouched
func (fs *FileSystem) CopyFile(src, dst string) error {
	logger := util.GetLogger("FS.CopyFile")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	s, d, err := fs.transferTargetsLocked("cp", src, dst)
	if err != nil {
		return err
	}
	fs.putFileLocked(d, fs.files[s].Content())
	logger.Debug().Str("src", s).Str("dst", d).Msg("Copied file")
	return nil
}

// MoveFile renames src to dst. Nothing changes unless every precondition holds.
func (fs *FileSystem) MoveFile(src, dst string) error {
	logger := util.GetLogger("FS.MoveFile")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	s, d, err := fs.transferTargetsLocked("mv", src, dst)
	if err != nil {
		return err
	}
	if s == d {
		return nil
	}
	fs.putFileLocked(d, fs.files[s].Content())
	fs.removeFileLocked(s)
	logger.Debug().Str("src", s).Str("dst", d).Msg("Moved file")
	return nil
}

// transferTargetsLocked resolves and validates cp/mv operands.
// A dst naming an existing directory receives the file under src's base name.
func (fs *FileSystem) transferTargetsLocked(op, src, dst string) (string, string, error) {
	s := fs.resolve(src)
	if !fs.isFile(s) {
		return "", "", shellsim.NewError(shellsim.NoSuchFile, op, src)
	}
	d := fs.resolve(dst)
	if fs.isDir(d) {
		d = Join(d, Base(s))
	}
	if !fs.isDir(Parent(d)) {
		return "", "", shellsim.NewError(shellsim.NoSuchDirectory, op, dst)
	}
	if fs.isDir(d) {
		return "", "", shellsim.NewError(shellsim.IsADirectory, op, dst)
	}
	return s, d, nil
}

// WriteFile sets (or appends to) the content of path, creating the file if needed
func (fs *FileSystem) WriteFile(path, content string, append bool) error {
	logger := util.GetLogger("FS.WriteFile")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	p := fs.resolve(path)
	if fs.isDir(p) {
		return shellsim.NewError(shellsim.IsADirectory, "write", path)
	}
	if !fs.isDir(Parent(p)) {
		return shellsim.NewError(shellsim.NoSuchDirectory, "write", path)
	}
	if f, ok := fs.files[p]; ok && append {
		f.append(content)
	} else {
		fs.putFileLocked(p, content)
	}
	logger.Trace().Str("path", p).Bool("append", append).Int("bytes", len(content)).Msg("Wrote file")
	return nil
}

/* [shellsim.Inspector] implementations */

// CurrentDirectory is an alias of Pwd for graders
func (fs *FileSystem) CurrentDirectory() string {
	return fs.Pwd()
}

func (fs *FileSystem) FileExists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.isFile(fs.resolve(path))
}

func (fs *FileSystem) DirectoryExists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.isDir(fs.resolve(path))
}

// FileContentContains reports whether path is a file whose content contains substr
func (fs *FileSystem) FileContentContains(path, substr string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	f, ok := fs.files[fs.resolve(path)]
	return ok && strings.Contains(f.Content(), substr)
}

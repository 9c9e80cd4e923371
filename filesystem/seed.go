package filesystem

import (
	"fmt"

	"github.com/brettbedarf/shellsim"
	"github.com/brettbedarf/shellsim/internal/util"
)

// AddDirNode creates the requested directory and all missing ancestors.
// Like `mkdir -p` it only creates directories that do not already exist and
// does not error if the leaf already exists.
func (fs *FileSystem) AddDirNode(req *shellsim.DirCreateRequest) error {
	logger := util.GetLogger("AddDirNode")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	p := Normalize(Root, req.Path)
	if _, err := fs.mkdirAllLocked(p); err != nil {
		logger.Error().Err(err).Str("path", req.Path).Msg("Failed to create directory")
		return fmt.Errorf("seed directory %s: %w", req.Path, err)
	}
	return nil
}

// AddFileNode adds a new file with its initial content, creating any missing
// directories in the path. If a node already exists at the path it returns an error.
func (fs *FileSystem) AddFileNode(req *shellsim.FileCreateRequest) error {
	logger := util.GetLogger("AddFileNode")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	p := Normalize(Root, req.Path)
	if p == Root || fs.isFile(p) || fs.isDir(p) {
		err := shellsim.NewError(shellsim.AlreadyExists, "seed", req.Path)
		logger.Error().Err(err).Str("path", req.Path).Msg("Failed to create file")
		return err
	}
	if _, err := fs.mkdirAllLocked(Parent(p)); err != nil {
		logger.Error().Err(err).Str("path", req.Path).Msg("Failed to create file's ancestor directory(s)")
		return fmt.Errorf("seed file %s: %w", req.Path, err)
	}
	fs.putFileLocked(p, req.Content)
	logger.Debug().Str("path", p).Msg("Added new file node")
	return nil
}

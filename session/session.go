// Package session ties a seeded filesystem, a command interpreter and the
// runtime configuration together and serves them as an interactive shell.
package session

import (
	"fmt"
	"sync/atomic"

	"github.com/brettbedarf/shellsim/config"
	"github.com/brettbedarf/shellsim/filesystem"
	"github.com/brettbedarf/shellsim/internal/util"
	"github.com/brettbedarf/shellsim/requests"
	"github.com/brettbedarf/shellsim/shell"
	"github.com/google/uuid"
)

// Session contains the simulated filesystem state and the interpreter bound to it
type Session struct {
	*filesystem.FileSystem
	ID     string
	cfg    *config.Config
	interp *shell.Interpreter

	commands atomic.Int64
	failures atomic.Int64
}

// Stats counts the lines a session executed
type Stats struct {
	Commands int64
	Failures int64
}

// New creates a session from cfg, seeding it from cfg.SeedFile or the
// built-in tree when no seed file is configured.
func New(cfg *config.Config) (*Session, error) {
	seed := requests.DefaultSeed()
	if cfg.SeedFile != "" {
		var err error
		if seed, err = requests.LoadSeedFile(cfg.SeedFile); err != nil {
			return nil, fmt.Errorf("failed to load seed file %s: %w", cfg.SeedFile, err)
		}
	}
	return NewWithSeed(cfg, seed), nil
}

// NewWithSeed creates a session whose filesystem holds the nodes in seed.
// Nodes that cannot be added are logged and skipped.
func NewWithSeed(cfg *config.Config, seed *requests.Seed) *Session {
	s := &Session{
		FileSystem: filesystem.NewFS(),
		ID:         uuid.NewString(),
		cfg:        cfg,
	}
	s.interp = shell.NewInterpreter(s.FileSystem, nil)
	logger := util.GetLogger("Session").With().Str("session", s.ID).Logger()

	dirAddCnt := 0
	for _, req := range seed.Dirs {
		if err := s.AddDirNode(req); err != nil {
			logger.Debug().Interface("request", req).Err(err).Msg("Failed to add directory request")
			continue
		}
		dirAddCnt++
	}
	fileAddCnt := 0
	for _, req := range seed.Files {
		if err := s.AddFileNode(req); err != nil {
			logger.Debug().Interface("request", req).Err(err).Msg("Failed to add file request")
			continue
		}
		fileAddCnt++
	}

	if err := s.ChangeDirectory(cfg.HomeDir); err != nil {
		logger.Warn().Str("home", cfg.HomeDir).Msg("Home directory missing from seed; starting at /")
	}
	logger.Info().Int("directories", dirAddCnt).Int("files", fileAddCnt).Str("cwd", s.Pwd()).Msg("Session created")
	return s
}

// Run executes one line and records it in the session stats
func (s *Session) Run(line string) shell.Result {
	res := s.interp.Run(line)
	s.commands.Add(1)
	if !res.OK() {
		s.failures.Add(1)
	}
	return res
}

// Execute runs one line and reports success plus the text a terminal would show
func (s *Session) Execute(line string) (bool, string) {
	res := s.Run(line)
	return res.OK(), res.Message()
}

// Prompt renders the configured prompt for the current directory
func (s *Session) Prompt() string {
	return s.cfg.Render(s.Pwd())
}

func (s *Session) Stats() Stats {
	return Stats{Commands: s.commands.Load(), Failures: s.failures.Load()}
}

package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/brettbedarf/shellsim"
	"github.com/brettbedarf/shellsim/config"
	"github.com/brettbedarf/shellsim/internal/util"
	"github.com/brettbedarf/shellsim/objective"
	"github.com/brettbedarf/shellsim/requests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *config.Config {
	return config.NewConfig(&config.ConfigOverride{Color: util.Pointer(false)})
}

func createTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(createTestConfig())
	require.NoError(t, err)
	return s
}

func serve(t *testing.T, s *Session, input string, opts ServeOptions) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, s.Serve(context.Background(), strings.NewReader(input), &out, opts))
	return out.String()
}

func TestNew_DefaultSeed(t *testing.T) {
	t.Parallel()

	s := createTestSession(t)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, config.DefaultHomeDir, s.Pwd())
	assert.True(t, s.FileExists("/home/student/notes/readme.txt"))
	for _, d := range []string{"/etc", "/var/log", "/tmp", "/home/student/labs"} {
		assert.True(t, s.DirectoryExists(d), d)
	}
	assert.NotEqual(t, s.ID, createTestSession(t).ID, "sessions get distinct ids")
}

func TestNew_SeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tree.yaml")
	seed := "nodes:\n  - type: file\n    path: /srv/a.txt\n    content: hi\n"
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	cfg := createTestConfig()
	cfg.SeedFile = path
	s, err := New(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/", s.Pwd(), "missing home falls back to root")
	assert.True(t, s.FileContentContains("/srv/a.txt", "hi"))
	assert.False(t, s.DirectoryExists("/home/student"))
}

func TestNew_BadSeedFile(t *testing.T) {
	t.Parallel()

	cfg := createTestConfig()
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.json")

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestNewWithSeed_SkipsConflicts(t *testing.T) {
	t.Parallel()

	seed := &requests.Seed{
		Dirs: []*shellsim.DirCreateRequest{shellsim.NewDirRequest("/a")},
		Files: []*shellsim.FileCreateRequest{
			shellsim.NewFileRequest("/a", "clash"),
			shellsim.NewFileRequest("/a/b.txt", "ok"),
		},
	}
	s := NewWithSeed(createTestConfig(), seed)

	assert.True(t, s.DirectoryExists("/a"))
	assert.True(t, s.FileExists("/a/b.txt"))
}

func TestSession_ExecuteAndStats(t *testing.T) {
	t.Parallel()

	s := createTestSession(t)

	ok, out := s.Execute("echo hi > /tmp/x.txt")
	assert.True(t, ok)
	assert.Empty(t, out)

	ok, out = s.Execute("cat /tmp/missing")
	assert.False(t, ok)
	assert.Equal(t, "cat: /tmp/missing: No such file\n", out)

	res := s.Run("cat /tmp/x.txt")
	require.True(t, res.OK())
	assert.Equal(t, "hi\n", res.Output)

	assert.Equal(t, Stats{Commands: 3, Failures: 1}, s.Stats())
}

func TestSession_Prompt(t *testing.T) {
	t.Parallel()

	s := createTestSession(t)
	assert.Equal(t, "[/home/student]$ ", s.Prompt())

	require.NoError(t, s.ChangeDirectory("/tmp"))
	assert.Equal(t, "[/tmp]$ ", s.Prompt())
}

func TestServe_StopsAtExitWord(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"exit", "quit", "q", "  exit  "} {
		s := createTestSession(t)
		out := serve(t, s, "pwd\nbogus\n"+word+"\npwd\n", ServeOptions{})

		assert.Equal(t, "/home/student\nbogus: command not found\n", out, word)
		assert.Equal(t, Stats{Commands: 2, Failures: 1}, s.Stats(), word)
	}
}

func TestServe_InteractiveEOF(t *testing.T) {
	t.Parallel()

	s := createTestSession(t)
	out := serve(t, s, "cd /tmp\npwd\n", ServeOptions{Interactive: true})

	assert.Equal(t, "[/home/student]$ [/tmp]$ /tmp\n[/tmp]$ \n", out)
}

func TestServe_ObjectivesEndSession(t *testing.T) {
	t.Parallel()

	checks, err := objective.ParseAll([]string{"dir_exists:/tmp/lab", "cwd==/tmp/lab"})
	require.NoError(t, err)

	s := createTestSession(t)
	out := serve(t, s, "mkdir /tmp/lab\ncd /tmp/lab\necho never\n", ServeOptions{Checks: checks})

	assert.Equal(t, "Objective complete.\n", out)
	assert.Equal(t, int64(2), s.Stats().Commands)
}

func TestServe_StatusListsOpenObjectives(t *testing.T) {
	t.Parallel()

	checks, err := objective.ParseAll([]string{"dir_exists:/tmp/lab", "cwd==/tmp/lab"})
	require.NoError(t, err)

	s := createTestSession(t)
	out := serve(t, s, "status\nmkdir /tmp/lab\nstatus\n", ServeOptions{Checks: checks})

	assert.Equal(t, "Open objectives: 2 of 2\n  dir_exists:/tmp/lab\n  cwd==/tmp/lab\n"+
		"Open objectives: 1 of 2\n  cwd==/tmp/lab\n", out)
	assert.Equal(t, Stats{Commands: 1}, s.Stats(), "status is not a command")

	assert.Equal(t, "No objectives.\n", serve(t, createTestSession(t), "status\n", ServeOptions{}))
}

func TestServe_ContextCanceled(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := createTestSession(t)
	err := s.Serve(ctx, pr, io.Discard, ServeOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServe_ReadError(t *testing.T) {
	t.Parallel()

	s := createTestSession(t)
	boom := errors.New("boom")
	err := s.Serve(context.Background(), iotest.ErrReader(boom), io.Discard, ServeOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

package objective

import (
	"testing"

	"github.com/brettbedarf/shellsim/filesystem"
	"github.com/brettbedarf/shellsim/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		exp  Check
	}{
		{"cwd==/home/student", Check{Kind: CwdEquals, Path: "/home/student"}},
		{"cwd==/", Check{Kind: CwdEquals, Path: "/"}},
		{"dir_exists:/home/student/labs/", Check{Kind: DirExists, Path: "/home/student/labs"}},
		{"file_exists:/tmp/../tmp/out.txt", Check{Kind: FileExists, Path: "/tmp/out.txt"}},
		{"  file_absent:/tmp/old.txt ", Check{Kind: FileAbsent, Path: "/tmp/old.txt"}},
		{"file_contains:/tmp/out.txt:hello", Check{Kind: FileContains, Path: "/tmp/out.txt", Substr: "hello"}},
		{"file_contains:/tmp/out.txt:a:b", Check{Kind: FileContains, Path: "/tmp/out.txt", Substr: "a:b"}},
		{"file_contains:/tmp/out.txt:", Check{Kind: FileContains, Path: "/tmp/out.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			c, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.exp, c)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr   string
		errMsg string
	}{
		{"", "unknown check"},
		{"cwd=/tmp", "unknown check"},
		{"exists:/tmp", "unknown check"},
		{"cwd==tmp", "path must be absolute"},
		{"file_exists:", "path must be absolute"},
		{"file_contains:/tmp/out.txt", "missing substring"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.expr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	checks, err := ParseAll([]string{"cwd==/", "file_exists:/a"})
	require.NoError(t, err)
	assert.Len(t, checks, 2)

	_, err = ParseAll([]string{"cwd==/", "bogus"})
	assert.Error(t, err)
}

func TestCheck_String(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{"cwd==/tmp", "dir_exists:/a/b", "file_contains:/a:x y"} {
		c, err := Parse(expr)
		require.NoError(t, err)
		assert.Equal(t, expr, c.String())
	}
}

func TestCheck_Holds_Mock(t *testing.T) {
	t.Parallel()

	insp := &mocks.MockInspector{}
	insp.On("CurrentDirectory").Return("/tmp")
	insp.On("DirectoryExists", "/tmp").Return(true)
	insp.On("FileExists", "/tmp/a").Return(true)
	insp.On("FileExists", "/tmp/b").Return(false)
	insp.On("FileContentContains", "/tmp/a", "hi").Return(true)

	assert.True(t, Check{Kind: CwdEquals, Path: "/tmp"}.Holds(insp))
	assert.False(t, Check{Kind: CwdEquals, Path: "/"}.Holds(insp))
	assert.True(t, Check{Kind: DirExists, Path: "/tmp"}.Holds(insp))
	assert.True(t, Check{Kind: FileExists, Path: "/tmp/a"}.Holds(insp))
	assert.True(t, Check{Kind: FileAbsent, Path: "/tmp/b"}.Holds(insp))
	assert.False(t, Check{Kind: FileAbsent, Path: "/tmp/a"}.Holds(insp))
	assert.True(t, Check{Kind: FileContains, Path: "/tmp/a", Substr: "hi"}.Holds(insp))
	assert.False(t, Check{Kind: "bogus", Path: "/tmp"}.Holds(insp))
	insp.AssertExpectations(t)
}

func TestSatisfied(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewFS()
	require.NoError(t, fs.MakeDirectory("/tmp"))
	checks, err := ParseAll([]string{
		"cwd==/tmp",
		"file_contains:/tmp/out.txt:hello",
		"file_absent:/tmp/old.txt",
	})
	require.NoError(t, err)

	assert.False(t, Satisfied(fs, nil), "no checks never completes")
	assert.False(t, Satisfied(fs, checks))
	assert.Len(t, Pending(fs, checks), 2)

	require.NoError(t, fs.ChangeDirectory("/tmp"))
	require.NoError(t, fs.WriteFile("out.txt", "say hello\n", false))

	assert.True(t, Satisfied(fs, checks))
	assert.Empty(t, Pending(fs, checks))

	require.NoError(t, fs.CreateOrTouchFile("old.txt"))
	pending := Pending(fs, checks)
	require.Len(t, pending, 1)
	assert.Equal(t, FileAbsent, pending[0].Kind)
}

package shellsim

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		exp  string
	}{
		{"operand", NewError(NoSuchFile, "cat", "x.txt"), "cat: x.txt: No such file"},
		{"msg", Errorf(CommandNotFound, "foo", "command not found"), "foo: command not found"},
		{"msg_without_op", Errorf(ParseError, "", "parse error: %s", "bad"), "parse error: bad"},
		{"kind_only", &Error{Kind: IsADirectory}, "Is a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.exp, tt.err.Error())
		})
	}
}

func TestError_IsMatchesKind(t *testing.T) {
	t.Parallel()

	err := NewError(AlreadyExists, "mkdir", "/a")
	wrapped := fmt.Errorf("seeding: %w", err)

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.ErrorIs(t, wrapped, ErrAlreadyExists, "must match through wrapping")
	assert.NotErrorIs(t, err, ErrNoSuchFile)
	assert.False(t, errors.Is(errors.New("plain"), ErrAlreadyExists))
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UsageError, KindOf(Errorf(UsageError, "cp", "usage")))
	assert.Equal(t, NoSuchDirectory, KindOf(fmt.Errorf("x: %w", ErrNoSuchDirectory)))
	assert.Equal(t, UnknownError, KindOf(errors.New("plain")))
	assert.Equal(t, UnknownError, KindOf(nil))
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "File exists", AlreadyExists.String())
	assert.Equal(t, "unknown error", ErrorKind(99).String())
}

package shellsim

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the simulated shell can report
type ErrorKind int

const (
	UnknownError ErrorKind = iota
	ParseError
	CommandNotFound
	MissingOperand
	UsageError
	NoSuchDirectory
	NoSuchFile
	AlreadyExists
	IsADirectory
)

var kindText = map[ErrorKind]string{
	UnknownError:    "unknown error",
	ParseError:      "parse error",
	CommandNotFound: "command not found",
	MissingOperand:  "missing operand",
	UsageError:      "usage error",
	NoSuchDirectory: "No such directory",
	NoSuchFile:      "No such file",
	AlreadyExists:   "File exists",
	IsADirectory:    "Is a directory",
}

func (k ErrorKind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return kindText[UnknownError]
}

// Sentinels for use with errors.Is; only the Kind is compared.
var (
	ErrParse           = &Error{Kind: ParseError}
	ErrCommandNotFound = &Error{Kind: CommandNotFound}
	ErrMissingOperand  = &Error{Kind: MissingOperand}
	ErrUsage           = &Error{Kind: UsageError}
	ErrNoSuchDirectory = &Error{Kind: NoSuchDirectory}
	ErrNoSuchFile      = &Error{Kind: NoSuchFile}
	ErrAlreadyExists   = &Error{Kind: AlreadyExists}
	ErrIsADirectory    = &Error{Kind: IsADirectory}
)

// Error is the structured failure returned by filesystem primitives and commands.
//
// Op is the command (or primitive) that failed and Path the operand as the user
// typed it. When Msg is set it replaces the "path: kind" part of the message.
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Msg  string
}

// NewError builds an *Error for the given operand
func NewError(kind ErrorKind, op, path string) *Error {
	return &Error{Kind: kind, Op: op, Path: path}
}

// Errorf builds an *Error with a formatted message instead of an operand
func Errorf(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Op != "":
		return e.Op + ": " + e.Msg
	case e.Msg != "":
		return e.Msg
	case e.Op != "":
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Path, e.Kind)
	default:
		return e.Kind.String()
	}
}

// Is matches any *Error of the same Kind so sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the ErrorKind carried by err, or UnknownError when err is not
// (and does not wrap) an *Error. A nil err also reports UnknownError.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UnknownError
}

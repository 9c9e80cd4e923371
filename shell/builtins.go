package shell

import (
	"strconv"
	"strings"

	"github.com/brettbedarf/shellsim"
)

var builtins = map[string]Command{
	"pwd":   pwdCmd,
	"ls":    lsCmd,
	"cd":    cdCmd,
	"mkdir": mkdirCmd,
	"touch": touchCmd,
	"cat":   catCmd,
	"rm":    rmCmd,
	"cp":    cpCmd,
	"mv":    mvCmd,
	"echo":  echoCmd,
	"wc":    wcCmd,
}

func missingOperand(name, what string) error {
	return shellsim.Errorf(shellsim.MissingOperand, name, "missing %s", what)
}

func tooManyArgs(name string) error {
	return shellsim.Errorf(shellsim.UsageError, name, "too many arguments")
}

// singleOperand enforces exactly one argument
func singleOperand(inv *Invocation, what string) (string, error) {
	switch len(inv.Args) {
	case 0:
		return "", missingOperand(inv.Name, what)
	case 1:
		return inv.Args[0], nil
	default:
		return "", tooManyArgs(inv.Name)
	}
}

func pwdCmd(fs shellsim.FileSystem, inv *Invocation) (string, error) {
	if len(inv.Args) > 0 {
		return "", tooManyArgs(inv.Name)
	}
	return fs.Pwd() + "\n", nil
}

func lsCmd(fs shellsim.FileSystem, inv *Invocation) (string, error) {
	var path string
	switch len(inv.Args) {
	case 0:
	case 1:
		path = inv.Args[0]
	default:
		return "", tooManyArgs(inv.Name)
	}
	names, err := fs.ListDirectory(path)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", nil
	}
	return strings.Join(names, "  ") + "\n", nil
}

func cdCmd(fs shellsim.FileSystem, inv *Invocation) (string, error) {
	path, err := singleOperand(inv, "operand")
	if err != nil {
		return "", err
	}
	return "", fs.ChangeDirectory(path)
}

func mkdirCmd(fs shellsim.FileSystem, inv *Invocation) (string, error) {
	parents := false
	var operands []string
	for _, arg := range inv.Args {
		switch {
		case arg == "-p":
			parents = true
		case strings.HasPrefix(arg, "-") && arg != "-":
			return "", shellsim.Errorf(shellsim.UsageError, inv.Name, "invalid option -- '%s'", strings.TrimLeft(arg, "-"))
		default:
			operands = append(operands, arg)
		}
	}
	path, err := singleOperand(&Invocation{Name: inv.Name, Args: operands}, "operand")
	if err != nil {
		return "", err
	}
	if parents {
		return "", fs.MakeDirectoryAll(path)
	}
	return "", fs.MakeDirectory(path)
}

func touchCmd(fs shellsim.FileSystem, inv *Invocation) (string, error) {
	path, err := singleOperand(inv, "file operand")
	if err != nil {
		return "", err
	}
	return "", fs.CreateOrTouchFile(path)
}

// catCmd prefers piped input over its file operand
func catCmd(fs shellsim.FileSystem, inv *Invocation) (string, error) {
	var content string
	if inv.Input != nil {
		content = *inv.Input
	} else {
		path, err := singleOperand(inv, "file operand")
		if err != nil {
			return "", err
		}
		if content, err = fs.ReadFile(path); err != nil {
			return "", err
		}
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content, nil
}

func rmCmd(fs shellsim.FileSystem, inv *Invocation) (string, error) {
	path, err := singleOperand(inv, "operand")
	if err != nil {
		return "", err
	}
	return "", fs.DeleteFile(path)
}

func cpCmd(fs shellsim.FileSystem, inv *Invocation) (string, error) {
	if len(inv.Args) != 2 {
		return "", shellsim.Errorf(shellsim.UsageError, inv.Name, "usage: cp SRC DST")
	}
	return "", fs.CopyFile(inv.Args[0], inv.Args[1])
}

func mvCmd(fs shellsim.FileSystem, inv *Invocation) (string, error) {
	if len(inv.Args) != 2 {
		return "", shellsim.Errorf(shellsim.UsageError, inv.Name, "usage: mv SRC DST")
	}
	return "", fs.MoveFile(inv.Args[0], inv.Args[1])
}

// echoCmd never touches the filesystem and ignores piped input
func echoCmd(_ shellsim.FileSystem, inv *Invocation) (string, error) {
	return strings.Join(inv.Args, " ") + "\n", nil
}

// wc counting modes
const (
	wcLines = "-l"
	wcWords = "-w"
	wcBytes = "-c"
)

// wcCmd counts lines (default), words or bytes of piped input or a file.
// Piped input shadows the file operand.
func wcCmd(fs shellsim.FileSystem, inv *Invocation) (string, error) {
	mode := wcLines
	var operands []string
	for _, arg := range inv.Args {
		switch {
		case arg == wcLines || arg == wcWords || arg == wcBytes:
			mode = arg
		case strings.HasPrefix(arg, "-") && arg != "-":
			return "", shellsim.Errorf(shellsim.UsageError, inv.Name, "invalid option -- '%s'", strings.TrimLeft(arg, "-"))
		default:
			operands = append(operands, arg)
		}
	}
	if len(operands) > 1 {
		return "", tooManyArgs(inv.Name)
	}

	var text string
	switch {
	case inv.Input != nil:
		text = *inv.Input
	case len(operands) == 1:
		var err error
		if text, err = fs.ReadFile(operands[0]); err != nil {
			return "", err
		}
	default:
		return "", shellsim.Errorf(shellsim.MissingOperand, inv.Name, "expected piped input or file")
	}
	return strconv.Itoa(Count(text, mode)) + "\n", nil
}

// Count implements wc's modes. Lines are newline-terminated lines plus a final
// unterminated one, words are whitespace separated, bytes are UTF-8 bytes.
func Count(text, mode string) int {
	switch mode {
	case wcWords:
		return len(strings.Fields(text))
	case wcBytes:
		return len(text)
	default:
		n := strings.Count(text, "\n")
		if text != "" && !strings.HasSuffix(text, "\n") {
			n++
		}
		return n
	}
}

package shell

import (
	"strings"

	"github.com/brettbedarf/shellsim"
	shlex "github.com/carapace-sh/carapace-shlex"
)

// MaxStages is the longest pipeline the interpreter accepts
const MaxStages = 2

// Pipeline is one parsed input line: one or two stages plus an optional
// redirection of the final stage's output. A blank line parses to a Pipeline
// with no stages.
type Pipeline struct {
	Stages   [][]string
	Redirect *Redirect
}

// Redirect names the file receiving the pipeline output
type Redirect struct {
	Target string
	Append bool
}

type opKind int

const (
	opPipe opKind = iota
	opWrite
	opAppend
)

// op is an unquoted, unescaped operator found by scanOperators.
// line[pos:end] is the operator text.
type op struct {
	kind     opKind
	pos, end int
}

// scanOperators finds every shell operator outside quotes and escapes.
// ">>" is matched before ">" so an append is never split in two.
func scanOperators(line string) ([]op, error) {
	var ops []op
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote == '\'':
			if c == '\'' {
				quote = 0
			}
		case c == '\\':
			if i+1 >= len(line) {
				return nil, shellsim.Errorf(shellsim.ParseError, "", "parse error: trailing backslash")
			}
			i++
		case quote == '"':
			if c == '"' {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '|':
			ops = append(ops, op{kind: opPipe, pos: i, end: i + 1})
		case c == '>':
			if i+1 < len(line) && line[i+1] == '>' {
				ops = append(ops, op{kind: opAppend, pos: i, end: i + 2})
				i++
			} else {
				ops = append(ops, op{kind: opWrite, pos: i, end: i + 1})
			}
		}
	}
	if quote != 0 {
		return nil, shellsim.Errorf(shellsim.ParseError, "", "parse error: unmatched %c quote", quote)
	}
	return ops, nil
}

// Parse classifies pipe and redirection operators for the whole line before
// tokenizing each stage, so quoted or escaped operators stay literal.
func Parse(line string) (*Pipeline, error) {
	ops, err := scanOperators(line)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{}
	cmdText := line
	for i, o := range ops {
		if o.kind == opPipe {
			continue
		}
		// The first redirection ends the command part; nothing after it may be an operator
		if i < len(ops)-1 {
			return nil, shellsim.Errorf(shellsim.ParseError, "", "parse error: unexpected %q after redirection",
				line[ops[i+1].pos:ops[i+1].end])
		}
		target, err := tokenize(line[o.end:])
		if err != nil {
			return nil, err
		}
		switch len(target) {
		case 0:
			return nil, shellsim.Errorf(shellsim.ParseError, "", "parse error: missing redirection target")
		case 1:
		default:
			return nil, shellsim.Errorf(shellsim.UsageError, "redirect", "ambiguous redirect")
		}
		p.Redirect = &Redirect{Target: target[0], Append: o.kind == opAppend}
		cmdText = line[:o.pos]
		break
	}

	pipes := make([]op, 0, len(ops))
	for _, o := range ops {
		if o.kind == opPipe && o.pos < len(cmdText) {
			pipes = append(pipes, o)
		}
	}
	if len(pipes) >= MaxStages {
		return nil, shellsim.Errorf(shellsim.ParseError, "", "parse error: at most %d pipeline stages are supported", MaxStages)
	}

	texts := []string{cmdText}
	if len(pipes) == 1 {
		texts = []string{cmdText[:pipes[0].pos], cmdText[pipes[0].end:]}
	}
	for _, text := range texts {
		argv, err := tokenize(text)
		if err != nil {
			return nil, err
		}
		if len(argv) == 0 {
			if len(texts) == 1 && p.Redirect == nil {
				// blank line
				return p, nil
			}
			return nil, shellsim.Errorf(shellsim.ParseError, "", "parse error: empty command")
		}
		p.Stages = append(p.Stages, argv)
	}
	return p, nil
}

// tokenize splits one stage into words with shell quoting rules
func tokenize(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	tokens, err := shlex.Split(text)
	if err != nil {
		return nil, shellsim.Errorf(shellsim.ParseError, "", "parse error: %v", err)
	}
	// Words rejoins adjacent tokens so only whitespace separates arguments
	return tokens.Words().Strings(), nil
}

package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/shellsim/internal/util"
	"github.com/brettbedarf/shellsim/objective"
	"github.com/fatih/color"
)

// ServeOptions controls a read-eval-print loop
type ServeOptions struct {
	// Interactive prints the prompt before each line
	Interactive bool
	// Checks end the loop once all of them hold
	Checks []objective.Check
}

var exitWords = map[string]struct{}{"exit": {}, "quit": {}, "q": {}}

// statusWord lists the objectives that do not hold yet
const statusWord = "status"

// Serve reads lines from in and writes their results to out until EOF, an
// exit word, objective completion or ctx cancellation.
func (s *Session) Serve(ctx context.Context, in io.Reader, out io.Writer, opts ServeOptions) error {
	logger := util.GetLogger("Session.Serve").With().Str("session", s.ID).Logger()
	promptColor := s.newColor(color.FgCyan, color.Bold)
	errColor := s.newColor(color.FgRed)
	doneColor := s.newColor(color.FgGreen, color.Bold)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := s.readLines(ctx, in)
	logger.Info().Bool("interactive", opts.Interactive).Int("checks", len(opts.Checks)).Msg("Serving session")
	defer func() {
		st := s.Stats()
		logger.Info().Int64("commands", st.Commands).Int64("failures", st.Failures).Msg("Session ended")
	}()

	for {
		if opts.Interactive {
			promptColor.Fprint(out, s.Prompt()) // nolint:errcheck
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r, ok := <-lines:
			if !ok {
				if opts.Interactive {
					fmt.Fprintln(out) // nolint:errcheck
				}
				return nil
			}
			if r.err != nil {
				return fmt.Errorf("failed to read input: %w", r.err)
			}
			line = r.text
		}

		word := strings.TrimSpace(line)
		if _, ok := exitWords[word]; ok {
			return nil
		}
		if word == statusWord {
			writeStatus(out, s, opts.Checks)
			continue
		}

		res := s.Run(line)
		if res.OK() {
			io.WriteString(out, res.Output) // nolint:errcheck
		} else {
			errColor.Fprint(out, res.Message()) // nolint:errcheck
		}

		if objective.Satisfied(s, opts.Checks) {
			logger.Info().Msg("Objectives complete")
			doneColor.Fprintln(out, "Objective complete.") // nolint:errcheck
			return nil
		}
	}
}

type readResult struct {
	text string
	err  error
}

// readLines scans in on its own goroutine so Serve can stop on ctx while a read blocks
func (s *Session) readLines(ctx context.Context, in io.Reader) <-chan readResult {
	lines := make(chan readResult)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- readResult{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- readResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return lines
}

func (s *Session) newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if !s.cfg.Color {
		c.DisableColor()
	}
	return c
}

func writeStatus(out io.Writer, s *Session, checks []objective.Check) {
	if len(checks) == 0 {
		fmt.Fprintln(out, "No objectives.") // nolint:errcheck
		return
	}
	pending := objective.Pending(s, checks)
	fmt.Fprintf(out, "Open objectives: %d of %d\n", len(pending), len(checks)) // nolint:errcheck
	for _, c := range pending {
		fmt.Fprintf(out, "  %s\n", c) // nolint:errcheck
	}
}

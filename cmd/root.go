package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/brettbedarf/shellsim/config"
	"github.com/brettbedarf/shellsim/internal/util"
	"github.com/brettbedarf/shellsim/objective"
	"github.com/brettbedarf/shellsim/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errCommandFailed signals a failed --command line; its message is already printed
var errCommandFailed = errors.New("command failed")

type rootOpts struct {
	ConfigPath string
	SeedFile   string
	Verbose    int
	Checks     []string
	Command    string
	NoColor    bool
}

func RootCommand() *cobra.Command {
	opts := rootOpts{}

	cmd := cobra.Command{
		Use:   "shellsim",
		Short: "Practice shell commands against an in-memory filesystem",
		Long: "Start a simulated shell over an in-memory filesystem.\n\n" +
			"Supports pwd, ls, cd, mkdir, touch, cat, rm, cp, mv, echo and wc,\n" +
			"one pipe (a | b) and output redirection (> and >>).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootMain(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Load settings from YAML or JSON `file`")
	cmd.Flags().StringVarP(&opts.SeedFile, "seed", "s", "", "Build the initial tree from YAML or JSON `file`")
	cmd.Flags().IntVarP(&opts.Verbose, "verbose", "v", config.WarnVerbose, "Log verbosity between 1 (error) and 5 (trace)")
	cmd.Flags().StringArrayVar(&opts.Checks, "check", nil, "End the session once `expr` holds (repeatable)")
	cmd.Flags().StringVarP(&opts.Command, "command", "e", "", "Run one `line` and exit; status 1 on failure")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	return &cmd
}

// loadConfig builds the effective config: defaults, then the config file, then flags
func loadConfig(cmd *cobra.Command, opts *rootOpts) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if opts.ConfigPath != "" {
		override, err := config.LoadConfigOverrideFile(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", opts.ConfigPath, err)
		}
		cfg.Merge(override)
	}

	flags := config.ConfigOverride{}
	if cmd.Flags().Changed("verbose") {
		flags.LogLvl = &opts.Verbose
	}
	if cmd.Flags().Changed("seed") {
		flags.SeedFile = &opts.SeedFile
	}
	if opts.NoColor {
		flags.Color = util.Pointer(false)
	}
	cfg.Merge(&flags)
	return cfg, nil
}

func rootMain(cmd *cobra.Command, opts *rootOpts) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")

	checks, err := objective.ParseAll(opts.Checks)
	if err != nil {
		return err
	}

	s, err := session.New(cfg)
	if err != nil {
		return err
	}
	logger.Debug().Str("session", s.ID).Str("seed", cfg.SeedFile).Int("checks", len(checks)).Msg("Session ready")

	if cmd.Flags().Changed("command") {
		res := s.Run(opts.Command)
		if !res.OK() {
			fmt.Fprint(cmd.ErrOrStderr(), res.Message()) // nolint:errcheck
			return errCommandFailed
		}
		fmt.Fprint(cmd.OutOrStdout(), res.Output) // nolint:errcheck
		return nil
	}

	return s.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), session.ServeOptions{
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
		Checks:      checks,
	})
}

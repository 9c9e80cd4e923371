package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/brettbedarf/shellsim/config"
	"github.com/brettbedarf/shellsim/internal/util"
)

func main() {
	util.InitializeLogger(config.DefaultLogLvl)
	logger := util.GetLogger("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := RootCommand().ExecuteContext(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, errCommandFailed):
		stop()
		os.Exit(1)
	default:
		stop()
		logger.Fatal().Err(err).Msg("Shell simulator failed")
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/groupauth/internal/buildinfo"
	"github.com/dmitrijs2005/groupauth/internal/client/cli"
	"github.com/dmitrijs2005/groupauth/internal/client/config"
)

func main() {

	cfg, args := config.LoadConfig(os.Args[1:])
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	if len(args) > 0 && args[0] == "version" {
		buildinfo.PrintBuildData(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewApp(cfg).Run(ctx, args)
	switch {
	case err == nil, errors.Is(err, cli.ErrHelp):
	case errors.Is(err, cli.ErrUsage):
		stop()
		os.Exit(2)
	case errors.Is(err, cli.ErrRejected):
		stop()
		if msg := err.Error(); msg != cli.ErrRejected.Error() {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	default:
		stop()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

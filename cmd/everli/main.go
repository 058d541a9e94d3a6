package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/everli/internal/buildinfo"
	"github.com/dmitrijs2005/everli/internal/client/cli"
	"github.com/dmitrijs2005/everli/internal/client/config"
	"github.com/dmitrijs2005/everli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	cli.NewApp(cfg, log).Run(ctx)

}

package main

import (
	"context"
	_ "embed"
	"log"
	"os"
	"os/signal"
	"syscall"

	"weatherreport/apis/ipapi"
	"weatherreport/apis/openmeteo"
	"weatherreport/cli"
	"weatherreport/config"
	"weatherreport/manager"
)

//go:embed config.yaml
var configRaw []byte

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(configRaw)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	reporter := manager.New(ipapi.New(cfg), openmeteo.New(cfg))

	cmd, err := cli.New(reporter)
	if err != nil {
		log.Fatalf("new cli: %s", err)
	}

	if err = cmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

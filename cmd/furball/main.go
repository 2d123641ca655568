package main

import (
	"context"
	"log"
	"os"

	"github.com/furball-art/furball/internal/buildinfo"
	"github.com/furball-art/furball/internal/client/cli"
	"github.com/furball-art/furball/internal/client/config"
	"github.com/furball-art/furball/internal/logging"
	"github.com/furball-art/furball/internal/telemetry"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(os.Stderr, "text", cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	shutdown, err := telemetry.Setup(ctx, "furball", cfg.OTelEndpoint)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx, os.Stdin)

}

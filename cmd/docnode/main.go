package main

import (
	"context"
	"log"
	"os"

	"github.com/furball-art/furball/internal/buildinfo"
	"github.com/furball-art/furball/internal/server"
	"github.com/furball-art/furball/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}

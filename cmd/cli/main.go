package main

import (
	"context"
	"log"
	"os"

	"github.com/NodEm9/myflix-client/internal/buildinfo"
	"github.com/NodEm9/myflix-client/internal/client/cli"
	"github.com/NodEm9/myflix-client/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}

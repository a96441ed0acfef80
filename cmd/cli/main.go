package main

import (
	"context"
	"log"
	"os"

	"github.com/nextread/nextread-cli/internal/buildinfo"
	"github.com/nextread/nextread-cli/internal/client/cli"
	"github.com/nextread/nextread-cli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}

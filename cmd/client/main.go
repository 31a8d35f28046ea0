package main

import (
	"context"
	"log"
	"os"

	"github.com/ishwarya-18/todo-app/internal/buildinfo"
	"github.com/ishwarya-18/todo-app/internal/client/cli"
	"github.com/ishwarya-18/todo-app/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

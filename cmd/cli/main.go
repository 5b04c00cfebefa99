package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/lgastler/work-journal/internal/cli"
	"github.com/lgastler/work-journal/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadEnvConfig()
	app, err := cli.NewApp(cfg, os.Stdin, os.Stdout, os.Stderr)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}

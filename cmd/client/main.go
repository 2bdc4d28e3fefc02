package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/adboard/internal/client/cli"
	"github.com/dmitrijs2005/adboard/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()

	if err := cli.NewRootCommand(cfg).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}

}

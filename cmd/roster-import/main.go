// Package main imports a player roster CSV into the stage database.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/tenchairs/stage/internal/platform/config"
	"github.com/tenchairs/stage/internal/tools/rosterimport"
)

func main() {
	cfg, err := rosterimport.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := rosterimport.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}

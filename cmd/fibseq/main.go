package main

import (
	"fmt"
	"os"

	"github.com/kjstillabower/fibseq/internal/cli"
	"github.com/kjstillabower/fibseq/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(cli.ExitError)
	}
	os.Exit(cli.Run(os.Args, os.Stdout, os.Stderr, cfg))
}

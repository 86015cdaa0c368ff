package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-console/terminal"
)

func main() {
	// Load configuration - fallback to defaults if config.json doesn't exist
	config, err := parseConfig(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	control := terminal.New(runtime.GOOS, os.Stdout)
	if err = newSession(config, os.Stdin, os.Stdout, control).loop(context.Background()); err != nil {
		log.Fatalf("game stopped: %v", err)
	}
}

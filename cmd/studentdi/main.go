package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sghaida/studentdi/internal/bootstrap"
	"github.com/sghaida/studentdi/internal/config"
	"github.com/sghaida/studentdi/internal/logger"
)

// run executes the demo and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("studentdi", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "optional YAML config file")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintln(stderr, "usage: studentdi [-config <file.yaml>]")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "config.Load failed:", err)
		return 1
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, Output: stderr})

	if err := bootstrap.Run(stdout, cfg, log); err != nil {
		log.Error().Err(err).Msg("demo failed")
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

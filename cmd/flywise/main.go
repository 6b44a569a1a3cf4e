package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/flywise/flywise/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	configureLogging()
	app := cli.NewApp(version)
	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, err)
		return cli.ExitCode(err)
	}
	return cli.ExitSuccess
}

func configureLogging() {
	if os.Getenv("FLYWISE_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if os.Getenv("FLYWISE_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muratoffalex/pagefetch/internal/app"
	"github.com/muratoffalex/pagefetch/internal/config"
)

var (
	version   string
	buildTime string
)

func main() {
	textOnly := flag.Bool("text", false, "Print readable text of HTML pages instead of markup")
	timeout := flag.Duration("timeout", 0, "HTTP timeout, overrides http.timeout")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] URL... | -\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("pagefetch %s (built at: %s)\n", version, buildTime)
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *timeout > 0 {
		if err := cfg.Set(config.HTTP_TIMEOUT, *timeout); err != nil {
			log.Fatalf("Failed to apply timeout: %v", err)
		}
	}

	application, err := app.New(cfg, os.Stdout, app.Options{TextOnly: *textOnly})
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	urls := flag.Args()
	if len(urls) == 1 && urls[0] == "-" {
		urls, err = app.URLsFromReader(os.Stdin)
		if err != nil {
			application.Logger.WithError(err).Fatal("Failed to read URLs from stdin")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	err = application.Run(ctx, urls)
	application.Logger.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Debug("Done")
	if err != nil {
		if !errors.Is(err, app.ErrFetchFailed) {
			application.Logger.WithError(err).Error("Run failed")
		}
		stop()
		os.Exit(1)
	}
}

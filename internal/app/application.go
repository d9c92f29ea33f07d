package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muratoffalex/pagefetch/internal/app/di"
	"github.com/muratoffalex/pagefetch/internal/config"
	"github.com/muratoffalex/pagefetch/internal/extract"
	"github.com/muratoffalex/pagefetch/internal/fetcher"
	"github.com/muratoffalex/pagefetch/internal/logger"
)

var ErrFetchFailed = errors.New("one or more fetches failed")

type Options struct {
	// TextOnly prints the readable text of HTML pages instead of the markup.
	TextOnly bool
}

type Application struct {
	Logger logger.Logger
	cfg    *config.Config
	di     *di.Container
	out    io.Writer
	opts   Options
}

func New(cfg *config.Config, out io.Writer, opts Options) (*Application, error) {
	container, err := di.NewContainer(cfg)
	if err != nil {
		return nil, err
	}
	return newWithContainer(container, out, opts), nil
}

func newWithContainer(container *di.Container, out io.Writer, opts Options) *Application {
	return &Application{
		Logger: container.Logger,
		cfg:    container.Cfg,
		di:     container,
		out:    out,
		opts:   opts,
	}
}

// Run fetches every URL in order and writes each result to the output. A
// failed URL is logged and skipped; ErrFetchFailed is returned at the end if
// anything failed.
func (a *Application) Run(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return errors.New("no URL given")
	}

	failed := 0
	for _, u := range urls {
		if err := a.fetchOne(ctx, u); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.Logger.WithError(err).WithField("url", u).Error("Fetch failed")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFetchFailed, failed, len(urls))
	}
	return nil
}

func (a *Application) fetchOne(ctx context.Context, u string) error {
	body, err := a.di.Fetcher.Fetch(ctx, u)
	if err != nil {
		return err
	}

	if a.opts.TextOnly && extract.IsHTML(body) {
		body, err = extract.Text(body)
		if err != nil {
			return err
		}
	}

	if _, err := io.WriteString(a.out, body); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if len(body) > 0 && body[len(body)-1] != '\n' {
		_, err = io.WriteString(a.out, "\n")
	}
	return err
}

// URLsFromReader collects the http(s) URLs mentioned anywhere in r.
func URLsFromReader(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read URL list: %w", err)
	}
	return fetcher.ExtractURLs(string(data)), nil
}

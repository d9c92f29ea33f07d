package di

import (
	"github.com/muratoffalex/pagefetch/internal/config"
	"github.com/muratoffalex/pagefetch/internal/fetcher"
	"github.com/muratoffalex/pagefetch/internal/logger"
	"github.com/muratoffalex/pagefetch/internal/network"
)

type Container struct {
	Logger     logger.Logger
	Cfg        *config.Config
	HttpClient network.HTTPClient
	Fetcher    *fetcher.Fetcher
}

func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithLogger(cfg, logger.NewLogrusLogger(cfg.Log()))
}

func NewContainerWithLogger(cfg *config.Config, l logger.Logger) (*Container, error) {
	httpCfg := cfg.HTTP()
	client, err := network.SetupHTTPClient(network.NewHTTPClientConfigForFetcher(httpCfg), l)
	if err != nil {
		return nil, err
	}
	httpClient := network.WithRateLimit(client, httpCfg.RateLimit, httpCfg.RateBurst)

	fetchCfg := cfg.Fetch()
	f := fetcher.New(httpClient, l,
		fetcher.WithUserAgent(fetchCfg.UserAgent),
		fetcher.WithHeaders(fetchCfg.Headers),
		fetcher.WithMaxBodySize(fetchCfg.MaxBodySize),
	)

	return &Container{
		Logger:     l,
		Cfg:        cfg,
		HttpClient: httpClient,
		Fetcher:    f,
	}, nil
}

package main

import (
	"log/slog"

	"github.com/yanqian/luan-api/internal/infra/config"
	"github.com/yanqian/luan-api/internal/infra/faqclient"
)

func provideFAQClientConfig(cfg *config.Config) faqclient.Config {
	return faqclient.Config{
		BaseURL:  cfg.Upstream.BaseURL,
		Endpoint: cfg.Upstream.FAQEndpoint,
		Timeout:  cfg.Upstream.Timeout,
	}
}

func provideFAQClient(cfg faqclient.Config, logger *slog.Logger) *faqclient.Client {
	logger.Info("faq upstream configured", "base_url", cfg.BaseURL, "endpoint", cfg.Endpoint, "timeout", cfg.Timeout)
	return faqclient.NewClient(cfg)
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/luan-api/internal/bootstrap"
	"github.com/yanqian/luan-api/internal/domain/faq"
	"github.com/yanqian/luan-api/internal/infra/config"
	"github.com/yanqian/luan-api/internal/infra/faqclient"
	httpiface "github.com/yanqian/luan-api/internal/interface/http"
	"github.com/yanqian/luan-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFAQClientConfig,
		provideFAQClient,
		wire.Bind(new(faq.Fetcher), new(*faqclient.Client)),
		faq.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

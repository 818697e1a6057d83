//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/naufalrizky/healthscan/internal/bootstrap"
	"github.com/naufalrizky/healthscan/internal/domain/diagnosis"
	"github.com/naufalrizky/healthscan/internal/domain/history"
	"github.com/naufalrizky/healthscan/internal/infra/config"
	httpiface "github.com/naufalrizky/healthscan/internal/interface/http"
	"github.com/naufalrizky/healthscan/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideDiagnosisConfig,
		provideHistoryConfig,
		provideTextGenerator,
		provideKVStore,
		provideCooldownGate,
		provideHistoryRepository,
		diagnosis.NewService,
		history.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"wsd/internal"
	"wsd/internal/controllers"
	"wsd/internal/providers"
	"wsd/internal/services"
	"wsd/internal/sources"
	"wsd/internal/structures"

	"wsd/internal/repository/postgres"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewDatabaseProvider,

		postgres.NewUserRepo,
		postgres.NewSubmissionRepo,
		postgres.NewMetricsRepo,

		sources.NewTimeseriesSource,
		sources.NewWarehouseSource,
		sources.NewRelationalSource,
		sources.NewDefaultSeriesChain,
		sources.NewDefaultContentChain,

		services.NewAuthService,
		services.NewSubmissionService,
		services.NewContentService,
		services.NewAnalyticsService,

		controllers.NewAuthController,
		controllers.NewSubmissionController,
		controllers.NewAnalyticsController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

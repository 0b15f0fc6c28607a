package main

import (
	"context"
	"log/slog"
	"os"

	"crm/config"
	"crm/internal/delivery"
	"crm/internal/delivery/http"
	"crm/internal/delivery/http/middleware"
	"crm/internal/delivery/http/router/handler"
	logs "crm/internal/infra/log"
	"crm/internal/infra/persistence/postgres"
	"crm/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Optional .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewAddressRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomerService,
			impl.NewAddressService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCustomerHandler,
			handler.NewAddressHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

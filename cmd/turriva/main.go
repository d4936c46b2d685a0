package main

import (
	"context"
	"log/slog"
	"os"

	"turriva/config"
	"turriva/internal/delivery"
	"turriva/internal/delivery/http"
	"turriva/internal/delivery/http/middleware"
	"turriva/internal/delivery/http/router/handler"
	"turriva/internal/infra/auth"
	"turriva/internal/infra/genai"
	logs "turriva/internal/infra/log"
	"turriva/internal/infra/memstore"
	"turriva/internal/infra/pubsub"
	"turriva/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		pubsub.NewInProcPublisher,
		memstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memstore.NewUserRepository,
			memstore.NewSessionRepository,
			memstore.NewDirectoryRepository,
			memstore.NewPortfolioRepository,
			memstore.NewStoreRepository,
			memstore.NewProductRepository,
			memstore.NewProjectRepository,
			memstore.NewLandRepository,
			memstore.NewPropertyRepository,
			memstore.NewContentRepository,
			memstore.NewGenerationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			genai.NewImageGenerator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewDirectoryService,
			impl.NewStudioService,
			impl.NewListingService,
			impl.NewContentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewStudioHandler,
			handler.NewDirectoryHandler,
			handler.NewShopHandler,
			handler.NewListingHandler,
			handler.NewContentHandler,
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

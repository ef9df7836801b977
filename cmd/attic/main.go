package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"attic/config"
	"attic/internal/delivery"
	"attic/internal/delivery/trigger"
	"attic/internal/delivery/trigger/handler"
	"attic/internal/domain/repository"
	"attic/internal/domain/service"
	"attic/internal/infra/feeds"
	logs "attic/internal/infra/log"
	"attic/internal/infra/persistence/postgres"
	"attic/internal/infra/push"
	"attic/internal/infra/pubsub"
	"attic/internal/usecase/impl"

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
		feeds.NewHTTPClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRecallRepository,
			postgres.NewRegistryRepository,
			postgres.NewMatchRepository,
			postgres.NewNotificationRepository,
			postgres.NewPushTargetRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		push.Module,
		pubsub.Module,
		fx.Provide(
			newFeedAdapters,
		),
	)
}

// newFeedAdapters assembles the feed adapters in their fan-out order.
func newFeedAdapters(
	logger *slog.Logger,
	client *http.Client,
	registryRepo repository.RegistryRepository,
	cfg *config.Config,
) []service.FeedAdapter {
	return []service.FeedAdapter{
		feeds.NewCPSCAdapter(client, cfg),
		feeds.NewFDAAdapter(logger, client, cfg),
		feeds.NewUSDAAdapter(client, cfg),
		feeds.NewNHTSAAdapter(logger, client, registryRepo, cfg),
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
			impl.NewIngestionService,
			impl.NewExpiryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewJobHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				trigger.NewServer,
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

//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"envios/internal/gateway/kafka/shipment_events"
	enviosGateway "envios/internal/gateway/rest/envios"
	destinations_get "envios/internal/handlers/rest/destinations_get"
	envio_delete "envios/internal/handlers/rest/envio_delete"
	envio_get "envios/internal/handlers/rest/envio_get"
	envio_history_get "envios/internal/handlers/rest/envio_history_get"
	envio_patch "envios/internal/handlers/rest/envio_patch"
	envio_post "envios/internal/handlers/rest/envio_post"
	envio_status_patch "envios/internal/handlers/rest/envio_status_patch"
	envios_get "envios/internal/handlers/rest/envios_get"
	login_post "envios/internal/handlers/rest/login_post"
	logout_post "envios/internal/handlers/rest/logout_post"
	progress_get "envios/internal/handlers/rest/progress_get"
	quote_get "envios/internal/handlers/rest/quote_get"
	register_post "envios/internal/handlers/rest/register_post"
	report_get "envios/internal/handlers/rest/report_get"
	"envios/internal/handlers/tasks/session_cleanup"
	"envios/internal/pkg/config"
	"envios/internal/pkg/factory/session_expiry"
	"envios/internal/pkg/middlewares/authentication"
	sessionRepo "envios/internal/repository/session"
	statusHistoryRepo "envios/internal/repository/status_history"
	authService "envios/internal/service/auth"
	historyService "envios/internal/service/history"
	"envios/internal/service/lifecycle"
	"envios/internal/service/pricing"
	shipmentService "envios/internal/service/shipment"
	"envios/pkg/background"
	"envios/pkg/inflight"
	"envios/pkg/logger"
	"envios/pkg/querier"
	"envios/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
)

type Application struct {
	ServiceAuth       ServiceAuth
	ServiceShipment   ServiceShipment
	BackgroundWorkers *background.Worker
}

type ServiceAuth interface {
	login_post.Service
	register_post.Service
	logout_post.Service
	authentication.SessionResolver
}

type ServiceShipment interface {
	quote_get.Service
	destinations_get.Service
	progress_get.Service
	envios_get.Service
	envio_get.Service
	envio_post.Service
	envio_patch.Service
	envio_status_patch.Service
	envio_delete.Service
	envio_history_get.Service
	report_get.Service
}

// InitializeApplication builds the HTTP service graph (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,

		provideSessionRepository,
		provideStatusHistoryRepository,

		provideEnviosGateway,
		provideEventPublisher,
		provideSessionExpiryFactory,
		provideLifecycleTracker,
		pricing.New,
		inflight.New,

		provideServiceAuth,
		provideServiceHistory,
		provideServiceShipment,

		provideSessionCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),

		wire.Bind(new(authService.Gateway), new(*enviosGateway.Gateway)),
		wire.Bind(new(authService.Repository), new(*sessionRepo.Repository)),
		wire.Bind(new(authService.ExpiryFactory), new(*session_expiry.SessionExpiryFactory)),
		wire.Bind(new(authService.TxManager), new(*tx.Manager)),

		wire.Bind(new(historyService.Repository), new(*statusHistoryRepo.Repository)),
		wire.Bind(new(historyService.TxManager), new(*tx.Manager)),

		wire.Bind(new(shipmentService.Gateway), new(*enviosGateway.Gateway)),
		wire.Bind(new(shipmentService.EventPublisher), new(*shipment_events.Publisher)),
		wire.Bind(new(shipmentService.HistoryReader), new(*historyService.History)),

		wire.Bind(new(session_cleanup.Service), new(*authService.Auth)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	HistoryService *historyService.History
}

// InitializeKafkaWorkerApp builds the status-change consumer graph (cmd/worker-shipment-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideStatusHistoryRepository,
		provideServiceHistory,

		wire.Bind(new(historyService.Repository), new(*statusHistoryRepo.Repository)),
		wire.Bind(new(historyService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideSessionRepository(querier *querier.Querier) *sessionRepo.Repository {
	return sessionRepo.New(querier)
}

func provideStatusHistoryRepository(querier *querier.Querier) *statusHistoryRepo.Repository {
	return statusHistoryRepo.New(querier)
}

func provideEnviosGateway(cfg *config.Config) *enviosGateway.Gateway {
	client := &http.Client{Timeout: cfg.EnviosAPI.Timeout}
	return enviosGateway.New(cfg.EnviosAPI.BaseURL, client)
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *shipment_events.Publisher {
	return shipment_events.New(producer, cfg.Kafka.Topic)
}

func provideSessionExpiryFactory(cfg *config.Config) *session_expiry.SessionExpiryFactory {
	return session_expiry.New(cfg.Sessions.UserTTL, cfg.Sessions.AdminTTL)
}

func provideLifecycleTracker(cfg *config.Config) (*lifecycle.Tracker, error) {
	policy, err := lifecycle.ParsePolicy(cfg.Lifecycle.TransitionPolicy)
	if err != nil {
		return nil, fmt.Errorf("lifecycle policy: %w", err)
	}
	return lifecycle.New(policy), nil
}

func provideServiceAuth(
	gateway authService.Gateway,
	repository authService.Repository,
	txManager authService.TxManager,
	expiryFactory authService.ExpiryFactory,
	guard *inflight.Guard,
) *authService.Auth {
	return authService.New(gateway, repository, txManager, expiryFactory, guard)
}

func provideServiceHistory(
	repository historyService.Repository,
	txManager historyService.TxManager,
) *historyService.History {
	return historyService.New(repository, txManager)
}

func provideServiceShipment(
	log logger.Logger,
	gateway shipmentService.Gateway,
	publisher shipmentService.EventPublisher,
	history shipmentService.HistoryReader,
	pricingEngine *pricing.Engine,
	tracker *lifecycle.Tracker,
	guard *inflight.Guard,
) *shipmentService.Shipment {
	return shipmentService.New(
		log.With(logger.NewField("service", "shipment")),
		gateway,
		publisher,
		history,
		pricingEngine,
		tracker,
		guard,
	)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.SessionCleanupInterval)
}

func provideSessionCleanupTask(
	log logger.Logger,
	service session_cleanup.Service,
	interval CleanupInterval,
) *session_cleanup.SessionCleanup {
	return session_cleanup.NewSessionCleanup(log, service, time.Duration(interval))
}

func provideTaskList(
	sessionCleanupTask *session_cleanup.SessionCleanup,
) []background.Task {
	return []background.Task{
		sessionCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

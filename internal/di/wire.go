//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	gomock "go.uber.org/mock/gomock"

	cache "github.com/pitchside/newsletter-service/internal/cache"
	"github.com/pitchside/newsletter-service/internal/clients"
	cfg "github.com/pitchside/newsletter-service/internal/config"
	"github.com/pitchside/newsletter-service/internal/consumers"
	"github.com/pitchside/newsletter-service/internal/controllers"
	"github.com/pitchside/newsletter-service/internal/dto"
	"github.com/pitchside/newsletter-service/internal/middleware"
	pub "github.com/pitchside/newsletter-service/internal/publish"
	pg "github.com/pitchside/newsletter-service/internal/registry/postgres"
	"github.com/pitchside/newsletter-service/internal/render"
	"github.com/pitchside/newsletter-service/internal/routes"
	"github.com/pitchside/newsletter-service/internal/sender"
	tcfg "github.com/pitchside/newsletter-service/internal/testutils/config"
	consumers_test "github.com/pitchside/newsletter-service/internal/testutils/consumers"
	c "github.com/pitchside/newsletter-service/internal/testutils/containers"
	mk "github.com/pitchside/newsletter-service/internal/testutils/mocks"
	"github.com/pitchside/newsletter-service/internal/worker"
	"github.com/pitchside/newsletter-service/pkg/deployments"
)

type MockedBackend struct {
	Registry  *mk.MockedRegistry
	Publisher *mk.MockPreviewPublisher
	Cache     *mk.MockCache
	Engine    *gin.Engine
}

type MockedWorkerScenario struct {
	Provider *mk.MockNewsletterInfoProvider
	Queue    *mk.MockQueueConsumer
	Sender   *mk.MockPreviewSender
	Renderer *mk.MockRenderer
	Worker   *worker.Worker
}

type RabbitMQWorker struct {
	Consumer *consumers.RabbitMQ
	Worker   *worker.Worker
}

type SQSWorker struct {
	Consumer *consumers.SQS
	Worker   *worker.Worker
}

type PgRabbitMQPreviewIntegrationTest struct {
	PostgresContainer *c.PostgresContainer
	RabbitMQContainer *c.RabbitMQPreview
	Registry          *pg.Registry
	Publisher         *pub.Preview
}

type PgSQSPreviewIntegrationTest struct {
	PostgresContainer *c.PostgresContainer
	SQSContainer      *c.SQSPreview
	Registry          *pg.Registry
	Publisher         *pub.Preview
}

var PostgresSet = wire.NewSet(
	pg.NewPostgresRegistry,
	wire.Bind(new(routes.Registry), new(*pg.Registry)),
	wire.Bind(new(controllers.NewsletterRegistry), new(*pg.Registry)),
	wire.Bind(new(controllers.BulkRegistry), new(*pg.Registry)),
)

var SQSPublisherSet = wire.NewSet(
	clients.NewSQSClient,
	pub.NewSQSPublisher,
	wire.Bind(new(pub.SQSAPI), new(*sqs.Client)),
	wire.Bind(new(pub.Publisher), new(*pub.SQS)),
)

var RabbitMQPublisherSet = wire.NewSet(
	clients.NewRabbitMQClient,
	pub.NewRabbitMQPublisher,
	wire.Bind(new(pub.RabbitMQAPI), new(*clients.RabbitMQ)),
	wire.Bind(new(pub.Publisher), new(*pub.RabbitMQ)),
)

var PreviewPublisherSet = wire.NewSet(
	wire.Struct(new(pub.PreviewPublisherCfg), "*"),
	pub.NewPreviewPublisher,
	wire.Bind(new(controllers.PreviewPublisher), new(*pub.Preview)),
)

var RedisSet = wire.NewSet(
	cache.NewRedisClient,
	wire.Bind(new(cache.CacheRedisApi), new(*redis.Client)),
)

var RedisCacheSet = wire.NewSet(
	cache.NewRedisCache,
	wire.Bind(new(cache.Cache), new(*cache.Redis)),
)

var MiddlewareSet = wire.NewSet(
	middleware.NewRedisLimiter,
	wire.Bind(new(middleware.RateLimiter), new(*redis_rate.Limiter)),
	wire.Struct(new(middleware.RateLimitCfg), "*"),
	wire.Struct(new(middleware.CacheCfg), "*"),
	middleware.NewAuthMiddleware,
	middleware.NewRateLimitMiddleware,
	middleware.NewCacheMiddleware,
	middleware.NewSecurityMiddleware,
	wire.Value(middleware.Authorize),
)

var EngineConfigSet = wire.NewSet(
	wire.Struct(new(routes.EngineConfig), "*"),
)

var NewsletterClientSet = wire.NewSet(
	clients.NewNewsletterClient,
	wire.Bind(new(worker.NewsletterInfoProvider), new(*clients.NewsletterClient)),
)

var MarkdownRendererSet = wire.NewSet(
	render.NewMarkdown,
	wire.Bind(new(worker.Renderer), new(*render.Markdown)),
)

var SMTPSenderSet = wire.NewSet(
	ProvideSMTPConfig,
	sender.NewSMTP,
	wire.Bind(new(worker.PreviewSender), new(*sender.SMTP)),
)

var RabbitMQConsumerSet = wire.NewSet(
	wire.Bind(new(consumers.RabbitMQAPI), new(*clients.RabbitMQ)),
	wire.Struct(new(consumers.RabbitMQCfg), "*"),
	consumers.NewRabbitMQConsumer,
)

var SQSConsumerSet = wire.NewSet(
	ProvideSQSQueueCfg,
	wire.Bind(new(consumers.SQSAPI), new(*sqs.Client)),
	wire.Struct(new(consumers.SQSCfg), "*"),
	consumers.NewSQSConsumer,
)

var WorkerSet = wire.NewSet(
	wire.Struct(new(worker.WorkerCfg), "*"),
	worker.NewWorker,
)

var PostgresContainerSet = wire.NewSet(
	c.NewPostgresContainer,
	wire.Bind(new(clients.PostgresConfigurator), new(*c.PostgresContainer)),
)

var RedisContainerSet = wire.NewSet(
	c.NewRedisContainer,
	wire.Bind(new(cache.RedisConfigurator), new(*c.RedisContainer)),
)

var RabbitMQPreviewContainerSet = wire.NewSet(
	c.NewRabbitMQPreviewContainer,
	wire.Bind(new(clients.RabbitMQConfigurator), new(*c.RabbitMQPreview)),
	wire.Bind(new(pub.PreviewQueueConfigurator), new(*c.RabbitMQPreview)),
)

var SQSPreviewContainerSet = wire.NewSet(
	c.NewSQSPreviewContainer,
	wire.Bind(new(clients.SQSConfigurator), new(*c.SQSPreview)),
	wire.Bind(new(pub.PreviewQueueConfigurator), new(*c.SQSPreview)),
	wire.Bind(new(consumers.SQSQueueConfigurator), new(*c.SQSPreview)),
)

var MockedNewsletterRegistrySet = wire.NewSet(
	mk.NewMockNewsletterRegistry,
	wire.Bind(new(controllers.NewsletterRegistry), new(*mk.MockNewsletterRegistry)),
)

var MockedBulkRegistrySet = wire.NewSet(
	mk.NewMockBulkRegistry,
	wire.Bind(new(controllers.BulkRegistry), new(*mk.MockBulkRegistry)),
)

var MockedRegistrySet = wire.NewSet(
	MockedNewsletterRegistrySet,
	MockedBulkRegistrySet,
	mk.NewMockedRegistry,
	wire.Bind(new(routes.Registry), new(*mk.MockedRegistry)),
)

var MockedPublisherSet = wire.NewSet(
	mk.NewMockPreviewPublisher,
	wire.Bind(new(controllers.PreviewPublisher), new(*mk.MockPreviewPublisher)),
)

var MockedCacheSet = wire.NewSet(
	mk.NewMockCache,
	wire.Bind(new(cache.Cache), new(*mk.MockCache)),
)

var MockedMiddlewareSet = wire.NewSet(
	mk.NewTestAuthMiddleware,
	mk.NewTestRateLimitMiddleware,
	mk.NewTestCacheMiddleware,
	mk.NewTestSecurityMiddleware,
	wire.Value(mk.TestAuthorize),
)

var MockedNewsletterInfoProviderSet = wire.NewSet(
	mk.NewMockNewsletterInfoProvider,
	wire.Bind(new(worker.NewsletterInfoProvider), new(*mk.MockNewsletterInfoProvider)),
)

var MockedQueueConsumerSet = wire.NewSet(
	mk.NewMockQueueConsumer,
	wire.Bind(new(worker.QueueConsumer), new(*mk.MockQueueConsumer)),
)

var MockedPreviewSenderSet = wire.NewSet(
	mk.NewMockPreviewSender,
	wire.Bind(new(worker.PreviewSender), new(*mk.MockPreviewSender)),
)

var MockedRendererSet = wire.NewSet(
	mk.NewMockRenderer,
	wire.Bind(new(worker.Renderer), new(*mk.MockRenderer)),
)

var TestVersionConfiguratorSet = wire.NewSet(
	tcfg.NewTestVersionConfigurator,
	wire.Bind(new(routes.EngineConfigurator), new(tcfg.TestEngineConfigurator)),
)

var TestRecipientConfiguratorSet = wire.NewSet(
	tcfg.NewTestRecipientConfigurator,
	wire.Bind(new(worker.RecipientConfigurator), new(tcfg.TestRecipientConfigurator)),
)

var EnvConfigSet = wire.NewSet(
	cfg.NewEnvConfig,
	wire.Bind(new(clients.PostgresConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(clients.RabbitMQConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(clients.SQSConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(clients.ServiceClientConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(pub.PreviewQueueConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(pub.RabbitMQPreviewConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(pub.SQSPreviewConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(cache.RedisConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(routes.EngineConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(middleware.AuthConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(middleware.CacheConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(middleware.RateLimitConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(middleware.SecurityConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(consumers.SQSQueueConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(sender.SMTPConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(worker.RecipientConfigurator), new(*cfg.EnvConfig)),
)

func InjectPgRabbitMQ(envfile *string) (*gin.Engine, func(), error) {

	wire.Build(
		EnvConfigSet,
		PostgresSet,
		RabbitMQPublisherSet,
		PreviewPublisherSet,
		RedisSet,
		RedisCacheSet,
		MiddlewareSet,
		EngineConfigSet,
		routes.NewEngine,
	)

	return nil, nil, nil
}

func InjectPgSQS(envfile *string) (*gin.Engine, error) {

	wire.Build(
		EnvConfigSet,
		PostgresSet,
		SQSPublisherSet,
		PreviewPublisherSet,
		RedisSet,
		RedisCacheSet,
		MiddlewareSet,
		EngineConfigSet,
		routes.NewEngine,
	)

	return nil, nil
}

func InjectMockedBackend(ctx context.Context, mockController *gomock.Controller) (*MockedBackend, error) {

	wire.Build(
		TestVersionConfiguratorSet,
		MockedRegistrySet,
		MockedPublisherSet,
		MockedCacheSet,
		MockedMiddlewareSet,
		EngineConfigSet,
		routes.NewEngine,
		wire.Struct(new(MockedBackend), "*"),
	)

	return nil, nil
}

func InjectPgRabbitMQPreviewIntegrationTest(ctx context.Context) (*PgRabbitMQPreviewIntegrationTest, func(), error) {

	wire.Build(
		PostgresContainerSet,
		RabbitMQPreviewContainerSet,
		PostgresSet,
		RabbitMQPublisherSet,
		PreviewPublisherSet,
		wire.Struct(new(PgRabbitMQPreviewIntegrationTest), "*"),
	)

	return nil, nil, nil
}

func InjectPgSQSPreviewIntegrationTest(ctx context.Context) (*PgSQSPreviewIntegrationTest, func(), error) {

	wire.Build(
		PostgresContainerSet,
		SQSPreviewContainerSet,
		PostgresSet,
		SQSPublisherSet,
		PreviewPublisherSet,
		wire.Struct(new(PgSQSPreviewIntegrationTest), "*"),
	)

	return nil, nil, nil
}

func InjectRabbitMQWorker(envfile *string, previewChan chan dto.PreviewMsg) (*RabbitMQWorker, func(), error) {

	wire.Build(
		EnvConfigSet,
		clients.NewRabbitMQClient,
		ProvideConsumerQueue,
		ProvidePreviewSink,
		ProvidePreviewSource,
		RabbitMQConsumerSet,
		wire.Bind(new(worker.QueueConsumer), new(*consumers.RabbitMQ)),
		NewsletterClientSet,
		MarkdownRendererSet,
		SMTPSenderSet,
		WorkerSet,
		wire.Struct(new(RabbitMQWorker), "*"),
	)

	return nil, nil, nil
}

func InjectSQSWorker(envfile *string, previewChan chan dto.PreviewMsg) (*SQSWorker, error) {

	wire.Build(
		EnvConfigSet,
		clients.NewSQSClient,
		ProvidePreviewSink,
		ProvidePreviewSource,
		SQSConsumerSet,
		wire.Bind(new(worker.QueueConsumer), new(*consumers.SQS)),
		NewsletterClientSet,
		MarkdownRendererSet,
		SMTPSenderSet,
		WorkerSet,
		wire.Struct(new(SQSWorker), "*"),
	)

	return nil, nil
}

func InjectMockedWorkerScenario(ctx context.Context, mockController *gomock.Controller, previewChan <-chan dto.PreviewMsg) (*MockedWorkerScenario, error) {

	wire.Build(
		MockedNewsletterInfoProviderSet,
		MockedQueueConsumerSet,
		MockedPreviewSenderSet,
		MockedRendererSet,
		TestRecipientConfiguratorSet,
		WorkerSet,
		wire.Struct(new(MockedWorkerScenario), "*"),
	)

	return nil, nil
}

func InjectRabbitMQConsumerIntegrationTest(ctx context.Context, previewChan chan<- dto.PreviewMsg) (*consumers_test.RabbitMQ, func(), error) {

	wire.Build(
		c.NewRabbitMQPreviewContainer,
		wire.FieldsOf(new(*c.RabbitMQPreview), "Queue"),
		wire.Bind(new(clients.RabbitMQConfigurator), new(*c.RabbitMQPreview)),
		clients.NewRabbitMQClient,
		wire.Bind(new(consumers.RabbitMQAPI), new(*clients.RabbitMQ)),
		wire.Struct(new(consumers.RabbitMQCfg), "*"),
		wire.Struct(new(consumers_test.RabbitMQCfg), "*"),
		consumers_test.NewRabbitMQConsumerTest,
	)

	return nil, nil, nil
}

func InjectSQSConsumerIntegrationTest(ctx context.Context, previewChan chan<- dto.PreviewMsg) (*consumers_test.SQS, func(), error) {

	wire.Build(
		c.NewSQSPreviewContainer,
		wire.Bind(new(clients.SQSConfigurator), new(*c.SQSPreview)),
		wire.Bind(new(consumers.SQSQueueConfigurator), new(*c.SQSPreview)),
		clients.NewSQSClient,
		ProvideSQSQueueCfg,
		wire.Bind(new(consumers.SQSAPI), new(*sqs.Client)),
		wire.Struct(new(consumers.SQSCfg), "*"),
		wire.Struct(new(consumers_test.SQSCfg), "*"),
		consumers_test.NewSQSConsumerTest,
	)

	return nil, nil, nil
}

func InjectRabbitMQPreviewDeployer(envfile *string) (*deployments.RabbitMQPreviewDeployer, func(), error) {

	wire.Build(
		EnvConfigSet,
		deployments.NewRabbitMQPreviewDeployer,
	)

	return nil, nil, nil
}

func InjectSQSPreviewDeployer(envfile *string) (*deployments.SQSPreviewDeployer, error) {

	wire.Build(
		EnvConfigSet,
		deployments.NewSQSPreviewDeployer,
	)

	return nil, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/pitchside/newsletter-service/internal/clients"
	"github.com/pitchside/newsletter-service/internal/consumers"
	"github.com/pitchside/newsletter-service/internal/review"
	"github.com/pitchside/newsletter-service/internal/sender"
)

const (
	postgresUrl          = "POSTGRES_URL"
	rabbitMqUrl          = "RABBITMQ_URL"
	sqsBaseEndpoint      = "SQS_BASE_ENDPOINT"
	sqsRegion            = "SQS_REGION"
	redisUrl             = "REDIS_URL"
	apiVersion           = "API_VERSION"
	expectedHost         = "EXPECTED_HOST"
	requestsPerSecond    = "REQUESTS_PER_SECOND"
	cacheTTLInSeconds    = "CACHE_TTL_IN_SECONDS"
	jwksUrl              = "JWKS_URL"
	brokerEngine         = "BROKER_ENGINE"
	previewQueue         = "PREVIEW_QUEUE"
	consumerQueue        = "CONSUMER_QUEUE"
	sqsMaxMessages       = "SQS_MAX_NUMBER_OF_MESSAGES"
	sqsWaitTimeSeconds   = "SQS_WAIT_TIME_SECONDS"
	smtpHost             = "SMTP_HOST"
	smtpPort             = "SMTP_PORT"
	smtpUsername         = "SMTP_USERNAME"
	smtpPassword         = "SMTP_PASSWORD"
	smtpFrom             = "SMTP_FROM"
	previewRecipient     = "PREVIEW_RECIPIENT"
	serviceUrl           = "SERVICE_URL"
	serviceToken         = "SERVICE_TOKEN"
	reviewModalMinWidth  = "REVIEW_MODAL_MIN_WIDTH"
	reviewModalMinHeight = "REVIEW_MODAL_MIN_HEIGHT"
	reviewModalMaxWidth  = "REVIEW_MODAL_MAX_WIDTH"
	reviewModalMaxHeight = "REVIEW_MODAL_MAX_HEIGHT"
)

type BrokerEngine string

const (
	RabbitMQEngine BrokerEngine = "rabbitmq"
	SQSEngine      BrokerEngine = "sqs"
)

type EnvConfig struct{}

func (cfg EnvConfig) GetPostgresUrl() (string, error) {

	url, ok := os.LookupEnv(postgresUrl)

	if !ok {
		return "", fmt.Errorf("postgres env variable %s not set", postgresUrl)
	}

	return url, nil
}

func (cfg EnvConfig) GetRabbitMQUrl() (string, error) {
	url, ok := os.LookupEnv(rabbitMqUrl)

	if !ok {
		return "", fmt.Errorf("rabbitmq url env variable %s not found", rabbitMqUrl)
	}

	return url, nil
}

func (cfg EnvConfig) GetSQSClientConfig() (sqsCfg clients.SQSClientConfig) {

	if be, ok := os.LookupEnv(sqsBaseEndpoint); ok {
		sqsCfg.BaseEndpoint = &be
	}

	if region, ok := os.LookupEnv(sqsRegion); ok {
		sqsCfg.Region = &region
	}

	return
}

func (cfg EnvConfig) GetRedisUrl() (string, error) {

	url, ok := os.LookupEnv(redisUrl)

	if !ok {
		return "", fmt.Errorf("redis url %s not set", redisUrl)
	}

	return url, nil
}

func (cfg EnvConfig) GetVersion() (string, error) {
	version, ok := os.LookupEnv(apiVersion)

	if !ok {
		return "", fmt.Errorf("api version env variable %s not found", apiVersion)
	}

	return version, nil
}

func (cfg EnvConfig) GetExpectedHost() *string {

	host, ok := os.LookupEnv(expectedHost)

	if !ok {
		return nil
	}

	return &host
}

func (cfg EnvConfig) GetRequestsPerSecond() (int, error) {

	rps, ok := os.LookupEnv(requestsPerSecond)

	if !ok {
		return 0, fmt.Errorf("requests per second env variable %s not found", requestsPerSecond)
	}

	rpsInt, err := strconv.Atoi(rps)

	if err != nil {
		return 0, fmt.Errorf("failed to parse requests per second to int - %w", err)
	}

	return rpsInt, nil
}

func (cfg EnvConfig) GetTTL() (time.Duration, error) {

	ttl, ok := os.LookupEnv(cacheTTLInSeconds)

	if !ok {
		return 0, fmt.Errorf("cache ttl env variable %s not found", cacheTTLInSeconds)
	}

	ttlInt, err := strconv.Atoi(ttl)

	if err != nil {
		return 0, fmt.Errorf("failed to parse cache ttl to int - %w", err)
	}

	return time.Duration(ttlInt) * time.Second, nil
}

func (cfg EnvConfig) GetJWKSURL() (string, error) {

	jwks, ok := os.LookupEnv(jwksUrl)

	if !ok {
		return "", fmt.Errorf("jwks url env variable %s not found", jwksUrl)
	}

	return jwks, nil
}

func (cfg EnvConfig) GetBrokerEngine() (BrokerEngine, error) {

	engine, ok := os.LookupEnv(brokerEngine)

	if !ok {
		return "", fmt.Errorf("broker engine env variable %s not found", brokerEngine)
	}

	switch BrokerEngine(engine) {
	case RabbitMQEngine, SQSEngine:
		return BrokerEngine(engine), nil
	}

	return "", fmt.Errorf("unknown broker engine %s", engine)
}

// GetPreviewQueue returns the preview queue address. The value is a
// queue name under RabbitMQ and a queue url under SQS.
func (cfg EnvConfig) GetPreviewQueue() (string, error) {

	queue, ok := os.LookupEnv(previewQueue)

	if !ok {
		return "", fmt.Errorf("preview queue env variable %s not found", previewQueue)
	}

	return queue, nil
}

func (cfg EnvConfig) GetQueue() (consumers.RabbitMQQueue, error) {

	queue, ok := os.LookupEnv(consumerQueue)

	if !ok {
		return "", fmt.Errorf("consumer queue %s not set", consumerQueue)
	}

	return consumers.RabbitMQQueue(queue), nil
}

func (cfg EnvConfig) GetSQSQueueCfg() (consumers.SQSQueueCfg, error) {

	queueCfg := consumers.SQSQueueCfg{
		MaxNumberOfMessages: 10,
		WaitTimeSeconds:     20,
	}

	queueUrl, ok := os.LookupEnv(consumerQueue)

	if !ok {
		return queueCfg, fmt.Errorf("consumer queue %s not set", consumerQueue)
	}

	queueCfg.QueueURL = queueUrl

	if raw, ok := os.LookupEnv(sqsMaxMessages); ok {
		maxMessages, err := strconv.Atoi(raw)

		if err != nil {
			return queueCfg, fmt.Errorf("failed to parse max number of messages - %w", err)
		}

		queueCfg.MaxNumberOfMessages = int32(maxMessages)
	}

	if raw, ok := os.LookupEnv(sqsWaitTimeSeconds); ok {
		waitTime, err := strconv.Atoi(raw)

		if err != nil {
			return queueCfg, fmt.Errorf("failed to parse wait time - %w", err)
		}

		queueCfg.WaitTimeSeconds = int32(waitTime)
	}

	return queueCfg, nil
}

func (cfg EnvConfig) GetSMTPConfig() (sender.SMTPConfig, error) {

	smtpCfg := sender.SMTPConfig{}

	host, ok := os.LookupEnv(smtpHost)

	if !ok {
		return smtpCfg, fmt.Errorf("smtp host env variable %s not found", smtpHost)
	}

	portStr, ok := os.LookupEnv(smtpPort)

	if !ok {
		return smtpCfg, fmt.Errorf("smtp port env variable %s not found", smtpPort)
	}

	port, err := strconv.Atoi(portStr)

	if err != nil {
		return smtpCfg, fmt.Errorf("failed to parse smtp port to int - %w", err)
	}

	from, ok := os.LookupEnv(smtpFrom)

	if !ok {
		return smtpCfg, fmt.Errorf("smtp from env variable %s not found", smtpFrom)
	}

	smtpCfg.Host = host
	smtpCfg.Port = port
	smtpCfg.From = from

	if username, ok := os.LookupEnv(smtpUsername); ok {
		smtpCfg.Username = username
	}

	if password, ok := os.LookupEnv(smtpPassword); ok {
		smtpCfg.Password = password
	}

	return smtpCfg, nil
}

func (cfg EnvConfig) GetPreviewRecipient() (string, error) {

	recipient, ok := os.LookupEnv(previewRecipient)

	if !ok {
		return "", fmt.Errorf("preview recipient env variable %s not found", previewRecipient)
	}

	return recipient, nil
}

func (cfg EnvConfig) GetServiceClientCfg() (clients.ServiceClientCfg, error) {

	clientCfg := clients.ServiceClientCfg{}

	url, ok := os.LookupEnv(serviceUrl)

	if !ok {
		return clientCfg, fmt.Errorf("service url env variable %s not found", serviceUrl)
	}

	token, ok := os.LookupEnv(serviceToken)

	if !ok {
		return clientCfg, fmt.Errorf("service token env variable %s not found", serviceToken)
	}

	clientCfg.BaseUrl = url
	clientCfg.Token = token

	return clientCfg, nil
}

func (cfg EnvConfig) GetReviewModalOverrides() review.SizingOverrides {

	intOrNil := func(key string) *int {
		raw, ok := os.LookupEnv(key)

		if !ok {
			return nil
		}

		value, err := strconv.Atoi(raw)

		if err != nil {
			return nil
		}

		return &value
	}

	return review.SizingOverrides{
		MinWidth:  intOrNil(reviewModalMinWidth),
		MinHeight: intOrNil(reviewModalMinHeight),
		MaxWidth:  intOrNil(reviewModalMaxWidth),
		MaxHeight: intOrNil(reviewModalMaxHeight),
	}
}

func NewEnvConfig(envFile *string) (*EnvConfig, error) {

	if envFile == nil {
		cfg := EnvConfig{}
		return &cfg, nil
	}

	err := godotenv.Load(*envFile)

	if err != nil {
		return nil, fmt.Errorf("failed to load env file %s - %w", *envFile, err)
	}

	cfg := EnvConfig{}
	return &cfg, nil
}

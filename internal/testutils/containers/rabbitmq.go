package containers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"

	"github.com/pitchside/newsletter-service/internal/consumers"
	"github.com/pitchside/newsletter-service/pkg/deployments"
)

const PreviewQueue = "newsletter-previews-test"

type RabbitMQ struct {
	testcontainers.Container
	URI string
}

func (rc *RabbitMQ) GetRabbitMQUrl() (string, error) {
	return rc.URI, nil
}

func NewRabbitMQContainer(ctx context.Context) (*RabbitMQ, func(), error) {

	port := "5672"
	userName := "admin"
	password := "password"

	container, err := rabbitmq.RunContainer(ctx,
		testcontainers.WithImage("rabbitmq:3.13.3"),
		rabbitmq.WithAdminUsername(userName),
		rabbitmq.WithAdminPassword(password),
	)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create rabbitmq container - %w", err)
	}

	ip, err := container.Host(ctx)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to get the rabbitmq host - %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, nat.Port(port))

	if err != nil {
		return nil, nil, err
	}

	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", userName, password, ip, mappedPort.Port())

	close := func() {
		err := container.Terminate(ctx)

		if err != nil {
			slog.Error("failed to terminate rabbitmq container", "reason", err)
		}
	}

	rc := RabbitMQ{
		Container: container,
		URI:       uri,
	}

	return &rc, close, nil
}

// RabbitMQPreview is a rabbitmq container with the preview queue already
// declared, ready to back publisher and consumer tests.
type RabbitMQPreview struct {
	*RabbitMQ
	Queue consumers.RabbitMQQueue
}

func (rc *RabbitMQPreview) GetPreviewQueue() (string, error) {
	return string(rc.Queue), nil
}

func NewRabbitMQPreviewContainer(ctx context.Context) (*RabbitMQPreview, func(), error) {

	container, close, err := NewRabbitMQContainer(ctx)

	if err != nil {
		return nil, nil, err
	}

	pc := RabbitMQPreview{
		RabbitMQ: container,
		Queue:    PreviewQueue,
	}

	deployer, closeDeployer, err := deployments.NewRabbitMQPreviewDeployer(&pc)

	if err != nil {
		return nil, close, fmt.Errorf("failed to make rabbitmq deployer - %w", err)
	}

	defer closeDeployer()

	if err := deployer.Deploy(); err != nil {
		return nil, close, fmt.Errorf("failed to deploy preview queue - %w", err)
	}

	return &pc, close, nil
}

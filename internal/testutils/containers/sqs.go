package containers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"

	"github.com/pitchside/newsletter-service/internal/clients"
	"github.com/pitchside/newsletter-service/internal/consumers"
	"github.com/pitchside/newsletter-service/pkg/deployments"
)

type SQS struct {
	testcontainers.Container
	URI string
}

func (sc *SQS) GetSQSClientConfig() clients.SQSClientConfig {
	return clients.SQSClientConfig{
		BaseEndpoint: &sc.URI,
	}
}

func NewSQSContainer(ctx context.Context) (*SQS, func(), error) {

	port := "4566"

	container, err := localstack.RunContainer(
		ctx,
		testcontainers.WithImage("localstack/localstack:3.4"),
		testcontainers.WithEnv(map[string]string{
			"SERVICES": "sqs",
		}),
	)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sqs container - %w", err)
	}

	ip, err := container.Host(ctx)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to get the sqs host - %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, nat.Port(port))

	if err != nil {
		return nil, nil, err
	}

	uri := fmt.Sprintf("http://%s:%s", ip, mappedPort.Port())

	close := func() {
		err := container.Terminate(ctx)

		if err != nil {
			slog.Error("failed to terminate sqs container", "reason", err)
		}
	}

	sc := SQS{
		Container: container,
		URI:       uri,
	}

	return &sc, close, nil
}

// SQSPreview is a localstack container with the preview queue deployed.
// Queue holds the queue name until Deploy resolves it to the queue url,
// which is what the publisher and consumer address messages with.
type SQSPreview struct {
	*SQS
	Queue string
}

func (sc *SQSPreview) GetPreviewQueue() (string, error) {
	return sc.Queue, nil
}

func (sc *SQSPreview) GetSQSQueueCfg() (consumers.SQSQueueCfg, error) {
	return consumers.SQSQueueCfg{
		QueueURL:            sc.Queue,
		MaxNumberOfMessages: 1,
		WaitTimeSeconds:     1,
	}, nil
}

func NewSQSPreviewContainer(ctx context.Context) (*SQSPreview, func(), error) {

	container, close, err := NewSQSContainer(ctx)

	if err != nil {
		return nil, nil, err
	}

	pc := SQSPreview{
		SQS:   container,
		Queue: PreviewQueue,
	}

	deployer, err := deployments.NewSQSPreviewDeployer(&pc)

	if err != nil {
		return nil, close, err
	}

	queueURL, err := deployer.Deploy()

	if err != nil {
		return nil, close, fmt.Errorf("failed to deploy preview queue - %w", err)
	}

	pc.Queue = queueURL

	return &pc, close, nil
}

package containers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisContainer struct {
	testcontainers.Container
	URI string
}

func (rc *RedisContainer) GetRedisUrl() (string, error) {
	return rc.URI, nil
}

func NewRedisContainer(ctx context.Context) (*RedisContainer, func(), error) {

	port := "6379"

	req := testcontainers.ContainerRequest{
		Image:      "redis:7.2",
		WaitingFor: wait.ForExposedPort(),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	if err != nil {
		return nil, nil, fmt.Errorf("failed to init the redis container - %w", err)
	}

	ip, err := container.Host(ctx)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to get the redis host - %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, nat.Port(port))

	if err != nil {
		return nil, nil, fmt.Errorf("failed to acquire mapped port - %w", err)
	}

	uri := fmt.Sprintf("redis://%s:%s", ip, mappedPort.Port())

	close := func() {
		err := container.Terminate(ctx)

		if err != nil {
			slog.Error("failed to terminate redis container", "reason", err)
		}
	}

	rc := RedisContainer{
		Container: container,
		URI:       uri,
	}

	return &rc, close, nil
}

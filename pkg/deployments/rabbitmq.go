package deployments

import (
	"fmt"

	"github.com/pitchside/newsletter-service/internal/clients"
	"github.com/pitchside/newsletter-service/internal/publish"
)

type RabbitMQDeployer interface {
	Deploy() error
}

type RabbitMQPreviewDeployer struct {
	Client clients.RabbitMQ
	Queue  string
}

func (d *RabbitMQPreviewDeployer) Deploy() error {
	return createRabbitMQQueue(d.Client, d.Queue)
}

func createRabbitMQQueue(client clients.RabbitMQ, name string) error {

	_, err := client.QueueDeclare(
		name,  // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)

	if err != nil {
		return fmt.Errorf("failed to create queue %s - %w", name, err)
	}

	return nil
}

func NewRabbitMQPreviewDeployer(c publish.RabbitMQPreviewConfigurator) (*RabbitMQPreviewDeployer, func(), error) {

	client, close, err := clients.NewRabbitMQClient(c)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create rabbitmq client - %w", err)
	}

	queue, err := c.GetPreviewQueue()

	if err != nil {
		return nil, nil, err
	}

	deployer := RabbitMQPreviewDeployer{
		Client: *client,
		Queue:  queue,
	}

	return &deployer, func() { close() }, nil
}

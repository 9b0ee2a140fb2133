package main

import (
	"log"

	"github.com/pitchside/newsletter-service/internal/di"
)

func main() {

	env := "./config/local.env"
	deployer, cleanup, err := di.InjectRabbitMQPreviewDeployer(&env)

	if err != nil {
		log.Fatalf("failed to create deployment - %v", err)
	}

	defer cleanup()

	err = deployer.Deploy()

	if err != nil {
		log.Fatalf("failed to deploy queues - %v", err)
	}

	log.Print("queues deployed")
}

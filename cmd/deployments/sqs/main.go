package main

import (
	"log"

	"github.com/pitchside/newsletter-service/internal/di"
)

func main() {

	env := "./config/local.env"
	deployer, err := di.InjectSQSPreviewDeployer(&env)

	if err != nil {
		log.Fatalf("failed to create deployment - %v", err)
	}

	_, err = deployer.Deploy()

	if err != nil {
		log.Fatalf("failed to deploy queues - %v", err)
	}

	log.Println("queues created!")
}

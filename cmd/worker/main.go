package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	cfg "github.com/pitchside/newsletter-service/internal/config"
	"github.com/pitchside/newsletter-service/internal/di"
	"github.com/pitchside/newsletter-service/internal/dto"
)

func main() {

	env := "./config/local.env"
	loader, err := cfg.NewEnvConfig(&env)

	if err != nil {
		log.Fatal(err)
	}

	broker, err := loader.GetBrokerEngine()

	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	previewChan := make(chan dto.PreviewMsg)

	switch broker {
	case cfg.RabbitMQEngine:
		w, cleanup, err := di.InjectRabbitMQWorker(&env, previewChan)

		if err != nil {
			log.Fatalf("failed to create the worker - %v", err)
		}

		defer cleanup()

		go w.Consumer.Start(ctx)
		w.Worker.Start(ctx)
	case cfg.SQSEngine:
		w, err := di.InjectSQSWorker(&env, previewChan)

		if err != nil {
			log.Fatalf("failed to create the worker - %v", err)
		}

		go w.Consumer.Start(ctx)
		w.Worker.Start(ctx)
	}

	log.Println("worker stopped")
}

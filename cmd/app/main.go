package main

import (
	"log"

	"github.com/gin-gonic/gin"
	cfg "github.com/pitchside/newsletter-service/internal/config"
	"github.com/pitchside/newsletter-service/internal/di"
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

	var r *gin.Engine

	switch broker {
	case cfg.RabbitMQEngine:
		engine, cleanup, err := di.InjectPgRabbitMQ(&env)

		if err != nil {
			log.Fatalf("failed to create the app - %v", err)
		}

		defer cleanup()
		r = engine
	case cfg.SQSEngine:
		engine, err := di.InjectPgSQS(&env)

		if err != nil {
			log.Fatalf("failed to create the app - %v", err)
		}

		r = engine
	}

	r.Run() // listen and serve on 0.0.0.0:8080
}

package routes

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pitchside/newsletter-service/internal"
	"github.com/pitchside/newsletter-service/internal/auth"
	"github.com/pitchside/newsletter-service/internal/cache"
	"github.com/pitchside/newsletter-service/internal/controllers"
	"github.com/pitchside/newsletter-service/internal/middleware"
)

const versionRegex = "(/v[0-9]{1,2}|^$)"

type Registry interface {
	controllers.NewsletterRegistry
	controllers.BulkRegistry
}

type EngineConfigurator interface {
	GetVersion() (string, error)
	controllers.ReviewConfigurator
}

type EngineConfig struct {
	Registry           Registry
	Cache              cache.Cache
	Publisher          controllers.PreviewPublisher
	EngineConfigurator EngineConfigurator
	Authorize          func(...auth.Scope) gin.HandlerFunc
	Authenticate       middleware.AuthMiddleware
	RateLimit          middleware.RateLimitMiddleware
	CacheMiddleware    middleware.CacheMiddleware
	SecurityMiddleware middleware.SecurityMiddleware
}

type routeGroupCfg struct {
	Engine              *gin.Engine
	Version             string
	CacheMiddleware     gin.HandlerFunc
	AuthorizeMiddleware func(...auth.Scope) gin.HandlerFunc
}

func NewEngine(cfg EngineConfig) (*gin.Engine, error) {

	version, err := cfg.EngineConfigurator.GetVersion()

	if err != nil {
		return nil, err
	}

	match, _ := regexp.MatchString(versionRegex, version)

	if !match {
		return nil, fmt.Errorf("api version should have the format %s", versionRegex)
	}

	nc := controllers.NewsletterController{
		Registry: cfg.Registry,
		Cache:    cfg.Cache,
	}

	bc := controllers.BulkController{
		Registry:     cfg.Registry,
		Publisher:    cfg.Publisher,
		Cache:        cfg.Cache,
		Configurator: cfg.EngineConfigurator,
	}

	r := gin.Default()

	r.Use(gin.Recovery())
	r.Use(gin.HandlerFunc(cfg.SecurityMiddleware))
	r.Use(gin.HandlerFunc(cfg.Authenticate))
	r.Use(gin.HandlerFunc(cfg.RateLimit))

	routesCfg := routeGroupCfg{
		Engine:              r,
		Version:             version,
		CacheMiddleware:     gin.HandlerFunc(cfg.CacheMiddleware),
		AuthorizeMiddleware: cfg.Authorize,
	}

	_ = SetupNewsletterRoutes(newslettersRoutesCfg{
		routeGroupCfg: routesCfg,
		Controller:    &nc,
	})

	_ = SetupBulkRoutes(bulkRoutesCfg{
		routeGroupCfg: routesCfg,
		Controller:    &bc,
	})

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("topicname", internal.TopicNameValidator)
	}

	return r, nil
}

package routes

import (
	"github.com/pitchside/newsletter-service/internal/auth"
	c "github.com/pitchside/newsletter-service/internal/controllers"
)

type newslettersRoutesCfg struct {
	routeGroupCfg
	Controller *c.NewsletterController
}

func SetupNewsletterRoutes(cfg newslettersRoutesCfg) error {

	g := cfg.Engine.Group(cfg.Version, cfg.CacheMiddleware)
	{
		g.GET("/newsletters",
			cfg.AuthorizeMiddleware(auth.Admin),
			cfg.Controller.GetNewsletters)

		g.POST("/newsletters",
			cfg.AuthorizeMiddleware(auth.Editor),
			cfg.Controller.CreateNewsletter)

		g.GET("/newsletters/:id",
			cfg.AuthorizeMiddleware(auth.Admin),
			cfg.Controller.GetNewsletter)

		g.PUT("/newsletters/:id",
			cfg.AuthorizeMiddleware(auth.Editor),
			cfg.Controller.UpdateNewsletter)

		g.PATCH("/newsletters/:id/status",
			cfg.AuthorizeMiddleware(auth.Editor),
			cfg.Controller.UpdateStatus)

		g.DELETE("/newsletters/:id",
			cfg.AuthorizeMiddleware(auth.Admin),
			cfg.Controller.DeleteNewsletter)

		g.GET("/newsletters/:id/status-log",
			cfg.AuthorizeMiddleware(auth.Admin),
			cfg.Controller.GetStatusLog)
	}

	return nil
}

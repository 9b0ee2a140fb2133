package routes

import (
	"github.com/pitchside/newsletter-service/internal/auth"
	c "github.com/pitchside/newsletter-service/internal/controllers"
)

type bulkRoutesCfg struct {
	routeGroupCfg
	Controller *c.BulkController
}

func SetupBulkRoutes(cfg bulkRoutesCfg) error {

	g := cfg.Engine.Group(cfg.Version)
	{
		g.POST("/newsletters/bulk/publish",
			cfg.AuthorizeMiddleware(auth.Admin),
			cfg.Controller.PublishNewsletters)

		g.POST("/newsletters/bulk/delete",
			cfg.AuthorizeMiddleware(auth.Admin),
			cfg.Controller.DeleteNewsletters)

		g.POST("/newsletters/bulk/preview",
			cfg.AuthorizeMiddleware(auth.Admin),
			cfg.Controller.PreviewNewsletters)

		g.POST("/newsletters/selection/preview",
			cfg.AuthorizeMiddleware(auth.Admin),
			cfg.Controller.CountSelection)

		g.GET("/newsletters/review-queue",
			cfg.AuthorizeMiddleware(auth.Admin),
			cfg.Controller.GetReviewQueue)
	}

	return nil
}

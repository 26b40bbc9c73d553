package api

import (
	"fmt"
	"net/http"

	_ "rockguard/docs"
	"rockguard/internal/handler"
	"rockguard/internal/middleware"
	"rockguard/internal/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires the pages, the JSON API and the static assets
func SetupRouter(dashboardSvc handler.DashboardService, contactSvc handler.ContactService) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}

	r := gin.New()
	r.Use(middleware.Logger(), middleware.Recovery())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static())

	pages := handler.NewPageHandler(dashboardSvc)
	dashboard := handler.NewDashboardHandler(dashboardSvc)
	contact := handler.NewContactHandler(contactSvc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", pages.Landing)
	r.GET("/system", pages.System)
	r.POST("/contact", contact.SubmitForm)

	api := r.Group("/api")
	{
		mines := api.Group("/mines")
		{
			mines.GET("", dashboard.ListMines)
			mines.GET("/:name/heat", dashboard.MineHeat)
		}

		sessions := api.Group("/sessions")
		{
			sessions.POST("", dashboard.CreateSession)
			sessions.GET("/:id", dashboard.GetSession)
			sessions.POST("/:id/select", dashboard.SelectMine)
			sessions.POST("/:id/unmount", dashboard.UnmountSession)
		}

		charts := api.Group("/charts")
		{
			charts.GET("/:panel", dashboard.ChartPanel)
			charts.GET("/:panel/svg", dashboard.ChartSVG)
		}

		api.POST("/contact", contact.SubmitJSON)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}

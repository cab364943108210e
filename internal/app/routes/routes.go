package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/curricuforge/internal/app/controllers"
	"github.com/yigit/curricuforge/internal/pkg/websocket"
)

// Controllers groups the handlers mounted under /api
type Controllers struct {
	Session    *controllers.SessionController
	Curriculum *controllers.CurriculumController
	Trend      *controllers.TrendController
	Health     *controllers.HealthController
	Events     *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	api := router.Group("/api")

	api.GET("/health", c.Health.Health)

	// --- Industry trends ---
	trends := api.Group("/industry-trends")
	{
		trends.GET("", c.Trend.GetIndustryTrends)
		trends.GET("/charts/:chart", c.Trend.GetChart)
	}

	// --- Sessions ---
	sessions := api.Group("/sessions")
	{
		sessions.POST("", c.Session.CreateSession)
		sessions.GET("/:id", c.Session.GetSession)
		sessions.POST("/:id/navigate", c.Session.Navigate)
		if c.Events != nil {
			sessions.GET("/:id/events", c.Events.HandleConnection)
		}

		sessions.POST("/:id/generate", c.Curriculum.Generate)
		sessions.POST("/:id/previous-curriculum", c.Curriculum.UploadPreviousCurriculum)
		sessions.GET("/:id/validation", c.Curriculum.Validate)
		sessions.GET("/:id/export", c.Curriculum.Export)

		// Table editing
		sessions.POST("/:id/semesters/:sem/subjects", c.Curriculum.AddSubject)
		sessions.PATCH("/:id/semesters/:sem/subjects/:sub", c.Curriculum.EditSubjectField)
		sessions.DELETE("/:id/semesters/:sem/subjects/:sub", c.Curriculum.RemoveSubject)
	}
}

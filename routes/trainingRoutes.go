package routes

import (
	"ecowaste-be/controllers"
	"ecowaste-be/middlewares"

	"github.com/gin-gonic/gin"
)

// TrainingRoutes sets up the training and rewards routes
func TrainingRoutes(r *gin.Engine, training *controllers.TrainingController) {
	group := r.Group("/api/training", middlewares.AuthMiddleware())
	{
		group.POST("/completions", middlewares.Idempotency(), training.RecordCompletion)
		group.GET("/modules", training.ListModules)
	}

	users := r.Group("/api/users/me", middlewares.AuthMiddleware())
	{
		users.GET("/progress", training.GetProgress)
		users.GET("/rewards", training.GetRewards)
	}
}

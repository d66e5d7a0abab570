package routes

import (
	"ecowaste-be/controllers"
	"ecowaste-be/middlewares"

	"github.com/gin-gonic/gin"
)

// ReportRoutes sets up the waste report routes
func ReportRoutes(r *gin.Engine, reports *controllers.ReportController, dailyLimit int) {
	group := r.Group("/api/reports", middlewares.AuthMiddleware())
	{
		group.POST("", middlewares.ReportRateLimiter(dailyLimit), middlewares.Idempotency(), reports.CreateReport)
		group.PATCH("/:id/status", reports.UpdateReportStatus)
		group.GET("/mine", reports.MyReports)
		group.GET("", reports.ReportsByStatus)
	}
}

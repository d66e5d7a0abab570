package routes

import (
	"ecowaste-be/controllers"
	"ecowaste-be/middlewares"
	"ecowaste-be/models"

	"github.com/gin-gonic/gin"
)

// DashboardRoutes sets up the role-specific dashboard and export routes
func DashboardRoutes(r *gin.Engine, dashboards *controllers.DashboardController) {
	group := r.Group("/api/dashboard", middlewares.AuthMiddleware())
	{
		group.GET("/citizen", dashboards.CitizenDashboard)
		group.GET("/admin", middlewares.RequireCapability(models.CapAggregate), dashboards.AdminDashboard)
	}

	admin := r.Group("/api/admin", middlewares.AuthMiddleware(), middlewares.RequireCapability(models.CapAggregate))
	{
		admin.GET("/reports/export", dashboards.ExportReports)
	}
}

package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ecowaste-be/export"
	"ecowaste-be/services"
)

// DashboardController serves the role-specific read-only views.
type DashboardController struct {
	dashboards *services.DashboardService
	reports    *services.ReportService
}

func NewDashboardController(dashboards *services.DashboardService, reports *services.ReportService) *DashboardController {
	return &DashboardController{dashboards: dashboards, reports: reports}
}

// CitizenDashboard returns the caller's personal summary
func (d *DashboardController) CitizenDashboard(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, d.dashboards.Citizen(c.Request.Context(), userID))
}

// AdminDashboard returns system-wide counts
func (d *DashboardController) AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, d.dashboards.Admin(c.Request.Context()))
}

// ExportReports streams every report as an .xlsx workbook
func (d *DashboardController) ExportReports(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}

	reports, err := d.reports.ListAll(c.Request.Context(), role)
	if err != nil {
		respondErr(c, err)
		return
	}

	workbook, err := export.NewReportsWorkbook(reports)
	if err != nil {
		respondErr(c, err)
		return
	}

	filename := fmt.Sprintf("waste-reports-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		respondErr(c, err)
		return
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecowaste-be/services"
)

// ReportController exposes the report ledger over HTTP.
type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// CreateReport handles the submission of a new waste report
func (r *ReportController) CreateReport(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var input struct {
		WasteType   string   `json:"wasteType" binding:"required"`
		Location    string   `json:"location" binding:"required,max=200"`
		Urgency     string   `json:"urgency" binding:"required"`
		Description string   `json:"description" binding:"max=1000"`
		PhotoRef    *string  `json:"photoRef,omitempty"`
		Latitude    *float64 `json:"latitude,omitempty"`
		Longitude   *float64 `json:"longitude,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := r.reports.Submit(c.Request.Context(), userID, services.SubmitReportInput{
		WasteType:   input.WasteType,
		Location:    input.Location,
		Urgency:     input.Urgency,
		Description: input.Description,
		PhotoRef:    input.PhotoRef,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// UpdateReportStatus moves a report through the status machine
func (r *ReportController) UpdateReportStatus(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := r.reports.UpdateStatus(c.Request.Context(), reportID, input.Status, userID, role); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// MyReports returns the caller's reports, newest first
func (r *ReportController) MyReports(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	reports, err := r.reports.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// ReportsByStatus lists reports in a given status for staff dashboards
func (r *ReportController) ReportsByStatus(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status query parameter is required"})
		return
	}

	reports, err := r.reports.ListByStatus(c.Request.Context(), status, role)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecowaste-be/apperrors"
	"ecowaste-be/metrics"
	"ecowaste-be/models"
	"ecowaste-be/observability"
)

// respondErr maps a service error onto the wire as a toast-shaped payload:
// {"error": {"code", "title", "description"}}.
func respondErr(c *gin.Context, err error) {
	var e *apperrors.Error
	if !errors.As(err, &e) {
		e = apperrors.Internal("Something went wrong", err)
	}
	metrics.RequestErrors.WithLabelValues(string(e.Code)).Inc()
	if e.Code == apperrors.CodeInternal {
		observability.CaptureErr(err)
	}
	c.JSON(e.HTTPStatus(), gin.H{"error": gin.H{
		"code":        e.Code,
		"title":       e.Title,
		"description": e.Description,
	}})
}

// currentUser reads the identity the auth middleware stored on the context.
func currentUser(c *gin.Context) (primitive.ObjectID, models.Role, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return primitive.NilObjectID, "", false
	}
	userIDStr, _ := userIDVal.(string)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return primitive.NilObjectID, "", false
	}

	roleVal, _ := c.Get("role")
	roleStr, _ := roleVal.(string)
	role, ok := models.ParseRole(roleStr)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return primitive.NilObjectID, "", false
	}

	return userID, role, true
}

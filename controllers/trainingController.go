package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecowaste-be/services"
)

// TrainingController exposes the training ledger and the rewards engine.
type TrainingController struct {
	training *services.TrainingService
	rewards  *services.RewardsEngine
}

func NewTrainingController(training *services.TrainingService, rewards *services.RewardsEngine) *TrainingController {
	return &TrainingController{training: training, rewards: rewards}
}

// RecordCompletion registers a finished training module for the caller
func (t *TrainingController) RecordCompletion(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var input struct {
		ModuleID string `json:"moduleId" binding:"required"`
		Score    *int   `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := t.training.RecordCompletion(c.Request.Context(), userID, input.ModuleID, *input.Score); err != nil {
		respondErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListModules returns the catalog annotated with the caller's completions
func (t *TrainingController) ListModules(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	modules, err := t.training.ModulesForUser(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, modules)
}

// GetProgress returns the caller's training progress summary
func (t *TrainingController) GetProgress(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	progress, err := t.training.GetProgress(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// GetRewards returns the caller's recomputed points, level and achievements
func (t *TrainingController) GetRewards(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := t.rewards.Summary(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

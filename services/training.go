package services

import (
	"context"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecowaste-be/apperrors"
	"ecowaste-be/models"
	"ecowaste-be/store"
)

// TrainingService is the training ledger: completion records against the
// static module catalog.
type TrainingService struct {
	completions store.CompletionStore
	events      Sink
	now         func() time.Time
}

func NewTrainingService(completions store.CompletionStore, events Sink) *TrainingService {
	return &TrainingService{completions: completions, events: events, now: time.Now}
}

// RecordCompletion upserts the (user, module) completion record. Reattempts
// overwrite score and timestamp, so the call is idempotent per pair.
func (s *TrainingService) RecordCompletion(ctx context.Context, userID primitive.ObjectID, moduleID string, score int) error {
	if _, ok := models.ModuleByID(moduleID); !ok {
		return apperrors.Validation("unknown training module %q", moduleID)
	}
	if score < 0 || score > 100 {
		return apperrors.Validation("score must be between 0 and 100, got %d", score)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	err := s.completions.Upsert(ctx, models.TrainingCompletion{
		UserID:      userID,
		ModuleID:    moduleID,
		Score:       score,
		CompletedAt: s.now(),
	})
	if err != nil {
		return storeErr("record completion", err)
	}

	s.events.Publish(ModuleCompleted{UserID: userID, ModuleID: moduleID, Score: score})
	return nil
}

// GetProgress summarizes a user's completions against the catalog. The
// average score is the mean of all recorded scores rounded half-up to two
// decimal places; a user with no completions averages 0.
func (s *TrainingService) GetProgress(ctx context.Context, userID primitive.ObjectID) (models.Progress, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	completions, err := s.completions.ListByUser(ctx, userID)
	if err != nil {
		return models.Progress{}, storeErr("load completions", err)
	}
	return models.Progress{
		CompletedCount: len(completions),
		TotalCount:     len(models.TrainingCatalog),
		AverageScore:   averageScore(completions),
	}, nil
}

func averageScore(completions []models.TrainingCompletion) float64 {
	if len(completions) == 0 {
		return 0
	}
	var sum int
	for _, c := range completions {
		sum += c.Score
	}
	avg := float64(sum) / float64(len(completions))
	return math.Round(avg*100) / 100
}

// ModuleWithState is a catalog entry merged with one user's completion.
type ModuleWithState struct {
	models.TrainingModule
	Completed   bool       `json:"completed"`
	Score       *int       `json:"score"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ModulesForUser returns the catalog in order, annotated with the user's
// completion state.
func (s *TrainingService) ModulesForUser(ctx context.Context, userID primitive.ObjectID) ([]ModuleWithState, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	completions, err := s.completions.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("load completions", err)
	}

	byModule := make(map[string]models.TrainingCompletion, len(completions))
	for _, c := range completions {
		byModule[c.ModuleID] = c
	}

	out := make([]ModuleWithState, 0, len(models.TrainingCatalog))
	for _, m := range models.TrainingCatalog {
		state := ModuleWithState{TrainingModule: m}
		if c, ok := byModule[m.ID]; ok {
			score := c.Score
			completedAt := c.CompletedAt
			state.Completed = true
			state.Score = &score
			state.CompletedAt = &completedAt
		}
		out = append(out, state)
	}
	return out, nil
}

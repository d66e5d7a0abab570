package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecowaste-be/models"
	"ecowaste-be/store"
)

// Point weights and level thresholds. The boundaries are a product choice
// pending input; see DESIGN.md.
const (
	pointsPerCollectedReport = 10
	pointsPerCompletedModule = 5
	levelChampionFloor       = 500
	levelLegendFloor         = 1500
)

// ledgerState is the snapshot the achievement predicates evaluate against.
type ledgerState struct {
	completions    []models.TrainingCompletion
	collectedCount int64
}

type achievementDef struct {
	models.Achievement
	earned func(ledgerState) bool
}

var achievementCatalog = []achievementDef{
	{
		Achievement: models.Achievement{
			ID:          "first-steps",
			Title:       "First Steps",
			Description: "Completed first training module",
		},
		earned: func(st ledgerState) bool { return len(st.completions) >= 1 },
	},
	{
		Achievement: models.Achievement{
			ID:          "eco-scholar",
			Title:       "Eco Scholar",
			Description: "Completed 3 training modules",
		},
		earned: func(st ledgerState) bool { return len(st.completions) >= 3 },
	},
	{
		Achievement: models.Achievement{
			ID:          "perfect-score",
			Title:       "Perfect Score",
			Description: "Scored 100% on any module",
		},
		earned: func(st ledgerState) bool {
			for _, c := range st.completions {
				if c.Score == 100 {
					return true
				}
			}
			return false
		},
	},
	{
		Achievement: models.Achievement{
			ID:          "eco-expert",
			Title:       "Eco Expert",
			Description: "Completed all training modules",
		},
		earned: func(st ledgerState) bool {
			return len(st.completions) >= len(models.TrainingCatalog)
		},
	},
}

// RewardsEngine derives points, level and achievements from the report and
// training ledgers. Nothing here is persisted; every query recomputes from
// source so derived state can never drift.
type RewardsEngine struct {
	reports     store.ReportStore
	completions store.CompletionStore
}

func NewRewardsEngine(reports store.ReportStore, completions store.CompletionStore) *RewardsEngine {
	return &RewardsEngine{reports: reports, completions: completions}
}

type RewardsSummary struct {
	Points       int                        `json:"points"`
	Level        string                     `json:"level"`
	Achievements []models.EarnedAchievement `json:"achievements"`
}

func (e *RewardsEngine) Summary(ctx context.Context, userID primitive.ObjectID) (RewardsSummary, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	collected, err := e.reports.CountByUserAndStatus(ctx, userID, models.StatusCollected)
	if err != nil {
		return RewardsSummary{}, storeErr("count collected reports", err)
	}
	completions, err := e.completions.ListByUser(ctx, userID)
	if err != nil {
		return RewardsSummary{}, storeErr("load completions", err)
	}

	st := ledgerState{completions: completions, collectedCount: collected}
	points := Points(int(collected), len(completions))

	earned := make([]models.EarnedAchievement, 0, len(achievementCatalog))
	for _, def := range achievementCatalog {
		earned = append(earned, models.EarnedAchievement{
			Achievement: def.Achievement,
			Earned:      def.earned(st),
		})
	}

	return RewardsSummary{
		Points:       points,
		Level:        LevelFor(points),
		Achievements: earned,
	}, nil
}

// Points weights cleanup activity above self-education.
func Points(collectedReports, completedModules int) int {
	return pointsPerCollectedReport*collectedReports + pointsPerCompletedModule*completedModules
}

// LevelFor is a step function over the point total.
func LevelFor(points int) string {
	switch {
	case points >= levelLegendFloor:
		return "Eco Legend"
	case points >= levelChampionFloor:
		return "Eco Champion"
	}
	return "Eco Beginner"
}

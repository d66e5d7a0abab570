package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecowaste-be/models"
	"ecowaste-be/store"
)

func TestPointsFormula(t *testing.T) {
	cases := []struct {
		collected, completed, want int
	}{
		{0, 0, 0},
		{1, 0, 10},
		{0, 1, 5},
		{12, 3, 135},
	}
	for _, tc := range cases {
		if got := Points(tc.collected, tc.completed); got != tc.want {
			t.Errorf("Points(%d, %d) = %d, want %d", tc.collected, tc.completed, got, tc.want)
		}
	}
}

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		points int
		want   string
	}{
		{0, "Eco Beginner"},
		{499, "Eco Beginner"},
		{500, "Eco Champion"},
		{1499, "Eco Champion"},
		{1500, "Eco Legend"},
		{9000, "Eco Legend"},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.points); got != tc.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tc.points, got, tc.want)
		}
	}
}

func seedRewardsState(t *testing.T, reports *store.MemoryReportStore, completions *store.MemoryCompletionStore, user primitive.ObjectID, collected int, scores []int) {
	t.Helper()
	ctx := context.Background()

	reportSvc := newTestReportService(reports)
	worker := primitive.NewObjectID()
	for i := 0; i < collected; i++ {
		report, err := reportSvc.Submit(ctx, user, SubmitReportInput{
			WasteType: "mixed", Location: "Main Street", Urgency: "low",
		})
		if err != nil {
			t.Fatal(err)
		}
		if err := reportSvc.UpdateStatus(ctx, report.ID, "in_progress", worker, models.RoleWorker); err != nil {
			t.Fatal(err)
		}
		if err := reportSvc.UpdateStatus(ctx, report.ID, "collected", worker, models.RoleWorker); err != nil {
			t.Fatal(err)
		}
	}

	trainingSvc := NewTrainingService(completions, NopSink{})
	for i, score := range scores {
		if err := trainingSvc.RecordCompletion(ctx, user, models.TrainingCatalog[i].ID, score); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRewardsSummary(t *testing.T) {
	reports := store.NewMemoryReportStore()
	completions := store.NewMemoryCompletionStore()
	user := primitive.NewObjectID()
	seedRewardsState(t, reports, completions, user, 2, []int{95, 88, 100})

	engine := NewRewardsEngine(reports, completions)
	summary, err := engine.Summary(context.Background(), user)
	if err != nil {
		t.Fatal(err)
	}

	// 2 collected reports and 3 completed modules.
	if summary.Points != 2*10+3*5 {
		t.Errorf("points = %d, want 35", summary.Points)
	}
	if summary.Level != "Eco Beginner" {
		t.Errorf("level = %s, want Eco Beginner", summary.Level)
	}

	earned := map[string]bool{}
	for _, a := range summary.Achievements {
		earned[a.ID] = a.Earned
	}
	if !earned["first-steps"] {
		t.Error("first-steps should be earned with 3 completions")
	}
	if !earned["eco-scholar"] {
		t.Error("eco-scholar should be earned with 3 completions")
	}
	if !earned["perfect-score"] {
		t.Error("perfect-score should be earned with a 100 score")
	}
	if earned["eco-expert"] {
		t.Error("eco-expert should not be earned with 3 of 6 modules")
	}
}

func TestAchievementSetAlwaysFullCatalog(t *testing.T) {
	reports := store.NewMemoryReportStore()
	completions := store.NewMemoryCompletionStore()
	engine := NewRewardsEngine(reports, completions)

	// A brand-new user earns nothing but still sees every achievement.
	summary, err := engine.Summary(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Achievements) != len(achievementCatalog) {
		t.Fatalf("got %d achievements, want the full catalog of %d", len(summary.Achievements), len(achievementCatalog))
	}
	for _, a := range summary.Achievements {
		if a.Earned {
			t.Errorf("achievement %s should not be earned for a new user", a.ID)
		}
	}
}

func TestEcoExpertRequiresFullCatalog(t *testing.T) {
	reports := store.NewMemoryReportStore()
	completions := store.NewMemoryCompletionStore()
	user := primitive.NewObjectID()

	scores := make([]int, len(models.TrainingCatalog))
	for i := range scores {
		scores[i] = 80
	}
	seedRewardsState(t, reports, completions, user, 0, scores)

	engine := NewRewardsEngine(reports, completions)
	summary, err := engine.Summary(context.Background(), user)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range summary.Achievements {
		if a.ID == "eco-expert" && !a.Earned {
			t.Error("eco-expert should be earned after completing every module")
		}
	}
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty enum
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// TrainingModule is a static catalog entity. Content management lives
// outside this service, so the catalog ships in code and is read-only.
type TrainingModule struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Duration   string     `json:"duration"`
	Difficulty Difficulty `json:"difficulty"`
	Topics     []string   `json:"topics"`
}

// TrainingCatalog is the fixed set of modules offered to citizens.
var TrainingCatalog = []TrainingModule{
	{
		ID:         "waste-segregation-basics",
		Title:      "Waste Segregation Basics",
		Duration:   "15 min",
		Difficulty: DifficultyBeginner,
		Topics:     []string{"Wet vs Dry Waste", "Color-coded Bins", "Common Mistakes"},
	},
	{
		ID:         "home-composting-guide",
		Title:      "Home Composting Guide",
		Duration:   "20 min",
		Difficulty: DifficultyBeginner,
		Topics:     []string{"Composting Methods", "Equipment Needed", "Troubleshooting"},
	},
	{
		ID:         "plastic-recycling-reduction",
		Title:      "Plastic Recycling & Reduction",
		Duration:   "18 min",
		Difficulty: DifficultyIntermediate,
		Topics:     []string{"Plastic Types", "Recycling Codes", "Alternatives"},
	},
	{
		ID:         "hazardous-waste-management",
		Title:      "Hazardous Waste Management",
		Duration:   "25 min",
		Difficulty: DifficultyAdvanced,
		Topics:     []string{"Identification", "Safety Protocols", "Disposal Centers"},
	},
	{
		ID:         "community-cleanup-practices",
		Title:      "Community Clean-up Best Practices",
		Duration:   "30 min",
		Difficulty: DifficultyIntermediate,
		Topics:     []string{"Planning Events", "Safety Guidelines", "Team Coordination"},
	},
	{
		ID:         "ewaste-handling",
		Title:      "Electronic Waste (E-Waste) Handling",
		Duration:   "22 min",
		Difficulty: DifficultyIntermediate,
		Topics:     []string{"Device Preparation", "Data Security", "Certified Centers"},
	},
}

// ModuleByID looks a module up in the catalog.
func ModuleByID(id string) (TrainingModule, bool) {
	for _, m := range TrainingCatalog {
		if m.ID == id {
			return m, true
		}
	}
	return TrainingModule{}, false
}

// TrainingCompletion records that a user finished a module. At most one
// record exists per (user, module); a reattempt overwrites score and
// timestamp.
type TrainingCompletion struct {
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	ModuleID    string             `bson:"moduleId" json:"moduleId"`
	Score       int                `bson:"score" json:"score"`
	CompletedAt time.Time          `bson:"completedAt" json:"completedAt"`
}

// Progress summarizes a user's training state against the catalog.
type Progress struct {
	CompletedCount int     `json:"completedCount"`
	TotalCount     int     `json:"totalCount"`
	AverageScore   float64 `json:"averageScore"`
}

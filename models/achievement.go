package models

// Achievement is a catalog entry. Whether it is earned is never stored; the
// rewards engine recomputes it from ledger state on every query.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// EarnedAchievement annotates a catalog entry with the evaluation result for
// one user.
type EarnedAchievement struct {
	Achievement
	Earned bool `json:"earned"`
}

// Package store holds the persistence layer behind the report and training
// ledgers. Mongo-backed implementations serve production; an in-memory
// implementation backs the test suite.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecowaste-be/models"
)

var (
	// ErrNotFound signals a missing document.
	ErrNotFound = errors.New("store: not found")
	// ErrCASMismatch signals a compare-and-swap whose expected status no
	// longer matches the stored one.
	ErrCASMismatch = errors.New("store: status changed concurrently")
	// ErrDuplicate signals a unique-key violation.
	ErrDuplicate = errors.New("store: duplicate key")
)

// ReportStore persists waste reports. Reports are never deleted.
type ReportStore interface {
	Insert(ctx context.Context, r *models.WasteReport) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.WasteReport, error)
	// UpdateStatusCAS moves a report from one status to another only if the
	// stored status still equals from. Returns ErrCASMismatch otherwise.
	UpdateStatusCAS(ctx context.Context, id primitive.ObjectID, from, to models.ReportStatus, by primitive.ObjectID, at time.Time) error
	// ListByUser returns the user's reports newest first. limit <= 0 means all.
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.WasteReport, error)
	ListByStatus(ctx context.Context, status models.ReportStatus) ([]models.WasteReport, error)
	ListAll(ctx context.Context) ([]models.WasteReport, error)
	// ListOpenUrgent returns non-terminal high/emergency reports newest
	// first, for the admin alert feed.
	ListOpenUrgent(ctx context.Context, limit int) ([]models.WasteReport, error)
	CountByUserAndStatus(ctx context.Context, userID primitive.ObjectID, status models.ReportStatus) (int64, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	CountByStatus(ctx context.Context) (map[models.ReportStatus]int64, error)
}

// CompletionStore persists training completions keyed by (user, module).
type CompletionStore interface {
	// Upsert writes the completion, overwriting score and timestamp on a
	// reattempt of the same (user, module) pair.
	Upsert(ctx context.Context, c models.TrainingCompletion) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TrainingCompletion, error)
}

// UserStore persists portal accounts.
type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecowaste-be/models"
)

func TestMemoryReportCAS(t *testing.T) {
	s := NewMemoryReportStore()
	ctx := context.Background()
	worker := primitive.NewObjectID()

	report := &models.WasteReport{
		ReportedBy: primitive.NewObjectID(),
		WasteType:  models.WasteMixed,
		Location:   "Main Street",
		Urgency:    models.UrgencyLow,
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
	}
	if err := s.Insert(ctx, report); err != nil {
		t.Fatal(err)
	}

	err := s.UpdateStatusCAS(ctx, report.ID, models.StatusInProgress, models.StatusCollected, worker, time.Now())
	if !errors.Is(err, ErrCASMismatch) {
		t.Errorf("stale expected status: got %v, want ErrCASMismatch", err)
	}

	err = s.UpdateStatusCAS(ctx, primitive.NewObjectID(), models.StatusPending, models.StatusInProgress, worker, time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing report: got %v, want ErrNotFound", err)
	}

	if err := s.UpdateStatusCAS(ctx, report.ID, models.StatusPending, models.StatusInProgress, worker, time.Now()); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusInProgress {
		t.Errorf("status = %s, want in_progress", got.Status)
	}
}

func TestMemoryUserDuplicateEmail(t *testing.T) {
	s := NewMemoryUserStore()
	ctx := context.Background()

	if err := s.Insert(ctx, &models.User{Name: "A", Email: "a@example.com", Role: models.RoleCitizen}); err != nil {
		t.Fatal(err)
	}
	err := s.Insert(ctx, &models.User{Name: "B", Email: "a@example.com", Role: models.RoleCitizen})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("got %v, want ErrDuplicate", err)
	}
}

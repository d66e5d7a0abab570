package services

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecowaste-be/apperrors"
	"ecowaste-be/models"
	"ecowaste-be/store"
)

func newTestReportService(reports store.ReportStore) *ReportService {
	svc := NewReportService(reports, NopSink{})
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return svc
}

func TestSubmitCreatesPendingReport(t *testing.T) {
	svc := newTestReportService(store.NewMemoryReportStore())
	citizen := primitive.NewObjectID()

	report, err := svc.Submit(context.Background(), citizen, SubmitReportInput{
		WasteType:   "plastic",
		Location:    "Main Street",
		Urgency:     "medium",
		Description: "overflowing bin",
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.Status != models.StatusPending {
		t.Errorf("new report status = %s, want pending", report.Status)
	}
	if report.ReportedBy != citizen {
		t.Error("report not attributed to the submitting user")
	}
	if report.ID.IsZero() {
		t.Error("report should have an id")
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestReportService(store.NewMemoryReportStore())
	citizen := primitive.NewObjectID()

	cases := []struct {
		name string
		in   SubmitReportInput
	}{
		{"unknown waste type", SubmitReportInput{WasteType: "nuclear", Location: "x", Urgency: "low"}},
		{"unknown urgency", SubmitReportInput{WasteType: "mixed", Location: "x", Urgency: "someday"}},
		{"empty location", SubmitReportInput{WasteType: "mixed", Location: "  ", Urgency: "low"}},
		{"blank photoRef", SubmitReportInput{WasteType: "mixed", Location: "x", Urgency: "low", PhotoRef: strPtr(" ")}},
	}
	for _, tc := range cases {
		_, err := svc.Submit(context.Background(), citizen, tc.in)
		if !apperrors.Is(err, apperrors.CodeValidation) {
			t.Errorf("%s: got %v, want validation error", tc.name, err)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateStatusHappyPath(t *testing.T) {
	reports := store.NewMemoryReportStore()
	svc := newTestReportService(reports)
	citizen := primitive.NewObjectID()
	worker := primitive.NewObjectID()

	report, err := svc.Submit(context.Background(), citizen, SubmitReportInput{
		WasteType: "plastic", Location: "Main Street", Urgency: "medium",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateStatus(context.Background(), report.ID, "in_progress", worker, models.RoleWorker); err != nil {
		t.Fatalf("worker moving to in_progress: %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), report.ID, "collected", worker, models.RoleWorker); err != nil {
		t.Fatalf("worker moving to collected: %v", err)
	}

	got, err := reports.Get(context.Background(), report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusCollected {
		t.Errorf("status = %s, want collected", got.Status)
	}
	if got.UpdatedBy == nil || *got.UpdatedBy != worker {
		t.Error("updatedBy should record the acting worker")
	}
}

func TestUpdateStatusCitizenForbidden(t *testing.T) {
	svc := newTestReportService(store.NewMemoryReportStore())
	citizen := primitive.NewObjectID()

	report, err := svc.Submit(context.Background(), citizen, SubmitReportInput{
		WasteType: "plastic", Location: "Main Street", Urgency: "medium",
	})
	if err != nil {
		t.Fatal(err)
	}

	err = svc.UpdateStatus(context.Background(), report.ID, "collected", citizen, models.RoleCitizen)
	if !apperrors.Is(err, apperrors.CodeAuthorization) {
		t.Errorf("citizen transition: got %v, want authorization error", err)
	}
}

func TestUpdateStatusInvalidTransitions(t *testing.T) {
	svc := newTestReportService(store.NewMemoryReportStore())
	citizen := primitive.NewObjectID()
	worker := primitive.NewObjectID()
	ctx := context.Background()

	report, err := svc.Submit(ctx, citizen, SubmitReportInput{
		WasteType: "organic", Location: "Park Area", Urgency: "low",
	})
	if err != nil {
		t.Fatal(err)
	}

	// No backward transition, ever.
	err = svc.UpdateStatus(ctx, report.ID, "pending", worker, models.RoleWorker)
	if !apperrors.Is(err, apperrors.CodeInvalidTransition) {
		t.Errorf("to pending: got %v, want invalid transition", err)
	}

	// pending -> collected skips in_progress.
	err = svc.UpdateStatus(ctx, report.ID, "collected", worker, models.RoleWorker)
	if !apperrors.Is(err, apperrors.CodeInvalidTransition) {
		t.Errorf("pending to collected: got %v, want invalid transition", err)
	}

	// Terminal reports are immutable thereafter.
	if err := svc.UpdateStatus(ctx, report.ID, "rejected", worker, models.RoleWorker); err != nil {
		t.Fatal(err)
	}
	for _, to := range []string{"in_progress", "collected", "rejected"} {
		err = svc.UpdateStatus(ctx, report.ID, to, worker, models.RoleWorker)
		if !apperrors.Is(err, apperrors.CodeInvalidTransition) {
			t.Errorf("rejected to %s: got %v, want invalid transition", to, err)
		}
	}
}

func TestUpdateStatusUnknownReport(t *testing.T) {
	svc := newTestReportService(store.NewMemoryReportStore())
	worker := primitive.NewObjectID()

	err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), "in_progress", worker, models.RoleWorker)
	if !apperrors.Is(err, apperrors.CodeNotFound) {
		t.Errorf("got %v, want not found", err)
	}
}

// casFlakyStore fails the compare-and-swap a configured number of times.
type casFlakyStore struct {
	*store.MemoryReportStore
	failures int
}

func (s *casFlakyStore) UpdateStatusCAS(ctx context.Context, id primitive.ObjectID, from, to models.ReportStatus, by primitive.ObjectID, at time.Time) error {
	if s.failures > 0 {
		s.failures--
		return store.ErrCASMismatch
	}
	return s.MemoryReportStore.UpdateStatusCAS(ctx, id, from, to, by, at)
}

func TestUpdateStatusRetriesOnceThenConflicts(t *testing.T) {
	ctx := context.Background()
	citizen := primitive.NewObjectID()
	worker := primitive.NewObjectID()

	// One lost race: retried with fresh state, then succeeds.
	flaky := &casFlakyStore{MemoryReportStore: store.NewMemoryReportStore(), failures: 1}
	svc := newTestReportService(flaky)
	report, err := svc.Submit(ctx, citizen, SubmitReportInput{
		WasteType: "mixed", Location: "Main Street", Urgency: "high",
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateStatus(ctx, report.ID, "in_progress", worker, models.RoleWorker); err != nil {
		t.Fatalf("single lost race should be retried: %v", err)
	}

	// Two lost races: surfaced as a conflict.
	flaky = &casFlakyStore{MemoryReportStore: store.NewMemoryReportStore(), failures: 2}
	svc = newTestReportService(flaky)
	report, err = svc.Submit(ctx, citizen, SubmitReportInput{
		WasteType: "mixed", Location: "Main Street", Urgency: "high",
	})
	if err != nil {
		t.Fatal(err)
	}
	err = svc.UpdateStatus(ctx, report.ID, "in_progress", worker, models.RoleWorker)
	if !apperrors.Is(err, apperrors.CodeConflict) {
		t.Errorf("got %v, want conflict", err)
	}
}

func TestListForUserNewestFirst(t *testing.T) {
	svc := newTestReportService(store.NewMemoryReportStore())
	citizen := primitive.NewObjectID()
	other := primitive.NewObjectID()
	ctx := context.Background()

	locations := []string{"First St", "Second St", "Third St"}
	for _, loc := range locations {
		if _, err := svc.Submit(ctx, citizen, SubmitReportInput{
			WasteType: "paper", Location: loc, Urgency: "low",
		}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.Submit(ctx, other, SubmitReportInput{
		WasteType: "paper", Location: "Elsewhere", Urgency: "low",
	}); err != nil {
		t.Fatal(err)
	}

	got, err := svc.ListForUser(ctx, citizen)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d reports, want 3", len(got))
	}
	want := []string{"Third St", "Second St", "First St"}
	for i, loc := range want {
		if got[i].Location != loc {
			t.Errorf("report %d location = %s, want %s", i, got[i].Location, loc)
		}
	}
}

func TestListByStatusRequiresStaff(t *testing.T) {
	svc := newTestReportService(store.NewMemoryReportStore())

	_, err := svc.ListByStatus(context.Background(), "pending", models.RoleCitizen)
	if !apperrors.Is(err, apperrors.CodeAuthorization) {
		t.Errorf("got %v, want authorization error", err)
	}

	if _, err := svc.ListByStatus(context.Background(), "pending", models.RoleCommittee); err != nil {
		t.Errorf("committee list by status: %v", err)
	}
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecowaste-be/apperrors"
	"ecowaste-be/models"
	"ecowaste-be/store"
)

// opTimeout bounds every persistence call made by the services.
const opTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// storeErr classifies a persistence failure into the shared taxonomy.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Timeout(op, err)
	}
	return apperrors.Internal("failed to "+op, err)
}

// ReportService is the report ledger: it owns report creation and the
// status state machine.
type ReportService struct {
	reports store.ReportStore
	events  Sink
	now     func() time.Time
}

func NewReportService(reports store.ReportStore, events Sink) *ReportService {
	return &ReportService{reports: reports, events: events, now: time.Now}
}

type SubmitReportInput struct {
	WasteType   string
	Location    string
	Urgency     string
	Description string
	PhotoRef    *string
	Latitude    *float64
	Longitude   *float64
}

// Submit validates the input and creates a pending report attributed to the
// submitting user.
func (s *ReportService) Submit(ctx context.Context, userID primitive.ObjectID, in SubmitReportInput) (*models.WasteReport, error) {
	wasteType, ok := models.ParseWasteType(in.WasteType)
	if !ok {
		return nil, apperrors.Validation("unknown waste type %q", in.WasteType)
	}
	urgency, ok := models.ParseUrgency(in.Urgency)
	if !ok {
		return nil, apperrors.Validation("unknown urgency %q", in.Urgency)
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, apperrors.Validation("location must not be empty")
	}
	if in.PhotoRef != nil && strings.TrimSpace(*in.PhotoRef) == "" {
		return nil, apperrors.Validation("photoRef must not be empty when provided")
	}

	now := s.now()
	report := &models.WasteReport{
		ReportedBy:  userID,
		WasteType:   wasteType,
		Location:    in.Location,
		Urgency:     urgency,
		Description: in.Description,
		PhotoRef:    in.PhotoRef,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	if err := s.reports.Insert(ctx, report); err != nil {
		return nil, storeErr("create report", err)
	}

	s.events.Publish(ReportCreated{ReportID: report.ID, UserID: userID})
	return report, nil
}

// UpdateStatus moves a report through the state machine on behalf of a staff
// user. The write is a compare-and-swap on the current status, retried once
// with fresh state before the conflict is surfaced.
func (s *ReportService) UpdateStatus(ctx context.Context, reportID primitive.ObjectID, newStatus string, actorID primitive.ObjectID, actorRole models.Role) error {
	if !actorRole.Can(models.CapTransition) {
		return apperrors.Authorization("role %s cannot change report status", actorRole)
	}
	to, ok := models.ParseReportStatus(newStatus)
	if !ok {
		return apperrors.Validation("unknown status %q", newStatus)
	}
	if to == models.StatusPending {
		return apperrors.InvalidTransition("reports cannot move back to pending")
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	for attempt := 0; attempt < 2; attempt++ {
		report, err := s.reports.Get(ctx, reportID)
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("report %s not found", reportID.Hex())
		}
		if err != nil {
			return storeErr("load report", err)
		}
		if report.Status.Terminal() {
			return apperrors.InvalidTransition("report is already %s", report.Status)
		}
		if !report.Status.CanTransition(to) {
			return apperrors.InvalidTransition("cannot move report from %s to %s", report.Status, to)
		}

		err = s.reports.UpdateStatusCAS(ctx, reportID, report.Status, to, actorID, s.now())
		if errors.Is(err, store.ErrCASMismatch) {
			continue
		}
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("report %s not found", reportID.Hex())
		}
		if err != nil {
			return storeErr("update report status", err)
		}

		s.events.Publish(ReportStatusChanged{ReportID: reportID, From: report.Status, To: to, By: actorID})
		return nil
	}

	return apperrors.Conflict("report %s was updated concurrently, re-fetch and try again", reportID.Hex())
}

// ListForUser returns the user's reports newest first.
func (s *ReportService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.WasteReport, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	reports, err := s.reports.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, storeErr("list reports", err)
	}
	return reports, nil
}

// ListByStatus serves the staff dashboards.
func (s *ReportService) ListByStatus(ctx context.Context, status string, actorRole models.Role) ([]models.WasteReport, error) {
	if !actorRole.Can(models.CapTransition) {
		return nil, apperrors.Authorization("role %s cannot browse reports by status", actorRole)
	}
	parsed, ok := models.ParseReportStatus(status)
	if !ok {
		return nil, apperrors.Validation("unknown status %q", status)
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	reports, err := s.reports.ListByStatus(ctx, parsed)
	if err != nil {
		return nil, storeErr("list reports", err)
	}
	return reports, nil
}

// ListAll returns every report newest first, for the admin export.
func (s *ReportService) ListAll(ctx context.Context, actorRole models.Role) ([]models.WasteReport, error) {
	if !actorRole.Can(models.CapAggregate) {
		return nil, apperrors.Authorization("role %s cannot export reports", actorRole)
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	reports, err := s.reports.ListAll(ctx)
	if err != nil {
		return nil, storeErr("list reports", err)
	}
	return reports, nil
}

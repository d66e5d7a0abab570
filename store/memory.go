package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecowaste-be/models"
)

// In-memory implementations of the store interfaces. They back the test
// suite and keep the service layer honest about going through the
// interfaces rather than a concrete driver.

type MemoryReportStore struct {
	mu      sync.RWMutex
	reports map[primitive.ObjectID]models.WasteReport
}

func NewMemoryReportStore() *MemoryReportStore {
	return &MemoryReportStore{reports: make(map[primitive.ObjectID]models.WasteReport)}
}

func (s *MemoryReportStore) Insert(ctx context.Context, r *models.WasteReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	s.reports[r.ID] = *r
	return nil
}

func (s *MemoryReportStore) Get(ctx context.Context, id primitive.ObjectID) (*models.WasteReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (s *MemoryReportStore) UpdateStatusCAS(ctx context.Context, id primitive.ObjectID, from, to models.ReportStatus, by primitive.ObjectID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return ErrNotFound
	}
	if r.Status != from {
		return ErrCASMismatch
	}
	r.Status = to
	r.UpdatedBy = &by
	r.UpdatedAt = at
	s.reports[id] = r
	return nil
}

func (s *MemoryReportStore) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.WasteReport, error) {
	return s.filter(func(r models.WasteReport) bool { return r.ReportedBy == userID }, limit), nil
}

func (s *MemoryReportStore) ListByStatus(ctx context.Context, status models.ReportStatus) ([]models.WasteReport, error) {
	return s.filter(func(r models.WasteReport) bool { return r.Status == status }, 0), nil
}

func (s *MemoryReportStore) ListAll(ctx context.Context) ([]models.WasteReport, error) {
	return s.filter(func(models.WasteReport) bool { return true }, 0), nil
}

func (s *MemoryReportStore) ListOpenUrgent(ctx context.Context, limit int) ([]models.WasteReport, error) {
	return s.filter(func(r models.WasteReport) bool {
		urgent := r.Urgency == models.UrgencyHigh || r.Urgency == models.UrgencyEmergency
		return urgent && !r.Status.Terminal()
	}, limit), nil
}

func (s *MemoryReportStore) CountByUserAndStatus(ctx context.Context, userID primitive.ObjectID, status models.ReportStatus) (int64, error) {
	matched := s.filter(func(r models.WasteReport) bool {
		return r.ReportedBy == userID && r.Status == status
	}, 0)
	return int64(len(matched)), nil
}

func (s *MemoryReportStore) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	matched := s.filter(func(r models.WasteReport) bool { return r.ReportedBy == userID }, 0)
	return int64(len(matched)), nil
}

func (s *MemoryReportStore) CountByStatus(ctx context.Context) (map[models.ReportStatus]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[models.ReportStatus]int64)
	for _, r := range s.reports {
		counts[r.Status]++
	}
	return counts, nil
}

// filter returns matching reports newest first.
func (s *MemoryReportStore) filter(match func(models.WasteReport) bool, limit int) []models.WasteReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WasteReport, 0)
	for _, r := range s.reports {
		if match(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type completionKey struct {
	userID   primitive.ObjectID
	moduleID string
}

type MemoryCompletionStore struct {
	mu          sync.RWMutex
	completions map[completionKey]models.TrainingCompletion
}

func NewMemoryCompletionStore() *MemoryCompletionStore {
	return &MemoryCompletionStore{completions: make(map[completionKey]models.TrainingCompletion)}
}

func (s *MemoryCompletionStore) Upsert(ctx context.Context, c models.TrainingCompletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completions[completionKey{c.UserID, c.ModuleID}] = c
	return nil
}

func (s *MemoryCompletionStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TrainingCompletion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TrainingCompletion, 0)
	for key, c := range s.completions {
		if key.userID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ModuleID < out[j].ModuleID })
	return out, nil
}

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *MemoryUserStore) Insert(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryUserStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

func (s *MemoryUserStore) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, u := range s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

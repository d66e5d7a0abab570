package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"ecowaste-be/models"
	"ecowaste-be/store"
)

// DashboardService composes read-only role views over the ledgers. A failing
// ledger query degrades its section instead of blanking the whole dashboard.
type DashboardService struct {
	reports  store.ReportStore
	users    store.UserStore
	rewards  *RewardsEngine
	training *TrainingService
	log      *zap.Logger
}

func NewDashboardService(reports store.ReportStore, users store.UserStore, rewards *RewardsEngine, training *TrainingService, log *zap.Logger) *DashboardService {
	return &DashboardService{
		reports:  reports,
		users:    users,
		rewards:  rewards,
		training: training,
		log:      log,
	}
}

const recentReportLimit = 5

type CitizenDashboard struct {
	Points           int                  `json:"points"`
	Level            string               `json:"level"`
	ReportsSubmitted int64                `json:"reportsSubmitted"`
	RecentReports    []models.WasteReport `json:"recentReports"`
	TrainingProgress models.Progress      `json:"trainingProgress"`
	Degraded         bool                 `json:"degraded"`
}

func (s *DashboardService) Citizen(ctx context.Context, userID primitive.ObjectID) CitizenDashboard {
	dash := CitizenDashboard{RecentReports: []models.WasteReport{}}

	summary, err := s.rewards.Summary(ctx, userID)
	if err != nil {
		s.degrade(&dash.Degraded, "rewards", err)
	} else {
		dash.Points = summary.Points
		dash.Level = summary.Level
	}

	qctx, cancel := withTimeout(ctx)
	defer cancel()

	if count, err := s.reports.CountByUser(qctx, userID); err != nil {
		s.degrade(&dash.Degraded, "report count", err)
	} else {
		dash.ReportsSubmitted = count
	}

	if recent, err := s.reports.ListByUser(qctx, userID, recentReportLimit); err != nil {
		s.degrade(&dash.Degraded, "recent reports", err)
	} else {
		dash.RecentReports = recent
	}

	if progress, err := s.training.GetProgress(ctx, userID); err != nil {
		s.degrade(&dash.Degraded, "training progress", err)
	} else {
		dash.TrainingProgress = progress
	}

	return dash
}

type AdminDashboard struct {
	TotalUsers      int64                         `json:"totalUsers"`
	ActiveWorkers   int64                         `json:"activeWorkers"`
	ReportsByStatus map[models.ReportStatus]int64 `json:"reportsByStatus"`
	RecentAlerts    []models.WasteReport          `json:"recentAlerts"`
	Degraded        bool                          `json:"degraded"`
}

const recentAlertLimit = 5

func (s *DashboardService) Admin(ctx context.Context) AdminDashboard {
	dash := AdminDashboard{
		ReportsByStatus: map[models.ReportStatus]int64{},
		RecentAlerts:    []models.WasteReport{},
	}

	qctx, cancel := withTimeout(ctx)
	defer cancel()

	if count, err := s.users.Count(qctx); err != nil {
		s.degrade(&dash.Degraded, "user count", err)
	} else {
		dash.TotalUsers = count
	}

	if count, err := s.users.CountByRole(qctx, models.RoleWorker); err != nil {
		s.degrade(&dash.Degraded, "worker count", err)
	} else {
		dash.ActiveWorkers = count
	}

	if counts, err := s.reports.CountByStatus(qctx); err != nil {
		s.degrade(&dash.Degraded, "report counts", err)
	} else {
		dash.ReportsByStatus = counts
	}

	if alerts, err := s.reports.ListOpenUrgent(qctx, recentAlertLimit); err != nil {
		s.degrade(&dash.Degraded, "alerts", err)
	} else {
		dash.RecentAlerts = alerts
	}

	return dash
}

func (s *DashboardService) degrade(flag *bool, section string, err error) {
	*flag = true
	if s.log != nil {
		s.log.Warn("dashboard section degraded", zap.String("section", section), zap.Error(err))
	}
}

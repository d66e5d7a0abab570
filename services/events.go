package services

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"ecowaste-be/metrics"
	"ecowaste-be/models"
)

// Ledger mutations emit events. The rewards engine recomputes from the
// ledgers on demand, so events are consumed for observability only and
// nothing downstream depends on their delivery.

type Event interface{ eventName() string }

type ReportCreated struct {
	ReportID primitive.ObjectID
	UserID   primitive.ObjectID
}

func (ReportCreated) eventName() string { return "report_created" }

type ReportStatusChanged struct {
	ReportID primitive.ObjectID
	From     models.ReportStatus
	To       models.ReportStatus
	By       primitive.ObjectID
}

func (ReportStatusChanged) eventName() string { return "report_status_changed" }

type ModuleCompleted struct {
	UserID   primitive.ObjectID
	ModuleID string
	Score    int
}

func (ModuleCompleted) eventName() string { return "module_completed" }

type Sink interface {
	Publish(e Event)
}

// LogSink logs every event and keeps the prometheus counters current.
type LogSink struct {
	Log *zap.Logger
}

func (s *LogSink) Publish(e Event) {
	switch ev := e.(type) {
	case ReportCreated:
		metrics.ReportsSubmitted.Inc()
		s.Log.Info("report created",
			zap.String("reportId", ev.ReportID.Hex()),
			zap.String("userId", ev.UserID.Hex()))
	case ReportStatusChanged:
		metrics.StatusChanges.WithLabelValues(string(ev.To)).Inc()
		s.Log.Info("report status changed",
			zap.String("reportId", ev.ReportID.Hex()),
			zap.String("from", string(ev.From)),
			zap.String("to", string(ev.To)),
			zap.String("by", ev.By.Hex()))
	case ModuleCompleted:
		metrics.CompletionsRecorded.Inc()
		s.Log.Info("module completed",
			zap.String("userId", ev.UserID.Hex()),
			zap.String("moduleId", ev.ModuleID),
			zap.Int("score", ev.Score))
	}
}

// NopSink discards events. Used in tests.
type NopSink struct{}

func (NopSink) Publish(Event) {}

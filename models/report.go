package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WasteType enum
type WasteType string

const (
	WasteMixed        WasteType = "mixed"
	WastePlastic      WasteType = "plastic"
	WasteOrganic      WasteType = "organic"
	WastePaper        WasteType = "paper"
	WasteElectronic   WasteType = "electronic"
	WasteHazardous    WasteType = "hazardous"
	WasteConstruction WasteType = "construction"
	WasteOther        WasteType = "other"
)

func ParseWasteType(s string) (WasteType, bool) {
	switch WasteType(s) {
	case WasteMixed, WastePlastic, WasteOrganic, WastePaper,
		WasteElectronic, WasteHazardous, WasteConstruction, WasteOther:
		return WasteType(s), true
	}
	return "", false
}

// Urgency enum
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

func ParseUrgency(s string) (Urgency, bool) {
	switch Urgency(s) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency:
		return Urgency(s), true
	}
	return "", false
}

// ReportStatus enum
type ReportStatus string

const (
	StatusPending    ReportStatus = "pending"
	StatusInProgress ReportStatus = "in_progress"
	StatusCollected  ReportStatus = "collected"
	StatusRejected   ReportStatus = "rejected"
)

func ParseReportStatus(s string) (ReportStatus, bool) {
	switch ReportStatus(s) {
	case StatusPending, StatusInProgress, StatusCollected, StatusRejected:
		return ReportStatus(s), true
	}
	return "", false
}

// Terminal reports a status from which no further transition is permitted.
func (s ReportStatus) Terminal() bool {
	return s == StatusCollected || s == StatusRejected
}

// CanTransition encodes the report status machine:
// pending -> in_progress -> collected, with rejected reachable from any
// non-terminal state. There are no backward edges.
func (s ReportStatus) CanTransition(to ReportStatus) bool {
	if s.Terminal() {
		return false
	}
	switch to {
	case StatusInProgress:
		return s == StatusPending
	case StatusCollected:
		return s == StatusInProgress
	case StatusRejected:
		return true
	}
	return false
}

// WasteReport represents a citizen's waste issue report. Reports are never
// deleted; they end their life in a terminal status.
type WasteReport struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ReportedBy  primitive.ObjectID  `bson:"reportedBy" json:"reportedBy"`
	WasteType   WasteType           `bson:"wasteType" json:"wasteType"`
	Location    string              `bson:"location" json:"location"`
	Urgency     Urgency             `bson:"urgency" json:"urgency"`
	Description string              `bson:"description" json:"description"`
	PhotoRef    *string             `bson:"photoRef,omitempty" json:"photoRef,omitempty"`
	Latitude    *float64            `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   *float64            `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Status      ReportStatus        `bson:"status" json:"status"`
	UpdatedBy   *primitive.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

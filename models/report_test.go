package models

import "testing"

func TestReportStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ReportStatus
		allowed  bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCollected, false},
		{StatusPending, StatusPending, false},
		{StatusInProgress, StatusCollected, true},
		{StatusInProgress, StatusRejected, true},
		{StatusInProgress, StatusPending, false},
		{StatusInProgress, StatusInProgress, false},
		{StatusCollected, StatusPending, false},
		{StatusCollected, StatusInProgress, false},
		{StatusCollected, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusInProgress, false},
		{StatusRejected, StatusCollected, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	if !StatusCollected.Terminal() {
		t.Error("collected should be terminal")
	}
	if !StatusRejected.Terminal() {
		t.Error("rejected should be terminal")
	}
	if StatusPending.Terminal() {
		t.Error("pending should not be terminal")
	}
	if StatusInProgress.Terminal() {
		t.Error("in_progress should not be terminal")
	}
}

func TestParseEnums(t *testing.T) {
	if _, ok := ParseWasteType("plastic"); !ok {
		t.Error("plastic should parse")
	}
	if _, ok := ParseWasteType("nuclear"); ok {
		t.Error("nuclear should not parse")
	}
	if _, ok := ParseUrgency("emergency"); !ok {
		t.Error("emergency should parse")
	}
	if _, ok := ParseUrgency("whenever"); ok {
		t.Error("whenever should not parse")
	}
	if _, ok := ParseReportStatus("in_progress"); !ok {
		t.Error("in_progress should parse")
	}
	if _, ok := ParseReportStatus("In Progress"); ok {
		t.Error("display-cased status should not parse")
	}
}

func TestRoleCapabilities(t *testing.T) {
	if !RoleCitizen.Can(CapSubmit) {
		t.Error("citizen should be able to submit")
	}
	if RoleCitizen.Can(CapTransition) {
		t.Error("citizen should not transition reports")
	}
	for _, staff := range []Role{RoleWorker, RoleCommittee, RoleAdmin} {
		if !staff.Can(CapTransition) {
			t.Errorf("%s should transition reports", staff)
		}
	}
	if RoleWorker.Can(CapAggregate) {
		t.Error("worker should not aggregate")
	}
	if !RoleAdmin.Can(CapAggregate) {
		t.Error("admin should aggregate")
	}
}

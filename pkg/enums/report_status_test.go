package enums

import "testing"

func TestReportStatusIsValid(t *testing.T) {
	for _, status := range ReportStatuses() {
		if !status.IsValid() {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	if ReportStatus("vanished").IsValid() {
		t.Fatal("expected unknown status to be invalid")
	}
	if ReportStatus("").IsValid() {
		t.Fatal("expected empty status to be invalid")
	}
}

func TestParseReportStatus(t *testing.T) {
	status, err := ParseReportStatus("in_progress")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != ReportStatusInProgress {
		t.Fatalf("unexpected status %q", status)
	}

	if _, err := ParseReportStatus("done"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestReportStatusesOrder(t *testing.T) {
	want := []ReportStatus{ReportStatusPending, ReportStatusInProgress, ReportStatusCompleted}
	got := ReportStatuses()
	if len(got) != len(want) {
		t.Fatalf("expected %d statuses, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q at index %d, got %q", want[i], i, got[i])
		}
	}

	// Mutating the returned slice must not affect the canonical set.
	got[0] = ReportStatus("mutated")
	if ReportStatuses()[0] != ReportStatusPending {
		t.Fatal("canonical status order was mutated")
	}
}

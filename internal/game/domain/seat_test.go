package domain

import "testing"

func TestSeatStatusRoundTrip(t *testing.T) {
	t.Parallel()

	for _, status := range []SeatStatus{SeatStatusInGame, SeatStatusEliminated} {
		if got := ParseSeatStatus(status.String()); got != status {
			t.Fatalf("ParseSeatStatus(%q) = %v, want %v", status.String(), got, status)
		}
		if !status.IsValid() {
			t.Fatalf("status %v should be valid", status)
		}
	}
	if ParseSeatStatus("benched") != SeatStatusUnspecified {
		t.Fatal("expected unspecified for unknown label")
	}
	if SeatStatusUnspecified.IsValid() {
		t.Fatal("unspecified should be invalid")
	}
}

func TestExitReasonIsValid(t *testing.T) {
	t.Parallel()

	for _, reason := range []ExitReason{"", ExitReasonKilled, ExitReasonVoted, ExitReasonRemoved} {
		if !reason.IsValid() {
			t.Fatalf("reason %q should be valid", reason)
		}
	}
	if ExitReason("rage_quit").IsValid() {
		t.Fatal("unknown reason should be invalid")
	}
}

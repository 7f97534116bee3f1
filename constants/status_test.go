package constants

import "testing"

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from, to ProcessingStatus
		want     bool
	}{
		{StatusUploaded, StatusOCRPending, true},
		{StatusOCRPending, StatusOCRComplete, true},
		{StatusOCRComplete, StatusGradingPending, true},
		{StatusGradingPending, StatusGradingComplete, true},

		// skipping forward is not allowed
		{StatusUploaded, StatusOCRComplete, false},
		{StatusUploaded, StatusGradingComplete, false},
		{StatusOCRPending, StatusGradingPending, false},

		// no going backwards
		{StatusOCRComplete, StatusOCRPending, false},
		{StatusGradingComplete, StatusUploaded, false},

		// any non-terminal state can absorb into error
		{StatusUploaded, StatusError, true},
		{StatusOCRPending, StatusError, true},
		{StatusOCRComplete, StatusError, true},
		{StatusGradingPending, StatusError, true},

		// terminal states have no outgoing edges
		{StatusError, StatusUploaded, false},
		{StatusError, StatusError, false},
		{StatusGradingComplete, StatusError, false},

		// self loops
		{StatusUploaded, StatusUploaded, false},
		{StatusOCRPending, StatusOCRPending, false},
	}
	for _, tt := range tests {
		if got := ValidTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("ValidTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTerminal(t *testing.T) {
	for _, tt := range []struct {
		s    ProcessingStatus
		want bool
	}{
		{StatusError, true},
		{StatusGradingComplete, true},
		{StatusUploaded, false},
		{StatusOCRPending, false},
		{StatusOCRComplete, false},
		{StatusGradingPending, false},
	} {
		if got := Terminal(tt.s); got != tt.want {
			t.Errorf("Terminal(%s) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestAtLeast(t *testing.T) {
	if !AtLeast(StatusGradingPending, StatusOCRComplete) {
		t.Error("grading_pending should be at least ocr_complete")
	}
	if AtLeast(StatusUploaded, StatusOCRPending) {
		t.Error("uploaded is before ocr_pending")
	}
	if AtLeast(StatusError, StatusUploaded) {
		t.Error("error sits outside the forward order")
	}
}

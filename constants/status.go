package constants

// ProcessingStatus is the canonical status for rows in answer_script.
type ProcessingStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUploaded        ProcessingStatus = "uploaded"         // received, identity may still be unresolved
	StatusOCRPending      ProcessingStatus = "ocr_pending"      // identified and enqueued for text extraction
	StatusOCRComplete     ProcessingStatus = "ocr_complete"     // full text extracted
	StatusGradingPending  ProcessingStatus = "grading_pending"  // answers segmented, grading fan-out in flight
	StatusGradingComplete ProcessingStatus = "grading_complete" // every answer graded or flagged grading_failed
	StatusError           ProcessingStatus = "error"            // terminal; reason stored on the script
)

// statusOrder ranks the forward states. Error sits outside the order.
var statusOrder = map[ProcessingStatus]int{
	StatusUploaded:        0,
	StatusOCRPending:      1,
	StatusOCRComplete:     2,
	StatusGradingPending:  3,
	StatusGradingComplete: 4,
}

// ProcessingStatuses holds every valid status value, for schema validation.
var ProcessingStatuses = []string{
	string(StatusUploaded),
	string(StatusOCRPending),
	string(StatusOCRComplete),
	string(StatusGradingPending),
	string(StatusGradingComplete),
	string(StatusError),
}

// ValidTransition reports whether from -> to is a legal state machine edge:
// one step forward in the total order, or any non-terminal state to error.
func ValidTransition(from, to ProcessingStatus) bool {
	if from == StatusError || from == StatusGradingComplete {
		return false
	}
	if to == StatusError {
		return true
	}
	fo, ok1 := statusOrder[from]
	too, ok2 := statusOrder[to]
	return ok1 && ok2 && too == fo+1
}

// Terminal reports whether no further transitions are allowed from s.
func Terminal(s ProcessingStatus) bool {
	return s == StatusError || s == StatusGradingComplete
}

// AtLeast reports whether s has reached stage min in the forward order.
func AtLeast(s, min ProcessingStatus) bool {
	so, ok1 := statusOrder[s]
	mo, ok2 := statusOrder[min]
	return ok1 && ok2 && so >= mo
}

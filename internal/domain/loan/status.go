package loan

// transitions is the lifecycle graph:
//
//	draft → submitted → under_review ⇄ documents_required
//	under_review → approved | rejected
//	approved → disbursed → closed
//
// rejected and closed are terminal.
var transitions = map[Status][]Status{
	StatusDraft:             {StatusSubmitted},
	StatusSubmitted:         {StatusUnderReview},
	StatusUnderReview:       {StatusDocumentsRequired, StatusApproved, StatusRejected},
	StatusDocumentsRequired: {StatusUnderReview},
	StatusApproved:          {StatusDisbursed},
	StatusDisbursed:         {StatusClosed},
}

// CanTransition reports whether from → to is a legal lifecycle edge.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Editable reports whether the owner may still mutate application fields.
func Editable(s Status) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusDocumentsRequired:
		return true
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func Terminal(s Status) bool { return len(transitions[s]) == 0 }

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusDocumentsRequired,
		StatusApproved, StatusRejected, StatusDisbursed, StatusClosed:
		return true
	}
	return false
}

package loan

import "testing"

func TestCanTransition_LegalEdges(t *testing.T) {
	legal := [][2]Status{
		{StatusDraft, StatusSubmitted},
		{StatusSubmitted, StatusUnderReview},
		{StatusUnderReview, StatusDocumentsRequired},
		{StatusDocumentsRequired, StatusUnderReview},
		{StatusUnderReview, StatusApproved},
		{StatusUnderReview, StatusRejected},
		{StatusApproved, StatusDisbursed},
		{StatusDisbursed, StatusClosed},
	}
	for _, edge := range legal {
		if !CanTransition(edge[0], edge[1]) {
			t.Fatalf("%s → %s should be legal", edge[0], edge[1])
		}
	}
}

func TestCanTransition_IllegalEdges(t *testing.T) {
	illegal := [][2]Status{
		{StatusDraft, StatusDisbursed}, // no skipping approval
		{StatusDraft, StatusApproved},
		{StatusSubmitted, StatusApproved},
		{StatusApproved, StatusRejected},
		{StatusRejected, StatusUnderReview}, // terminal
		{StatusClosed, StatusDisbursed},     // terminal
		{StatusDisbursed, StatusApproved},   // no going back
	}
	for _, edge := range illegal {
		if CanTransition(edge[0], edge[1]) {
			t.Fatalf("%s → %s should be illegal", edge[0], edge[1])
		}
	}
}

func TestEditable(t *testing.T) {
	editable := []Status{StatusDraft, StatusSubmitted, StatusDocumentsRequired}
	for _, s := range editable {
		if !Editable(s) {
			t.Fatalf("%s should be editable", s)
		}
	}
	frozen := []Status{StatusUnderReview, StatusApproved, StatusRejected, StatusDisbursed, StatusClosed}
	for _, s := range frozen {
		if Editable(s) {
			t.Fatalf("%s should be read-only", s)
		}
	}
}

func TestTerminal(t *testing.T) {
	if !Terminal(StatusRejected) || !Terminal(StatusClosed) {
		t.Fatal("rejected and closed must be terminal")
	}
	if Terminal(StatusDraft) || Terminal(StatusDisbursed) {
		t.Fatal("draft and disbursed are not terminal")
	}
}

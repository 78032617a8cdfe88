package callstore

import (
	"testing"
)

func TestSetStatus(t *testing.T) {

	t.Run("AdvancesWithSequence", func(t *testing.T) {
		Save(&CallRecord{CallSID: "CA_advance"})
		defer Delete("CA_advance")
		if !SetStatus("CA_advance", "ringing", 1) {
			t.Fatalf("Expected the first status to be accepted")
		}
		if !SetStatus("CA_advance", "in-progress", 2) {
			t.Errorf("Expected the next sequence to be accepted")
		}
		if got := Get("CA_advance").Status; got != "in-progress" {
			t.Errorf("Expected status in-progress, got [%s]", got)
		}
	})

	t.Run("RejectsRedeliveredSequence", func(t *testing.T) {
		Save(&CallRecord{CallSID: "CA_redelivered"})
		defer Delete("CA_redelivered")
		if !SetStatus("CA_redelivered", "completed", 4) {
			t.Fatalf("Expected the first delivery to be accepted")
		}
		if SetStatus("CA_redelivered", "completed", 4) {
			t.Errorf("Expected a redelivered callback with the same sequence to be rejected")
		}
	})

	t.Run("RejectsStaleSequence", func(t *testing.T) {
		Save(&CallRecord{CallSID: "CA_stale"})
		defer Delete("CA_stale")
		if !SetStatus("CA_stale", "completed", 4) {
			t.Fatalf("Expected the first delivery to be accepted")
		}
		if SetStatus("CA_stale", "ringing", 1) {
			t.Errorf("Expected an out of order callback to be rejected")
		}
		if got := Get("CA_stale").Status; got != "completed" {
			t.Errorf("Expected status completed, got [%s]", got)
		}
	})

	t.Run("UnknownCall", func(t *testing.T) {
		if SetStatus("CA_unknown", "ringing", 1) {
			t.Errorf("Expected an unknown call SID to be rejected")
		}
	})
}

func TestSaveAndDelete(t *testing.T) {
	Save(&CallRecord{CallSID: "CA_lifecycle"})
	if Get("CA_lifecycle") == nil {
		t.Fatalf("Expected the record to be retrievable after Save")
	}
	Delete("CA_lifecycle")
	if Get("CA_lifecycle") != nil {
		t.Errorf("Expected the record to be gone after Delete")
	}
}

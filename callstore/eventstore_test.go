package callstore

import (
	"testing"
)

func TestGetEventsAlterSlice(t *testing.T) {

	t.Run("GetEvents", func(t *testing.T) {
		estore := EventStore{}
		estore.AddNewEvent("testSid_1", "initiated", 0, Provider)
		estore.AddNewEvent("testSid_1", "ringing", 1, Provider)

		before := estore.GetEvents("testSid_1")
		before[0] = StatusEvent{Status: "new"}

		after := estore.GetEvents("testSid_1")
		if before[0].Status == after[0].Status {
			t.Errorf("Changes in before %v are reflected in After %v", before, after)
		}
	})
}

func TestEventsOrdering(t *testing.T) {

	t.Run("Ordering", func(t *testing.T) {
		estore := EventStore{}
		estore.AddNewEvent("testSid_1", "initiated", 0, Provider)
		estore.AddNewEvent("testSid_1", "ringing", 1, Provider)
		estore.AddNewEvent("testSid_1", "completed", 2, Provider)

		events := estore.GetEvents("testSid_1")
		if len(events) != 3 {
			t.Fatalf("Expected 3 events, got %d", len(events))
		}
		if events[0].Status != "initiated" || events[2].Status != "completed" {
			t.Errorf("Events out of order: %v", events)
		}
	})
}

package callevent

import (
	"testing"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/callstore"
)

func TestScheduleCleanup(t *testing.T) {
	origDelay := recordCleanupDelay
	recordCleanupDelay = 10 * time.Millisecond
	defer func() { recordCleanupDelay = origDelay }()

	callstore.Save(&callstore.CallRecord{CallSID: "CA_cleanup"})
	scheduleCleanup("CA_cleanup")

	if callstore.Get("CA_cleanup") == nil {
		t.Fatalf("Expected the record to survive until the delay elapses")
	}

	deadline := time.Now().Add(2 * time.Second)
	for callstore.Get("CA_cleanup") != nil {
		if time.Now().After(deadline) {
			t.Fatalf("Expected the record to be deleted after the cleanup delay")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

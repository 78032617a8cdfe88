package callstore

import (
	"testing"
)

func TestGetLatenciesAlterSlice(t *testing.T) {

	t.Run("GetLatency", func(t *testing.T) {
		lstore := LatencyStore{}
		lstore.AddNewStep("testSid", "testStep")
		lstore.RecordLatency("testSid", "testStep", APIResponseTimeinMs, 20)
		before := lstore.GetLatencies("testSid")
		before[0] = LatencyParameter{StepIdentifier: "new"}

		after := lstore.GetLatencies("testSid")

		if before[0].StepIdentifier == after[0].StepIdentifier {
			t.Errorf("Changes in before %v are reflected in After %v", before, after)
		}
	})
}
func TestGetLatenciesDeleteSlice(t *testing.T) {

	t.Run("GetLatency", func(t *testing.T) {
		lstore := LatencyStore{}
		lstore.AddNewStep("testSid", "testStep")
		lstore.RecordLatency("testSid", "testStep", CallbackResponseTimeinMs, 20)
		before := lstore.GetLatencies("testSid")
		before = nil

		after := lstore.GetLatencies("testSid")
		if after == nil {
			t.Errorf("Changes in before %v are reflected in After %v", before, after)
		}
	})
}

func TestRecordLatencyNoStep(t *testing.T) {
	t.Run("NoStep", func(t *testing.T) {
		lstore := LatencyStore{}
		if ok := lstore.RecordLatency("testSid", "testStep", APIResponseTimeinMs, 20); ok {
			t.Errorf("Expected RecordLatency to fail when no step was added")
		}
	})
}

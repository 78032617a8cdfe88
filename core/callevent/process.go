package callevent

import (
	"context"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/callback"
	"bitbucket.org/yellowmessenger/twilio-voice/callstore"
	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/globals"
	"bitbucket.org/yellowmessenger/twilio-voice/models/mysql"
	"bitbucket.org/yellowmessenger/twilio-voice/recordings"
	"bitbucket.org/yellowmessenger/twilio-voice/twilio"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

var timeLayout = "2006-01-02T15:04:05"

// recordCleanupDelay is how long a finished call stays in the store.
// The recording status callback and the archival upload can land after
// the final call status, so the record is kept around for them.
var recordCleanupDelay = 10 * time.Minute

// Process handles one status callback from the provider. Recording
// callbacks hand the recording off for archival, call progress
// callbacks advance the call record and schedule the customer callback
// once the call reaches a final state.
func Process(ctx context.Context, params twilio.RequestParams) {
	callSID := params.CallSid
	ymlogger.LogInfof(callSID, "Status callback. CallStatus: [%s] Sequence: [%d] RecordingStatus: [%s]", params.CallStatus, params.SequenceNumber, params.RecordingStatus)

	if params.RecordingSid != "" {
		processRecording(ctx, callSID, params)
		return
	}

	record := callstore.Get(callSID)
	if record == nil {
		// Inbound calls show up here without a create-call request.
		record = &callstore.CallRecord{
			CallSID:     callSID,
			Direction:   params.Direction,
			From:        params.From,
			To:          params.To,
			Status:      string(params.CallStatus),
			CreatedTime: time.Now(),
			CallbackURL: configmanager.ConfStore.InboundCallbackURL,
		}
		callstore.Save(record)
		globals.IncrementNoOfLiveCalls()
		if err := mysql.InsertCallRecord(callSID, params.Direction, params.From, params.To, string(params.CallStatus)); err != nil {
			ymlogger.LogErrorf(callSID, "Failed to insert the call record in DB. Error: [%#v]", err)
		}
	}

	if !callstore.SetStatus(callSID, string(params.CallStatus), params.SequenceNumber) {
		return
	}
	record.EventLog.AddNewEvent(callSID, string(params.CallStatus), params.SequenceNumber, callstore.Provider)
	if params.AnsweredBy != "" {
		callstore.SetAnsweredBy(callSID, string(params.AnsweredBy))
	}

	switch params.CallStatus {
	case twilio.CallStatusCompleted, twilio.CallStatusFailed, twilio.CallStatusBusy, twilio.CallStatusNoAnswer, twilio.CallStatusCanceled:
		finishCall(ctx, callSID, params)
	default:
		if err := mysql.UpdateCallStatus(callSID, string(params.CallStatus)); err != nil {
			ymlogger.LogErrorf(callSID, "Failed to update the call record in DB. Error: [%#v]", err)
		}
	}
}

func finishCall(ctx context.Context, callSID string, params twilio.RequestParams) {
	endTime := params.Timestamp
	if endTime == "" {
		endTime = time.Now().UTC().Format(timeLayout)
	}
	callstore.SetTimes(callSID, "", endTime, params.CallDuration)
	globals.DecrementNoOfLiveCalls()
	ymlogger.LogInfof(callSID, "Call finished with status [%s]. Live calls [%d]", params.CallStatus, globals.GetNoOfLiveCalls())

	record := callstore.Get(callSID)
	recordingURL := ""
	answeredBy := ""
	if record != nil {
		recordingURL = record.RecordingURL
		answeredBy = record.AnsweredBy
	}
	if err := mysql.UpdateCallCompletion(callSID, string(params.CallStatus), params.CallDuration, answeredBy, recordingURL); err != nil {
		ymlogger.LogErrorf(callSID, "Failed to update the call record in DB. Error: [%#v]", err)
	}
	if err := callback.StoreCallbackRequest(ctx, callSID); err != nil {
		ymlogger.LogErrorf(callSID, "Failed to schedule the callback. Error: [%#v]", err)
	}
	scheduleCleanup(callSID)
}

// scheduleCleanup drops the call record from the store once the late
// callbacks have had their window.
func scheduleCleanup(callSID string) {
	time.AfterFunc(recordCleanupDelay, func() {
		callstore.Delete(callSID)
		ymlogger.LogInfof(callSID, "Cleaned up the call record. Records held: [%d]", callstore.Count())
	})
}

func processRecording(ctx context.Context, callSID string, params twilio.RequestParams) {
	ymlogger.LogInfof(callSID, "Recording [%s] is [%s]. Duration: [%d]", params.RecordingSid, params.RecordingStatus, params.RecordingDuration)
	if params.RecordingStatus != "completed" {
		return
	}
	callstore.SetRecording(callSID, params.RecordingSid, params.RecordingURL)
	go func() {
		startTime := time.Now()
		archiveURL, err := recordings.Archive(ctx, callSID, params.RecordingSid, params.RecordingURL)
		if err != nil {
			ymlogger.LogErrorf(callSID, "Failed to archive the recording. Error: [%#v]", err)
			return
		}
		callstore.SetArchiveURL(callSID, archiveURL)
		if record := callstore.Get(callSID); record != nil {
			record.Latencies.AddNewStep(callSID, "archive")
			record.Latencies.RecordLatency(callSID, "archive", callstore.ArchiveResponseTimeinMs, time.Since(startTime).Milliseconds())
		}
	}()
}

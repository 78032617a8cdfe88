package fetchcall

import (
	"context"
	"strconv"

	"bitbucket.org/yellowmessenger/twilio-voice/callstore"
	"bitbucket.org/yellowmessenger/twilio-voice/connections"
	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/twilio"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

var timeLayout = "2006-01-02T15:04:05"

// Get returns the call details, preferring the in-memory record and
// falling back to the API for calls this instance does not know.
func Get(
	ctx context.Context,
	callSID string,
) (
	*contracts.GetCallResponse,
	error,
) {
	if record := callstore.Get(callSID); record != nil {
		return fromRecord(record), nil
	}

	ymlogger.LogInfof(callSID, "No call record in memory. Fetching the call from the API")
	client, err := connections.GetTwilioClient()
	if err != nil {
		ymlogger.LogErrorf(callSID, "Voice API client is not available. Error: [%#v]", err)
		return &contracts.GetCallResponse{}, err
	}
	callRes, err := twilio.Hit[twilio.CallResponse](ctx, client, twilio.NewFetchCall(client.AccountSID(), callSID))
	if err != nil {
		ymlogger.LogErrorf(callSID, "Failed to fetch the call. Error: [%#v]", err)
		return &contracts.GetCallResponse{}, err
	}

	duration := 0
	if len(callRes.Duration) > 0 {
		if d, convErr := strconv.Atoi(callRes.Duration); convErr == nil {
			duration = d
		}
	}
	response := new(contracts.GetCallResponse)
	responseData := new(contracts.SingleGetCallResponse)
	responseData.ResourceData = &contracts.GetCall{
		SID:         callRes.Sid,
		Direction:   callRes.Direction,
		From:        callRes.From,
		To:          callRes.To,
		Status:      string(callRes.Status),
		CreatedTime: callRes.DateCreated,
		StartTime:   callRes.StartTime,
		EndTime:     callRes.EndTime,
		Duration:    duration,
		AnsweredBy:  callRes.AnsweredBy,
	}
	responseData.Msg = "Successful Request"
	responseData.Status = "success"
	response.ResponseData = *responseData
	return response, nil
}

func fromRecord(record *callstore.CallRecord) *contracts.GetCallResponse {
	response := new(contracts.GetCallResponse)
	responseData := new(contracts.SingleGetCallResponse)
	resourceData := &contracts.GetCall{
		SID:          record.CallSID,
		Direction:    record.Direction,
		From:         record.From,
		To:           record.To,
		Status:       record.Status,
		CreatedTime:  record.CreatedTime.Format(timeLayout),
		StartTime:    record.StartTime,
		EndTime:      record.EndTime,
		Duration:     record.Duration,
		AnsweredBy:   record.AnsweredBy,
		RecordingURL: record.RecordingURL,
		ArchiveURL:   record.ArchiveURL,
	}
	if record.Latencies != nil {
		resourceData.LatencyInfo = record.Latencies.GetLatencies(record.CallSID)
	}
	if record.EventLog != nil {
		resourceData.Events = record.EventLog.GetEvents(record.CallSID)
	}
	responseData.ResourceData = resourceData
	responseData.Msg = "Successful Request"
	responseData.Status = "success"
	response.ResponseData = *responseData
	return response
}

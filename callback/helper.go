package callback

import (
	"context"
	"encoding/json"
	"strconv"

	"bitbucket.org/yellowmessenger/twilio-voice/callstore"
	"bitbucket.org/yellowmessenger/twilio-voice/metrics"
	"bitbucket.org/yellowmessenger/twilio-voice/models/mysql"
	"bitbucket.org/yellowmessenger/twilio-voice/newrelic"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"

	guuid "github.com/google/uuid"
)

// CallbackRequest holds the parameters to be sent in the call back
type CallbackRequest struct {
	TraceID      string                       `json:"traceId"`
	SID          string                       `json:"sid"`
	Direction    string                       `json:"direction"`
	Status       string                       `json:"status"`
	PhoneNumber  string                       `json:"phone_no"`
	StartTime    string                       `json:"start_time"`
	RingingTime  int                          `json:"ringing_time"`
	Duration     int                          `json:"duration"`
	CallerID     string                       `json:"caller_id"`
	EndTime      string                       `json:"end_time"`
	AnsweredBy   string                       `json:"answered_by,omitempty"`
	RecordingURL string                       `json:"recording_url"`
	ArchiveURL   string                       `json:"archive_url,omitempty"`
	LatencyInfo  []callstore.LatencyParameter `json:"latency_info,omitempty"`
	ExtraParams  interface{}                  `json:"extra_params"`
}

// StoreCallbackRequest schedules the callback for the call by saving
// it in the callbacks table. The callback worker picks it from there.
func StoreCallbackRequest(
	ctx context.Context,
	callSID string,
) error {
	record := callstore.Get(callSID)
	if record == nil {
		ymlogger.LogErrorf(callSID, "No call record found while preparing the callback")
		return nil
	}
	if record.CallbackURL == "" {
		ymlogger.LogInfo(callSID, "No callback URL configured for the call. Skipping the callback")
		return nil
	}
	callbackReqBody := prepareCallbackRequestBody(record)
	callbackReqBodyJSON, err := json.Marshal(callbackReqBody)
	if err != nil {
		ymlogger.LogErrorf(callSID, "Failed to prepare the call back request body. Error: [%#v]", err)
		return err
	}
	ymlogger.LogDebugf(callSID, "Saving Callback record with request Body: [%v]", string(callbackReqBodyJSON))
	if err = mysql.InsertCallbackRecord(callSID, record.CallbackURL, string(callbackReqBodyJSON)); err != nil {
		ymlogger.LogErrorf(callSID, "Failed to save the callback record in DB. Error: [%#v]", err)
		return err
	}
	sendMetric(callbackReqBody, record.CampaignID, record.Direction)
	return nil
}

func prepareCallbackRequestBody(record *callstore.CallRecord) CallbackRequest {
	var req CallbackRequest
	req.TraceID = guuid.New().String()
	req.SID = record.CallSID
	req.Direction = record.Direction
	req.Status = record.Status
	req.PhoneNumber = record.To
	req.StartTime = record.StartTime
	req.RingingTime = record.RingingDuration
	req.Duration = record.Duration
	req.CallerID = record.From
	req.EndTime = record.EndTime
	req.AnsweredBy = record.AnsweredBy
	req.RecordingURL = record.RecordingURL
	req.ArchiveURL = record.ArchiveURL
	if record.Latencies != nil {
		req.LatencyInfo = record.Latencies.GetLatencies(record.CallSID)
	}
	if record.ExtraParams != nil {
		req.ExtraParams = record.ExtraParams
	}
	return req
}

func sendMetric(req CallbackRequest, campaignID, direction string) {
	eventData := map[string]interface{}{
		"caller_id":   req.CallerID,
		"campaign_id": campaignID,
		"status":      req.Status,
		"answered_by": req.AnsweredBy,
		"direction":   direction,
		"count":       1,
	}
	if err := newrelic.SendCustomEvent("call_stats", eventData); err != nil {
		ymlogger.LogErrorf("NewRelicMetric", "Failed to send call_stats metric to new relic. Error: [%#v]", err)
	}
	filters := make(map[string]string)
	fields := make(map[string]interface{})
	filters["from"] = req.CallerID
	filters["status"] = req.Status
	filters["direction"] = direction
	filters["duration"] = strconv.Itoa(req.Duration)
	fields["count"] = 1
	metric, err := metrics.NewMetric("call.stats", filters, fields)
	if err != nil {
		ymlogger.LogErrorf("SendMetric", "Failed to create metric. Error: [%#v]", err)
		return
	}
	if err := metrics.SendMetric(metric); err != nil {
		ymlogger.LogErrorf("SendMetric", "Failed to send metrics. Error: [%#v]", err)
		return
	}
	ymlogger.LogInfof("SendMetric", "Successfully sent the call stats metric. Filters: [%#v] Fields: [%#v]", filters, fields)
	return
}

package enqueuecallworker

import (
	"context"
	"encoding/json"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/callstore"
	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/core/createcall"
	"bitbucket.org/yellowmessenger/twilio-voice/newrelic"
	"bitbucket.org/yellowmessenger/twilio-voice/phonenumber"
	"bitbucket.org/yellowmessenger/twilio-voice/queuemanager"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

// EnqueueCallParams holds the data for scheduling a call
type EnqueueCallParams struct {
	contracts.EnqueueCallRequest
	RequestID string `json:"request_id"`
}

// EnqueueCallWorker is the worker for the queue messages
type EnqueueCallWorker struct {
	EnqueueCallParams
}

// campaignLocation resolves the timezone the campaign hour gates are
// evaluated in. Unset or unknown config falls back to Asia/Kolkata.
func campaignLocation() *time.Location {
	tz := ""
	if configmanager.ConfStore != nil {
		tz = configmanager.ConfStore.CampaignTZ
	}
	if tz == "" {
		tz = "Asia/Kolkata"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		ymlogger.LogErrorf("EnqueueCallWorker", "Unknown campaign timezone [%s]. Error: [%#v]", tz, err)
		loc, _ = time.LoadLocation("Asia/Kolkata")
	}
	return loc
}

func (ecW *EnqueueCallWorker) Process(jobMsg []byte, callerRateLimits *queuemanager.CallerRateLimits) queuemanager.QueueJobResult {
	var ecP EnqueueCallParams
	if err := json.Unmarshal(jobMsg, &ecP); err != nil {
		ymlogger.LogErrorf("EnqueueCallWorker", "Error while unmarshalling the JSON. JobMsg: [%s] Error: [%#v]", string(jobMsg), err)
		return queuemanager.QueueJobResult{Status: queuemanager.Failure}
	}

	var fromNumber string
	if ecP.From != nil {
		fromNumber = *ecP.From
	}
	toPhoneNumber := phonenumber.ParseNumber(*ecP.To)
	fromPhoneNumber := phonenumber.ParseNumber(fromNumber)
	ymlogger.LogDebugf(ecP.RequestID, "Parsed FromNumber: [%#v], Parsed ToNumber: [%#v]", fromPhoneNumber, toPhoneNumber)

	callerRateLimitConf := callerRateLimits.GetCallerRateLimitConf(fromPhoneNumber.E164Format)
	if callerRateLimitConf != nil {
		loc := campaignLocation()
		if callerRateLimitConf.MinHour != 0 && callerRateLimitConf.MaxHour != 0 && (time.Now().In(loc).Hour() > callerRateLimitConf.MaxHour || time.Now().In(loc).Hour() < callerRateLimitConf.MinHour) {
			ymlogger.LogDebugf(ecP.RequestID, "Call not allowed at this time for this caller ID: [%s]", fromPhoneNumber.E164Format)
			return queuemanager.QueueJobResult{
				Status:   queuemanager.TempFailure,
				Priority: 9,
				Delay:    100000, // in MS
			}
		}
	}

	ymlogger.LogDebugf(ecP.RequestID, "Waiting for ratelimiter for caller ID: [%#v]", fromPhoneNumber)
	callerRateLimits.Wait(context.Background(), fromPhoneNumber.E164Format)

	createReq := contracts.CreateCallRequest{
		From:             ecP.From,
		To:               ecP.To,
		URL:              ecP.URL,
		TwiML:            ecP.TwiML,
		CallbackURL:      ecP.CallbackURL,
		RecordingEnabled: ecP.RecordingEnabled,
		MachineDetection: ecP.MachineDetection,
		ExtraParams:      ecP.ExtraParams,
	}

	startTime := time.Now()
	createRes, err := createcall.Create(context.Background(), createReq)
	apiLatency := time.Since(startTime)
	callerRateLimits.GetCallerRateLimiter(fromPhoneNumber.E164Format).RecordLatency(apiLatency)
	if err != nil {
		ymlogger.LogErrorf(ecP.RequestID, "Failed to create call. Error: [%#v]", err)
		return queuemanager.QueueJobResult{
			Status:   queuemanager.TempFailure,
			Priority: 9,
			Delay:    10000, // in MS
		}
	}
	callSID := createRes.ResponseData.ResourceData.SID
	ymlogger.LogInfof(ecP.RequestID, "Campaign call placed with SID [%s]", callSID)

	var eP = new(contracts.ExtraParams)
	if ecP.ExtraParams != nil {
		eP.ExtractExtraParams(ecP.ExtraParams)
		if len(eP.CampaignID) > 0 {
			callstore.SetCampaignID(callSID, eP.CampaignID)
		}
	}
	newrelic.SendCustomEvent("campaign_calls", map[string]interface{}{
		"caller_id":   fromPhoneNumber.E164Format,
		"campaign_id": eP.CampaignID,
		"value":       1,
	})
	return queuemanager.QueueJobResult{Status: queuemanager.Success}
}

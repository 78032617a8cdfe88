package updatecall

import (
	"context"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/callstore"
	"bitbucket.org/yellowmessenger/twilio-voice/connections"
	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/models/mysql"
	"bitbucket.org/yellowmessenger/twilio-voice/twilio"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

func Update(
	ctx context.Context,
	req contracts.UpdateCallRequest,
) (
	*contracts.UpdateCallResponse,
	error,
) {
	callSID := *req.CallSID
	ymlogger.LogInfof(callSID, "Update Call Request: [%#v]", req)

	client, err := connections.GetTwilioClient()
	if err != nil {
		ymlogger.LogErrorf(callSID, "Voice API client is not available. Error: [%#v]", err)
		return &contracts.UpdateCallResponse{}, err
	}

	body := &twilio.UpdateCallBody{}
	if req.URL != nil && len(*req.URL) > 0 {
		body.URL = req.URL
	}
	if req.TwiML != nil && len(*req.TwiML) > 0 {
		body.TwiML = req.TwiML
	}
	if req.Status != nil && len(*req.Status) > 0 {
		status := twilio.CallStatus(*req.Status)
		body.Status = &status
	}

	startTime := time.Now()
	callRes, err := twilio.Hit[twilio.CallResponse](ctx, client, twilio.NewUpdateCall(client.AccountSID(), callSID, body))
	apiLatency := time.Since(startTime)
	if err != nil {
		ymlogger.LogErrorf(callSID, "Failed to update call. Error: [%#v]", err)
		return &contracts.UpdateCallResponse{}, err
	}
	ymlogger.LogInfof(callSID, "Call updated to status [%s] in [%d] ms", callRes.Status, apiLatency.Milliseconds())

	if record := callstore.Get(callSID); record != nil {
		callstore.SetStatus(callSID, string(callRes.Status), 0)
		record.Latencies.AddNewStep(callSID, "update")
		record.Latencies.RecordLatency(callSID, "update", callstore.APIResponseTimeinMs, apiLatency.Milliseconds())
		record.EventLog.AddNewEvent(callSID, string(callRes.Status), 0, callstore.Gateway)
	}
	if err := mysql.UpdateCallStatus(callSID, string(callRes.Status)); err != nil {
		ymlogger.LogErrorf(callSID, "Failed to update the call record in DB. Error: [%#v]", err)
	}

	response := new(contracts.UpdateCallResponse)
	responseData := new(contracts.SingleUpdateCallResponse)
	responseData.ResourceData = &contracts.UpdateCall{
		SID:    callRes.Sid,
		From:   callRes.From,
		To:     callRes.To,
		Status: string(callRes.Status),
	}
	responseData.Msg = "Call Updated Successfully"
	responseData.Status = "success"
	response.ResponseData = *responseData
	return response, nil
}

package createcall

import (
	"context"
	"os"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/callstore"
	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/connections"
	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/globals"
	"bitbucket.org/yellowmessenger/twilio-voice/models/mysql"
	"bitbucket.org/yellowmessenger/twilio-voice/newrelic"
	"bitbucket.org/yellowmessenger/twilio-voice/phonenumber"
	"bitbucket.org/yellowmessenger/twilio-voice/twilio"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

var timeLayout = "2006-01-02T15:04:05"

func Create(
	ctx context.Context,
	req contracts.CreateCallRequest,
) (
	*contracts.CreateCallResponse,
	error,
) {
	currentTime := time.Now()
	var hostName string
	hostName, err := os.Hostname()
	if err != nil {
		ymlogger.LogErrorf("CreateCall", "Error while getting host name of the server. Error: [%#v]", err)
	}
	ymlogger.LogInfof("CreateCall", "Create Call Request: [%#v]", req)

	client, err := connections.GetTwilioClient()
	if err != nil {
		ymlogger.LogErrorf("CreateCall", "Voice API client is not available. Error: [%#v]", err)
		return &contracts.CreateCallResponse{}, err
	}

	fromNumber := client.Number()
	if req.From != nil && len(*req.From) > 0 {
		fromNumber = *req.From
	}
	fromPhoneNumber := phonenumber.ParseNumber(fromNumber)
	toPhoneNumber := phonenumber.ParseNumber(*req.To)
	ymlogger.LogDebugf("CreateCall", "Parsed FromNumber: [%#v], Parsed ToNumber: [%#v]", fromPhoneNumber, toPhoneNumber)
	if err := ValidateNumbers(toPhoneNumber, fromPhoneNumber); err != nil {
		ymlogger.LogErrorf("CreateCall", "Invalid numbers in the request. Error: [%#v]", err)
		return &contracts.CreateCallResponse{}, err
	}

	body := buildCallBody(toPhoneNumber.E164Format, fromPhoneNumber.E164Format, req)

	startTime := time.Now()
	callRes, err := twilio.Hit[twilio.CallResponse](ctx, client, twilio.NewCreateCall(client.AccountSID(), body))
	apiLatency := time.Since(startTime)
	if err != nil {
		ymlogger.LogErrorf("CreateCall", "Failed to create call. Error: [%#v]", err)
		return &contracts.CreateCallResponse{}, err
	}
	callSID := callRes.Sid
	ymlogger.LogInfof(callSID, "Call created with status [%s] in [%d] ms", callRes.Status, apiLatency.Milliseconds())

	//Increment call count.
	globals.IncrementNoOfCalls()
	globals.IncrementNoOfLiveCalls()
	ymlogger.LogInfof(callSID, "Number of calls [%d]. Number of live calls [%d]", globals.GetNoOfCalls(), globals.GetNoOfLiveCalls())

	record := &callstore.CallRecord{
		CallSID:     callSID,
		Direction:   "outbound",
		From:        fromPhoneNumber.E164Format,
		To:          toPhoneNumber.E164Format,
		Status:      string(callRes.Status),
		CreatedTime: currentTime,
		Host:        hostName,
		ExtraParams: req.ExtraParams,
	}
	if req.CallbackURL != nil && len(*req.CallbackURL) > 0 {
		record.CallbackURL = *req.CallbackURL
	}
	callstore.Save(record)
	record.Latencies.AddNewStep(callSID, "create")
	record.Latencies.RecordLatency(callSID, "create", callstore.APIResponseTimeinMs, apiLatency.Milliseconds())
	record.EventLog.AddNewEvent(callSID, string(callRes.Status), 0, callstore.Gateway)

	if err := mysql.InsertCallRecord(callSID, record.Direction, record.From, record.To, record.Status); err != nil {
		ymlogger.LogErrorf(callSID, "Failed to insert the call record in DB. Error: [%#v]", err)
	}
	newrelic.SendCustomEvent("call_creates", map[string]interface{}{
		"caller_id": fromPhoneNumber.E164Format,
		"status":    string(callRes.Status),
		"value":     1,
	})

	response := new(contracts.CreateCallResponse)
	responseData := new(contracts.SingleCreateCallResponse)
	resourceData := contracts.CreateCall{
		SID:         callSID,
		CreatedTime: currentTime.Format(timeLayout),
		From:        fromPhoneNumber.E164Format,
		To:          toPhoneNumber.E164Format,
		Status:      string(callRes.Status),
		ServerHost:  hostName,
	}
	if req.CallbackURL != nil && len(*req.CallbackURL) > 0 {
		resourceData.CallbackURL = *req.CallbackURL
	}
	responseData.ResourceData = &resourceData
	responseData.Msg = "Call Initiated Successfully"
	responseData.Status = "success"
	response.ResponseData = *responseData
	return response, nil
}

func buildCallBody(toNumber string, fromNumber string, req contracts.CreateCallRequest) *twilio.CreateCallBody {
	var source twilio.TwiMLSource
	if req.URL != nil && len(*req.URL) > 0 {
		source = twilio.TwiMLURL(*req.URL)
	} else if req.TwiML != nil {
		source = twilio.TwiMLInline(*req.TwiML)
	}
	body := twilio.NewCreateCallBodyWithSource(toNumber, fromNumber, source)

	if configmanager.ConfStore.StatusCallbackURL != "" {
		body = body.WithStatusCallback(
			configmanager.ConfStore.StatusCallbackURL,
			"initiated", "ringing", "answered", "completed",
		)
	}
	recordingEnabled := configmanager.ConfStore.RecordingEnabled
	if req.RecordingEnabled != nil {
		recordingEnabled = *req.RecordingEnabled
	}
	if recordingEnabled {
		body = body.WithRecording(configmanager.ConfStore.RecordingChannels, configmanager.ConfStore.StatusCallbackURL)
	}
	machineDetection := configmanager.ConfStore.MachineDetection
	if req.MachineDetection != nil {
		machineDetection = *req.MachineDetection
	}
	if machineDetection {
		body = body.WithMachineDetection("Enable")
	}
	if req.Timeout != nil && *req.Timeout > 0 {
		body = body.WithTimeout(*req.Timeout)
	}
	return body
}

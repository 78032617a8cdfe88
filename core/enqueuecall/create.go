package enqueuecall

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/enqueuecallworker"
	"bitbucket.org/yellowmessenger/twilio-voice/globals"
	"bitbucket.org/yellowmessenger/twilio-voice/queuemanager"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"

	guuid "github.com/google/uuid"
)

var timeLayout = "2006-01-02T15:04:05"

func Create(
	req contracts.EnqueueCallRequest,
) (
	*contracts.EnqueueCallResponse,
	error,
) {
	requestID := guuid.New().String()
	ymlogger.LogInfof(requestID, "Enqueue Call Request: [%#v]", req)

	var hostName string
	hostName, err := os.Hostname()
	if err != nil {
		ymlogger.LogErrorf(requestID, "Error while getting host name of the server. Error: [%#v]", err)
	}

	queueMsgParams, err := formQueueMsgParams(requestID, req)
	if err != nil {
		ymlogger.LogErrorf(requestID, "Failed to form Queue Message params. Error: [%#v]", err)
		return &contracts.EnqueueCallResponse{}, errors.New("Failed to form queue params")
	}

	// Enqueuing the msg to Queue
	if err := queueMsgParams.Enqueue(); err != nil {
		ymlogger.LogErrorf(requestID, "Failed to enqueue the job to queue. Error: [%#v]", err)
		return &contracts.EnqueueCallResponse{}, errors.New("Failed to enqueue the call")
	}

	var eP = new(contracts.ExtraParams)
	if req.ExtraParams != nil {
		eP.ExtractExtraParams(req.ExtraParams)
	}
	globals.IncrementNoOfCalls()
	ymlogger.LogInfof(requestID, "Number of calls [%d]. Number of live calls [%d]", globals.GetNoOfCalls(), globals.GetNoOfLiveCalls())

	var fromNumber string
	if req.From != nil {
		fromNumber = *req.From
	}
	response := new(contracts.EnqueueCallResponse)
	responseData := new(contracts.SingleEnqueueCallResponse)
	resourceData := contracts.EnqueueCall{
		CreatedTime: time.Now().Format(timeLayout),
		From:        fromNumber,
		To:          *req.To,
		Status:      "queued",
		BotID:       eP.BotID,
		CampaignID:  eP.CampaignID,
		Host:        hostName,
	}
	if req.CallbackURL != nil && len(*req.CallbackURL) > 0 {
		resourceData.CallbackURL = *req.CallbackURL
	}
	responseData.ResourceData = &resourceData
	responseData.Msg = "Call Enqueued Successfully"
	responseData.Status = "success"
	response.ResponseData = *responseData
	return response, nil
}

func formQueueMsgParams(requestID string, req contracts.EnqueueCallRequest) (queuemanager.QueueMessageParams, error) {
	var callParam enqueuecallworker.EnqueueCallParams
	callParam.EnqueueCallRequest = req
	callParam.RequestID = requestID
	msg, err := json.Marshal(callParam)
	if err != nil {
		ymlogger.LogErrorf(requestID, "Error while Marshalling the JSON. Error: [%#v]", err)
		return configmanager.ConfStore.QueueMessageParams, err
	}
	queueMsgParams := configmanager.ConfStore.QueueMessageParams
	queueMsgParams.Msg = string(msg)
	if req.DelayMillis != nil && *req.DelayMillis > 0 {
		queueMsgParams.Delay = *req.DelayMillis
	}
	if req.Priority != nil && *req.Priority > 0 {
		queueMsgParams.Priority = *req.Priority
	}
	return queueMsgParams, nil
}

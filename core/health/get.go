package health

import (
	"context"

	"bitbucket.org/yellowmessenger/twilio-voice/accounthealth"
	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/globals"
	"bitbucket.org/yellowmessenger/twilio-voice/queuemanager"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

func Get(
	ctx context.Context,
) (
	*contracts.GetHealthResponse,
	error,
) {
	messagesCount, err := queuemanager.GetQueueLength(configmanager.ConfStore.QueueConnParams.QueueName)
	if err != nil {
		ymlogger.LogErrorf("Health", "Failed to get the queue length. Error: [%#v]", err)
	}
	response := new(contracts.GetHealthResponse)
	responseData := new(contracts.SingleGetHealthResponse)
	responseData.ResourceData = new(contracts.HealthResponse)
	responseData.ResourceData.QueueLength = messagesCount
	responseData.ResourceData.LiveCalls = int64(globals.GetNoOfLiveCalls())
	responseData.ResourceData.AccountHealth = accounthealth.Get()
	responseData.Msg = "Successful Request"
	responseData.Status = "success"
	response.ResponseData = *responseData
	return response, nil
}

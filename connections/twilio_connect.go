package connections

import (
	"errors"
	"sync"

	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/twilio"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

var (
	mu           sync.RWMutex
	twilioClient *twilio.Client
)

// ConnectTwilio builds the voice API client from the configured account
// credentials, falling back to the environment when the config file
// does not carry them.
func ConnectTwilio() (*twilio.Client, error) {
	ymlogger.LogInfo("TwilioConnect", "Initializing the voice API client")

	var client *twilio.Client
	if configmanager.ConfStore.TwilioAccountSID != "" && configmanager.ConfStore.TwilioAuthToken != "" {
		client = twilio.NewClient(configmanager.ConfStore.TwilioAccountSID, configmanager.ConfStore.TwilioAuthToken)
	} else {
		var err error
		client, err = twilio.NewClientFromEnv()
		if err != nil {
			ymlogger.LogErrorf("TwilioConnect", "Failed to build the voice API client. Error: [%#v]", err)
			return nil, err
		}
	}
	if configmanager.ConfStore.TwilioBaseURL != "" {
		client = client.WithBaseURL(configmanager.ConfStore.TwilioBaseURL)
	}
	if configmanager.ConfStore.TwilioCallerID != "" {
		client = client.WithNumber(configmanager.ConfStore.TwilioCallerID)
	}

	mu.Lock()
	twilioClient = client
	mu.Unlock()
	ymlogger.LogInfo("TwilioConnect", "Successfully initialized the voice API client")
	return client, nil
}

// GetTwilioClient returns the shared voice API client
func GetTwilioClient() (*twilio.Client, error) {
	mu.RLock()
	defer mu.RUnlock()
	if twilioClient == nil {
		return nil, errors.New("voice API client is not initialized")
	}
	return twilioClient, nil
}

package accounthealth

import (
	"context"
	"strconv"
	"sync"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/connections"
	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/globals"
	"bitbucket.org/yellowmessenger/twilio-voice/metrics"
	"bitbucket.org/yellowmessenger/twilio-voice/newrelic"
	"bitbucket.org/yellowmessenger/twilio-voice/twilio"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

var (
	mu     sync.RWMutex
	health contracts.AccountHealth
)

// Get returns the last observed account health
func Get() contracts.AccountHealth {
	mu.RLock()
	defer mu.RUnlock()
	return health
}

// InitAccountHealth probes the provider account periodically and keeps
// the last observed state for the health endpoint
func InitAccountHealth(ctx context.Context) {
	// Run an infinite loop
	for {
		probe(ctx)
		// Sleeping for the seconds specified in configuration
		time.Sleep(time.Duration(configmanager.ConfStore.AccountHealthDelay) * time.Second)
	}
}

func probe(ctx context.Context) {
	var current contracts.AccountHealth
	client, err := connections.GetTwilioClient()
	if err != nil {
		ymlogger.LogErrorf("AccountHealth", "Voice API client is not available. Error: [%#v]", err)
		setHealth(current)
		return
	}
	account, err := twilio.Hit[twilio.AccountResponse](ctx, client, twilio.NewFetchAccount(client.AccountSID()))
	if err != nil {
		ymlogger.LogErrorf("AccountHealth", "Failed to fetch the account. Error: [%#v]", err)
		setHealth(current)
		sendMetric(current)
		return
	}
	current.SID = account.Sid
	current.Status = string(account.Status)
	current.Up = account.Status == twilio.AccountStatusActive
	ymlogger.LogInfof("AccountHealth", "Account [%s] status [%s]. Live calls [%d]", current.SID, current.Status, globals.GetNoOfLiveCalls())
	setHealth(current)
	sendMetric(current)
}

func setHealth(current contracts.AccountHealth) {
	mu.Lock()
	health = current
	mu.Unlock()
}

func sendMetric(current contracts.AccountHealth) {
	// Send event to New Relic
	eventData := map[string]interface{}{
		"account_sid": current.SID,
		"account_up":  strconv.FormatBool(current.Up),
		"value":       globals.GetNoOfLiveCalls(),
	}
	if err := newrelic.SendCustomEvent("call_accounthealth", eventData); err != nil {
		ymlogger.LogErrorf("AccountHealth", "Failed to send metric to new relic. Error: [%#v]", err)
	}

	filters := make(map[string]string)
	fields := make(map[string]interface{})
	filters["account_sid"] = current.SID
	filters["account_up"] = strconv.FormatBool(current.Up)
	fields["value"] = globals.GetNoOfLiveCalls()
	metric, err := metrics.NewMetric("call.accounthealth", filters, fields)
	if err != nil {
		ymlogger.LogErrorf("AccountHealth", "Failed to create metric. Error: [%#v]", err)
		return
	}
	if err := metrics.SendMetric(metric); err != nil {
		ymlogger.LogErrorf("AccountHealth", "Failed to send metrics. Error: [%#v]", err)
	}
	return
}

package queuemanager

import (
	"context"
	"sync"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/utils/ratelimit"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
	"github.com/streadway/amqp"
)

type JobStatus string

const (
	Success     JobStatus = "success"
	Failure     JobStatus = "failure"
	TempFailure JobStatus = "temporary_failure"
)

type IQWorker interface {
	Process(jobMsg []byte, callerRateLimits *CallerRateLimits) QueueJobResult
}

type QueueListenerParams struct {
	QueueName  string `json:"queue_name"`
	AutoAck    bool   `json:"auto_ack"`
	Exclusive  bool   `json:"exclusive"`
	NoLocal    bool   `json:"no_local"`
	NoWait     bool   `json:"no_wait"`
	NumWorkers int    `json:"num_workers"`
}

type QueueJobResult struct {
	Status   JobStatus
	Delay    int64
	Priority uint8
}

// CallerRateLimitConfig is the per caller ID dialing policy for
// campaign calls.
type CallerRateLimitConfig struct {
	PhoneNumber      string  `json:"phone_number"`
	RateLimitEnabled bool    `json:"rate_limit_enabled"`
	ThresholdMillis  int     `json:"threshold_millis"`
	MinHour          int     `json:"min_hour"`
	MaxHour          int     `json:"max_hour"`
	MaxRate          float64 `json:"max_rate"`
	Burst            int     `json:"burst"`
}

type CallerRateLimitParams struct {
	RateLimitConfigs map[string]CallerRateLimitConfig `json:"rate_limit_configs"`
}

// CallerRateLimits holds one adaptive rate limiter per caller ID. The
// limiter adapts to the create-call API latency recorded for that
// caller.
type CallerRateLimits struct {
	mu           sync.Mutex
	ratelimitMap map[string]*ratelimit.AdaptiveRateLimiter
	conf         CallerRateLimitParams
}

func (c *CallerRateLimits) ensureRateLimiter(phoneNumber string) *ratelimit.AdaptiveRateLimiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	var threshold = time.Second * 3
	if callerConf, ok := c.conf.RateLimitConfigs[phoneNumber]; ok {
		threshold = time.Millisecond * time.Duration(callerConf.ThresholdMillis)
	}
	if _, ok := c.ratelimitMap[phoneNumber]; !ok {
		var maxRate float64 = 2
		var burst int = 2
		if callerConf, ok := c.conf.RateLimitConfigs[phoneNumber]; ok {
			if callerConf.MaxRate != 0 {
				maxRate = callerConf.MaxRate
			}
			if callerConf.Burst != 0 {
				burst = callerConf.Burst
			}
		}
		c.ratelimitMap[phoneNumber] = ratelimit.New(maxRate, burst, threshold, phoneNumber)
	}

	return c.ratelimitMap[phoneNumber]
}

func (c *CallerRateLimits) Wait(ctx context.Context, phoneNumber string) {
	if c == nil {
		ymlogger.LogErrorf("CallerRateLimits", "Wait called with nil")
		return
	}
	startTime := time.Now()

	ymlogger.LogDebugf("CallerRateLimits", "%s: waiting for ratelimit", phoneNumber)
	defer func() {
		ymlogger.LogDebugf("CallerRateLimits", "%s: waited for %d millis", phoneNumber,
			time.Since(startTime).Milliseconds())
	}()

	rateLimit := c.ensureRateLimiter(phoneNumber)
	if callerConf, ok := c.conf.RateLimitConfigs[phoneNumber]; ok {
		if !callerConf.RateLimitEnabled {
			ymlogger.LogDebugf("CallerRateLimits", "Rate limiting is disabled for [%s]", phoneNumber)
			return
		}
	}

	rateLimit.Wait(ctx)
}

func (c *CallerRateLimits) GetCallerRateLimiter(phoneNumber string) *ratelimit.AdaptiveRateLimiter {
	return c.ensureRateLimiter(phoneNumber)
}

func (c *CallerRateLimits) GetCallerRateLimitConf(phoneNumber string) *CallerRateLimitConfig {
	if callerConf, ok := c.conf.RateLimitConfigs[phoneNumber]; ok {
		return &callerConf
	}
	return nil
}

func InitQueueListener(params QueueListenerParams, worker IQWorker, campaignDelay int, minHour int, maxHour int, rateLimitParams *CallerRateLimitParams) error {
	messages, err := ch.Consume(
		params.QueueName,
		"enqueuecallconsumer",
		params.AutoAck,
		params.Exclusive,
		params.NoLocal,
		params.NoWait,
		nil,
	)
	if err != nil {
		ymlogger.LogErrorf("QueueListener", "Failed to start consuming the messages. Error: [%#v]", err)
		return err
	}
	StartWorkers(worker, params.NumWorkers, messages, campaignDelay, minHour, maxHour, rateLimitParams)
	return nil
}

func StartWorkers(worker IQWorker, numWorkers int, messages <-chan amqp.Delivery, campaignDelay int, minHour int, maxHour int, rateLimitParams *CallerRateLimitParams) {
	callerRateLimits := &CallerRateLimits{}
	callerRateLimits.ratelimitMap = make(map[string]*ratelimit.AdaptiveRateLimiter)
	callerRateLimits.conf = *rateLimitParams
	for i := 1; i <= numWorkers; i++ {
		go processJob(i, worker, messages, campaignDelay, minHour, maxHour, callerRateLimits)
	}
}

func processJob(numWorker int, worker IQWorker, messages <-chan amqp.Delivery, campaignDelay int, minHour int, maxHour int, callerRateLimits *CallerRateLimits) {
	for message := range messages {
		// Sleep for the delay specified
		time.Sleep(time.Duration(campaignDelay) * time.Millisecond)
		loc, _ := time.LoadLocation("Asia/Kolkata")
		if time.Now().In(loc).Hour() > maxHour || time.Now().In(loc).Hour() < minHour {
			ymlogger.LogInfof("QueueListener", "No campaign allowed during this time. Message Body: [%s]. Re-enqueueing..", string(message.Body))
			result := QueueJobResult{
				Status:   TempFailure,
				Priority: 9,
				Delay:    100000, // in MS
			}
			finishTask(result, message)
			continue
		}
		go func(message amqp.Delivery) {
			result := worker.Process(message.Body, callerRateLimits)
			finishTask(result, message)
		}(message)
	}
}

func finishTask(
	jobResult QueueJobResult,
	message amqp.Delivery,
) {
	if err := message.Ack(false); err != nil {
		ymlogger.LogErrorf("QueueListener", "Error acknowledging message : %s", err)
	} else {
		ymlogger.LogInfof("QueueListener", "Acknowledged message [%#v]", string(message.Body))
	}

	switch jobResult.Status {
	case Success, Failure:
		return
	}
	job := formEnqueueMessage(jobResult, message)
	job.Enqueue()
}

func formEnqueueMessage(
	jobResult QueueJobResult,
	message amqp.Delivery,
) QueueMessageParams {
	job := QueueMessageParams{
		Exchange:  "delayed",
		QueueName: message.RoutingKey,
		Msg:       string(message.Body),
		Mandatory: true,
		Immediate: false,
	}
	if jobResult.Delay > 0 {
		job.Delay = jobResult.Delay
	}
	if jobResult.Priority > 0 {
		job.Priority = jobResult.Priority
	}
	return job
}

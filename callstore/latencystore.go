package callstore

import (
	"sync"

	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

type Action int

const (
	APIResponseTimeinMs      Action = iota
	CallbackResponseTimeinMs Action = iota
	ArchiveResponseTimeinMs  Action = iota
)

type LatencyParameter struct {
	StepIdentifier    string `json:"step_identifier"`
	APIResponseTimeMs int64  `json:"api_response_time"`
	CallbackLatencyMs int64  `json:"status_callback"`
	ArchiveLatencyMs  int64  `json:"recording_archive"`
}

type LatencyStore struct {
	mu            sync.Mutex
	latencyparams []LatencyParameter
}

//AddNewStep adds new step object by the specified stepname
func (l *LatencyStore) AddNewStep(callSID string, stepIdentifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.latencyparams == nil {
		l.latencyparams = []LatencyParameter{}
	}
	ymlogger.LogInfof(callSID, "[LatencyParams] Appending new step %s", stepIdentifier)
	l.latencyparams = append(l.latencyparams, LatencyParameter{StepIdentifier: stepIdentifier})
}

//RecordLatency records respective latency
func (l *LatencyStore) RecordLatency(callSID string, stepIdentifier string, action Action, ResponseTimeMs int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	//latency is recorded against the latest step
	if len(l.latencyparams) == 0 {
		return false
	}
	index := len(l.latencyparams) - 1

	switch action {
	case APIResponseTimeinMs:
		l.latencyparams[index].APIResponseTimeMs = ResponseTimeMs
	case CallbackResponseTimeinMs:
		l.latencyparams[index].CallbackLatencyMs = ResponseTimeMs
	case ArchiveResponseTimeinMs:
		l.latencyparams[index].ArchiveLatencyMs = ResponseTimeMs
	default:
		return false
	}
	ymlogger.LogInfof(callSID, "[LatencyParams] Latencies[ %#v] ", l.latencyparams)

	return true
}

//GetLatencies returns the list of latencies
func (l *LatencyStore) GetLatencies(callSID string) []LatencyParameter {
	l.mu.Lock()
	defer l.mu.Unlock()
	paramList := make([]LatencyParameter, len(l.latencyparams))
	copy(paramList, l.latencyparams)
	return paramList
}

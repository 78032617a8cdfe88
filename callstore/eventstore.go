package callstore

import (
	"sync"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

type EventSource string

const (
	Provider EventSource = "provider"
	Gateway  EventSource = "gateway"
)

type StatusEvent struct {
	Status     string      `json:"status"`
	Sequence   int         `json:"sequence"`
	Source     EventSource `json:"source"`
	ReceivedAt time.Time   `json:"received_at"`
}

type EventStore struct {
	mu        sync.Mutex
	eventList []StatusEvent
}

//AddNewEvent appends a status transition for the call
func (e *EventStore) AddNewEvent(callSID string, status string, sequence int, source EventSource) {
	ymlogger.LogInfof(callSID, "[EventStore] Appending new event [%s] with sequence [%d]", status, sequence)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.eventList == nil {
		e.eventList = []StatusEvent{}
	}

	e.eventList = append(
		e.eventList,
		StatusEvent{
			Status:     status,
			Sequence:   sequence,
			Source:     source,
			ReceivedAt: time.Now(),
		})
}

//GetEvents returns the list of status events
func (e *EventStore) GetEvents(callSID string) []StatusEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	paramList := make([]StatusEvent, len(e.eventList))
	copy(paramList, e.eventList)
	return paramList
}

package callstore

import (
	"sync"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

// CallRecord contains everything the gateway knows about one call. The
// record is created when the call is placed and updated from the status
// callbacks until the call ends.
type CallRecord struct {
	CallSID          string      `json:"sid,omitempty"`
	Direction        string      `json:"direction,omitempty"`
	From             string      `json:"from,omitempty"`
	To               string      `json:"to,omitempty"`
	Status           string      `json:"status,omitempty"`
	CreatedTime      time.Time   `json:"created_time,omitempty"`
	StartTime        string      `json:"start_time,omitempty"`
	EndTime          string      `json:"end_time,omitempty"`
	Duration         int         `json:"duration,omitempty"`
	RingingDuration  int         `json:"ringing_duration,omitempty"`
	AnsweredBy       string      `json:"answered_by,omitempty"`
	CallbackURL      string      `json:"callback_url,omitempty"`
	RecordingSID     string      `json:"recording_sid,omitempty"`
	RecordingURL     string      `json:"recording_url,omitempty"`
	ArchiveURL       string      `json:"archive_url,omitempty"`
	CampaignID       string      `json:"campaignId,omitempty"`
	ExtraParams      interface{} `json:"extra_params,omitempty"`
	Host             string      `json:"host,omitempty"`
	SequenceObserved int         `json:"sequence_observed,omitempty"`

	Latencies *LatencyStore `json:"-"`
	EventLog  *EventStore   `json:"-"`
}

var (
	mu    sync.RWMutex
	calls = make(map[string]*CallRecord)
)

// Save stores the record, replacing any record with the same SID.
func Save(record *CallRecord) {
	if record.Latencies == nil {
		record.Latencies = &LatencyStore{}
	}
	if record.EventLog == nil {
		record.EventLog = &EventStore{}
	}
	mu.Lock()
	calls[record.CallSID] = record
	mu.Unlock()
}

// Get returns the record for the given call SID, nil when unknown. The
// returned pointer is shared; mutate only through the setters below.
func Get(callSID string) *CallRecord {
	mu.RLock()
	defer mu.RUnlock()
	return calls[callSID]
}

// Delete drops the record from the store.
func Delete(callSID string) {
	mu.Lock()
	delete(calls, callSID)
	mu.Unlock()
}

// Count returns the number of records currently held.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(calls)
}

// SetStatus moves the record to a new status. Out of order and
// redelivered callbacks are ignored based on the sequence number.
func SetStatus(callSID string, status string, sequence int) bool {
	mu.Lock()
	defer mu.Unlock()
	record, ok := calls[callSID]
	if !ok {
		return false
	}
	if sequence > 0 && sequence <= record.SequenceObserved {
		ymlogger.LogInfof(callSID, "Ignoring stale status [%s] with sequence [%d], observed [%d]", status, sequence, record.SequenceObserved)
		return false
	}
	record.Status = status
	if sequence > record.SequenceObserved {
		record.SequenceObserved = sequence
	}
	return true
}

// SetTimes fills the start/end timestamps and durations reported by
// the final status callback.
func SetTimes(callSID string, startTime string, endTime string, duration int) {
	mu.Lock()
	defer mu.Unlock()
	if record, ok := calls[callSID]; ok {
		record.StartTime = startTime
		record.EndTime = endTime
		record.Duration = duration
	}
}

// SetCampaignID tags the call with the campaign it was dialed for.
func SetCampaignID(callSID string, campaignID string) {
	mu.Lock()
	defer mu.Unlock()
	if record, ok := calls[callSID]; ok {
		record.CampaignID = campaignID
	}
}

// SetAnsweredBy records the machine detection verdict.
func SetAnsweredBy(callSID string, answeredBy string) {
	mu.Lock()
	defer mu.Unlock()
	if record, ok := calls[callSID]; ok {
		record.AnsweredBy = answeredBy
	}
}

// SetRecording records the recording resource delivered by the
// recording status callback.
func SetRecording(callSID string, recordingSID string, recordingURL string) {
	mu.Lock()
	defer mu.Unlock()
	if record, ok := calls[callSID]; ok {
		record.RecordingSID = recordingSID
		record.RecordingURL = recordingURL
	}
}

// SetArchiveURL records where the recording was archived.
func SetArchiveURL(callSID string, archiveURL string) {
	mu.Lock()
	defer mu.Unlock()
	if record, ok := calls[callSID]; ok {
		record.ArchiveURL = archiveURL
	}
}

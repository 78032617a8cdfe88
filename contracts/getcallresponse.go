package contracts

import "bitbucket.org/yellowmessenger/twilio-voice/callstore"

type GetCall struct {
	SID          string                       `json:"sid"`
	Direction    string                       `json:"direction"`
	From         string                       `json:"from"`
	To           string                       `json:"to"`
	Status       string                       `json:"status"`
	CreatedTime  string                       `json:"created_time"`
	StartTime    string                       `json:"start_time,omitempty"`
	EndTime      string                       `json:"end_time,omitempty"`
	Duration     int                          `json:"duration"`
	AnsweredBy   string                       `json:"answered_by,omitempty"`
	RecordingURL string                       `json:"recording_url,omitempty"`
	ArchiveURL   string                       `json:"archive_url,omitempty"`
	LatencyInfo  []callstore.LatencyParameter `json:"latency_info,omitempty"`
	Events       []callstore.StatusEvent      `json:"events,omitempty"`
}

type GetCallResponse struct {
	BaseResponse
	ResponseData SingleGetCallResponse `json:"response"`
}

type SingleGetCallResponse struct {
	SingleResponse
	ResourceData *GetCall `json:"data,omitempty"`
}

package twilio

import (
	"net/http"
	"net/url"
	"strconv"
)

// StreamStatus is the state of a media stream on a call.
type StreamStatus string

const (
	StreamStatusInProgress StreamStatus = "in-progress"
	StreamStatusStopped    StreamStatus = "stopped"
)

// StreamResponse is a media stream resource: a unidirectional fork of
// the call audio delivered over a websocket.
type StreamResponse struct {
	Sid         string       `json:"sid"`
	AccountSid  string       `json:"account_sid"`
	CallSid     string       `json:"call_sid"`
	Name        string       `json:"name"`
	Status      StreamStatus `json:"status"`
	DateUpdated string       `json:"date_updated"`
	URI         string       `json:"uri"`
}

// CreateStreamBody starts forking a live call's audio to a websocket
// server. URL is required and must be wss. Track selects inbound_track,
// outbound_track or both_tracks. Custom parameters are delivered
// verbatim in the stream's start message.
type CreateStreamBody struct {
	URL                  string
	Name                 *string
	Track                *string
	StatusCallback       *string
	StatusCallbackMethod *string
	Parameters           []StreamParameter
}

// StreamParameter is one custom name/value pair passed to the stream.
type StreamParameter struct {
	Name  string
	Value string
}

func NewCreateStreamBody(streamURL string) *CreateStreamBody {
	return &CreateStreamBody{URL: streamURL}
}

func (b *CreateStreamBody) WithName(name string) *CreateStreamBody {
	b.Name = String(name)
	return b
}

func (b *CreateStreamBody) WithTrack(track string) *CreateStreamBody {
	b.Track = String(track)
	return b
}

func (b *CreateStreamBody) WithParameter(name string, value string) *CreateStreamBody {
	b.Parameters = append(b.Parameters, StreamParameter{Name: name, Value: value})
	return b
}

// validStreamURL reports whether streamURL is a parseable wss URL with
// a host. A bare scheme prefix is not enough.
func validStreamURL(streamURL string) bool {
	u, err := url.Parse(streamURL)
	return err == nil && u.Scheme == "wss" && u.Host != ""
}

func validCallbackURL(callbackURL string) bool {
	_, err := url.ParseRequestURI(callbackURL)
	return err == nil
}

func (b *CreateStreamBody) Form() (url.Values, error) {
	if !validStreamURL(b.URL) {
		return nil, ErrInvalidWebSocketURL
	}
	if b.StatusCallback != nil && !validCallbackURL(*b.StatusCallback) {
		return nil, ErrInvalidCallbackURL
	}
	v := url.Values{}
	v.Set("Url", b.URL)
	setString(v, "Name", b.Name)
	setString(v, "Track", b.Track)
	setString(v, "StatusCallback", b.StatusCallback)
	setString(v, "StatusCallbackMethod", b.StatusCallbackMethod)
	for i, p := range b.Parameters {
		n := strconv.Itoa(i + 1)
		v.Set("Parameter"+n+".Name", p.Name)
		v.Set("Parameter"+n+".Value", p.Value)
	}
	return v, nil
}

// CreateStream starts a media stream on a live call.
type CreateStream struct {
	ResponseOf[StreamResponse]
	noQuery
	AccountSID string
	CallSID    string
	Body       *CreateStreamBody
}

func NewCreateStream(accountSID string, callSID string, body *CreateStreamBody) *CreateStream {
	return &CreateStream{AccountSID: accountSID, CallSID: callSID, Body: body}
}

func (e *CreateStream) Method() string { return http.MethodPost }

func (e *CreateStream) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Calls/{CallSid}/Streams.json",
		"{AccountSid}", e.AccountSID, "{CallSid}", e.CallSID)
}

func (e *CreateStream) Form() (url.Values, error) { return e.Body.Form() }

// UpdateStream stops a running media stream. Stopping is the only
// supported transition.
type UpdateStream struct {
	ResponseOf[StreamResponse]
	noQuery
	AccountSID string
	CallSID    string
	StreamSID  string
}

func NewStopStream(accountSID string, callSID string, streamSID string) *UpdateStream {
	return &UpdateStream{AccountSID: accountSID, CallSID: callSID, StreamSID: streamSID}
}

func (e *UpdateStream) Method() string { return http.MethodPost }

func (e *UpdateStream) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Calls/{CallSid}/Streams/{Sid}.json",
		"{AccountSid}", e.AccountSID, "{CallSid}", e.CallSID, "{Sid}", e.StreamSID)
}

func (e *UpdateStream) Form() (url.Values, error) {
	v := url.Values{}
	v.Set("Status", string(StreamStatusStopped))
	return v, nil
}

// Websocket frames of the media stream protocol. Each frame is a JSON
// object whose event field selects which of the optional payloads is
// present.

// StreamMessage is one frame received from or sent to the media stream
// websocket.
type StreamMessage struct {
	// Event is connected, start, media, stop, dtmf, mark or clear.
	Event          string               `json:"event"`
	SequenceNumber string               `json:"sequenceNumber,omitempty"`
	StreamSid      string               `json:"streamSid,omitempty"`
	Protocol       string               `json:"protocol,omitempty"`
	Version        string               `json:"version,omitempty"`
	Start          *StreamStartPayload  `json:"start,omitempty"`
	Media          *StreamMediaPayload  `json:"media,omitempty"`
	Stop           *StreamStopPayload   `json:"stop,omitempty"`
	DTMF           *StreamDTMFPayload   `json:"dtmf,omitempty"`
	Mark           *StreamMarkPayload   `json:"mark,omitempty"`
}

// StreamStartPayload describes the stream that just began, including
// the custom parameters given at creation.
type StreamStartPayload struct {
	StreamSid        string            `json:"streamSid"`
	AccountSid       string            `json:"accountSid"`
	CallSid          string            `json:"callSid"`
	Tracks           []string          `json:"tracks"`
	CustomParameters map[string]string `json:"customParameters"`
	MediaFormat      StreamMediaFormat `json:"mediaFormat"`
}

// StreamMediaFormat describes the audio encoding of media frames.
type StreamMediaFormat struct {
	Encoding   string `json:"encoding"`
	SampleRate int    `json:"sampleRate"`
	Channels   int    `json:"channels"`
}

// StreamMediaPayload carries one chunk of base64 encoded audio.
type StreamMediaPayload struct {
	Track     string `json:"track,omitempty"`
	Chunk     string `json:"chunk,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Payload   string `json:"payload"`
}

// StreamStopPayload identifies the call whose stream ended.
type StreamStopPayload struct {
	AccountSid string `json:"accountSid"`
	CallSid    string `json:"callSid"`
}

// StreamDTMFPayload reports one key press heard on the call.
type StreamDTMFPayload struct {
	Track string `json:"track"`
	Digit string `json:"digit"`
}

// StreamMarkPayload echoes a mark previously sent on the websocket.
type StreamMarkPayload struct {
	Name string `json:"name"`
}

package twilio

import (
	"net/http"
	"net/url"
)

// CallStatus is the lifecycle state of a call resource.
type CallStatus string

const (
	CallStatusQueued     CallStatus = "queued"
	CallStatusRinging    CallStatus = "ringing"
	CallStatusInProgress CallStatus = "in-progress"
	CallStatusCanceled   CallStatus = "canceled"
	CallStatusCompleted  CallStatus = "completed"
	CallStatusFailed     CallStatus = "failed"
	CallStatusBusy       CallStatus = "busy"
	CallStatusNoAnswer   CallStatus = "no-answer"
)

// CallResponse is the call resource representation returned by the API.
// Phone numbers are E.164, SIP addresses name@host, client identifiers
// client:name. Times are UTC in RFC 2822 format. Fields that are empty
// in the payload stay at their zero value. Duration is in seconds and
// empty for busy, failed, unanswered or ongoing calls. Direction is
// inbound, outbound-api or outbound-dial.
type CallResponse struct {
	Sid             string            `json:"sid"`
	DateCreated     string            `json:"date_created"`
	DateUpdated     string            `json:"date_updated"`
	ParentCallSid   string            `json:"parent_call_sid"`
	AccountSid      string            `json:"account_sid"`
	To              string            `json:"to"`
	ToFormatted     string            `json:"to_formatted"`
	From            string            `json:"from"`
	FromFormatted   string            `json:"from_formatted"`
	PhoneNumberSid  string            `json:"phone_number_sid"`
	Status          CallStatus        `json:"status"`
	StartTime       string            `json:"start_time"`
	EndTime         string            `json:"end_time"`
	Duration        string            `json:"duration"`
	Price           string            `json:"price"`
	PriceUnit       string            `json:"price_unit"`
	Direction       string            `json:"direction"`
	AnsweredBy      string            `json:"answered_by"`
	APIVersion      string            `json:"api_version"`
	ForwardedFrom   string            `json:"forwarded_from"`
	GroupSid        string            `json:"group_sid"`
	CallerName      string            `json:"caller_name"`
	QueueTime       string            `json:"queue_time"`
	TrunkSid        string            `json:"trunk_sid"`
	URI             string            `json:"uri"`
	SubresourceURIs map[string]string `json:"subresource_uris"`
	Annotation      string            `json:"annotation"`
}

// TwiMLSource selects where a created call fetches its instructions
// from: a webhook URL, an inline TwiML document, or an application SID.
// Exactly one is set.
type TwiMLSource struct {
	url            string
	twiml          string
	applicationSID string
}

// TwiMLURL instructs the call to fetch TwiML from a webhook URL.
func TwiMLURL(u string) TwiMLSource { return TwiMLSource{url: u} }

// TwiMLInline drives the call with an inline TwiML document.
func TwiMLInline(doc string) TwiMLSource { return TwiMLSource{twiml: doc} }

// TwiMLApplication drives the call with a stored application's voice
// configuration.
func TwiMLApplication(sid string) TwiMLSource { return TwiMLSource{applicationSID: sid} }

func (s TwiMLSource) apply(v url.Values) {
	switch {
	case s.url != "":
		v.Set("Url", s.url)
	case s.twiml != "":
		v.Set("Twiml", s.twiml)
	case s.applicationSID != "":
		v.Set("ApplicationSid", s.applicationSID)
	}
}

// CreateCallBody is the payload of the create-call action. To, From and
// the TwiML source are required; every optional field defaults to unset
// and is omitted from the request entirely, never sent as an empty
// placeholder. Values are not validated client side; malformed numbers
// or URLs are rejected by the API itself.
type CreateCallBody struct {
	To     string
	From   string
	Source TwiMLSource

	Method               *string
	FallbackURL          *string
	FallbackMethod       *string
	StatusCallback       *string
	StatusCallbackMethod *string
	// StatusCallbackEvents lists the call progress events delivered to
	// StatusCallback: initiated, ringing, answered, completed. The API
	// defaults to completed only.
	StatusCallbackEvents []string

	SendDigits *string
	Timeout    *int
	TimeLimit  *int
	CallerID   *string
	Trim       *string

	Record                        *bool
	RecordingChannels             *string
	RecordingTrack                *string
	RecordingStatusCallback       *string
	RecordingStatusCallbackMethod *string
	RecordingStatusCallbackEvents []string

	SIPAuthUsername *string
	SIPAuthPassword *string

	MachineDetection                   *string
	MachineDetectionTimeout            *int
	MachineDetectionSpeechThreshold    *float64
	MachineDetectionSpeechEndThreshold *float64
	MachineDetectionSilenceTimeout     *int
	AsyncAmd                           *bool
	AsyncAmdStatusCallback             *string
	AsyncAmdStatusCallbackMethod       *string

	ByocSid    *string
	CallReason *string
	CallToken  *string
}

// NewCreateCallBody returns a body with only the required fields set,
// fetching instructions from callURL.
func NewCreateCallBody(to string, from string, callURL string) *CreateCallBody {
	return NewCreateCallBodyWithSource(to, from, TwiMLURL(callURL))
}

// NewCreateCallBodyWithSource returns a body with only the required
// fields set.
func NewCreateCallBodyWithSource(to string, from string, source TwiMLSource) *CreateCallBody {
	return &CreateCallBody{To: to, From: from, Source: source}
}

// WithStatusCallback subscribes callback to the given progress events.
func (b *CreateCallBody) WithStatusCallback(callback string, events ...string) *CreateCallBody {
	b.StatusCallback = String(callback)
	b.StatusCallbackEvents = events
	return b
}

// WithRecording turns on call recording with the given channels mode.
func (b *CreateCallBody) WithRecording(channels string, statusCallback string) *CreateCallBody {
	b.Record = Bool(true)
	b.RecordingChannels = String(channels)
	if statusCallback != "" {
		b.RecordingStatusCallback = String(statusCallback)
	}
	return b
}

// WithMachineDetection enables answering machine detection. mode is
// Enable or DetectMessageEnd.
func (b *CreateCallBody) WithMachineDetection(mode string) *CreateCallBody {
	b.MachineDetection = String(mode)
	return b
}

// WithTimeout limits how long the call may ring, in seconds.
func (b *CreateCallBody) WithTimeout(seconds int) *CreateCallBody {
	b.Timeout = Int(seconds)
	return b
}

// Form emits the required fields plus exactly the optional fields that
// were set.
func (b *CreateCallBody) Form() (url.Values, error) {
	v := url.Values{}
	v.Set("To", b.To)
	v.Set("From", b.From)
	b.Source.apply(v)
	setString(v, "Method", b.Method)
	setString(v, "FallbackUrl", b.FallbackURL)
	setString(v, "FallbackMethod", b.FallbackMethod)
	setString(v, "StatusCallback", b.StatusCallback)
	setString(v, "StatusCallbackMethod", b.StatusCallbackMethod)
	setEvents(v, "StatusCallbackEvent", b.StatusCallbackEvents)
	setString(v, "SendDigits", b.SendDigits)
	setInt(v, "Timeout", b.Timeout)
	setInt(v, "TimeLimit", b.TimeLimit)
	setString(v, "CallerId", b.CallerID)
	setString(v, "Trim", b.Trim)
	setBool(v, "Record", b.Record)
	setString(v, "RecordingChannels", b.RecordingChannels)
	setString(v, "RecordingTrack", b.RecordingTrack)
	setString(v, "RecordingStatusCallback", b.RecordingStatusCallback)
	setString(v, "RecordingStatusCallbackMethod", b.RecordingStatusCallbackMethod)
	setEvents(v, "RecordingStatusCallbackEvent", b.RecordingStatusCallbackEvents)
	setString(v, "SipAuthUsername", b.SIPAuthUsername)
	setString(v, "SipAuthPassword", b.SIPAuthPassword)
	setString(v, "MachineDetection", b.MachineDetection)
	setInt(v, "MachineDetectionTimeout", b.MachineDetectionTimeout)
	setFloat(v, "MachineDetectionSpeechThreshold", b.MachineDetectionSpeechThreshold)
	setFloat(v, "MachineDetectionSpeechEndThreshold", b.MachineDetectionSpeechEndThreshold)
	setInt(v, "MachineDetectionSilenceTimeout", b.MachineDetectionSilenceTimeout)
	setBool(v, "AsyncAmd", b.AsyncAmd)
	setString(v, "AsyncAmdStatusCallback", b.AsyncAmdStatusCallback)
	setString(v, "AsyncAmdStatusCallbackMethod", b.AsyncAmdStatusCallbackMethod)
	setString(v, "ByocSid", b.ByocSid)
	setString(v, "CallReason", b.CallReason)
	setString(v, "CallToken", b.CallToken)
	return v, nil
}

// CreateCall places a new outbound call under an account.
type CreateCall struct {
	ResponseOf[CallResponse]
	noQuery
	AccountSID string
	Body       *CreateCallBody
}

// NewCreateCall binds body to the calls collection of accountSID.
func NewCreateCall(accountSID string, body *CreateCallBody) *CreateCall {
	return &CreateCall{AccountSID: accountSID, Body: body}
}

func (e *CreateCall) Method() string { return http.MethodPost }

func (e *CreateCall) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Calls.json",
		"{AccountSid}", e.AccountSID)
}

func (e *CreateCall) Form() (url.Values, error) { return e.Body.Form() }

// FetchCall reads a single call resource.
type FetchCall struct {
	ResponseOf[CallResponse]
	noQuery
	noForm
	AccountSID string
	CallSID    string
}

func NewFetchCall(accountSID string, callSID string) *FetchCall {
	return &FetchCall{AccountSID: accountSID, CallSID: callSID}
}

func (e *FetchCall) Method() string { return http.MethodGet }

func (e *FetchCall) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Calls/{Sid}.json",
		"{AccountSid}", e.AccountSID, "{Sid}", e.CallSID)
}

// ListCallsResponse is a page of call resources.
type ListCallsResponse struct {
	Calls []CallResponse `json:"calls"`
	Pagination
}

// ListCalls reads the calls collection. Supported filters: To, From,
// ParentCallSid, CallStatus, StartTime, EndTime plus paging.
type ListCalls struct {
	ResponseOf[ListCallsResponse]
	noForm
	AccountSID string
	ListQuery  *Query
}

func NewListCalls(accountSID string) *ListCalls {
	return &ListCalls{AccountSID: accountSID}
}

// WithQuery attaches list filters.
func (e *ListCalls) WithQuery(q *Query) *ListCalls {
	e.ListQuery = q
	return e
}

func (e *ListCalls) Method() string { return http.MethodGet }

func (e *ListCalls) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Calls.json",
		"{AccountSid}", e.AccountSID)
}

func (e *ListCalls) Query() url.Values {
	if e.ListQuery == nil {
		return nil
	}
	return e.ListQuery.Values()
}

// UpdateCallBody modifies a live call. All fields are optional; the
// usual moves are redirecting with URL or TwiML and terminating by
// setting Status to completed (or canceled for a not-yet-answered
// call).
type UpdateCallBody struct {
	URL                  *string
	Method               *string
	TwiML                *string
	Status               *CallStatus
	FallbackURL          *string
	FallbackMethod       *string
	StatusCallback       *string
	StatusCallbackMethod *string
	TimeLimit            *int
}

func (b *UpdateCallBody) Form() (url.Values, error) {
	v := url.Values{}
	setString(v, "Url", b.URL)
	setString(v, "Method", b.Method)
	setString(v, "Twiml", b.TwiML)
	if b.Status != nil {
		v.Set("Status", string(*b.Status))
	}
	setString(v, "FallbackUrl", b.FallbackURL)
	setString(v, "FallbackMethod", b.FallbackMethod)
	setString(v, "StatusCallback", b.StatusCallback)
	setString(v, "StatusCallbackMethod", b.StatusCallbackMethod)
	setInt(v, "TimeLimit", b.TimeLimit)
	return v, nil
}

// UpdateCall modifies a call in progress.
type UpdateCall struct {
	ResponseOf[CallResponse]
	noQuery
	AccountSID string
	CallSID    string
	Body       *UpdateCallBody
}

func NewUpdateCall(accountSID string, callSID string, body *UpdateCallBody) *UpdateCall {
	return &UpdateCall{AccountSID: accountSID, CallSID: callSID, Body: body}
}

func (e *UpdateCall) Method() string { return http.MethodPost }

func (e *UpdateCall) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Calls/{Sid}.json",
		"{AccountSid}", e.AccountSID, "{Sid}", e.CallSID)
}

func (e *UpdateCall) Form() (url.Values, error) { return e.Body.Form() }

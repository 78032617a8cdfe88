package twilio

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"net/url"
	"sort"
	"strconv"
)

// SignatureHeader carries the request signature on every webhook the
// API delivers.
const SignatureHeader = "X-Twilio-Signature"

// ValidateSignature checks that r was signed with authToken. The
// expected signature is the HMAC-SHA1 of the full request URL followed
// by the POST parameters, each key concatenated with its value, in
// byte order of the keys. postParams must be the decoded form body for
// form-encoded POST requests and nil otherwise; query parameters are
// covered by the URL itself.
func ValidateSignature(authToken string, r *http.Request, postParams url.Values) error {
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		return ErrMissingSignature
	}
	host := r.Host
	if host == "" {
		return ErrMissingHost
	}
	scheme := "https"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS == nil {
		scheme = "http"
	}
	requestURL := scheme + "://" + host + r.URL.RequestURI()
	expected := computeSignature(authToken, requestURL, postParams)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}

func computeSignature(authToken string, requestURL string, postParams url.Values) string {
	payload := requestURL
	keys := make([]string, 0, len(postParams))
	for k := range postParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range postParams[k] {
			payload += k + v
		}
	}
	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// RequestParams are the parameters delivered with every voice webhook
// and status callback, decoded from the form body or query string.
// Parameters absent from the request stay empty.
type RequestParams struct {
	AccountSid    string
	APIVersion    string
	CallSid       string
	CallStatus    CallStatus
	Direction     string
	From          string
	To            string
	Caller        string
	Called        string
	ForwardedFrom string
	CallerName    string
	ParentCallSid string

	// Status callback extras.
	CallbackSource    string
	SequenceNumber    int
	CallDuration      int
	Timestamp         string
	RecordingSid      string
	RecordingURL      string
	RecordingStatus   string
	RecordingChannels int
	RecordingDuration int

	// Gather results.
	Digits       string
	SpeechResult string

	AnsweredBy AnsweredBy
	Conference ConferenceParams
}

// IsNoAnswer reports whether the call ended without being picked up.
func (p RequestParams) IsNoAnswer() bool {
	return p.CallStatus == CallStatusNoAnswer || p.CallStatus == CallStatusBusy
}

// IsConferenceEnd reports whether this is the final callback of a
// conference.
func (p RequestParams) IsConferenceEnd() bool {
	return p.Conference.StatusCallbackEvent == "conference-end"
}

// AnsweredBy is the machine detection verdict delivered once detection
// completes.
type AnsweredBy string

const (
	AnsweredByHuman             AnsweredBy = "human"
	AnsweredByMachineStart      AnsweredBy = "machine_start"
	AnsweredByMachineEndBeep    AnsweredBy = "machine_end_beep"
	AnsweredByMachineEndSilence AnsweredBy = "machine_end_silence"
	AnsweredByMachineEndOther   AnsweredBy = "machine_end_other"
	AnsweredByFax               AnsweredBy = "fax"
	AnsweredByUnknown           AnsweredBy = "unknown"
)

// ConferenceParams are the extra parameters of conference status
// callbacks.
type ConferenceParams struct {
	ConferenceSid          string
	FriendlyName           string
	StatusCallbackEvent    string
	Muted                  bool
	Hold                   bool
	EndConferenceOnExit    bool
	StartConferenceOnEnter bool
}

// AMDParams are the parameters of the asynchronous machine detection
// callback. MachineDetectionDuration is in milliseconds.
type AMDParams struct {
	CallSid                  string
	AccountSid               string
	AnsweredBy               AnsweredBy
	MachineDetectionDuration int
}

// ParseAMDParams decodes the machine detection callback parameters.
func ParseAMDParams(v url.Values) AMDParams {
	return AMDParams{
		CallSid:                  v.Get("CallSid"),
		AccountSid:               v.Get("AccountSid"),
		AnsweredBy:               AnsweredBy(v.Get("AnsweredBy")),
		MachineDetectionDuration: atoiOrZero(v.Get("MachineDetectionDuration")),
	}
}

// ParseRequestParams decodes webhook parameters from form or query
// values.
func ParseRequestParams(v url.Values) RequestParams {
	return RequestParams{
		AccountSid:        v.Get("AccountSid"),
		APIVersion:        v.Get("ApiVersion"),
		CallSid:           v.Get("CallSid"),
		CallStatus:        CallStatus(v.Get("CallStatus")),
		Direction:         v.Get("Direction"),
		From:              v.Get("From"),
		To:                v.Get("To"),
		Caller:            v.Get("Caller"),
		Called:            v.Get("Called"),
		ForwardedFrom:     v.Get("ForwardedFrom"),
		CallerName:        v.Get("CallerName"),
		ParentCallSid:     v.Get("ParentCallSid"),
		CallbackSource:    v.Get("CallbackSource"),
		SequenceNumber:    atoiOrZero(v.Get("SequenceNumber")),
		CallDuration:      atoiOrZero(v.Get("CallDuration")),
		Timestamp:         v.Get("Timestamp"),
		RecordingSid:      v.Get("RecordingSid"),
		RecordingURL:      v.Get("RecordingUrl"),
		RecordingStatus:   v.Get("RecordingStatus"),
		RecordingChannels: atoiOrZero(v.Get("RecordingChannels")),
		RecordingDuration: atoiOrZero(v.Get("RecordingDuration")),
		Digits:            v.Get("Digits"),
		SpeechResult:      v.Get("SpeechResult"),
		AnsweredBy:        AnsweredBy(v.Get("AnsweredBy")),
		Conference: ConferenceParams{
			ConferenceSid:          v.Get("ConferenceSid"),
			FriendlyName:           v.Get("FriendlyName"),
			StatusCallbackEvent:    v.Get("StatusCallbackEvent"),
			Muted:                  v.Get("Muted") == "true",
			Hold:                   v.Get("Hold") == "true",
			EndConferenceOnExit:    v.Get("EndConferenceOnExit") == "true",
			StartConferenceOnEnter: v.Get("StartConferenceOnEnter") == "true",
		},
	}
}

// ParseRequest reads and decodes the webhook parameters of an incoming
// request: the form body for POST, the query string otherwise.
func ParseRequest(r *http.Request) (RequestParams, error) {
	if err := r.ParseForm(); err != nil {
		return RequestParams{}, err
	}
	if r.Method == http.MethodPost {
		return ParseRequestParams(r.PostForm), nil
	}
	return ParseRequestParams(r.URL.Query()), nil
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

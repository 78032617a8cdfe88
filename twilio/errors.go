package twilio

import (
	"errors"
	"fmt"
)

// Configuration errors returned by NewClientFromEnv.
var (
	ErrMissingAccountSID = errors.New("twilio: TWILIO_ACCOUNT_SID is not set")
	ErrMissingAuthToken  = errors.New("twilio: TWILIO_AUTH_TOKEN is not set")
)

// Webhook signature validation errors.
var (
	ErrMissingHost      = errors.New("twilio: missing Host header")
	ErrMissingSignature = errors.New("twilio: missing X-Twilio-Signature header")
	ErrInvalidSignature = errors.New("twilio: invalid signature")
)

// TwiML construction errors.
var (
	ErrInvalidWebSocketURL = errors.New("twilio: stream url must be a valid wss:// url")
	ErrInvalidCallbackURL  = errors.New("twilio: status callback url is not a valid url")
)

// APIError is returned by Hit when the API responds with a non-2xx
// status. It carries the remote error payload verbatim.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"-"`
	// Code is the provider-specific error code.
	Code int `json:"code"`
	// Message is the human readable error description.
	Message string `json:"message"`
	// MoreInfo links to the provider documentation for Code.
	MoreInfo string `json:"more_info"`
	// Status repeats the HTTP status inside the payload.
	Status int `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twilio: API error (%d): %s", e.StatusCode, e.Message)
}

// TransportError is returned by Hit when no response could be obtained
// from the API at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "twilio: request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is returned by Hit when the API responded with a success
// status but the body does not match the endpoint's response document.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "twilio: failed to decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

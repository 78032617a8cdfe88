// Package twilio is a thin client for the Twilio voice REST API. A
// Client holds the account credentials, each API action is described by
// an endpoint descriptor, and Hit performs the request/response
// exchange for any descriptor it is given.
package twilio

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the API host used unless WithBaseURL overrides it.
const DefaultBaseURL = "https://api.twilio.com"

// Environment variables read by NewClientFromEnv.
const (
	EnvAccountSID       = "TWILIO_ACCOUNT_SID"
	EnvAuthToken        = "TWILIO_AUTH_TOKEN"
	EnvMainAPIKey       = "TWILIO_MAIN_API_KEY"
	EnvMainAPIKeySecret = "TWILIO_MAIN_API_KEY_SECRET"
	EnvPhoneNumber      = "TWILIO_PHONE_NUMBER"
)

// Client holds the process-wide API configuration. It is immutable
// after construction, so concurrent Hit calls need no locking.
type Client struct {
	httpClient       *http.Client
	accountSID       string
	authToken        string
	mainAPIKey       string
	mainAPIKeySecret string
	number           string
	baseURL          string
}

// NewClient returns a Client for the given account credentials.
func NewClient(accountSID string, authToken string) *Client {
	return &Client{
		httpClient: defaultHTTPClient(),
		accountSID: accountSID,
		authToken:  authToken,
		baseURL:    DefaultBaseURL,
	}
}

// NewClientFromEnv builds a Client from the process environment. The
// account SID and auth token are required; the main API key pair and
// the default phone number are optional.
func NewClientFromEnv() (*Client, error) {
	accountSID := os.Getenv(EnvAccountSID)
	if accountSID == "" {
		return nil, ErrMissingAccountSID
	}
	authToken := os.Getenv(EnvAuthToken)
	if authToken == "" {
		return nil, ErrMissingAuthToken
	}
	client := NewClient(accountSID, authToken)
	client.mainAPIKey = os.Getenv(EnvMainAPIKey)
	client.mainAPIKeySecret = os.Getenv(EnvMainAPIKeySecret)
	client.number = os.Getenv(EnvPhoneNumber)
	return client, nil
}

func defaultHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Dial:                (&net.Dialer{Timeout: 3 * time.Second}).Dial,
			TLSHandshakeTimeout: 3 * time.Second,
		},
	}
}

// AccountSID returns the configured account SID.
func (c *Client) AccountSID() string { return c.accountSID }

// AuthToken returns the configured auth token.
func (c *Client) AuthToken() string { return c.authToken }

// Number returns the default phone number, empty when none was set.
func (c *Client) Number() string { return c.number }

// WithNumber returns a copy of the client carrying a default number.
func (c *Client) WithNumber(number string) *Client {
	out := *c
	out.number = number
	return &out
}

// WithBaseURL returns a copy of the client targeting baseURL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	out := *c
	out.baseURL = strings.TrimSuffix(baseURL, "/")
	return &out
}

// WithHTTPClient returns a copy of the client using httpClient for its
// exchanges. Timeouts are the transport's responsibility, so this is
// the hook to configure them.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	out := *c
	out.httpClient = httpClient
	return &out
}

// ValidateRequest checks the X-Twilio-Signature of an incoming webhook
// request against the client's auth token. postParams must carry the
// decoded form for form-encoded POST requests and be nil otherwise.
func (c *Client) ValidateRequest(r *http.Request, postParams url.Values) error {
	return ValidateSignature(c.authToken, r, postParams)
}

// Hit executes one endpoint against the API: it form-encodes the body,
// authenticates with the account credentials, performs a single round
// trip and decodes the response document. Connection failures surface
// as *TransportError, non-2xx responses as *APIError carrying the
// remote payload, and undecodable success bodies as *DecodeError.
// Nothing is retried.
func Hit[Response any](ctx context.Context, c *Client, endpoint Endpoint[Response]) (*Response, error) {
	form, err := endpoint.Form()
	if err != nil {
		return nil, err
	}
	requestURL := c.baseURL + endpoint.Path()
	if query := endpoint.Query(); len(query) > 0 {
		requestURL += "?" + query.Encode()
	}
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, endpoint.Method(), requestURL, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return nil, apiErr
	}

	out := endpoint.NewResponse()
	if len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return nil, &DecodeError{Err: err}
		}
	}
	return out, nil
}

// Convenience wrappers for the common call operations, addressed at the
// client's own account.

// CreateCallWithURL places a call whose instructions are fetched from
// the given webhook URL.
func (c *Client) CreateCallWithURL(ctx context.Context, to string, from string, callURL string) (*CallResponse, error) {
	body := NewCreateCallBody(to, from, callURL)
	return Hit[CallResponse](ctx, c, NewCreateCall(c.accountSID, body))
}

// CreateCallWithTwiML places a call driven by an inline TwiML document.
func (c *Client) CreateCallWithTwiML(ctx context.Context, to string, from string, twiml string) (*CallResponse, error) {
	body := NewCreateCallBodyWithSource(to, from, TwiMLInline(twiml))
	return Hit[CallResponse](ctx, c, NewCreateCall(c.accountSID, body))
}

// UpdateCallWithURL redirects an in-progress call to new instructions
// fetched from callURL.
func (c *Client) UpdateCallWithURL(ctx context.Context, callSID string, callURL string) (*CallResponse, error) {
	body := &UpdateCallBody{URL: String(callURL)}
	return Hit[CallResponse](ctx, c, NewUpdateCall(c.accountSID, callSID, body))
}

// UpdateCallWithTwiML redirects an in-progress call to an inline TwiML
// document.
func (c *Client) UpdateCallWithTwiML(ctx context.Context, callSID string, twiml string) (*CallResponse, error) {
	body := &UpdateCallBody{TwiML: String(twiml)}
	return Hit[CallResponse](ctx, c, NewUpdateCall(c.accountSID, callSID, body))
}

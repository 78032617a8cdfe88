package twilio

import (
	"net/url"
	"strconv"
	"strings"
)

// APIVersion is the REST API version all endpoint paths live under.
const APIVersion = "2010-04-01"

// Endpoint describes one REST API action: the resource path it targets,
// the request it sends and, through the Response type parameter, the
// document it decodes. Every resource/action pair is its own descriptor
// type; Hit is oblivious to which one it is given.
type Endpoint[Response any] interface {
	// Method returns the HTTP method of the action.
	Method() string
	// Path returns the resource path relative to the base URL, with
	// all placeholders (account SID, resource SIDs) already expanded.
	Path() string
	// Query returns the list filters, nil when the action has none.
	Query() url.Values
	// Form returns the form-encoded request body, nil for body-less
	// actions.
	Form() (url.Values, error)
	// NewResponse allocates the document Hit decodes the response into.
	NewResponse() *Response
}

// ResponseOf pins an endpoint descriptor to its response document.
// Embed it in every descriptor type; a descriptor embedding
// ResponseOf[R] satisfies Endpoint[R] and no other instantiation.
type ResponseOf[Response any] struct{}

// NewResponse implements Endpoint.
func (ResponseOf[Response]) NewResponse() *Response { return new(Response) }

// EmptyResponse is the response document of actions that return no body.
type EmptyResponse struct{}

// noQuery and noForm are embedded by descriptors without list filters
// or request body.
type noQuery struct{}

func (noQuery) Query() url.Values { return nil }

type noForm struct{}

func (noForm) Form() (url.Values, error) { return nil, nil }

// Pagination carries the page metadata embedded in every list response.
type Pagination struct {
	FirstPageURI    string `json:"first_page_uri"`
	NextPageURI     string `json:"next_page_uri"`
	PreviousPageURI string `json:"previous_page_uri"`
	Page            int    `json:"page"`
	PageSize        int    `json:"page_size"`
	Start           int    `json:"start"`
	End             int    `json:"end"`
	URI             string `json:"uri"`
}

// expandPath substitutes {Placeholder} segments in a path template.
// Pairs are placeholder, value, placeholder, value...
func expandPath(template string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(template)
}

// Helpers to emit optional body fields only when they are set. The API
// treats field absence differently from an empty value, so unset
// optionals never reach the wire.

func setString(v url.Values, key string, val *string) {
	if val != nil {
		v.Set(key, *val)
	}
}

func setBool(v url.Values, key string, val *bool) {
	if val != nil {
		if *val {
			v.Set(key, "true")
		} else {
			v.Set(key, "false")
		}
	}
}

func setInt(v url.Values, key string, val *int) {
	if val != nil {
		v.Set(key, strconv.Itoa(*val))
	}
}

func setFloat(v url.Values, key string, val *float64) {
	if val != nil {
		v.Set(key, strconv.FormatFloat(*val, 'f', -1, 64))
	}
}

func setEvents(v url.Values, key string, events []string) {
	if len(events) > 0 {
		v.Set(key, strings.Join(events, " "))
	}
}

// String returns a pointer to s, for filling optional body fields in
// struct literals.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

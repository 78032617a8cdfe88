package twilio

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// Reference vector from the provider's signature documentation.
const (
	testAuthToken  = "12345"
	testWebhookURL = "https://mycompany.com/myapp.php?foo=1&bar=2"
	testSignature  = "RSOYDt4T1cUTdK1PDd93/VVr8B8="
)

func testWebhookForm() url.Values {
	return url.Values{
		"CallSid": {"CA1234567890ABCDE"},
		"Caller":  {"+14158675309"},
		"Digits":  {"1234"},
		"From":    {"+14158675309"},
		"To":      {"+18005551212"},
	}
}

func TestValidateSignature(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		form := testWebhookForm()
		r := httptest.NewRequest("POST", testWebhookURL, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.Header.Set(SignatureHeader, testSignature)
		if err := ValidateSignature(testAuthToken, r, form); err != nil {
			t.Errorf("expected valid signature, got %#v", err)
		}
	})

	t.Run("MissingHeader", func(t *testing.T) {
		r := httptest.NewRequest("POST", testWebhookURL, nil)
		if err := ValidateSignature(testAuthToken, r, nil); !errors.Is(err, ErrMissingSignature) {
			t.Errorf("expected ErrMissingSignature, got %#v", err)
		}
	})

	t.Run("WrongToken", func(t *testing.T) {
		form := testWebhookForm()
		r := httptest.NewRequest("POST", testWebhookURL, strings.NewReader(form.Encode()))
		r.Header.Set(SignatureHeader, testSignature)
		if err := ValidateSignature("not-the-token", r, form); !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %#v", err)
		}
	})

	t.Run("TamperedParams", func(t *testing.T) {
		form := testWebhookForm()
		form.Set("To", "+15005550000")
		r := httptest.NewRequest("POST", testWebhookURL, strings.NewReader(form.Encode()))
		r.Header.Set(SignatureHeader, testSignature)
		if err := ValidateSignature(testAuthToken, r, form); !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %#v", err)
		}
	})

	t.Run("GETWithQueryOnly", func(t *testing.T) {
		r := httptest.NewRequest("GET", testWebhookURL, nil)
		r.Header.Set(SignatureHeader, computeSignature(testAuthToken, testWebhookURL, nil))
		if err := ValidateSignature(testAuthToken, r, nil); err != nil {
			t.Errorf("expected valid signature, got %#v", err)
		}
	})
}

func TestParseRequestParams(t *testing.T) {
	v := url.Values{
		"AccountSid":     {"AC123"},
		"CallSid":        {"CA123"},
		"CallStatus":     {"completed"},
		"Direction":      {"outbound-api"},
		"From":           {"+15005550001"},
		"To":             {"+15005550006"},
		"CallDuration":   {"42"},
		"SequenceNumber": {"3"},
		"AnsweredBy":     {"machine_end_beep"},
		"RecordingSid":   {"RE123"},
		"RecordingUrl":   {"https://api.twilio.com/recordings/RE123"},
	}
	params := ParseRequestParams(v)
	if params.CallSid != "CA123" {
		t.Errorf("wrong call sid: %s", params.CallSid)
	}
	if params.CallStatus != CallStatusCompleted {
		t.Errorf("wrong status: %s", params.CallStatus)
	}
	if params.CallDuration != 42 {
		t.Errorf("wrong duration: %d", params.CallDuration)
	}
	if params.SequenceNumber != 3 {
		t.Errorf("wrong sequence number: %d", params.SequenceNumber)
	}
	if params.AnsweredBy != AnsweredByMachineEndBeep {
		t.Errorf("wrong answered by: %s", params.AnsweredBy)
	}
	if params.RecordingURL == "" {
		t.Error("missing recording url")
	}
}

func TestParseRequest(t *testing.T) {
	t.Run("PostForm", func(t *testing.T) {
		form := url.Values{"CallSid": {"CA123"}, "CallStatus": {"ringing"}}
		r := httptest.NewRequest("POST", "https://example.com/status", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		params, err := ParseRequest(r)
		if err != nil {
			t.Fatalf("unexpected error: %#v", err)
		}
		if params.CallSid != "CA123" || params.CallStatus != CallStatusRinging {
			t.Errorf("wrong params: %#v", params)
		}
	})

	t.Run("GetQuery", func(t *testing.T) {
		r := httptest.NewRequest("GET", "https://example.com/answer?CallSid=CA456&Digits=42", nil)
		params, err := ParseRequest(r)
		if err != nil {
			t.Fatalf("unexpected error: %#v", err)
		}
		if params.CallSid != "CA456" || params.Digits != "42" {
			t.Errorf("wrong params: %#v", params)
		}
	})
}

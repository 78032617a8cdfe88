package twilio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestNewClientFromEnv(t *testing.T) {
	t.Run("MissingAccountSID", func(t *testing.T) {
		t.Setenv(EnvAccountSID, "")
		t.Setenv(EnvAuthToken, "token")
		if _, err := NewClientFromEnv(); !errors.Is(err, ErrMissingAccountSID) {
			t.Errorf("expected ErrMissingAccountSID, got %#v", err)
		}
	})
	t.Run("MissingAuthToken", func(t *testing.T) {
		t.Setenv(EnvAccountSID, "AC123")
		t.Setenv(EnvAuthToken, "")
		if _, err := NewClientFromEnv(); !errors.Is(err, ErrMissingAuthToken) {
			t.Errorf("expected ErrMissingAuthToken, got %#v", err)
		}
	})
	t.Run("AllSet", func(t *testing.T) {
		t.Setenv(EnvAccountSID, "AC123")
		t.Setenv(EnvAuthToken, "token")
		t.Setenv(EnvPhoneNumber, "+15005550006")
		client, err := NewClientFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %#v", err)
		}
		if client.AccountSID() != "AC123" {
			t.Errorf("wrong account sid: %s", client.AccountSID())
		}
		if client.Number() != "+15005550006" {
			t.Errorf("wrong number: %s", client.Number())
		}
	})
}

func TestHitCreateCall(t *testing.T) {
	var gotPath, gotAuthUser, gotContentType string
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuthUser, _, _ = r.BasicAuth()
		gotContentType = r.Header.Get("Content-Type")
		r.ParseForm()
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"CA123","status":"queued","to":"+15005550006","from":"+15005550001"}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "token").WithBaseURL(server.URL)
	body := NewCreateCallBody("+15005550006", "+15005550001", "https://example.com/answer")
	resp, err := Hit[CallResponse](context.Background(), client, NewCreateCall(client.AccountSID(), body))
	if err != nil {
		t.Fatalf("unexpected error: %#v", err)
	}
	if resp.Sid != "CA123" {
		t.Errorf("wrong sid: %s", resp.Sid)
	}
	if resp.Status != CallStatusQueued {
		t.Errorf("wrong status: %s", resp.Status)
	}
	if gotPath != "/2010-04-01/Accounts/AC123/Calls.json" {
		t.Errorf("wrong path: %s", gotPath)
	}
	if gotAuthUser != "AC123" {
		t.Errorf("wrong basic auth user: %s", gotAuthUser)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("wrong content type: %s", gotContentType)
	}
	wantKeys := []string{"To", "From", "Url"}
	if len(gotForm) != len(wantKeys) {
		t.Errorf("wrong form keys: %v", gotForm)
	}
	for _, k := range wantKeys {
		if gotForm.Get(k) == "" {
			t.Errorf("missing form key %s: %v", k, gotForm)
		}
	}
}

func TestHitAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"The 'To' number is not a valid phone number.","more_info":"https://www.twilio.com/docs/errors/21211","status":400}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "token").WithBaseURL(server.URL)
	_, err := Hit[CallResponse](context.Background(), client, NewFetchCall("AC123", "CA123"))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %#v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("wrong status code: %d", apiErr.StatusCode)
	}
	if apiErr.Code != 21211 {
		t.Errorf("wrong error code: %d", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "not a valid phone number") {
		t.Errorf("wrong message: %s", apiErr.Message)
	}
}

func TestHitAPIErrorNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Authentication Error - invalid username"))
	}))
	defer server.Close()

	client := NewClient("AC123", "bad-token").WithBaseURL(server.URL)
	_, err := Hit[CallResponse](context.Background(), client, NewFetchCall("AC123", "CA123"))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %#v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong status code: %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Authentication Error - invalid username" {
		t.Errorf("wrong message: %s", apiErr.Message)
	}
}

func TestHitDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient("AC123", "token").WithBaseURL(server.URL)
	_, err := Hit[CallResponse](context.Background(), client, NewFetchCall("AC123", "CA123"))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %#v", err)
	}
}

func TestHitTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("AC123", "token").WithBaseURL(server.URL)
	_, err := Hit[CallResponse](context.Background(), client, NewFetchCall("AC123", "CA123"))
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %#v", err)
	}
	if transportErr.Unwrap() == nil {
		t.Error("expected wrapped cause")
	}
}

func TestHitListQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"calls":[{"sid":"CA1"},{"sid":"CA2"}],"page":0,"page_size":50,"next_page_uri":"/2010-04-01/Accounts/AC123/Calls.json?Page=1"}`))
	}))
	defer server.Close()

	client := NewClient("AC123", "token").WithBaseURL(server.URL)
	endpoint := NewListCalls("AC123").WithQuery(
		NewQuery().Status(CallStatusCompleted).PageSize(50))
	resp, err := Hit[ListCallsResponse](context.Background(), client, endpoint)
	if err != nil {
		t.Fatalf("unexpected error: %#v", err)
	}
	if len(resp.Calls) != 2 {
		t.Errorf("wrong number of calls: %d", len(resp.Calls))
	}
	if resp.NextPageURI == "" {
		t.Error("missing next page uri")
	}
	if gotQuery.Get("Status") != "completed" {
		t.Errorf("wrong status filter: %v", gotQuery)
	}
	if gotQuery.Get("PageSize") != "50" {
		t.Errorf("wrong page size: %v", gotQuery)
	}
}

func TestWithBaseURLTrimsSlash(t *testing.T) {
	client := NewClient("AC123", "token").WithBaseURL("https://api.example.com/")
	if client.baseURL != "https://api.example.com" {
		t.Errorf("trailing slash not trimmed: %s", client.baseURL)
	}
}

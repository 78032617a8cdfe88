package twilio

import (
	"sort"
	"testing"
)

func formKeys(t *testing.T, b *CreateCallBody) []string {
	t.Helper()
	v, err := b.Form()
	if err != nil {
		t.Fatalf("unexpected error: %#v", err)
	}
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestCreateCallBodyForm(t *testing.T) {
	t.Run("RequiredOnly", func(t *testing.T) {
		b := NewCreateCallBody("+15005550006", "+15005550001", "https://example.com/answer")
		keys := formKeys(t, b)
		want := []string{"From", "To", "Url"}
		if len(keys) != len(want) {
			t.Fatalf("wrong key set: %v", keys)
		}
		for i := range want {
			if keys[i] != want[i] {
				t.Fatalf("wrong key set: %v", keys)
			}
		}
	})

	t.Run("InlineTwiML", func(t *testing.T) {
		b := NewCreateCallBodyWithSource("+15005550006", "+15005550001",
			TwiMLInline(`<Response><Say>hello</Say></Response>`))
		v, _ := b.Form()
		if v.Get("Twiml") == "" {
			t.Errorf("missing Twiml key: %v", v)
		}
		if v.Get("Url") != "" || v.Get("ApplicationSid") != "" {
			t.Errorf("unexpected source keys: %v", v)
		}
	})

	t.Run("ApplicationSource", func(t *testing.T) {
		b := NewCreateCallBodyWithSource("+15005550006", "+15005550001",
			TwiMLApplication("AP123"))
		v, _ := b.Form()
		if v.Get("ApplicationSid") != "AP123" {
			t.Errorf("missing ApplicationSid key: %v", v)
		}
		if v.Get("Url") != "" || v.Get("Twiml") != "" {
			t.Errorf("unexpected source keys: %v", v)
		}
	})

	t.Run("Optionals", func(t *testing.T) {
		b := NewCreateCallBody("+15005550006", "+15005550001", "https://example.com/answer").
			WithStatusCallback("https://example.com/status", "initiated", "ringing", "answered", "completed").
			WithRecording("dual", "https://example.com/recording").
			WithMachineDetection("DetectMessageEnd").
			WithTimeout(30)
		v, _ := b.Form()
		if v.Get("StatusCallback") != "https://example.com/status" {
			t.Errorf("missing StatusCallback: %v", v)
		}
		if v.Get("StatusCallbackEvent") != "initiated ringing answered completed" {
			t.Errorf("wrong StatusCallbackEvent: %q", v.Get("StatusCallbackEvent"))
		}
		if v.Get("Record") != "true" {
			t.Errorf("wrong Record: %q", v.Get("Record"))
		}
		if v.Get("RecordingChannels") != "dual" {
			t.Errorf("wrong RecordingChannels: %q", v.Get("RecordingChannels"))
		}
		if v.Get("MachineDetection") != "DetectMessageEnd" {
			t.Errorf("wrong MachineDetection: %q", v.Get("MachineDetection"))
		}
		if v.Get("Timeout") != "30" {
			t.Errorf("wrong Timeout: %q", v.Get("Timeout"))
		}
	})

	t.Run("UnsetOptionalsOmitted", func(t *testing.T) {
		b := NewCreateCallBody("+15005550006", "+15005550001", "https://example.com/answer")
		v, _ := b.Form()
		for _, key := range []string{"Timeout", "Record", "SendDigits", "MachineDetection", "StatusCallback"} {
			if _, ok := v[key]; ok {
				t.Errorf("unset optional %s reached the wire: %v", key, v)
			}
		}
	})

	t.Run("FalseIsNotOmitted", func(t *testing.T) {
		b := NewCreateCallBody("+15005550006", "+15005550001", "https://example.com/answer")
		b.Record = Bool(false)
		v, _ := b.Form()
		if v.Get("Record") != "false" {
			t.Errorf("explicit false must be sent: %v", v)
		}
	})
}

func TestUpdateCallBodyForm(t *testing.T) {
	t.Run("Redirect", func(t *testing.T) {
		b := &UpdateCallBody{URL: String("https://example.com/next"), Method: String("POST")}
		v, _ := b.Form()
		if v.Get("Url") != "https://example.com/next" || v.Get("Method") != "POST" {
			t.Errorf("wrong form: %v", v)
		}
		if len(v) != 2 {
			t.Errorf("wrong key set: %v", v)
		}
	})

	t.Run("Terminate", func(t *testing.T) {
		status := CallStatusCompleted
		b := &UpdateCallBody{Status: &status}
		v, _ := b.Form()
		if v.Get("Status") != "completed" {
			t.Errorf("wrong form: %v", v)
		}
		if len(v) != 1 {
			t.Errorf("wrong key set: %v", v)
		}
	})
}

func TestEndpointPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"CreateCall", NewCreateCall("AC1", nil).Path(), "/2010-04-01/Accounts/AC1/Calls.json"},
		{"FetchCall", NewFetchCall("AC1", "CA2").Path(), "/2010-04-01/Accounts/AC1/Calls/CA2.json"},
		{"UpdateCall", NewUpdateCall("AC1", "CA2", nil).Path(), "/2010-04-01/Accounts/AC1/Calls/CA2.json"},
		{"FetchAccount", NewFetchAccount("AC1").Path(), "/2010-04-01/Accounts/AC1.json"},
		{"ListAccounts", NewListAccounts().Path(), "/2010-04-01/Accounts.json"},
		{"FetchApplication", NewFetchApplication("AC1", "AP2").Path(), "/2010-04-01/Accounts/AC1/Applications/AP2.json"},
		{"FetchConference", NewFetchConference("AC1", "CF2").Path(), "/2010-04-01/Accounts/AC1/Conferences/CF2.json"},
		{"FetchParticipant", NewFetchParticipant("AC1", "CF2", "CA3").Path(), "/2010-04-01/Accounts/AC1/Conferences/CF2/Participants/CA3.json"},
		{"CreateStream", NewCreateStream("AC1", "CA2", nil).Path(), "/2010-04-01/Accounts/AC1/Calls/CA2/Streams.json"},
		{"StopStream", NewStopStream("AC1", "CA2", "MZ3").Path(), "/2010-04-01/Accounts/AC1/Calls/CA2/Streams/MZ3.json"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.path != tc.want {
				t.Errorf("got %s, want %s", tc.path, tc.want)
			}
		})
	}
}

func TestCreateStreamBodyForm(t *testing.T) {
	t.Run("RejectsNonWssURL", func(t *testing.T) {
		b := NewCreateStreamBody("https://example.com/media")
		if _, err := b.Form(); err != ErrInvalidWebSocketURL {
			t.Errorf("expected ErrInvalidWebSocketURL, got %#v", err)
		}
	})

	t.Run("RejectsHostlessURL", func(t *testing.T) {
		b := NewCreateStreamBody("wss://")
		if _, err := b.Form(); err != ErrInvalidWebSocketURL {
			t.Errorf("expected ErrInvalidWebSocketURL, got %#v", err)
		}
	})

	t.Run("RejectsBadStatusCallback", func(t *testing.T) {
		b := NewCreateStreamBody("wss://example.com/media")
		b.StatusCallback = String("not a url")
		if _, err := b.Form(); err != ErrInvalidCallbackURL {
			t.Errorf("expected ErrInvalidCallbackURL, got %#v", err)
		}
	})

	t.Run("Parameters", func(t *testing.T) {
		b := NewCreateStreamBody("wss://example.com/media").
			WithName("transcriber").
			WithTrack("both_tracks").
			WithParameter("campaign", "summer").
			WithParameter("lang", "en")
		v, err := b.Form()
		if err != nil {
			t.Fatalf("unexpected error: %#v", err)
		}
		if v.Get("Parameter1.Name") != "campaign" || v.Get("Parameter1.Value") != "summer" {
			t.Errorf("wrong first parameter: %v", v)
		}
		if v.Get("Parameter2.Name") != "lang" || v.Get("Parameter2.Value") != "en" {
			t.Errorf("wrong second parameter: %v", v)
		}
	})
}

package twilio

import (
	"errors"
	"testing"
)

func TestVoiceResponse(t *testing.T) {
	tests := []struct {
		name string
		doc  *VoiceResponse
		want string
	}{
		{
			"Empty",
			NewVoiceResponse(),
			`<?xml version="1.0" encoding="UTF-8"?><Response></Response>`,
		},
		{
			"Say",
			NewVoiceResponse().Say("hello world"),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Say>hello world</Say></Response>`,
		},
		{
			"SayEscapesText",
			NewVoiceResponse().Say(`press "1" & wait`),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Say>press &quot;1&quot; &amp; wait</Say></Response>`,
		},
		{
			"ConnectStream",
			NewVoiceResponse().Connect(NewStream("wss://test.com/connect")),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Connect><Stream url="wss://test.com/connect" /></Connect></Response>`,
		},
		{
			"StartStreamWithTrack",
			NewVoiceResponse().Start(NewStream("wss://test.com/fork").WithTrack("inbound_track")),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Start><Stream url="wss://test.com/fork" track="inbound_track" /></Start></Response>`,
		},
		{
			"StreamParameters",
			NewVoiceResponse().Connect(
				NewStream("wss://test.com/connect").WithParameter("lang", "en")),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Connect><Stream url="wss://test.com/connect"><Parameter name="lang" value="en" /></Stream></Connect></Response>`,
		},
		{
			"Reject",
			NewVoiceResponse().Reject("busy"),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Reject reason="busy" /></Response>`,
		},
		{
			"RejectDefaultReason",
			NewVoiceResponse().Reject(""),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Reject /></Response>`,
		},
		{
			"PlayThenHangup",
			NewVoiceResponse().Play("https://example.com/greeting.wav").Hangup(),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Play>https://example.com/greeting.wav</Play><Hangup /></Response>`,
		},
		{
			"Pause",
			NewVoiceResponse().Pause(5),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Pause length="5" /></Response>`,
		},
		{
			"Redirect",
			NewVoiceResponse().Redirect("https://example.com/next"),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Redirect>https://example.com/next</Redirect></Response>`,
		},
		{
			"Dial",
			NewVoiceResponse().Dial("+15005550006"),
			`<?xml version="1.0" encoding="UTF-8"?><Response><Dial>+15005550006</Dial></Response>`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.doc.Err(); err != nil {
				t.Fatalf("unexpected error: %#v", err)
			}
			if got := tc.doc.String(); got != tc.want {
				t.Errorf("wrong document:\n got %s\nwant %s", got, tc.want)
			}
		})
	}
}

func TestVoiceResponseInvalidStreamURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"WrongScheme", "https://test.com/connect"},
		{"SchemeOnly", "wss://"},
		{"Unparseable", "wss://test.com/%zz"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := NewVoiceResponse().Connect(NewStream(tc.url))
			if !errors.Is(doc.Err(), ErrInvalidWebSocketURL) {
				t.Errorf("expected ErrInvalidWebSocketURL, got %#v", doc.Err())
			}
		})
	}
}

func TestVoiceResponseInvalidStatusCallback(t *testing.T) {
	doc := NewVoiceResponse().Connect(
		NewStream("wss://test.com/connect").WithStatusCallback("not a url", "POST"))
	if !errors.Is(doc.Err(), ErrInvalidCallbackURL) {
		t.Errorf("expected ErrInvalidCallbackURL, got %#v", doc.Err())
	}
}

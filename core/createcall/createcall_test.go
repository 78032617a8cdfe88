package createcall

import (
	"os"
	"testing"

	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/phonenumber"
)

func TestMain(m *testing.M) {
	configmanager.ConfStore = &configmanager.AppConfig{
		StatusCallbackURL: "https://gateway.example.com/twilio/status",
		RecordingChannels: "dual",
	}
	os.Exit(m.Run())
}

func TestValidateNumbers(t *testing.T) {

	t.Run("SameNumbers", func(t *testing.T) {
		to := phonenumber.ParseNumber("+918133910729")
		from := phonenumber.ParseNumber("+918133910729")
		if err := ValidateNumbers(to, from); err == nil {
			t.Errorf("Expected validation to fail for the same to and from numbers")
		}
	})

	t.Run("DistinctNumbers", func(t *testing.T) {
		to := phonenumber.ParseNumber("+918133910729")
		from := phonenumber.ParseNumber("+918068402307")
		if err := ValidateNumbers(to, from); err != nil {
			t.Errorf("Expected validation to pass. Error: [%#v]", err)
		}
	})

	t.Run("EmptyDestination", func(t *testing.T) {
		var to phonenumber.PhoneNumber
		from := phonenumber.ParseNumber("+918068402307")
		if err := ValidateNumbers(to, from); err == nil {
			t.Errorf("Expected validation to fail for empty destination")
		}
	})
}

func TestBuildCallBody(t *testing.T) {

	t.Run("URLSource", func(t *testing.T) {
		callURL := "https://example.com/voice.xml"
		req := contracts.CreateCallRequest{URL: &callURL}
		body := buildCallBody("+918133910729", "+918068402307", req)
		form, err := body.Form()
		if err != nil {
			t.Fatalf("Failed to encode the body. Error: [%#v]", err)
		}
		if form.Get("Url") != callURL {
			t.Errorf("Expected Url [%s], got [%s]", callURL, form.Get("Url"))
		}
		if form.Get("Twiml") != "" {
			t.Errorf("Twiml should not be set when a URL is given")
		}
	})

	t.Run("TwiMLSource", func(t *testing.T) {
		twiml := "<Response><Say>Hi</Say></Response>"
		req := contracts.CreateCallRequest{TwiML: &twiml}
		body := buildCallBody("+918133910729", "+918068402307", req)
		form, err := body.Form()
		if err != nil {
			t.Fatalf("Failed to encode the body. Error: [%#v]", err)
		}
		if form.Get("Twiml") != twiml {
			t.Errorf("Expected Twiml [%s], got [%s]", twiml, form.Get("Twiml"))
		}
	})

	t.Run("MachineDetection", func(t *testing.T) {
		callURL := "https://example.com/voice.xml"
		md := true
		req := contracts.CreateCallRequest{URL: &callURL, MachineDetection: &md}
		body := buildCallBody("+918133910729", "+918068402307", req)
		form, _ := body.Form()
		if form.Get("MachineDetection") != "Enable" {
			t.Errorf("Expected MachineDetection Enable, got [%s]", form.Get("MachineDetection"))
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		callURL := "https://example.com/voice.xml"
		timeout := 30
		req := contracts.CreateCallRequest{URL: &callURL, Timeout: &timeout}
		body := buildCallBody("+918133910729", "+918068402307", req)
		form, _ := body.Form()
		if form.Get("Timeout") != "30" {
			t.Errorf("Expected Timeout 30, got [%s]", form.Get("Timeout"))
		}
	})

	t.Run("RequiredFields", func(t *testing.T) {
		callURL := "https://example.com/voice.xml"
		req := contracts.CreateCallRequest{URL: &callURL}
		body := buildCallBody("+918133910729", "+918068402307", req)
		if body.To != "+918133910729" || body.From != "+918068402307" {
			t.Errorf("Unexpected dialing pair: [%#v]", body)
		}
		form, _ := body.Form()
		if form.Get("StatusCallback") != configmanager.ConfStore.StatusCallbackURL {
			t.Errorf("Expected the status callback to be wired from config, got [%s]", form.Get("StatusCallback"))
		}
	})
}

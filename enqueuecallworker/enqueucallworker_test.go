package enqueuecallworker

import (
	"testing"

	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
)

func TestCampaignLocation(t *testing.T) {
	orig := configmanager.ConfStore
	defer func() { configmanager.ConfStore = orig }()

	t.Run("DefaultWithoutConfig", func(t *testing.T) {
		configmanager.ConfStore = nil
		if got := campaignLocation().String(); got != "Asia/Kolkata" {
			t.Errorf("expected Asia/Kolkata, got %s", got)
		}
	})

	t.Run("DefaultWhenUnset", func(t *testing.T) {
		configmanager.ConfStore = &configmanager.AppConfig{}
		if got := campaignLocation().String(); got != "Asia/Kolkata" {
			t.Errorf("expected Asia/Kolkata, got %s", got)
		}
	})

	t.Run("ConfiguredTimezone", func(t *testing.T) {
		configmanager.ConfStore = &configmanager.AppConfig{CampaignTZ: "America/New_York"}
		if got := campaignLocation().String(); got != "America/New_York" {
			t.Errorf("expected America/New_York, got %s", got)
		}
	})

	t.Run("UnknownTimezoneFallsBack", func(t *testing.T) {
		configmanager.ConfStore = &configmanager.AppConfig{CampaignTZ: "Mars/Olympus"}
		if got := campaignLocation().String(); got != "Asia/Kolkata" {
			t.Errorf("expected Asia/Kolkata, got %s", got)
		}
	})
}

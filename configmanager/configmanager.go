package configmanager

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/metrics"
	"bitbucket.org/yellowmessenger/twilio-voice/queuemanager"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
	"google.golang.org/api/idtoken"
)

// AppConfig is the runtime configuration of the gateway
type AppConfig struct {
	LoggerConf          ymlogger.LoggerConf              `json:"logger_conf"`
	MetricsConf         metrics.Config                   `json:"metrics_conf"`
	QueueConnParams     queuemanager.QueueConnParams     `json:"queue_conn_params"`
	QueueListenerParams queuemanager.QueueListenerParams `json:"queue_listener_params"`
	QueueMessageParams  queuemanager.QueueMessageParams  `json:"queue_message_params"`

	MySQLUser     string `json:"mysql_user"`
	MySQLPassword string `json:"mysql_password"`
	MySQLDB       string `json:"mysql_db"`

	// Credentials the gateway's own HTTP API is guarded with.
	APIUsername string `json:"api_username"`
	APIPassword string `json:"api_password"`

	// Twilio account settings. Empty SID/token fall back to the
	// TWILIO_* environment variables.
	TwilioAccountSID  string `json:"twilio_account_sid"`
	TwilioAuthToken   string `json:"twilio_auth_token"`
	TwilioBaseURL     string `json:"twilio_base_url"`
	TwilioCallerID    string `json:"twilio_caller_id"`
	StatusCallbackURL string `json:"status_callback_url"`
	MachineDetection  bool   `json:"machine_detection"`

	CallAPIRequestsPerSecond int `json:"call_api_requests_per_second"`

	RecordingEnabled        bool   `json:"recording_enabled"`
	RecordingChannels       string `json:"recording_channels"`
	RecordingStorageBackend string `json:"recording_storage_backend"`
	RecordingContainerName  string `json:"recording_container_name"`
	RecordingS3Bucket       string `json:"recording_s3_bucket"`
	RecordingS3Region       string `json:"recording_s3_region"`
	RecordingDirectory      string `json:"recording_directory"`

	CallbackMaxTries   int    `json:"callback_max_tries"`
	InboundCallbackURL string `json:"inbound_callback_url"`
	CallbackHost       string `json:"callback_host"`

	AccountHealthDelay     int `json:"account_health_delay"`
	CampaignDelayPerCallMS int `json:"campaign_delay_per_call_ms"`
	CampaignMinHour        int `json:"campaign_min_hour"`
	CampaignMaxHour        int `json:"campaign_max_hour"`

	DefaultRegion string `json:"default_region"`
	CampaignTZ    string `json:"campaign_timezone"`

	GoogleClientID    string `json:"google_client_id"`
	GoogleAccessToken string `json:"google_access_token"`

	CallerRateLimitParams queuemanager.CallerRateLimitParams `json:"caller_rate_limit_params"`
}

// ConfStore stores the configuration variables
var ConfStore *AppConfig

// InitConfig initializes the config
func InitConfig(
	fileName string,
) error {
	data, err := ioutil.ReadFile(fileName)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, &ConfStore); err != nil {
		return err
	}
	return nil
}

// RenewGoogleToken generates the Google ID token periodically. The
// token authorizes the customer callback requests.
func RenewGoogleToken(ctx context.Context) {
	ConfStore.GoogleAccessToken = generateToken(ctx)
	ticker := time.NewTicker(30 * time.Minute)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ConfStore.GoogleAccessToken = generateToken(ctx)
		}
	}
}

func generateToken(ctx context.Context) string {
	ymlogger.LogDebug("GenToken", "Generating the Google Token")
	ts, err := idtoken.NewTokenSource(ctx, ConfStore.GoogleClientID, idtoken.WithCredentialsFile(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")))
	if err != nil {
		ymlogger.LogErrorf("GenToken", "Error while generating the token. Error: [%#v]", err)
		return ""
	}
	token, err := ts.Token()
	if err != nil {
		ymlogger.LogErrorf("GenToken", "Error while extracting the token. Error: [%#v]", err)
		return ""
	}
	return token.AccessToken
}

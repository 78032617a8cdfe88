package recordings

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/connections"
	"bitbucket.org/yellowmessenger/twilio-voice/newrelic"
	"bitbucket.org/yellowmessenger/twilio-voice/utils/helper"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
)

var downloadClient = &http.Client{
	Transport: &http.Transport{
		Dial:                (&net.Dialer{Timeout: 3 * time.Second}).Dial,
		TLSHandshakeTimeout: 3 * time.Second,
	},
	Timeout: 60 * time.Second,
}

// Archive downloads the finished recording and moves it to the
// configured storage backend. It returns the archive URL.
func Archive(
	ctx context.Context,
	callSID string,
	recordingSID string,
	recordingURL string,
) (string, error) {
	filePath, err := download(ctx, callSID, recordingSID, recordingURL)
	if err != nil {
		return "", err
	}
	defer os.Remove(filePath)

	duration, err := helper.GetDuration(filePath)
	if err != nil {
		ymlogger.LogErrorf(callSID, "Error while getting the duration of the recording. Error: [%#v]", err)
	} else {
		ymlogger.LogInfof(callSID, "Recording [%s] duration [%d] ms", recordingSID, duration)
		if err := newrelic.SendCustomEvent("call_recordings", map[string]interface{}{
			"recording_sid":  recordingSID,
			"duration_in_ms": duration,
			"value":          1,
		}); err != nil {
			ymlogger.LogErrorf(callSID, "Failed to send recording metric to new relic. Error: [%#v]", err)
		}
	}

	switch strings.ToLower(configmanager.ConfStore.RecordingStorageBackend) {
	case "s3":
		return uploadToS3(ctx, callSID, filePath)
	case "azure":
		return uploadToAzure(ctx, callSID, filePath)
	default:
		return "", errors.New("No recording storage backend configured")
	}
}

func download(
	ctx context.Context,
	callSID string,
	recordingSID string,
	recordingURL string,
) (string, error) {
	client, err := connections.GetTwilioClient()
	if err != nil {
		ymlogger.LogErrorf(callSID, "Voice API client is not available. Error: [%#v]", err)
		return "", err
	}
	// The media endpoint serves WAV when the resource URL carries the
	// .wav extension.
	mediaURL := strings.TrimSuffix(recordingURL, ".json") + ".wav"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		ymlogger.LogErrorf(callSID, "Failed to prepare the recording download request. Error: [%#v]", err)
		return "", err
	}
	req.SetBasicAuth(client.AccountSID(), client.AuthToken())

	var response *http.Response
	for i := 0; i < 3; i++ {
		response, err = downloadClient.Do(req)
		if response == nil || response.StatusCode < 200 || response.StatusCode >= 300 || err != nil {
			ymlogger.LogErrorf(callSID, "Retry: [%d]. Failed to download the recording. Response: [%#v]. Error: [%#v]", (i + 1), response, err)
			time.Sleep(time.Duration(i+1) * time.Second)
			continue
		}
		break
	}
	if response == nil || response.StatusCode < 200 || response.StatusCode >= 300 || err != nil {
		ymlogger.LogErrorf(callSID, "Failed to download the recording. Error: [%#v]", err)
		return "", errors.New("Failed to download the recording")
	}
	defer response.Body.Close()

	filePath := filepath.Join(configmanager.ConfStore.RecordingDirectory, callSID+"_"+recordingSID+".wav")
	outFile, err := os.Create(filePath)
	if err != nil {
		ymlogger.LogErrorf(callSID, "Error while creating file. FilePath: [%s], Error: [%#v]", filePath, err)
		return "", err
	}
	defer outFile.Close()
	if _, err = io.Copy(outFile, response.Body); err != nil {
		ymlogger.LogErrorf(callSID, "Error while writing the recording file. Error: [%#v]", err)
		return "", err
	}
	ymlogger.LogInfof(callSID, "Downloaded the recording to [%s]", filePath)
	return filePath, nil
}

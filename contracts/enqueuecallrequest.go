package contracts

import (
	"encoding/json"
	"errors"

	"github.com/labstack/echo"
)

type EnqueueCallRequest struct {
	From             *string     `json:"from"`
	To               *string     `json:"to"`
	URL              *string     `json:"url,omitempty"`
	TwiML            *string     `json:"twiml,omitempty"`
	CallbackURL      *string     `json:"callback_url,omitempty"`
	RecordingEnabled *bool       `json:"recording_enabled,omitempty"`
	MachineDetection *bool       `json:"machine_detection,omitempty"`
	DelayMillis      *int64      `json:"delay_millis,omitempty"`
	Priority         *uint8      `json:"priority,omitempty"`
	ExtraParams      interface{} `json:"extra_params,omitempty"`
}

// ExtraParams contains the extra params from the voice job
type ExtraParams struct {
	BotID      string `json:"botId"`
	CampaignID string `json:"campaignId"`
}

func (ecr *EnqueueCallRequest) ExtractFromHTTP(c echo.Context) error {
	request := c.Request()
	err := json.NewDecoder(request.Body).Decode(ecr)
	if err != nil {
		return err
	}
	return nil
}

func (eP *ExtraParams) ExtractExtraParams(extraParams interface{}) error {
	strExtraParams, err := json.Marshal(extraParams)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(strExtraParams), &eP); err != nil {
		return err
	}
	return nil
}

func (ecr *EnqueueCallRequest) Validate() error {
	if ecr.To == nil || len(*ecr.To) <= 0 {
		return errors.New("to parameter is missing or empty")
	}
	hasURL := ecr.URL != nil && len(*ecr.URL) > 0
	hasTwiML := ecr.TwiML != nil && len(*ecr.TwiML) > 0
	if !hasURL && !hasTwiML {
		return errors.New("one of url or twiml parameter is required")
	}
	if hasURL && hasTwiML {
		return errors.New("url and twiml parameters are mutually exclusive")
	}
	return nil
}

package contracts

import (
	"encoding/json"
	"errors"

	"github.com/labstack/echo"
)

type CreateCallRequest struct {
	From             *string     `json:"from"`
	To               *string     `json:"to"`
	URL              *string     `json:"url,omitempty"`
	TwiML            *string     `json:"twiml,omitempty"`
	CallbackURL      *string     `json:"callback_url,omitempty"`
	RecordingEnabled *bool       `json:"recording_enabled,omitempty"`
	MachineDetection *bool       `json:"machine_detection,omitempty"`
	Timeout          *int        `json:"timeout,omitempty"`
	ExtraParams      interface{} `json:"extra_params,omitempty"`
}

func (ccr *CreateCallRequest) ExtractFromHTTP(c echo.Context) error {
	request := c.Request()
	err := json.NewDecoder(request.Body).Decode(ccr)
	if err != nil {
		return err
	}
	return nil
}

func (ccr *CreateCallRequest) Validate() error {
	if ccr.To == nil || len(*ccr.To) <= 0 {
		return errors.New("to parameter is missing or empty")
	}
	hasURL := ccr.URL != nil && len(*ccr.URL) > 0
	hasTwiML := ccr.TwiML != nil && len(*ccr.TwiML) > 0
	if !hasURL && !hasTwiML {
		return errors.New("one of url or twiml parameter is required")
	}
	if hasURL && hasTwiML {
		return errors.New("url and twiml parameters are mutually exclusive")
	}
	return nil
}

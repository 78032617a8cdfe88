package contracts

import (
	"encoding/json"
	"errors"

	"github.com/labstack/echo"
)

type UpdateCallRequest struct {
	CallSID *string `json:"sid"`
	URL     *string `json:"url,omitempty"`
	TwiML   *string `json:"twiml,omitempty"`
	Status  *string `json:"status,omitempty"`
}

func (ucr *UpdateCallRequest) ExtractFromHTTP(c echo.Context) error {
	request := c.Request()
	err := json.NewDecoder(request.Body).Decode(ucr)
	if err != nil {
		return err
	}
	return nil
}

func (ucr *UpdateCallRequest) Validate() error {
	if ucr.CallSID == nil || len(*ucr.CallSID) <= 0 {
		return errors.New("sid parameter is missing or empty")
	}
	hasURL := ucr.URL != nil && len(*ucr.URL) > 0
	hasTwiML := ucr.TwiML != nil && len(*ucr.TwiML) > 0
	hasStatus := ucr.Status != nil && len(*ucr.Status) > 0
	if !hasURL && !hasTwiML && !hasStatus {
		return errors.New("one of url, twiml or status parameter is required")
	}
	if hasURL && hasTwiML {
		return errors.New("url and twiml parameters are mutually exclusive")
	}
	if hasStatus && *ucr.Status != "canceled" && *ucr.Status != "completed" {
		return errors.New("status parameter should be canceled or completed")
	}
	return nil
}

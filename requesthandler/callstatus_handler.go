package requesthandler

import (
	"context"
	"net/http"

	"bitbucket.org/yellowmessenger/twilio-voice/connections"
	"bitbucket.org/yellowmessenger/twilio-voice/core/callevent"
	"bitbucket.org/yellowmessenger/twilio-voice/twilio"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
	"github.com/labstack/echo"
)

type CallStatusHandler struct{}

func (handler CallStatusHandler) Any(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodPost:
		return handler.Post(c)
	}
	return RawResponse(c, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// Post receives the provider status callbacks. The request signature
// is verified against the account auth token before anything is
// processed.
func (CallStatusHandler) Post(c echo.Context) error {
	request := c.Request()
	client, err := connections.GetTwilioClient()
	if err != nil {
		ymlogger.LogErrorf("CallStatus", "Voice API client is not available. Error: [%#v]", err)
		return RawResponse(c, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
	if err := request.ParseForm(); err != nil {
		ymlogger.LogErrorf("CallStatus", "Failed to parse the callback form. Error: [%#v]", err)
		return RawResponse(c, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	}
	if err := client.ValidateRequest(request, request.PostForm); err != nil {
		ymlogger.LogErrorf("CallStatus", "Callback signature validation failed. Error: [%#v]", err)
		return RawResponse(c, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	}

	params := twilio.ParseRequestParams(request.PostForm)
	if len(params.CallSid) <= 0 {
		ymlogger.LogError("CallStatus", "Callback is missing the call SID")
		return RawResponse(c, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	}
	callevent.Process(context.Background(), params)
	return c.NoContent(http.StatusNoContent)
}

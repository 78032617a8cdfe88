package requesthandler

import (
	"context"
	"errors"
	"net/http"

	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/core/fetchcall"
	"github.com/labstack/echo"
)

type FetchCallHandler struct{}

func (handler FetchCallHandler) Any(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodGet:
		return handler.Get(c)
	}
	return RawResponse(c, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (FetchCallHandler) Get(c echo.Context) error {
	var response *contracts.GetCallResponse
	ctx := context.Background()
	var ba contracts.BasicAuthCreds
	err := ba.ExtractFromHTTP(c)
	if err != nil {
		response = new(contracts.GetCallResponse)
		responseData := new(contracts.SingleGetCallResponse)
		responseData.SingleResponse.SetErrorData(err)
		response.ResponseData = *responseData
		return Response(c, response, http.StatusUnauthorized)
	}
	err = ba.Authenticate()
	if err != nil {
		response = new(contracts.GetCallResponse)
		responseData := new(contracts.SingleGetCallResponse)
		responseData.SingleResponse.SetErrorData(err)
		response.ResponseData = *responseData
		return Response(c, response, http.StatusUnauthorized)
	}

	callSID := c.QueryParam("sid")
	if len(callSID) <= 0 {
		response = new(contracts.GetCallResponse)
		responseData := new(contracts.SingleGetCallResponse)
		responseData.SingleResponse.SetErrorData(errors.New("sid parameter is missing or empty"))
		response.ResponseData = *responseData
		return Response(c, response, http.StatusBadRequest)
	}

	response, err = fetchcall.Get(ctx, callSID)
	if err != nil {
		response = new(contracts.GetCallResponse)
		responseData := new(contracts.SingleGetCallResponse)
		responseData.SingleResponse.SetErrorData(err)
		response.ResponseData = *responseData
		return Response(c, response, http.StatusInternalServerError)
	}
	return Response(c, response, http.StatusOK)
}

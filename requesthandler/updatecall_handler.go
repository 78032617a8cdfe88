package requesthandler

import (
	"context"
	"net/http"

	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/core/updatecall"
	"github.com/labstack/echo"
)

type UpdateCallHandler struct{}

func (handler UpdateCallHandler) Any(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodPost:
		return handler.Update(c)
	}
	return RawResponse(c, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (UpdateCallHandler) Update(c echo.Context) error {
	var response *contracts.UpdateCallResponse
	ctx := context.Background()
	var ba contracts.BasicAuthCreds
	err := ba.ExtractFromHTTP(c)
	if err != nil {
		response = new(contracts.UpdateCallResponse)
		responseData := new(contracts.SingleUpdateCallResponse)
		responseData.SingleResponse.SetErrorData(err)
		response.ResponseData = *responseData
		return Response(c, response, http.StatusUnauthorized)
	}
	err = ba.Authenticate()
	if err != nil {
		response = new(contracts.UpdateCallResponse)
		responseData := new(contracts.SingleUpdateCallResponse)
		responseData.SingleResponse.SetErrorData(err)
		response.ResponseData = *responseData
		return Response(c, response, http.StatusUnauthorized)
	}

	ucReq := new(contracts.UpdateCallRequest)
	err = ucReq.ExtractFromHTTP(c)
	if err != nil {
		response = new(contracts.UpdateCallResponse)
		responseData := new(contracts.SingleUpdateCallResponse)
		responseData.SingleResponse.SetErrorData(err)
		response.ResponseData = *responseData
		return Response(c, response, http.StatusBadRequest)
	}
	err = ucReq.Validate()
	if err != nil {
		response = new(contracts.UpdateCallResponse)
		responseData := new(contracts.SingleUpdateCallResponse)
		responseData.SingleResponse.SetErrorData(err)
		response.ResponseData = *responseData
		return Response(c, response, http.StatusBadRequest)
	}

	response, err = updatecall.Update(ctx, *ucReq)
	if err != nil {
		response = new(contracts.UpdateCallResponse)
		responseData := new(contracts.SingleUpdateCallResponse)
		responseData.SingleResponse.SetErrorData(err)
		response.ResponseData = *responseData
		return Response(c, response, http.StatusInternalServerError)
	}
	return Response(c, response, http.StatusOK)
}

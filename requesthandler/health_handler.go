package requesthandler

import (
	"context"
	"net/http"

	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"bitbucket.org/yellowmessenger/twilio-voice/core/health"
	"github.com/labstack/echo"
)

type HealthHandler struct{}

func (handler HealthHandler) Any(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodGet:
		return handler.Get(c)
	}
	return RawResponse(c, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (HealthHandler) Get(c echo.Context) error {
	var response *contracts.GetHealthResponse
	response, err := health.Get(context.Background())
	if err != nil {
		response = new(contracts.GetHealthResponse)
		responseData := new(contracts.SingleGetHealthResponse)
		responseData.SingleResponse.SetErrorData(err)
		response.ResponseData = *responseData
		return Response(c, response, http.StatusInternalServerError)
	}
	return Response(c, response, http.StatusOK)
}

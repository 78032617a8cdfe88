package requesthandler

import (
	"bitbucket.org/yellowmessenger/twilio-voice/contracts"
	"github.com/labstack/echo"
)

func Response(c echo.Context, response contracts.Response, httpCode int) error {
	response.SetHTTPCode(httpCode)
	response.SetHTTPText(httpCode)
	response.SetMethod(c.Request().Method)
	return RawResponse(c, response, httpCode)
}

func RawResponse(c echo.Context, response interface{}, httpCode int) error {
	return c.JSON(httpCode, response)
}

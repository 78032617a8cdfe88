package main

import (
	"bitbucket.org/yellowmessenger/twilio-voice/requesthandler"

	"github.com/labstack/echo"
)

// AddRoutes defines the routes and the handlers
func AddRoutes(e *echo.Echo) {
	e.Any("/createcall", requesthandler.CreateCallHandler{}.Any)
	e.Any("/enqueuecall", requesthandler.EnqueueCallHandler{}.Any)
	e.Any("/updatecall", requesthandler.UpdateCallHandler{}.Any)
	e.Any("/call", requesthandler.FetchCallHandler{}.Any)
	e.Any("/twilio/status", requesthandler.CallStatusHandler{}.Any)
	e.Any("/health", requesthandler.HealthHandler{}.Any)
}

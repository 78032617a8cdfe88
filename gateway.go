package main

import (
	"context"
	"fmt"
	"log"
	_ "net/http/pprof"
	"os"

	"bitbucket.org/yellowmessenger/twilio-voice/accounthealth"
	"bitbucket.org/yellowmessenger/twilio-voice/callback"
	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/connections"
	"bitbucket.org/yellowmessenger/twilio-voice/enqueuecallworker"
	"bitbucket.org/yellowmessenger/twilio-voice/globals"
	"bitbucket.org/yellowmessenger/twilio-voice/metrics"
	"bitbucket.org/yellowmessenger/twilio-voice/models/mysql"
	"bitbucket.org/yellowmessenger/twilio-voice/newrelic"
	"bitbucket.org/yellowmessenger/twilio-voice/queuemanager"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v3"
	echopprof "github.com/sevenNt/echo-pprof"
)

var (
	host = "0.0.0.0"
	port = "9991"
)

func main() {
	// Initialize new relic app
	if err := newrelic.InitNewRelicApp(); err != nil {
		log.Fatalf("Error while initializing new relic app. Error: [%#v]", err)
		panic(1)
	}
	e := echo.New()
	// Set the middlewares
	// Register new relic middleware
	e.Use(nrecho.Middleware(newrelic.App))
	e.Use(middleware.Secure())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1024KB"))
	e.Use(middleware.RemoveTrailingSlash())
	// Set the logging
	loggerConfig := middleware.DefaultLoggerConfig
	e.Debug = true
	e.Use(middleware.LoggerWithConfig(loggerConfig))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Initilize the config
	if err := configmanager.InitConfig("config.json"); err != nil {
		log.Fatalf("Error while initializing the config. Error: [%#v]", err)
		panic(1)
	}

	// Initiliaze YM logger
	if err := ymlogger.InitYMLogger(configmanager.ConfStore.LoggerConf); err != nil {
		log.Fatalf("Failed to initialize the logger. Err: [%#v]", err)
	}

	// Generate Google Token periodically
	go configmanager.RenewGoogleToken(ctx)

	// Initialize MySQL Connection
	if err := mysql.Init(); err != nil {
		log.Fatalf("Failed to initialize MySQL Connection. Error: [%#v]", err)
	}
	// Initialize Metrics client
	if err := metrics.InitClient(configmanager.ConfStore.MetricsConf); err != nil {
		log.Fatalf("Failed to initialize metrics client")
	}

	// Connect to the voice provider
	if _, err := connections.ConnectTwilio(); err != nil {
		log.Fatalf("Failed to initialize the voice API client. Error: [%#v]", err)
	}

	// Start the account health prober
	go accounthealth.InitAccountHealth(ctx)

	// Initialize RabbitMQ Connection
	ymlogger.LogInfo("InitRabbitMQConn", "Initializing RabbitMQ Connection")
	if err := queuemanager.InitRabbitMQConn(configmanager.ConfStore.QueueConnParams); err != nil {
		log.Fatalf("Failed to initialize Rabbit MQ Connection. Error: [%#v]", err)
	}

	// Start Queueworker
	ymlogger.LogInfo("InitRabbitMQueueListneter", "Initializing RabbitMQ Queue Listener")
	if err := queuemanager.InitQueueListener(
		configmanager.ConfStore.QueueListenerParams,
		&enqueuecallworker.EnqueueCallWorker{},
		configmanager.ConfStore.CampaignDelayPerCallMS,
		configmanager.ConfStore.CampaignMinHour,
		configmanager.ConfStore.CampaignMaxHour,
		&configmanager.ConfStore.CallerRateLimitParams); err != nil {
		log.Fatalf("Failed to initialize queue listener. Error: [%#v]", err)
	}

	// Initialize Callback HTTP Client
	callback.InitCallbackClient()

	// Intialize Call counter
	globals.InitCounter()

	// Start callbacks
	go callback.StartWorker(ctx)

	// AddingRoutes
	AddRoutes(e)

	// Add pprof
	echopprof.Wrap(e)

	ymlogger.LogInfof("HTTPHandler", "Listening for requests on port %s", port)
	if err := e.Start(fmt.Sprintf("%s:%s", host, port)); err != nil {
		ymlogger.LogCritical("HTTPHandler", "Failed to start server!", err)
		os.Exit(1)
	}
}

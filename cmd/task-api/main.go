// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

// Package main is the task service API that provides a RESTful API for managing
// recurring accounting tasks and clients, and handles NATS messages for the
// task service.
package main

import (
	"context"
	_ "expvar"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/StianAK82/RegnskapSky-sub001/internal/handlers"
	"github.com/StianAK82/RegnskapSky-sub001/internal/infrastructure/messaging"
	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
	"github.com/StianAK82/RegnskapSky-sub001/internal/service"
)

func main() {
	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructureLogConfig()

	// Set up JWT validator needed by the [TasksAPI.JWTAuth] security handler.
	jwtAuth, err := setupJWTAuth()
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up JWT authentication")
		os.Exit(1)
	}

	// Initialize email service (independent of NATS)
	emailService, err := setupEmailService(env)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up email service")
		return
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	shutdownTelemetry := setupTelemetry(ctx)
	defer shutdownTelemetry(context.Background())

	// Setup NATS connection
	natsConn, err := setupNATS(ctx, env, &gracefulCloseWG, done)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up NATS")
		return
	}

	// Get the key-value stores for the service.
	repos, err := getKeyValueStores(ctx, natsConn)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error getting key-value stores")
		return
	}

	// Initialize services
	serviceConfig := service.ServiceConfig{
		SkipEtagValidation: env.SkipEtagValidation,
	}
	messageBuilder := messaging.NewMessageBuilder(natsConn)
	authService := service.NewAuthService(jwtAuth)
	occurrenceService := service.NewOccurrenceService()
	taskService := service.NewTaskService(
		repos.Task,
		repos.Client,
		messageBuilder,
		occurrenceService,
		serviceConfig,
	)
	clientService := service.NewClientService(
		repos.Client,
		messageBuilder,
		serviceConfig,
	)
	reminderService := service.NewReminderService(
		repos.Task,
		repos.Client,
		emailService,
		env.Reminder,
	)
	if err := reminderService.Start(ctx); err != nil {
		slog.With(logging.ErrKey, err).Error("error starting reminder service")
		return
	}

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService, repos.Task)

	svc := NewTasksAPI(
		authService,
		taskService,
		clientService,
		taskHandler,
	)

	httpServer := setupHTTPServer(flags, svc, &gracefulCloseWG)

	// Create NATS subscriptions for the service.
	err = createNatsSubcriptions(ctx, svc, natsConn)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error creating NATS subscriptions")
		return
	}

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	gracefulShutdown(httpServer, natsConn, reminderService, &gracefulCloseWG, cancel)
}

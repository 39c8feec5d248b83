// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/StianAK82/RegnskapSky-sub001/internal/infrastructure/email"
	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
	"github.com/StianAK82/RegnskapSky-sub001/internal/service"
	"github.com/nats-io/nats.go"
)

// flags are the command line flags for the task service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the task service.
type environment struct {
	Port               string
	NatsURL            string
	SkipEtagValidation bool
	SMTP               smtpConfig
	Reminder           service.ReminderConfig
}

// smtpConfig holds the SMTP configuration for reminder emails.
type smtpConfig struct {
	Enabled  bool
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

// parseFlags parses command line flags for the task service
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructureLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the task service
func parseEnv() environment {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}

	skipEtagValidation := os.Getenv("SKIP_ETAG_VALIDATION") == "true"

	return environment{
		Port:               port,
		NatsURL:            natsURL,
		SkipEtagValidation: skipEtagValidation,
		SMTP:               parseSMTPConfig(),
		Reminder:           parseReminderConfig(),
	}
}

// parseSMTPConfig parses the SMTP configuration from environment variables
func parseSMTPConfig() smtpConfig {
	enabled := os.Getenv("SMTP_ENABLED") == "true"
	if !enabled {
		return smtpConfig{}
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		slog.Error("SMTP_HOST environment variable is required when SMTP_ENABLED is true")
		os.Exit(1)
	}

	port := 587
	if portRaw := os.Getenv("SMTP_PORT"); portRaw != "" {
		parsed, err := strconv.Atoi(portRaw)
		if err != nil {
			slog.With(logging.ErrKey, err, "port", portRaw).Error("invalid SMTP_PORT provided")
			os.Exit(1)
		}
		port = parsed
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = email.OrganizerEmail
	}

	return smtpConfig{
		Enabled:  true,
		Host:     host,
		Port:     port,
		From:     from,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}
}

// parseReminderConfig parses the reminder sweep configuration from environment variables
func parseReminderConfig() service.ReminderConfig {
	config := service.ReminderConfig{
		Schedule: os.Getenv("REMINDER_SCHEDULE"),
	}

	if daysRaw := os.Getenv("REMINDER_LOOKAHEAD_DAYS"); daysRaw != "" {
		days, err := strconv.Atoi(daysRaw)
		if err != nil || days <= 0 {
			slog.With(logging.ErrKey, err, "days", daysRaw).Error("invalid REMINDER_LOOKAHEAD_DAYS provided, using default")
		} else {
			config.LookaheadDays = days
		}
	}

	return config
}

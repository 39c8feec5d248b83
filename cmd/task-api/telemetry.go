// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
)

// setupTelemetry configures OTLP trace exporting when an OTLP endpoint is
// set in the environment. It returns a shutdown function for the trace
// provider, which is a no-op when tracing is disabled.
func setupTelemetry(ctx context.Context) func(context.Context) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return func(context.Context) {}
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("failed to create OTLP trace exporter")
		os.Exit(1)
	}

	res := sdkresource.NewSchemaless(
		attribute.String("service.name", "task-api"),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
		jaeger.Jaeger{},
	))

	slog.Debug("OTLP trace exporting enabled")

	return func(shutdownCtx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(shutdownCtx, 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			slog.With(logging.ErrKey, err).Warn("error shutting down trace provider")
		}
	}
}

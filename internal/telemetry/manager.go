// Package telemetry provides optional OpenTelemetry tracing for sl_tools.
// Tracing is opt-in via the [telemetry] section of the credential file and
// degrades gracefully: a collector that cannot be reached never fails a
// command.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc/credentials/insecure"
)

// Config holds the tracing settings taken from the credential file.
type Config struct {
	// Enabled indicates whether tracing is active.
	Enabled bool

	// Endpoint is the OTLP gRPC collector endpoint (e.g. "localhost:4317").
	Endpoint string

	// Insecure controls whether to connect without TLS.
	Insecure bool

	// SamplingRate is the fraction of traces to sample (0.0 to 1.0).
	SamplingRate float64

	// ServiceName and ServiceVersion become resource attributes.
	ServiceName    string
	ServiceVersion string

	// APIEndpoint is the SoftLayer endpoint the command talks to, recorded
	// as the peer service resource attribute.
	APIEndpoint string
}

// Manager owns the TracerProvider lifecycle for one command invocation.
type Manager struct {
	enabled        bool
	tracerProvider *sdktrace.TracerProvider
	config         Config
}

// NewManager creates a telemetry manager. Nothing is initialized until
// Initialize is called.
func NewManager(cfg Config) *Manager {
	return &Manager{
		enabled: cfg.Enabled,
		config:  cfg,
	}
}

// Initialize sets up the OTLP exporter and TracerProvider and registers the
// global tracer provider. On failure it logs a warning, disables tracing and
// returns nil so the command proceeds untraced.
func (m *Manager) Initialize(ctx context.Context) error {
	if !m.config.Enabled {
		logrus.Debug("OpenTelemetry is disabled in configuration")
		return nil
	}

	exporter, err := m.createExporter(ctx)
	if err != nil {
		logrus.Warnf("Failed to initialize OpenTelemetry: %v. Continuing without tracing.", err)
		m.enabled = false
		return nil
	}

	res, err := m.createResource()
	if err != nil {
		logrus.Warnf("Failed to create OpenTelemetry resource: %v. Continuing without tracing.", err)
		m.enabled = false
		return nil
	}

	m.tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(m.createSampler()),
	)
	otel.SetTracerProvider(m.tracerProvider)

	logrus.Debugf("OpenTelemetry initialized (endpoint: %s, sampling: %.2f)",
		m.config.Endpoint, m.config.SamplingRate)
	return nil
}

func (m *Manager) createExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(m.config.Endpoint),
	}
	if m.config.Insecure {
		opts = append(opts, otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()))
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}
	return exporter, nil
}

func (m *Manager) createResource() (*resource.Resource, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	attrs := []resource.Option{
		resource.WithAttributes(
			semconv.ServiceNameKey.String(m.config.ServiceName),
			semconv.ServiceVersionKey.String(m.config.ServiceVersion),
			semconv.HostNameKey.String(hostname),
		),
	}
	if m.config.APIEndpoint != "" {
		attrs = append(attrs, resource.WithAttributes(
			semconv.PeerServiceKey.String(m.config.APIEndpoint),
		))
	}

	return resource.New(context.Background(), attrs...)
}

func (m *Manager) createSampler() sdktrace.Sampler {
	if m.config.SamplingRate >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.TraceIDRatioBased(m.config.SamplingRate)
}

// Shutdown flushes pending spans. Commands are short-lived, so this must run
// before process exit or the batch processor drops everything.
func (m *Manager) Shutdown(ctx context.Context) error {
	if !m.enabled || m.tracerProvider == nil {
		return nil
	}
	if err := m.tracerProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown TracerProvider: %w", err)
	}
	return nil
}

// IsEnabled reports whether tracing is enabled and operational.
func (m *Manager) IsEnabled() bool {
	return m.enabled
}

// TracerProvider returns the configured TracerProvider for injection into
// the API client, or nil when tracing is disabled.
func (m *Manager) TracerProvider() trace.TracerProvider {
	if m.tracerProvider == nil {
		return nil
	}
	return m.tracerProvider
}

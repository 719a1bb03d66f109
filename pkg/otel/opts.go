package otel

type Option func(*Telemetry)

// WithLogLevel sets the minimum level of the stdout and OTLP log handlers.
func WithLogLevel(logLevel string) Option {
	return func(t *Telemetry) {
		t.logLevel = parseLogLevel(logLevel)
	}
}

// WithLogFormat selects the stdout handler, "json" or "text" (default).
func WithLogFormat(logFormat string) Option {
	return func(t *Telemetry) {
		t.logFormat = logFormat
	}
}

func WithSampleRate(rate float64) Option {
	return func(t *Telemetry) {
		t.sampleRate = rate
	}
}

func WithServiceVersion(serviceVersion string) Option {
	return func(t *Telemetry) {
		t.serviceVersion = serviceVersion
	}
}

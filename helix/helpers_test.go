package helix

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-twitch/core"
	"github.com/goliatone/go-twitch/devkit"
)

type staticToken struct {
	tokenType string
	access    string
}

func (t staticToken) TokenType() string   { return t.tokenType }
func (t staticToken) AccessToken() string { return t.access }

func newTestClient(t *testing.T, scripts ...devkit.TransportScript) (*Client, *devkit.FakeTransport) {
	t.Helper()
	fake := devkit.NewFakeTransport(scripts...)
	client, err := NewClient(core.Config{
		ClientID:     "abc123",
		ClientSecret: "shh",
		Scope:        []string{"user:read:email"},
	}, WithTransport(fake))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, fake
}

func lastRequest(t *testing.T, fake *devkit.FakeTransport) core.TransportRequest {
	t.Helper()
	req, ok := fake.Last()
	if !ok {
		t.Fatalf("expected a request to be sent")
	}
	return req
}

func headerValue(headers map[string]string, name string) (string, bool) {
	for key, value := range headers {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}
	return "", false
}

type capturedLog struct {
	level string
	msg   string
	args  []any
}

type captureLogger struct {
	mu      sync.Mutex
	records []capturedLog
}

func (l *captureLogger) Trace(msg string, args ...any) { l.record("trace", msg, args...) }
func (l *captureLogger) Debug(msg string, args ...any) { l.record("debug", msg, args...) }
func (l *captureLogger) Info(msg string, args ...any)  { l.record("info", msg, args...) }
func (l *captureLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args...) }
func (l *captureLogger) Error(msg string, args ...any) { l.record("error", msg, args...) }
func (l *captureLogger) Fatal(msg string, args ...any) { l.record("fatal", msg, args...) }

func (l *captureLogger) WithContext(context.Context) core.Logger {
	return l
}

func (l *captureLogger) record(level string, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, capturedLog{level: level, msg: msg, args: append([]any(nil), args...)})
}

func (l *captureLogger) byLevel(level string) []capturedLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := []capturedLog{}
	for _, record := range l.records {
		if record.level == level {
			out = append(out, record)
		}
	}
	return out
}

type capturedCounter struct {
	name string
	tags map[string]string
}

type captureMetricsRecorder struct {
	mu         sync.Mutex
	counters   []capturedCounter
	histograms []string
}

func (m *captureMetricsRecorder) IncCounter(_ context.Context, name string, _ int64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = append(m.counters, capturedCounter{name: name, tags: core.CloneTags(tags)})
}

func (m *captureMetricsRecorder) ObserveHistogram(_ context.Context, name string, _ float64, _ map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.histograms = append(m.histograms, name)
}

var (
	_ core.Logger          = (*captureLogger)(nil)
	_ core.MetricsRecorder = (*captureMetricsRecorder)(nil)
)

type stubLoggerProvider struct {
	logger core.Logger
}

func (p stubLoggerProvider) GetLogger(string) core.Logger {
	return p.logger
}

func newObservedClient(t *testing.T, scripts ...devkit.TransportScript) (*Client, *devkit.FakeTransport, *captureLogger, *captureMetricsRecorder) {
	t.Helper()
	fake := devkit.NewFakeTransport(scripts...)
	logger := &captureLogger{}
	metrics := &captureMetricsRecorder{}
	client, err := NewClient(core.Config{ClientID: "abc123"},
		WithTransport(fake),
		WithLoggerProvider(stubLoggerProvider{logger: logger}),
		WithLogger(logger),
		WithMetricsRecorder(metrics),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, fake, logger, metrics
}

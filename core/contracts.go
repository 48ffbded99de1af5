package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

const (
	BaseURL      = "https://api.twitch.tv/helix"
	TokenURL     = "https://id.twitch.tv/oauth2/token"
	AuthorizeURL = "https://id.twitch.tv/oauth2/authorize"
)

// Token is the credential attached to Bearer requests. Implementations are
// owned by the caller.
type Token interface {
	TokenType() string
	AccessToken() string
}

type AuthMode string

const (
	AuthBearer   AuthMode = "bearer"
	AuthClientID AuthMode = "client_id"
)

func (m AuthMode) Valid() bool {
	switch m {
	case AuthBearer, AuthClientID:
		return true
	default:
		return false
	}
}

type TransportRequest struct {
	Method               string
	URL                  string
	Headers              map[string]string
	Body                 []byte
	Metadata             map[string]any
	Timeout              time.Duration
	MaxResponseBodyBytes int64
	// InsecureSkipVerify disables TLS certificate verification for this request.
	InsecureSkipVerify bool
}

type TransportResponse struct {
	StatusCode int
	Reason     string
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

package helix

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-twitch/core"
)

func (c *Client) observeRequest(
	ctx context.Context,
	startedAt time.Time,
	method string,
	path string,
	mode core.AuthMode,
	response core.TransportResponse,
	result core.Result,
) {
	outcome := "success"
	if !result.OK() {
		outcome = "failure"
	}
	tags := map[string]string{
		"method":    method,
		"auth_mode": string(mode),
		"outcome":   outcome,
	}
	elapsed := time.Since(startedAt).Milliseconds()
	c.metrics.IncCounter(ctx, "helix.request.total", 1, core.CloneTags(tags))
	c.metrics.ObserveHistogram(ctx, "helix.request.duration_ms", float64(elapsed), core.CloneTags(tags))

	fields := map[string]any{
		"method":      method,
		"path":        path,
		"auth_mode":   string(mode),
		"status":      result.StatusCode(),
		"duration_ms": elapsed,
	}
	if failure := result.Failure(); failure != nil {
		fields["error"] = failure.Reason
		fields["message"] = failure.Message
		c.logError(ctx, "helix request failed", fields)
		return
	}
	if body := bytes.TrimSpace(response.Body); len(body) > 0 && !json.Valid(body) {
		c.logWarn(ctx, "helix response body is not json", fields)
	}
}

func (c *Client) logDebug(ctx context.Context, message string, fields map[string]any) {
	c.logWithLevel(ctx, "debug", message, fields)
}

func (c *Client) logWarn(ctx context.Context, message string, fields map[string]any) {
	c.logWithLevel(ctx, "warn", message, fields)
}

func (c *Client) logError(ctx context.Context, message string, fields map[string]any) {
	c.logWithLevel(ctx, "error", message, fields)
}

func (c *Client) logWithLevel(ctx context.Context, level string, message string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logger := c.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	if fieldsLogger, ok := logger.(core.FieldsLogger); ok {
		logger = fieldsLogger.WithFields(cloneFields(fields))
	}
	args := flattenFields(fields)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		logger.Error(message, args...)
	case "warn":
		logger.Warn(message, args...)
	default:
		logger.Debug(message, args...)
	}
}

func cloneFields(fields map[string]any) map[string]any {
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}

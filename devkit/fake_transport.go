// Package devkit provides test doubles for code built on the helix client.
package devkit

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-twitch/core"
)

type TransportScript struct {
	Response core.TransportResponse
	Err      error
}

// FakeTransport replays scripts in order and records every request. Once the
// scripts run out the last one repeats; with no scripts it answers 200 "{}".
type FakeTransport struct {
	mu       sync.Mutex
	scripts  []TransportScript
	requests []core.TransportRequest
}

func NewFakeTransport(scripts ...TransportScript) *FakeTransport {
	return &FakeTransport{
		scripts: append([]TransportScript(nil), scripts...),
	}
}

// JSON scripts a response with the given status and body.
func JSON(status int, body string) TransportScript {
	return TransportScript{Response: core.TransportResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(body),
	}}
}

// Failure scripts a transport error with no response.
func Failure(err error) TransportScript {
	return TransportScript{Err: err}
}

func (*FakeTransport) Kind() string {
	return "fake"
}

func (a *FakeTransport) Do(_ context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if a == nil {
		return core.TransportResponse{}, fmt.Errorf("devkit: fake transport is nil")
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.requests = append(a.requests, cloneTransportRequest(req))
	index := len(a.requests) - 1
	if index < len(a.scripts) {
		script := a.scripts[index]
		return cloneTransportResponse(script.Response), script.Err
	}
	if len(a.scripts) > 0 {
		last := a.scripts[len(a.scripts)-1]
		return cloneTransportResponse(last.Response), last.Err
	}
	return core.TransportResponse{
		StatusCode: 200,
		Headers:    map[string]string{},
		Body:       []byte("{}"),
		Metadata:   map[string]any{"kind": "fake"},
	}, nil
}

func (a *FakeTransport) Requests() []core.TransportRequest {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]core.TransportRequest, 0, len(a.requests))
	for _, item := range a.requests {
		out = append(out, cloneTransportRequest(item))
	}
	return out
}

// Last returns the most recent request, or false when none was sent.
func (a *FakeTransport) Last() (core.TransportRequest, bool) {
	requests := a.Requests()
	if len(requests) == 0 {
		return core.TransportRequest{}, false
	}
	return requests[len(requests)-1], true
}

// Path returns the request url relative to core.BaseURL.
func Path(req core.TransportRequest) string {
	return strings.TrimPrefix(req.URL, core.BaseURL)
}

func cloneTransportRequest(in core.TransportRequest) core.TransportRequest {
	out := core.TransportRequest{
		Method:               in.Method,
		URL:                  in.URL,
		Headers:              map[string]string{},
		Body:                 append([]byte(nil), in.Body...),
		Metadata:             map[string]any{},
		Timeout:              in.Timeout,
		MaxResponseBodyBytes: in.MaxResponseBodyBytes,
		InsecureSkipVerify:   in.InsecureSkipVerify,
	}
	for key, value := range in.Headers {
		out.Headers[key] = value
	}
	for key, value := range in.Metadata {
		out.Metadata[key] = value
	}
	return out
}

func cloneTransportResponse(in core.TransportResponse) core.TransportResponse {
	out := core.TransportResponse{
		StatusCode: in.StatusCode,
		Reason:     in.Reason,
		Headers:    map[string]string{},
		Body:       append([]byte(nil), in.Body...),
		Metadata:   map[string]any{},
	}
	for key, value := range in.Headers {
		out.Headers[key] = value
	}
	for key, value := range in.Metadata {
		out.Metadata[key] = value
	}
	return out
}

var _ core.TransportAdapter = (*FakeTransport)(nil)

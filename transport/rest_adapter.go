package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-twitch/core"
)

const KindREST = "rest"

const defaultRESTClientTimeout = 30 * time.Second
const defaultRESTResponseBodyLimit int64 = 10 << 20 // 10 MiB

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RESTAdapter sends requests through Client, or through InsecureClient when a
// request asks for TLS verification to be skipped.
type RESTAdapter struct {
	Client               HTTPDoer
	InsecureClient       HTTPDoer
	DefaultHeaders       map[string]string
	MaxResponseBodyBytes int64
}

// NewRESTAdapter derives InsecureClient from client with InsecureClientFor.
func NewRESTAdapter(client HTTPDoer) *RESTAdapter {
	if client == nil {
		client = &http.Client{Timeout: defaultRESTClientTimeout}
	}
	return &RESTAdapter{
		Client:               client,
		InsecureClient:       InsecureClientFor(client),
		DefaultHeaders:       map[string]string{},
		MaxResponseBodyBytes: defaultRESTResponseBodyLimit,
	}
}

// NewInsecureHTTPClient returns a client that does not verify server
// certificates.
func NewInsecureHTTPClient(timeout time.Duration) *http.Client {
	return insecureCopy(&http.Client{Timeout: timeout})
}

// InsecureClientFor returns the doer used for requests that skip certificate
// verification. An *http.Client is copied with its timeout, redirect policy,
// cookie jar and transport settings kept, and verification turned off on a
// cloned *http.Transport. Any other doer is returned unchanged and owns its
// TLS policy, as does an *http.Client whose Transport is not an
// *http.Transport.
func InsecureClientFor(client HTTPDoer) HTTPDoer {
	httpClient, ok := client.(*http.Client)
	if !ok || httpClient == nil {
		return client
	}
	return insecureCopy(httpClient)
}

func insecureCopy(client *http.Client) *http.Client {
	copied := *client
	var base *http.Transport
	switch rt := client.Transport.(type) {
	case nil:
		if defaultTransport, ok := http.DefaultTransport.(*http.Transport); ok {
			base = defaultTransport.Clone()
		} else {
			base = &http.Transport{Proxy: http.ProxyFromEnvironment}
		}
	case *http.Transport:
		base = rt.Clone()
	default:
		return &copied
	}
	if base.TLSClientConfig == nil {
		base.TLSClientConfig = &tls.Config{}
	}
	base.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec // opt-in per request
	copied.Transport = base
	return &copied
}

func (*RESTAdapter) Kind() string {
	return KindREST
}

func (a *RESTAdapter) Do(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if a == nil || a.Client == nil {
		return core.TransportResponse{}, transportError(
			"transport: rest adapter requires an http client",
			goerrors.CategoryInternal,
			map[string]any{"adapter": KindREST},
		)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	method := strings.TrimSpace(strings.ToUpper(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	rawURL := strings.TrimSpace(req.URL)
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: invalid request url",
			map[string]any{"adapter": KindREST, "url": rawURL},
		)
	}
	if parsedURL.String() == "" {
		return core.TransportResponse{}, transportError(
			"transport: request url is required",
			goerrors.CategoryBadInput,
			map[string]any{"adapter": KindREST},
		)
	}

	requestCtx := ctx
	cancel := func() {}
	if req.Timeout > 0 {
		requestCtx, cancel = context.WithTimeout(ctx, req.Timeout)
	}
	defer cancel()

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(requestCtx, method, parsedURL.String(), body)
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: create http request",
			map[string]any{"adapter": KindREST, "method": method, "url": parsedURL.String()},
		)
	}
	for key, value := range a.DefaultHeaders {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	for key, value := range req.Headers {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	client := a.Client
	if req.InsecureSkipVerify {
		client = a.InsecureClient
		if client == nil {
			client = InsecureClientFor(a.Client)
		}
	}

	startedAt := time.Now().UTC()
	httpRes, err := client.Do(httpReq)
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: execute http request",
			map[string]any{"adapter": KindREST, "method": method, "url": parsedURL.String()},
		)
	}
	defer httpRes.Body.Close()

	maxBodyBytes := resolveResponseBodyLimit(req.MaxResponseBodyBytes, a.MaxResponseBodyBytes)
	payload, err := io.ReadAll(io.LimitReader(httpRes.Body, maxBodyBytes+1))
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: read response body",
			map[string]any{"adapter": KindREST, "status_code": httpRes.StatusCode},
		)
	}
	if int64(len(payload)) > maxBodyBytes {
		return core.TransportResponse{}, transportError(
			fmt.Sprintf("transport: response body exceeds limit of %d bytes", maxBodyBytes),
			goerrors.CategoryExternal,
			map[string]any{
				"adapter":          KindREST,
				"status_code":      httpRes.StatusCode,
				"response_limit_b": maxBodyBytes,
			},
		)
	}

	return core.TransportResponse{
		StatusCode: httpRes.StatusCode,
		Reason:     ReasonPhrase(httpRes.StatusCode, httpRes.Status),
		Headers:    flattenHeaders(httpRes.Header),
		Body:       payload,
		Metadata: map[string]any{
			"duration_ms": time.Since(startedAt).Milliseconds(),
			"kind":        KindREST,
		},
	}, nil
}

// ReasonPhrase extracts the phrase from a status line such as "404 Not Found",
// falling back to the standard text for code.
func ReasonPhrase(code int, status string) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(status), strconv.Itoa(code)))
	if phrase != "" {
		return phrase
	}
	return http.StatusText(code)
}

func flattenHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return map[string]string{}
	}
	flat := make(map[string]string, len(headers))
	for key, values := range headers {
		if len(values) == 0 {
			flat[key] = ""
			continue
		}
		flat[key] = strings.Join(values, ",")
	}
	return flat
}

func resolveResponseBodyLimit(requestLimit int64, adapterLimit int64) int64 {
	if requestLimit > 0 {
		return requestLimit
	}
	if adapterLimit > 0 {
		return adapterLimit
	}
	return defaultRESTResponseBodyLimit
}

var _ core.TransportAdapter = (*RESTAdapter)(nil)

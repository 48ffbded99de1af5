package helix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-twitch/core"
)

const (
	headerAuthorization = "Authorization"
	headerClientID      = "Client-ID"
	headerContentType   = "Content-Type"
	formContentType     = "application/x-www-form-urlencoded"
)

var errEmptyBody = errors.New("empty response body")

// RequestGet sends GET BaseURL+path, appending the encoded query when it is
// not empty.
func (c *Client) RequestGet(
	ctx context.Context,
	path string,
	query core.Form,
	headers map[string]string,
	mode core.AuthMode,
) (core.Result, error) {
	rawURL := core.BaseURL + path
	if encoded := query.Encode(); encoded != "" {
		rawURL += "?" + encoded
	}
	return c.send(ctx, http.MethodGet, path, rawURL, nil, headers, mode)
}

// RequestPost sends the form-encoded body to BaseURL+path.
func (c *Client) RequestPost(
	ctx context.Context,
	path string,
	body core.Form,
	headers map[string]string,
	mode core.AuthMode,
) (core.Result, error) {
	merged := map[string]string{headerContentType: formContentType}
	mergeHeaders(merged, headers)
	return c.send(ctx, http.MethodPost, path, core.BaseURL+path, []byte(body.Encode()), merged, mode)
}

func (c *Client) send(
	ctx context.Context,
	method string,
	path string,
	rawURL string,
	body []byte,
	headers map[string]string,
	mode core.AuthMode,
) (core.Result, error) {
	if c == nil {
		return core.Result{}, nilClient()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	auth, err := c.authHeaders(method, path, mode)
	if err != nil {
		c.logError(ctx, "helix request rejected", map[string]any{
			"method":    method,
			"path":      path,
			"auth_mode": string(mode),
			"error":     err.Error(),
		})
		return core.Result{}, err
	}
	merged := map[string]string{}
	mergeHeaders(merged, headers)
	mergeHeaders(merged, auth)

	c.logDebug(ctx, "helix request", map[string]any{
		"method":    method,
		"path":      path,
		"auth_mode": string(mode),
	})

	startedAt := time.Now()
	response, err := c.transport.Do(ctx, core.TransportRequest{
		Method:             method,
		URL:                rawURL,
		Headers:            merged,
		Body:               body,
		InsecureSkipVerify: method == http.MethodPost && !c.cfg.PostTLSVerify,
		Metadata: map[string]any{
			"path":      path,
			"auth_mode": string(mode),
		},
	})
	result := interpretResponse(response, err)
	c.observeRequest(ctx, startedAt, method, path, mode, response, result)
	return result, nil
}

func (c *Client) authHeaders(method string, path string, mode core.AuthMode) (map[string]string, error) {
	switch mode {
	case core.AuthBearer:
		if c.token == nil || strings.TrimSpace(c.token.AccessToken()) == "" {
			return nil, noToken(method, path)
		}
		return map[string]string{headerAuthorization: AuthorizationValue(c.token)}, nil
	case core.AuthClientID:
		return map[string]string{headerClientID: c.cfg.ClientID}, nil
	default:
		return nil, unknownAuthMode(mode)
	}
}

// AuthorizationValue renders "<Type> <access token>" with the first letter of
// the token type upper-cased and the rest unchanged. An empty token type is
// sent as "Bearer".
func AuthorizationValue(token core.Token) string {
	if token == nil {
		return ""
	}
	tokenType := token.TokenType()
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return upperFirst(tokenType) + " " + token.AccessToken()
}

func upperFirst(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return value
	}
	return string(unicode.ToUpper(r)) + value[size:]
}

// mergeHeaders copies src into dst, replacing keys that differ only by case.
func mergeHeaders(dst map[string]string, src map[string]string) {
	for key, value := range src {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		for existing := range dst {
			if existing != key && strings.EqualFold(existing, key) {
				delete(dst, existing)
			}
		}
		dst[key] = value
	}
}

func interpretResponse(response core.TransportResponse, err error) core.Result {
	if err != nil {
		return core.Fail(http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError, err.Error())
	}

	data, decodeErr := decodeJSON(response.Body)
	if decodeErr == nil {
		return core.Success(data, response.Body, response.StatusCode)
	}
	if response.StatusCode >= http.StatusBadRequest {
		reason := strings.TrimSpace(response.Reason)
		if reason == "" {
			reason = http.StatusText(response.StatusCode)
		}
		return core.Fail(reason, response.StatusCode, decodeErr.Error())
	}
	return core.Success(nil, response.Body, response.StatusCode)
}

func decodeJSON(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errEmptyBody
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

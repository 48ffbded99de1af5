// Package oauth obtains Twitch OAuth tokens for use with helix.Client.
package oauth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-twitch/core"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultTokenRequestTimeout = 30 * time.Second

// Credentials is the application identity used by the flow. *helix.Client
// satisfies it.
type Credentials interface {
	AuthorizeURL() string
	TokenURL() string
	ClientID() string
	ClientSecret() string
	Scope() []string
	RedirectURI() string
}

type Flow struct {
	creds      Credentials
	httpClient *http.Client
}

type FlowOption func(*Flow)

func WithHTTPClient(client *http.Client) FlowOption {
	return func(f *Flow) {
		f.httpClient = client
	}
}

func NewFlow(creds Credentials, opts ...FlowOption) (*Flow, error) {
	if creds == nil {
		return nil, core.NewError("oauth: credentials are required", goerrors.CategoryBadInput, nil)
	}
	if strings.TrimSpace(creds.ClientID()) == "" {
		return nil, core.NewError("oauth: client id is required", goerrors.CategoryBadInput, nil)
	}
	flow := &Flow{creds: creds}
	for _, opt := range opts {
		if opt != nil {
			opt(flow)
		}
	}
	if flow.httpClient == nil {
		flow.httpClient = &http.Client{Timeout: defaultTokenRequestTimeout}
	}
	return flow, nil
}

// AuthCodeURL returns the authorize url and the state embedded in it. A blank
// state is replaced by a random one.
func (f *Flow) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) (string, string) {
	state = strings.TrimSpace(state)
	if state == "" {
		state = uuid.NewString()
	}
	return f.config().AuthCodeURL(state, opts...), state
}

// Exchange trades an authorization code for a user token.
func (f *Flow) Exchange(ctx context.Context, code string) (*Token, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, core.NewError("oauth: auth code is required", goerrors.CategoryBadInput, nil)
	}
	tok, err := f.config().Exchange(f.context(ctx), code)
	if err != nil {
		return nil, tokenError(err, "oauth: code exchange failed")
	}
	return FromOAuth2(tok), nil
}

// Refresh exchanges token's refresh token for a new token. Scopes are kept
// when the server omits them.
func (f *Flow) Refresh(ctx context.Context, token *Token) (*Token, error) {
	if token == nil || strings.TrimSpace(token.Refresh) == "" {
		return nil, core.NewError("oauth: refresh token is required", goerrors.CategoryBadInput, nil)
	}
	source := f.config().TokenSource(f.context(ctx), &oauth2.Token{RefreshToken: token.Refresh})
	tok, err := source.Token()
	if err != nil {
		return nil, tokenError(err, "oauth: token refresh failed")
	}
	refreshed := FromOAuth2(tok)
	if len(refreshed.Scopes) == 0 {
		refreshed.Scopes = append([]string{}, token.Scopes...)
	}
	return refreshed, nil
}

// ClientCredentials requests an app access token.
func (f *Flow) ClientCredentials(ctx context.Context) (*Token, error) {
	cfg := clientcredentials.Config{
		ClientID:     f.creds.ClientID(),
		ClientSecret: f.creds.ClientSecret(),
		TokenURL:     f.creds.TokenURL(),
		Scopes:       f.creds.Scope(),
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	tok, err := cfg.Token(f.context(ctx))
	if err != nil {
		return nil, tokenError(err, "oauth: client credentials grant failed")
	}
	return FromOAuth2(tok), nil
}

func (f *Flow) config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     f.creds.ClientID(),
		ClientSecret: f.creds.ClientSecret(),
		Endpoint: oauth2.Endpoint{
			AuthURL:   f.creds.AuthorizeURL(),
			TokenURL:  f.creds.TokenURL(),
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: f.creds.RedirectURI(),
		Scopes:      f.creds.Scope(),
	}
}

func (f *Flow) context(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
}

func tokenError(err error, message string) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		metadata := map[string]any{"error_code": retrieveErr.ErrorCode}
		if retrieveErr.Response != nil {
			metadata["status_code"] = retrieveErr.Response.StatusCode
		}
		return core.WrapError(err, goerrors.CategoryAuth, message, metadata)
	}
	return core.WrapError(err, goerrors.CategoryExternal, message, nil)
}

package helix

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-twitch/adapters/gologger"
	"github.com/goliatone/go-twitch/core"
	"github.com/goliatone/go-twitch/transport"
)

const loggerName = "twitch.helix"

type Client struct {
	cfg            core.Config
	token          core.Token
	transport      core.TransportAdapter
	logger         core.Logger
	loggerProvider core.LoggerProvider
	metrics        core.MetricsRecorder
}

type Option func(*Client)

func WithTransport(adapter core.TransportAdapter) Option {
	return func(c *Client) {
		c.transport = adapter
	}
}

func WithLogger(logger core.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithLoggerProvider(provider core.LoggerProvider) Option {
	return func(c *Client) {
		c.loggerProvider = provider
	}
}

func WithMetricsRecorder(recorder core.MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = recorder
	}
}

func WithToken(token core.Token) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient validates cfg and builds a client. The default transport is a
// transport.RESTAdapter with its default http client.
func NewClient(cfg core.Config, opts ...Option) (*Client, error) {
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return nil, core.WrapError(err, goerrors.CategoryValidation, "helix: invalid client config", nil)
	}

	c := &Client{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.transport == nil {
		c.transport = transport.NewRESTAdapter(nil)
	}
	if c.metrics == nil {
		c.metrics = core.NopMetricsRecorder{}
	}
	provider, logger := gologger.Resolve("twitch", c.loggerProvider, c.logger)
	c.loggerProvider = provider
	c.logger = gologger.Named(provider, loggerName, logger)
	return c, nil
}

// SetToken replaces the token used by Bearer calls. No validation is done.
func (c *Client) SetToken(token core.Token) *Client {
	c.token = token
	return c
}

func (c *Client) Token() core.Token {
	return c.token
}

func (*Client) AuthorizeURL() string {
	return core.AuthorizeURL
}

func (*Client) TokenURL() string {
	return core.TokenURL
}

func (c *Client) ClientID() string {
	return c.cfg.ClientID
}

func (c *Client) ClientSecret() string {
	return c.cfg.ClientSecret
}

func (c *Client) Scope() []string {
	return append([]string{}, c.cfg.Scope...)
}

func (c *Client) RedirectURI() string {
	return c.cfg.RedirectURI
}

// Config returns a copy of the configuration the client was built with.
func (c *Client) Config() core.Config {
	return c.cfg.Clone()
}

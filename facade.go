package twitch

import (
	"context"

	"github.com/goliatone/go-twitch/core"
	"github.com/goliatone/go-twitch/helix"
	"github.com/goliatone/go-twitch/oauth"
)

// Facade bundles a client session: the request client, the resource clients
// borrowing it, and the OAuth flow for its credentials.
type Facade struct {
	client *helix.Client
	users  *helix.Users
	videos *helix.Videos
	oauth  *oauth.Flow
}

type FacadeOption func(*facadeOptions)

type facadeOptions struct {
	client []helix.Option
	flow   []oauth.FlowOption
}

func WithClientOptions(opts ...helix.Option) FacadeOption {
	return func(options *facadeOptions) {
		options.client = append(options.client, opts...)
	}
}

func WithFlowOptions(opts ...oauth.FlowOption) FacadeOption {
	return func(options *facadeOptions) {
		options.flow = append(options.flow, opts...)
	}
}

func New(cfg Config, opts ...FacadeOption) (*Facade, error) {
	options := facadeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	client, err := helix.NewClient(cfg, options.client...)
	if err != nil {
		return nil, err
	}
	flow, err := oauth.NewFlow(client, options.flow...)
	if err != nil {
		return nil, err
	}
	return &Facade{
		client: client,
		users:  helix.NewUsers(client),
		videos: helix.NewVideos(client),
		oauth:  flow,
	}, nil
}

// Resolve layers DefaultConfig < loader values < runtime.
func Resolve(ctx context.Context, loader RawConfigLoader, runtime Config) (Config, error) {
	return core.ResolveConfig(ctx, loader, runtime)
}

// NewFromLoader resolves the config from loader and runtime before building
// the facade. See core.ResolveConfig for precedence.
func NewFromLoader(ctx context.Context, loader RawConfigLoader, runtime Config, opts ...FacadeOption) (*Facade, error) {
	cfg, err := Resolve(ctx, loader, runtime)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

func (f *Facade) Client() *helix.Client {
	return f.client
}

func (f *Facade) Users() *helix.Users {
	return f.users
}

func (f *Facade) Videos() *helix.Videos {
	return f.videos
}

func (f *Facade) OAuth() *oauth.Flow {
	return f.oauth
}

// SetToken replaces the token on the shared client.
func (f *Facade) SetToken(token Token) *Facade {
	f.client.SetToken(token)
	return f
}

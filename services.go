package twitch

import (
	"github.com/goliatone/go-twitch/core"
	"github.com/goliatone/go-twitch/helix"
	"github.com/goliatone/go-twitch/oauth"
)

type Config = core.Config

type Form = core.Form
type Field = core.Field

type Result = core.Result
type Failure = core.Failure

type Token = core.Token
type AuthMode = core.AuthMode

type RawConfigLoader = core.RawConfigLoader
type StaticConfigLoader = core.StaticConfigLoader

type Client = helix.Client
type Users = helix.Users
type Videos = helix.Videos

type OAuthFlow = oauth.Flow
type OAuthToken = oauth.Token

const (
	AuthBearer   = core.AuthBearer
	AuthClientID = core.AuthClientID
)

var ErrNoToken = helix.ErrNoToken

func DefaultConfig() Config {
	return core.DefaultConfig()
}

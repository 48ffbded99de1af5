package core

import (
	"fmt"
	"strings"
)

const DefaultRedirectURI = "https://localhost.me"

// Config holds the application credentials of one client session.
type Config struct {
	ClientID     string   `koanf:"client_id" mapstructure:"client_id"`
	ClientSecret string   `koanf:"client_secret" mapstructure:"client_secret"`
	Scope        []string `koanf:"scope" mapstructure:"scope"`
	RedirectURI  string   `koanf:"redirect_uri" mapstructure:"redirect_uri"`
	// PostTLSVerify enables certificate verification on POST requests. The
	// zero value sends POST bodies with verification disabled.
	PostTLSVerify bool `koanf:"post_tls_verify" mapstructure:"post_tls_verify"`
}

func DefaultConfig() Config {
	return Config{
		Scope:       []string{},
		RedirectURI: DefaultRedirectURI,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("core: client_id is required")
	}
	return nil
}

// Normalized trims credentials and fills the default redirect uri.
func (c Config) Normalized() Config {
	out := c.Clone()
	out.ClientID = strings.TrimSpace(out.ClientID)
	out.ClientSecret = strings.TrimSpace(out.ClientSecret)
	out.RedirectURI = strings.TrimSpace(out.RedirectURI)
	if out.RedirectURI == "" {
		out.RedirectURI = DefaultRedirectURI
	}
	scope := make([]string, 0, len(out.Scope))
	for _, item := range out.Scope {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			scope = append(scope, trimmed)
		}
	}
	out.Scope = scope
	return out
}

func (c Config) Clone() Config {
	out := c
	out.Scope = append([]string{}, c.Scope...)
	return out
}

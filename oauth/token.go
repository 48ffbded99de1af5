package oauth

import (
	"strings"
	"time"

	"github.com/goliatone/go-twitch/core"
	"golang.org/x/oauth2"
)

// Token is a Twitch OAuth token. The zero Type is sent as "Bearer".
type Token struct {
	Type    string
	Access  string
	Refresh string
	Expiry  time.Time
	Scopes  []string
}

func (t *Token) TokenType() string {
	if t == nil {
		return ""
	}
	return t.Type
}

func (t *Token) AccessToken() string {
	if t == nil {
		return ""
	}
	return t.Access
}

// Valid reports whether the token has an access token that is not expired.
func (t *Token) Valid() bool {
	if t == nil {
		return false
	}
	return t.OAuth2().Valid()
}

func (t *Token) OAuth2() *oauth2.Token {
	if t == nil {
		return nil
	}
	return &oauth2.Token{
		AccessToken:  t.Access,
		TokenType:    t.Type,
		RefreshToken: t.Refresh,
		Expiry:       t.Expiry,
	}
}

// FromOAuth2 keeps the token type exactly as the server sent it; Twitch
// answers "bearer".
func FromOAuth2(tok *oauth2.Token) *Token {
	if tok == nil {
		return nil
	}
	return &Token{
		Type:    tok.TokenType,
		Access:  tok.AccessToken,
		Refresh: tok.RefreshToken,
		Expiry:  tok.Expiry,
		Scopes:  scopesFromExtra(tok.Extra("scope")),
	}
}

func scopesFromExtra(raw any) []string {
	switch typed := raw.(type) {
	case []string:
		return append([]string{}, typed...)
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if value, ok := item.(string); ok && strings.TrimSpace(value) != "" {
				out = append(out, value)
			}
		}
		return out
	case string:
		return strings.Fields(typed)
	default:
		return []string{}
	}
}

var _ core.Token = (*Token)(nil)

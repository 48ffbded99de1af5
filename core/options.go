package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-config/cfgx"
	opts "github.com/goliatone/go-options"
)

// RawConfigLoader supplies raw configuration values owned by the embedding
// application, typically decoded from its own config source.
type RawConfigLoader interface {
	LoadRaw(ctx context.Context) (map[string]any, error)
}

type StaticConfigLoader struct {
	Values map[string]any
}

func (l StaticConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	if len(l.Values) == 0 {
		return map[string]any{}, nil
	}
	out := make(map[string]any, len(l.Values))
	for key, value := range l.Values {
		out[key] = value
	}
	return out, nil
}

// ResolveConfig layers DefaultConfig < loader values < runtime and validates
// the merged result.
func ResolveConfig(ctx context.Context, loader RawConfigLoader, runtime Config) (Config, error) {
	defaults := DefaultConfig()
	loaded, err := loadConfig(ctx, loader, defaults)
	if err != nil {
		return Config{}, err
	}

	stack, err := opts.NewStack(
		opts.NewLayer(
			opts.NewScope("defaults", 0),
			configToLayerMap(defaults, true),
			opts.WithSnapshotID[map[string]any]("defaults"),
		),
		opts.NewLayer(
			opts.NewScope("config", 10),
			configToLayerMap(loaded, false),
			opts.WithSnapshotID[map[string]any]("config"),
		),
		opts.NewLayer(
			opts.NewScope("runtime", 20),
			configToLayerMap(runtime, false),
			opts.WithSnapshotID[map[string]any]("runtime"),
		),
	)
	if err != nil {
		return Config{}, fmt.Errorf("core: options stack build failed: %w", err)
	}
	merged, err := stack.Merge()
	if err != nil {
		return Config{}, fmt.Errorf("core: options merge failed: %w", err)
	}
	resolved, err := cfgx.Build[Config](merged.Value,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[Config]((*Config).Validate),
	)
	if err != nil {
		return Config{}, err
	}
	resolved = resolved.Normalized()
	if err := resolved.Validate(); err != nil {
		return Config{}, err
	}
	return resolved, nil
}

func loadConfig(ctx context.Context, loader RawConfigLoader, defaults Config) (Config, error) {
	if loader == nil {
		loader = StaticConfigLoader{}
	}
	raw, err := loader.LoadRaw(ctx)
	if err != nil {
		return Config{}, err
	}
	return cfgx.Build[Config](raw, cfgx.WithDefaults(defaults))
}

func configToLayerMap(cfg Config, includeZero bool) map[string]any {
	layer := map[string]any{}
	if includeZero || strings.TrimSpace(cfg.ClientID) != "" {
		layer["client_id"] = cfg.ClientID
	}
	if includeZero || strings.TrimSpace(cfg.ClientSecret) != "" {
		layer["client_secret"] = cfg.ClientSecret
	}
	if includeZero || len(cfg.Scope) > 0 {
		layer["scope"] = append([]string(nil), cfg.Scope...)
	}
	if includeZero || strings.TrimSpace(cfg.RedirectURI) != "" {
		layer["redirect_uri"] = cfg.RedirectURI
	}
	if includeZero || cfg.PostTLSVerify {
		layer["post_tls_verify"] = cfg.PostTLSVerify
	}
	return layer
}

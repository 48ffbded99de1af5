package gologger

import (
	glog "github.com/goliatone/go-logger/glog"
)

// Resolve uses deterministic precedence provider > logger > nop.
func Resolve(name string, provider glog.LoggerProvider, logger glog.Logger) (glog.LoggerProvider, glog.Logger) {
	return glog.Resolve(name, provider, logger)
}

// Named returns the provider logger registered under name, falling back to
// fallback when the provider is missing or returns nil.
func Named(provider glog.LoggerProvider, name string, fallback glog.Logger) glog.Logger {
	if provider != nil {
		if named := provider.GetLogger(name); named != nil {
			return named
		}
	}
	if fallback == nil {
		return glog.Nop()
	}
	return fallback
}

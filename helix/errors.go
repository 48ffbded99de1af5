package helix

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-twitch/core"
)

var ErrNoToken = errors.New("helix: no token set")

// NoTokenError reports a Bearer call made while the client holds no usable
// token. It matches ErrNoToken with errors.Is.
type NoTokenError struct {
	Method string
	Path   string
}

func (e *NoTokenError) Error() string {
	if e == nil || e.Path == "" {
		return ErrNoToken.Error()
	}
	return fmt.Sprintf("%s: bearer auth required for %s %s", ErrNoToken.Error(), e.Method, e.Path)
}

func (e *NoTokenError) Unwrap() error {
	return ErrNoToken
}

func (e *NoTokenError) ToServiceError() *goerrors.Error {
	metadata := map[string]any{}
	if e != nil {
		metadata["method"] = e.Method
		metadata["path"] = e.Path
	}
	return core.NewError(e.Error(), goerrors.CategoryAuth, metadata).
		WithTextCode(core.ErrorNoToken)
}

func noToken(method string, path string) error {
	return &NoTokenError{Method: method, Path: path}
}

func unknownAuthMode(mode core.AuthMode) error {
	return core.NewError(
		fmt.Sprintf("helix: unknown auth mode %q", string(mode)),
		goerrors.CategoryBadInput,
		map[string]any{"auth_mode": string(mode)},
	)
}

func nilClient() error {
	return core.NewError("helix: client is nil", goerrors.CategoryInternal, nil)
}

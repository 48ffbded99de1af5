package transport

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-twitch/core"
)

func transportError(message string, category goerrors.Category, metadata map[string]any) error {
	return core.NewError(message, category, metadata)
}

func transportWrapError(source error, category goerrors.Category, message string, metadata map[string]any) error {
	return core.WrapError(source, category, message, metadata)
}

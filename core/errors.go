package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorBadInput        = "TWITCH_BAD_INPUT"
	ErrorNoToken         = "TWITCH_NO_TOKEN"
	ErrorUnauthorized    = "TWITCH_UNAUTHORIZED"
	ErrorExternalFailure = "TWITCH_EXTERNAL_FAILURE"
	ErrorInternal        = "TWITCH_INTERNAL_ERROR"
)

// NewError builds a go-errors envelope with the text code and HTTP status
// derived from category.
func NewError(message string, category goerrors.Category, metadata map[string]any) *goerrors.Error {
	err := goerrors.New(message, category).
		WithCode(HTTPStatus(category)).
		WithTextCode(TextCode(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func WrapError(source error, category goerrors.Category, message string, metadata map[string]any) *goerrors.Error {
	if source == nil {
		return NewError(message, category, metadata)
	}
	err := goerrors.Wrap(source, category, message).
		WithCode(HTTPStatus(category)).
		WithTextCode(TextCode(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func TextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ErrorBadInput
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return ErrorUnauthorized
	case goerrors.CategoryExternal:
		return ErrorExternalFailure
	default:
		return ErrorInternal
	}
}

func HTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// TextCodeOf returns the text code carried by err, or "" when err is not a
// go-errors envelope.
func TextCodeOf(err error) string {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return ""
	}
	return strings.TrimSpace(rich.TextCode)
}

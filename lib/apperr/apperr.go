// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for session-close policy: which errors
// abort an operation, and whose message the user is allowed to see.
type Kind string

const (
	// KindValidation marks bad user input (empty search, illegal
	// characters). The message is surfaced verbatim.
	KindValidation Kind = "validation"

	// KindNotFound marks a primary resource that does not exist in
	// the registry. The message is surfaced verbatim.
	KindNotFound Kind = "not_found"

	// KindConfiguration marks a missing required setting. The message
	// is surfaced verbatim so an admin can fix the installation.
	KindConfiguration Kind = "configuration"

	// KindRegistry marks a transport or HTTP failure talking to the
	// run registry. Carries the upstream status code and message.
	KindRegistry Kind = "registry"

	// KindInternal marks everything unexpected. Only the generic
	// message is surfaced; the cause stays in the log.
	KindInternal Kind = "internal"
)

// InternalMessage is the generic user-facing text for errors that
// carry no message safe to show.
const InternalMessage = "An unexpected error occurred. Please try again or contact your administrator."

// Error is a classified error. Message is user-facing for every kind
// except KindInternal. StatusCode is set only for KindRegistry errors
// and holds the upstream HTTP status (0 for transport failures that
// never produced a response).
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindRegistry && e.StatusCode != 0:
		return fmt.Sprintf("%s: HTTP %d: %s", e.Kind, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validationf creates a KindValidation error with a user-facing message.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a KindNotFound error with a user-facing message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Configurationf creates a KindConfiguration error with a user-facing
// message.
func Configurationf(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

// Registryf creates a KindRegistry error carrying the upstream HTTP
// status. Pass status 0 for transport failures without a response.
func Registryf(status int, format string, args ...any) *Error {
	return &Error{Kind: KindRegistry, StatusCode: status, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected error. The wrapped error is preserved
// for logging; the user sees only InternalMessage.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: InternalMessage, Err: err}
}

// KindOf returns the kind of err, or KindInternal for unclassified
// errors (including nil-safe use on wrapped causes).
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindInternal
}

// IsValidation reports whether err is a KindValidation error.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err is a KindNotFound error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConfiguration reports whether err is a KindConfiguration error.
func IsConfiguration(err error) bool { return KindOf(err) == KindConfiguration }

// IsRegistry reports whether err is a KindRegistry error.
func IsRegistry(err error) bool { return KindOf(err) == KindRegistry }

// HTTPStatus returns the upstream HTTP status carried by a registry
// error, or 0 when err is not a registry error or never produced a
// response.
func HTTPStatus(err error) int {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.StatusCode
	}
	return 0
}

// UserMessage returns the text to surface on a canvas session for err.
// Validation, NotFound, Configuration, and Registry messages pass
// through verbatim; everything else collapses to InternalMessage.
func UserMessage(err error) string {
	var classified *Error
	if !errors.As(err, &classified) {
		return InternalMessage
	}
	if classified.Kind == KindInternal {
		return InternalMessage
	}
	return classified.Message
}

// Package apperr carries stable error kinds from usecases to the transports.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Kind string

const (
	KindNotFound                  Kind = "not_found"
	KindForbidden                 Kind = "forbidden"
	KindNotVerified               Kind = "not_verified"
	KindInvalidRecipientRole      Kind = "invalid_recipient_role"
	KindInvalidQuantity           Kind = "invalid_quantity"
	KindInvalidPrice              Kind = "invalid_price"
	KindUnauthorized              Kind = "unauthorized"
	KindExternalLedgerUnavailable Kind = "external_ledger_unavailable"
	KindInvalidArgument           Kind = "invalid_argument"
	KindConflict                  Kind = "conflict"
	KindBusy                      Kind = "busy"
	KindInternal                  Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, apperr.NotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	NotFound                  = &Error{Kind: KindNotFound, Message: "not found"}
	Forbidden                 = &Error{Kind: KindForbidden, Message: "forbidden"}
	NotVerified               = &Error{Kind: KindNotVerified, Message: "stakeholder not verified"}
	InvalidRecipientRole      = &Error{Kind: KindInvalidRecipientRole, Message: "invalid recipient role"}
	InvalidQuantity           = &Error{Kind: KindInvalidQuantity, Message: "invalid quantity"}
	InvalidPrice              = &Error{Kind: KindInvalidPrice, Message: "invalid price"}
	Unauthorized              = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ExternalLedgerUnavailable = &Error{Kind: KindExternalLedgerUnavailable, Message: "external ledger unavailable"}
	InvalidArgument           = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
	Conflict                  = &Error{Kind: KindConflict, Message: "conflict"}
	Busy                      = &Error{Kind: KindBusy, Message: "busy"}
)

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the caller-facing message. Internal errors are not leaked.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

var grpcCodes = map[Kind]codes.Code{
	KindNotFound:                  codes.NotFound,
	KindForbidden:                 codes.PermissionDenied,
	KindNotVerified:               codes.FailedPrecondition,
	KindInvalidRecipientRole:      codes.FailedPrecondition,
	KindInvalidQuantity:           codes.InvalidArgument,
	KindInvalidPrice:              codes.InvalidArgument,
	KindUnauthorized:              codes.Unauthenticated,
	KindExternalLedgerUnavailable: codes.Unavailable,
	KindInvalidArgument:           codes.InvalidArgument,
	KindConflict:                  codes.Aborted,
	KindBusy:                      codes.ResourceExhausted,
	KindInternal:                  codes.Internal,
}

var httpStatuses = map[Kind]int{
	KindNotFound:                  http.StatusNotFound,
	KindForbidden:                 http.StatusForbidden,
	KindNotVerified:               http.StatusForbidden,
	KindInvalidRecipientRole:      http.StatusUnprocessableEntity,
	KindInvalidQuantity:           http.StatusUnprocessableEntity,
	KindInvalidPrice:              http.StatusUnprocessableEntity,
	KindUnauthorized:              http.StatusUnauthorized,
	KindExternalLedgerUnavailable: http.StatusServiceUnavailable,
	KindInvalidArgument:           http.StatusBadRequest,
	KindConflict:                  http.StatusConflict,
	KindBusy:                      http.StatusTooManyRequests,
	KindInternal:                  http.StatusInternalServerError,
}

// GRPCStatus lets grpc servers report e with its kind's code. The kind travels in the
// message prefix so clients can branch on it.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(grpcCodes[e.Kind], fmt.Sprintf("%s: %s", e.Kind, e.Message))
}

// GRPCStatus converts any err to a grpc status error.
func GRPCStatus(err error) error {
	kind := KindOf(err)
	return status.Error(grpcCodes[kind], fmt.Sprintf("%s: %s", kind, Message(err)))
}

func HTTPStatus(err error) int {
	return httpStatuses[KindOf(err)]
}

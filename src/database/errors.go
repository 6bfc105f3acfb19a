package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

type ErrorKind int

const (
	KindOther ErrorKind = iota
	// KindNotProvisioned: the collection or database does not exist for this
	// deployment, or the tenant ran out of databases.
	KindNotProvisioned
	// KindUnreachable: network, timeout or server selection failures.
	KindUnreachable
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotProvisioned:
		return "not provisioned"
	case KindUnreachable:
		return "unreachable"
	}
	return "other"
}

// MongoDB server error codes.
const (
	codeNamespaceNotFound = 26
	codeAtlasError        = 8000
)

var notProvisionedMarkers = []string{"404", "not found", "maximum database count"}
var unreachableMarkers = []string{"server selection error", "connection refused", "no reachable servers"}

// Error is returned by every Collection operation.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("database %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Classify wraps err as *Error. An err that already is one is returned as is.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return err
	}
	return &Error{Kind: kindOf(err), Op: op, Err: err}
}

// KindOf reports the kind of a database error. Errors that were never
// classified are inspected directly.
func KindOf(err error) ErrorKind {
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return dbErr.Kind
	}
	return kindOf(err)
}

func IsNotProvisioned(err error) bool {
	return err != nil && KindOf(err) == KindNotProvisioned
}

func kindOf(err error) ErrorKind {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Code == codeNamespaceNotFound || cmdErr.Code == codeAtlasError {
			return KindNotProvisioned
		}
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, mongo.ErrClientDisconnected) {
		return KindUnreachable
	}

	msg := strings.ToLower(err.Error())
	for _, m := range notProvisionedMarkers {
		if strings.Contains(msg, m) {
			return KindNotProvisioned
		}
	}
	for _, m := range unreachableMarkers {
		if strings.Contains(msg, m) {
			return KindUnreachable
		}
	}
	return KindOther
}

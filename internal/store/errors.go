package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind partitions store failures by how a handler should react to them.
type Kind int

const (
	// KindValidation marks input rejected before any statement was issued.
	KindValidation Kind = iota
	// KindNotFound marks a lookup or existence pre-check that matched no row.
	KindNotFound
	// KindDuplicate marks a uniqueness or other integrity violation reported
	// by the store at statement time.
	KindDuplicate
	// KindData marks an out-of-range or malformed value rejected by the
	// store, e.g. an overlong description.
	KindData
	// KindInfrastructure marks everything else: a dead connection, an
	// unclassified driver error. Never rendered as an empty success.
	KindInfrastructure
)

// Template data keys a field-scoped message may target. Insert failures
// render next to the registration form, search failures next to the lookup
// form.
const (
	FieldInsert = "InsertErr"
	FieldSearch = "SearchErr"
)

// FlowError carries a user-facing, field-scoped message for every kind
// except KindInfrastructure, which must fail the whole request. Field, when
// set, overrides the caller's default message slot.
type FlowError struct {
	Kind    Kind
	Message string
	Field   string
	cause   error
}

func (e *FlowError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *FlowError) Unwrap() error { return e.cause }

// Recoverable reports whether the error can be rendered back into the
// originating form instead of aborting the request.
func (e *FlowError) Recoverable() bool { return e.Kind != KindInfrastructure }

// ValidationError builds a field-scoped validation failure that never touched
// the store.
func ValidationError(msg string) *FlowError {
	return &FlowError{Kind: KindValidation, Message: msg}
}

func validationErr(msg string) *FlowError { return ValidationError(msg) }

func notFoundErr(msg string) *FlowError {
	return &FlowError{Kind: KindNotFound, Message: msg}
}

// classify maps a driver-level error onto the taxonomy. GORM's TranslateError
// already folds unique violations into ErrDuplicatedKey for both the postgres
// and sqlite drivers; PostgreSQL SQLSTATE classes cover the rest.
func classify(err error, msg string) *FlowError {
	kind := KindInfrastructure
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		kind = KindDuplicate
	case errors.Is(err, gorm.ErrRecordNotFound):
		kind = KindNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case strings.HasPrefix(pgErr.Code, "23"):
				kind = KindDuplicate
			case strings.HasPrefix(pgErr.Code, "22"):
				kind = KindData
			}
		}
	}
	return &FlowError{Kind: kind, Message: msg, cause: err}
}

// classifyInsert classifies a failed insert and picks the field-scoped text
// by the resulting kind, so a data error is never reported with the
// uniqueness wording (or vice versa).
func classifyInsert(err error, duplicateMsg, dataMsg string) *FlowError {
	fe := classify(err, duplicateMsg)
	if fe.Kind == KindData {
		fe.Message = dataMsg
	}
	return fe
}

// AsFlowError unwraps err into a *FlowError, or wraps it as infrastructure.
func AsFlowError(err error) *FlowError {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe
	}
	return &FlowError{Kind: KindInfrastructure, Message: "internal error", cause: err}
}

package pxtable

import (
	"errors"

	"github.com/ONSdigital/log.go/v2/log"
)

// Fatal errors abort processing of a single table. Per-row problems
// (unparseable values, unrecognised time keys) never surface here; they
// degrade to nil values or FrequencyUnknown instead.
var (
	// ErrMalformedMetadata is returned when a table's variable metadata is
	// inconsistent, e.g. a value list and its label list differ in length.
	ErrMalformedMetadata = errors.New("malformed table metadata")

	// ErrNoTimeDimension is returned when no variable is flagged as the time
	// dimension and none can be inferred, so rows cannot be assigned a date.
	ErrNoTimeDimension = errors.New("no time dimension in table metadata")

	// ErrShapeMismatch is returned when a dense value array's length does not
	// equal the product of the declared dimension sizes.
	ErrShapeMismatch = errors.New("value array length does not match dimension sizes")
)

// Error wraps a fatal engine error with structured data for logging by the
// caller. The engine itself never logs.
type Error struct {
	err     error
	logData map[string]interface{}
}

// NewError creates a new Error
func NewError(err error, logData log.Data) *Error {
	return &Error{
		err:     err,
		logData: logData,
	}
}

// Error implements the Go standard error interface
func (e *Error) Error() string {
	if e.err == nil {
		return "nil error"
	}
	return e.err.Error()
}

// LogData implements the DataLogger interface which allows you extract
// embedded log.Data from an error
func (e *Error) LogData() map[string]interface{} {
	return e.logData
}

// Unwrap implements Go error unwrapping
func (e *Error) Unwrap() error {
	return e.err
}

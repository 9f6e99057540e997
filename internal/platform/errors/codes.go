// Package errors provides structured error handling with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeRequestInvalidBody Code = "REQUEST_INVALID_BODY"
	CodeRequestInvalidKey  Code = "REQUEST_INVALID_KEY"

	// Schema-shape validation errors
	CodeSchemaMissingField Code = "SCHEMA_MISSING_FIELD"
	CodeSchemaUnknownField Code = "SCHEMA_UNKNOWN_FIELD"
	CodeSchemaInvalidType  Code = "SCHEMA_INVALID_TYPE"
	CodeSchemaEmptyUpdate  Code = "SCHEMA_EMPTY_UPDATE"

	// Storage errors
	CodeNotFound       Code = "NOT_FOUND"
	CodeAlreadyExists  Code = "ALREADY_EXISTS"
	CodeReferenced     Code = "REFERENCE_CONSTRAINT"
	CodeValueRange     Code = "VALUE_RANGE"
	CodeStorageFailure Code = "STORAGE_FAILURE"
	CodeUnavailable    Code = "UNAVAILABLE"
)

package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeRequestInvalidBody,
		CodeRequestInvalidKey,
		CodeSchemaMissingField,
		CodeSchemaUnknownField,
		CodeSchemaInvalidType,
		CodeSchemaEmptyUpdate,
		CodeValueRange:
		return http.StatusBadRequest

	case CodeNotFound:
		return http.StatusNotFound

	case CodeAlreadyExists,
		CodeReferenced:
		return http.StatusConflict

	case CodeUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// FromError returns the domain error in err's chain, or nil when none exists.
func FromError(err error) *Error {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

package ldbsv

import "fmt"

// The parse failure taxonomy. Every error returned by this package is one
// of these types so that callers can render their own diagnostics with
// errors.As rather than string matching.

// InvalidTagNameError means the node examined was not the tag the caller
// required.
type InvalidTagNameError struct {
	Expected string
	Found    string
}

func (e InvalidTagNameError) Error() string {
	return fmt.Sprintf("invalid tag name, expected %q, got %q", e.Expected, e.Found)
}

// MissingFieldError means a required child tag was absent.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("field %q is missing", e.Field)
}

// InvalidFieldError means a child was present but its text failed to
// convert to the required type.
type InvalidFieldError struct {
	Field    string
	Expected string
	Found    string
}

func (e InvalidFieldError) Error() string {
	return fmt.Sprintf("field %q couldn't be parsed, expected %s, got %q", e.Field, e.Expected, e.Found)
}

// InvalidActivityError means an activity chunk did not match the activity
// code table.
type InvalidActivityError struct {
	Code string
}

func (e InvalidActivityError) Error() string {
	return fmt.Sprintf("invalid activity %q", e.Code)
}

// InvalidForecastError means a forecast type tag held a value outside the
// known set.
type InvalidForecastError struct {
	Value string
}

func (e InvalidForecastError) Error() string {
	return fmt.Sprintf("invalid forecast type %q", e.Value)
}

// InvalidAssociationCategoryError means an association category tag held a
// value outside the known set.
type InvalidAssociationCategoryError struct {
	Value string
}

func (e InvalidAssociationCategoryError) Error() string {
	return fmt.Sprintf("invalid association category %q", e.Value)
}

// UnsupportedServiceTypeError means serviceType was present and well formed
// but not "train". Bus and ferry services are deliberately not coerced.
type UnsupportedServiceTypeError struct {
	ServiceType string
}

func (e UnsupportedServiceTypeError) Error() string {
	return fmt.Sprintf("unsupported service type %q", e.ServiceType)
}

// MalformedDocumentError means the input was not well formed XML at all.
// It is produced by the document adapter before traversal begins.
type MalformedDocumentError struct {
	Err error
}

func (e MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed XML document: %s", e.Err)
}

func (e MalformedDocumentError) Unwrap() error {
	return e.Err
}

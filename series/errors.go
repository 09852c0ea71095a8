// Copyright 2023 Seriate Authors.

package series

// Error values shared across the package. Conversion and parsing are
// fail-fast: the first error anywhere in a nested build aborts the whole
// call and no partial result is ever returned. Callers match with
// errors.Is; messages carry the offending input and, for choice errors,
// the accepted set.

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedShape reports a dynamic value whose runtime shape has
	// no defined series conversion.
	ErrUnsupportedShape = errors.New("unsupported value shape")

	// ErrUnknownTypeName reports a type name that matched none of the
	// documented catalog aliases.
	ErrUnknownTypeName = errors.New("data type not recognized")

	// ErrInvalidChoice reports an enum-choice string that matched none of
	// the accepted values.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrNotADataType reports a dynamic value that was expected to carry a
	// DataType payload but did not.
	ErrNotADataType = errors.New("object is not a DataType")

	// ErrSchemaMismatch reports sibling list elements that resolved to
	// different element types during merge.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrNotImplemented reports a constructor or cast that is explicitly
	// not implemented.
	ErrNotImplemented = errors.New("not implemented")
)

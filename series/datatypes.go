// Copyright 2023 Seriate Authors.

package series

// The type catalog: the closed set of column element types a Series can
// carry, resolution of the documented type-name aliases, and the mapping
// to the Arrow types that back the columns.

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/pkg/errors"
)

// TypeID identifies one element type in the catalog.
type TypeID int

const (
	Boolean TypeID = iota
	UInt8
	UInt16
	UInt32
	UInt64
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Utf8
	Binary
	Date
	Time
	Null
	Categorical
	Unknown
	List
)

// DataType is an immutable element-type value. List types carry an inner
// element type; all other types are simple. Equality is structural.
type DataType struct {
	id    TypeID
	inner *DataType
}

// Canonical simple type names, in the documented enumeration order.
var simpleTypeNames = []string{
	"Boolean",
	"UInt8",
	"UInt16",
	"UInt32",
	"UInt64",
	"Int8",
	"Int16",
	"Int32",
	"Int64",
	"Float32",
	"Float64",
	"Utf8",
	"Binary",
	"Date",
	"Time",
	"Null",
	"Categorical",
	"Unknown",
}

// SimpleTypeNames returns the canonical names of all non-parameterized
// types in the catalog, in a stable order.
func SimpleTypeNames() []string {
	result := make([]string, len(simpleTypeNames))
	copy(result, simpleTypeNames)
	return result
}

// NewDataType resolves a type name, canonical or alias, to its catalog
// type. The alias table is part of the documented contract.
func NewDataType(s string) (DataType, error) {
	switch s {
	case "Boolean", "logical":
		return DataType{id: Boolean}, nil
	case "UInt8", "uinteger8":
		return DataType{id: UInt8}, nil
	case "UInt16", "uinteger16":
		return DataType{id: UInt16}, nil
	case "UInt32", "uinteger32":
		return DataType{id: UInt32}, nil
	case "UInt64", "uinteger64":
		return DataType{id: UInt64}, nil
	case "Int8", "integer8":
		return DataType{id: Int8}, nil
	case "Int16", "integer16":
		return DataType{id: Int16}, nil
	case "Int32", "integer32", "integer":
		return DataType{id: Int32}, nil
	case "Int64", "integer64":
		return DataType{id: Int64}, nil
	case "Float32", "float32", "double":
		return DataType{id: Float32}, nil
	case "Float64", "float64":
		return DataType{id: Float64}, nil
	case "Utf8", "character":
		return DataType{id: Utf8}, nil
	case "Binary", "binary":
		return DataType{id: Binary}, nil
	case "Date", "date":
		return DataType{id: Date}, nil
	case "Time", "time":
		return DataType{id: Time}, nil
	case "Null", "null":
		return DataType{id: Null}, nil
	case "Categorical", "factor":
		return DataType{id: Categorical}, nil
	case "Unknown", "unknown":
		return DataType{id: Unknown}, nil
	}
	return DataType{}, errors.Wrapf(ErrUnknownTypeName,
		"DataType choice: [%s] is not any of %s", s,
		strings.Join(simpleTypeNames, ", "))
}

// NewListType returns a list type with the given inner element type.
func NewListType(inner DataType) DataType {
	in := inner
	return DataType{id: List, inner: &in}
}

// NewDatetimeType is not implemented.
func NewDatetimeType() (DataType, error) {
	return DataType{}, errors.Wrap(ErrNotImplemented, "datetime")
}

// NewDurationType is not implemented.
func NewDurationType() (DataType, error) {
	return DataType{}, errors.Wrap(ErrNotImplemented, "duration")
}

// NewObjectType is not implemented.
func NewObjectType() (DataType, error) {
	return DataType{}, errors.Wrap(ErrNotImplemented, "object")
}

// NewStructType is not implemented.
func NewStructType() (DataType, error) {
	return DataType{}, errors.Wrap(ErrNotImplemented, "struct")
}

func (d DataType) ID() TypeID {
	return d.id
}

// Inner returns the element type of a list type, and false for any other
// type.
func (d DataType) Inner() (DataType, bool) {
	if d.id != List || d.inner == nil {
		return DataType{}, false
	}
	return *d.inner, true
}

// Equal answers structural value equality, including the inner type for
// list types.
func (d DataType) Equal(other DataType) bool {
	if d.id != other.id {
		return false
	}
	if d.id != List {
		return true
	}
	if d.inner == nil || other.inner == nil {
		return d.inner == other.inner
	}
	return d.inner.Equal(*other.inner)
}

func (d DataType) String() string {
	if d.id == List {
		if d.inner == nil {
			return "List(?)"
		}
		return "List(" + d.inner.String() + ")"
	}
	if int(d.id) < len(simpleTypeNames) {
		return simpleTypeNames[d.id]
	}
	return "Unknown"
}

// ArrowType returns the Arrow type that backs columns of this element
// type. Unknown is a placeholder and has no column representation.
func (d DataType) ArrowType() (arrow.DataType, error) {
	switch d.id {
	case Boolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case UInt8:
		return arrow.PrimitiveTypes.Uint8, nil
	case UInt16:
		return arrow.PrimitiveTypes.Uint16, nil
	case UInt32:
		return arrow.PrimitiveTypes.Uint32, nil
	case UInt64:
		return arrow.PrimitiveTypes.Uint64, nil
	case Int8:
		return arrow.PrimitiveTypes.Int8, nil
	case Int16:
		return arrow.PrimitiveTypes.Int16, nil
	case Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case Float32:
		return arrow.PrimitiveTypes.Float32, nil
	case Float64:
		return arrow.PrimitiveTypes.Float64, nil
	case Utf8:
		return arrow.BinaryTypes.String, nil
	case Binary:
		return arrow.BinaryTypes.Binary, nil
	case Date:
		return arrow.FixedWidthTypes.Date32, nil
	case Time:
		return arrow.FixedWidthTypes.Time64ns, nil
	case Null:
		return arrow.Null, nil
	case Categorical:
		return categoricalArrowType(), nil
	case List:
		if d.inner == nil {
			return nil, errors.Wrap(ErrNotImplemented, "list type without inner type")
		}
		inner, err := d.inner.ArrowType()
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(inner), nil
	}
	return nil, errors.Wrapf(ErrNotImplemented, "no arrow representation for %s", d)
}

// Categorical columns are dictionary-encoded text: integer codes indexing
// a label dictionary.
func categoricalArrowType() *arrow.DictionaryType {
	return &arrow.DictionaryType{
		IndexType: arrow.PrimitiveTypes.Uint32,
		ValueType: arrow.BinaryTypes.String,
	}
}

// dataTypeFromArrow maps an Arrow type back onto the catalog. Used when
// columns re-enter from Arrow data, e.g. reading an IPC stream.
func dataTypeFromArrow(dt arrow.DataType) (DataType, error) {
	switch t := dt.(type) {
	case *arrow.BooleanType:
		return DataType{id: Boolean}, nil
	case *arrow.Uint8Type:
		return DataType{id: UInt8}, nil
	case *arrow.Uint16Type:
		return DataType{id: UInt16}, nil
	case *arrow.Uint32Type:
		return DataType{id: UInt32}, nil
	case *arrow.Uint64Type:
		return DataType{id: UInt64}, nil
	case *arrow.Int8Type:
		return DataType{id: Int8}, nil
	case *arrow.Int16Type:
		return DataType{id: Int16}, nil
	case *arrow.Int32Type:
		return DataType{id: Int32}, nil
	case *arrow.Int64Type:
		return DataType{id: Int64}, nil
	case *arrow.Float32Type:
		return DataType{id: Float32}, nil
	case *arrow.Float64Type:
		return DataType{id: Float64}, nil
	case *arrow.StringType:
		return DataType{id: Utf8}, nil
	case *arrow.BinaryType:
		return DataType{id: Binary}, nil
	case *arrow.Date32Type:
		return DataType{id: Date}, nil
	case *arrow.Time64Type:
		return DataType{id: Time}, nil
	case *arrow.NullType:
		return DataType{id: Null}, nil
	case *arrow.DictionaryType:
		return DataType{id: Categorical}, nil
	case *arrow.ListType:
		inner, err := dataTypeFromArrow(t.Elem())
		if err != nil {
			return DataType{}, err
		}
		return NewListType(inner), nil
	}
	return DataType{}, errors.Wrapf(ErrNotImplemented,
		"no catalog type for arrow type %s", dt)
}

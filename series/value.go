// Copyright 2023 Seriate Authors.

package series

// The dynamic value union: the closed set of runtime shapes a host value
// can take at the conversion boundary. Per-element missingness is carried
// in an optional mask (nil means no element is missing), distinct from
// the container-level NullValue shape which carries no values at all.

// Value is one dynamically shaped host value. The set of implementations
// is closed; conversion dispatches exhaustively over it and rejects
// anything else as an unsupported shape.
type Value interface {
	shape() string
}

// Doubles is a real-number vector. Missing, when non-nil, marks per
// element whether the value is a missing marker; Values at marked slots
// are ignored.
type Doubles struct {
	Values  []float64
	Missing []bool
}

// Integers is an integer vector. A non-nil Levels marks the vector as
// factor-tagged: Values are 1-based codes into Levels.
type Integers struct {
	Values  []int32
	Missing []bool
	Levels  []string
}

// Strings is a text vector.
type Strings struct {
	Values  []string
	Missing []bool
}

// Logicals is a tri-state boolean vector: true, false, or missing.
type Logicals struct {
	Values  []bool
	Missing []bool
}

// NullValue is the container-level "no value" marker.
type NullValue struct{}

// ListValue is an ordered collection of child values. Names, when
// non-nil, runs parallel to Items; empty string entries mark unnamed
// children.
type ListValue struct {
	Names []string
	Items []Value
}

func (Doubles) shape() string   { return "doubles" }
func (Integers) shape() string  { return "integers" }
func (Strings) shape() string   { return "strings" }
func (Logicals) shape() string  { return "logicals" }
func (NullValue) shape() string { return "null" }
func (ListValue) shape() string { return "list" }

// IsFactor answers whether the vector carries a categorical label set.
func (v Integers) IsFactor() bool {
	return v.Levels != nil
}

// Name returns the name of the i'th child, or "" when unnamed.
func (v ListValue) Name(i int) string {
	if v.Names == nil || i >= len(v.Names) {
		return ""
	}
	return v.Names[i]
}

func shapeName(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.shape()
}

func anyMissing(mask []bool) bool {
	for _, m := range mask {
		if m {
			return true
		}
	}
	return false
}

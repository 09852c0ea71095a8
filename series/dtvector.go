// Copyright 2023 Seriate Authors.

package series

// DataTypeVector is an ordered vector of optionally named data types,
// used to describe an expected schema. If all entries are named it can be
// applied by column name; otherwise consumers apply it positionally. A
// zero-length vector applies no schema at all.

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DataTypeVectorEntry pairs an optional column name with an element type.
// Name is nil when the entry is positional.
type DataTypeVectorEntry struct {
	Name     *string
	DataType DataType
}

type DataTypeVector struct {
	entries []DataTypeVectorEntry
}

func NewDataTypeVector() *DataTypeVector {
	return &DataTypeVector{}
}

// Push appends one entry. A nil name marks a positional entry.
func (v *DataTypeVector) Push(name *string, dt DataType) {
	v.entries = append(v.entries, DataTypeVectorEntry{Name: name, DataType: dt})
}

func (v *DataTypeVector) Len() int {
	return len(v.entries)
}

func (v *DataTypeVector) Entries() []DataTypeVectorEntry {
	return v.entries
}

// Types strips the names, preserving order, for consumers that need a
// positional schema.
func (v *DataTypeVector) Types() []DataType {
	result := make([]DataType, len(v.entries))
	for i, e := range v.entries {
		result[i] = e.DataType
	}
	return result
}

// AllNamed answers whether every entry carries a name, enabling
// name-keyed schema application.
func (v *DataTypeVector) AllNamed() bool {
	for _, e := range v.entries {
		if e.Name == nil {
			return false
		}
	}
	return len(v.entries) > 0
}

func (v *DataTypeVector) String() string {
	parts := make([]string, len(v.entries))
	for i, e := range v.entries {
		if e.Name != nil {
			parts[i] = fmt.Sprintf("%s=%s", *e.Name, e.DataType)
		} else {
			parts[i] = e.DataType.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NewDataTypeVectorFromAny builds a vector from parallel name and value
// slices, checking that every value actually carries a DataType payload
// before extracting it. Construction is all-or-nothing: the first invalid
// entry fails the whole call and no partial vector is returned.
func NewDataTypeVectorFromAny(names []string, values []any) (*DataTypeVector, error) {
	dtv := &DataTypeVector{entries: make([]DataTypeVectorEntry, 0, len(values))}
	for i, value := range values {
		dt, ok := value.(DataType)
		if !ok {
			return nil, errors.Wrapf(ErrNotADataType,
				"entry %d holds %T", i, value)
		}
		var name *string
		if i < len(names) {
			n := names[i]
			name = &n
		}
		dtv.Push(name, dt)
	}
	return dtv, nil
}

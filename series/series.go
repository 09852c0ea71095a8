// Copyright 2023 Seriate Authors.

package series

// Series is the columnar value produced by conversion: a named, ordered,
// homogeneously typed sequence of values with missing-value support,
// backed by an Arrow array. A Series is immutable once built.

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/pkg/errors"
)

var alloc = memory.DefaultAllocator

// defaultLeafType is the single global fallback element type, applied
// only when no concrete type is discoverable anywhere in a converted
// tree. Changing it is an observable compatibility break.
var defaultLeafType = DataType{id: Float64}

type Series struct {
	name  string
	dtype DataType
	arr   arrow.Array
}

func (s Series) Name() string {
	return s.name
}

// Rename returns a copy of the series under a new name.
func (s Series) Rename(name string) Series {
	s.name = name
	return s
}

func (s Series) Len() int {
	return s.arr.Len()
}

func (s Series) DataType() DataType {
	return s.dtype
}

// Array exposes the backing Arrow array.
func (s Series) Array() arrow.Array {
	return s.arr
}

func (s Series) IsNull(i int) bool {
	return s.arr.IsNull(i)
}

// Converts per-element missing marks to an Arrow validity mask. A nil
// mask means every element is valid, which lets builders take the bulk
// path with no per-element branching.
func validity(missing []bool) []bool {
	if missing == nil {
		return nil
	}
	valid := make([]bool, len(missing))
	for i, m := range missing {
		valid[i] = !m
	}
	return valid
}

// NewFloat64Series builds a Float64 series. A nil missing mask means no
// element is missing.
func NewFloat64Series(name string, values []float64, missing []bool) Series {
	b := array.NewFloat64Builder(alloc)
	defer b.Release()
	b.AppendValues(values, validity(missing))
	return Series{name: name, dtype: DataType{id: Float64}, arr: b.NewArray()}
}

// NewInt32Series builds an Int32 series.
func NewInt32Series(name string, values []int32, missing []bool) Series {
	b := array.NewInt32Builder(alloc)
	defer b.Release()
	b.AppendValues(values, validity(missing))
	return Series{name: name, dtype: DataType{id: Int32}, arr: b.NewArray()}
}

// NewStringSeries builds a Utf8 series.
func NewStringSeries(name string, values []string, missing []bool) Series {
	b := array.NewStringBuilder(alloc)
	defer b.Release()
	b.AppendValues(values, validity(missing))
	return Series{name: name, dtype: DataType{id: Utf8}, arr: b.NewArray()}
}

// NewBoolSeries builds a Boolean series.
func NewBoolSeries(name string, values []bool, missing []bool) Series {
	b := array.NewBooleanBuilder(alloc)
	defer b.Release()
	b.AppendValues(values, validity(missing))
	return Series{name: name, dtype: DataType{id: Boolean}, arr: b.NewArray()}
}

// NewSeriesFromArrow wraps an existing Arrow array, inferring its catalog
// type.
func NewSeriesFromArrow(name string, arr arrow.Array) (Series, error) {
	dt, err := dataTypeFromArrow(arr.DataType())
	if err != nil {
		return Series{}, err
	}
	return Series{name: name, dtype: dt, arr: arr}, nil
}

// Cast converts the series to another element type. Only the casts the
// conversion pipeline needs are supported: a zero-length series casts to
// any materializable type, and Utf8 dictionary-encodes to Categorical.
func (s Series) Cast(to DataType) (Series, error) {
	if s.dtype.Equal(to) {
		return s, nil
	}
	if s.Len() == 0 {
		at, err := to.ArrowType()
		if err != nil {
			return Series{}, err
		}
		b := array.NewBuilder(alloc, at)
		defer b.Release()
		return Series{name: s.name, dtype: to, arr: b.NewArray()}, nil
	}
	if s.dtype.id == Utf8 && to.id == Categorical {
		return dictionaryEncode(s.name, s.arr.(*array.String))
	}
	return Series{}, errors.Wrapf(ErrNotImplemented, "cast from %s to %s", s.dtype, to)
}

// dictionaryEncode converts a text array to a categorical series: a
// label dictionary plus integer codes.
func dictionaryEncode(name string, src *array.String) (Series, error) {
	b := array.NewDictionaryBuilder(alloc, categoricalArrowType())
	defer b.Release()
	db := b.(*array.BinaryDictionaryBuilder)
	for i := 0; i < src.Len(); i++ {
		if src.IsNull(i) {
			db.AppendNull()
			continue
		}
		if err := db.AppendString(src.Value(i)); err != nil {
			return Series{}, errors.Wrap(err, "building categorical dictionary")
		}
	}
	return Series{name: name, dtype: DataType{id: Categorical}, arr: db.NewArray()}, nil
}

// emptyListSeries is the delayed materialization of an untyped empty
// container: a zero-length list of the default leaf type, to be cast once
// a concrete leaf type is known.
func emptyListSeries(name string) Series {
	b := array.NewListBuilder(alloc, arrow.PrimitiveTypes.Float64)
	defer b.Release()
	return Series{name: name, dtype: NewListType(defaultLeafType), arr: b.NewArray()}
}

// newListSeries merges sibling series into one list series with one list
// entry per child. All children must share one element type; the caller
// has already checked this.
func newListSeries(name string, children []Series) (Series, error) {
	elem := children[0].dtype
	elemArrow, err := elem.ArrowType()
	if err != nil {
		return Series{}, err
	}
	parts := make([]arrow.Array, len(children))
	offsets := make([]int32, len(children)+1)
	for i, c := range children {
		parts[i] = c.arr
		offsets[i+1] = offsets[i] + int32(c.Len())
	}
	values, err := array.Concatenate(parts, alloc)
	if err != nil {
		return Series{}, errors.Wrap(err, "concatenating list elements")
	}
	buf := memory.NewBufferBytes(arrow.Int32Traits.CastToBytes(offsets))
	data := array.NewData(arrow.ListOf(elemArrow), len(children),
		[]*memory.Buffer{nil, buf}, []arrow.ArrayData{values.Data()}, 0, 0)
	defer data.Release()
	return Series{name: name, dtype: NewListType(elem), arr: array.NewListData(data)}, nil
}

// Slice returns the [i, j) window of the series.
func (s Series) Slice(i, j int) Series {
	s.arr = array.NewSlice(s.arr, int64(i), int64(j))
	return s
}

// Value returns the i'th element as a native value, nil for missing.
// List elements come back as []any.
func (s Series) Value(i int) any {
	if s.arr.IsNull(i) {
		return nil
	}
	switch a := s.arr.(type) {
	case *array.Boolean:
		return a.Value(i)
	case *array.Uint8:
		return a.Value(i)
	case *array.Uint16:
		return a.Value(i)
	case *array.Uint32:
		return a.Value(i)
	case *array.Uint64:
		return a.Value(i)
	case *array.Int8:
		return a.Value(i)
	case *array.Int16:
		return a.Value(i)
	case *array.Int32:
		return a.Value(i)
	case *array.Int64:
		return a.Value(i)
	case *array.Float32:
		return a.Value(i)
	case *array.Float64:
		return a.Value(i)
	case *array.String:
		return a.Value(i)
	case *array.Binary:
		return a.Value(i)
	case *array.Date32:
		return a.Value(i).ToTime()
	case *array.Time64:
		return int64(a.Value(i))
	case *array.Dictionary:
		dict := a.Dictionary().(*array.String)
		return dict.Value(a.GetValueIndex(i))
	case *array.List:
		start, end := a.ValueOffsets(i)
		inner, _ := s.dtype.Inner()
		sub := Series{dtype: inner, arr: array.NewSlice(a.ListValues(), start, end)}
		return sub.Values()
	}
	return nil
}

// Values returns all elements as native values, nil for missing.
func (s Series) Values() []any {
	result := make([]any, s.Len())
	for i := range result {
		result[i] = s.Value(i)
	}
	return result
}

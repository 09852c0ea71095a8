// Copyright 2023 Seriate Authors.

package series_test

import (
	"testing"

	"seriate/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeVectorPush(t *testing.T) {
	f64, err := series.NewDataType("Float64")
	require.NoError(t, err)
	utf8, err := series.NewDataType("Utf8")
	require.NoError(t, err)

	name := "a"
	dtv := series.NewDataTypeVector()
	dtv.Push(&name, f64)
	dtv.Push(nil, utf8)

	require.Equal(t, 2, dtv.Len())
	assert.False(t, dtv.AllNamed())

	types := dtv.Types()
	require.Len(t, types, 2)
	assert.True(t, types[0].Equal(f64))
	assert.True(t, types[1].Equal(utf8))
	assert.Equal(t, "[a=Float64, Utf8]", dtv.String())
}

func TestDataTypeVectorFromAny(t *testing.T) {
	f64, err := series.NewDataType("Float64")
	require.NoError(t, err)
	i32, err := series.NewDataType("Int32")
	require.NoError(t, err)

	dtv, err := series.NewDataTypeVectorFromAny(
		[]string{"a", "b"}, []any{f64, i32})
	require.NoError(t, err)
	require.Equal(t, 2, dtv.Len())
	assert.True(t, dtv.AllNamed())
	assert.Equal(t, "[a=Float64, b=Int32]", dtv.String())
}

func TestDataTypeVectorFromAnyIsAllOrNothing(t *testing.T) {
	f64, err := series.NewDataType("Float64")
	require.NoError(t, err)

	// the second entry is not a DataType; no partial vector comes back
	dtv, err := series.NewDataTypeVectorFromAny(
		[]string{"a", "b", "c"}, []any{f64, "Float64", f64})
	require.ErrorIs(t, err, series.ErrNotADataType)
	assert.Nil(t, dtv)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestDataTypeVectorEmpty(t *testing.T) {
	dtv := series.NewDataTypeVector()
	assert.Equal(t, 0, dtv.Len())
	assert.False(t, dtv.AllNamed())
	assert.Empty(t, dtv.Types())
}

// Copyright 2023 Seriate Authors.

package series_test

import (
	"testing"

	"seriate/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueFromJSONScalars(t *testing.T) {
	v, err := series.ValueFromJSON([]byte(`3.5`))
	require.NoError(t, err)
	assert.Equal(t, series.Doubles{Values: []float64{3.5}}, v)

	v, err = series.ValueFromJSON([]byte(`"hi"`))
	require.NoError(t, err)
	assert.Equal(t, series.Strings{Values: []string{"hi"}}, v)

	v, err = series.ValueFromJSON([]byte(`true`))
	require.NoError(t, err)
	assert.Equal(t, series.Logicals{Values: []bool{true}}, v)

	v, err = series.ValueFromJSON([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, series.NullValue{}, v)
}

func TestValueFromJSONFlatArrays(t *testing.T) {
	v, err := series.ValueFromJSON([]byte(`[1, null, 3]`))
	require.NoError(t, err)
	assert.Equal(t, series.Doubles{
		Values:  []float64{1, 0, 3},
		Missing: []bool{false, true, false},
	}, v)

	v, err = series.ValueFromJSON([]byte(`["x", null]`))
	require.NoError(t, err)
	assert.Equal(t, series.Strings{
		Values:  []string{"x", ""},
		Missing: []bool{false, true},
	}, v)

	v, err = series.ValueFromJSON([]byte(`[true, false]`))
	require.NoError(t, err)
	assert.Equal(t, series.Logicals{
		Values:  []bool{true, false},
		Missing: []bool{false, false},
	}, v)

	// empty array has no element type to coalesce on
	v, err = series.ValueFromJSON([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, series.ListValue{}, v)
}

func TestValueFromJSONMixedArrayStaysList(t *testing.T) {
	v, err := series.ValueFromJSON([]byte(`[1, "a"]`))
	require.NoError(t, err)
	lv, ok := v.(series.ListValue)
	require.True(t, ok)
	require.Len(t, lv.Items, 2)
	assert.Equal(t, series.Doubles{Values: []float64{1}}, lv.Items[0])
	assert.Equal(t, series.Strings{Values: []string{"a"}}, lv.Items[1])
}

func TestValueFromJSONObjectKeepsOrder(t *testing.T) {
	v, err := series.ValueFromJSON([]byte(`{"b": [1.5], "a": []}`))
	require.NoError(t, err)
	lv, ok := v.(series.ListValue)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, lv.Names)
	require.Len(t, lv.Items, 2)
	assert.Equal(t, series.Doubles{Values: []float64{1.5}}, lv.Items[0])
	assert.Equal(t, series.ListValue{}, lv.Items[1])
}

func TestJSONEndToEnd(t *testing.T) {
	v, err := series.ValueFromJSON([]byte(`{"a": [1, null, 3], "b": []}`))
	require.NoError(t, err)
	s, err := series.FromValue(v, "doc")
	require.NoError(t, err)
	assert.Equal(t, "doc", s.Name())
	assert.Equal(t, "List(Float64)", s.DataType().String())
	require.Equal(t, 2, s.Len())
	assert.Equal(t, []any{1.0, nil, 3.0}, s.Value(0))
	assert.Equal(t, []any{}, s.Value(1))
}

func TestJSONEndToEndMismatch(t *testing.T) {
	v, err := series.ValueFromJSON([]byte(`{"a": [1], "b": ["x"]}`))
	require.NoError(t, err)
	_, err = series.FromValue(v, "doc")
	require.ErrorIs(t, err, series.ErrSchemaMismatch)
}

// Copyright 2023 Seriate Authors.

package series_test

import (
	"testing"

	"seriate/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTypeNamesRoundTrip(t *testing.T) {
	// every enumerated name must resolve back to a type with that name
	for _, name := range series.SimpleTypeNames() {
		dt, err := series.NewDataType(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, dt.String())
	}
}

func TestTypeNameAliases(t *testing.T) {
	aliases := map[string]string{
		"logical":    "Boolean",
		"uinteger8":  "UInt8",
		"uinteger16": "UInt16",
		"uinteger32": "UInt32",
		"uinteger64": "UInt64",
		"integer8":   "Int8",
		"integer16":  "Int16",
		"integer32":  "Int32",
		"integer":    "Int32",
		"integer64":  "Int64",
		"float32":    "Float32",
		"double":     "Float32",
		"float64":    "Float64",
		"character":  "Utf8",
		"binary":     "Binary",
		"date":       "Date",
		"time":       "Time",
		"null":       "Null",
		"factor":     "Categorical",
		"unknown":    "Unknown",
	}
	for alias, canonical := range aliases {
		dt, err := series.NewDataType(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, canonical, dt.String(), alias)
	}
}

func TestUnknownTypeName(t *testing.T) {
	_, err := series.NewDataType("Float128")
	require.ErrorIs(t, err, series.ErrUnknownTypeName)
	assert.Contains(t, err.Error(), "Float128")
	assert.Contains(t, err.Error(), "Boolean")
}

func TestListTypeEquality(t *testing.T) {
	f64, err := series.NewDataType("Float64")
	require.NoError(t, err)
	utf8, err := series.NewDataType("Utf8")
	require.NoError(t, err)

	assert.True(t, f64.Equal(f64))
	assert.False(t, f64.Equal(utf8))

	lf := series.NewListType(f64)
	lu := series.NewListType(utf8)
	assert.True(t, lf.Equal(series.NewListType(f64)))
	assert.False(t, lf.Equal(lu))
	assert.False(t, lf.Equal(f64))
	assert.True(t, series.NewListType(lf).Equal(series.NewListType(series.NewListType(f64))))

	assert.Equal(t, "List(Float64)", lf.String())

	inner, ok := lf.Inner()
	require.True(t, ok)
	assert.True(t, inner.Equal(f64))
	_, ok = f64.Inner()
	assert.False(t, ok)
}

func TestUnimplementedConstructors(t *testing.T) {
	_, err := series.NewDatetimeType()
	require.ErrorIs(t, err, series.ErrNotImplemented)
	_, err = series.NewDurationType()
	require.ErrorIs(t, err, series.ErrNotImplemented)
	_, err = series.NewObjectType()
	require.ErrorIs(t, err, series.ErrNotImplemented)
	_, err = series.NewStructType()
	require.ErrorIs(t, err, series.ErrNotImplemented)
}

func TestArrowTypeMapping(t *testing.T) {
	cases := map[string]string{
		"Boolean": "bool",
		"Int32":   "int32",
		"Float64": "float64",
		"Utf8":    "utf8",
		"Binary":  "binary",
		"Date":    "date32",
	}
	for name, want := range cases {
		dt, err := series.NewDataType(name)
		require.NoError(t, err)
		at, err := dt.ArrowType()
		require.NoError(t, err)
		assert.Equal(t, want, at.Name(), name)
	}

	unknown, err := series.NewDataType("Unknown")
	require.NoError(t, err)
	_, err = unknown.ArrowType()
	require.ErrorIs(t, err, series.ErrNotImplemented)
}

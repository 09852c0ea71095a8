// Copyright 2023 Seriate Authors.

package series_test

import (
	"testing"

	"seriate/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJoinType(t *testing.T) {
	for _, choice := range []string{"cross", "inner", "left", "outer", "semi", "anti"} {
		jt, err := series.NewJoinType(choice)
		require.NoError(t, err, choice)
		assert.Equal(t, choice, jt.String())
	}

	jt, err := series.NewJoinType("outer")
	require.NoError(t, err)
	assert.Equal(t, series.JoinOuter, jt)

	// wrong case fails, the resolver is case-sensitive
	_, err = series.NewJoinType("Outer")
	require.ErrorIs(t, err, series.ErrInvalidChoice)
	assert.Contains(t, err.Error(), "[Outer]")
	assert.Contains(t, err.Error(), "'cross', 'inner', 'left', 'outer', 'semi', 'anti'")
}

func TestNewQuantileInterpolation(t *testing.T) {
	for _, choice := range []string{"nearest", "higher", "lower", "midpoint", "linear"} {
		q, err := series.NewQuantileInterpolation(choice)
		require.NoError(t, err, choice)
		assert.Equal(t, choice, q.String())
	}
	_, err := series.NewQuantileInterpolation("cubic")
	require.ErrorIs(t, err, series.ErrInvalidChoice)
	assert.Contains(t, err.Error(), "'nearest', 'higher', 'lower', 'midpoint', 'linear'")
}

func TestNewClosedWindow(t *testing.T) {
	for _, choice := range []string{"both", "left", "none", "right"} {
		c, err := series.NewClosedWindow(choice)
		require.NoError(t, err, choice)
		assert.Equal(t, choice, c.String())
	}
	_, err := series.NewClosedWindow("above")
	require.ErrorIs(t, err, series.ErrInvalidChoice)
}

func TestNewNullBehavior(t *testing.T) {
	nb, err := series.NewNullBehavior("ignore")
	require.NoError(t, err)
	assert.Equal(t, series.NullIgnore, nb)
	nb, err = series.NewNullBehavior("drop")
	require.NoError(t, err)
	assert.Equal(t, series.NullDrop, nb)
	_, err = series.NewNullBehavior("keep")
	require.ErrorIs(t, err, series.ErrInvalidChoice)
}

func TestNewRankMethodIsCaseInsensitive(t *testing.T) {
	for _, choice := range []string{"average", "dense", "max", "min", "ordinal", "random"} {
		r, err := series.NewRankMethod(choice)
		require.NoError(t, err, choice)
		assert.Equal(t, choice, r.String())
	}

	// unlike every other resolver, rank method lowercases its input
	r, err := series.NewRankMethod("AVERAGE")
	require.NoError(t, err)
	assert.Equal(t, series.RankAverage, r)

	_, err = series.NewRankMethod("median")
	require.ErrorIs(t, err, series.ErrInvalidChoice)
}

func TestNewInterpolationMethod(t *testing.T) {
	im, err := series.NewInterpolationMethod("linear")
	require.NoError(t, err)
	assert.Equal(t, series.InterpolationLinear, im)
	im, err = series.NewInterpolationMethod("nearest")
	require.NoError(t, err)
	assert.Equal(t, series.InterpolationNearest, im)
	_, err = series.NewInterpolationMethod("spline")
	require.ErrorIs(t, err, series.ErrInvalidChoice)
}

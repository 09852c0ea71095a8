// Copyright 2023 Seriate Authors.

package series

// Resolvers mapping option-choice strings to their enum values. These are
// pure functions; the accepted strings are part of the documented
// contract. All resolvers are case-sensitive except NewRankMethod, which
// lowercases its input first.

import (
	"strings"

	"github.com/pkg/errors"
)

type JoinType int

const (
	JoinCross JoinType = iota
	JoinInner
	JoinLeft
	JoinOuter
	JoinSemi
	JoinAnti
)

var joinTypeNames = []string{"cross", "inner", "left", "outer", "semi", "anti"}

func (j JoinType) String() string {
	return joinTypeNames[j]
}

func NewJoinType(s string) (JoinType, error) {
	switch s {
	case "cross":
		return JoinCross, nil
	case "inner":
		return JoinInner, nil
	case "left":
		return JoinLeft, nil
	case "outer":
		return JoinOuter, nil
	case "semi":
		return JoinSemi, nil
	case "anti":
		return JoinAnti, nil
	}
	return 0, errors.Wrapf(ErrInvalidChoice,
		"JoinType choice: [%s] is not any of 'cross', 'inner', 'left', 'outer', 'semi', 'anti'", s)
}

type QuantileInterpolation int

const (
	QuantileNearest QuantileInterpolation = iota
	QuantileHigher
	QuantileLower
	QuantileMidpoint
	QuantileLinear
)

var quantileInterpolationNames = []string{"nearest", "higher", "lower", "midpoint", "linear"}

func (q QuantileInterpolation) String() string {
	return quantileInterpolationNames[q]
}

func NewQuantileInterpolation(s string) (QuantileInterpolation, error) {
	switch s {
	case "nearest":
		return QuantileNearest, nil
	case "higher":
		return QuantileHigher, nil
	case "lower":
		return QuantileLower, nil
	case "midpoint":
		return QuantileMidpoint, nil
	case "linear":
		return QuantileLinear, nil
	}
	return 0, errors.Wrapf(ErrInvalidChoice,
		"interpolation choice: [%s] is not any of 'nearest', 'higher', 'lower', 'midpoint', 'linear'", s)
}

// ClosedWindow selects which window boundaries are inclusive.
type ClosedWindow int

const (
	ClosedBoth ClosedWindow = iota
	ClosedLeft
	ClosedNone
	ClosedRight
)

var closedWindowNames = []string{"both", "left", "none", "right"}

func (c ClosedWindow) String() string {
	return closedWindowNames[c]
}

func NewClosedWindow(s string) (ClosedWindow, error) {
	switch s {
	case "both":
		return ClosedBoth, nil
	case "left":
		return ClosedLeft, nil
	case "none":
		return ClosedNone, nil
	case "right":
		return ClosedRight, nil
	}
	return 0, errors.Wrapf(ErrInvalidChoice,
		"ClosedWindow choice: [%s] is not any of 'both', 'left', 'none' or 'right'", s)
}

// NullBehavior selects how null elements participate in an operation.
type NullBehavior int

const (
	NullIgnore NullBehavior = iota
	NullDrop
)

var nullBehaviorNames = []string{"ignore", "drop"}

func (n NullBehavior) String() string {
	return nullBehaviorNames[n]
}

func NewNullBehavior(s string) (NullBehavior, error) {
	switch s {
	case "ignore":
		return NullIgnore, nil
	case "drop":
		return NullDrop, nil
	}
	return 0, errors.Wrapf(ErrInvalidChoice,
		"NullBehavior choice: [%s] is not any of 'drop' or 'ignore'", s)
}

// RankMethod selects how ties are ranked.
type RankMethod int

const (
	RankAverage RankMethod = iota
	RankDense
	RankMax
	RankMin
	RankOrdinal
	RankRandom
)

var rankMethodNames = []string{"average", "dense", "max", "min", "ordinal", "random"}

func (r RankMethod) String() string {
	return rankMethodNames[r]
}

func NewRankMethod(s string) (RankMethod, error) {
	sLow := strings.ToLower(s)
	switch sLow {
	case "average":
		return RankAverage, nil
	case "dense":
		return RankDense, nil
	case "max":
		return RankMax, nil
	case "min":
		return RankMin, nil
	case "ordinal":
		return RankOrdinal, nil
	case "random":
		return RankRandom, nil
	}
	return 0, errors.Wrapf(ErrInvalidChoice,
		"RankMethod choice: [%s] is not any 'average', 'dense', 'min', 'max', 'ordinal', 'random'", sLow)
}

// InterpolationMethod selects how missing values are interpolated.
type InterpolationMethod int

const (
	InterpolationLinear InterpolationMethod = iota
	InterpolationNearest
)

var interpolationMethodNames = []string{"linear", "nearest"}

func (i InterpolationMethod) String() string {
	return interpolationMethodNames[i]
}

func NewInterpolationMethod(s string) (InterpolationMethod, error) {
	switch s {
	case "linear":
		return InterpolationLinear, nil
	case "nearest":
		return InterpolationNearest, nil
	}
	return 0, errors.Wrapf(ErrInvalidChoice,
		"InterpolationMethod choice: [%s] is not any of 'linear' or 'nearest'", s)
}

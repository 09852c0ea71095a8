// Copyright 2023 Seriate Authors.

package series

// Conversion of a (potentially nested) dynamic value into one Series.
// The conversion runs in three passes over an intermediate tree: parse
// the value into a tree of series fragments, scan the tree for the first
// leaf element type, then concatenate bottom-up. The tree exists because
// empty containers carry no type in the source, but the corresponding
// column type must be known before concatenation.

import (
	"github.com/pkg/errors"
)

// seriesTree holds fragments of a partially converted value. Exactly one
// of three variants: a concrete series leaf, an ordered branch of child
// trees, or the untyped-empty marker. A branch is never built with zero
// children; zero children use the empty variant instead.
type seriesTree interface {
	seriesTree()
}

type treeLeaf struct {
	s Series
}

type treeBranch struct {
	children []seriesTree
}

type treeEmpty struct{}

func (treeLeaf) seriesTree()   {}
func (treeBranch) seriesTree() {}
func (treeEmpty) seriesTree()  {}

// FromValue converts a dynamic value into one Series with the given
// name. Conversion is fail-fast: the first error anywhere in the nested
// value aborts the whole call.
func FromValue(x Value, name string) (Series, error) {
	// 1: parse the value into a tree of series, bubbling any parse error
	st, err := buildTree(x, name)
	if err != nil {
		return Series{}, err
	}

	// 2: find the first leaf element type; absent for an empty list, or
	// lists of empty lists all the way down
	leafType, ok := findFirstLeafType(st)

	// 3: concatenate the tree into one series, bubbling any type mismatch
	return concatTree(st, leafType, ok, name)
}

// buildTree dispatches on the runtime shape of the value and converts it
// into a seriesTree, recursing through lists.
func buildTree(x Value, name string) (seriesTree, error) {
	switch v := x.(type) {
	case Doubles:
		return treeLeaf{NewFloat64Series(name, v.Values, missingMask(v.Missing))}, nil

	case Strings:
		return treeLeaf{NewStringSeries(name, v.Values, missingMask(v.Missing))}, nil

	case Logicals:
		// tri-state: always mapped element by element
		mask := v.Missing
		if mask == nil {
			mask = make([]bool, len(v.Values))
		}
		return treeLeaf{NewBoolSeries(name, v.Values, mask)}, nil

	case Integers:
		if v.IsFactor() {
			// Convert by label, not by raw code: render to text first,
			// then dictionary-encode.
			labels, missing := factorLabels(v)
			s, err := NewStringSeries(name, labels, missing).Cast(DataType{id: Categorical})
			if err != nil {
				return nil, err
			}
			return treeLeaf{s}, nil
		}
		return treeLeaf{NewInt32Series(name, v.Values, missingMask(v.Missing))}, nil

	case NullValue:
		// flag with the empty variant, to resolve the column type later
		return treeEmpty{}, nil

	case ListValue:
		children := make([]seriesTree, 0, len(v.Items))
		for i, item := range v.Items {
			child, err := buildTree(item, v.Name(i))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		if len(children) == 0 {
			// an empty list has no type either; same delayed resolution
			return treeEmpty{}, nil
		}
		return treeBranch{children}, nil
	}

	return nil, errors.Wrapf(ErrUnsupportedShape,
		"new series from shape %s is not supported (yet)", shapeName(x))
}

// missingMask normalizes an all-false mask to nil so that builders take
// the bulk path. Both paths must produce identical series.
func missingMask(mask []bool) []bool {
	if mask == nil || !anyMissing(mask) {
		return nil
	}
	return mask
}

// factorLabels renders factor codes to their labels. Codes are 1-based;
// out-of-range codes have no label and become missing.
func factorLabels(v Integers) ([]string, []bool) {
	labels := make([]string, len(v.Values))
	missing := make([]bool, len(v.Values))
	for i, code := range v.Values {
		if (v.Missing != nil && v.Missing[i]) || code < 1 || int(code) > len(v.Levels) {
			missing[i] = true
			continue
		}
		labels[i] = v.Levels[code-1]
	}
	return labels, missing
}

// findFirstLeafType walks the tree depth-first, left to right, and
// returns the first leaf element type found. No unification across
// differing leaf types is attempted here; the concatenation step checks
// equality.
func findFirstLeafType(st seriesTree) (DataType, bool) {
	switch t := st.(type) {
	case treeLeaf:
		return t.s.DataType(), true
	case treeEmpty:
		return DataType{}, false
	case treeBranch:
		for _, child := range t.children {
			if dt, ok := findFirstLeafType(child); ok {
				return dt, ok
			}
		}
	}
	return DataType{}, false
}

// concatTree consumes the tree bottom-up and returns one concatenated
// series. Only the outermost result keeps the caller-supplied name.
func concatTree(st seriesTree, leafType DataType, haveLeafType bool, name string) (Series, error) {
	switch t := st.(type) {
	case treeLeaf:
		return t.s, nil

	case treeEmpty:
		s := emptyListSeries(name)
		if haveLeafType {
			return s.Cast(leafType)
		}
		return s, nil // float stays the default for empty lists of empty lists all the way down

	case treeBranch:
		if len(t.children) == 0 {
			panic("internal error: a series tree was built with a literal empty branch, instead of using the empty variant")
		}
		children := make([]Series, len(t.children))
		for i, child := range t.children {
			s, err := concatTree(child, leafType, haveLeafType, "")
			if err != nil {
				return Series{}, err
			}
			children[i] = s
		}

		// check for type mismatch before merging
		first := children[0].DataType()
		for _, s := range children[1:] {
			if !s.DataType().Equal(first) {
				return Series{}, errors.Wrapf(ErrSchemaMismatch,
					"when building series from list; some parsed sub-elements did not match: one element was %s and another was %s",
					first, s.DataType())
			}
		}
		return newListSeries(name, children)
	}

	panic("internal error: unknown series tree variant")
}

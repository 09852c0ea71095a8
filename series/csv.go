// Copyright 2023 Seriate Authors.

package series

// Typed CSV reading driven by a DataTypeVector schema. A fully named
// schema is applied by column name; a schema with any unnamed entry is
// applied positionally. Columns not covered by the schema parse as Utf8.

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/pkg/errors"
)

type CSVOptions struct {
	// Comma is the field delimiter, ',' when zero.
	Comma rune
	// NoHeader treats the first record as data; columns are then named
	// column_1, column_2, ...
	NoHeader bool
	// Schema assigns element types to columns. Nil parses everything as
	// Utf8.
	Schema *DataTypeVector
	// MissingValues lists field tokens read as missing markers. Defaults
	// to "" and "NA".
	MissingValues []string
}

// ReadCSV parses CSV data into one series per column.
func ReadCSV(r io.Reader, opts CSVOptions) ([]Series, error) {
	rd := csv.NewReader(r)
	if opts.Comma != 0 {
		rd.Comma = opts.Comma
	}
	records, err := rd.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}
	if len(records) == 0 {
		return nil, nil
	}

	var names []string
	if opts.NoHeader {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = fmt.Sprintf("column_%d", i+1)
		}
	} else {
		names = records[0]
		records = records[1:]
	}

	missing := map[string]bool{"": true, "NA": true}
	if opts.MissingValues != nil {
		missing = make(map[string]bool, len(opts.MissingValues))
		for _, tok := range opts.MissingValues {
			missing[tok] = true
		}
	}

	result := make([]Series, len(names))
	for cnum, name := range names {
		fields := make([]string, len(records))
		for rnum, record := range records {
			fields[rnum] = record[cnum]
		}
		s, err := parseColumn(name, schemaType(opts.Schema, name, cnum), fields, missing)
		if err != nil {
			return nil, err
		}
		result[cnum] = s
	}
	return result, nil
}

// schemaType resolves the element type the schema assigns to a column.
func schemaType(schema *DataTypeVector, name string, cnum int) DataType {
	if schema == nil || schema.Len() == 0 {
		return DataType{id: Utf8}
	}
	if schema.AllNamed() {
		for _, e := range schema.Entries() {
			if *e.Name == name {
				return e.DataType
			}
		}
		return DataType{id: Utf8}
	}
	if cnum < schema.Len() {
		return schema.Entries()[cnum].DataType
	}
	return DataType{id: Utf8}
}

// parseColumn parses one column of fields into a series of the given
// element type, fail-fast on the first unparsable field.
func parseColumn(name string, dt DataType, fields []string, missing map[string]bool) (Series, error) {
	at, err := dt.ArrowType()
	if err != nil {
		return Series{}, errors.Wrapf(err, "column %s", name)
	}
	b := array.NewBuilder(alloc, at)
	defer b.Release()
	for rnum, field := range fields {
		if missing[field] {
			b.AppendNull()
			continue
		}
		if err := b.AppendValueFromString(field); err != nil {
			return Series{}, errors.Wrapf(err,
				"column %s row %d: parsing %q as %s", name, rnum+1, field, dt)
		}
	}
	return Series{name: name, dtype: dt, arr: b.NewArray()}, nil
}

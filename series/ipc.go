// Copyright 2023 Seriate Authors.

package series

// Arrow IPC stream input/output for converted series.

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/pkg/errors"
)

// WriteIPC writes the given series as one record of an Arrow IPC stream.
// All series must have the same length.
func WriteIPC(w io.Writer, cols []Series) error {
	if len(cols) == 0 {
		return errors.New("no series to write")
	}
	nrows := cols[0].Len()
	fields := make([]arrow.Field, len(cols))
	arrs := make([]arrow.Array, len(cols))
	for i, c := range cols {
		if c.Len() != nrows {
			return errors.Errorf(
				"series lengths differ: %s has %d elements and %s has %d",
				cols[0].Name(), nrows, c.Name(), c.Len())
		}
		fields[i] = arrow.Field{Name: c.Name(), Type: c.arr.DataType(), Nullable: true}
		arrs[i] = c.arr
	}
	schema := arrow.NewSchema(fields, nil)
	rec := array.NewRecord(schema, arrs, int64(nrows))
	defer rec.Release()

	wr := ipc.NewWriter(w, ipc.WithSchema(schema), ipc.WithAllocator(alloc))
	if err := wr.Write(rec); err != nil {
		wr.Close()
		return errors.Wrap(err, "writing ipc record")
	}
	return wr.Close()
}

// ReadIPC reads an Arrow IPC stream back into series, one per column,
// concatenating records.
func ReadIPC(r io.Reader) ([]Series, error) {
	rd, err := ipc.NewReader(r, ipc.WithAllocator(alloc))
	if err != nil {
		return nil, errors.Wrap(err, "opening ipc stream")
	}
	defer rd.Release()

	schema := rd.Schema()
	chunks := make([][]arrow.Array, schema.NumFields())
	for rd.Next() {
		rec := rd.Record()
		for i := 0; i < int(rec.NumCols()); i++ {
			col := rec.Column(i)
			col.Retain()
			chunks[i] = append(chunks[i], col)
		}
	}
	if err := rd.Err(); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading ipc stream")
	}

	result := make([]Series, schema.NumFields())
	for i := range result {
		if len(chunks[i]) == 0 {
			return nil, errors.Errorf("ipc stream has no data for column %s",
				schema.Field(i).Name)
		}
		arr, err := array.Concatenate(chunks[i], alloc)
		if err != nil {
			return nil, errors.Wrap(err, "concatenating ipc records")
		}
		for _, chunk := range chunks[i] {
			chunk.Release()
		}
		s, err := NewSeriesFromArrow(schema.Field(i).Name, arr)
		if err != nil {
			return nil, err
		}
		result[i] = s
	}
	return result, nil
}

// Copyright 2023 Seriate Authors.

package series

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

func makeIndent(indent int) string {
	result := make([]rune, indent)
	for i := 0; i < indent; i++ {
		result[i] = ' '
	}
	return string(result)
}

// Encode the given item as JSON to the given writer.
func Encode(w io.Writer, item interface{}, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", makeIndent(indent))
	return enc.Encode(item)
}

// Print the given item as JSON to stdout.
func ShowJSON(item interface{}, indent int) error {
	return Encode(os.Stdout, item, indent)
}

type Showable interface {
	Show()
}

// Returns a "showable" string for the given value.
func displayString(v interface{}) string {
	switch vv := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(vv)
	case string:
		return fmt.Sprintf("\"%s\"", vv)
	case []byte:
		return fmt.Sprintf("b\"%s\"", vv)
	case time.Time:
		return vv.Format("2006-01-02")
	case []any:
		parts := make([]string, len(vv))
		for i, item := range vv {
			parts[i] = displayString(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("%v", v)
}

// Pretty print the series, one element per line.
func (s Series) Show() {
	fmt.Printf("# %s (%s), %d elements\n", s.name, s.dtype, s.Len())
	for i := 0; i < s.Len(); i++ {
		fmt.Println(displayString(s.Value(i)))
	}
}

// AsJSON returns a plain representation suitable for JSON encoding.
func (s Series) AsJSON() map[string]any {
	return map[string]any{
		"name":     s.name,
		"datatype": s.dtype.String(),
		"values":   s.jsonValues(),
	}
}

func (s Series) jsonValues() []any {
	result := make([]any, s.Len())
	for i := range result {
		v := s.Value(i)
		if t, ok := v.(time.Time); ok {
			v = t.Format("2006-01-02")
		}
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		result[i] = v
	}
	return result
}

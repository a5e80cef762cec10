package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/taoky/logproc/pkg/analyze"
)

const jsonIndent = "    "

// marshalValue encodes a single report value compactly. Address counts
// become a two element array, missing values become null.
func marshalValue(v any) ([]byte, error) {
	switch v := v.(type) {
	case analyze.AddressCount:
		return json.Marshal([]any{v.Address, v.Count})
	case nil, float64, uint64:
		return json.Marshal(v)
	default:
		return nil, fmt.Errorf("unexpected report value %T", v)
	}
}

// writeIndentedValue writes v at nesting depth 1. Pairs are spread over
// several lines, one element per line.
func writeIndentedValue(buf *bytes.Buffer, v any) error {
	ac, ok := v.(analyze.AddressCount)
	if !ok {
		value, err := marshalValue(v)
		if err != nil {
			return err
		}
		buf.Write(value)
		return nil
	}
	addr, err := json.Marshal(ac.Address)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "[\n%[1]s%[1]s%[2]s,\n%[1]s%[1]s%[3]d\n%[1]s]", jsonIndent, addr, ac.Count)
	return nil
}

// EncodeJSON writes the report as an indented JSON object followed by a
// newline. Keys follow report order.
func EncodeJSON(w io.Writer, r analyze.Report) error {
	var buf bytes.Buffer
	entries := r.Entries()
	if len(entries) == 0 {
		buf.WriteString("{}\n")
	} else {
		buf.WriteString("{\n")
		for i, e := range entries {
			fmt.Fprintf(&buf, "%s%q: ", jsonIndent, e.Metric)
			if err := writeIndentedValue(&buf, e.Value); err != nil {
				return fmt.Errorf("%s: %w", e.Metric, err)
			}
			if i < len(entries)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("}\n")
	}
	_, err := buf.WriteTo(w)
	return err
}

package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/taoky/logproc/pkg/analyze"
)

// EncodeText writes one "key: value" line per metric, with values in
// compact JSON notation.
func EncodeText(w io.Writer, r analyze.Report) error {
	bw := bufio.NewWriter(w)
	for _, e := range r.Entries() {
		value, err := marshalValue(e.Value)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Metric, err)
		}
		fmt.Fprintf(bw, "%s: %s\n", e.Metric, value)
	}
	return bw.Flush()
}

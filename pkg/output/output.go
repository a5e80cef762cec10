package output

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/taoky/logproc/pkg/analyze"
)

// Encoder renders a report in one output format.
type Encoder interface {
	Encode(w io.Writer, r analyze.Report) error
}

type EncoderFunc func(w io.Writer, r analyze.Report) error

func (f EncoderFunc) Encode(w io.Writer, r analyze.Report) error {
	return f(w, r)
}

const DefaultFormat = "json"

var encoders = map[string]Encoder{
	"json":  EncoderFunc(EncodeJSON),
	"text":  EncoderFunc(EncodeText),
	"table": EncoderFunc(EncodeTable),
}

func Get(format string) (Encoder, error) {
	e, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return e, nil
}

func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render encodes r into memory, so that nothing is written anywhere when
// encoding fails.
func Render(e Encoder, r analyze.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Encode(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatFlag is a pflag.Value restricted to the registered formats.
type FormatFlag string

func (f FormatFlag) String() string {
	return string(f)
}

func (f *FormatFlag) Set(value string) error {
	if _, ok := encoders[value]; !ok {
		return fmt.Errorf("must be one of %q", Formats())
	}
	*f = FormatFlag(value)
	return nil
}

func (f FormatFlag) Type() string {
	return "string"
}

package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/taoky/logproc/pkg/analyze"
)

var metricDescriptions = map[analyze.Metric]string{
	analyze.MetricMostFrequentIP:  "Most frequent IP",
	analyze.MetricLeastFrequentIP: "Least frequent IP",
	analyze.MetricEventsPerSecond: "Events per second",
	analyze.MetricBytes:           "Bytes transferred",
}

func tableValue(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "-", nil
	case analyze.AddressCount:
		return fmt.Sprintf("%s (%s reqs)", v.Address, humanize.Comma(int64(v.Count))), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case uint64:
		return fmt.Sprintf("%d (%s)", v, humanize.IBytes(v)), nil
	default:
		return "", fmt.Errorf("unexpected report value %T", v)
	}
}

// EncodeTable renders the report for humans.
func EncodeTable(w io.Writer, r analyze.Report) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoWrap(tw.WrapNone),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithPadding(tw.Padding{
			Right:     "  ",
			Overwrite: true,
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
	)
	table.Header("Metric", "Description", "Value")
	for _, e := range r.Entries() {
		value, err := tableValue(e.Value)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Metric, err)
		}
		if err := table.Append([]string{string(e.Metric), metricDescriptions[e.Metric], value}); err != nil {
			return err
		}
	}
	return table.Render()
}

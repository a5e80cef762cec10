package analyze

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/taoky/logproc/pkg/fileiter"
	"github.com/taoky/logproc/pkg/filter"
	"github.com/taoky/logproc/pkg/parser"
	"github.com/taoky/logproc/pkg/util"
)

type AnalyzerConfig struct {
	Metrics     MetricSet
	Filter      filter.Filter
	LogOutput   string
	MaxLineSize util.SizeFlag
	Parser      string
	Progress    bool
}

func (c *AnalyzerConfig) InstallFlags(flags *pflag.FlagSet) {
	c.Metrics.InstallFlags(flags)
	c.Filter.InstallFlags(flags)
	flags.StringVarP(&c.LogOutput, "outlog", "o", c.LogOutput, "Change log output file")
	flags.Var(&c.MaxLineSize, "max-line", "Maximum length of a log line")
	flags.StringVarP(&c.Parser, "parser", "p", c.Parser, "Log parser (see \"logproc list parsers\")")
	flags.BoolVar(&c.Progress, "progress", c.Progress, "Show progress while reading files")
}

func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxLineSize: fileiter.DefaultMaxLineSize,
		Parser:      parser.DefaultParser,
	}
}

// Summary describes what happened to the input lines of a run.
type Summary struct {
	Files    int
	Lines    uint64
	Records  uint64
	Skipped  uint64
	Ignored  uint64
	Filtered uint64
}

// Analyzer holds all state of a single run. It is not safe for
// concurrent use and is not reused across runs.
type Analyzer struct {
	Config AnalyzerConfig

	logParser parser.Parser
	logger    *log.Logger
	logFile   *os.File
	stderr    io.Writer

	frequency *FrequencyTable
	span      SpanAccumulator
	bytes     ByteAccumulator
	summary   Summary
}

// NewAnalyzer creates an analyzer logging to stderr, or to
// Config.LogOutput when set.
func NewAnalyzer(c AnalyzerConfig, stderr io.Writer) (*Analyzer, error) {
	logParser, err := parser.GetParser(c.Parser)
	if err != nil {
		return nil, fmt.Errorf("invalid parser: %w", err)
	}

	a := &Analyzer{
		Config:    c,
		logParser: logParser,
		logger:    log.New(stderr, "", log.LstdFlags),
		stderr:    stderr,
		frequency: NewFrequencyTable(),
	}
	if err := a.OpenLogFile(); err != nil {
		return nil, fmt.Errorf("open log file error: %w", err)
	}
	return a, nil
}

// AnalyzeFiles feeds every record of paths into the accumulators. Any
// error is fatal for the run; unparseable lines are not errors.
func (a *Analyzer) AnalyzeFiles(paths []string) error {
	opts := StreamOptions{
		MaxLineSize: int(a.Config.MaxLineSize),
		OnSkip: func(pos Position, line []byte, err error) {
			a.logger.Printf("%s:%d: parse error: %v\ngot line: %q", pos.Path, pos.Line, err, line)
		},
	}
	if a.Config.Progress {
		opts.Progress = a.stderr
	}
	stream := NewStream(paths, a.logParser, opts)
	defer stream.Close()

	err := a.RunLoop(stream)

	a.summary.Files += stream.Files()
	a.summary.Lines += stream.Lines()
	a.summary.Skipped += stream.Skipped()
	a.summary.Ignored += stream.Ignored()
	return err
}

func (a *Analyzer) RunLoop(stream *Stream) error {
	for {
		item, ok := stream.Next()
		if !ok {
			break
		}
		a.handleLogItem(item)
	}
	return stream.Err()
}

func (a *Analyzer) handleLogItem(item parser.LogItem) {
	if err := a.Config.Filter.Match(item); err != nil {
		a.summary.Filtered++
		return
	}
	a.summary.Records++

	metrics := a.Config.Metrics
	if metrics.needFrequency() {
		a.frequency.Observe(item.Client)
	}
	if metrics.EventsPerSecond {
		a.span.Observe(item.Time)
	}
	if metrics.Bytes {
		a.bytes.Observe(item.Size)
	}
}

func (a *Analyzer) Report() Report {
	return BuildReport(a.Config.Metrics, Results{
		Records:   a.summary.Records,
		Frequency: a.frequency,
		Span:      &a.span,
		Bytes:     &a.bytes,
	})
}

func (a *Analyzer) Summary() Summary {
	return a.summary
}

func (a *Analyzer) PrintSummary() {
	s := a.summary
	skipped := humanize.Comma(int64(s.Skipped)) + " skipped"
	if s.Skipped > 0 {
		skipped = color.YellowString(skipped)
	}
	parts := []string{
		humanize.Comma(int64(s.Records)) + " records",
		skipped,
	}
	if s.Ignored > 0 {
		parts = append(parts, humanize.Comma(int64(s.Ignored))+" ignored")
	}
	if !a.Config.Filter.IsEmpty() {
		parts = append(parts, humanize.Comma(int64(s.Filtered))+" filtered")
	}
	a.logger.Printf("processed %s lines from %d files: %s",
		humanize.Comma(int64(s.Lines)), s.Files, strings.Join(parts, ", "))
	if a.Config.Metrics.needFrequency() {
		a.logger.Printf("%s distinct clients", humanize.Comma(int64(a.frequency.Len())))
	}
	if a.Config.Metrics.EventsPerSecond {
		if earliest, ok := a.span.Earliest(); ok {
			latest, _ := a.span.Latest()
			a.logger.Printf("time span: %s to %s (%s)",
				earliest.Format(parser.CommonLogFormat), latest.Format(parser.CommonLogFormat), latest.Sub(earliest))
		}
	}
	if a.Config.Metrics.Bytes {
		a.logger.Printf("total transferred: %s", humanize.IBytes(a.bytes.Total()))
	}
}

// Package config loads optional YAML defaults for a logproc run.
package config

import (
	"fmt"
	"os"

	"github.com/taoky/logproc/pkg/analyze"
	"github.com/taoky/logproc/pkg/output"
	"github.com/taoky/logproc/pkg/parser"
	"github.com/taoky/logproc/pkg/util"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names a config file to use when --config is not given.
const EnvConfigFile = "LOGPROC_CONFIG"

// File is the on-disk configuration. Unset fields leave the defaults
// alone.
type File struct {
	Metrics     []string `yaml:"metrics"`
	Format      *string  `yaml:"format"`
	Parser      *string  `yaml:"parser"`
	MaxLineSize *string  `yaml:"max_line_size"`
	LogOutput   *string  `yaml:"outlog"`
	Progress    *bool    `yaml:"progress"`
}

// Load reads and validates a configuration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file %q: %w", path, err)
	}
	return &f, nil
}

func (f *File) Validate() error {
	if _, err := analyze.NewMetricSet(f.metrics()...); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if f.Format != nil {
		var format output.FormatFlag
		if err := format.Set(*f.Format); err != nil {
			return fmt.Errorf("format: %w", err)
		}
	}
	if f.Parser != nil {
		if _, err := parser.GetParser(*f.Parser); err != nil {
			return fmt.Errorf("parser: %w", err)
		}
	}
	if f.MaxLineSize != nil {
		var size util.SizeFlag
		if err := size.Set(*f.MaxLineSize); err != nil {
			return fmt.Errorf("max_line_size: %w", err)
		}
	}
	return nil
}

func (f *File) metrics() []analyze.Metric {
	res := make([]analyze.Metric, 0, len(f.Metrics))
	for _, m := range f.Metrics {
		res = append(res, analyze.Metric(m))
	}
	return res
}

// Apply copies the file's settings into c and format, skipping every
// setting whose command line flag was given explicitly.
func (f *File) Apply(c *analyze.AnalyzerConfig, format *output.FormatFlag, changed func(flag string) bool) error {
	for _, m := range f.metrics() {
		if changed(string(m)) {
			continue
		}
		if err := c.Metrics.Add(m); err != nil {
			return err
		}
	}
	if f.Format != nil && !changed("format") {
		if err := format.Set(*f.Format); err != nil {
			return err
		}
	}
	if f.Parser != nil && !changed("parser") {
		c.Parser = *f.Parser
	}
	if f.MaxLineSize != nil && !changed("max-line") {
		if err := c.MaxLineSize.Set(*f.MaxLineSize); err != nil {
			return err
		}
	}
	if f.LogOutput != nil && !changed("outlog") {
		c.LogOutput = *f.LogOutput
	}
	if f.Progress != nil && !changed("progress") {
		c.Progress = *f.Progress
	}
	return nil
}

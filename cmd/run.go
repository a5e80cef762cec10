package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/taoky/logproc/pkg/analyze"
	"github.com/taoky/logproc/pkg/config"
	"github.com/taoky/logproc/pkg/output"
	"github.com/taoky/logproc/pkg/util"
)

const stdoutPath = "-"

func runWithOptions(cmd *cobra.Command, args []string, o *runOptions) error {
	configFile := o.configFile
	if configFile == "" {
		configFile = os.Getenv(config.EnvConfigFile)
	}
	if configFile != "" {
		f, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if err := f.Apply(&o.config, &o.format, cmd.Flags().Changed); err != nil {
			return err
		}
	}
	cmd.SilenceUsage = true

	inputs, outPath := args[:len(args)-1], args[len(args)-1]
	run := func() error {
		return analyzeToFile(cmd, inputs, outPath, o.config, o.format)
	}
	var err error
	if o.cpuProfile != "" {
		err = util.RunCPUProfile(o.cpuProfile, run)
	} else {
		err = run()
	}
	if err != nil {
		return err
	}
	if o.memProfile != "" {
		if err := util.MemProfile(o.memProfile); err != nil {
			return fmt.Errorf("failed to write memory profile: %w", err)
		}
	}
	return nil
}

func analyzeToFile(cmd *cobra.Command, inputs []string, outPath string, c analyze.AnalyzerConfig, format output.FormatFlag) error {
	encoder, err := output.Get(format.String())
	if err != nil {
		return err
	}
	analyzer, err := analyze.NewAnalyzer(c, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}
	defer analyzer.Close()

	if c.Metrics.IsEmpty() {
		fmt.Fprintln(cmd.ErrOrStderr(), "No metric selected, the report will be empty.")
	}
	if err := analyzer.AnalyzeFiles(inputs); err != nil {
		return err
	}
	analyzer.PrintSummary()

	data, err := output.Render(encoder, analyzer.Report())
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if outPath == stdoutPath {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := util.WriteFileAtomic(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

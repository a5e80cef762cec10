package cmd

import (
	"github.com/spf13/cobra"
	"github.com/taoky/logproc/pkg/analyze"
	"github.com/taoky/logproc/pkg/output"
)

func showHelp(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

type runOptions struct {
	config     analyze.AnalyzerConfig
	format     output.FormatFlag
	configFile string
	cpuProfile string
	memProfile string
}

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logproc [flags] <input>... <output>",
		Short: "Compute client and traffic statistics from web server access logs",
		Long: `Compute client and traffic statistics from web server access logs.

All inputs are read in order and the requested metrics are written to
<output> ("-" for stdout). Lines that cannot be parsed are skipped and
reported on stderr; an input that cannot be read fails the whole run
without writing <output>.`,
		Example: `  logproc --mfip --eps access.log access.log.1.gz report.json
  logproc --bytes --format text /var/log/nginx/access.log -`,
		Args: cobra.MinimumNArgs(2),
	}

	opts := runOptions{
		config: analyze.DefaultConfig(),
		format: output.DefaultFormat,
	}
	opts.installFlags(rootCmd)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runWithOptions(cmd, args, &opts)
	}

	rootCmd.AddCommand(
		listCmd(),
		versionCmd(),
	)
	return rootCmd
}

func (o *runOptions) installFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	o.config.InstallFlags(flags)
	flags.VarP(&o.format, "format", "f", "Output format (see \"logproc list formats\")")
	flags.StringVarP(&o.configFile, "config", "c", o.configFile, "YAML config file with default settings")
	flags.StringVar(&o.cpuProfile, "cpuprofile", o.cpuProfile, "Write CPU profile to file")
	flags.StringVar(&o.memProfile, "memprofile", o.memProfile, "Write memory profile to file")
	flags.MarkHidden("cpuprofile")
	flags.MarkHidden("memprofile")
}

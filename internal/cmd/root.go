package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/logtally/internal/logging"
	"github.com/atikulmunna/logtally/internal/output"
	"github.com/atikulmunna/logtally/internal/parser"
	"github.com/atikulmunna/logtally/internal/pipeline"
	"github.com/atikulmunna/logtally/internal/source"
)

// app carries state shared by the root command and its subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	logger  *slog.Logger
	closer  io.Closer
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	rootCmd := &cobra.Command{
		Use:   "logtally <log-file> [level]",
		Short: "Count log lines per level and list the lines of one level",
		Long: `logtally parses "YYYY-MM-DD HH:MM:SS LEVEL message" lines from a log file,
prints how many lines each level has and, when a level is given, lists the
matching lines. Lines that do not follow the format are ignored.

Examples:
  logtally app.log
  logtally app.log error
  logtally "logs/**/app-*.log" warn --message "*timeout*"
  logtally app.log --output json`,
		Args:              cobra.RangeArgs(1, 2),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		RunE:              a.runAnalyze,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: $HOME/.logtally.yaml)")
	pf.String("pattern", "", "custom line regex with named groups date, time, level, message")
	pf.BoolP("verbose", "v", false, "verbose diagnostics on stderr")
	pf.String("log-file", "", "also write diagnostics to this file (size-rotated)")

	f := rootCmd.Flags()
	f.StringP("output", "o", defaultOutput, "output format: text, json")
	f.Bool("color", true, "colorize levels when writing to a terminal")
	f.StringP("message", "m", "", "only list records whose message matches this glob")

	for _, name := range []string{"pattern", "verbose", "log-file"} {
		cobra.CheckErr(a.v.BindPFlag(name, pf.Lookup(name)))
	}
	for _, name := range []string{"output", "color", "message"} {
		cobra.CheckErr(a.v.BindPFlag(name, f.Lookup(name)))
	}

	rootCmd.AddCommand(newServeCmd(a))
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger, a.closer = logging.Setup(logging.Options{
		Verbose: cfg.Verbose,
		File:    cfg.LogFile,
		Stderr:  cmd.ErrOrStderr(),
	})
	if path := a.v.ConfigFileUsed(); path != "" {
		a.logger.Debug("loaded config", "path", path)
	}
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func (a *app) newPipeline() (*pipeline.Pipeline, error) {
	p, err := parser.NewWithPattern(a.cfg.Pattern)
	if err != nil {
		return nil, err
	}
	return pipeline.New(p, a.logger), nil
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string) error {
	pl, err := a.newPipeline()
	if err != nil {
		return err
	}

	// Nothing is printed when the source cannot be read.
	raw, err := source.Read(args[0])
	if err != nil {
		a.logger.Debug("source unreadable", "path", args[0], "err", err)
		return err
	}

	var q pipeline.Query
	if len(args) > 1 {
		q = pipeline.Query{Level: args[1], Message: a.cfg.Message}
	}

	report, err := pl.Analyze(raw, q)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var renderer output.Renderer
	switch a.cfg.Output {
	case "json":
		renderer = output.NewJSONRenderer(out)
	default:
		renderer = output.NewTextRenderer(out, a.cfg.Color)
	}

	if err := renderer.RenderCounts(report.Counts); err != nil {
		return err
	}
	if !report.HasDetails() {
		return nil
	}
	if a.cfg.Output == "text" {
		fmt.Fprintln(out)
	}
	return renderer.RenderDetails(report.Level, report.Details)
}

package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/tableauio/jsonsum"
	"github.com/tableauio/jsonsum/format"
	"github.com/tableauio/jsonsum/internal/fs"
	"github.com/tableauio/jsonsum/internal/printer"
	"github.com/tableauio/jsonsum/log"
	"github.com/tableauio/jsonsum/options"
	"github.com/tableauio/jsonsum/xerrors"
	"gopkg.in/yaml.v3"
)

var (
	key                string
	configPath         string
	outputFormat       string
	outputPath         string
	pretty             bool
	concurrency        int
	maxDepth           int
	logLevel           string
	needOutputConfTmpl bool
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	rootCmd := &cobra.Command{
		Use:     "jsonsum [FILE|DIR]...",
		Version: jsonsum.GetVersionInfo().String(),
		Short:   "Jsonsum sums the numbers stored under a key in JSON documents",
		Long: `Jsonsum sums, at any depth, the numbers that are the direct value of an
object member named KEY. Directories are searched recursively for files
with the configured extension (".json" by default).`,
		RunE:          runCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&key, "key", "k", "", "Key whose numeric values are summed")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", `Report format: text, json, or yaml.
Default is guessed from the output file extension, else text.`)
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to this file instead of stdout")
	rootCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the JSON report")
	rootCmd.Flags().IntVarP(&concurrency, "jobs", "j", 0, "Number of files summed at the same time, default is the number of CPUs")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum nesting depth of JSON values")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.Flags().BoolVarP(&needOutputConfTmpl, "output-config-template", "t", false, "Output config template")

	if err := rootCmd.Execute(); err != nil {
		logError(err)
		log.Sync()
		return 1
	}
	log.Sync()
	return 0
}

func runCmd(cmd *cobra.Command, args []string) error {
	if needOutputConfTmpl {
		return outputConfTmpl(cmd)
	}

	opts := options.NewDefault()
	if configPath != "" {
		if err := loadConf(configPath, opts); err != nil {
			return err
		}
	}
	if err := mergeFlags(cmd, opts); err != nil {
		return err
	}
	if err := log.Init(opts.Log); err != nil {
		return xerrors.Wrapf(err, "failed to init log")
	}
	log.Debugf("loaded jsonsum config: %s", spew.Sdump(opts))

	if len(args) == 0 {
		return xerrors.Errorf("no input file")
	}
	if !cmd.Flags().Changed("key") && opts.Sum.Key == "" {
		return xerrors.Errorf("no search key, set it with --key or in the config file")
	}
	paths, err := fs.CollectFiles(args, opts.Sum.Ext)
	if err != nil {
		return err
	}
	log.Debugf("collected %d file(s) from %v", len(paths), args)

	results, err := jsonsum.SumFiles(paths, opts.Sum.Key,
		jsonsum.MaxDepth(opts.Sum.MaxDepth),
		jsonsum.Concurrency(opts.Sum.Concurrency),
	)
	if err != nil {
		return err
	}
	out, err := render(newReport(opts.Sum.Key, results), opts.Output.Format, opts.Output.Pretty)
	if err != nil {
		return err
	}
	if outputPath != "" {
		if err := printer.Save(outputPath, out); err != nil {
			return xerrors.WrapKV(err, xerrors.KeyPath, outputPath)
		}
		log.Infof("report written to %s", outputPath)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// mergeFlags overrides opts with the flags set on the command line.
func mergeFlags(cmd *cobra.Command, opts *options.Options) error {
	flags := cmd.Flags()
	if flags.Changed("key") {
		opts.Sum.Key = key
	}
	if flags.Changed("jobs") {
		opts.Sum.Concurrency = concurrency
	}
	if flags.Changed("max-depth") {
		opts.Sum.MaxDepth = maxDepth
	}
	if flags.Changed("log-level") {
		opts.Log.Level = logLevel
	}
	if flags.Changed("pretty") {
		opts.Output.Pretty = pretty
	}
	name := string(opts.Output.Format)
	if flags.Changed("format") {
		name = outputFormat
	} else if outputPath != "" {
		if f := format.GetFormat(outputPath); f != format.UnknownFormat {
			name = string(f)
		}
	}
	f, err := format.Parse(name)
	if err != nil {
		return xerrors.Wrap(err)
	}
	opts.Output.Format = f
	return nil
}

func loadConf(path string, opts *options.Options) error {
	d, err := fs.ReadFile(path, nil)
	if err != nil {
		return xerrors.WrapKV(err, xerrors.KeyPath, path)
	}
	if err := yaml.Unmarshal(d, opts); err != nil {
		return xerrors.Wrapf(err, "failed to parse config %s", path)
	}
	// sections missing from the document keep their defaults
	defaults := options.NewDefault()
	if opts.Log == nil {
		opts.Log = defaults.Log
	}
	if opts.Sum == nil {
		opts.Sum = defaults.Sum
	}
	if opts.Output == nil {
		opts.Output = defaults.Output
	}
	return nil
}

func outputConfTmpl(cmd *cobra.Command) error {
	d, err := yaml.Marshal(options.NewDefault())
	if err != nil {
		return xerrors.Wrapf(err, "failed to marshal config template")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(d))
	return nil
}

func logError(err error) {
	if log.Mode() == log.ModeFull {
		log.Debugf("jsonsum failed: %+v", err)
	}
	log.Errorf("%s", xerrors.NewDesc(err).String())
}

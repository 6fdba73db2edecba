package main

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/saylorsolutions/softly/cli"
	"github.com/saylorsolutions/softly/env"
	"github.com/saylorsolutions/softly/soft"
	flag "github.com/spf13/pflag"
)

const logLevelVar = "SOFTCHECK_LOG_LEVEL"

type outputOptions struct {
	verbose bool
	noColor bool
}

func addOutputFlags(flags *flag.FlagSet) {
	flags.BoolP("verbose", "v", false, "Logs each check as it's made")
	flags.Bool("no-color", false, "Disables colored output")
}

func getOutputOptions(flags *flag.FlagSet) outputOptions {
	return outputOptions{
		verbose: cli.MustGet(flags.GetBool("verbose")),
		noColor: cli.MustGet(flags.GetBool("no-color")),
	}
}

// newLogger logs at warn level unless overridden by the environment, or the verbose flag.
func newLogger(out io.Writer, opts outputOptions) *slog.Logger {
	level := slog.LevelWarn
	if val, ok := env.Lookup(logLevelVar); ok {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(val)); err == nil {
			level = parsed
		}
	}
	if opts.verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(out, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    opts.noColor,
	}))
}

// printReport summarizes the result of running total checks.
// Errors other than a soft.AggregateError aren't printed here.
func printReport(p *cli.Printer, total int, err error, opts outputOptions) {
	var (
		pass = color.New(color.FgGreen, color.Bold)
		fail = color.New(color.FgRed, color.Bold)
	)
	if opts.noColor {
		pass.DisableColor()
		fail.DisableColor()
	}
	if err == nil {
		p.Printf("%s  %d %s passed\n", pass.Sprint("OK"), total, plural(total, "check"))
		return
	}
	agg, ok := err.(*soft.AggregateError)
	if !ok {
		return
	}
	p.Printf("%s %d of %d %s failed\n", fail.Sprint("FAIL"), agg.Len(), total, plural(total, "check"))
	for i, rec := range agg.Records() {
		p.Printf("  %d) %s\n", i+1, strings.ReplaceAll(rec.Err().Error(), "\n", "\n     "))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

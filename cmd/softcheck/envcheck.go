package main

import (
	"fmt"
	"log/slog"

	"github.com/saylorsolutions/softly/cli"
	"github.com/saylorsolutions/softly/env"
	"github.com/saylorsolutions/softly/soft"
	flag "github.com/spf13/pflag"
)

type envChecks struct {
	require   []string
	ints      []string
	floats    []string
	bools     []string
	durations []string
}

func (c envChecks) count() int {
	return len(c.require) + len(c.ints) + len(c.floats) + len(c.bools) + len(c.durations)
}

func checkKeys[T any](s *soft.Soft, log *slog.Logger, keys []string, lookup func(string) (T, error)) error {
	for _, key := range keys {
		val, err := lookup(key)
		if unrelated := s.CheckErr(err); unrelated != nil {
			return unrelated
		}
		if err == nil {
			log.Debug("Check passed", "key", key, "value", val)
		}
	}
	return nil
}

func (c envChecks) run(log *slog.Logger) error {
	return soft.Run(func(s *soft.Soft) error {
		if err := checkKeys(s, log, c.require, env.Require); err != nil {
			return err
		}
		if err := checkKeys(s, log, c.ints, env.RequireInt); err != nil {
			return err
		}
		if err := checkKeys(s, log, c.floats, env.RequireFloat); err != nil {
			return err
		}
		if err := checkKeys(s, log, c.bools, env.RequireBool); err != nil {
			return err
		}
		return checkKeys(s, log, c.durations, env.RequireDuration)
	}, soft.WithLogger(log))
}

func addEnvCommand(set *cli.CommandSet) {
	cmd := set.AddCommand("env", "Checks that environment variables are set and well-formed", "e")
	flags := cmd.Flags()
	flags.StringSliceP("require", "r", nil, "Variables that must be set")
	flags.StringSlice("int", nil, "Variables that must be integers")
	flags.StringSlice("float", nil, "Variables that must be numbers")
	flags.StringSlice("bool", nil, "Variables that must be booleans")
	flags.StringSlice("duration", nil, "Variables that must be durations, like '5s'")
	flags.StringSlice("dotenv", nil, "Dotenv files to load before checking. Variables that are already set are not overridden")
	addOutputFlags(flags)
	cmd.Usage("[FLAGS]")
	cmd.Does(func(flags *flag.FlagSet, p *cli.Printer) error {
		opts := getOutputOptions(flags)
		checks := envChecks{
			require:   cli.MustGet(flags.GetStringSlice("require")),
			ints:      cli.MustGet(flags.GetStringSlice("int")),
			floats:    cli.MustGet(flags.GetStringSlice("float")),
			bools:     cli.MustGet(flags.GetStringSlice("bool")),
			durations: cli.MustGet(flags.GetStringSlice("duration")),
		}
		if checks.count() == 0 {
			return cli.NewUsageError("no variables to check")
		}
		if dotenv := cli.MustGet(flags.GetStringSlice("dotenv")); len(dotenv) > 0 {
			if err := env.LoadFiles(dotenv...); err != nil {
				return fmt.Errorf("failed to load dotenv files: %w", err)
			}
		}
		err := checks.run(newLogger(p, opts))
		printReport(p, checks.count(), err, opts)
		return err
	})
}

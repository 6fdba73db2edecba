package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/saylorsolutions/softly/assert"
	"github.com/saylorsolutions/softly/cli"
	"github.com/saylorsolutions/softly/soft"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type yamlChecks struct {
	require  []string
	nonEmpty []string
}

func (c yamlChecks) count() int {
	return len(c.require) + len(c.nonEmpty)
}

// run loads the document at path and checks it.
// A document that can't be read or parsed fails the whole run without recording anything.
func (c yamlChecks) run(path string, log *slog.Logger) error {
	return soft.Run(func(s *soft.Soft) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse document '%s': %w", path, err)
		}
		for _, key := range c.require {
			if _, ok := lookupPath(&doc, key); !ok {
				s.Report(assert.Failf("%s: missing key '%s'", path, key))
				continue
			}
			log.Debug("Check passed", "file", path, "key", key)
		}
		for _, key := range c.nonEmpty {
			node, ok := lookupPath(&doc, key)
			switch {
			case !ok:
				s.Report(assert.Failf("%s: missing key '%s'", path, key))
			case isEmptyNode(node):
				s.Report(assert.Failf("%s: key '%s' is empty", path, key))
			default:
				log.Debug("Check passed", "file", path, "key", key)
			}
		}
		return nil
	}, soft.WithLogger(log))
}

// lookupPath finds the node at a dot separated path of mapping keys and sequence indexes.
func lookupPath(doc *yaml.Node, path string) (*yaml.Node, bool) {
	node := resolve(doc)
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, false
		}
		node = resolve(node.Content[0])
	}
	for _, seg := range strings.Split(path, ".") {
		var next *yaml.Node
		switch node.Kind {
		case yaml.MappingNode:
			for i := 0; i+1 < len(node.Content); i += 2 {
				if node.Content[i].Value == seg {
					next = node.Content[i+1]
					break
				}
			}
		case yaml.SequenceNode:
			idx, err := strconv.Atoi(seg)
			if err == nil && idx >= 0 && idx < len(node.Content) {
				next = node.Content[idx]
			}
		}
		if next == nil {
			return nil, false
		}
		node = resolve(next)
	}
	return node, true
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isEmptyNode(node *yaml.Node) bool {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Tag == "!!null" || len(strings.TrimSpace(node.Value)) == 0
	case yaml.MappingNode, yaml.SequenceNode:
		return len(node.Content) == 0
	default:
		return false
	}
}

func addYAMLCommand(set *cli.CommandSet) {
	cmd := set.AddCommand("yaml", "Checks that keys in a YAML document are present and populated", "y")
	flags := cmd.Flags()
	flags.StringSliceP("require", "r", nil, "Dot separated key paths that must be present, like 'server.port' or 'hosts.0'")
	flags.StringSlice("non-empty", nil, "Dot separated key paths that must be present and not empty")
	addOutputFlags(flags)
	cmd.Usage("[FLAGS] FILE")
	cmd.Does(func(flags *flag.FlagSet, p *cli.Printer) error {
		var path string
		if err := cli.MapArgs(flags.Args(), 1, &path); err != nil {
			return err
		}
		opts := getOutputOptions(flags)
		checks := yamlChecks{
			require:  cli.MustGet(flags.GetStringSlice("require")),
			nonEmpty: cli.MustGet(flags.GetStringSlice("non-empty")),
		}
		if checks.count() == 0 {
			return cli.NewUsageError("no keys to check")
		}
		err := checks.run(path, newLogger(p, opts))
		printReport(p, checks.count(), err, opts)
		return err
	})
}

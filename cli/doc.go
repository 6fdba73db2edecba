/*
Package cli provides an opinionated package for how a CLI with sub-commands can be structured.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - This package uses [pflag] for posix style flags.
  - Flags should NOT be interspersed by default. This makes flag and argument parsing much more consistent and predictable, but can be overridden.
  - Global flags are often confusing and not necessary. Flags apply to the command at hand, while global state may be configured through other means.
  - Sub-command aliases are often very convenient, so they're supported as additional, optional parameters to [CommandSet.AddCommand].

# Invocation

Invoking a CLI with sub-commands can always follow this form:

	CLI_NAME [SUB-COMMAND...] [FLAGS...] [ARGS...]

This consistency helps to build muscle memory for frequent CLI use, and a predictable user experience.
Just calling CLI_NAME will print usage information for the tool.

# Usage by default

Usage information can be incredibly helpful for understanding a tool's purpose and expectations.
That's why the '-h' and '--help' flags are set up by default, with input from the developer with the [Command.Usage] method.

Flag usage and sub-command usage is included in a usage template along with developer-provided usage information.
The same information is printed when a [Command] returns a [UsageError].

To display usage information from the root [CommandSet]'s perspective, use [CommandSet.RespondUsage].
This method will return true if the user requested root command usage.

# Exit codes

[ExitCode] maps the result of [CommandSet.Exec] to a process exit code.
Checks that ran and failed, reported as a [*soft.AggregateError], get their own exit code, distinct from usage errors and unexpected failures.

[pflag]: https://github.com/spf13/pflag
*/
package cli

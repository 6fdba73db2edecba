// Command softcheck checks many conditions in one pass and reports every violation at once, rather than stopping at the first.
package main

import (
	"os"

	"github.com/saylorsolutions/softly/cli"
)

func main() {
	set := newCommandSet()
	if set.RespondUsage("Checks many conditions in one pass, and reports every violation at once.") {
		return
	}
	err := set.Exec(os.Args[1:])
	code := cli.ExitCode(err)
	if code == cli.ExitError {
		set.Printer().Println("Error:", err)
	}
	os.Exit(code)
}

func newCommandSet() *cli.CommandSet {
	set := cli.NewCommandSet("softcheck")
	addEnvCommand(set)
	addYAMLCommand(set)
	return set
}

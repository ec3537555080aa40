// Command nacmd is a command-line host for the nacm access-control engine:
// it evaluates single RPC, write, and read requests against a policy
// document and a data tree supplied on disk, and validates policy
// documents before they are deployed.
package main

import (
	"fmt"
	"os"

	"github.com/oba-ldap/nacm/cmd/nacmd/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

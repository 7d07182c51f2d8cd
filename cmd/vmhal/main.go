// cmd/vmhal/main.go
//
// Host-side exerciser for the HAL dispatch layer: loads a board table
// (builtin or YAML), registers the LED and capability handlers against a
// simulated driver, and issues SYS calls from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	BoardFile string // empty = builtin dev board
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "vmhal",
		Short: "Exercise the VM hardware-abstraction layer on the host",
		Long: `vmhal builds a device descriptor table, registers the LED and
capability SYS handlers over a simulated driver, and dispatches
operations the way the bytecode interpreter would.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.BoardFile, "board", "", "board definition YAML (default: builtin dev board)")

	cmd.AddCommand(newDevicesCommand(opts))
	cmd.AddCommand(newInvokeCommand(opts))
	cmd.AddCommand(newLEDCommand(opts))
	cmd.AddCommand(newBlinkCommand(opts))
	cmd.AddCommand(newMonitorCommand(opts))

	return cmd
}

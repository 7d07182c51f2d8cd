package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"vmhal-go/sys"
	"vmhal-go/sys/led"
	"vmhal-go/types"
)

func newMonitorCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Interactive console against one live session",
		Long: `monitor keeps a single session alive and reads commands line by
line, so LED state persists between operations:

  devices
  led on user 1
  led get user 1
  cap count led
  invoke 0x0100 1 1 0
  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			return runMonitor(s, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runMonitor(s *session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		words, err := shlex.Split(sc.Text())
		if err != nil {
			fmt.Fprintln(out, "parse error:", err)
			fmt.Fprint(out, "> ")
			continue
		}
		if len(words) == 0 {
			fmt.Fprint(out, "> ")
			continue
		}
		if words[0] == "quit" || words[0] == "exit" {
			return nil
		}
		if err := monitorEval(s, words, out); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
		fmt.Fprint(out, "> ")
	}
	return sc.Err()
}

func monitorEval(s *session, words []string, out io.Writer) error {
	switch words[0] {
	case "devices":
		for _, d := range s.table.All() {
			fmt.Fprintln(out, formatDescriptor(d))
		}
		return nil

	case "led":
		if len(words) < 3 {
			return fmt.Errorf("usage: led <on|off|toggle|get|set> <role> [index] [state]")
		}
		role, index, err := parseDevice(words[2:])
		if err != nil {
			return err
		}
		kind := int32(types.KindLED)
		var res int32
		switch words[1] {
		case "on":
			res = s.reg.Invoke(sys.OpLEDOn, kind, int32(role), int32(index))
		case "off":
			res = s.reg.Invoke(sys.OpLEDOff, kind, int32(role), int32(index))
		case "toggle":
			res = s.reg.Invoke(sys.OpLEDToggle, kind, int32(role), int32(index))
		case "get":
			res = s.reg.Invoke(sys.OpLEDGet, kind, int32(role), int32(index))
		case "set":
			if len(words) < 5 {
				return fmt.Errorf("usage: led set <role> <index> <state>")
			}
			state, err := parseInt32(words[4])
			if err != nil {
				return err
			}
			res = s.reg.Invoke(sys.OpLEDSet, kind, int32(role), led.PackSet(index, state != 0))
		default:
			return fmt.Errorf("unknown led verb %q", words[1])
		}
		fmt.Fprintln(out, res)
		return nil

	case "cap":
		if len(words) < 3 {
			return fmt.Errorf("usage: cap <count|exists|flags|handle> <kind> [role] [index]")
		}
		kind, ok := types.KindByName(words[2])
		if !ok {
			return fmt.Errorf("unknown kind %q", words[2])
		}
		var role types.Role
		var index uint8
		if len(words) > 3 {
			var err error
			role, index, err = parseDevice(words[3:])
			if err != nil {
				return err
			}
		}
		var op uint16
		switch words[1] {
		case "count":
			op = sys.OpCapCount
		case "exists":
			op = sys.OpCapExists
		case "flags":
			op = sys.OpCapFlags
		case "handle":
			op = sys.OpCapHandle
		default:
			return fmt.Errorf("unknown cap verb %q", words[1])
		}
		fmt.Fprintln(out, s.reg.Invoke(op, int32(kind), int32(role), int32(index)))
		return nil

	case "invoke":
		if len(words) != 5 {
			return fmt.Errorf("usage: invoke <op> <arg0> <arg1> <arg2>")
		}
		var vals [4]int32
		for i, w := range words[1:] {
			v, err := parseInt32(w)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i, err)
			}
			vals[i] = v
		}
		fmt.Fprintln(out, s.reg.Invoke(uint16(vals[0]), vals[1], vals[2], vals[3]))
		return nil

	case "help":
		fmt.Fprintln(out, strings.TrimSpace(`
devices
led <on|off|toggle|get|set> <role> [index] [state]
cap <count|exists|flags|handle> <kind> [role] [index]
invoke <op> <arg0> <arg1> <arg2>
quit`))
		return nil

	default:
		return fmt.Errorf("unknown command %q (try help)", words[0])
	}
}

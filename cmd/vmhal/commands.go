package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vmhal-go/sys"
	"vmhal-go/sys/led"
	"vmhal-go/types"
	"vmhal-go/x/mathx"
)

func newDevicesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List the installed descriptor table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			for _, d := range s.table.All() {
				fmt.Fprintln(cmd.OutOrStdout(), formatDescriptor(d))
			}
			return nil
		},
	}
}

func newInvokeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <op> <arg0> <arg1> <arg2>",
		Short: "Dispatch a raw SYS call",
		Long: `Dispatch a raw SYS call through the registry. The opcode and
arguments accept 0x-prefixed hex. A result of -1 means no handler is
registered for the opcode.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			var vals [4]int32
			for i, a := range args {
				v, err := parseInt32(a)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i, err)
				}
				vals[i] = v
			}
			res := s.reg.Invoke(uint16(vals[0]), vals[1], vals[2], vals[3])
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newLEDCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "led <on|off|toggle|get|set> <role> [index] [state]",
		Short: "Drive an LED through the SYS handlers",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			verb := args[0]
			role, index, err := parseDevice(args[1:])
			if err != nil {
				return err
			}

			kind := int32(types.KindLED)
			var res int32
			switch verb {
			case "on":
				res = s.reg.Invoke(sys.OpLEDOn, kind, int32(role), int32(index))
			case "off":
				res = s.reg.Invoke(sys.OpLEDOff, kind, int32(role), int32(index))
			case "toggle":
				res = s.reg.Invoke(sys.OpLEDToggle, kind, int32(role), int32(index))
			case "get":
				res = s.reg.Invoke(sys.OpLEDGet, kind, int32(role), int32(index))
			case "set":
				if len(args) < 4 {
					return fmt.Errorf("set needs <role> <index> <state>")
				}
				state, err := parseInt32(args[3])
				if err != nil {
					return err
				}
				res = s.reg.Invoke(sys.OpLEDSet, kind, int32(role), led.PackSet(index, state != 0))
			default:
				return fmt.Errorf("unknown verb %q", verb)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	return cmd
}

func newBlinkCommand(opts *rootOptions) *cobra.Command {
	var (
		count    int
		periodMS int
	)
	cmd := &cobra.Command{
		Use:   "blink <role> [index]",
		Short: "Blink an LED via repeated TOGGLE calls",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			role, index, err := parseDevice(args)
			if err != nil {
				return err
			}

			period := time.Duration(mathx.Clamp(periodMS, 10, 5000)) * time.Millisecond
			n := mathx.Clamp(count, 1, 100)
			for i := 0; i < n*2; i++ {
				res := s.reg.Invoke(sys.OpLEDToggle, int32(types.KindLED), int32(role), int32(index))
				if res != 1 {
					return fmt.Errorf("toggle failed (result %d)", res)
				}
				d, _ := s.table.Find(types.KindLED, role, index)
				fmt.Fprintf(cmd.OutOrStdout(), "handle %d physical=%v\n", d.Handle, s.leds.Physical(d.Handle))
				time.Sleep(period / 2)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of blinks")
	cmd.Flags().IntVar(&periodMS, "period", 200, "blink period in milliseconds")
	return cmd
}

package main

import (
	"fmt"
	"strconv"

	"vmhal-go/config"
	"vmhal-go/ddt"
	"vmhal-go/platform"
	"vmhal-go/sys"
	"vmhal-go/sys/caps"
	"vmhal-go/sys/led"
	"vmhal-go/types"
)

// session is one assembled interpreter context: table, registry and the
// simulated LED driver, wired exactly as startup on a real target would.
type session struct {
	table *ddt.Table
	reg   *sys.Registry
	leds  *platform.SimLEDs
}

func newSession(opts *rootOptions) (*session, error) {
	s := &session{
		table: &ddt.Table{},
		reg:   sys.NewRegistry(),
		leds:  platform.NewSimLEDs(),
	}

	if opts.BoardFile != "" {
		_, devs, err := config.Load(opts.BoardFile)
		if err != nil {
			return nil, err
		}
		s.table.Install(ddt.Static(devs))
	} else {
		s.table.Install(platform.DevBoard)
	}

	led.NewOps(s.table, s.leds).Register(s.reg)
	caps.NewOps(s.table, platform.PlatformHost).Register(s.reg)
	return s, nil
}

// parseDevice resolves "<role> [index]" style arguments for LED commands.
func parseDevice(args []string) (types.Role, uint8, error) {
	role, ok := types.RoleByName(args[0])
	if !ok {
		return 0, 0, fmt.Errorf("unknown role %q", args[0])
	}
	var index uint8
	if len(args) > 1 {
		n, err := strconv.ParseUint(args[1], 0, 8)
		if err != nil {
			return 0, 0, fmt.Errorf("bad index %q: %w", args[1], err)
		}
		index = uint8(n)
	}
	return role, index, nil
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

func formatDescriptor(d types.Descriptor) string {
	pol := "active-high"
	if d.ActiveLow() {
		pol = "active-low"
	}
	return fmt.Sprintf("%-8s %-8s idx=%d handle=%d %s", d.Kind, d.Role, d.Index, d.Handle, pol)
}

// Package led implements the LED operation handlers. It is the reference
// consumer of the descriptor table and the dispatch registry: argument
// layout, active-low handling and failure encoding here are the pattern
// every other device-kind handler set follows.
package led

import (
	"vmhal-go/ddt"
	"vmhal-go/sys"
	"vmhal-go/types"
)

// Driver is the platform LED capability. The activeLow argument carries
// the descriptor's polarity flag; the driver applies the inversion exactly
// once, so handlers never pre-invert state.
type Driver interface {
	// Set drives the LED to the logical state. Reports success.
	Set(handle uint32, state, activeLow bool) bool
	// Get reads back the logical state.
	Get(handle uint32, activeLow bool) bool
}

// Ops binds the five LED handlers to a descriptor table and a driver.
// Both are supplied at construction; either missing makes every handler
// report failure (0) without side effects.
type Ops struct {
	table *ddt.Table
	drv   Driver
}

// NewOps returns LED handlers over table and drv.
func NewOps(table *ddt.Table, drv Driver) *Ops {
	return &Ops{table: table, drv: drv}
}

// Register installs the handlers under their fixed operation codes.
func (o *Ops) Register(reg *sys.Registry) {
	reg.Register(sys.OpLEDOn, o.on)
	reg.Register(sys.OpLEDOff, o.off)
	reg.Register(sys.OpLEDToggle, o.toggle)
	reg.Register(sys.OpLEDSet, o.set)
	reg.Register(sys.OpLEDGet, o.get)
}

// PackSet builds the third argument of the SET operation. The dispatch
// signature carries three integers but SET logically needs four values
// (kind, role, index, state), so index rides in bits 16-23 and the state
// in bits 0-15. Future four-argument operations must adopt the same
// packing or the signature has to widen.
func PackSet(index uint8, on bool) int32 {
	v := int32(index) << 16
	if on {
		v |= 1
	}
	return v
}

// findLED rejects cross-kind misuse (an LED opcode aimed at a button, say)
// before resolving through the table.
func (o *Ops) findLED(kind, role, index int32) (types.Descriptor, bool) {
	if kind != int32(types.KindLED) {
		return types.Descriptor{}, false
	}
	return o.table.Find(types.Kind(kind), types.Role(role), uint8(index))
}

// Handlers. All report 0 on any unresolved precondition: no driver, wrong
// kind, device not found, driver failure. That is the same value as a
// successful OFF/false result; the single-result convention does not
// distinguish the two.

func (o *Ops) on(_ uint16, arg0, arg1, arg2 int32) int32 {
	return o.setLogical(arg0, arg1, arg2, true)
}

func (o *Ops) off(_ uint16, arg0, arg1, arg2 int32) int32 {
	return o.setLogical(arg0, arg1, arg2, false)
}

func (o *Ops) setLogical(kind, role, index int32, state bool) int32 {
	if o.drv == nil {
		return 0
	}
	d, ok := o.findLED(kind, role, index)
	if !ok {
		return 0
	}
	if !o.drv.Set(d.Handle, state, d.ActiveLow()) {
		return 0
	}
	return 1
}

func (o *Ops) toggle(_ uint16, arg0, arg1, arg2 int32) int32 {
	if o.drv == nil {
		return 0
	}
	d, ok := o.findLED(arg0, arg1, arg2)
	if !ok {
		return 0
	}
	cur := o.drv.Get(d.Handle, d.ActiveLow())
	if !o.drv.Set(d.Handle, !cur, d.ActiveLow()) {
		return 0
	}
	return 1
}

func (o *Ops) set(_ uint16, arg0, arg1, arg2 int32) int32 {
	index := (arg2 >> 16) & 0xFF
	state := arg2&0xFFFF != 0
	return o.setLogical(arg0, arg1, index, state)
}

func (o *Ops) get(_ uint16, arg0, arg1, arg2 int32) int32 {
	if o.drv == nil {
		return 0
	}
	d, ok := o.findLED(arg0, arg1, arg2)
	if !ok {
		// Indistinguishable from "found but off" at the wire level.
		return 0
	}
	if o.drv.Get(d.Handle, d.ActiveLow()) {
		return 1
	}
	return 0
}

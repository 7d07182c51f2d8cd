package platform

import (
	"sync"

	"tinygo.org/x/drivers"
)

// ExpanderLEDs drives LEDs hanging off a PCF8574-class 8-bit I2C GPIO
// expander. The descriptor handle selects the expander bit (0..7). A
// shadow register avoids read-modify-write on every Set; the device has
// quasi-bidirectional pins, so reads go straight to the port.
type ExpanderLEDs struct {
	mu     sync.Mutex
	bus    drivers.I2C
	addr   uint16
	shadow uint8
}

// NewExpanderLEDs returns a driver over bus at the expander's 7-bit
// address. All outputs start low.
func NewExpanderLEDs(bus drivers.I2C, addr uint16) *ExpanderLEDs {
	return &ExpanderLEDs{bus: bus, addr: addr}
}

func (e *ExpanderLEDs) Set(handle uint32, state, activeLow bool) bool {
	if handle > 7 {
		return false
	}
	physical := state
	if activeLow {
		physical = !physical
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if physical {
		e.shadow |= 1 << handle
	} else {
		e.shadow &^= 1 << handle
	}
	return e.bus.Tx(e.addr, []byte{e.shadow}, nil) == nil
}

func (e *ExpanderLEDs) Get(handle uint32, activeLow bool) bool {
	if handle > 7 {
		return false
	}
	var buf [1]byte
	e.mu.Lock()
	err := e.bus.Tx(e.addr, nil, buf[:])
	e.mu.Unlock()
	if err != nil {
		return false
	}
	physical := buf[0]&(1<<handle) != 0
	if activeLow {
		return !physical
	}
	return physical
}

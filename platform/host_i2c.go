package platform

import "sync"

// HostI2C is an inert I2C bus for host-side tests. Writes land in Port
// (an 8-bit latch, enough to stand in for a PCF8574) and reads return it.
type HostI2C struct {
	mu     sync.Mutex
	Port   byte
	LastTx struct {
		Addr uint16
		W    []byte
		Rn   int
	}
	Err error // returned from every Tx when set
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastTx.Addr = addr
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	if h.Err != nil {
		return h.Err
	}
	if len(w) > 0 {
		h.Port = w[len(w)-1]
	}
	for i := range r {
		r[i] = h.Port
	}
	return nil
}

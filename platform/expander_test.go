package platform

import (
	"errors"
	"testing"
)

func TestExpanderSet(t *testing.T) {
	bus := &HostI2C{}
	e := NewExpanderLEDs(bus, ExpanderAddr)

	if !e.Set(0, true, false) {
		t.Fatal("Set failed")
	}
	if bus.Port != 0b0000_0001 {
		t.Errorf("port = %#08b, want bit 0 set", bus.Port)
	}
	if bus.LastTx.Addr != ExpanderAddr {
		t.Errorf("addr = %#x, want %#x", bus.LastTx.Addr, ExpanderAddr)
	}

	// Second LED on bit 3; shadow keeps bit 0 intact.
	if !e.Set(3, true, false) {
		t.Fatal("Set failed")
	}
	if bus.Port != 0b0000_1001 {
		t.Errorf("port = %#08b, want bits 0 and 3", bus.Port)
	}

	if !e.Set(0, false, false) {
		t.Fatal("Set failed")
	}
	if bus.Port != 0b0000_1000 {
		t.Errorf("port = %#08b, want only bit 3", bus.Port)
	}
}

func TestExpanderActiveLow(t *testing.T) {
	bus := &HostI2C{}
	e := NewExpanderLEDs(bus, ExpanderAddr)

	if !e.Set(2, true, true) {
		t.Fatal("Set failed")
	}
	// Logical ON drives the pin low; bit stays clear.
	if bus.Port&(1<<2) != 0 {
		t.Errorf("port = %#08b, want bit 2 clear", bus.Port)
	}
	if !e.Get(2, true) {
		t.Error("Get should report logical ON")
	}

	if !e.Set(2, false, true) {
		t.Fatal("Set failed")
	}
	if bus.Port&(1<<2) == 0 {
		t.Errorf("port = %#08b, want bit 2 set", bus.Port)
	}
	if e.Get(2, true) {
		t.Error("Get should report logical OFF")
	}
}

func TestExpanderBounds(t *testing.T) {
	e := NewExpanderLEDs(&HostI2C{}, ExpanderAddr)
	if e.Set(8, true, false) {
		t.Error("bit 8 is outside an 8-bit expander")
	}
	if e.Get(8, false) {
		t.Error("Get outside the port should fail closed")
	}
}

func TestExpanderBusError(t *testing.T) {
	bus := &HostI2C{Err: errors.New("nak")}
	e := NewExpanderLEDs(bus, ExpanderAddr)
	if e.Set(0, true, false) {
		t.Error("Set should report bus failure")
	}
	if e.Get(0, false) {
		t.Error("Get should report bus failure as off")
	}
}

func TestSimLEDs(t *testing.T) {
	s := NewSimLEDs()

	if !s.Set(7, true, false) {
		t.Fatal("Set failed")
	}
	if !s.Physical(7) || !s.Get(7, false) {
		t.Error("active-high: physical and logical should both be on")
	}

	if !s.Set(10, true, true) {
		t.Fatal("Set failed")
	}
	if s.Physical(10) {
		t.Error("active-low: logical ON should record physical LOW")
	}
	if !s.Get(10, true) {
		t.Error("active-low: Get should report logical ON")
	}

	s.FailNextSet()
	if s.Set(7, false, false) {
		t.Error("injected failure ignored")
	}
	if !s.Physical(7) {
		t.Error("failed Set must not change state")
	}
	if !s.Set(7, false, false) {
		t.Error("failure should only affect one Set")
	}
}

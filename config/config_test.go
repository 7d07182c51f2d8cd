package config

import (
	"errors"
	"testing"

	"vmhal-go/ddt"
	"vmhal-go/errcode"
	"vmhal-go/types"
)

const devBoardYAML = `
name: devboard
devices:
  - kind: led
    role: status
    handle: 7
  - kind: led
    role: user
    handle: 8
  - kind: led
    role: user
    index: 1
    handle: 10
    active_low: true
  - kind: button
    role: user
    handle: 9
    active_low: true
  - kind: uart
    role: console
    handle: 0
`

func TestParse(t *testing.T) {
	board, devs, err := Parse([]byte(devBoardYAML))
	if err != nil {
		t.Fatal(err)
	}
	if board.Name != "devboard" {
		t.Errorf("name = %q", board.Name)
	}
	if len(devs) != 5 {
		t.Fatalf("resolved %d devices, want 5", len(devs))
	}

	want := types.Descriptor{
		Kind: types.KindLED, Role: types.RoleUser, Index: 1,
		Flags: types.FlagActiveLow, Handle: 10,
	}
	if devs[2] != want {
		t.Errorf("device 2 = %+v, want %+v", devs[2], want)
	}
}

func TestParseIntoTable(t *testing.T) {
	board, _, err := Parse([]byte(devBoardYAML))
	if err != nil {
		t.Fatal(err)
	}
	p, err := board.Provider()
	if err != nil {
		t.Fatal(err)
	}

	tbl := &ddt.Table{}
	tbl.Install(p)
	if got := tbl.Count(types.KindLED); got != 3 {
		t.Errorf("Count(led) = %d, want 3", got)
	}
	d, ok := tbl.FindDefault(types.KindButton, types.RoleUser)
	if !ok || d.Handle != 9 || !d.ActiveLow() {
		t.Errorf("button lookup = %+v, %v", d, ok)
	}
}

func TestUnknownKind(t *testing.T) {
	_, _, err := Parse([]byte("devices:\n  - kind: laser\n    role: user\n"))
	if errcode.Of(err) != errcode.UnknownKind {
		t.Errorf("err = %v, want unknown_kind", err)
	}
}

func TestUnknownRole(t *testing.T) {
	_, _, err := Parse([]byte("devices:\n  - kind: led\n    role: boss\n"))
	if errcode.Of(err) != errcode.UnknownRole {
		t.Errorf("err = %v, want unknown_role", err)
	}
}

func TestDuplicateDevice(t *testing.T) {
	const dup = `
devices:
  - kind: led
    role: status
    handle: 7
  - kind: led
    role: status
    handle: 8
`
	_, _, err := Parse([]byte(dup))
	var e *errcode.E
	if !errors.As(err, &e) || e.Code() != errcode.DuplicateDevice {
		t.Errorf("err = %v, want duplicate_device", err)
	}
}

func TestBadYAML(t *testing.T) {
	if _, _, err := Parse([]byte("devices: [")); err == nil {
		t.Error("expected parse error")
	}
}

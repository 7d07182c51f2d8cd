package caps

import (
	"testing"

	"vmhal-go/ddt"
	"vmhal-go/sys"
	"vmhal-go/types"
)

var capBoard = ddt.Static{
	{Kind: types.KindLED, Role: types.RoleStatus, Index: 0, Handle: 7},
	{Kind: types.KindLED, Role: types.RoleUser, Index: 1, Flags: types.FlagActiveLow, Handle: 10},
	{Kind: types.KindButton, Role: types.RoleUser, Index: 0, Flags: types.FlagActiveLow, Handle: 9},
}

const testPlatform int32 = 42

func newFixture() *sys.Registry {
	tbl := &ddt.Table{}
	tbl.Install(capBoard)
	reg := sys.NewRegistry()
	NewOps(tbl, testPlatform).Register(reg)
	return reg
}

func TestCapCount(t *testing.T) {
	reg := newFixture()
	if got := reg.Invoke(sys.OpCapCount, int32(types.KindLED), 0, 0); got != 2 {
		t.Errorf("count(led) = %d, want 2", got)
	}
	if got := reg.Invoke(sys.OpCapCount, int32(types.KindSPI), 0, 0); got != 0 {
		t.Errorf("count(spi) = %d, want 0", got)
	}
}

func TestCapExists(t *testing.T) {
	reg := newFixture()
	if got := reg.Invoke(sys.OpCapExists, int32(types.KindButton), int32(types.RoleUser), 0); got != 1 {
		t.Errorf("exists(button/user/0) = %d, want 1", got)
	}
	if got := reg.Invoke(sys.OpCapExists, int32(types.KindButton), int32(types.RoleUser), 1); got != 0 {
		t.Errorf("exists(button/user/1) = %d, want 0", got)
	}
}

func TestCapFlagsAndHandle(t *testing.T) {
	reg := newFixture()
	if got := reg.Invoke(sys.OpCapFlags, int32(types.KindLED), int32(types.RoleUser), 1); got != int32(types.FlagActiveLow) {
		t.Errorf("flags = %d, want %d", got, types.FlagActiveLow)
	}
	if got := reg.Invoke(sys.OpCapHandle, int32(types.KindLED), int32(types.RoleUser), 1); got != 10 {
		t.Errorf("handle = %d, want 10", got)
	}

	// Misses share the falsy channel with "zero flags/handle".
	if got := reg.Invoke(sys.OpCapFlags, int32(types.KindLED), int32(types.RoleDebug), 0); got != 0 {
		t.Errorf("flags on miss = %d, want 0", got)
	}
	if got := reg.Invoke(sys.OpCapHandle, int32(types.KindLED), int32(types.RoleDebug), 0); got != 0 {
		t.Errorf("handle on miss = %d, want 0", got)
	}
}

func TestSysVersion(t *testing.T) {
	reg := newFixture()
	want := int32(VersionMajor<<16 | VersionMinor<<8 | VersionPatch)
	if got := reg.Invoke(sys.OpSysVersion, 0, 0, 0); got != want {
		t.Errorf("version = %#x, want %#x", got, want)
	}
}

func TestSysPlatform(t *testing.T) {
	reg := newFixture()
	if got := reg.Invoke(sys.OpSysPlatform, 0, 0, 0); got != testPlatform {
		t.Errorf("platform = %d, want %d", got, testPlatform)
	}
}

func TestEmptyTable(t *testing.T) {
	reg := sys.NewRegistry()
	NewOps(&ddt.Table{}, 0).Register(reg)

	if got := reg.Invoke(sys.OpCapCount, int32(types.KindLED), 0, 0); got != 0 {
		t.Errorf("count without provider = %d, want 0", got)
	}
	if got := reg.Invoke(sys.OpCapExists, int32(types.KindLED), int32(types.RoleStatus), 0); got != 0 {
		t.Errorf("exists without provider = %d, want 0", got)
	}
}

// Package caps implements the capability query handlers (band 0x0F00):
// introspection over the descriptor table plus version/platform identity.
// Unlike device bands they need no platform driver.
package caps

import (
	"vmhal-go/ddt"
	"vmhal-go/sys"
	"vmhal-go/types"
)

// Version identifies the HAL contract implemented by this build.
const (
	VersionMajor = 0
	VersionMinor = 3
	VersionPatch = 0
)

// Ops binds the capability handlers to a descriptor table.
type Ops struct {
	table    *ddt.Table
	platform int32 // platform id reported by OpSysPlatform
}

// NewOps returns capability handlers over table. The platform id is a
// build-time constant chosen by the embedding platform.
func NewOps(table *ddt.Table, platform int32) *Ops {
	return &Ops{table: table, platform: platform}
}

// Register installs the handlers under their fixed operation codes.
func (o *Ops) Register(reg *sys.Registry) {
	reg.Register(sys.OpCapCount, o.count)
	reg.Register(sys.OpCapExists, o.exists)
	reg.Register(sys.OpCapFlags, o.flags)
	reg.Register(sys.OpCapHandle, o.handle)
	reg.Register(sys.OpSysVersion, o.version)
	reg.Register(sys.OpSysPlatform, o.platformID)
}

func (o *Ops) count(_ uint16, arg0, _, _ int32) int32 {
	return int32(o.table.Count(types.Kind(arg0)))
}

func (o *Ops) exists(_ uint16, arg0, arg1, arg2 int32) int32 {
	if _, ok := o.table.Find(types.Kind(arg0), types.Role(arg1), uint8(arg2)); ok {
		return 1
	}
	return 0
}

// flags and handle share the falsy failure channel of the device bands:
// 0 means "not found" as well as "found with zero flags/handle".

func (o *Ops) flags(_ uint16, arg0, arg1, arg2 int32) int32 {
	d, ok := o.table.Find(types.Kind(arg0), types.Role(arg1), uint8(arg2))
	if !ok {
		return 0
	}
	return int32(d.Flags)
}

func (o *Ops) handle(_ uint16, arg0, arg1, arg2 int32) int32 {
	d, ok := o.table.Find(types.Kind(arg0), types.Role(arg1), uint8(arg2))
	if !ok {
		return 0
	}
	return int32(d.Handle)
}

func (o *Ops) version(_ uint16, _, _, _ int32) int32 {
	return VersionMajor<<16 | VersionMinor<<8 | VersionPatch
}

func (o *Ops) platformID(_ uint16, _, _, _ int32) int32 {
	return o.platform
}

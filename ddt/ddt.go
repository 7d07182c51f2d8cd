// Package ddt implements the Device Descriptor Table: a queryable catalog
// mapping logical device identity (kind, role, index) to a platform handle.
package ddt

import "vmhal-go/types"

// Provider supplies the fixed descriptor set for a platform. The returned
// slice is a borrowed view; it must stay valid and unchanged for the
// process lifetime.
type Provider interface {
	Devices() []types.Descriptor
}

// Static is a Provider over a fixed slice.
type Static []types.Descriptor

func (s Static) Devices() []types.Descriptor { return s }

// Table answers identity queries against one installed provider.
// Each interpreter instance owns its own Table; there is no process-wide
// state and no locking. Install during startup, query afterwards.
type Table struct {
	provider Provider
}

// Install records the source of truth for descriptors. Calling again
// replaces the installed provider (last write wins). A nil provider is a
// valid state meaning "no devices".
func (t *Table) Install(p Provider) {
	t.provider = p
}

// Find returns the first descriptor matching (kind, role, index).
// Device counts on embedded targets are small, so a linear scan is the
// whole lookup strategy.
func (t *Table) Find(kind types.Kind, role types.Role, index uint8) (types.Descriptor, bool) {
	if t.provider == nil {
		return types.Descriptor{}, false
	}
	for _, d := range t.provider.Devices() {
		if d.Kind == kind && d.Role == role && d.Index == index {
			return d, true
		}
	}
	return types.Descriptor{}, false
}

// FindDefault returns the descriptor at index 0 for (kind, role).
func (t *Table) FindDefault(kind types.Kind, role types.Role) (types.Descriptor, bool) {
	return t.Find(kind, role, 0)
}

// Count returns the number of descriptors of the given kind.
func (t *Table) Count(kind types.Kind) int {
	if t.provider == nil {
		return 0
	}
	n := 0
	for _, d := range t.provider.Devices() {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// All returns the full installed sequence, or nil without a provider.
// The slice is the provider's backing storage; callers must not mutate it.
func (t *Table) All() []types.Descriptor {
	if t.provider == nil {
		return nil
	}
	return t.provider.Devices()
}

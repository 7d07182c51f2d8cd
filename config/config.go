// Package config loads board definition files: YAML descriptions of a
// device descriptor table, resolved to the binary descriptor form at load
// time so the running table never touches the parser again.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vmhal-go/ddt"
	"vmhal-go/errcode"
	"vmhal-go/types"
)

// Board is the root of a board definition file.
type Board struct {
	Name    string  `yaml:"name"`
	Devices []Entry `yaml:"devices"`
}

// Entry describes one device with symbolic names.
type Entry struct {
	Kind      string `yaml:"kind"`
	Role      string `yaml:"role"`
	Index     uint8  `yaml:"index"`
	Handle    uint32 `yaml:"handle"`
	ActiveLow bool   `yaml:"active_low"`
}

// Load reads and resolves a board definition file.
func Load(path string) (*Board, []types.Descriptor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse resolves a board definition from YAML bytes.
func Parse(raw []byte) (*Board, []types.Descriptor, error) {
	var b Board
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return nil, nil, fmt.Errorf("config: parse: %w", err)
	}
	devs, err := b.Resolve()
	if err != nil {
		return nil, nil, err
	}
	return &b, devs, nil
}

// Resolve converts symbolic entries to descriptors, rejecting unknown
// names and duplicate (kind, role, index) triples — lookups assume the
// triple is unique within one table.
func (b *Board) Resolve() ([]types.Descriptor, error) {
	devs := make([]types.Descriptor, 0, len(b.Devices))
	seen := make(map[types.Descriptor]bool, len(b.Devices))
	for i, e := range b.Devices {
		kind, ok := types.KindByName(e.Kind)
		if !ok {
			return nil, &errcode.E{
				C: errcode.UnknownKind, Op: "config.Resolve",
				Msg: fmt.Sprintf("device %d: kind %q", i, e.Kind),
			}
		}
		role, ok := types.RoleByName(e.Role)
		if !ok {
			return nil, &errcode.E{
				C: errcode.UnknownRole, Op: "config.Resolve",
				Msg: fmt.Sprintf("device %d: role %q", i, e.Role),
			}
		}
		var flags types.Flags
		if e.ActiveLow {
			flags |= types.FlagActiveLow
		}
		id := types.Descriptor{Kind: kind, Role: role, Index: e.Index}
		if seen[id] {
			return nil, &errcode.E{
				C: errcode.DuplicateDevice, Op: "config.Resolve",
				Msg: fmt.Sprintf("device %d: %s/%s index %d", i, e.Kind, e.Role, e.Index),
			}
		}
		seen[id] = true
		devs = append(devs, types.Descriptor{
			Kind: kind, Role: role, Index: e.Index,
			Flags: flags, Handle: e.Handle,
		})
	}
	return devs, nil
}

// Provider wraps the resolved descriptors as an installable provider.
func (b *Board) Provider() (ddt.Provider, error) {
	devs, err := b.Resolve()
	if err != nil {
		return nil, err
	}
	return ddt.Static(devs), nil
}

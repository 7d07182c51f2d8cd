package ddt

import (
	"encoding/binary"
	"fmt"

	"vmhal-go/errcode"
	"vmhal-go/types"
)

// Serialized tables are a plain run of 8-byte records:
// kind, role, index, flags, then the handle as little-endian uint32.
// Field order is part of the cross-platform contract.

// AppendDescriptor appends the wire form of d to dst.
func AppendDescriptor(dst []byte, d types.Descriptor) []byte {
	dst = append(dst, byte(d.Kind), byte(d.Role), d.Index, byte(d.Flags))
	return binary.LittleEndian.AppendUint32(dst, d.Handle)
}

// ParseDescriptor decodes one descriptor from the front of b.
func ParseDescriptor(b []byte) (types.Descriptor, error) {
	if len(b) < types.DescriptorSize {
		return types.Descriptor{}, &errcode.E{
			C: errcode.BadTable, Op: "ddt.ParseDescriptor",
			Msg: fmt.Sprintf("short record: %d bytes", len(b)),
		}
	}
	return types.Descriptor{
		Kind:   types.Kind(b[0]),
		Role:   types.Role(b[1]),
		Index:  b[2],
		Flags:  types.Flags(b[3]),
		Handle: binary.LittleEndian.Uint32(b[4:8]),
	}, nil
}

// MarshalTable serializes descriptors back to back, preserving order.
func MarshalTable(devs []types.Descriptor) []byte {
	out := make([]byte, 0, len(devs)*types.DescriptorSize)
	for _, d := range devs {
		out = AppendDescriptor(out, d)
	}
	return out
}

// UnmarshalTable decodes a serialized table. The input length must be a
// whole number of records.
func UnmarshalTable(b []byte) ([]types.Descriptor, error) {
	if len(b)%types.DescriptorSize != 0 {
		return nil, &errcode.E{
			C: errcode.BadTable, Op: "ddt.UnmarshalTable",
			Msg: fmt.Sprintf("length %d not a multiple of %d", len(b), types.DescriptorSize),
		}
	}
	devs := make([]types.Descriptor, 0, len(b)/types.DescriptorSize)
	for off := 0; off < len(b); off += types.DescriptorSize {
		d, err := ParseDescriptor(b[off:])
		if err != nil {
			return nil, err
		}
		devs = append(devs, d)
	}
	return devs, nil
}

// This file is part of Dolphin.
//
// Dolphin is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dolphin is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dolphin.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"bytes"
	"fmt"
)

// RAM is a slice-backed memory region. It implements the Accessor
// interface and is the building block for the Space type.
type RAM struct {
	label  string
	origin uint32
	memtop uint32
	data   []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// origin and memtop addresses are inclusive.
func NewRAM(label string, origin uint32, memtop uint32) (*RAM, error) {
	if memtop < origin {
		return nil, fmt.Errorf("ram: memtop %08x is below origin %08x", memtop, origin)
	}

	r := &RAM{
		label:  label,
		origin: origin,
		memtop: memtop,
	}
	r.data = make([]uint8, int64(memtop)-int64(origin)+1)

	return r, nil
}

// Label implements the Accessor interface.
func (r *RAM) Label() string {
	return r.label
}

// Origin implements the Accessor interface.
func (r *RAM) Origin() uint32 {
	return r.origin
}

// Memtop implements the Accessor interface.
func (r *RAM) Memtop() uint32 {
	return r.memtop
}

// ReadU8 implements the Accessor interface.
func (r *RAM) ReadU8(address uint32) (uint8, error) {
	if address < r.origin || address > r.memtop {
		return 0, fmt.Errorf("%w: %08x (%s)", AddressError, address, r.label)
	}
	return r.data[address-r.origin], nil
}

// WriteU8 implements the Accessor interface.
func (r *RAM) WriteU8(address uint32, value uint8) error {
	if address < r.origin || address > r.memtop {
		return fmt.Errorf("%w: %08x (%s)", AddressError, address, r.label)
	}
	r.data[address-r.origin] = value
	return nil
}

// SearchBytes implements the Accessor interface.
func (r *RAM) SearchBytes(address uint32, pattern []uint8, forward bool) (uint32, bool) {
	if len(pattern) == 0 || len(pattern) > len(r.data) {
		return 0, false
	}

	// the highest address a match can begin at
	last := r.memtop - uint32(len(pattern)) + 1

	if forward {
		addr := address
		if addr < r.origin {
			addr = r.origin
		}
		if addr > last {
			return 0, false
		}

		idx := bytes.Index(r.data[addr-r.origin:], pattern)
		if idx == -1 {
			return 0, false
		}
		return addr + uint32(idx), true
	}

	addr := address
	if addr > last {
		addr = last
	}
	if addr < r.origin {
		return 0, false
	}

	idx := bytes.LastIndex(r.data[:addr-r.origin+uint32(len(pattern))], pattern)
	if idx == -1 {
		return 0, false
	}
	return r.origin + uint32(idx), true
}

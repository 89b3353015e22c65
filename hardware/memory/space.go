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
	"fmt"

	"github.com/EternityShack/dolphin/logger"
)

// Space is an address space composed of non-overlapping regions. Reads and
// writes are delegated to the region containing the address. Addresses in
// the gaps between regions are inaccessible.
//
// Space implements the Accessor interface itself, meaning that spaces can
// in principle be nested, although there is no practical need for that.
type Space struct {
	label   string
	regions []Accessor
}

// NewSpace is the preferred method of initialisation for the Space type.
func NewSpace(label string) *Space {
	return &Space{label: label}
}

// AddRegion attaches an accessor to the address space. Regions may be added
// in any order but must not overlap one another.
func (sp *Space) AddRegion(region Accessor) error {
	for _, r := range sp.regions {
		if region.Origin() <= r.Memtop() && region.Memtop() >= r.Origin() {
			return fmt.Errorf("space: %s: region %s overlaps %s", sp.label, region.Label(), r.Label())
		}
	}

	// keep regions in ascending address order
	idx := len(sp.regions)
	for i, r := range sp.regions {
		if region.Origin() < r.Origin() {
			idx = i
			break
		}
	}
	sp.regions = append(sp.regions[:idx], append([]Accessor{region}, sp.regions[idx:]...)...)

	logger.Logf("memory", "%s: attached %s (%08x to %08x)",
		sp.label, region.Label(), region.Origin(), region.Memtop())

	return nil
}

// GetRegion returns the region containing the address, or nil if the
// address is in a gap or outside the space entirely.
func (sp *Space) GetRegion(address uint32) Accessor {
	for _, r := range sp.regions {
		if address >= r.Origin() && address <= r.Memtop() {
			return r
		}
	}
	return nil
}

// Label implements the Accessor interface.
func (sp *Space) Label() string {
	return sp.label
}

// Origin implements the Accessor interface.
func (sp *Space) Origin() uint32 {
	if len(sp.regions) == 0 {
		return 0
	}
	return sp.regions[0].Origin()
}

// Memtop implements the Accessor interface.
func (sp *Space) Memtop() uint32 {
	if len(sp.regions) == 0 {
		return 0
	}
	return sp.regions[len(sp.regions)-1].Memtop()
}

// ReadU8 implements the Accessor interface.
func (sp *Space) ReadU8(address uint32) (uint8, error) {
	r := sp.GetRegion(address)
	if r == nil {
		return 0, fmt.Errorf("%w: %08x (%s)", AddressError, address, sp.label)
	}
	return r.ReadU8(address)
}

// WriteU8 implements the Accessor interface.
func (sp *Space) WriteU8(address uint32, value uint8) error {
	r := sp.GetRegion(address)
	if r == nil {
		return fmt.Errorf("%w: %08x (%s)", AddressError, address, sp.label)
	}
	return r.WriteU8(address, value)
}

// SearchBytes implements the Accessor interface. Gaps between regions are
// skipped over and a match must lie entirely within a single region.
func (sp *Space) SearchBytes(address uint32, pattern []uint8, forward bool) (uint32, bool) {
	if len(pattern) == 0 {
		return 0, false
	}

	if forward {
		for _, r := range sp.regions {
			if addr, ok := r.SearchBytes(address, pattern, true); ok {
				return addr, true
			}
		}
		return 0, false
	}

	for i := len(sp.regions) - 1; i >= 0; i-- {
		if addr, ok := sp.regions[i].SearchBytes(address, pattern, false); ok {
			return addr, true
		}
	}
	return 0, false
}

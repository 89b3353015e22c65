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
	"errors"
	"fmt"
)

// AddressError is the sentinel error returned by accessors when an address
// is outside of the accessor's extent.
var AddressError = errors.New("inaccessible address")

// Accessor defines byte-level access to one addressable memory region or
// address space. All addresses are absolute.
//
// The Origin() and Memtop() functions give the inclusive extent of the
// accessor. Addresses inside the extent are not necessarily backed by
// anything - an address space may have gaps between its regions - in which
// case ReadU8() and WriteU8() return AddressError.
//
// SearchBytes() scans for an exact byte sequence, starting at the supplied
// address and moving towards Memtop() (forward) or Origin() (backward). A
// start address outside the extent is moved to the nearest end of the
// extent in the direction of travel. The address of the first byte of the
// match is returned; the second return value is false if there is no match.
type Accessor interface {
	Label() string
	Origin() uint32
	Memtop() uint32
	ReadU8(address uint32) (uint8, error)
	WriteU8(address uint32, value uint8) error
	SearchBytes(address uint32, pattern []uint8, forward bool) (uint32, bool)
}

// ReadBytes reads a run of bytes from consecutive addresses, starting at
// the supplied address. Fails with AddressError if any part of the run is
// inaccessible.
func ReadBytes(acc Accessor, address uint32, length int) ([]uint8, error) {
	data := make([]uint8, length)
	for i := range data {
		var err error
		data[i], err = acc.ReadU8(address + uint32(i))
		if err != nil {
			return nil, fmt.Errorf("read bytes: %w", err)
		}
	}
	return data, nil
}

// WriteBytes commits a byte sequence to consecutive addresses, starting at
// the supplied address. The write stops at the first inaccessible address,
// meaning that a failed commit may be partially applied.
func WriteBytes(acc Accessor, address uint32, data []uint8) error {
	for i, b := range data {
		if err := acc.WriteU8(address+uint32(i), b); err != nil {
			return fmt.Errorf("write bytes: %w", err)
		}
	}
	return nil
}

// Dump returns a copy of the accessor's entire extent. Addresses that are
// inside the extent but not backed by a region read as zero.
func Dump(acc Accessor) []uint8 {
	data := make([]uint8, int64(acc.Memtop())-int64(acc.Origin())+1)
	for i := range data {
		if b, err := acc.ReadU8(acc.Origin() + uint32(i)); err == nil {
			data[i] = b
		}
	}
	return data
}

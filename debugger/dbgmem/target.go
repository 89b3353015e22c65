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

package dbgmem

import (
	"math"
	"strconv"
	"strings"
)

// TargetAddress is the result of the ResolveTarget() function. The Address
// field is only meaningful when both the AddressOK and OffsetOK fields are
// true. The two flags are distinct so that a front end can indicate which
// of the two input fields needs correcting.
type TargetAddress struct {
	Address   uint32
	AddressOK bool
	OffsetOK  bool
}

// Ok is true if both input fields resolved successfully.
func (t TargetAddress) Ok() bool {
	return t.AddressOK && t.OffsetOK
}

// ResolveTarget combines a base address field and a signed offset field
// into one absolute address.
//
// The address text is read as unsigned 32bit hexadecimal and the offset
// text as signed 32bit hexadecimal. An empty field is valid and
// contributes zero; it is the neutral state of a field the user has not
// filled in, not a parse failure.
//
// An offset that would take the address below zero or above the top of the
// 32bit address space marks the offset field as bad. Malformed input is
// only ever communicated through the two flags, the function never panics.
func ResolveTarget(addressText string, offsetText string) TargetAddress {
	var target TargetAddress

	addr, err := strconv.ParseUint(strip0x(addressText), 16, 32)
	if err != nil {
		// a failed parse contributes zero to the offset bounds checks below
		addr = 0
	}
	target.AddressOK = err == nil || addressText == ""

	offset64, err := strconv.ParseInt(strip0x(offsetText), 16, 32)
	if err != nil {
		offset64 = 0
	}
	target.OffsetOK = err == nil || offsetText == ""

	offset := int32(offset64)

	// the unsigned magnitude of a negative offset. negating the most
	// negative value would overflow int32 so that case is spelled out
	var magnitude uint32
	if offset == math.MinInt32 {
		magnitude = 1 << 31
	} else if offset < 0 {
		magnitude = uint32(-offset)
	}

	target.OffsetOK = target.OffsetOK && (offset >= 0 || magnitude <= uint32(addr))
	target.OffsetOK = target.OffsetOK && (offset <= 0 || math.MaxUint32-uint32(offset) >= uint32(addr))

	if !target.AddressOK || !target.OffsetOK {
		return target
	}

	if offset < 0 {
		target.Address = uint32(addr) - magnitude
	} else {
		target.Address = uint32(addr) + uint32(offset)
	}

	return target
}

// strip0x removes a leading hex prefix, taking care of any sign character.
func strip0x(text string) string {
	s := strings.TrimSpace(text)
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign = s[:1]
		s = s[1:]
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return sign + s
}

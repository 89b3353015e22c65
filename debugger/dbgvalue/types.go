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

package dbgvalue

// Type describes how input text is to be interpreted when converting it
// into a byte sequence.
type Type int

// List of valid Type values.
const (
	TypeHexString Type = iota
	TypeASCII
	TypeFloat32
	TypeFloat64
	TypeU8
	TypeU16
	TypeU32
	TypeS8
	TypeS16
	TypeS32
)

func (t Type) String() string {
	switch t {
	case TypeHexString:
		return "Hex Byte String"
	case TypeASCII:
		return "ASCII"
	case TypeFloat32:
		return "Float"
	case TypeFloat64:
		return "Double"
	case TypeU8:
		return "Unsigned 8"
	case TypeU16:
		return "Unsigned 16"
	case TypeU32:
		return "Unsigned 32"
	case TypeS8:
		return "Signed 8"
	case TypeS16:
		return "Signed 16"
	case TypeS32:
		return "Signed 32"
	}
	return "unknown"
}

// BaseApplies is true if the Type pays attention to the Base argument of
// the Encode() function. Only the integer types do. A front end can use
// this to decide whether a base toggle should be enabled.
func (t Type) BaseApplies() bool {
	switch t {
	case TypeU8, TypeU16, TypeU32, TypeS8, TypeS16, TypeS32:
		return true
	}
	return false
}

// Base describes how digits in input text are to be read for the integer
// types. Types for which BaseApplies() is false ignore it.
type Base int

// List of valid Base values.
const (
	BaseDec Base = iota
	BaseHex
)

func (b Base) String() string {
	if b == BaseHex {
		return "hex"
	}
	return "decimal"
}

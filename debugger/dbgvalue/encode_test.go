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

package dbgvalue_test

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/EternityShack/dolphin/debugger/dbgvalue"
	"github.com/EternityShack/dolphin/test"
)

func TestEncodeIntegers(t *testing.T) {
	tests := []struct {
		text    string
		typ     dbgvalue.Type
		base    dbgvalue.Base
		valid   bool
		preview string
		bytes   []uint8
	}{
		{"255", dbgvalue.TypeU8, dbgvalue.BaseDec, true, "FF", []uint8{0xff}},
		{"256", dbgvalue.TypeU8, dbgvalue.BaseDec, false, "", nil},
		{"ff", dbgvalue.TypeU8, dbgvalue.BaseHex, true, "FF", []uint8{0xff}},
		{"100", dbgvalue.TypeU8, dbgvalue.BaseHex, false, "", nil},
		{"-1", dbgvalue.TypeU8, dbgvalue.BaseDec, false, "", nil},
		{"1.5", dbgvalue.TypeU8, dbgvalue.BaseDec, false, "", nil},

		{"65535", dbgvalue.TypeU16, dbgvalue.BaseDec, true, "FF FF", []uint8{0xff, 0xff}},
		{"65536", dbgvalue.TypeU16, dbgvalue.BaseDec, false, "", nil},
		{"beef", dbgvalue.TypeU16, dbgvalue.BaseHex, true, "BE EF", []uint8{0xbe, 0xef}},

		{"4294967295", dbgvalue.TypeU32, dbgvalue.BaseDec, true, "FF FF FF FF", []uint8{0xff, 0xff, 0xff, 0xff}},
		{"4294967296", dbgvalue.TypeU32, dbgvalue.BaseDec, false, "", nil},
		{"deadbeef", dbgvalue.TypeU32, dbgvalue.BaseHex, true, "DE AD BE EF", []uint8{0xde, 0xad, 0xbe, 0xef}},
		{"0xDEADBEEF", dbgvalue.TypeU32, dbgvalue.BaseHex, true, "DE AD BE EF", []uint8{0xde, 0xad, 0xbe, 0xef}},

		{"127", dbgvalue.TypeS8, dbgvalue.BaseDec, true, "7F", []uint8{0x7f}},
		{"-128", dbgvalue.TypeS8, dbgvalue.BaseDec, true, "80", []uint8{0x80}},
		{"128", dbgvalue.TypeS8, dbgvalue.BaseDec, false, "", nil},
		{"-129", dbgvalue.TypeS8, dbgvalue.BaseDec, false, "", nil},
		{"-10", dbgvalue.TypeS8, dbgvalue.BaseHex, true, "F0", []uint8{0xf0}},

		{"-1", dbgvalue.TypeS16, dbgvalue.BaseDec, true, "FF FF", []uint8{0xff, 0xff}},
		{"-32768", dbgvalue.TypeS16, dbgvalue.BaseDec, true, "80 00", []uint8{0x80, 0x00}},
		{"32768", dbgvalue.TypeS16, dbgvalue.BaseDec, false, "", nil},

		{"-1", dbgvalue.TypeS32, dbgvalue.BaseDec, true, "FF FF FF FF", []uint8{0xff, 0xff, 0xff, 0xff}},
		{"-2147483648", dbgvalue.TypeS32, dbgvalue.BaseDec, true, "80 00 00 00", []uint8{0x80, 0x00, 0x00, 0x00}},
		{"2147483648", dbgvalue.TypeS32, dbgvalue.BaseDec, false, "", nil},

		// spaces in numeric input are stripped before parsing
		{" 42 ", dbgvalue.TypeU8, dbgvalue.BaseDec, true, "2A", []uint8{0x2a}},

		// empty input is not encodable
		{"", dbgvalue.TypeU8, dbgvalue.BaseDec, false, "", nil},
	}

	for _, tst := range tests {
		v := dbgvalue.Encode(tst.text, tst.typ, tst.base)
		if !test.ExpectEquality(t, v.Valid, tst.valid) {
			t.Logf("%s %s (%s)", tst.typ, tst.text, tst.base)
			continue
		}
		test.ExpectEquality(t, v.Preview, tst.preview)
		if diff := cmp.Diff(tst.bytes, v.ToBytes()); diff != "" {
			t.Errorf("%s %s: bytes mismatch (-want +got):\n%s", tst.typ, tst.text, diff)
		}
	}
}

func TestEncodeFloats(t *testing.T) {
	v := dbgvalue.Encode("1", dbgvalue.TypeFloat32, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.Preview, "3F 80 00 00")

	v = dbgvalue.Encode("-0.5", dbgvalue.TypeFloat32, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.Preview, "BF 00 00 00")

	// a float64 preview is sixteen hex characters, exactly at the
	// truncation threshold. it must not be cut and ToBytes() must give all
	// eight bytes
	v = dbgvalue.Encode("1", dbgvalue.TypeFloat64, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.Preview, "3F F0 00 00 00 00 00 00")
	if diff := cmp.Diff([]uint8{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, v.ToBytes()); diff != "" {
		t.Errorf("float64 bytes mismatch (-want +got):\n%s", diff)
	}

	v = dbgvalue.Encode("not a number", dbgvalue.TypeFloat32, dbgvalue.BaseDec)
	test.ExpectFailure(t, v.Valid)

	// the base argument has no meaning for floats
	v = dbgvalue.Encode("1.5", dbgvalue.TypeFloat32, dbgvalue.BaseHex)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.Preview, "3F C0 00 00")
}

func TestEncodeHexString(t *testing.T) {
	v := dbgvalue.Encode(" 41 42 43", dbgvalue.TypeHexString, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.Preview, "41 42 43")
	if diff := cmp.Diff([]uint8{0x41, 0x42, 0x43}, v.ToBytes()); diff != "" {
		t.Errorf("bytes mismatch (-want +got):\n%s", diff)
	}

	// case insensitive
	v = dbgvalue.Encode("deadBEEF", dbgvalue.TypeHexString, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.Preview, "DE AD BE EF")

	// previews longer than sixteen hex characters truncate with an
	// ellipsis but ToBytes() is never lossy
	v = dbgvalue.Encode("FFFFFFFFFFFFFFFFFFFF", dbgvalue.TypeHexString, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.Preview, "FF FF FF FF FF FF FF FF...")
	test.ExpectEquality(t, len(v.ToBytes()), 10)

	// digits must come in whole pairs
	v = dbgvalue.Encode("FFF", dbgvalue.TypeHexString, dbgvalue.BaseDec)
	test.ExpectFailure(t, v.Valid)

	v = dbgvalue.Encode("12G4", dbgvalue.TypeHexString, dbgvalue.BaseDec)
	test.ExpectFailure(t, v.Valid)
}

func TestEncodeASCII(t *testing.T) {
	v := dbgvalue.Encode("ABC", dbgvalue.TypeASCII, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.Preview, "41 42 43")

	// spaces are data in ASCII input, not separators
	v = dbgvalue.Encode("A B", dbgvalue.TypeASCII, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.Preview, "41 20 42")

	// a preview may truncate but the committed bytes always come from the
	// full input text
	v = dbgvalue.Encode("ABCDEFGHIJ", dbgvalue.TypeASCII, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.Preview, "41 42 43 44 45 46 47 48...")
	if diff := cmp.Diff([]uint8("ABCDEFGHIJ"), v.ToBytes()); diff != "" {
		t.Errorf("bytes mismatch (-want +got):\n%s", diff)
	}

	// 8bit code units. code points beyond latin-1 fold to a question mark
	v = dbgvalue.Encode("é€", dbgvalue.TypeASCII, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	if diff := cmp.Diff([]uint8{0xe9, '?'}, v.ToBytes()); diff != "" {
		t.Errorf("bytes mismatch (-want +got):\n%s", diff)
	}
}

// for every integer type, a value encoded within range and decoded from the
// produced bytes must reproduce the original value
func TestEncodeRoundTrip(t *testing.T) {
	v := dbgvalue.Encode("150", dbgvalue.TypeU8, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, v.ToBytes()[0], uint8(150))

	v = dbgvalue.Encode("40000", dbgvalue.TypeU16, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, binary.BigEndian.Uint16(v.ToBytes()), uint16(40000))

	v = dbgvalue.Encode("305419896", dbgvalue.TypeU32, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, binary.BigEndian.Uint32(v.ToBytes()), uint32(0x12345678))

	v = dbgvalue.Encode("-100", dbgvalue.TypeS8, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, int8(v.ToBytes()[0]), int8(-100))

	v = dbgvalue.Encode("-1234", dbgvalue.TypeS16, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, int16(binary.BigEndian.Uint16(v.ToBytes())), int16(-1234))

	v = dbgvalue.Encode("-123456789", dbgvalue.TypeS32, dbgvalue.BaseDec)
	test.ExpectSuccess(t, v.Valid)
	test.ExpectEquality(t, int32(binary.BigEndian.Uint32(v.ToBytes())), int32(-123456789))
}

func TestBaseApplies(t *testing.T) {
	for _, typ := range []dbgvalue.Type{dbgvalue.TypeU8, dbgvalue.TypeU16, dbgvalue.TypeU32,
		dbgvalue.TypeS8, dbgvalue.TypeS16, dbgvalue.TypeS32} {
		test.ExpectSuccess(t, typ.BaseApplies())
	}
	for _, typ := range []dbgvalue.Type{dbgvalue.TypeHexString, dbgvalue.TypeASCII,
		dbgvalue.TypeFloat32, dbgvalue.TypeFloat64} {
		test.ExpectFailure(t, typ.BaseApplies())
	}
}

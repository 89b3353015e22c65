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

package dbgmem_test

import (
	"testing"

	"github.com/EternityShack/dolphin/debugger/dbgmem"
	"github.com/EternityShack/dolphin/test"
)

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		addressText string
		offsetText  string
		address     uint32
		addressOK   bool
		offsetOK    bool
	}{
		// empty fields are neutral, not errors
		{"", "", 0x00000000, true, true},
		{"", "100", 0x00000100, true, true},

		// address field alone
		{"deadbeef", "", 0xdeadbeef, true, true},
		{"DEADBEEF", "", 0xdeadbeef, true, true},
		{"0x80003100", "", 0x80003100, true, true},
		{"000123ab", "", 0x000123ab, true, true},

		// offsets are signed hexadecimal
		{"80000000", "-10", 0x7ffffff0, true, true},
		{"80000000", "10", 0x80000010, true, true},
		{"80000000", "+10", 0x80000010, true, true},
		{"80000000", "-0x10", 0x7ffffff0, true, true},

		// underflow below zero
		{"00000000", "-1", 0, true, false},
		{"00000010", "-11", 0, true, false},
		{"00000010", "-10", 0x00000000, true, true},

		// overflow past the top of the address space
		{"ffffffff", "1", 0, true, false},
		{"fffffff0", "10", 0, true, false},
		{"fffffff0", "f", 0xffffffff, true, true},
		{"ffffffff", "7fffffff", 0, true, false},
		{"80000000", "7fffffff", 0xffffffff, true, true},

		// the most negative offset must not overflow when negated: its
		// magnitude is exactly 2^31
		{"80000000", "-80000000", 0x00000000, true, true},
		{"ffffffff", "-80000000", 0x7fffffff, true, true},
		{"7fffffff", "-80000000", 0, true, false},
		{"00000000", "-80000000", 0, true, false},

		// malformed fields
		{"xyz", "", 0, false, true},
		{"xyz", "10", 0, false, true},
		{"10", "zz", 0, true, false},
		{"123456789", "", 0, false, true},
		{" ", "", 0, false, true},

		// a bad address reads as zero for the offset bounds checks
		{"xyz", "-1", 0, false, false},
	}

	for _, tst := range tests {
		target := dbgmem.ResolveTarget(tst.addressText, tst.offsetText)
		test.ExpectEquality(t, target.AddressOK, tst.addressOK)
		test.ExpectEquality(t, target.OffsetOK, tst.offsetOK)
		if tst.addressOK && tst.offsetOK {
			test.ExpectEquality(t, target.Address, tst.address)
			test.ExpectSuccess(t, target.Ok())
		} else {
			test.ExpectFailure(t, target.Ok())
		}
	}
}

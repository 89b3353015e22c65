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
	"errors"
	"fmt"

	"github.com/EternityShack/dolphin/debugger/dbgvalue"
	"github.com/EternityShack/dolphin/hardware/memory"
)

// sentinel errors returned by the DbgMem type
var (
	BadAddressError = errors.New("bad address provided")
	BadOffsetError  = errors.New("bad offset provided")
	BadValueError   = errors.New("bad value provided")
	PokeError       = errors.New("cannot poke address")
)

// DbgMem is the debugger's front-end to one view of the emulated machine's
// memory. It ties together address resolution, the value codec and the
// accessor's search primitive, in the same shape a graphical front end
// would: free-text address, offset and value fields, with the type and
// direction chosen separately.
type DbgMem struct {
	Mem memory.Accessor
}

// SetValue commits an encoded value to the address resolved from the
// address and offset fields. Bytes are written to ascending addresses. It
// returns the address written to.
func (dbg DbgMem) SetValue(addressText string, offsetText string, value dbgvalue.EncodedValue) (uint32, error) {
	target := ResolveTarget(addressText, offsetText)
	if !target.AddressOK {
		return 0, fmt.Errorf("%w: %s", BadAddressError, addressText)
	}
	if !target.OffsetOK {
		return 0, fmt.Errorf("%w: %s", BadOffsetError, offsetText)
	}

	data := value.ToBytes()
	if len(data) == 0 {
		return 0, BadValueError
	}

	if err := memory.WriteBytes(dbg.Mem, target.Address, data); err != nil {
		return 0, fmt.Errorf("%w: %v", PokeError, err)
	}

	return target.Address, nil
}

// FindValue searches for an encoded value from the address resolved from
// the address and offset fields. The found address is returned when the
// second return value is true; no match is a normal outcome, not an error.
//
// When the address field is non-empty the search skips the resolved
// address itself, so that finding the "next" match never returns the match
// already on screen. An empty address field searches from the very start
// (or end) of the accessor's extent.
func (dbg DbgMem) FindValue(addressText string, offsetText string, value dbgvalue.EncodedValue, forward bool) (uint32, bool, error) {
	target := ResolveTarget(addressText, offsetText)
	if !target.AddressOK {
		return 0, false, fmt.Errorf("%w: %s", BadAddressError, addressText)
	}
	if !target.OffsetOK {
		return 0, false, fmt.Errorf("%w: %s", BadOffsetError, offsetText)
	}

	pattern := value.ToBytes()
	if len(pattern) == 0 {
		return 0, false, BadValueError
	}

	skipCurrent := addressText != ""
	addr, found := Search(dbg.Mem, target.Address, pattern, forward, skipCurrent)

	return addr, found, nil
}

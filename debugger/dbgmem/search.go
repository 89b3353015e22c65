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
	"github.com/EternityShack/dolphin/hardware/memory"
)

// Search scans an address space for an exact byte pattern, from a starting
// address in the given direction. The second return value is false if no
// match was found. A not-found outcome is normal and is not an error.
//
// If skipCurrent is true the scan begins one byte along from the starting
// address in the direction of travel. A front end uses this when the start
// address came from an explicit user-supplied field, so that repeating a
// search does not re-report the match the user is already looking at.
//
// The scan itself is the accessor's responsibility. This function only
// adjusts the starting position and interprets the outcome.
func Search(acc memory.Accessor, start uint32, pattern []uint8, forward bool, skipCurrent bool) (uint32, bool) {
	if len(pattern) == 0 {
		return 0, false
	}

	if skipCurrent {
		if forward {
			start++
		} else {
			start--
		}
	}

	return acc.SearchBytes(start, pattern, forward)
}

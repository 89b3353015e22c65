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

// Package dbgmem is a front-end to the emulated machine's memory, as seen
// by a debugger. It deals in the text a user types rather than in numbers:
// a hexadecimal base address field, a signed hexadecimal offset field, and
// a typed value field (see the dbgvalue package).
//
// The ResolveTarget() function turns the two address fields into one
// absolute address, reporting per-field validity rather than returning
// errors. It is intended to be called on every keystroke, with the front
// end colouring each field by its flag.
//
// The Search() function and the DbgMem type drive the memory.Accessor
// search primitive from a resolved address, in either direction, with the
// skip-current rule that stops a repeated search re-finding the match the
// user is already looking at.
package dbgmem

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

// Package dbgvalue converts between user input text and the byte sequences
// that get written to, or searched for in, emulated memory.
//
// The Encode() function interprets text according to one of ten types:
// six integer widths, two float widths, a free-form hex byte string, and
// ASCII text. The result carries a display preview (uppercase hex, grouped
// into bytes, truncated for long input) alongside everything needed to
// produce the full untruncated byte sequence with ToBytes().
//
// Bad input is an expected, first-class outcome. Encoding is attempted on
// every keystroke by the front end, meaning half-typed numbers pass
// through here constantly. Invalidity is reported in the Valid field and
// is never an error or a panic.
package dbgvalue

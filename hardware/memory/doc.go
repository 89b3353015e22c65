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

// Package memory defines how the debugger sees the emulated machine's
// memory. The same physical storage is viewed differently by different
// parts of the machine: the CPU sees effective addresses that the MMU maps
// onto physical RAM, the DSP sees auxiliary RAM, and so on. Rather than
// model the hardware, the package conceptualises each of these views as an
// address space that can be read, written and searched a byte at a time.
//
// The Accessor interface is the currency of the package. Concrete
// implementations are the RAM type, a single contiguous region, and the
// Space type, which composes several regions into one sparse address
// space. The debugger packages operate purely in terms of Accessor and do
// not care which view they have been given - selecting the active address
// space is the front end's job.
//
// The process sub-package provides a further Accessor implementation that
// reaches into the memory of another (live) process.
package memory

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

// Package process implements the memory.Accessor interface over the memory
// of another live process. It is useful for inspecting an emulator from the
// outside, without a debug build of the emulator itself.
//
// The package is currently Windows only. The accessor window is expressed
// in the same 32bit addresses as the rest of the debugger and is offset
// into the target process's (possibly 64bit) address space.
package process

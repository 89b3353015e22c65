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

//go:build windows

package process

import (
	"bytes"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/EternityShack/dolphin/hardware/memory"
	"github.com/EternityShack/dolphin/logger"
)

// Process is an accessor over a window into the memory of another live
// process. The window is described by a base address in the target process
// and an inclusive origin/memtop pair in the debugger's own 32bit address
// terms.
type Process struct {
	pid    uint32
	handle windows.Handle

	label  string
	base   uintptr
	origin uint32
	memtop uint32
}

// Open attaches to the process identified by pid. The base argument is the
// address in the target process corresponding to the accessor's origin.
func Open(pid uint32, label string, base uintptr, origin uint32, memtop uint32) (*Process, error) {
	if memtop < origin {
		return nil, fmt.Errorf("process: memtop %08x is below origin %08x", memtop, origin)
	}

	handle, err := windows.OpenProcess(
		windows.PROCESS_VM_READ|windows.PROCESS_VM_WRITE|windows.PROCESS_VM_OPERATION|windows.PROCESS_QUERY_INFORMATION,
		false, pid)
	if err != nil {
		return nil, fmt.Errorf("process: open pid %d: %w", pid, err)
	}

	logger.Logf("process", "attached to pid %d (%s)", pid, label)

	return &Process{
		pid:    pid,
		handle: handle,
		label:  label,
		base:   base,
		origin: origin,
		memtop: memtop,
	}, nil
}

// Close detaches from the process. The accessor must not be used after a
// call to Close.
func (p *Process) Close() error {
	if p.handle != 0 {
		windows.CloseHandle(p.handle)
		p.handle = 0
	}
	return nil
}

// address in the target process for an address in the accessor window
func (p *Process) remote(address uint32) uintptr {
	return p.base + uintptr(address-p.origin)
}

// Label implements the memory.Accessor interface.
func (p *Process) Label() string {
	return p.label
}

// Origin implements the memory.Accessor interface.
func (p *Process) Origin() uint32 {
	return p.origin
}

// Memtop implements the memory.Accessor interface.
func (p *Process) Memtop() uint32 {
	return p.memtop
}

// ReadU8 implements the memory.Accessor interface.
func (p *Process) ReadU8(address uint32) (uint8, error) {
	if address < p.origin || address > p.memtop {
		return 0, fmt.Errorf("%w: %08x (%s)", memory.AddressError, address, p.label)
	}

	var b [1]uint8
	var read uintptr
	err := windows.ReadProcessMemory(p.handle, p.remote(address), &b[0], 1, &read)
	if err != nil || read != 1 {
		return 0, fmt.Errorf("%w: %08x (%s)", memory.AddressError, address, p.label)
	}
	return b[0], nil
}

// WriteU8 implements the memory.Accessor interface.
func (p *Process) WriteU8(address uint32, value uint8) error {
	if address < p.origin || address > p.memtop {
		return fmt.Errorf("%w: %08x (%s)", memory.AddressError, address, p.label)
	}

	b := [1]uint8{value}
	var written uintptr
	err := windows.WriteProcessMemory(p.handle, p.remote(address), &b[0], 1, &written)
	if err != nil || written != 1 {
		return fmt.Errorf("%w: %08x (%s)", memory.AddressError, address, p.label)
	}
	return nil
}

// SearchBytes implements the memory.Accessor interface. The scan walks the
// committed, readable regions of the target process that intersect the
// accessor window. A match must lie entirely within one region.
func (p *Process) SearchBytes(address uint32, pattern []uint8, forward bool) (uint32, bool) {
	if len(pattern) == 0 {
		return 0, false
	}

	start := address
	if forward && start < p.origin {
		start = p.origin
	}
	if !forward && start > p.memtop {
		start = p.memtop
	}

	var found uint32
	var ok bool

	var mbi windows.MemoryBasicInformation
	remote := p.base
	remoteTop := p.base + uintptr(p.memtop-p.origin)

	for remote <= remoteTop {
		err := windows.VirtualQueryEx(p.handle, remote, &mbi, unsafe.Sizeof(mbi))
		if err != nil {
			break
		}

		regionBase := uintptr(mbi.BaseAddress)
		regionSize := uintptr(mbi.RegionSize)

		if p.isReadable(&mbi) {
			if addr, match := p.searchRegion(regionBase, regionSize, start, pattern, forward); match {
				if forward {
					return addr, true
				}

				// backward search: remember the highest match at or below
				// the start address and keep walking
				found = addr
				ok = true
			}
		}

		remote = regionBase + regionSize
		if regionSize == 0 {
			remote++
		}
	}

	return found, ok
}

func (p *Process) isReadable(mbi *windows.MemoryBasicInformation) bool {
	readable := mbi.Protect&(windows.PAGE_READONLY|windows.PAGE_READWRITE|
		windows.PAGE_EXECUTE_READ|windows.PAGE_EXECUTE_READWRITE) != 0
	return readable && mbi.State == windows.MEM_COMMIT
}

// searchRegion reads the intersection of a process region and the accessor
// window and looks for the pattern, honouring the start address and the
// direction of travel.
func (p *Process) searchRegion(regionBase uintptr, regionSize uintptr,
	start uint32, pattern []uint8, forward bool) (uint32, bool) {

	lo := regionBase
	if lo < p.base {
		lo = p.base
	}
	hi := regionBase + regionSize
	if top := p.base + uintptr(p.memtop-p.origin) + 1; hi > top {
		hi = top
	}
	if hi <= lo {
		return 0, false
	}

	buffer := make([]uint8, hi-lo)
	var read uintptr
	err := windows.ReadProcessMemory(p.handle, lo, &buffer[0], uintptr(len(buffer)), &read)
	if err != nil || read == 0 {
		logger.Logf("process", "skipping unreadable region at %x (%s)", lo, p.label)
		return 0, false
	}
	buffer = buffer[:read]

	// the accessor address of the first byte in the buffer
	bufferAddr := p.origin + uint32(lo-p.base)

	if forward {
		from := 0
		if start > bufferAddr {
			from = int(start - bufferAddr)
			if from >= len(buffer) {
				return 0, false
			}
		}
		idx := bytes.Index(buffer[from:], pattern)
		if idx == -1 {
			return 0, false
		}
		return bufferAddr + uint32(from+idx), true
	}

	until := len(buffer)
	if within := int64(start) - int64(bufferAddr) + int64(len(pattern)); within < int64(until) {
		if within <= 0 {
			return 0, false
		}
		until = int(within)
	}
	idx := bytes.LastIndex(buffer[:until], pattern)
	if idx == -1 {
		return 0, false
	}
	return bufferAddr + uint32(idx), true
}

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

// Package logger is the central log for the application. There is a single
// log, with no concept of severity levels. Packages wanting to make a
// note of something worth keeping call Log() or Logf() with a short tag
// identifying the system making the entry.
//
// Consecutive entries with the same tag and detail are compressed into a
// single entry with a repeat count. The log keeps a maximum number of
// entries, discarding the oldest as needed.
//
// The front end decides when and how to present the log. Write() and Tail()
// write accumulated entries to an io.Writer, while SetEcho() forwards
// entries as they arrive.
package logger

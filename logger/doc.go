// This file is part of gochip8.
//
// gochip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gochip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gochip8.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the application. Entries are made
// with a tag and a detail string:
//
//	logger.Log(logger.Allow, "sdlaudio", "device opened")
//	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", filename)
//
// Adjacent entries that are identical are collapsed into one entry with a
// repeat count. The number of entries is bounded; older entries are dropped.
//
// The Permission argument lets the caller decide whether an entry should be
// made at all. The Allow value always permits logging.
//
// The machine state in the hardware package never logs. Validation failures
// are returned to the caller who decides whether they are worth logging.
package logger

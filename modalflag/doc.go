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

// Package modalflag wraps the flag package of the standard library and adds
// program modes.
//
// Arguments are given with NewArgs() and parsed with Parse(). Flags are added
// before calling Parse(), in the same way as with the flag package:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	frames := md.AddInt("frames", 0, "number of frames to run")
//	md.AddSubModes("CHECKERBOARD", "TONE")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a command line argument, following the flags, that selects a
// different mode of operation. The first mode given to AddSubModes() is the
// default and is selected when no mode is given. Mode comparisons are case
// insensitive and the Mode() function always returns the mode in upper case.
//
// Once a mode has been selected, NewMode() can be called to begin parsing the
// flags for that mode. The sequence of selected modes is returned by Path().
//
// Help is printed to the Output writer when the -help flag is given, in which
// case Parse() returns ParseHelp.
package modalflag

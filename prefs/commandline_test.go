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

package prefs_test

import (
	"testing"

	"github.com/hsdiniz/gochip8/prefs"
	"github.com/hsdiniz/gochip8/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("display.scale::10")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.scale::10")

	// additional space is trimmed
	prefs.PushCommandLineStack("   display.scale:: 10 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.scale::10")

	// remaining string is sorted
	prefs.PushCommandLineStack("display.scale::10; audio.frequency::880")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "audio.frequency::880; display.scale::10")

	// malformed entries are ignored
	prefs.PushCommandLineStack("display.scale")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("display.scale;audio.frequency::880")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "audio.frequency::880")

	prefs.PushCommandLineStack("display.scale::10;audio.frequency")
	ok, _ := prefs.GetCommandLinePref("audio.frequency")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.scale::10")
}

func TestCommandLineStackConsumption(t *testing.T) {
	prefs.PushCommandLineStack("display.scale::10; audio.frequency::880")
	defer prefs.PopCommandLineStack()

	ok, v := prefs.GetCommandLinePref("display.scale")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("10"))

	// values can only be requested once
	ok, _ = prefs.GetCommandLinePref("display.scale")
	test.ExpectFailure(t, ok)
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("display.scale::10")
	prefs.PushCommandLineStack("audio.frequency::880")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is consulted
	ok, _ := prefs.GetCommandLinePref("display.scale")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "audio.frequency::880")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.scale::10")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

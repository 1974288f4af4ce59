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

// Package wavwriter implements the audio.Sink interface by recording what a
// playback device would have played to a WAV file.
//
// Playback is emulated against a clock. When the sink is playing, samples are
// taken from the front of the queue at the sample rate. Samples that are
// cleared from the queue before they are due are never recorded. Audio data
// is buffered in memory in its entirety and written to disk on Close(). It is
// therefore probably only suitable for testing purposes.
package wavwriter

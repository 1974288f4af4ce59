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

package audio

// Sink is an audio playback device that accepts whole waveforms.
type Sink interface {
	// Enqueue the waveform for playback. The waveform is played after any
	// waveform already in the queue.
	Enqueue(wf Waveform) error

	// Play resumes playback of the queue.
	Play()

	// Pause playback. The queue is kept.
	Pause()

	// Clear discards everything in the queue.
	Clear()

	// Empty returns true if there is nothing left to play.
	Empty() bool
}

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

// Package limiter paces the driving loop so that frames are produced at a
// fixed rate.
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter waits on a ticker so that CheckFrame() returns at no more than the
// requested rate.
type Limiter struct {
	// whether to wait in CheckFrame()
	Active bool

	// the requested number of frames per second
	IdealFPS atomic.Value // float32

	// the limiter pulse. waiting for every frame is inaccurate for high frame
	// rates so the pulse ticks once every pulseCtLimit frames
	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// the measured number of frames per second
	Measured atomic.Value // float32

	// the next N frames will not wait
	Nudge atomic.Int32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(fps float32) *Limiter {
	lmtr := &Limiter{
		Active:         true,
		pulse:          time.NewTicker(time.Millisecond * 16),
		measuringPulse: time.NewTicker(time.Second),
	}
	lmtr.IdealFPS.Store(float32(0))
	lmtr.Measured.Store(float32(0))
	lmtr.SetLimit(fps)
	return lmtr
}

// SetLimit changes the number of frames per second. Values of zero or less
// are ignored.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0 {
		return
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called once every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if nudge := lmtr.Nudge.Load(); nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if !lmtr.Active {
		return
	}

	lmtr.pulseCt++
	if lmtr.pulseCt >= lmtr.pulseCtLimit {
		lmtr.pulseCt = 0
		<-lmtr.pulse.C
	}
}

// MeasureActual updates the Measured value once a second. It is cheap enough
// to be called every frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.Measured.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter's tickers. The limiter should not be used afterwards.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}

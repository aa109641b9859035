// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package limiter

import (
	"time"
)

// Pacer limits the rate at which frames are completed.
type Pacer struct {
	base   time.Duration
	target time.Duration
	speed  float64

	// time of the most recent call to Pace()
	last time.Time

	// the actual number of frames per second being achieved
	actual         float32
	actualCt       int
	actualCtTarget int
	actualRefTime  time.Time

	// the clock and sleep function used by the pacer. replaced by tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer is the preferred method of initialisation for the Pacer type. The
// base duration is the duration of one frame at normal speed. A base
// duration of zero or less is treated as one sixtieth of a second.
func NewPacer(base time.Duration) *Pacer {
	return newPacer(base, time.Now, time.Sleep)
}

// NewPacerWithClock is the same as NewPacer() but with a specific clock and
// sleep function.
func NewPacerWithClock(base time.Duration, now func() time.Time, sleep func(time.Duration)) *Pacer {
	return newPacer(base, now, sleep)
}

func newPacer(base time.Duration, now func() time.Time, sleep func(time.Duration)) *Pacer {
	if base <= 0 {
		base = time.Second / 60
	}
	p := &Pacer{
		base:  base,
		now:   now,
		sleep: sleep,
	}
	p.SetSpeed(1.0)
	p.last = p.now()
	p.actualRefTime = p.last
	p.actualCtTarget = int(time.Second / base)
	return p
}

// SetSpeed changes the target duration of a frame. The speed must be
// greater than zero. Values of zero or less are ignored.
func (p *Pacer) SetSpeed(speed float64) {
	if speed <= 0 {
		return
	}

	t := time.Duration(float64(p.base) / speed)
	if t <= 0 {
		t = 1
	}

	p.speed = speed
	p.target = t
}

// Speed returns the current speed factor.
func (p *Pacer) Speed() float64 {
	return p.speed
}

// Target returns the target duration of one frame.
func (p *Pacer) Target() time.Duration {
	return p.target
}

// Reset sets the reference time of the pacer to now. Useful after a pause in
// emulation.
func (p *Pacer) Reset() {
	p.last = p.now()
}

// Pace should be called once per completed frame. It sleeps for whatever
// remains of the target duration since the previous call.
func (p *Pacer) Pace() {
	elapsed := p.now().Sub(p.last)
	if elapsed < p.target {
		p.sleep(p.target - elapsed)
	}
	p.last = p.now()
	p.measureActual()
}

// Measured returns the actual number of frames per second being achieved.
// The value is updated about once every second.
func (p *Pacer) Measured() float32 {
	return p.actual
}

// called every frame to calculate the actual frame rate being achieved
func (p *Pacer) measureActual() {
	p.actualCt++
	if p.actualCt >= p.actualCtTarget {
		t := p.now()
		d := t.Sub(p.actualRefTime).Seconds()
		if d > 0 {
			p.actual = float32(p.actualCt) / float32(d)
		}

		// remeasure about once a second. if the actual rate is less than one
		// frame per second then we remeasure every frame
		if p.actual > 1 {
			p.actualCtTarget = int(p.actual)
		} else {
			p.actualCtTarget = 1
		}

		p.actualRefTime = t
		p.actualCt = 0
	}
}

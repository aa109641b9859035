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

package otoaudio

import (
	"encoding/binary"
	"math"
	"sync"
)

// Ring is a fixed size queue of samples. It is written to by the driver
// goroutine and read by the oto player.
type Ring struct {
	crit  sync.Mutex
	data  []float32
	read  int
	count int

	// the number of samples that could not be added because the ring was full
	dropped int

	// the number of times the reader found the ring empty
	underruns int
}

// NewRing is the preferred method of initialisation for the Ring type.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{
		data: make([]float32, capacity),
	}
}

// Cap returns the maximum number of samples in the ring.
func (r *Ring) Cap() int {
	return len(r.data)
}

// Len returns the number of samples in the ring.
func (r *Ring) Len() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.count
}

// Dropped returns the number of samples that have been dropped because the
// ring was full.
func (r *Ring) Dropped() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.dropped
}

// Underruns returns the number of reads that found fewer samples than wanted.
func (r *Ring) Underruns() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.underruns
}

// Push samples onto the ring. Returns the number of samples that were added.
// Samples that do not fit are dropped.
func (r *Ring) Push(samples []float32) int {
	r.crit.Lock()
	defer r.crit.Unlock()

	n := min(len(samples), len(r.data)-r.count)
	w := (r.read + r.count) % len(r.data)
	for _, s := range samples[:n] {
		r.data[w] = s
		w++
		if w == len(r.data) {
			w = 0
		}
	}
	r.count += n
	r.dropped += len(samples) - n

	return n
}

// Pop samples from the ring into dst. Returns the number of samples copied.
func (r *Ring) Pop(dst []float32) int {
	r.crit.Lock()
	defer r.crit.Unlock()

	n := min(len(dst), r.count)
	for i := range n {
		dst[i] = r.data[r.read]
		r.read++
		if r.read == len(r.data) {
			r.read = 0
		}
	}
	r.count -= n
	if n < len(dst) {
		r.underruns++
	}

	return n
}

// Read implements the io.Reader interface. Samples are written as 32 bit
// little endian floats. The buffer is always filled. Silence is used when
// the ring is empty so the player never stops.
func (r *Ring) Read(p []byte) (int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	n := len(p) / 4
	i := 0
	for ; i < n && r.count > 0; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(r.data[r.read]))
		r.read++
		if r.read == len(r.data) {
			r.read = 0
		}
		r.count--
	}
	if i < n {
		r.underruns++
	}
	clear(p[i*4:])

	return len(p), nil
}

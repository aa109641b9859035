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

// Package backpressure keeps the audio device queue close to a target
// occupancy by switching sample production in the machine on and off.
//
// Production starts when the queue drops below the floor and stops when the
// queue rises above it. The controller only changes state when the
// occupancy crosses the floor in the direction opposite to the current
// state, which stops it switching on every frame when the occupancy is close
// to the floor.
package backpressure

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
)

// Producer is the part of the machine that generates audio samples.
type Producer interface {
	ProduceSamples(bool)
	IsProducingSamples() bool
	Samples() []float32
}

// Queue is the audio device queue. Size() is measured in sample frames.
type Queue interface {
	Size() int
	Queue(samples []float32) error
}

// Recorder receives a copy of every batch of samples added to the queue.
type Recorder interface {
	Record(samples []float32) error
}

// Floor returns the default floor for the sample rate. Four tenths of a
// second of audio.
func Floor(sampleRate int) int {
	return 4 * (sampleRate / 10)
}

// Controller is the audio backpressure controller.
type Controller struct {
	floor    int
	queue    Queue
	recorder Recorder

	// number of times production has been switched on or off
	transitions int
}

// NewController is the preferred method of initialisation for the
// Controller type. A floor of zero or less is replaced with the default
// floor for the sample rate.
func NewController(queue Queue, sampleRate int, floor int) *Controller {
	if floor <= 0 {
		floor = Floor(sampleRate)
	}
	return &Controller{
		floor: floor,
		queue: queue,
	}
}

// SetRecorder adds a recorder to the controller. A nil recorder removes any
// recorder that has been set.
func (ctl *Controller) SetRecorder(r Recorder) {
	ctl.recorder = r
}

// Floor returns the occupancy floor of the controller.
func (ctl *Controller) Floor() int {
	return ctl.floor
}

// Transitions returns the number of times production has been switched.
func (ctl *Controller) Transitions() int {
	return ctl.transitions
}

// Step should be called once for every completed frame. Production is
// switched if necessary and then any samples generated by the producer are
// added to the queue.
func (ctl *Controller) Step(p Producer) error {
	occupancy := ctl.queue.Size()
	producing := p.IsProducingSamples()

	if !producing && occupancy < ctl.floor {
		p.ProduceSamples(true)
		ctl.transitions++
		logger.Logf(logger.Debug, "audio", "producing samples (queue %d)", occupancy)
	} else if producing && occupancy > ctl.floor {
		p.ProduceSamples(false)
		ctl.transitions++
		logger.Logf(logger.Debug, "audio", "pausing samples (queue %d)", occupancy)
	}

	samples := p.Samples()
	if len(samples) == 0 {
		return nil
	}

	if err := ctl.queue.Queue(samples); err != nil {
		return curated.Errorf("audio: %v", err)
	}

	if ctl.recorder != nil {
		if err := ctl.recorder.Record(samples); err != nil {
			return curated.Errorf("audio: recorder: %v", err)
		}
	}

	return nil
}

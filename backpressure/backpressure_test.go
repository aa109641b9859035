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

package backpressure_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gophernes/backpressure"
	"github.com/jetsetilly/gophernes/test"
)

type mockQueue struct {
	size   int
	queued int
	err    error
}

func (q *mockQueue) Size() int {
	return q.size
}

func (q *mockQueue) Queue(samples []float32) error {
	if q.err != nil {
		return q.err
	}
	q.queued += len(samples)
	return nil
}

type mockProducer struct {
	producing bool
	toggles   int
	samples   []float32
}

func (p *mockProducer) ProduceSamples(v bool) {
	if v != p.producing {
		p.toggles++
	}
	p.producing = v
}

func (p *mockProducer) IsProducingSamples() bool {
	return p.producing
}

func (p *mockProducer) Samples() []float32 {
	s := p.samples
	p.samples = nil
	return s
}

type mockRecorder struct {
	recorded int
}

func (r *mockRecorder) Record(samples []float32) error {
	r.recorded += len(samples)
	return nil
}

func TestFloor(t *testing.T) {
	test.ExpectEquality(t, backpressure.Floor(44100), 17640)

	q := &mockQueue{}
	ctl := backpressure.NewController(q, 44100, 0)
	test.ExpectEquality(t, ctl.Floor(), 17640)

	ctl = backpressure.NewController(q, 44100, 1000)
	test.ExpectEquality(t, ctl.Floor(), 1000)
}

func TestDirection(t *testing.T) {
	q := &mockQueue{}
	p := &mockProducer{}
	ctl := backpressure.NewController(q, 44100, 0)

	// below floor and not producing. start producing
	q.size = 17639
	test.ExpectSuccess(t, ctl.Step(p))
	test.ExpectSuccess(t, p.producing)

	// below floor and producing. no change
	test.ExpectSuccess(t, ctl.Step(p))
	test.ExpectSuccess(t, p.producing)

	// exactly at the floor. no change
	q.size = 17640
	test.ExpectSuccess(t, ctl.Step(p))
	test.ExpectSuccess(t, p.producing)

	// above floor and producing. stop producing
	q.size = 17641
	test.ExpectSuccess(t, ctl.Step(p))
	test.ExpectFailure(t, p.producing)

	// above floor and not producing. no change
	test.ExpectSuccess(t, ctl.Step(p))
	test.ExpectFailure(t, p.producing)

	// exactly at the floor. no change
	q.size = 17640
	test.ExpectSuccess(t, ctl.Step(p))
	test.ExpectFailure(t, p.producing)

	test.ExpectEquality(t, ctl.Transitions(), 2)
}

func TestHysteresis(t *testing.T) {
	q := &mockQueue{}
	p := &mockProducer{producing: true}
	ctl := backpressure.NewController(q, 44100, 0)

	// occupancy rises through the floor and then falls back through it. the
	// producer should be switched exactly twice
	occupancy := []int{10000, 15000, 17000, 17640, 18000, 20000, 19000, 17640, 17000, 12000}
	for _, o := range occupancy {
		q.size = o
		test.ExpectSuccess(t, ctl.Step(p))
	}

	test.ExpectEquality(t, p.toggles, 2)
	test.ExpectSuccess(t, p.producing)
}

func TestQueueing(t *testing.T) {
	q := &mockQueue{size: 100000}
	p := &mockProducer{producing: true}
	r := &mockRecorder{}
	ctl := backpressure.NewController(q, 44100, 0)
	ctl.SetRecorder(r)

	// samples are queued even when production is being switched off
	p.samples = make([]float32, 735)
	test.ExpectSuccess(t, ctl.Step(p))
	test.ExpectFailure(t, p.producing)
	test.ExpectEquality(t, q.queued, 735)
	test.ExpectEquality(t, r.recorded, 735)

	// no samples is fine
	test.ExpectSuccess(t, ctl.Step(p))
	test.ExpectEquality(t, q.queued, 735)

	// queue errors are returned
	q.err = errors.New("device lost")
	p.samples = make([]float32, 10)
	test.ExpectFailure(t, ctl.Step(p))
	test.ExpectEquality(t, r.recorded, 735)
}

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

// Package mailbox is the only path from the UI thread into the driver. It
// is a first-in first-out queue with a single producer and a single consumer.
// Neither side ever blocks.
//
// The producer calls Send() for every command and Close() when it will send
// no more. The consumer calls Poll() and Done() when it stops polling.
package mailbox

import (
	"sync"

	"github.com/jetsetilly/gophernes/curated"
)

// Sentinel error patterns.
const (
	Full         = "mailbox: full"
	Disconnected = "mailbox: disconnected"
)

// DefaultCapacity is the number of commands that can be waiting before Send()
// fails.
const DefaultCapacity = 1024

// Mailbox carries commands from the UI thread to the driver.
type Mailbox struct {
	queue chan Command

	closed    chan bool
	closeOnce sync.Once

	done     chan bool
	doneOnce sync.Once
}

// NewMailbox is the preferred method of initialisation for the Mailbox type.
func NewMailbox(capacity int) *Mailbox {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Mailbox{
		queue:  make(chan Command, capacity),
		closed: make(chan bool),
		done:   make(chan bool),
	}
}

// Send adds a command to the end of the queue. It never blocks. If the queue
// is full the command is dropped and a Full error is returned. If the
// consumer has gone then a Disconnected error is returned.
func (m *Mailbox) Send(cmd Command) error {
	select {
	case <-m.done:
		return curated.Errorf(Disconnected)
	case <-m.closed:
		return curated.Errorf(Disconnected)
	default:
	}

	select {
	case m.queue <- cmd:
		return nil
	default:
		return curated.Errorf(Full)
	}
}

// Poll returns the command at the front of the queue, or nil if there is no
// command waiting. It never blocks. Once the producer has closed the mailbox
// and the queue is empty, Poll returns a Disconnected error.
func (m *Mailbox) Poll() (Command, error) {
	select {
	case cmd := <-m.queue:
		return cmd, nil
	default:
	}

	// checking the closed channel after the queue means that commands sent
	// before Close() are always delivered
	select {
	case <-m.closed:
		select {
		case cmd := <-m.queue:
			return cmd, nil
		default:
		}
		return nil, curated.Errorf(Disconnected)
	default:
		return nil, nil
	}
}

// Close is called by the producer to indicate that no more commands will be
// sent. It is safe to call more than once.
func (m *Mailbox) Close() {
	m.closeOnce.Do(func() {
		close(m.closed)
	})
}

// Done is called by the consumer to indicate that it will not poll again.
// It is safe to call more than once.
func (m *Mailbox) Done() {
	m.doneOnce.Do(func() {
		close(m.done)
	})
}

// Stopped returns a channel that is closed when the consumer calls Done().
func (m *Mailbox) Stopped() <-chan bool {
	return m.done
}

// Pending returns the number of commands waiting in the queue.
func (m *Mailbox) Pending() int {
	return len(m.queue)
}

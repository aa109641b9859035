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
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
)

// the length of the ring buffer. long enough for the backpressure floor and
// a few frames
const ringDuration = time.Second

// the buffer inside the oto player
const playerBuffer = 50 * time.Millisecond

// Audio implements the driver.AudioQueue interface.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player
	ring   *Ring
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// function waits until the audio device is ready.
func NewAudio(sampleRate int) (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   playerBuffer,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("otoaudio: %v", err)
	}
	<-ready

	aud := &Audio{
		ctx:  ctx,
		ring: NewRing(int(float64(sampleRate) * ringDuration.Seconds())),
	}

	aud.player = ctx.NewPlayer(aud.ring)
	aud.player.Play()

	logger.Logf(logger.Info, "otoaudio", "frequency: %d samples/sec", sampleRate)
	logger.Logf(logger.Info, "otoaudio", "ring size: %d samples", aud.ring.Cap())

	return aud, nil
}

// Size implements the driver.AudioQueue interface. The size is the number of
// samples in the ring and in the buffer of the player.
func (aud *Audio) Size() int {
	return aud.ring.Len() + aud.player.BufferedSize()/4
}

// Queue implements the driver.AudioQueue interface.
func (aud *Audio) Queue(samples []float32) error {
	if err := aud.ctx.Err(); err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	if n := aud.ring.Push(samples); n < len(samples) {
		return curated.Errorf("otoaudio: %v", curated.Errorf("ring full: %d samples dropped", len(samples)-n))
	}
	return nil
}

// Close the audio player.
func (aud *Audio) Close() {
	if err := aud.player.Close(); err != nil {
		logger.Log(logger.Warn, "otoaudio", err)
	}
	if aud.ring.Underruns() > 0 {
		logger.Logf(logger.Debug, "otoaudio", "%d underruns", aud.ring.Underruns())
	}
}

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

package driver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/driver"
	"github.com/jetsetilly/gophernes/mailbox"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/video"
)

// number of clocks in a frame of the mock machine
const clocksPerFrame = 10

type mockMachine struct {
	clocks    int
	fb        video.FrameBuffer
	pt        video.PatternTable
	pal       video.Palette
	producing bool

	// the clock count at the time of each command
	commandClocks []int

	inputs     []uint8
	inputErr   error
	resets     int
	paletteID  uint8
	saves      int
	saveErr    error
	states     []string
	loaded     []string
	loadSaves  int
	samplesReq int
}

func (m *mockMachine) Clock() {
	m.clocks++
}

func (m *mockMachine) FrameBuffer() (*video.FrameBuffer, bool) {
	return &m.fb, m.clocks%clocksPerFrame == 0
}

func (m *mockMachine) PatternTable(idx int) (*video.PatternTable, bool) {
	return &m.pt, idx == 0 || idx == 1
}

func (m *mockMachine) Palette() (*video.Palette, bool) {
	return &m.pal, true
}

func (m *mockMachine) ProduceSamples(v bool) {
	m.producing = v
}

func (m *mockMachine) IsProducingSamples() bool {
	return m.producing
}

func (m *mockMachine) Samples() []float32 {
	m.samplesReq++
	if m.producing {
		return make([]float32, 100)
	}
	return nil
}

func (m *mockMachine) record() {
	m.commandClocks = append(m.commandClocks, m.clocks)
}

func (m *mockMachine) Input(_ int, buttons uint8) error {
	m.record()
	m.inputs = append(m.inputs, buttons)
	return m.inputErr
}

func (m *mockMachine) Reset() {
	m.record()
	m.resets++
}

func (m *mockMachine) SetDebugPaletteID(id uint8) error {
	m.record()
	if id > 7 {
		return errors.New("invalid palette id")
	}
	m.paletteID = id
	return nil
}

func (m *mockMachine) Save() error {
	m.record()
	m.saves++
	return m.saveErr
}

func (m *mockMachine) SaveState(path string) error {
	m.record()
	m.states = append(m.states, path)
	return nil
}

func (m *mockMachine) LoadSave() error {
	m.loadSaves++
	return nil
}

func (m *mockMachine) LoadState(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func (m *mockMachine) OneFrameDuration() time.Duration {
	return 16 * time.Millisecond
}

type mockPresentation struct {
	// sequence of calls, one letter per call
	calls     []byte
	debug     bool
	width     int
	height    int
	renderErr error
	fps       float32
}

func (p *mockPresentation) UpdatePrimaryBuffer(*video.FrameBuffer) {
	p.calls = append(p.calls, 'P')
}

func (p *mockPresentation) UpdateDebugBuffer(*video.DebugBuffer) {
	p.calls = append(p.calls, 'D')
}

func (p *mockPresentation) SetDebug(v bool) {
	p.debug = v
}

func (p *mockPresentation) Resize(w int, h int) {
	p.width = w
	p.height = h
}

func (p *mockPresentation) RequestRedraw() {
	p.calls = append(p.calls, 'R')
}

func (p *mockPresentation) Render() error {
	p.calls = append(p.calls, 'X')
	return p.renderErr
}

func (p *mockPresentation) SetFPS(fps float32) {
	p.fps = fps
}

func (p *mockPresentation) count(c byte) int {
	var n int
	for _, v := range p.calls {
		if v == c {
			n++
		}
	}
	return n
}

type mockQueue struct {
	size   int
	queued int
}

func (q *mockQueue) Size() int {
	return q.size
}

func (q *mockQueue) Queue(samples []float32) error {
	q.queued += len(samples)
	return nil
}

type harness struct {
	machine *mockMachine
	pres    *mockPresentation
	queue   *mockQueue
	mail    *mailbox.Mailbox
	drv     *driver.Driver
	sleeps  int
}

func newHarness(t *testing.T, cfg driver.Config) *harness {
	t.Helper()

	h := &harness{
		machine: &mockMachine{},
		pres:    &mockPresentation{},
		queue:   &mockQueue{},
		mail:    mailbox.NewMailbox(64),
	}

	// the clock never advances so every frame is faster than the target
	now := time.Now()
	cfg.Now = func() time.Time {
		return now
	}
	cfg.Sleep = func(time.Duration) {
		h.sleeps++
	}

	var err error
	h.drv, err = driver.NewDriver(h.machine, h.pres, h.queue, h.mail, cfg)
	test.DemandSuccess(t, err)

	return h
}

func (h *harness) send(t *testing.T, cmds ...mailbox.Command) {
	t.Helper()
	for _, c := range cmds {
		test.DemandSuccess(t, h.mail.Send(c))
	}
}

func TestNewDriver(t *testing.T) {
	_, err := driver.NewDriver(nil, &mockPresentation{}, nil, mailbox.NewMailbox(1), driver.Config{})
	test.ExpectFailure(t, err)
	_, err = driver.NewDriver(&mockMachine{}, nil, nil, mailbox.NewMailbox(1), driver.Config{})
	test.ExpectFailure(t, err)
	_, err = driver.NewDriver(&mockMachine{}, &mockPresentation{}, nil, nil, driver.Config{})
	test.ExpectFailure(t, err)

	// a nil audio queue is allowed
	_, err = driver.NewDriver(&mockMachine{}, &mockPresentation{}, nil, mailbox.NewMailbox(1), driver.Config{})
	test.ExpectSuccess(t, err)
}

func TestCloseApp(t *testing.T) {
	h := newHarness(t, driver.Config{})
	h.send(t, mailbox.CloseApp{})

	err := h.drv.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.machine.saves, 1)
	test.ExpectEquality(t, h.machine.clocks, 1)

	// the consumer has gone so the producer sees a disconnection
	err = h.mail.Send(mailbox.Reset{})
	test.ExpectSuccess(t, curated.Is(err, mailbox.Disconnected))
}

func TestCloseAppSaveFailure(t *testing.T) {
	h := newHarness(t, driver.Config{})
	h.machine.saveErr = errors.New("no battery")
	h.send(t, mailbox.CloseApp{})

	// a failed save does not stop the driver closing normally
	test.ExpectSuccess(t, h.drv.Run(context.Background()))
	test.ExpectEquality(t, h.machine.saves, 1)
}

func TestOneCommandPerClock(t *testing.T) {
	h := newHarness(t, driver.Config{})
	h.send(t,
		mailbox.Reset{},
		mailbox.Input{Controller: 0, Buttons: mailbox.ButtonA},
		mailbox.ChangePaletteID{ID: 5},
		mailbox.SaveState{Path: "test.data"},
		mailbox.CloseApp{},
	)

	test.DemandSuccess(t, h.drv.Run(context.Background()))

	// commands are applied in order and one per clock
	test.DemandEquality(t, len(h.machine.commandClocks), 5)
	for i, c := range h.machine.commandClocks {
		test.ExpectEquality(t, c, i+1)
	}

	test.ExpectEquality(t, h.machine.resets, 1)
	test.ExpectEquality(t, len(h.machine.inputs), 1)
	test.ExpectEquality(t, h.machine.inputs[0], mailbox.ButtonA)
	test.ExpectEquality(t, h.machine.paletteID, 5)
	test.ExpectEquality(t, len(h.machine.states), 1)
	test.ExpectEquality(t, h.machine.states[0], "test.data")
}

func TestDisconnection(t *testing.T) {
	h := newHarness(t, driver.Config{})
	h.send(t, mailbox.Reset{})
	h.mail.Close()

	err := h.drv.Run(context.Background())
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, driver.IsFatal(err))
	test.ExpectSuccess(t, curated.Has(err, mailbox.Disconnected))

	// the command sent before the close was still applied
	test.ExpectEquality(t, h.machine.resets, 1)

	// no save is attempted on a disconnection
	test.ExpectEquality(t, h.machine.saves, 0)
}

func TestInputFailure(t *testing.T) {
	h := newHarness(t, driver.Config{})
	h.machine.inputErr = errors.New("bad controller")
	h.send(t, mailbox.Input{Controller: 3}, mailbox.CloseApp{})

	err := h.drv.Run(context.Background())
	test.ExpectSuccess(t, driver.IsFatal(err))
	test.ExpectSuccess(t, curated.Has(err, driver.FatalInput))
	test.ExpectEquality(t, h.machine.saves, 0)
}

func TestRecoverableErrors(t *testing.T) {
	h := newHarness(t, driver.Config{})
	h.pres.renderErr = errors.New("render failed")

	// wait for two frames before closing
	for range 2 * clocksPerFrame {
		h.send(t, mailbox.DrawFrame{})
	}
	h.send(t, mailbox.ChangePaletteID{ID: 8}, mailbox.Save{Path: "test.sav"}, mailbox.CloseApp{})
	h.machine.saveErr = errors.New("no battery")

	test.ExpectSuccess(t, h.drv.Run(context.Background()))
	test.ExpectEquality(t, h.drv.Frames(), 2)
	test.ExpectEquality(t, h.machine.paletteID, 0)
	test.ExpectEquality(t, h.machine.saves, 2)
}

func TestFrames(t *testing.T) {
	h := newHarness(t, driver.Config{})

	// three frames and a bit
	for range 3*clocksPerFrame + 1 {
		h.send(t, mailbox.ResizeWindow{Width: 512, Height: 480})
	}
	h.send(t, mailbox.CloseApp{})

	test.DemandSuccess(t, h.drv.Run(context.Background()))

	test.ExpectEquality(t, h.drv.Frames(), 3)
	test.ExpectEquality(t, h.pres.count('P'), 3)
	test.ExpectEquality(t, h.pres.count('D'), 0)
	test.ExpectEquality(t, h.pres.count('X'), 3)
	test.ExpectEquality(t, h.sleeps, 3)
	test.ExpectEquality(t, h.machine.samplesReq, 3)
	test.ExpectEquality(t, h.pres.width, 512)
	test.ExpectEquality(t, h.pres.height, 480)

	// the queue was empty so production was switched on during the first
	// frame and samples were queued
	test.ExpectSuccess(t, h.machine.producing)
	test.ExpectEquality(t, h.queue.queued, 300)

	// each frame is in the order primary, render, redraw
	test.ExpectEquality(t, string(h.pres.calls), "PXRPXRPXR")
}

func TestDebugToggle(t *testing.T) {
	h := newHarness(t, driver.Config{})

	// one frame without the overlay and then one frame with it
	for range clocksPerFrame {
		h.send(t, mailbox.DrawFrame{})
	}
	h.send(t, mailbox.ToggleDebugWindow{})
	for range clocksPerFrame - 1 {
		h.send(t, mailbox.DrawFrame{})
	}
	h.send(t, mailbox.CloseApp{})

	test.DemandSuccess(t, h.drv.Run(context.Background()))
	test.ExpectSuccess(t, h.drv.Debug())
	test.ExpectSuccess(t, h.pres.debug)
	test.ExpectEquality(t, h.pres.count('P'), 2)
	test.ExpectEquality(t, h.pres.count('D'), 1)
}

func TestDebugFromStart(t *testing.T) {
	h := newHarness(t, driver.Config{Debug: true, LoadSave: true, StartState: "start.data"})
	for range clocksPerFrame {
		h.send(t, mailbox.DrawFrame{})
	}
	h.send(t, mailbox.CloseApp{})

	test.DemandSuccess(t, h.drv.Run(context.Background()))
	test.ExpectSuccess(t, h.pres.debug)
	test.ExpectEquality(t, h.pres.count('D'), 1)
	test.ExpectEquality(t, h.machine.loadSaves, 1)
	test.DemandEquality(t, len(h.machine.loaded), 1)
	test.ExpectEquality(t, h.machine.loaded[0], "start.data")
}

func TestSpeed(t *testing.T) {
	h := newHarness(t, driver.Config{})
	test.ExpectEquality(t, h.drv.Target(), 16*time.Millisecond)

	// the same speed twice is the same as once
	h.send(t,
		mailbox.ChangeEmulationSpeed{Factor: 2.0},
		mailbox.ChangeEmulationSpeed{Factor: 2.0},
		mailbox.CloseApp{},
	)
	test.DemandSuccess(t, h.drv.Run(context.Background()))
	test.ExpectEquality(t, h.drv.Speed(), 2.0)
	test.ExpectEquality(t, h.drv.Target(), 8*time.Millisecond)
}

func TestSpeedClamp(t *testing.T) {
	test.ExpectEquality(t, driver.ClampSpeed(1.5), 1.5)
	test.ExpectEquality(t, driver.ClampSpeed(0), driver.MinSpeed)
	test.ExpectEquality(t, driver.ClampSpeed(-3), driver.MinSpeed)
	test.ExpectEquality(t, driver.ClampSpeed(100), driver.MaxSpeed)

	h := newHarness(t, driver.Config{Speed: 100})
	test.ExpectEquality(t, h.drv.Speed(), driver.MaxSpeed)

	h = newHarness(t, driver.Config{})
	h.send(t, mailbox.ChangeEmulationSpeed{Factor: 0}, mailbox.CloseApp{})
	test.DemandSuccess(t, h.drv.Run(context.Background()))
	test.ExpectEquality(t, h.drv.Speed(), driver.MinSpeed)
	test.ExpectSuccess(t, h.drv.Target() > 0)
}

func TestCancel(t *testing.T) {
	h := newHarness(t, driver.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.drv.Run(ctx)
	test.ExpectSuccess(t, driver.IsFatal(err))
	test.ExpectSuccess(t, curated.Has(err, driver.Cancelled))
	test.ExpectEquality(t, h.drv.Frames(), 1)
}

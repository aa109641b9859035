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

package termui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/userinput"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// the terminal device used for input
const ttyDevice = "/dev/tty"

// how long a key is held down after it is pressed
const holdDuration = 150 * time.Millisecond

// how often the status line is updated
const statusInterval = 500 * time.Millisecond

// TermUI is the terminal front-end.
type TermUI struct {
	srf *gui.Surface
	fps gui.TitleFPS

	tty    *term.Term
	output io.Writer

	// chunks of input read from the terminal
	input chan []byte

	// closed by Destroy() so that the reader never blocks on a full input
	// channel once the event loop has finished
	stop     chan bool
	stopOnce sync.Once

	// keys waiting to be released and the time of release
	held map[string]time.Time

	// number of snapshots received from the surface
	frames int
}

// presentation joins the surface with the FPS display so that the driver
// sees both interfaces
type presentation struct {
	*gui.Surface
	*gui.TitleFPS
}

// NewTermUI is the preferred method of initialisation for the TermUI type.
// Standard input must be a terminal.
func NewTermUI(output io.Writer) (*TermUI, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, curated.Errorf("termui: %v", "input is not a terminal")
	}

	tty, err := term.Open(ttyDevice, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("termui: %v", err)
	}

	ui := &TermUI{
		srf:    gui.NewSurface(nil),
		tty:    tty,
		output: output,
		input:  make(chan []byte, 16),
		stop:   make(chan bool),
		held:   make(map[string]time.Time),
	}

	go readInput(ui.tty, ui.input, ui.stop)

	return ui, nil
}

// Presentation returns the value to be given to the driver. It implements
// driver.Presentation and driver.FPSDisplay.
func (ui *TermUI) Presentation() any {
	return presentation{Surface: ui.srf, TitleFPS: &ui.fps}
}

// Destroy restores the terminal to the state it was in before NewTermUI().
func (ui *TermUI) Destroy() {
	ui.stopOnce.Do(func() {
		close(ui.stop)
	})
	if err := ui.tty.Restore(); err != nil {
		logger.Log(logger.Warn, "termui", err)
	}
	if err := ui.tty.Close(); err != nil {
		logger.Log(logger.Warn, "termui", err)
	}
	fmt.Fprint(ui.output, "\r\n")
}

// readInput sends chunks read from r to the input channel until r returns an
// error or the stop channel is closed. The input channel is closed when
// readInput returns.
func readInput(r io.Reader, input chan<- []byte, stop <-chan bool) {
	defer close(input)
	for {
		b := make([]byte, 16)
		n, err := r.Read(b)
		if err != nil {
			return
		}
		select {
		case input <- b[:n]:
		case <-stop:
			return
		}
	}
}

// Service runs the event loop until the driver stops. A value on the
// interrupt channel is treated as a quit event. The returned error is the
// error from HandleUserInput(), which is always fatal.
func (ui *TermUI) Service(ctl *userinput.Controllers, mb userinput.Mailbox, interrupt <-chan os.Signal) error {
	status := time.NewTicker(statusInterval)
	defer status.Stop()

	release := time.NewTicker(holdDuration / 3)
	defer release.Stop()

	input := ui.input

	for {
		select {
		case <-mb.Stopped():
			return nil

		case <-interrupt:
			if err := ctl.HandleUserInput(userinput.EventQuit{}, mb); err != nil {
				return err
			}

		case b, ok := <-input:
			if !ok {
				// the terminal has gone. treat it as the window closing
				input = nil
				b = []byte{ctrlD}
			}
			for _, ev := range Parse(b) {
				if kev, ok := ev.(userinput.EventKeyboard); ok {
					if _, ok := ui.held[kev.Key]; ok {
						kev.Repeat = true
					}
					ui.held[kev.Key] = time.Now().Add(holdDuration)
					ev = kev
				}
				if err := ctl.HandleUserInput(ev, mb); err != nil {
					return err
				}
			}

		case now := <-release.C:
			for key, t := range ui.held {
				if now.After(t) {
					delete(ui.held, key)
					if err := ctl.HandleUserInput(userinput.EventKeyboard{Key: key}, mb); err != nil {
						return err
					}
				}
			}

		case s := <-ui.srf.Frames():
			ui.frames = s.Frame
			ui.srf.Recycle(s)

		case <-status.C:
			fmt.Fprintf(ui.output, "\r%s frame %d speed %.2f   ", ui.fps.Title("GopherNES"), ui.frames, ctl.Speed())
		}
	}
}

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

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/driver"
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cartridge"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/mailbox"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/preferences"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/userinput"
	"github.com/jetsetilly/gophernes/video"
)

// write a cartridge with a battery to the directory
func writeROM(t *testing.T, dir string) string {
	t.Helper()

	d := []byte{'N', 'E', 'S', 0x1a, 1, 1, 0x02, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	d = append(d, make([]byte, cartridge.PRGUnit)...)
	d = append(d, make([]byte, cartridge.CHRUnit)...)

	fn := filepath.Join(dir, "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, d, 0o644))
	return fn
}

// wait for a snapshot from the surface that satisfies the condition
func waitFrame(t *testing.T, srf *gui.Surface, cond func(s *gui.Snapshot) bool) {
	t.Helper()

	timeout := time.After(30 * time.Second)
	for {
		select {
		case s := <-srf.Frames():
			ok := cond(s)
			srf.Recycle(s)
			if ok {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for frame")
		}
	}
}

// the driver, machine, mailbox and surface working together without a window
func TestHeadlessPlay(t *testing.T) {
	rom := writeROM(t, t.TempDir())

	cart, err := cartridge.NewCartridge(cartridgeloader.NewLoader(rom))
	test.DemandSuccess(t, err)

	nes, err := hardware.NewNES(cart, hardware.Config{})
	test.DemandSuccess(t, err)

	srf := gui.NewSurface(nil)
	mb := mailbox.NewMailbox(mailbox.DefaultCapacity)
	ctl := userinput.NewControllers(paths.StatePath(rom), cart.BatteryPath(), 1.0, 0)

	drv, err := driver.NewDriver(nes, srf, nil, mb, driver.Config{
		LoadSave: cart.Battery,
		Sleep:    func(time.Duration) {},
	})
	test.DemandSuccess(t, err)

	drvErr := make(chan error, 1)
	go func() {
		drvErr <- drv.Run(context.Background())
	}()

	waitFrame(t, srf, func(s *gui.Snapshot) bool {
		return s.Frame >= 2
	})

	press := func(key string) {
		t.Helper()
		test.ExpectSuccess(t, ctl.HandleUserInput(userinput.EventKeyboard{Key: key, Down: true}, mb))
		test.ExpectSuccess(t, ctl.HandleUserInput(userinput.EventKeyboard{Key: key, Down: false}, mb))
	}

	// show the debug overlay and save the state
	press("E")
	press("M")
	press("Up")
	test.ExpectEquality(t, ctl.Speed(), 1.5)

	waitFrame(t, srf, func(s *gui.Snapshot) bool {
		return s.Height == video.CombinedHeight
	})

	test.ExpectSuccess(t, ctl.HandleUserInput(userinput.EventQuit{}, mb))
	test.ExpectSuccess(t, ctl.Quit)

	select {
	case err := <-drvErr:
		test.ExpectSuccess(t, err)
	case <-time.After(30 * time.Second):
		t.Fatalf("timed out waiting for driver")
	}

	// the driver has stopped so the mailbox is disconnected
	err = mb.Send(mailbox.Reset{})
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, drv.Debug())
	test.ExpectEquality(t, drv.Speed(), 1.5)

	// the state was saved and the battery was saved when the driver closed
	_, err = os.Stat(paths.StatePath(rom))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(cart.BatteryPath())
	test.ExpectSuccess(t, err)
}

func TestOpenAudio(t *testing.T) {
	aud, closeAudio, err := openAudio("none", driver.DefaultSampleRate)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, aud == nil)
	closeAudio()

	_, closeAudio, err = openAudio("foo", driver.DefaultSampleRate)
	test.ExpectFailure(t, err)
	closeAudio()
}

func TestSavePreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prf, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	// a speed that cannot be stored is logged and the other values are saved
	prf.Speed.SetHookPre(func(v prefs.Value) error {
		return errors.New("speed refused")
	})

	logger.Clear()
	test.ExpectSuccess(t, savePreferences(prf, 2.0, 3, "oto", true))

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("gophernes: speed refused"))

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Speed.Get().(float64), preferences.DefaultSpeed)
	test.ExpectEquality(t, q.PaletteID.Get().(int), 3)
	test.ExpectEquality(t, q.Audio.String(), "OTO")
	test.ExpectSuccess(t, q.Debug.Get().(bool))
}

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

// Package driver runs the emulation loop. The driver owns the machine
// exclusively. Commands from the UI thread arrive through the mailbox and
// completed frames and audio leave through the Presentation and AudioQueue
// interfaces.
//
// Every iteration of the loop clocks the machine once, applies at most one
// command from the mailbox and, if the machine has completed a frame, hands
// the frame to the presentation, adjusts audio production and paces the loop
// to the frame rate of the machine.
//
// The driver should be started on its own goroutine. Run() locks the
// goroutine to its OS thread for the duration of the emulation:
//
//	drv, err := driver.NewDriver(machine, presentation, audio, mail, driver.Config{})
//	go func() {
//		fatal <- drv.Run(ctx)
//	}()
//
// Run() returns nil after a CloseApp command. Any other return is a fatal
// error.
package driver

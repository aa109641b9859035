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

// Package modalflag wraps the flag package from the standard library and
// adds program modes. Each mode has its own set of flags.
//
// Arguments are given to the Modes type with NewArgs() and parsed with
// Parse(). Non-flag arguments are retrieved with RemainingArgs() or GetArg().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "TERM")
//	speed := md.AddFloat64("speed", 1.0, "emulation speed")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode listed is the default mode. After Parse() the selected
// mode is returned by Mode() and the series of modes selected so far is
// returned by Path(). Flags for the selected mode are added after a call to
// NewMode() and parsed with another call to Parse().
//
// Sub-mode names are case insensitive.
//
// The -help flag is handled by Parse(). The help message includes the list
// of sub-modes and any text given to AdditionalHelp().
package modalflag

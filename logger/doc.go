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

// Package logger is the central log repository for gophernes. There is a
// single central log that any package can add to with the Log() and Logf()
// functions. Additional Logger instances can be created with NewLogger().
//
// Every log request takes a Permission argument. The request is only honoured
// if the Permission allows it. The Allow value always allows logging. The
// verbosity levels Error, Warn, Info, Debug and Trace allow logging if the
// level is at or below the level set with SetLevel().
//
//	logger.SetLevel(logger.Info)
//	logger.Log(logger.Info, "audio", "device opened")   // logged
//	logger.Log(logger.Debug, "audio", "queue occupancy") // ignored
//
// Identical consecutive entries are folded into a single entry with a repeat
// count.
package logger

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

package logger

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed.
var Allow Permission = allow{}

// Level is a verbosity level. It implements the Permission interface.
type Level int

// List of valid Level values, from least to most verbose.
const (
	Error Level = iota
	Warn
	Info
	Debug
	Trace
)

// the current verbosity level. logging requests for levels above this value
// are ignored.
var level atomic.Int32

func init() {
	level.Store(int32(Info))
}

// AllowLogging implements the Permission interface.
func (l Level) AllowLogging() bool {
	return int32(l) <= level.Load()
}

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	}
	return fmt.Sprintf("level %d", int(l))
}

// SetLevel changes the verbosity level for all Level permissions.
func SetLevel(l Level) {
	level.Store(int32(l))
}

// CurrentLevel returns the verbosity level set by SetLevel().
func CurrentLevel() Level {
	return Level(level.Load())
}

// ParseLevel converts a string to a Level. The string can be a number in the
// range 0 to 4 or the name of the level. The second return value is false if
// the string is not recognised.
func ParseLevel(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l := Error; l <= Trace; l++ {
		if s == l.String() || s == fmt.Sprintf("%d", int(l)) {
			return l, true
		}
	}
	return Info, false
}

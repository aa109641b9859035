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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a given
// pattern. The pattern is what differentiates one curated error from
// another. For example:
//
//	a := 10
//	e := curated.Errorf("error: value = %d", a)
//
//	if curated.Is(e, "error: value = %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("error: value = %d", a)
//	f := curated.Errorf("fatal: %v", e)
//
//	curated.Has(f, "error: value = %d") // true
//	curated.Is(f, "error: value = %d")  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We think of curated errors as 'expected' and
// uncurated errors as 'unexpected'.
//
// The Error() implementation normalises the error chain so that it does not
// contain duplicate adjacent parts. Wrapping an error with the same leading
// part that it already has is therefore harmless:
//
//	e := curated.Errorf("audio: %v", curated.Errorf("audio: device busy"))
//	fmt.Println(e) // audio: device busy
//
// Curated errors that wrap another error with the %v verb implement Unwrap()
// so they interoperate with errors.Is() and errors.As() from the standard
// library.
package curated

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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gophernes_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Float
	test.ExpectSuccess(t, dsk.Add("speed", &v))
	test.ExpectEquality(t, v.Get().(float64), 0.0)

	test.ExpectSuccess(t, v.Set(1.5))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "speed :: 1.5\n")

	test.ExpectSuccess(t, v.Set("2.25"))
	test.ExpectEquality(t, v.Get().(float64), 2.25)
	test.ExpectFailure(t, v.Set("fast"))
	test.ExpectFailure(t, v.Set(1))
}

func TestGeneric(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 1,2\n")

	// reset values and reload them from disk
	w = 0
	h = 0
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("text", &s))

	// no prefs file
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// no prefs file but create it
	test.ExpectSuccess(t, v.Set(5))
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "number :: 5\ntext :: \n")

	test.ExpectSuccess(t, v.Set(20))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 5)

	// command line values take precedence
	prefs.PushCommandLineStack("number::99")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 99)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// not a prefs file
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello\n"), 0o600))
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidPrefsFile))
}

func TestHooks(t *testing.T) {
	var v prefs.Bool
	var pre, post bool

	v.SetHookPre(func(value prefs.Value) error {
		pre = value.(bool)
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(bool)
		return nil
	})

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, pre)
	test.ExpectSuccess(t, post)

	// a failing pre hook stops the value from being stored
	v.SetHookPre(func(value prefs.Value) error {
		return fmt.Errorf("refused")
	})
	test.ExpectFailure(t, v.Set(false))
	test.ExpectEquality(t, v.Get().(bool), true)
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in cropped string
	// information reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

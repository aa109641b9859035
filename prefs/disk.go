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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gophernes/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value on disk.
const separator = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile      = "prefs: no prefs file (%s)"
	InvalidPrefsFile = "prefs: not a valid prefs file (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// sorted list of keys. the critical section should be held by the caller
func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Add preference value to list of values to store/load from disk. The value
// must be one of the types in this package.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, "::") {
		return curated.Errorf("prefs: %v", fmt.Sprintf("invalid key (%s)", key))
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	dsk.entries[key] = p

	return nil
}

// Reset all preferences to their default values.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// read the preferences file as a map of key/value strings
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidPrefsFile, dsk.path)
	}

	vals := make(map[string]string)
	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) == 2 {
			vals[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return vals, nil
}

// Save current preference values to disk. Values in the file for keys that
// have not been added to this Disk are kept.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	vals, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		vals = make(map[string]string)
	}

	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, vals[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// precedence over values on disk. If saveOnFail is true and there is no
// preferences file then the current values are saved to create one.
func (dsk *Disk) Load(saveOnFail bool) error {
	vals, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
			err = nil
		}
		vals = make(map[string]string)
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		p := dsk.entries[k]
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
			continue
		}
		if v, ok := vals[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	// the no prefs file error is returned so that the caller knows that the
	// values have not come from disk
	return err
}

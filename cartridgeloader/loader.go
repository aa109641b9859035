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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// Loader specifies the cartridge file to load.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename. The path and
// the extension are removed.
func (cl Loader) ShortName() string {
	s := filepath.Base(cl.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// IsRemote returns true if the Filename is an HTTP or HTTPS URL.
func (cl Loader) IsRemote() bool {
	s := scheme(cl.Filename)
	return s == "http" || s == "https"
}

func scheme(filename string) string {
	u, err := url.Parse(filename)
	if err != nil {
		return ""
	}

	// windows drive letters look like a single letter scheme
	if len(u.Scheme) == 1 {
		return ""
	}

	return strings.ToLower(u.Scheme)
}

// Load the cartridge data. Calling Load() after a successful load does
// nothing.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	var err error

	switch s := scheme(cl.Filename); s {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file", "":
		cl.Data, err = os.ReadFile(strings.TrimPrefix(cl.Filename, "file://"))
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", s))
	}

	if len(cl.Data) == 0 {
		return curated.Errorf("cartridgeloader: %v", "empty file")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash

	return nil
}

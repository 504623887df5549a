// This file is part of Chipper.
//
// Chipper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chipper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chipper.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/hardware/memory"
	"github.com/chipper-emu/chipper/logger"
)

// Sentinel error patterns.
const (
	LoadError     = "romloader: %v"
	EmptyROM      = "romloader: program image is empty"
	ROMTooLarge   = "romloader: program image too large: %d bytes (max %d)"
	HashMismatch  = "romloader: unexpected hash value: %s"
	UnknownScheme = "romloader: unsupported URL scheme (%s)"
)

// FileExtensions recognised as program images.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader specifies the program image to load.
type Loader struct {
	// filename or URL of the program image
	Filename string

	// expected hash of the data. an empty string means the hash is not
	// checked. after a successful load the value is the hash of the data
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

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// IsROMFile returns true if the filename has a recognised extension.
func IsROMFile(filename string) bool {
	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the program image. Filenames with the http or https scheme are
// fetched over the network. Loading an already loaded image does nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := ""
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = fetch(ld.Filename)
	case "file", "":
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
	default:
		// windows drive letters look like a scheme
		if len(scheme) == 1 {
			data, err = os.ReadFile(ld.Filename)
		} else {
			return curated.Errorf(UnknownScheme, scheme)
		}
	}
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyROM)
	}
	if len(data) > memory.MaxROMSize {
		return curated.Errorf(ROMTooLarge, len(data), memory.MaxROMSize)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(HashMismatch, hash)
	}

	ld.Hash = hash
	ld.Data = data

	logger.Logf(logger.Allow, "romloader", "loaded %s (%d bytes, sha1 %s)", ld.ShortName(), len(data), hash)

	return nil
}

func fetch(address string) ([]byte, error) {
	resp, err := http.Get(address)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	return io.ReadAll(io.LimitReader(resp.Body, memory.MaxROMSize+1))
}

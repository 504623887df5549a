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

package terminal

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/logger"
)

// DefaultHold is the period a key is presented for after it has been read.
const DefaultHold = 150 * time.Millisecond

// KeyReader implements the input.Source interface for a reader that only
// reports key presses.
//
// Keys are presented in the order they were read. Each key is presented for
// at least one sample and until its hold expires or another key is waiting.
// A key read twice in a row is separated by one sample with no key so that
// the second read is seen as a new press.
type KeyReader struct {
	hold time.Duration

	// keys read by the reading goroutine. closed when reading ends
	keys chan byte

	crit    sync.Mutex
	pending []byte
	held    byte
	holding bool
	until   time.Time
	err     error

	// the result of the previous sample
	last   byte
	lastOK bool
}

// maximum number of keys waiting to be presented. older keys are dropped
const maxPending = 32

// NewKeyReader is the preferred method of initialisation for the KeyReader
// type. A goroutine reads from the reader until it returns an error. The
// goroutine is blocked in the read if the reader does not return, and so it
// is not stopped by the end of the emulation.
func NewKeyReader(r io.Reader, hold time.Duration) *KeyReader {
	keys := make(chan byte, 16)
	k := &KeyReader{
		hold: hold,
		keys: keys,
	}

	go func() {
		defer close(keys)

		b := make([]byte, 1)
		for {
			n, err := r.Read(b)
			if n > 0 {
				keys <- b[0]
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					k.crit.Lock()
					k.err = curated.Errorf("terminal: %v", err)
					k.crit.Unlock()
				}
				logger.Log(logger.Allow, "terminal", "key reader stopped")
				return
			}
		}
	}()

	return k
}

// Sample implements the input.Source interface. A read error is returned
// once.
func (k *KeyReader) Sample() (byte, bool, error) {
	k.crit.Lock()
	defer k.crit.Unlock()

	k.drain()

	if k.err != nil {
		err := k.err
		k.err = nil
		return 0, false, err
	}

	now := time.Now()

	if k.holding {
		if now.Before(k.until) && len(k.pending) == 0 {
			return k.present(k.held, true)
		}
		k.holding = false
	}

	if len(k.pending) == 0 {
		return k.present(0, false)
	}

	b := k.pending[0]
	if k.lastOK && k.last == b {
		return k.present(0, false)
	}

	k.pending = k.pending[1:]
	k.held = b
	k.holding = true
	k.until = now.Add(k.hold)
	return k.present(b, true)
}

// move keys from the reading goroutine to the pending queue
func (k *KeyReader) drain() {
	for k.keys != nil {
		select {
		case b, ok := <-k.keys:
			if !ok {
				k.keys = nil
				return
			}
			if len(k.pending) >= maxPending {
				k.pending = k.pending[1:]
			}
			k.pending = append(k.pending, b)
		default:
			return
		}
	}
}

func (k *KeyReader) present(b byte, ok bool) (byte, bool, error) {
	k.last = b
	k.lastOK = ok
	return b, ok, nil
}

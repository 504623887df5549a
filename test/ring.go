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


package test

import (
	"fmt"
	"strings"
	"sync"
)

// RingWriter is an io.Writer that keeps only the most recent bytes written to
// it. Useful for the output of a long run, such as an instruction trace, when
// only the end of the output is of interest. It is safe for concurrent use.
type RingWriter struct {
	crit    sync.Mutex
	buffer  []byte
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		buffer: make([]byte, size),
	}, nil
}

func (r *RingWriter) String() string {
	r.crit.Lock()
	defer r.crit.Unlock()

	var s strings.Builder
	if r.wrapped {
		s.Write(r.buffer[r.cursor:])
	}
	s.Write(r.buffer[:r.cursor])
	return s.String()
}

// Lines returns the complete lines in the ring. When the ring has wrapped the
// first line is likely to be partial and is dropped. A trailing line without
// a newline is included.
func (r *RingWriter) Lines() []string {
	s := r.String()

	r.crit.Lock()
	wrapped := r.wrapped
	r.crit.Unlock()

	if wrapped {
		i := strings.IndexByte(s, '\n')
		if i == -1 {
			return nil
		}
		s = s[i+1:]
	}

	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.cursor = 0
	r.wrapped = false
}

// Write implements io.Writer
func (r *RingWriter) Write(p []byte) (n int, err error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	n = len(p)
	size := len(r.buffer)

	// an oversized write leaves only its own tail
	if n >= size {
		copy(r.buffer, p[n-size:])
		r.cursor = 0
		r.wrapped = true
		return n, nil
	}

	l := copy(r.buffer[r.cursor:], p)
	copy(r.buffer, p[l:])
	if r.cursor+n >= size {
		r.wrapped = true
	}
	r.cursor = (r.cursor + n) % size

	return n, nil
}

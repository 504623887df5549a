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

package input

import (
	"sync"
	"sync/atomic"
)

// HeldKey is a Source for hosts that report key down and key up events. The
// key is presented from the call to Hold() until the call to Release().
type HeldKey struct {
	// zero means no key is held. otherwise the raw byte plus one
	key atomic.Int32
}

// Hold presents the raw key.
func (h *HeldKey) Hold(raw byte) {
	h.key.Store(int32(raw) + 1)
}

// Release stops the key being presented. Only the currently held key is
// released.
func (h *HeldKey) Release(raw byte) {
	h.key.CompareAndSwap(int32(raw)+1, 0)
}

// Sample implements the Source interface.
func (h *HeldKey) Sample() (byte, bool, error) {
	k := h.key.Load()
	if k == 0 {
		return 0, false, nil
	}
	return byte(k - 1), true, nil
}

// QueueSource is a Source that presents a scripted series of observations.
// Each call to Sample() takes the next observation. When the queue is empty
// no key is presented.
type QueueSource struct {
	crit  sync.Mutex
	queue []observation
}

type observation struct {
	raw byte
	ok  bool
}

// Push adds an observation of the raw key to the queue. The key is presented
// for n samples, with a minimum of one.
func (q *QueueSource) Push(raw byte, n int) {
	q.crit.Lock()
	defer q.crit.Unlock()
	for range max(n, 1) {
		q.queue = append(q.queue, observation{raw: raw, ok: true})
	}
}

// PushNone adds observations of no key to the queue.
func (q *QueueSource) PushNone(n int) {
	q.crit.Lock()
	defer q.crit.Unlock()
	for range max(n, 1) {
		q.queue = append(q.queue, observation{})
	}
}

// Len returns the number of observations remaining in the queue.
func (q *QueueSource) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.queue)
}

// Sample implements the Source interface.
func (q *QueueSource) Sample() (byte, bool, error) {
	q.crit.Lock()
	defer q.crit.Unlock()
	if len(q.queue) == 0 {
		return 0, false, nil
	}
	o := q.queue[0]
	q.queue = q.queue[1:]
	return o.raw, o.ok, nil
}

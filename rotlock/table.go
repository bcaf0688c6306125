// Copyright 2023 The Rotation Lock Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package rotlock

import "fmt"

// slot carries the per-degree bookkeeping. Counters reflect exactly the
// granted locks and registered waiting writers whose ranges cover the
// degree.
type slot struct {
	activeReaders  int
	activeWriters  int
	waitingWriters int
}

// A degreeTable holds one slot per degree of the domain. The zero value
// is ready to use. A degreeTable is not internally synchronized; the
// Manager accesses it only while holding its combined mutex.
type degreeTable struct {
	slots [Degrees]slot
}

// forEach visits the slot of every degree the range covers, in order,
// wrapping past the end of the domain when needed.
func (t *degreeTable) forEach(span Range, fn func(s *slot)) {
	d := span.Low
	for {
		fn(&t.slots[d])
		if d == span.High {
			return
		}
		d = (d + 1) % Degrees
	}
}

// available reports whether a claim over span can be granted right now.
// The orientation must lie inside the span. A read claim is blocked by
// any active or waiting writer on a covered degree; a write claim is
// blocked by any active lock on a covered degree.
func (t *degreeTable) available(span Range, kind Kind, orientation int) bool {
	if !span.Contains(orientation) {
		return false
	}
	ok := true
	t.forEach(span, func(s *slot) {
		if kind == Read {
			if s.activeWriters > 0 || s.waitingWriters > 0 {
				ok = false
			}
		} else {
			if s.activeReaders > 0 || s.activeWriters > 0 {
				ok = false
			}
		}
	})
	return ok
}

// acquire records a granted lock in every covered slot.
func (t *degreeTable) acquire(span Range, kind Kind) {
	t.forEach(span, func(s *slot) {
		if kind == Read {
			s.activeReaders++
		} else {
			s.activeWriters++
		}
	})
}

// release reverts acquire for a lock being destroyed.
func (t *degreeTable) release(span Range, kind Kind) {
	t.forEach(span, func(s *slot) {
		if kind == Read {
			s.activeReaders--
			checkCounter(s.activeReaders)
		} else {
			s.activeWriters--
			checkCounter(s.activeWriters)
		}
	})
}

// addWaitingWriter registers a blocked write claim across its span so
// that new readers are held back until the writer gets its turn.
func (t *degreeTable) addWaitingWriter(span Range) {
	t.forEach(span, func(s *slot) {
		s.waitingWriters++
	})
}

// removeWaitingWriter reverts addWaitingWriter, on grant or abandonment.
func (t *degreeTable) removeWaitingWriter(span Range) {
	t.forEach(span, func(s *slot) {
		s.waitingWriters--
		checkCounter(s.waitingWriters)
	})
}

func (t *degreeTable) stats(degree int) DegreeStats {
	s := t.slots[degree]
	return DegreeStats{
		ActiveReaders:  s.activeReaders,
		ActiveWriters:  s.activeWriters,
		WaitingWriters: s.waitingWriters,
	}
}

func checkCounter(v int) {
	if v < 0 {
		panic(fmt.Sprintf("degree counter went negative: %d", v))
	}
}

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

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/field-eng-powertools/notify"
	"go.uber.org/atomic"
)

// A Manager grants read and write locks over degree ranges of one
// rotation domain. The type parameter O identifies lock owners; the
// Manager only ever compares owners for equality.
//
// A Manager is internally synchronized and is safe for concurrent use.
// A Manager should not be copied after it has been created. Distinct
// Managers are fully independent domains.
type Manager[O comparable] struct {
	events *Events[O]           // Injectable callbacks.
	nextID atomic.Int64         // Lock id allocator, never reset.
	wake   notify.Var[struct{}] // Broadcasts every state change to blocked acquirers.

	// Orientation, counters, and the lock registry form one logical
	// critical section: availability must never be judged against a
	// half-applied update, so they share a mutex and it is held for
	// every check-and-mutate step. It is never held across suspension.
	mu struct {
		sync.Mutex
		orientation int
		table       degreeTable
		reg         registry[O]
	}
}

// NewManager constructs a Manager with orientation 0 and no locks held.
func NewManager[O comparable]() *Manager[O] {
	m := &Manager[O]{}
	m.mu.reg = newRegistry[O]()
	return m
}

// SetEvents allows monitoring callbacks to be injected into the
// Manager. This method should be called prior to any other use.
func (m *Manager[O]) SetEvents(events *Events[O]) {
	m.events = events
}

// Acquire claims kind access over span on behalf of owner, suspending
// the calling goroutine until the claim can be granted. It returns the
// id of the new lock, to be passed to [Manager.Release] by the same
// owner.
//
// The claim is grantable only while the current orientation lies inside
// span and no conflicting lock covers any of its degrees. A blocked
// write claim registers itself across its span so that new readers are
// held back until the writer gets its turn.
//
// Canceling the context abandons the claim: Acquire returns ctx.Err()
// and leaves no bookkeeping behind.
func (m *Manager[O]) Acquire(ctx context.Context, owner O, span Range, kind Kind) (ID, error) {
	if err := validateClaim(span, kind); err != nil {
		return -1, err
	}

	start := time.Now()
	blocked := false
	registered := false
	for {
		m.mu.Lock()
		// Take the wake channel before testing availability, while
		// still holding the mutex. A release that lands after the test
		// must close this channel, or the waiter could miss it.
		_, changed := m.wake.Get()
		if m.mu.table.available(span, kind, m.mu.orientation) {
			if registered {
				m.mu.table.removeWaitingWriter(span)
			}
			lk := m.grantLocked(owner, span, kind)
			m.mu.Unlock()
			m.events.doAcquire(*lk, time.Since(start))
			return lk.ID, nil
		}
		if kind == Write && !registered {
			m.mu.table.addWaitingWriter(span)
			registered = true
		}
		m.mu.Unlock()

		if !blocked {
			blocked = true
			m.events.doBlocked(owner, span, kind)
		}

		select {
		case <-changed:
		case <-ctx.Done():
			if registered {
				m.mu.Lock()
				m.mu.table.removeWaitingWriter(span)
				m.mu.Unlock()
				// Readers held back only by this writer can now go.
				m.wake.Set(struct{}{})
			}
			return -1, ctx.Err()
		}
	}
}

// TryAcquire is the non-blocking form of [Manager.Acquire]. If the
// claim cannot be granted immediately it fails with [ErrWouldBlock] and
// leaves no trace: in particular, a write claim does not register as
// waiting and does not hold back readers.
func (m *Manager[O]) TryAcquire(owner O, span Range, kind Kind) (ID, error) {
	if err := validateClaim(span, kind); err != nil {
		return -1, err
	}

	m.mu.Lock()
	if !m.mu.table.available(span, kind, m.mu.orientation) {
		m.mu.Unlock()
		return -1, fmt.Errorf("%w: %s %s", ErrWouldBlock, kind, span)
	}
	lk := m.grantLocked(owner, span, kind)
	m.mu.Unlock()
	m.events.doAcquire(*lk, 0)
	return lk.ID, nil
}

// Release destroys the lock named by id. It fails with
// [ErrInvalidArgument] if no such lock is held and with
// [ErrPermissionDenied] if the lock is owned by someone else; in both
// cases no state changes. Release never blocks; every successful
// release wakes all blocked acquirers.
func (m *Manager[O]) Release(owner O, id ID) error {
	if id < 0 {
		return fmt.Errorf("%w: negative lock id %d", ErrInvalidArgument, id)
	}

	m.mu.Lock()
	lk, ok := m.mu.reg.find(id)
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: no lock with id %d", ErrInvalidArgument, id)
	}
	if lk.Owner != owner {
		m.mu.Unlock()
		return fmt.Errorf("%w: lock %d has another owner", ErrPermissionDenied, id)
	}
	m.mu.reg.remove(id)
	m.mu.table.release(lk.Span, lk.Kind)
	m.mu.Unlock()

	m.wake.Set(struct{}{})
	m.events.doRelease(*lk, time.Since(lk.GrantedAt))
	return nil
}

// grantLocked allocates the next id, records the lock, and applies its
// counters. The caller holds m.mu and has already verified
// availability.
func (m *Manager[O]) grantLocked(owner O, span Range, kind Kind) *Lock[O] {
	lk := &Lock[O]{
		ID:        ID(m.nextID.Inc() - 1),
		Owner:     owner,
		Span:      span,
		Kind:      kind,
		GrantedAt: time.Now(),
	}
	m.mu.reg.insert(lk)
	m.mu.table.acquire(span, kind)
	return lk
}

func validateClaim(span Range, kind Kind) error {
	if err := span.Validate(); err != nil {
		return err
	}
	if !kind.valid() {
		return fmt.Errorf("%w: unknown access kind %d", ErrInvalidArgument, int(kind))
	}
	return nil
}

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

import "time"

// Events provides a [Manager] with optional callbacks to monitor lock
// traffic. Callbacks run on the goroutine that triggered them, outside
// the Manager's internal mutex, and must not block for long.
//
// See [Manager.SetEvents].
type Events[O comparable] struct {
	// OnAcquire fires for every granted lock. waited is the time the
	// claim spent between request and grant; zero for TryAcquire.
	OnAcquire func(lock Lock[O], waited time.Duration)
	// OnBlocked fires once per claim, the first time it suspends.
	OnBlocked func(owner O, span Range, kind Kind)
	// OnRelease fires for every destroyed lock. held is the time the
	// lock existed.
	OnRelease func(lock Lock[O], held time.Duration)
	// OnRotate fires for every successful orientation change.
	OnRotate func(degree int)
}

func (e *Events[O]) doAcquire(lock Lock[O], waited time.Duration) {
	if e != nil && e.OnAcquire != nil {
		e.OnAcquire(lock, waited)
	}
}

func (e *Events[O]) doBlocked(owner O, span Range, kind Kind) {
	if e != nil && e.OnBlocked != nil {
		e.OnBlocked(owner, span, kind)
	}
}

func (e *Events[O]) doRelease(lock Lock[O], held time.Duration) {
	if e != nil && e.OnRelease != nil {
		e.OnRelease(lock, held)
	}
}

func (e *Events[O]) doRotate(degree int) {
	if e != nil && e.OnRotate != nil {
		e.OnRotate(degree)
	}
}

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

// SetOrientation replaces the current orientation of the domain. It
// fails with [ErrInvalidArgument] for a degree outside [0, Degrees),
// leaving the prior value in place. A successful set wakes all blocked
// acquirers, whose ranges may have come into range.
//
// The setter is intended to be driven by whatever part of the
// surrounding system observes the device.
func (m *Manager[O]) SetOrientation(degree int) error {
	if degree < 0 || degree >= Degrees {
		return fmt.Errorf("%w: orientation %d out of [0,%d)", ErrInvalidArgument, degree, Degrees)
	}

	m.mu.Lock()
	m.mu.orientation = degree
	m.mu.Unlock()

	m.wake.Set(struct{}{})
	m.events.doRotate(degree)
	return nil
}

// Orientation returns the current orientation. Safe to call
// concurrently with SetOrientation.
func (m *Manager[O]) Orientation() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mu.orientation
}

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

/*
Package rotlock grants read or write access to sub-ranges of a circular
360-degree domain, conceptually the orientation of a device.

A caller asks for access to a contiguous, possibly wrap-around interval of
degrees. Access is granted only while the device's current orientation lies
inside that interval, and only while no conflicting access is held over any
degree the interval covers. Multiple readers may share a degree; a writer
holds its degrees exclusively. A writer that is forced to wait blocks new
readers over its degrees so that a steady stream of readers cannot starve
it.

A minimal session looks like this:

	// One manager per rotation domain. Owners are compared for equality
	// only; any comparable type works.
	m := NewManager[string]()

	// The surrounding system reports where the device is pointing.
	_ = m.SetOrientation(100)

	// Claim write access over degrees 90..110. Acquire suspends the
	// caller until the claim can be granted.
	id, err := m.Acquire(ctx, "worker-1", Range{Low: 90, High: 110}, Write)
	if err != nil {
		return err
	}
	defer m.Release("worker-1", id)

Acquire blocks cooperatively: a waiter is woken whenever any lock is
released or the orientation changes, and then re-tests its own claim from
scratch under the manager's internal lock. Canceling the context abandons
the claim and leaves no bookkeeping behind.

Also included is a Scheduler, which runs callbacks once their range claim
has been granted, reporting progress through an awaitable Outcome.
*/
package rotlock

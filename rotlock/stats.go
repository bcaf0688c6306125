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

// DegreeStats reports the bookkeeping of a single degree at one
// consistent instant.
type DegreeStats struct {
	ActiveReaders  int
	ActiveWriters  int
	WaitingWriters int
}

// DegreeStats returns the counters for one degree. It fails with
// [ErrInvalidArgument] for a degree outside [0, Degrees).
func (m *Manager[O]) DegreeStats(degree int) (DegreeStats, error) {
	if degree < 0 || degree >= Degrees {
		return DegreeStats{}, fmt.Errorf("%w: degree %d out of [0,%d)", ErrInvalidArgument, degree, Degrees)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mu.table.stats(degree), nil
}

// HeldCount returns the number of currently granted locks.
func (m *Manager[O]) HeldCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mu.reg.size()
}

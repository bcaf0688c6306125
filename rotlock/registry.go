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

// A registry holds the currently granted locks, keyed by id for O(1)
// lookup. It is not internally synchronized; the Manager accesses it
// only while holding its combined mutex.
type registry[O comparable] struct {
	held map[ID]*Lock[O]
}

func newRegistry[O comparable]() registry[O] {
	return registry[O]{held: make(map[ID]*Lock[O])}
}

func (r *registry[O]) insert(lk *Lock[O]) {
	r.held[lk.ID] = lk
}

func (r *registry[O]) find(id ID) (*Lock[O], bool) {
	lk, ok := r.held[id]
	return lk, ok
}

func (r *registry[O]) remove(id ID) {
	delete(r.held, id)
}

func (r *registry[O]) size() int {
	return len(r.held)
}

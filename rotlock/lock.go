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
	"fmt"
	"time"
)

// Kind selects between shared and exclusive access to a degree range.
type Kind int

// The two access kinds. Readers may share a degree; a writer excludes
// every other lock over its degrees.
const (
	Read Kind = iota
	Write
)

func (k Kind) String() string {
	switch k {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) valid() bool {
	return k == Read || k == Write
}

// An ID names a granted lock. Ids are allocated from a single strictly
// increasing counter and are never reused, so a stale id reliably fails
// lookup instead of naming an unrelated later lock.
type ID int64

// A Lock records one granted claim. Locks are created by
// [Manager.Acquire] and destroyed by [Manager.Release]; they are
// immutable in between.
type Lock[O comparable] struct {
	ID        ID
	Owner     O
	Span      Range
	Kind      Kind
	GrantedAt time.Time
}

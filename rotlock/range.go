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

// Degrees is the size of the circular domain. Orientations and range
// bounds are integers in [0, Degrees).
const Degrees = 360

// A Range is a contiguous interval of degrees, inclusive on both ends.
// A Range with Low > High wraps past the end of the domain: {350, 10}
// covers 350..359 and 0..10.
type Range struct {
	Low  int
	High int
}

// Validate returns ErrInvalidArgument if either bound lies outside the
// domain. Any in-domain pair of bounds is a valid range.
func (r Range) Validate() error {
	if r.Low < 0 || r.Low >= Degrees || r.High < 0 || r.High >= Degrees {
		return fmt.Errorf("%w: range %s out of [0,%d)", ErrInvalidArgument, r, Degrees)
	}
	return nil
}

// Contains returns true if the degree lies inside the range, taking
// wrap-around into account.
func (r Range) Contains(degree int) bool {
	if r.Low <= r.High {
		return degree >= r.Low && degree <= r.High
	}
	return degree >= r.Low || degree <= r.High
}

// Size returns the number of degrees the range covers.
func (r Range) Size() int {
	return (r.High-r.Low+Degrees)%Degrees + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Low, r.High)
}

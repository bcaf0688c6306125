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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeContains(t *testing.T) {
	tests := []struct {
		name   string
		r      Range
		degree int
		want   bool
	}{
		{"inside", Range{90, 110}, 100, true},
		{"low edge", Range{90, 110}, 90, true},
		{"high edge", Range{90, 110}, 110, true},
		{"below", Range{90, 110}, 89, false},
		{"above", Range{90, 110}, 111, false},
		{"single degree", Range{42, 42}, 42, true},
		{"single degree miss", Range{42, 42}, 43, false},
		{"wrap high side", Range{350, 10}, 355, true},
		{"wrap low side", Range{350, 10}, 5, true},
		{"wrap boundary zero", Range{350, 10}, 0, true},
		{"wrap outside", Range{350, 10}, 180, false},
		{"full wrap edge", Range{350, 10}, 349, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.degree))
		})
	}
}

func TestRangeSize(t *testing.T) {
	a := assert.New(t)
	a.Equal(21, Range{90, 110}.Size())
	a.Equal(1, Range{42, 42}.Size())
	a.Equal(21, Range{350, 10}.Size())
	a.Equal(Degrees, Range{10, 9}.Size())
}

func TestRangeValidate(t *testing.T) {
	a := assert.New(t)
	a.NoError(Range{0, 359}.Validate())
	a.NoError(Range{350, 10}.Validate())
	a.ErrorIs(Range{-1, 10}.Validate(), ErrInvalidArgument)
	a.ErrorIs(Range{400, 10}.Validate(), ErrInvalidArgument)
	a.ErrorIs(Range{10, 360}.Validate(), ErrInvalidArgument)
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "[350,10]", Range{350, 10}.String())
}

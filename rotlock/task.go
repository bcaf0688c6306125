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

import "context"

// A Task is provided to [Scheduler.Schedule]. Its callback runs while a
// lock of the given kind is held over the given span.
type Task interface {
	// Call contains the logic associated with the task.
	Call(ctx context.Context) error
	// Span returns the degree range the task needs locked.
	Span() Range
	// Kind returns the access kind the task needs.
	Kind() Kind
}

// TaskFunc returns a [Task] that locks span with the given kind and
// then invokes the function callback.
func TaskFunc(span Range, kind Kind, fn func(ctx context.Context, span Range) error) Task {
	return &taskFunc{fn: fn, span: span, kind: kind}
}

type taskFunc struct {
	fn   func(ctx context.Context, span Range) error
	span Range
	kind Kind
}

func (t *taskFunc) Call(ctx context.Context) error { return t.fn(ctx, t.span) }
func (t *taskFunc) Span() Range                    { return t.span }
func (t *taskFunc) Kind() Kind                     { return t.kind }

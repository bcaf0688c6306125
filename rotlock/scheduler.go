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
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/field-eng-powertools/notify"
)

// A Scheduler runs callbacks while holding a rotation lock over their
// degree span, instead of making the caller drive Acquire and Release
// by hand. Progress is reported through an awaitable [Outcome].
//
// A Scheduler is internally synchronized and is safe for concurrent
// use.
type Scheduler[O comparable] struct {
	manager *Manager[O]
	runner  Runner
}

// NewScheduler constructs a Scheduler that locks through the given
// Manager and launches tasks using the given [Runner]. If runner is
// nil, tasks will be executed using [context.Background].
func NewScheduler[O comparable](manager *Manager[O], runner Runner) *Scheduler[O] {
	if runner == nil {
		runner = GoRunner(context.Background())
	}
	return &Scheduler[O]{manager: manager, runner: runner}
}

// scheduled tracks one in-flight task so that the cancel function
// returned from Schedule can abort it at any stage.
type scheduled struct {
	mu struct {
		sync.Mutex
		cancel   context.CancelCauseFunc // Non-nil once the task has launched.
		canceled bool
	}
}

// Schedule acquires the task's range lock on behalf of owner, invokes
// [Task.Call], and releases the lock. The result is available through
// the returned [Outcome], which moves from queued, to executing, to
// success or an error status.
//
// The cancel function may be called to asynchronously abort the task.
// A task still waiting for its lock abandons the claim; a task that is
// already executing has its context canceled with [ErrScheduleCancel];
// a completed task is unaffected.
//
// Tasks must not schedule new tasks over overlapping spans and proceed
// to wait upon them. This will lead to deadlocks.
func (s *Scheduler[O]) Schedule(owner O, task Task) (outcome Outcome, cancel func()) {
	w := &scheduled{}
	out := notify.VarOf(queued)

	work := func(ctx context.Context) {
		ctx, cancelCtx := context.WithCancelCause(ctx)
		defer cancelCtx(nil)

		w.mu.Lock()
		if w.mu.canceled {
			w.mu.Unlock()
			out.Set(StatusFor(ErrScheduleCancel))
			return
		}
		w.mu.cancel = cancelCtx
		w.mu.Unlock()

		id, err := s.manager.Acquire(ctx, owner, task.Span(), task.Kind())
		if err != nil {
			// Surface the cancellation cause rather than the bare
			// context error.
			if errors.Is(err, context.Canceled) {
				if cause := context.Cause(ctx); cause != nil {
					err = cause
				}
			}
			out.Set(StatusFor(err))
			return
		}

		out.Set(executing)
		err = tryCall(ctx, task)
		if releaseErr := s.manager.Release(owner, id); err == nil {
			err = releaseErr
		}
		out.Set(StatusFor(err))
	}

	cancel = func() {
		w.mu.Lock()
		w.mu.canceled = true
		if w.mu.cancel != nil {
			w.mu.cancel(ErrScheduleCancel)
		}
		w.mu.Unlock()
	}

	if err := s.runner.Go(work); err != nil {
		out.Set(StatusFor(err))
	}
	return out, cancel
}

// Wait blocks until every outcome completes, returning the first
// non-nil error.
func Wait(ctx context.Context, outcomes []Outcome) error {
outcome:
	for _, outcome := range outcomes {
		for {
			status, changed := outcome.Get()
			if status.Success() {
				continue outcome
			}
			if err := status.Err(); err != nil {
				return err
			}
			select {
			case <-changed:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

// tryCall invokes the task callback with a panic handler so that a
// panicking task still releases its lock.
func tryCall(ctx context.Context, task Task) (err error) {
	defer func() {
		x := recover()
		switch t := x.(type) {
		case nil:
		// Success.
		case error:
			err = t
		default:
			err = fmt.Errorf("panic in task: %v", t)
		}
	}()

	return task.Call(ctx)
}

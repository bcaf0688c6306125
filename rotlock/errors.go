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
)

var (
	// ErrInvalidArgument is raised for malformed degree bounds, an
	// unknown access kind, or a lock id that does not name a held lock.
	// It is always detected before any state mutation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPermissionDenied is raised when a lock is released by a caller
	// other than its owner. The lock is left intact.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWouldBlock is raised by [Manager.TryAcquire] when the claim
	// cannot be granted immediately.
	ErrWouldBlock = errors.New("lock not immediately available")
)

// ErrScheduleCancel will be returned from [context.Cause] if a task's
// context was canceled via the function returned from
// [Scheduler.Schedule].
var ErrScheduleCancel = fmt.Errorf("%w: Scheduler.Schedule cancel()", context.Canceled)

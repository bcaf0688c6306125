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

	"github.com/cockroachdb/field-eng-powertools/notify"
)

// Outcome is a convenience type alias.
type Outcome = *notify.Var[*Status]

// Status is reported through the Outcome returned by
// [Scheduler.Schedule].
type Status struct {
	err error
}

// StatusFor constructs a successful status if err is nil. Otherwise,
// it returns a new Status object that reports the error.
func StatusFor(err error) *Status {
	if err == nil {
		return success
	}
	return &Status{err: err}
}

// Sentinel instances of Status.
var (
	executing = &Status{}
	queued    = &Status{}
	success   = &Status{}
)

// Completed returns true if the task has finished, successfully or not.
// See also [Status.Success].
func (s *Status) Completed() bool {
	return s == success || s.err != nil
}

// Err returns any error from the task or its lock acquisition.
func (s *Status) Err() error {
	return s.err
}

// Executing returns true while the task callback is running under its
// range lock.
func (s *Status) Executing() bool {
	return s == executing
}

// Queued returns true while the task is waiting for its range lock.
func (s *Status) Queued() bool {
	return s == queued
}

// Success returns true if the task ran to completion and its lock was
// released.
func (s *Status) Success() bool {
	return s == success
}

func (s *Status) String() string {
	switch s {
	case executing:
		return "executing"
	case queued:
		return "queued"
	case success:
		return "success"
	default:
		return fmt.Sprintf("error: %v", s.err)
	}
}

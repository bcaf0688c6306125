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

package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lemonshushu/snu-23s-os-rotation-lock/rotlock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	tests := []struct {
		name           string
		base, max      time.Duration
		limit, retries int
		opErr          string
		wantErr        string
	}{
		{
			"ok",
			time.Millisecond,
			4 * time.Millisecond,
			10,
			6,
			"",
			"",
		},
		{
			"non_retriable",
			time.Millisecond,
			4 * time.Millisecond,
			10,
			6,
			"permanent failure",
			"permanent failure",
		},
		{
			"too many retries",
			time.Millisecond,
			4 * time.Millisecond,
			5,
			6,
			"",
			"too many retries",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			counter := 0
			op := func(ctx context.Context) error {
				if tt.opErr != "" {
					return errors.New(tt.opErr)
				}
				counter++
				if counter <= tt.retries {
					return ErrRetriable
				}
				return nil
			}
			a := assert.New(t)
			backoff, err := NewExpBackoff(tt.base, tt.max, tt.limit)
			a.NoError(err)
			err = Retry(ctx, backoff, op)
			if tt.wantErr != "" {
				a.ErrorContains(err, tt.wantErr)
				return
			}
			a.NoError(err)
			a.Equal(tt.retries, counter-1)
		})
	}
}

func TestRetryCanceled(t *testing.T) {
	a := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	backoff, err := NewExpBackoff(time.Millisecond, 4*time.Millisecond, 0)
	a.NoError(err)
	err = Retry(ctx, backoff, func(context.Context) error {
		return ErrRetriable
	})
	a.ErrorIs(err, context.Canceled)
}

// Poll a non-blocking lock acquisition until a conflicting writer goes
// away.
func TestPollTryAcquire(t *testing.T) {
	r := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m := rotlock.NewManager[string]()
	r.NoError(m.SetOrientation(45))
	span := rotlock.Range{Low: 30, High: 60}

	blocker, err := m.TryAcquire("writer", span, rotlock.Write)
	r.NoError(err)

	// Release the conflicting writer partway through the poll.
	go func() {
		time.Sleep(5 * time.Millisecond)
		_ = m.Release("writer", blocker)
	}()

	backoff, err := NewExpBackoff(time.Millisecond, 16*time.Millisecond, 0)
	r.NoError(err)

	var id rotlock.ID
	err = Retry(ctx, backoff, func(context.Context) error {
		got, err := m.TryAcquire("reader", span, rotlock.Read)
		if errors.Is(err, rotlock.ErrWouldBlock) {
			return fmt.Errorf("%w: %w", ErrRetriable, err)
		}
		if err != nil {
			return err
		}
		id = got
		return nil
	})
	r.NoError(err)
	r.NoError(m.Release("reader", id))
}

// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package channel

import (
	"testing"
	"time"

	"github.com/consensys/go-intcode/pkg/intcode/vm/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Channel_FIFO_01(t *testing.T) {
	ch := New("ch", 1, 2)
	//
	require.NoError(t, ch.Write(3))
	assert.Equal(t, uint(3), ch.Len())
	//
	for _, expected := range []int64{1, 2, 3} {
		v, err := ch.Read()
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	}
}

func Test_Channel_Closed_01(t *testing.T) {
	ch := New("ch", 1)
	require.NoError(t, ch.Close())
	// Queued values survive closing
	v, err := ch.Read()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	// But nothing else
	_, err = ch.Read()
	require.ErrorIs(t, err, fault.ErrIOClosed)
	require.ErrorIs(t, ch.Write(2), fault.ErrIOClosed)
	// Closing twice is harmless
	require.NoError(t, ch.Close())
	assert.True(t, ch.IsClosed())
}

func Test_Channel_Blocking_01(t *testing.T) {
	var (
		ch   = New("ch")
		done = make(chan int64)
	)
	//
	go func() {
		v, _ := ch.Read()
		done <- v
	}()
	// Reader should be blocked
	select {
	case <-done:
		t.Fatal("read did not block")
	case <-time.After(20 * time.Millisecond):
	}
	//
	require.NoError(t, ch.Write(42))
	assert.Equal(t, int64(42), <-done)
}

func Test_Channel_Blocking_02(t *testing.T) {
	var (
		ch   = New("ch")
		done = make(chan error)
	)
	//
	go func() {
		_, err := ch.Read()
		done <- err
	}()
	// Closing wakes a blocked reader
	require.NoError(t, ch.Close())
	require.ErrorIs(t, <-done, fault.ErrIOClosed)
}

func Test_Channel_Concurrent_01(t *testing.T) {
	const n = 10000
	//
	ch := New("ch")
	//
	go func() {
		for i := int64(0); i < n; i++ {
			_ = ch.Write(i)
		}
		//
		_ = ch.Close()
	}()
	//
	values := ch.Collect()
	require.Len(t, values, n)
	//
	for i, v := range values {
		assert.Equal(t, int64(i), v)
	}
}

func Test_Channel_Drain_01(t *testing.T) {
	ch := New("ch", 1, 2, 3)
	assert.Equal(t, []int64{1, 2, 3}, ch.Drain())
	assert.Equal(t, uint(0), ch.Len())
	assert.Empty(t, ch.Drain())
}

func Test_Queue_01(t *testing.T) {
	q := NewQueue(5, 6)
	//
	for _, expected := range []int64{5, 6} {
		v, err := q.Read()
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	}
	//
	_, err := q.Read()
	require.ErrorIs(t, err, fault.ErrIOClosed)
}

func Test_Queue_Fallback_01(t *testing.T) {
	q := NewQueue(5).WithFallback(New("fallback", 7))
	//
	v, err := q.Read()
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
	//
	v, err = q.Read()
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func Test_Collector_01(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.Write(1))
	require.NoError(t, c.Write(-2))
	assert.Equal(t, []int64{1, -2}, c.Values())
	assert.Equal(t, "1,-2", c.String())
	c.Reset()
	assert.Empty(t, c.Values())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, p *Pool, n int) []Result {
	t.Helper()

	out := make([]Result, 0, n)
	timeout := time.After(5 * time.Second)
	for len(out) < n {
		select {
		case r := <-p.Results():
			out = append(out, r)
		case <-timeout:
			t.Fatalf("timed out after %d of %d results", len(out), n)
		}
	}
	return out
}

func TestPool_RunsTasksAndReportsResults(t *testing.T) {
	p := NewPool(2, logger.Nop())
	p.Run()

	boom := errors.New("boom")
	require.True(t, p.Submit(Task{Key: "a", Run: func(context.Context) error { return nil }}))
	require.True(t, p.Submit(Task{Key: "b", Run: func(context.Context) error { return boom }}))

	byKey := map[string]error{}
	for _, r := range collect(t, p, 2) {
		byKey[r.Task.Key] = r.Err
	}
	assert.NoError(t, byKey["a"])
	assert.ErrorIs(t, byKey["b"], boom)

	go func() {
		for range p.Results() {
		}
	}()
	p.Stop()
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const size = 2
	p := NewPool(size, logger.Nop())
	p.Run()

	var running, peak atomic.Int32
	release := make(chan struct{})
	task := func(context.Context) error {
		n := running.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		<-release
		running.Add(-1)
		return nil
	}

	for i := 0; i < 6; i++ {
		require.True(t, p.Submit(Task{Key: fmt.Sprintf("k%d", i), Run: task}))
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	collect(t, p, 6)

	assert.LessOrEqual(t, peak.Load(), int32(size))

	go func() {
		for range p.Results() {
		}
	}()
	p.Stop()
}

func TestPool_SameKeyRunsInSubmissionOrder(t *testing.T) {
	p := NewPool(4, logger.Nop())
	p.Run()

	var running atomic.Int32
	var overlapped atomic.Bool
	release := make(chan struct{})
	task := func(context.Context) error {
		if running.Add(1) > 1 {
			overlapped.Store(true)
		}
		<-release
		running.Add(-1)
		return nil
	}

	for i := 0; i < 4; i++ {
		require.True(t, p.Submit(Task{Key: "S", Kind: fmt.Sprint(i), Run: task}))
	}
	close(release)

	results := collect(t, p, 4)
	for i, r := range results {
		assert.Equal(t, fmt.Sprint(i), r.Task.Kind)
	}
	assert.False(t, overlapped.Load())

	go func() {
		for range p.Results() {
		}
	}()
	p.Stop()
}

func TestPool_BusyKeyDoesNotBlockOthers(t *testing.T) {
	p := NewPool(2, logger.Nop())
	p.Run()

	release := make(chan struct{})
	blocked := func(context.Context) error {
		<-release
		return nil
	}
	require.True(t, p.Submit(Task{Key: "S", Kind: "first", Run: blocked}))
	require.True(t, p.Submit(Task{Key: "S", Kind: "second", Run: blocked}))
	require.True(t, p.Submit(Task{Key: "T", Kind: "other", Run: func(context.Context) error { return nil }}))

	results := collect(t, p, 1)
	assert.Equal(t, "other", results[0].Task.Kind)

	close(release)
	results = collect(t, p, 2)
	assert.Equal(t, "first", results[0].Task.Kind)
	assert.Equal(t, "second", results[1].Task.Kind)

	go func() {
		for range p.Results() {
		}
	}()
	p.Stop()
}

func TestPool_RecoversPanics(t *testing.T) {
	p := NewPool(1, logger.Nop())
	p.Run()

	p.Submit(Task{Key: "p", Run: func(context.Context) error { panic("bad") }})
	results := collect(t, p, 1)
	assert.Error(t, results[0].Err)

	go func() {
		for range p.Results() {
		}
	}()
	p.Stop()
}

func TestPool_StopCancelsQueuedTasksAndClosesResults(t *testing.T) {
	p := NewPool(1, logger.Nop())
	p.Run()

	started := make(chan struct{})
	p.Submit(Task{Key: "slow", Run: func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}})
	p.Submit(Task{Key: "queued", Run: func(ctx context.Context) error { return ctx.Err() }})
	<-started

	var got []Result
	done := make(chan struct{})
	go func() {
		for r := range p.Results() {
			got = append(got, r)
		}
		close(done)
	}()

	p.Stop()
	<-done

	require.Len(t, got, 2)
	for _, r := range got {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
	assert.False(t, p.Submit(Task{Key: "late", Run: func(context.Context) error { return nil }}))
}

func TestPool_StopBeforeRunFailsQueued(t *testing.T) {
	p := NewPool(1, logger.Nop())
	p.Submit(Task{Key: "never", Run: func(context.Context) error { return nil }})

	var got []Result
	done := make(chan struct{})
	go func() {
		for r := range p.Results() {
			got = append(got, r)
		}
		close(done)
	}()

	p.Stop()
	<-done

	require.Len(t, got, 1)
	assert.ErrorIs(t, got[0].Err, ErrPoolStopped)
}

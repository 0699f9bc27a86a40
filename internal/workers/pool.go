// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/soletraderai/teachy-sub001/internal/logger"
)

// ErrPoolStopped is reported for tasks submitted after Stop.
var ErrPoolStopped = errors.New("worker pool stopped")

// Task is one unit of background work. Key identifies what the task is about
// (a session id) and is carried through to its Result.
type Task struct {
	Key  string
	Kind string
	Run  func(ctx context.Context) error

	// Done, if set, is called by whoever consumes the task's Result. The
	// pool itself never calls it.
	Done func(err error)
}

// Result is the outcome of a Task.
type Result struct {
	Task Task
	Err  error
}

// Pool runs submitted tasks on a fixed number of goroutines. Submit never
// blocks: tasks wait in an unbounded FIFO until a goroutine is free.
// Tasks sharing a non-empty Key run one at a time in submission order, and
// each one's Result is delivered before the next one starts. Results are
// delivered on Results in completion order; the channel is closed by Stop
// after every queued task has run.
type Pool struct {
	size int

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Task
	busy    map[string]struct{}
	running bool
	stopped bool

	ctx     context.Context
	cancel  context.CancelFunc
	results chan Result
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewPool creates an idle pool with size goroutines. A size below one is
// treated as one.
func NewPool(size int, logger *logger.Logger) *Pool {
	if size < 1 {
		size = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		size:    size,
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan Result, size),
		busy:    make(map[string]struct{}),
		logger:  logger,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Run implements [Worker]. It starts the pool's goroutines; calling it
// again is a no-op.
func (p *Pool) Run() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running || p.stopped {
		return
	}
	p.running = true

	p.wg.Add(p.size)
	for i := 0; i < p.size; i++ {
		go p.loop()
	}
	p.logger.Debug().Str("func", "*Pool.Run").Int("size", p.size).Msg("worker pool started")
}

// Submit queues t. It returns false if the pool has been stopped.
func (p *Pool) Submit(t Task) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return false
	}
	p.queue = append(p.queue, t)
	p.cond.Signal()
	return true
}

// Results returns the channel completed tasks are reported on.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Stop implements [Worker]. Tasks still queued run with a cancelled
// context, so they fail fast; their results are still delivered. Stop
// returns once every goroutine has exited and Results is closed, which
// requires the results to be drained by the consumer.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	wasRunning := p.running
	p.cancel()
	p.cond.Broadcast()
	p.mu.Unlock()

	if !wasRunning {
		p.failQueued()
	}

	p.wg.Wait()
	close(p.results)
	p.logger.Debug().Str("func", "*Pool.Stop").Msg("worker pool stopped")
}

func (p *Pool) loop() {
	defer p.wg.Done()

	for {
		t, ok := p.next()
		if !ok {
			return
		}
		p.results <- Result{Task: t, Err: p.execute(t)}
		p.release(t.Key)
	}
}

func (p *Pool) next() (Task, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		if i := p.readyLocked(); i >= 0 {
			t := p.queue[i]
			p.queue = append(p.queue[:i], p.queue[i+1:]...)
			if t.Key != "" {
				p.busy[t.Key] = struct{}{}
			}
			return t, true
		}
		if len(p.queue) == 0 && p.stopped {
			return Task{}, false
		}
		p.cond.Wait()
	}
}

// readyLocked returns the index of the oldest queued task whose key is not
// running, or -1.
func (p *Pool) readyLocked() int {
	for i, t := range p.queue {
		if t.Key == "" {
			return i
		}
		if _, running := p.busy[t.Key]; !running {
			return i
		}
	}
	return -1
}

func (p *Pool) release(key string) {
	if key == "" {
		return
	}
	p.mu.Lock()
	delete(p.busy, key)
	p.cond.Broadcast()
	p.mu.Unlock()
}

func (p *Pool) execute(t Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Str("func", "*Pool.execute").
				Str("key", t.Key).
				Str("kind", t.Kind).
				Interface("panic", r).
				Msg("task panicked")
			err = errors.New("task panicked")
		}
	}()

	return t.Run(p.ctx)
}

// failQueued reports every queued task as stopped when the pool never ran.
func (p *Pool) failQueued() {
	p.mu.Lock()
	queued := p.queue
	p.queue = nil
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for _, t := range queued {
			p.results <- Result{Task: t, Err: ErrPoolStopped}
		}
	}()
}

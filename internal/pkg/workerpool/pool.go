// Package workerpool runs independent tasks on a fixed number of goroutines.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

var ErrNotRun = errors.New("task not run")

type Task[T any] func(ctx context.Context) (T, error)

// Result carries the outcome of the task submitted at position Index.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

type Pool[T any] struct {
	workers int
	tasks   chan indexedTask[T]
	wg      sync.WaitGroup

	mu   sync.Mutex
	next int
}

type indexedTask[T any] struct {
	index int
	run   Task[T]
}

func New[T any](workers, buffer int) *Pool[T] {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool[T]{
		workers: workers,
		tasks:   make(chan indexedTask[T], buffer),
	}
}

// Submit queues t and returns its index. It blocks while the buffer is full.
func (p *Pool[T]) Submit(t Task[T]) int {
	if p == nil || t == nil {
		return -1
	}
	p.mu.Lock()
	i := p.next
	p.next++
	p.mu.Unlock()

	p.tasks <- indexedTask[T]{index: i, run: t}
	return i
}

func (p *Pool[T]) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers. The returned channel is closed once Close has been
// called and every queued task has finished, or when ctx is done.
func (p *Pool[T]) Run(ctx context.Context) <-chan Result[T] {
	if p == nil {
		out := make(chan Result[T])
		close(out)
		return out
	}
	out := make(chan Result[T], p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					v, err := t.run(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result[T]{Index: t.index, Value: v, Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}

// Collect runs tasks and returns their results ordered by submission. Tasks
// that never ran report ctx.Err(), or ErrNotRun for a nil task.
func Collect[T any](ctx context.Context, workers int, tasks []Task[T]) []Result[T] {
	p := New[T](workers, len(tasks))
	results := p.Run(ctx)
	for _, t := range tasks {
		if t == nil {
			t = func(context.Context) (T, error) {
				var zero T
				return zero, ErrNotRun
			}
		}
		p.Submit(t)
	}
	p.Close()

	out := make([]Result[T], len(tasks))
	done := make([]bool, len(tasks))
	for r := range results {
		out[r.Index] = r
		done[r.Index] = true
	}
	for i := range out {
		if done[i] {
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = ErrNotRun
		}
		out[i] = Result[T]{Index: i, Err: err}
	}
	return out
}

package events

import (
	"sync"
)

// taskRunner is a small bounded worker pool for post-record side effects.
// Evaluation failures must never reach the ingestion caller, so tasks are
// handed off here instead of being run inline.
type taskRunner struct {
	tasks chan func()
	wg    sync.WaitGroup

	closeOnce sync.Once
}

func newTaskRunner(workers, buffer int) *taskRunner {
	r := &taskRunner{tasks: make(chan func(), buffer)}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			for task := range r.tasks {
				task()
			}
		}()
	}
	return r
}

// Submit enqueues a task. Blocks when the buffer is full; back-pressure beats
// unbounded goroutine growth under event bursts.
func (r *taskRunner) Submit(task func()) {
	r.tasks <- task
}

// Shutdown stops accepting tasks and waits for in-flight ones.
func (r *taskRunner) Shutdown() {
	r.closeOnce.Do(func() {
		close(r.tasks)
	})
	r.wg.Wait()
}

package utils

import (
	"sort"
	"sync"
)

// WorkerPool runs submitted jobs on at most maxWorkers goroutines and
// collects the errors they return.
type WorkerPool struct {
	maxWorkers int
	semaphore  chan struct{}
	wg         sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// NewWorkerPool creates a WorkerPool with the given concurrency.
// Values below 1 are treated as 1.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		maxWorkers: maxWorkers,
		semaphore:  make(chan struct{}, maxWorkers),
	}
}

// Submit enqueues a job for execution in the pool. It blocks while all
// workers are busy.
func (wp *WorkerPool) Submit(job func() error) {
	wp.wg.Add(1)
	wp.semaphore <- struct{}{}

	go func() {
		defer wp.wg.Done()
		defer func() { <-wp.semaphore }()

		if err := job(); err != nil {
			wp.mu.Lock()
			wp.errs = append(wp.errs, err)
			wp.mu.Unlock()
		}
	}()
}

// Wait blocks until all submitted jobs have completed and returns their
// errors in completion order.
func (wp *WorkerPool) Wait() []error {
	wp.wg.Wait()
	wp.mu.Lock()
	defer wp.mu.Unlock()
	errs := wp.errs
	wp.errs = nil
	return errs
}

// StringSet is an insertion-deduplicating set of strings.
type StringSet struct {
	seen map[string]struct{}
}

// NewStringSet creates an empty StringSet.
func NewStringSet() *StringSet {
	return &StringSet{seen: make(map[string]struct{})}
}

// Add returns true if v was newly added, false if already present.
func (s *StringSet) Add(v string) bool {
	if _, exists := s.seen[v]; exists {
		return false
	}
	s.seen[v] = struct{}{}
	return true
}

// Contains returns true if v is in the set.
func (s *StringSet) Contains(v string) bool {
	_, exists := s.seen[v]
	return exists
}

// Size returns the number of unique values tracked.
func (s *StringSet) Size() int {
	return len(s.seen)
}

// Sorted returns the values in lexical order.
func (s *StringSet) Sorted() []string {
	out := make([]string, 0, len(s.seen))
	for v := range s.seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

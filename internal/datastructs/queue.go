package queue

import (
	"sync"
)

// CQueue is an unbounded FIFO whose Dequeue blocks until a value arrives or
// the queue is closed.
type CQueue[T any] struct {
	data   []T
	closed bool

	lock     *sync.Mutex
	notEmpty *sync.Cond
}

func NewCQueue[T any]() *CQueue[T] {
	var lock sync.Mutex
	return &CQueue[T]{
		data:     make([]T, 0),
		notEmpty: sync.NewCond(&lock),
		lock:     &lock,
	}
}

// Enqueue appends value. It returns false if the queue is closed.
func (q *CQueue[T]) Enqueue(value T) bool {
	q.lock.Lock()
	defer q.lock.Unlock()

	if q.closed {
		return false
	}
	q.data = append(q.data, value)
	q.notEmpty.Signal()
	return true
}

// Dequeue removes the oldest value. Once the queue is closed and drained it
// returns ok == false.
func (q *CQueue[T]) Dequeue() (res T, ok bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.data) == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	if len(q.data) == 0 {
		return res, false
	}

	res = q.data[0]
	var zero T
	q.data[0] = zero
	q.data = q.data[1:]

	return res, true
}

func (q *CQueue[T]) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.data)
}

// Close wakes every blocked Dequeue. Values already queued are still handed out.
func (q *CQueue[T]) Close() {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.closed = true
	q.notEmpty.Broadcast()
}

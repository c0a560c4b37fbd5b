// Package future provides a one-shot result slot that a worker goroutine
// fills once and the frame loop polls without blocking.
package future

import "sync"

// Future holds the eventual result of an asynchronous request.
//
// Resolve may be called from any goroutine; only the first call wins.
// Poll never blocks, so the frame loop observes completion on a later frame.
type Future[T any] struct {
	done chan struct{}
	once sync.Once

	val T
	err error
}

// New returns an unresolved future.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go runs fn on a new goroutine and resolves the future with its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := New[T]()
	go func() {
		v, err := fn()
		f.Resolve(v, err)
	}()
	return f
}

// Resolve stores the result. Later calls are ignored.
func (f *Future[T]) Resolve(v T, err error) {
	f.once.Do(func() {
		f.val = v
		f.err = err
		close(f.done)
	})
}

// Poll reports the result if the future has resolved.
func (f *Future[T]) Poll() (v T, ok bool, err error) {
	select {
	case <-f.done:
		return f.val, true, f.err
	default:
		return v, false, nil
	}
}

// Done is closed once the future resolves.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

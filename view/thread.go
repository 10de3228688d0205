package view

import (
	"runtime"
	"sync"

	"github.com/gogpu/ggfx"
	"github.com/pkg/errors"
)

// ErrThreadClosed is returned by [Thread.Do] after [Thread.Close].
var ErrThreadClosed = errors.New("view: thread closed")

// Thread owns one goroutine locked to its OS thread. Functions handed to
// Do run there one at a time, in the order they were accepted.
type Thread struct {
	calls chan call
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

type call struct {
	fn   func()
	errc chan error
}

// NewThread starts a thread.
func NewThread() *Thread {
	t := &Thread{
		calls: make(chan call),
		done:  make(chan struct{}),
	}
	t.wg.Add(1)
	go t.loop()
	return t
}

func (t *Thread) loop() {
	defer t.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case c := <-t.calls:
			c.errc <- run(c.fn)
		case <-t.done:
			return
		}
	}
}

// run calls fn and turns a panic into an error.
func run(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("view: panic on thread: %v", r)
		}
	}()
	fn()
	return nil
}

// Do runs fn on the thread and blocks until it returns. A panic in fn is
// returned as an error.
func (t *Thread) Do(fn func()) error {
	c := call{fn: fn, errc: make(chan error, 1)}
	select {
	case t.calls <- c:
	case <-t.done:
		return ErrThreadClosed
	}
	return <-c.errc
}

// Close stops the thread after the running call, if any, returns. It is
// safe to call more than once.
func (t *Thread) Close() {
	t.once.Do(func() {
		close(t.done)
		t.wg.Wait()
		ggfx.Logger().Debug("view: thread closed")
	})
}

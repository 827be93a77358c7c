package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/hioload-fs/api"
)

func TestExecutorRunsTasks(t *testing.T) {
	e := NewExecutor(2, 8)
	defer e.Close()

	var wg sync.WaitGroup
	var ran int64
	for i := 0; i < 50; i++ {
		wg.Add(1)
		if err := e.Submit(func() {
			atomic.AddInt64(&ran, 1)
			wg.Done()
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	wg.Wait()
	if got := atomic.LoadInt64(&ran); got != 50 {
		t.Errorf("ran = %d, want 50", got)
	}
}

func TestExecutorOverflowNeverRejects(t *testing.T) {
	// tiny rings force most submissions through the overflow queue
	e := NewExecutor(1, 2)
	defer e.Close()

	gate := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	if err := e.Submit(func() { <-gate; wg.Done() }); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		wg.Add(1)
		if err := e.Submit(func() { wg.Done() }); err != nil {
			t.Fatalf("Submit %d rejected: %v", i, err)
		}
	}
	close(gate)
	wg.Wait()
}

func TestExecutorSubmitAfterClose(t *testing.T) {
	e := NewExecutor(1, 8)
	e.Close()
	if err := e.Submit(func() {}); err != api.ErrExecutorClosed {
		t.Errorf("Submit after Close = %v, want ErrExecutorClosed", err)
	}
}

func TestExecutorResize(t *testing.T) {
	e := NewExecutor(2, 8)
	defer e.Close()

	e.Resize(4)
	if got := e.NumWorkers(); got != 4 {
		t.Fatalf("NumWorkers after grow = %d, want 4", got)
	}
	e.Resize(1)
	if got := e.NumWorkers(); got != 1 {
		t.Fatalf("NumWorkers after shrink = %d, want 1", got)
	}

	// pool must still make progress after shrinking
	done := make(chan struct{})
	if err := e.Submit(func() { close(done) }); err != nil {
		t.Fatal(err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run after Resize")
	}
}

func TestExecutorSurvivesPanics(t *testing.T) {
	e := NewExecutor(1, 8)
	defer e.Close()

	if err := e.Submit(func() { panic("boom") }); err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	if err := e.Submit(func() { close(done) }); err != nil {
		t.Fatal(err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker died after task panic")
	}
}

func TestLockFreeQueueConcurrentProducers(t *testing.T) {
	// producers whose submissions land on the same ring must not
	// overwrite each other's slots: every accepted element is retrievable
	q := newLockFreeQueue[int](1024)
	const producers = 4
	const perProducer = 100000

	var accepted int64
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if q.Enqueue(i) {
					atomic.AddInt64(&accepted, 1)
				}
			}
		}()
	}

	var drained int64
	done := make(chan struct{})
	go func() {
		defer close(done)
		idle := 0
		for idle < 1000 {
			if _, ok := q.Dequeue(); ok {
				drained++
				idle = 0
				continue
			}
			idle++
			time.Sleep(time.Millisecond)
		}
	}()
	wg.Wait()
	<-done

	if drained != atomic.LoadInt64(&accepted) {
		t.Fatalf("accepted %d elements, drained %d", accepted, drained)
	}
}

func TestExecutorConcurrentSubmitsAllRun(t *testing.T) {
	// several goroutines submitting at once must never lose a task
	e := NewExecutor(2, 64)
	defer e.Close()

	const submitters = 8
	const perSubmitter = 5000
	var ran int64
	var wg sync.WaitGroup
	wg.Add(submitters * perSubmitter)
	for s := 0; s < submitters; s++ {
		go func() {
			for i := 0; i < perSubmitter; i++ {
				if err := e.Submit(func() {
					atomic.AddInt64(&ran, 1)
					wg.Done()
				}); err != nil {
					t.Error(err)
					wg.Done()
				}
			}
		}()
	}
	wg.Wait()
	if got := atomic.LoadInt64(&ran); got != submitters*perSubmitter {
		t.Fatalf("ran = %d, want %d", got, submitters*perSubmitter)
	}
}

func TestLockFreeQueueOrder(t *testing.T) {
	q := newLockFreeQueue[int](4)
	for i := 0; i < 4; i++ {
		if !q.Enqueue(i) {
			t.Fatalf("Enqueue(%d) rejected", i)
		}
	}
	if q.Enqueue(99) {
		t.Fatal("full queue accepted an element")
	}
	for i := 0; i < 4; i++ {
		v, ok := q.Dequeue()
		if !ok || v != i {
			t.Fatalf("Dequeue = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatal("empty queue produced an element")
	}
}

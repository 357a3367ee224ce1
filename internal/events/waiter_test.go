package events

import (
	"sync"
	"testing"
	"time"
)

func TestQueueFIFO(t *testing.T) {
	w := NewWaiter()

	w.Tasks.Push(func() {})
	got := []string{}
	for _, s := range []string{"a", "b", "c"} {
		s := s
		w.Tasks.Push(func() { got = append(got, s) })
	}
	// 清掉第一个占位任务
	if _, ok := w.Tasks.Pop(); !ok {
		t.Fatal("expected placeholder task")
	}
	for {
		task, ok := w.Tasks.Pop()
		if !ok {
			break
		}
		task()
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("FIFO order violated: %v", got)
	}
}

func TestQueueFIFOAcrossProducers(t *testing.T) {
	w := NewWaiter()

	// 每个条目 pushed-before 下一个开始：用串行化的生产者链模拟
	// 多线程生产。
	next := make(chan int, 1)
	next <- 0
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := <-next
			w.UI.Push(Event{Type: EventValueChanged, Value: n})
			next <- n + 1
		}()
	}
	wg.Wait()

	for want := 0; want < 3; want++ {
		ev, ok := w.UI.Pop()
		if !ok {
			t.Fatalf("missing event %d", want)
		}
		if ev.Value != want {
			t.Fatalf("event %d out of order: got %d", want, ev.Value)
		}
	}
	if _, ok := w.UI.Pop(); ok {
		t.Fatal("queue should be empty")
	}
}

func TestPopNeverBlocks(t *testing.T) {
	w := NewWaiter()
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, ok := w.UI.Pop(); ok {
			t.Error("Pop on empty queue returned an item")
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pop blocked on empty queue")
	}
}

func TestShutdownDrainsAndGates(t *testing.T) {
	w := NewWaiter()
	w.UI.Push(Event{Type: EventTextInput, Text: "x"})
	w.Tasks.Push(func() {})
	if w.UI.Len() != 1 || w.Tasks.Len() != 1 {
		t.Fatalf("unexpected queue lengths before shutdown: ui=%d tasks=%d", w.UI.Len(), w.Tasks.Len())
	}

	w.Shutdown()

	if _, ok := w.UI.Pop(); ok {
		t.Fatal("UI queue not drained by shutdown")
	}
	if _, ok := w.Tasks.Pop(); ok {
		t.Fatal("task queue not drained by shutdown")
	}
	if got := w.State(); got != StateShuttingDown {
		t.Fatalf("state = %v, want %v", got, StateShuttingDown)
	}

	// 关停后的 Push 必须是空操作。
	w.UI.Push(Event{Type: EventTextInput, Text: "late"})
	w.Tasks.Push(func() {})
	if _, ok := w.UI.Pop(); ok {
		t.Fatal("push after shutdown was not dropped")
	}
	if _, ok := w.Tasks.Pop(); ok {
		t.Fatal("task push after shutdown was not dropped")
	}
}

func TestResetReactivates(t *testing.T) {
	w := NewWaiter()
	w.Shutdown()
	w.Reset()
	if got := w.State(); got != StateActive {
		t.Fatalf("state after reset = %v, want %v", got, StateActive)
	}
	w.UI.Push(Event{Type: EventTextInput, Text: "x"})
	if _, ok := w.UI.Pop(); !ok {
		t.Fatal("push after reset was dropped")
	}
}

func TestWaitForEventsWakesOnPush(t *testing.T) {
	w := NewWaiter()
	woke := make(chan struct{})
	go func() {
		w.WaitForEvents()
		close(woke)
	}()

	// 让等待者大概率已经挂起。
	time.Sleep(10 * time.Millisecond)
	w.Tasks.Push(func() {})

	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitForEvents did not wake on push")
	}
	if w.notifier.Raised() {
		t.Fatal("notifier flag should be cleared after WaitForEvents")
	}
}

func TestNotifierCoalescesRaises(t *testing.T) {
	n := NewNotifier()
	n.Raise()
	n.Raise()
	done := make(chan struct{})
	go func() {
		n.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return with flag raised")
	}
	n.Clear()
	if n.Raised() {
		t.Fatal("flag should be cleared")
	}
}

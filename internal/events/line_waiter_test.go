package events

import (
	"testing"
	"time"
)

func TestLineWaiterPushThenGet(t *testing.T) {
	lw := NewLineWaiter()
	lw.Push("first")
	lw.Push("second")

	for _, want := range []string{"first", "second"} {
		got, ok := lw.WaitGet()
		if !ok {
			t.Fatalf("unexpected sentinel, want %q", want)
		}
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

func TestLineWaiterEmptyLineIsNotSentinel(t *testing.T) {
	lw := NewLineWaiter()
	lw.Push("")
	got, ok := lw.WaitGet()
	if !ok || got != "" {
		t.Fatalf("submitted empty line must round-trip as (%q, true), got (%q, %v)", "", got, ok)
	}
}

func TestLineWaiterBlocksUntilPush(t *testing.T) {
	lw := NewLineWaiter()
	result := make(chan string, 1)
	go func() {
		line, ok := lw.WaitGet()
		if !ok {
			line = "<sentinel>"
		}
		result <- line
	}()

	time.Sleep(10 * time.Millisecond)
	lw.Push("hello")

	select {
	case got := <-result:
		if got != "hello" {
			t.Fatalf("got %q, want %q", got, "hello")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WaitGet did not wake on push")
	}
}

func TestLineWaiterShutdownUnblocksWithSentinel(t *testing.T) {
	lw := NewLineWaiter()
	sentinel := make(chan bool, 1)
	go func() {
		_, ok := lw.WaitGet()
		sentinel <- !ok
	}()

	time.Sleep(10 * time.Millisecond)
	lw.Shutdown()

	select {
	case got := <-sentinel:
		if !got {
			t.Fatal("blocked WaitGet returned a line instead of the sentinel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not unblock WaitGet")
	}
}

func TestLineWaiterGetAfterShutdown(t *testing.T) {
	lw := NewLineWaiter()
	lw.Shutdown()
	if _, ok := lw.WaitGet(); ok {
		t.Fatal("WaitGet after shutdown must return the sentinel")
	}
}

func TestLineWaiterGetAfterPopDoesNotSpinSentinel(t *testing.T) {
	lw := NewLineWaiter()
	lw.Push("only")
	if got, ok := lw.WaitGet(); !ok || got != "only" {
		t.Fatalf("got (%q, %v)", got, ok)
	}

	// 弹空缓冲后标志必须被消费掉，下一次 WaitGet 要重新阻塞而
	// 不是立刻返回假哨兵。
	result := make(chan string, 1)
	go func() {
		line, ok := lw.WaitGet()
		if !ok {
			line = "<sentinel>"
		}
		result <- line
	}()

	select {
	case got := <-result:
		t.Fatalf("WaitGet returned %q without a new push", got)
	case <-time.After(50 * time.Millisecond):
	}

	lw.Push("next")
	select {
	case got := <-result:
		if got != "next" {
			t.Fatalf("got %q, want %q", got, "next")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WaitGet did not wake on the second push")
	}
}

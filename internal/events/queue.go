package events

import "sync"

// Queue 是被生命周期状态门控的 FIFO 队列。生产者可以来自任意
// goroutine；消费端只有渲染线程。state 由 Waiter 持有，读取时
// 必须握着本队列的锁（写入方会同时握住两把队列锁）。
//
// 队列不做背压：渲染线程每个循环都会清空它，生产者长期快于
// 渲染循环导致的无界增长是已接受、仅文档化的风险。
type Queue[T any] struct {
	mu       sync.Mutex
	items    []T
	notifier *Notifier
	state    *State
}

func newQueue[T any](notifier *Notifier, state *State) *Queue[T] {
	return &Queue[T]{notifier: notifier, state: state}
}

// Push 入队并在同一临界区内置位共享通知器。状态不是 Active 时
// 静默丢弃；与 Shutdown 赛跑的 Push 允许丢，关停后的新工作本就
// 不保证送达。
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	if *q.state != StateActive {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, item)
	q.notifier.Raise()
	q.mu.Unlock()
}

// Pop 取出队首元素；队列为空时返回 false。从不阻塞。
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero // 让被弹出的元素尽早可回收
	q.items = q.items[1:]
	return item, true
}

// Len 返回当前队列长度。
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

package events

import "sync"

// Notifier 是两个外部事件队列共享的布尔唤醒原语，用来把
// 多个队列的唤醒合并成渲染线程的一次等待。
type Notifier struct {
	mu     sync.Mutex
	cond   *sync.Cond
	raised bool
}

func NewNotifier() *Notifier {
	n := &Notifier{}
	n.cond = sync.NewCond(&n.mu)
	return n
}

// Raise 置位标志并唤醒一个等待者。Push 在入队的同一临界区内
// 调用它，这是 Wait/Clear 不丢唤醒的前提。
func (n *Notifier) Raise() {
	n.mu.Lock()
	n.raised = true
	n.mu.Unlock()
	n.cond.Signal()
}

// Wait 阻塞直到标志位为真。不清除标志位：清除由 Waiter 在
// 同时持有两把队列锁时完成。
func (n *Notifier) Wait() {
	n.mu.Lock()
	for !n.raised {
		n.cond.Wait()
	}
	n.mu.Unlock()
}

// Clear 复位标志位。
func (n *Notifier) Clear() {
	n.mu.Lock()
	n.raised = false
	n.mu.Unlock()
}

// Raised 返回当前标志位，仅用于测试。
func (n *Notifier) Raised() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.raised
}

package events

// Task 是延迟到渲染线程执行的闭包。公共 API 的每个变更调用
// 都会被翻译成一个 Task，绝不在调用方线程上就地执行。
type Task func()

// Waiter 组合两个外部事件队列与共享通知器，并持有生命周期
// 状态：UI 承载后端翻译来的 UI 事件，Tasks 承载 API 生产者的
// 延迟任务。两个队列各自 FIFO，彼此之间没有顺序保证。
type Waiter struct {
	notifier *Notifier
	state    State

	UI    *Queue[Event]
	Tasks *Queue[Task]
}

func NewWaiter() *Waiter {
	n := NewNotifier()
	w := &Waiter{notifier: n}
	w.UI = newQueue[Event](n, &w.state)
	w.Tasks = newQueue[Task](n, &w.state)
	w.Reset()
	return w
}

// Reset 清空两个队列并把状态置回 Active。构造时调用一次，之后
// 只有希望复用同一个 Waiter 的场合才需要再调。
func (w *Waiter) Reset() {
	w.drain()
	w.UI.mu.Lock()
	w.Tasks.mu.Lock()
	w.state = StateActive
	w.Tasks.mu.Unlock()
	w.UI.mu.Unlock()
}

// WaitForEvents 阻塞渲染线程直到有事件或任务到达。清除标志位
// 必须同时持有两把队列锁：Push 总是在入队的同一临界区内置位
// 标志，因此这里不可能清掉一个还没被观察到的唤醒。
func (w *Waiter) WaitForEvents() {
	w.notifier.Wait()
	w.UI.mu.Lock()
	w.Tasks.mu.Lock()
	w.notifier.Clear()
	w.Tasks.mu.Unlock()
	w.UI.mu.Unlock()
}

// Shutdown 先把状态置为 ShuttingDown（之后的 Push 一律静默
// 丢弃），再清空两个队列，保证关停后排队未送达的内存立即释放。
func (w *Waiter) Shutdown() {
	w.UI.mu.Lock()
	w.Tasks.mu.Lock()
	w.state = StateShuttingDown
	w.Tasks.mu.Unlock()
	w.UI.mu.Unlock()

	ui, tasks := w.drain()
	log.WithFields(map[string]any{"ui_events": ui, "tasks": tasks}).
		Info("drained external event queues on shutdown")
}

// State 返回当前生命周期状态。
func (w *Waiter) State() State {
	w.UI.mu.Lock()
	defer w.UI.mu.Unlock()
	return w.state
}

func (w *Waiter) drain() (ui, tasks int) {
	for {
		if _, ok := w.UI.Pop(); !ok {
			break
		}
		ui++
	}
	for {
		if _, ok := w.Tasks.Pop(); !ok {
			break
		}
		tasks++
	}
	return ui, tasks
}

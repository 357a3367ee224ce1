package events

import "sync"

// LineWaiter 把渲染线程合成的"行已提交"通知移交给唯一的消费者
// 线程。内部是单槽锁加二值完成标志，不是计数信号量：API 约定
// 消费者调用是串行的，一个标志就够了。多个消费者并发调用
// WaitGet 属于未定义行为（文档约定，不做防护）。
type LineWaiter struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []string
	done  bool
}

func NewLineWaiter() *LineWaiter {
	lw := &LineWaiter{}
	lw.cond = sync.NewCond(&lw.mu)
	return lw
}

// Push 总是入队，不受外部事件队列生命周期门控：这条通道只承载
// 渲染线程自己发出的通知。置位完成标志并唤醒一个等待者。
func (lw *LineWaiter) Push(line string) {
	lw.mu.Lock()
	lw.queue = append(lw.queue, line)
	lw.done = true
	lw.mu.Unlock()
	lw.cond.Signal()
}

// WaitGet 返回下一条已提交的输入行。缓冲非空时立即弹出；否则
// 阻塞到完成标志置位后复查：仍为空说明正在关停，返回 ok=false
// 哨兵，与真正提交的空行区分开。弹空缓冲时顺带消费掉标志，
// 避免下一次调用空转出假哨兵。
func (lw *LineWaiter) WaitGet() (string, bool) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if len(lw.queue) == 0 {
		for !lw.done {
			lw.cond.Wait()
		}
		lw.done = false
		if len(lw.queue) == 0 {
			return "", false
		}
	}
	line := lw.queue[0]
	lw.queue = lw.queue[1:]
	if len(lw.queue) == 0 {
		lw.done = false
	}
	return line, true
}

// Shutdown 置位完成标志并唤醒所有等待者，让挂起的 WaitGet 以
// 哨兵返回。返回前重新取一次锁，保证已在途的 WaitGet 观察到
// 信号并离开临界区之后 Shutdown 才结束。
func (lw *LineWaiter) Shutdown() {
	lw.mu.Lock()
	lw.done = true
	lw.mu.Unlock()
	lw.cond.Broadcast()

	lw.mu.Lock()
	//lint:ignore SA2001 空临界区用于与在途的 WaitGet 汇合
	lw.mu.Unlock()
}

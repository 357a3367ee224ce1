// Package console 把事件队列、信号分发、行等待与屏幕模型组装成
// 可嵌入的控制台部件，并对外提供线程安全的公共 API。
package console

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"conbox/internal/driver"
	"conbox/internal/events"
	"conbox/internal/history"
	"conbox/internal/logger"
	"conbox/internal/widget"
)

var (
	// ErrInactive 表示控制台不在活动状态，阻塞读行直接拒绝。
	ErrInactive = errors.New("console is not active")
	// ErrNoLine 表示等待被关停打断，没有拿到输入行。
	ErrNoLine = errors.New("console shut down while waiting for input")
)

// Options 配置控制台。零值字段取默认。
type Options struct {
	Prompt     string
	Scrollback int
	FrameDelay time.Duration

	// HistoryPath 为空则不做历史持久化。
	HistoryPath string
	// HistoryLimit 启动时加载进上下键浏览的最近条数。
	HistoryLimit int
}

// Console 是控制台实例。渲染状态全部归 MainLoop 所在的 goroutine
// 所有，生产者线程只能通过 PushEvent 与任务入队接触它。
type Console struct {
	id  string
	drv driver.Driver
	log *logger.LogEntry

	waiter  *events.Waiter
	emitter *events.Emitter
	lines   *events.LineWaiter
	screen  *widget.Screen

	// mu 保护渲染状态：渲染与排空队列期间持有。
	mu sync.Mutex
	// getlineMu 串行化消费者侧，也充当关停时的汇合点。
	getlineMu sync.Mutex
	// eventMu 串行化 PushEvent 生产者，同样参与关停汇合。
	eventMu sync.Mutex

	owner      uint64
	state      atomic.Int32
	focused    atomic.Bool
	frameDelay time.Duration

	hist *history.Store
}

// Create 在调用方 goroutine 上构建控制台，该 goroutine 成为渲染
// 线程，之后必须由它调用 MainLoop 和 Destroy。
func Create(drv driver.Driver, opts Options) *Console {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.FrameDelay <= 0 {
		opts.FrameDelay = 50 * time.Millisecond
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 200
	}

	c := &Console{
		id:         uuid.NewString(),
		drv:        drv,
		waiter:     events.NewWaiter(),
		emitter:    events.NewEmitter(),
		lines:      events.NewLineWaiter(),
		owner:      goid(),
		frameDelay: opts.FrameDelay,
	}
	c.log = logger.Named("console").WithField("console_id", c.id)
	c.state.Store(int32(events.StateActive))

	c.screen = widget.NewScreen(drv, c.emitter, widget.Options{
		Prompt:     opts.Prompt,
		Scrollback: opts.Scrollback,
	})

	if opts.HistoryPath != "" {
		c.hist = &history.Store{Path: opts.HistoryPath}
		if texts, err := c.hist.Tail(opts.HistoryLimit); err != nil {
			c.log.WithField("error", err).Warn("load prompt history failed")
		} else {
			c.screen.Prompt().SetHistory(texts)
		}
	}

	// 提交的输入行移交给消费者线程，并顺带持久化。
	c.emitter.Connect(events.EventNewInputLine, func(ev events.Event) {
		c.lines.Push(ev.Line)
		if c.hist != nil {
			if err := c.hist.Append(ev.Line); err != nil {
				c.log.WithField("error", err).Warn("append history failed")
			}
		}
	})
	c.emitter.Connect(events.EventFocusGained, func(events.Event) { c.focused.Store(true) })
	c.emitter.Connect(events.EventFocusLost, func(events.Event) { c.focused.Store(false) })

	c.log.WithField("owner_goroutine", c.owner).Info("console created")
	return c
}

// PushEvent 是后端驱动的生产者入口，任意线程可调。关停后入队
// 静默丢弃。eventMu 让关停流程能与在途的调用汇合。
func (c *Console) PushEvent(ev events.Event) {
	c.eventMu.Lock()
	c.waiter.UI.Push(ev)
	c.eventMu.Unlock()
}

// AddLine 追加一条输出行。任意线程可调，实际改动延迟到渲染线程。
func (c *Console) AddLine(text string) {
	c.waiter.Tasks.Push(func() { c.screen.AddOutput(text) })
}

// SetPrompt 替换提示符。
func (c *Console) SetPrompt(text string) {
	c.waiter.Tasks.Push(func() { c.screen.SetPrompt(text) })
}

// Clear 清空历史条目。
func (c *Console) Clear() {
	c.waiter.Tasks.Push(func() { c.screen.Clear() })
}

// SetScrollback 调整保留的折行总数上限。
func (c *Console) SetScrollback(n int) {
	c.waiter.Tasks.Push(func() { c.screen.SetScrollback(n) })
}

// GetLine 阻塞等待下一条提交的输入行。约定只有一个消费者线程
// 调用；并发调用未定义。关停打断时返回 ErrNoLine。
func (c *Console) GetLine() (string, error) {
	c.getlineMu.Lock()
	defer c.getlineMu.Unlock()

	if events.State(c.state.Load()) != events.StateActive {
		return "", ErrInactive
	}
	line, ok := c.lines.WaitGet()
	if !ok {
		return "", ErrNoLine
	}
	return line, nil
}

// GetColumns 返回当前视口列数。
func (c *Console) GetColumns() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen.Metrics().Columns()
}

// GetRows 返回当前视口行数。
func (c *Console) GetRows() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen.Metrics().Rows()
}

// HasFocus 报告部件当前是否持有输入焦点。
func (c *Console) HasFocus() bool {
	return c.focused.Load()
}

// Shutdown 请求关停，任意线程可调，幂等。真正的清理在渲染线程
// 的 MainLoop 末尾执行，这里只翻状态并唤醒等待中的渲染线程。
func (c *Console) Shutdown() {
	if !c.state.CompareAndSwap(int32(events.StateActive), int32(events.StateShuttingDown)) {
		return
	}
	c.log.Info("console shutdown requested")
	c.waiter.Tasks.Push(func() {})
}

// MainLoop 驱动渲染循环：画帧、等事件、排空两个队列、检查关停。
// 必须由创建控制台的 goroutine 调用，直到关停才返回。
func (c *Console) MainLoop() {
	for {
		c.mu.Lock()
		c.screen.Render()
		c.mu.Unlock()

		c.waiter.WaitForEvents()

		c.mu.Lock()
		for {
			ev, ok := c.waiter.UI.Pop()
			if !ok {
				break
			}
			c.emitter.Emit(ev)
		}
		for {
			task, ok := c.waiter.Tasks.Pop()
			if !ok {
				break
			}
			task()
		}
		c.mu.Unlock()

		if events.State(c.state.Load()) == events.StateShuttingDown {
			c.shutdownOnRenderThread()
			return
		}

		time.Sleep(c.frameDelay)
	}
}

// shutdownOnRenderThread 执行无死锁的关停交接：先放走阻塞的
// 消费者并与之汇合，再关外部事件队列并与在途的生产者汇合。
// 空临界区保证对方已经离开各自的入口。
func (c *Console) shutdownOnRenderThread() {
	c.lines.Shutdown()
	c.getlineMu.Lock()
	//lint:ignore SA2001 空临界区用于与在途的 GetLine 汇合
	c.getlineMu.Unlock()

	c.waiter.Shutdown()
	c.eventMu.Lock()
	//lint:ignore SA2001 空临界区用于与在途的 PushEvent 汇合
	c.eventMu.Unlock()

	c.log.Info("console render loop stopped")
}

// Destroy 释放后端资源。只允许创建控制台的 goroutine 调用；
// 其他 goroutine 调用会被拒绝并返回 false。重复调用幂等返回 true。
func (c *Console) Destroy() bool {
	if events.State(c.state.Load()) == events.StateInactive {
		return true
	}
	if gid := goid(); gid != c.owner {
		c.log.WithFields(logger.Fields{"caller_goroutine": gid, "owner_goroutine": c.owner}).
			Warn("destroy refused from non-owning goroutine")
		return false
	}
	c.state.Store(int32(events.StateInactive))
	c.drv.Close()
	c.log.Info("console destroyed")
	return true
}

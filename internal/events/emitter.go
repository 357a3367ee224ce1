package events

// Handler 处理一次分发中的单个事件。
type Handler func(Event)

// Slot 代表一次订阅。Slot 永远属于 active 或 parked 两个池之一，
// 断开连接是在池之间移动而不是删除，所以处理器可以在自己的
// 调用里安全地断开自己，不会破坏进行中的分发迭代。
type Slot struct {
	emitter   *Emitter
	typ       EventType
	fn        Handler
	connected bool
}

// Disconnect 把 slot 移回停用池。已断开时为空操作。
func (s *Slot) Disconnect() {
	s.emitter.move(s, false)
}

// Connect 把停用池中的 slot 移入活动池。已连接时为空操作。
func (s *Slot) Connect() {
	s.emitter.move(s, true)
}

// IsConnected 报告 slot 当前是否参与分发。
func (s *Slot) IsConnected() bool {
	return s.connected
}

// Emitter 是线程内的发布/订阅分发器，按事件类型把事件同步派发
// 给已连接的处理器。它本身不加锁：Emit 与所有连接操作都必须
// 发生在同一个线程上（对控制台来说就是渲染线程）。
type Emitter struct {
	slots  map[EventType][]*Slot
	parked map[EventType][]*Slot
}

func NewEmitter() *Emitter {
	return &Emitter{
		slots:  map[EventType][]*Slot{},
		parked: map[EventType][]*Slot{},
	}
}

// Connect 注册处理器并立即生效，参与之后每一次该类型的分发。
func (e *Emitter) Connect(typ EventType, fn Handler) *Slot {
	s := &Slot{emitter: e, typ: typ, fn: fn, connected: true}
	e.slots[typ] = append(e.slots[typ], s)
	return s
}

// ConnectLater 预创建一个停用池中的处理器，等某个前置条件成立
// （比如拖拽开始）再通过 (*Slot).Connect 启用。
func (e *Emitter) ConnectLater(typ EventType, fn Handler) *Slot {
	s := &Slot{emitter: e, typ: typ, fn: fn}
	e.parked[typ] = append(e.parked[typ], s)
	return s
}

// Emit 按订阅顺序同步调用当前已连接的处理器，在调用方线程上
// 执行。迭代的是快照，处理器中途断开或新连接都不影响本次分发
// 的遍历；已断开的 slot 在调用前再查一次连接位。
func (e *Emitter) Emit(ev Event) {
	active := e.slots[ev.Type]
	if len(active) == 0 {
		return
	}
	snapshot := make([]*Slot, len(active))
	copy(snapshot, active)
	for _, s := range snapshot {
		if s.connected {
			s.fn(ev)
		}
	}
}

// Clear 移除所有订阅。
func (e *Emitter) Clear() {
	e.slots = map[EventType][]*Slot{}
	e.parked = map[EventType][]*Slot{}
}

func (e *Emitter) move(s *Slot, connect bool) {
	if s == nil || s.connected == connect {
		return
	}
	from, to := e.slots, e.parked
	if connect {
		from, to = e.parked, e.slots
	}
	list := from[s.typ]
	for i, cand := range list {
		if cand == s {
			from[s.typ] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	to[s.typ] = append(to[s.typ], s)
	s.connected = connect
}

package events

// EventType 标识 UI 事件与渲染线程内部信号的类型。
type EventType uint32

const (
	EventNone EventType = iota

	// 由后端驱动翻译而来的外部 UI 事件。
	EventKeyDown
	EventTextInput
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseMotion
	EventMouseWheel
	EventWindowResized
	EventFocusGained
	EventFocusLost

	// 渲染线程自己合成的内部信号。
	EventNewInputLine
	EventClicked
	EventFontSizeChanged
	EventValueChanged
)

// Key 是与具体后端无关的按键符号。可打印字符走 EventTextInput，
// 这里只列编辑与导航键。
type Key int

const (
	KeyNone Key = iota
	KeyReturn
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyRune // 带修饰键的普通字符，如 Ctrl-C
)

// Modifier 是按键修饰位。
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// MouseButton 标识鼠标按钮。
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// KeyEvent 描述一次按键。Sym == KeyRune 时 Rune 有效。
type KeyEvent struct {
	Sym  Key
	Rune rune
	Mod  Modifier
}

// MouseEvent 描述一次鼠标按钮或移动事件，坐标为像素。
type MouseEvent struct {
	X, Y   int
	Button MouseButton
}

// Event 是队列与 Emitter 中流转的唯一事件格式，按 Type 取对应
// 字段。保持为可复制的值类型，不挂接口也不挂指针负载。
type Event struct {
	Type   EventType
	Key    KeyEvent
	Text   string // EventTextInput 的输入文本
	Mouse  MouseEvent
	Wheel  int // 滚轮方向，向上为正
	Width  int
	Height int    // EventWindowResized 的新尺寸
	Line   string // EventNewInputLine 提交的输入行
	Value  int    // EventValueChanged 携带的数值
}

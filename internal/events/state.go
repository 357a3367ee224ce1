package events

// State 表示控制台生命周期状态。状态只向前迁移
// （Active → ShuttingDown → Inactive）；Reset 是唯一的例外。
type State int32

const (
	StateActive State = iota
	StateShuttingDown
	StateInactive
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateShuttingDown:
		return "shutting_down"
	case StateInactive:
		return "inactive"
	}
	return "unknown"
}

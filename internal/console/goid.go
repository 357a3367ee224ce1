package console

import (
	"bytes"
	"runtime"
	"strconv"
)

// goid 返回当前 goroutine 的编号，从 runtime.Stack 的首行解析。
// 只用于销毁时的归属校验，不在热路径上。
func goid() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	// 首行形如 "goroutine 123 [running]:"
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

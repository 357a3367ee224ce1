package main

import (
	"bufio"
	"errors"
	"os/exec"
	"strings"

	"github.com/creack/pty"

	"conbox/internal/console"
)

// runConsumer 是唯一的消费者 goroutine：循环读提交的输入行。
// 默认内建一个回显 shell；指定 -exec 时改为给 pty 子进程喂行。
func runConsumer(con *console.Console, execCmd string) {
	if execCmd != "" {
		runExecConsumer(con, execCmd)
		return
	}

	for {
		line, err := con.GetLine()
		if err != nil {
			return
		}
		switch strings.TrimSpace(line) {
		case "exit", "quit":
			con.Shutdown()
			return
		case "clear":
			con.Clear()
		case "help":
			con.AddLine("builtins: help, clear, exit")
			con.AddLine("anything else is echoed back")
		case "":
		default:
			con.AddLine(line)
		}
	}
}

// runExecConsumer 把控制台接到一个 pty 子进程上：输出按行搬进
// 控制台，提交的输入行原样写给子进程。子进程退出即关停。
func runExecConsumer(con *console.Console, command string) {
	cmd := exec.Command("sh", "-c", command)
	f, err := pty.Start(cmd)
	if err != nil {
		log.Warnf("failed to start %q under pty: %v", command, err)
		con.AddLine("failed to start: " + command)
		return
	}
	defer f.Close()

	go func() {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			con.AddLine(scanner.Text())
		}
		// 子进程退出后 pty 读端报错收场，这里统一走关停。
		con.Shutdown()
	}()

	for {
		line, err := con.GetLine()
		if err != nil {
			if !errors.Is(err, console.ErrNoLine) && !errors.Is(err, console.ErrInactive) {
				log.Warnf("read line: %v", err)
			}
			_ = cmd.Process.Kill()
			return
		}
		if _, err := f.Write([]byte(line + "\n")); err != nil {
			log.Warnf("write to child: %v", err)
			con.Shutdown()
			return
		}
	}
}

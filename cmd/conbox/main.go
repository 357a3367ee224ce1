package main

import (
	"os"
	"time"

	"conbox/internal/config"
	"conbox/internal/console"
	"conbox/internal/driver/tcelldrv"
	"conbox/internal/history"
	"conbox/internal/logger"
)

var log = logger.Named("main")

func main() {
	logger.Configure()

	args, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}

	cfg, err := config.Load(args.cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg = args.apply(cfg)

	if args.initConfig {
		if err := config.Save(args.cfgPath, cfg); err != nil {
			log.Fatalf("write config: %v", err)
		}
		return
	}

	// 控制台接管终端之前必须把日志改道到文件。
	if logFile, _, err := logger.SetupFile(cfg.LogPath); err != nil {
		log.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}

	histPath := ""
	if cfg.HistoryEnabled {
		histPath = cfg.HistoryPath
		if histPath == "" {
			if p, err := history.DefaultPath(); err == nil {
				histPath = p
			} else {
				log.Warnf("history disabled: %v", err)
			}
		}
	}

	drv, err := tcelldrv.New()
	if err != nil {
		log.Fatalf("failed to open terminal: %v", err)
	}

	con := console.Create(drv, console.Options{
		Prompt:      cfg.Prompt,
		Scrollback:  cfg.Scrollback,
		FrameDelay:  time.Duration(cfg.FrameDelayMS) * time.Millisecond,
		HistoryPath: histPath,
	})

	// 事件泵和消费者各占一个 goroutine，主 goroutine 留给渲染循环。
	go drv.Run(con.PushEvent)
	go runConsumer(con, args.execCmd)

	con.MainLoop()
	con.Destroy()
}

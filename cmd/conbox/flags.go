package main

import (
	"flag"

	"conbox/internal/config"
)

type cliArgs struct {
	cfgPath    string
	prompt     string
	scrollback int
	logPath    string
	noHistory  bool
	execCmd    string
	initConfig bool
}

func parseArgs(argv []string) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet("conbox", flag.ContinueOnError)
	fs.StringVar(&args.cfgPath, "config", "", "config file path (default ~/.conbox/config.toml)")
	fs.StringVar(&args.prompt, "prompt", "", "prompt text override")
	fs.IntVar(&args.scrollback, "scrollback", 0, "max retained wrapped lines override")
	fs.StringVar(&args.logPath, "log", "", "log file path override")
	fs.BoolVar(&args.noHistory, "no-history", false, "disable persistent input history")
	fs.StringVar(&args.execCmd, "exec", "", "run command under a pty instead of echoing input")
	fs.BoolVar(&args.initConfig, "init-config", false, "write the effective config to the config path and exit")
	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	return args, nil
}

// apply 把命令行覆盖叠在配置文件与环境变量之上。
func (a cliArgs) apply(cfg config.Config) config.Config {
	if a.prompt != "" {
		cfg.Prompt = a.prompt
	}
	if a.scrollback > 0 {
		cfg.Scrollback = a.scrollback
	}
	if a.logPath != "" {
		cfg.LogPath = a.logPath
	}
	if a.noHistory {
		cfg.HistoryEnabled = false
	}
	return cfg
}

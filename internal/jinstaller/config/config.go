package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

const (
	DefaultRoot    = "/"
	DefaultLogFile = "/var/log/jinstaller/step.log"
)

type AppConfig struct {
	RootMountPoint   string
	LogFile          string
	Debug            bool
	NoColor          bool
	TerminalFallback bool
}

func Load(args []string) (*AppConfig, error) {
	cfg := &AppConfig{}

	fs := pflag.NewFlagSet("jinstaller-step", pflag.ContinueOnError)

	var rootFlag string
	fs.StringVar(&rootFlag, "root", "", "Mount point of the target system (default: /)")
	var logFlag string
	fs.StringVar(&logFlag, "log-file", "", "Log file path, \"-\" to disable (default: "+DefaultLogFile+")")
	fs.BoolVar(&cfg.Debug, "debug", false, "Show debug output on the console")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored console output")
	fs.BoolVar(&cfg.TerminalFallback, "terminal-fallback", false, "Ask on the terminal when no dialog tool is installed")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if rootFlag != "" {
		cfg.RootMountPoint = rootFlag
	} else if envRoot := os.Getenv("JINSTALLER_ROOT"); envRoot != "" {
		cfg.RootMountPoint = envRoot
	} else {
		cfg.RootMountPoint = DefaultRoot
	}

	if logFlag != "" {
		cfg.LogFile = logFlag
	} else if envLog := os.Getenv("JINSTALLER_LOG_FILE"); envLog != "" {
		cfg.LogFile = envLog
	} else {
		cfg.LogFile = DefaultLogFile
	}
	if cfg.LogFile == "-" {
		cfg.LogFile = ""
	}

	absRoot, err := filepath.Abs(cfg.RootMountPoint)
	if err == nil {
		cfg.RootMountPoint = absRoot
	}
	if info, err := os.Stat(cfg.RootMountPoint); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("invalid target root: %s", cfg.RootMountPoint)
	}

	if cfg.LogFile != "" {
		absLog, err := filepath.Abs(cfg.LogFile)
		if err == nil {
			cfg.LogFile = absLog
		}
	}

	return cfg, nil
}

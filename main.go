// emoji-city is a terminal city toy: buy buildings, vehicles and citizens
// from fixed-size pools, save the city and roll it back.
//
// Usage:
//
//	./emoji-city [-config emoji-city.toml]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"emoji-city/internal/config"
	"emoji-city/internal/game"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultConfigPath = "emoji-city.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := defaultConfigPath
	if p := os.Getenv("EMOJI_CITY_CONFIG"); p != "" {
		cfgPath = p
	}
	flag.StringVar(&cfgPath, "config", cfgPath, "path to the TOML config file")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if cfgPath == defaultConfigPath {
		cfg, err = config.LoadOptional(cfgPath)
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	g, err := game.New(cfg, log)
	if err != nil {
		return err
	}
	g.Run()
	return nil
}

// newLogger builds a logger writing to the configured file; the terminal
// belongs to the game screen.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	path, err := logPath(cfg.File)
	if err != nil {
		return nil, err
	}
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}
	return zapCfg.Build()
}

func logPath(file string) (string, error) {
	if file == "" {
		dir, err := game.DataDir()
		if err != nil {
			return "", fmt.Errorf("locate data dir: %w", err)
		}
		file = filepath.Join(dir, "emoji-city.log")
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return file, nil
}

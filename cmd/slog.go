package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

var once sync.Once

func init() {
	once.Do(func() {
		logger, err := newLogger(os.Stderr, os.Getenv("LOG_LEVEL"))
		if err != nil {
			panic(err)
		}
		slog.SetDefault(logger)
	})
}

// newLogger returns a tint handler with source locations for debug level and
// a JSON handler otherwise. Logs go to stderr so export can write CSV to stdout.
func newLogger(w io.Writer, levelStr string) (*slog.Logger, error) {
	logLevel := slog.LevelInfo
	if levelStr != "" {
		if err := logLevel.UnmarshalText([]byte(levelStr)); err != nil {
			return nil, fmt.Errorf("invalid log level: %s", levelStr)
		}
	}

	if logLevel == slog.LevelDebug {
		modulePrefix := getModulePrefix()
		replacer := func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = cleanSourcePath(source.File, modulePrefix)
				}
			}
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		}

		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:       slog.LevelDebug,
			TimeFormat:  time.TimeOnly,
			ReplaceAttr: replacer,
			AddSource:   true,
		})), nil
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel})), nil
}

// getModulePrefix returns "/<last module path element>/" for trimming
// source paths, e.g. "github.com/auchan-scraper/auchan" -> "/auchan/".
func getModulePrefix() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		return "/" + path.Base(info.Main.Path) + "/"
	}
	return "/auchan/"
}

// cleanSourcePath trims filePath to the part inside the module, or to the
// bare file name when the module prefix is absent.
func cleanSourcePath(filePath, modulePrefix string) string {
	if idx := strings.LastIndex(filePath, modulePrefix); idx != -1 {
		return filePath[idx+len(modulePrefix):]
	}
	return filepath.Base(filePath)
}

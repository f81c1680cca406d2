package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// 未调用 InitLog 时也能用，库代码在测试里可能直接打日志
var logger = log.New(os.Stdout)

// InitLog 输出到 stdout，带时间戳和调用位置
func InitLog(appName string, logLevel string) {
	logger = log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		ReportCaller:    true,
		CallerOffset:    1,
	})
	logger.SetLevel(ParseLevel(logLevel))
}

// SetOutput 重定向输出，批处理把日志写进文件时使用
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetOutputFile 追加写入 path，返回的 close 关闭文件并把输出切回 stderr
func SetOutputFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(f)
	return func() error {
		logger.SetOutput(os.Stderr)
		return f.Close()
	}, nil
}

func SetLevel(logLevel string) {
	logger.SetLevel(ParseLevel(logLevel))
}

// ParseLevel 默认为 info
func ParseLevel(logLevel string) log.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func Fatal(format string, args ...any) {
	if len(args) == 0 {
		logger.Fatal(format)
	} else {
		logger.Fatalf(format, args...)
	}
}

func Info(format string, args ...any) {
	if len(args) == 0 {
		logger.Info(format)
	} else {
		logger.Infof(format, args...)
	}
}

func Warn(format string, args ...any) {
	if len(args) == 0 {
		logger.Warn(format)
	} else {
		logger.Warnf(format, args...)
	}
}

func Error(format string, args ...any) {
	if len(args) == 0 {
		logger.Error(format)
	} else {
		logger.Errorf(format, args...)
	}
}

func Debug(format string, args ...any) {
	if len(args) == 0 {
		logger.Debug(format)
	} else {
		logger.Debugf(format, args...)
	}
}

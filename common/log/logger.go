package log

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

var (
	fileWriter io.WriteCloser
	logger     tmlog.Logger
)

func init() {
	logger = NewConsoleLogger()
}

func InitLogger(l tmlog.Logger) {
	logger = l
}

func NewConsoleLogger() tmlog.Logger {
	return tmlog.NewTMLogger(tmlog.NewSyncWriter(os.Stdout))
}

// NewRollingFileLogger writes to filePath and rolls the file once it reaches maxSize megabytes.
// Only the most recent rolling logger keeps an open file.
func NewRollingFileLogger(filePath string, maxSize, maxBackups, maxAge int) tmlog.Logger {
	Close()

	fileWriter = &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		LocalTime:  true,
	}
	return tmlog.NewTMLogger(tmlog.NewSyncWriter(fileWriter))
}

func Close() {
	if fileWriter != nil {
		_ = fileWriter.Close()
		fileWriter = nil
	}
}

func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

func With(keyvals ...interface{}) tmlog.Logger {
	return logger.With(keyvals...)
}

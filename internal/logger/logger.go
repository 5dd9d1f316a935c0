package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

// 超过这个大小就把当前日志轮转成备份文件
const maxLogSize = 10 * 1024 * 1024

var (
	logFile *os.File
	logPath string
)

// Init 初始化文件日志，日志写入 ~/.draw-and-guess/server.log
// 之后所有 log.Printf 输出都会进入该文件
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("获取用户目录失败: %w", err)
	}

	logDir := filepath.Join(homeDir, ".draw-and-guess")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("创建日志目录失败: %w", err)
	}

	logPath = filepath.Join(logDir, "server.log")
	if err := rotateIfNeeded(logDir); err != nil {
		return err
	}

	logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %w", err)
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	LogInfo("日志初始化完成: %s", logPath)
	return nil
}

// rotateIfNeeded 文件过大时改名备份，让后续写入从空文件开始
func rotateIfNeeded(logDir string) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}

	backupPath := filepath.Join(logDir, fmt.Sprintf("server.log.%d", time.Now().Unix()))
	if err := os.Rename(logPath, backupPath); err != nil {
		return fmt.Errorf("轮转日志失败: %w", err)
	}
	return nil
}

// Close 关闭日志文件
func Close() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// LogInfo 记录普通信息
func LogInfo(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

// LogError 记录错误信息
func LogError(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}

// LogPanic 记录 panic 及其调用栈
func LogPanic(r any) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// GetLogPath 返回当前日志文件路径
func GetLogPath() string {
	return logPath
}

package log

import (
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
	"k8s.io/klog/v2"
)

// InitLogger 初始化日志,日志文件按大小滚动
// logDir: 日志目录
// maxSize: 单个日志文件大小上限(MB)
// maxBackups: 保留的历史文件数量
// maxAge: 保留天数
func InitLogger(logDir string, maxSize, maxBackups, maxAge int) {
	klog.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "runqlen.log"),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	})
}

func Info(args ...interface{}) {
	klog.InfoDepth(1, args...)
}

func Infof(format string, args ...interface{}) {
	klog.InfofDepth(1, format, args...)
}

func Warnf(format string, args ...interface{}) {
	klog.WarningfDepth(1, format, args...)
}

func Error(args ...interface{}) {
	klog.ErrorDepth(1, args...)
}

func Errorf(format string, args ...interface{}) {
	klog.ErrorfDepth(1, format, args...)
}

// Fatal 打印错误后以退出码 1 结束进程
func Fatal(args ...interface{}) {
	klog.ErrorDepth(1, args...)
	klog.Flush()
	os.Exit(1)
}

func Fatalf(format string, args ...interface{}) {
	klog.ErrorfDepth(1, format, args...)
	klog.Flush()
	os.Exit(1)
}

package lsp

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger LSP 服务器日志
//
// stdout 被协议通道占用，日志只能写文件。未指定日志路径时全部丢弃。
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger 创建日志器；path 为空时日志全部丢弃
func NewLogger(path string) *Logger {
	if path == "" {
		return &Logger{sugar: zap.NewNop().Sugar()}
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)

	logger, err := cfg.Build()
	if err != nil {
		return &Logger{sugar: zap.NewNop().Sugar()}
	}
	return &Logger{sugar: logger.Sugar()}
}

// Debug 调试日志
func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info 信息日志
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Error 错误日志
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Close 刷新并关闭日志
func (l *Logger) Close() {
	_ = l.sugar.Sync()
}

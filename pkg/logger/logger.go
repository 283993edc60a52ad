package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *logrus.Logger

// Config 日志配置
type Config struct {
	Level      string `json:"level"`
	Format     string `json:"format"`
	Output     string `json:"output"`
	FilePath   string `json:"file_path"`
	MaxSize    int    `json:"max_size"`
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"`
	Compress   bool   `json:"compress"`
}

// Init 初始化日志
func Init(config Config) error {
	log = logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if config.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:   "2006-01-02 15:04:05",
			DisableHTMLEscape: true, // 设备回显中常见 <> 字符，禁用转义
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	var writers []io.Writer
	if config.Output == "console" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}
	if config.Output == "file" || config.Output == "both" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if len(writers) > 0 {
		log.SetOutput(io.MultiWriter(writers...))
	}
	return nil
}

// GetLogger 获取日志实例
func GetLogger() *logrus.Logger {
	if log == nil {
		log = logrus.New()
	}
	return log
}

// Debug 调试日志
func Debug(args ...interface{}) { GetLogger().Debug(args...) }

// Debugf 格式化调试日志
func Debugf(format string, args ...interface{}) { GetLogger().Debugf(format, args...) }

// Info 信息日志
func Info(args ...interface{}) { GetLogger().Info(args...) }

// Infof 格式化信息日志
func Infof(format string, args ...interface{}) { GetLogger().Infof(format, args...) }

// Warn 警告日志
func Warn(args ...interface{}) { GetLogger().Warn(args...) }

// Warnf 格式化警告日志
func Warnf(format string, args ...interface{}) { GetLogger().Warnf(format, args...) }

// Error 错误日志
func Error(args ...interface{}) { GetLogger().Error(args...) }

// Errorf 格式化错误日志
func Errorf(format string, args ...interface{}) { GetLogger().Errorf(format, args...) }

// Fatal 致命错误日志
func Fatal(args ...interface{}) { GetLogger().Fatal(args...) }

// WithField 添加字段
func WithField(key string, value interface{}) *logrus.Entry {
	return GetLogger().WithField(key, value)
}

// WithFields 添加多个字段
func WithFields(fields logrus.Fields) *logrus.Entry {
	return GetLogger().WithFields(fields)
}

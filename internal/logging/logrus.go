package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New はアプリ共通のloggerを作る。prodはJSON、それ以外はテキスト。
func New(level string, prod bool) *logrus.Logger {
	return NewWithOutput(os.Stdout, level, prod)
}

func NewWithOutput(out io.Writer, level string, prod bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	lv, err := logrus.ParseLevel(level)
	if err != nil {
		lv = logrus.InfoLevel
	}
	logger.SetLevel(lv)

	if prod {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

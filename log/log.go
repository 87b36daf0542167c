package log

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/config"
)

type Logger struct {
	*logrus.Logger
}

func New() *Logger {
	return &Logger{logrus.New()}
}

func SetLogger(logCfg *config.LogConfig) (*Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger := &Logger{log}
	err := logger.SetLogLevel(context.Background(), logCfg.Level)
	if err != nil {
		return nil, err
	}

	if len(logCfg.Path) > 0 {
		file, err := os.OpenFile(logCfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, xerrors.Errorf("open log file fail %v", err)
		}
		log.SetOutput(file)
	}

	return logger, nil
}

func (logger *Logger) SetLogLevel(ctx context.Context, levelStr string) error {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	return nil
}

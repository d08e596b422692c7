package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. Servers built without WithLogger use it.
var NOOPLogger = zap.NewNop().Sugar()

// New returns a console logger for local development and a JSON logger
// everywhere else.
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "" || appEnv == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return l.Sugar().With("env", appEnv), nil
}

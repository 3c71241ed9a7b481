package core

import "github.com/sirupsen/logrus"

type Named interface {
	// Returns the name of the entity
	Name() string
}

type LoggerProvider interface {
	// Logger returns the logger to be used for logging.
	Logger() *logrus.Logger
}

type LoggerAttacher interface {
	// AttachLogger hands the test its per-execution logger. It is called
	// before Setup.
	AttachLogger(log *logrus.Logger)
}

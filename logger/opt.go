package logger

import "log"

// A LoggerOptFn is a functional option configuring a LevelLogger when constructing a new one.
type LoggerOptFn func(*LevelLogger)

// WithEnv sets the environment LevelLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *LevelLogger) {
		l.env = env
	}
}

// WithLevel sets the log level LevelLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *LevelLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger LevelLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *LevelLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *LevelLogger) {
		l.skip = skip
	}
}

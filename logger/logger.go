package logger

import (
	"fmt"
	"log"
	"os"
	"path"
	"regexp"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// log, logAt and the level method sit between the call site and runtime.Caller.
const knownFrames = 3

var tollgatePathRegex = regexp.MustCompile("tollgate.*$")

//go:generate mockgen -destination=mock_logger.go -package=logger github.com/xy-planning-network/tollgate/logger Logger

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

// NewLogLevel parses val, in any case, into a LogLevel.
// Unknown names are LogLevelUnk.
func NewLogLevel(val string) LogLevel {
	val = strings.ToUpper(strings.TrimSpace(val))
	for ll, name := range levelNames {
		if name == val {
			return ll
		}
	}

	return LogLevelUnk
}

func (ll LogLevel) String() string {
	if name, ok := levelNames[ll]; ok {
		return "[" + name + "]"
	}

	return "[UNK]"
}

var levelNames = map[LogLevel]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
	LogLevelFatal: "FATAL",
}

var levelColors = map[LogLevel]func(string, ...any) string{
	LogLevelDebug: color.WhiteString,
	LogLevelInfo:  color.BlueString,
	LogLevelWarn:  color.YellowString,
	LogLevelError: color.RedString,
	LogLevelFatal: color.MagentaString,
}

// LevelLogger implements Logger using log.
type LevelLogger struct {
	skip int
	env  string
	l    *log.Logger
	ll   LogLevel
}

// New constructs a Logger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The default environment is DEVELOPMENT.
// The default log level is INFO.
//
// If SENTRY_DSN is set, the returned Logger also reports errors to Sentry.
func New(opts ...LoggerOptFn) Logger {
	l := newLevelLogger(opts...)
	if sentryDsn := os.Getenv("SENTRY_DSN"); sentryDsn != "" {
		l.Info("SENTRY_DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, sentryDsn)
	}

	return l
}

func newLevelLogger(opts ...LoggerOptFn) *LevelLogger {
	l := &LevelLogger{
		env: getEnvOrString("TOLLGATE_ENV", "DEVELOPMENT"),
		l:   log.New(os.Stdout, "", log.LstdFlags),
		ll:  LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (l *LevelLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *LevelLogger) Debug(msg string, ctx *LogContext) { l.logAt(LogLevelDebug, msg, ctx) }

// Error writes an error log.
func (l *LevelLogger) Error(msg string, ctx *LogContext) { l.logAt(LogLevelError, msg, ctx) }

// Fatal writes a fatal log.
func (l *LevelLogger) Fatal(msg string, ctx *LogContext) { l.logAt(LogLevelFatal, msg, ctx) }

// Info writes an info log.
func (l *LevelLogger) Info(msg string, ctx *LogContext) { l.logAt(LogLevelInfo, msg, ctx) }

// Warn writes a warning log.
func (l *LevelLogger) Warn(msg string, ctx *LogContext) { l.logAt(LogLevelWarn, msg, ctx) }

// logAt drops msg if level is below the LevelLogger's own.
func (l *LevelLogger) logAt(level LogLevel, msg string, ctx *LogContext) {
	if level < l.ll {
		return
	}

	colorizer, ok := levelColors[level]
	if !ok {
		colorizer = fmt.Sprintf
	}

	l.log(colorizer, level, msg, ctx)
}

// LogLevel returns the LogLevel set for the LevelLogger.
func (l *LevelLogger) LogLevel() LogLevel { return l.ll }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *LevelLogger) Skip() int { return l.skip }

// log prints msg prefixed with level and the call site,
// followed by ctx when there is one.
func (l *LevelLogger) log(colorizer func(string, ...any) string, level LogLevel, msg string, ctx *LogContext) {
	var toPrint string
	var line int
	if ctx != nil && ctx.Caller != "" {
		toPrint = ctx.Caller
	} else {
		// NOTE: skip the frames LevelLogger adds
		// and however many the LevelLogger is configured with
		var file string
		_, file, line, _ = runtime.Caller(knownFrames + l.skip)
		toPrint = callSite(file, line)
	}

	msg = colorizer("%s %s '%s'", level, toPrint, msg)
	if ctx == nil {
		l.l.Println(msg)
		return
	}

	l.l.Println(msg, "log_context:", ctx)
}

// callSite trims file down to something readable:
//
//	/home/dev/tollgate/http/req/req.go => tollgate/http/req/req.go
//	/home/dev/my-project/main.go => my-project/main.go
func callSite(file string, line int) string {
	if match := tollgatePathRegex.FindString(file); match != "" {
		return fmt.Sprintf(callerTmpl, match, line)
	}

	fullPath, name := path.Split(file)
	return fmt.Sprintf(callerTmpl, path.Base(fullPath)+string(os.PathSeparator)+name, line)
}

func getEnvOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

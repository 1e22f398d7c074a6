/*
Package logger provides logging functionality to a tollgate service by defining the required behavior in [Logger]
and providing an implementation of it with [LevelLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
[LevelLogger] accepts a [LogLevel] and only emits messages at or above it.
For example, if initialized with [LogLevelWarn],
only [*LevelLogger.Warn], [*LevelLogger.Error], and [*LevelLogger.Fatal] produce messages.

Log messages emitted by [LevelLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [WARN] tollgate/http/resp/responder.go:88 'bodyArg exists in more than one object' log_context: {"error":"..."}

The log context is a JSON-encoded [LogContext].
Form and JSON body values under [MaskedKeys] print as [MaskVal].

# SentryLogger

When SENTRY_DSN is set, [New] returns a [SentryLogger],
which reports Warn, Error and Fatal logs carrying an error to Sentry.
*/
package logger

package srt

import (
	"github.com/sirupsen/logrus"

	"github.com/lumastream/srt/internal"
)

// EnableLogging routes the library's internal log output through l, with
// the library's verbosity capped to match l's level. The library logs from
// its own threads, so l must be safe for concurrent use (logrus is by
// default).
func EnableLogging(l *logrus.Logger) {
	internal.SetLogLevel(srtLogLevel(l.GetLevel()))
	internal.SetLogHandler(func(level int, file string, line int, area, message string) {
		entry := l.WithFields(logrus.Fields{
			"area": area,
			"file": file,
			"line": line,
		})
		switch level {
		case internal.LogCrit, internal.LogErr:
			entry.Error(message)
		case internal.LogWarning:
			entry.Warn(message)
		case internal.LogNotice:
			entry.Info(message)
		default:
			entry.Debug(message)
		}
	})
}

// DisableLogging restores the library's default handler.
func DisableLogging() {
	internal.SetLogHandler(nil)
}

// srtLogLevel translates a logrus level to the library's syslog-style one.
func srtLogLevel(level logrus.Level) int {
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		return internal.LogDebug
	case logrus.InfoLevel:
		return internal.LogNotice
	case logrus.WarnLevel:
		return internal.LogWarning
	case logrus.ErrorLevel:
		return internal.LogErr
	default:
		return internal.LogCrit
	}
}

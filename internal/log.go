package internal

/*
#include <sys/syslog.h>
#include <srt/srt.h>

void lumaRegisterLogHandler(int enable);
*/
import "C"

import "unsafe"

// Log levels the library hands to the handler. These are syslog values.
var (
	LogCrit    = int(C.LOG_CRIT)
	LogErr     = int(C.LOG_ERR)
	LogWarning = int(C.LOG_WARNING)
	LogNotice  = int(C.LOG_NOTICE)
	LogDebug   = int(C.LOG_DEBUG)
)

var logFn func(level int, file string, line int, area, message string)

//export srtLogTrampoline
func srtLogTrampoline(opaque unsafe.Pointer, level C.int, file *C.char, line C.int, area, message *C.char) {
	if fn := logFn; fn != nil {
		fn(int(level), C.GoString(file), int(line), C.GoString(area), C.GoString(message))
	}
}

// SetLogHandler routes the library's log output through fn. Passing nil
// restores the library's default handler.
func SetLogHandler(fn func(level int, file string, line int, area, message string)) {
	logFn = fn
	if fn == nil {
		C.lumaRegisterLogHandler(0)
		return
	}
	C.lumaRegisterLogHandler(1)
}

// SetLogLevel caps the library's log verbosity at a syslog level.
func SetLogLevel(level int) {
	C.srt_setloglevel(C.int(level))
}

package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

type LogLevel int

var LogFile bool
var LogFunc bool

const (
	LogLevelError = LogLevel(1 << iota)
	LogLevelInfo
	LogLevelNotice
	LogLevelDebug
)

var GlobalLogLevel = LogLevelError | LogLevelInfo

// LogOutput receives every formatted line. Swapped out by tests.
var LogOutput io.Writer = os.Stdout

var logOutputLock sync.Mutex

var logBufPool sync.Pool

func init() {
	logBufPool.New = func() any {
		return make([]byte, 0, 512)
	}
}

func (l LogLevel) String() string {
	var parts []string
	if l&LogLevelError > 0 {
		parts = append(parts, "error")
	}
	if l&LogLevelInfo > 0 {
		parts = append(parts, "info")
	}
	if l&LogLevelNotice > 0 {
		parts = append(parts, "notice")
	}
	if l&LogLevelDebug > 0 {
		parts = append(parts, "debug")
	}
	return strings.Join(parts, "|")
}

// SetDebug toggles notice and debug output together, mirroring the debugMode
// switch of the parameter set.
func SetDebug(enabled bool) {
	if enabled {
		GlobalLogLevel |= LogLevelNotice | LogLevelDebug
	} else {
		GlobalLogLevel &^= LogLevelNotice | LogLevelDebug
	}
}

func getLogBuf() []byte {
	return logBufPool.Get().([]byte)[:0]
}

func returnLogBuf(buf []byte) {
	logBufPool.Put(buf)
}

func Panicf(format string, v ...any) {
	buf := getLogBuf()
	defer returnLogBuf(buf)
	buf = fmt.Appendf(innerPrint(buf, "", "PANIC"), format, v...)
	_println(buf)
	panic(string(buf))
}

func Fatalf(prefix, format string, v ...any) {
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "FATAL"), format, v...))
	os.Exit(1)
}

func Errorf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelError == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "ERROR"), format, v...))
}

func Logf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelInfo == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "INFO"), format, v...))
}

func Noticef(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelNotice == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "NOTICE"), format, v...))
}

func IsLogLevelDebug() bool {
	return GlobalLogLevel&LogLevelDebug > 0
}

func Debugf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelDebug == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "DEBUG"), format, v...))
}

func _println(buf []byte) {
	buf = bytes.TrimSpace(buf)
	buf = append(buf, '\n')

	logOutputLock.Lock()
	defer logOutputLock.Unlock()
	_, _ = LogOutput.Write(buf)
}

func innerPrint(buf []byte, prefix, class string) []byte {
	buf = time.Now().UTC().AppendFormat(buf, "2006-01-02 15:04:05.000")
	if !LogFile {
		return fmt.Appendf(buf, " [%s] %s ", prefix, class)
	}

	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
		line = 0
		pc = 0
	}
	short := file[strings.LastIndexByte(file, '/')+1:]

	if !LogFunc || pc == 0 {
		return fmt.Appendf(buf, " %s:%d [%s] %s ", short, line, prefix, class)
	}

	var function string
	if details := runtime.FuncForPC(pc); details != nil {
		function = details.Name()
	}
	function = function[strings.LastIndexByte(function, '.')+1:]
	return fmt.Appendf(buf, " %s:%d:%s [%s] %s ", short, line, function, prefix, class)
}
